package rasterfx

import intColor "github.com/gogpu/rasterfx/internal/color"

// Luma returns trunc(0.299R + 0.587G + 0.114B), the gray level Grayscale
// assigns to c.
func Luma(c RGB) uint8 {
	return intColor.Luma(c.R, c.G, c.B)
}

// RGBToYCbCr converts an RGB triple to unquantized YCbCr:
//
//	Y  = 0.299R + 0.587G + 0.114B
//	Cr = (R - Y) * 0.713 + 128
//	Cb = (B - Y) * 0.564 + 128
func RGBToYCbCr(r, g, b uint8) (y, cb, cr float64) {
	return intColor.RGBToYCbCr(r, g, b)
}

// YCbCrToRGB converts YCbCr back to RGB:
//
//	R = Y + 1.403(Cr - 128)
//	G = Y - 0.714(Cr - 128) - 0.344(Cb - 128)
//	B = Y + 1.773(Cb - 128)
//
// Each result is truncated toward zero and then clamped into [0,255].
func YCbCrToRGB(y, cb, cr float64) (r, g, b uint8) {
	return intColor.YCbCrToRGB(y, cb, cr)
}

// RGBToHSV converts an RGB triple to hue in degrees [0,360) and saturation
// and value in [0,1]. Achromatic colors have hue 0.
func RGBToHSV(r, g, b uint8) (h, s, v float64) {
	return intColor.RGBToHSV(r, g, b)
}

// HSVToRGB converts a color given as hue in degrees and saturation and value
// in percent [0,100] to RGB.
//
// Hue is wrapped into [0,360); saturation and value are clamped. Channels
// are rounded to the nearest integer, ties to even.
func HSVToRGB(h, s, v float64) (r, g, b uint8) {
	return intColor.HSVToRGB(h, s, v)
}
