package color

// RGBToYCbCr converts an RGB triple to unclamped YCbCr:
//
//	Y  = 0.299R + 0.587G + 0.114B
//	Cr = (R - Y) * 0.713 + 128
//	Cb = (B - Y) * 0.564 + 128
func RGBToYCbCr(r, g, b uint8) (y, cb, cr float64) {
	y = lumaLUTR[r] + lumaLUTG[g] + lumaLUTB[b]
	cr = (float64(r)-y)*0.713 + chromaOffset
	cb = (float64(b)-y)*0.564 + chromaOffset
	return y, cb, cr
}

// YCbCrToRGB converts YCbCr back to RGB. Each channel is truncated toward
// zero and then saturated into [0,255].
func YCbCrToRGB(y, cb, cr float64) (r, g, b uint8) {
	dcr := cr - chromaOffset
	dcb := cb - chromaOffset

	r = Saturate(y + 1.403*dcr)
	g = Saturate(y - 0.714*dcr - 0.344*dcb)
	b = Saturate(y + 1.773*dcb)
	return r, g, b
}
