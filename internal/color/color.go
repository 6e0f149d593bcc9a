// Package color implements the per-pixel color math used by rasterfx:
// BT.601 luma, YCbCr and HSV conversions.
//
// All functions are pure and safe for concurrent use. Results that land in a
// channel are saturated into [0,255]; they never wrap.
package color

// Luma weights (ITU-R BT.601).
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

// chromaOffset is the bias added to the chroma channels of YCbCr.
const chromaOffset = 128

// Clamp255 saturates v into [0,255].
func Clamp255(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Saturate truncates v toward zero and saturates the result into [0,255].
// NaN maps to 0.
func Saturate(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
