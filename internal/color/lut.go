package color

// Per-channel luma contribution tables.
//
// lumaLUTR[v] is exactly float64(v)*0.299 (likewise for G and B), so
// lumaLUTR[r]+lumaLUTG[g]+lumaLUTB[b] is bit-identical to evaluating the
// weighted sum directly, without three multiplications per pixel.
var (
	lumaLUTR [256]float64
	lumaLUTG [256]float64
	lumaLUTB [256]float64
)

func init() {
	for i := range 256 {
		v := float64(i)
		lumaLUTR[i] = v * lumaR
		lumaLUTG[i] = v * lumaG
		lumaLUTB[i] = v * lumaB
	}
}

// Luma returns the truncated BT.601 luma of an RGB triple:
// trunc(0.299*r + 0.587*g + 0.114*b).
func Luma(r, g, b uint8) uint8 {
	return Saturate(lumaLUTR[r] + lumaLUTG[g] + lumaLUTB[b])
}

// LumaRow writes the luma of every pixel of an RGB8 row into dst.
// dst must hold at least len(row)/3 bytes.
func LumaRow(dst, row []byte) {
	for i, j := 0, 0; i+2 < len(row); i, j = i+3, j+1 {
		dst[j] = Luma(row[i], row[i+1], row[i+2])
	}
}
