package filter

import "github.com/gogpu/rasterfx/internal/image"

// Extend returns a (W+1)×(H+1) copy of src with a black ring.
//
// Pixels keep their coordinates: column 0 and row 0 are overwritten with
// black, and the added last column and last row stay black because the
// copy only visits the original W×H range. The ring is therefore one pixel
// wide on every side, but the top-left pixels of src are lost rather than
// shifted inward.
func Extend(src *image.Buf) *image.Buf {
	dst, _ := image.NewBuf(src.Width()+1, src.Height()+1)
	extendInto(dst, src)
	return dst
}

// extendInto fills a cleared (W+1)×(H+1) dst from src as described by Extend.
func extendInto(dst, src *image.Buf) {
	stride := src.Stride()
	for y := 1; y < src.Height(); y++ {
		// x == 0 stays black.
		copy(dst.Row(y)[image.BytesPerPixel:stride], src.Row(y)[image.BytesPerPixel:])
	}
}

// Pad returns src centered in a black frame padX columns wide on the left
// and right and padY rows tall on the top and bottom.
func Pad(src *image.Buf, padX, padY int) *image.Buf {
	dst, _ := image.NewBuf(src.Width()+2*padX, src.Height()+2*padY)
	padInto(dst, src, padX, padY)
	return dst
}

// padInto copies src into a cleared dst at offset (padX, padY).
func padInto(dst, src *image.Buf, padX, padY int) {
	off := padX * image.BytesPerPixel
	for y := range src.Height() {
		copy(dst.Row(y + padY)[off:], src.Row(y))
	}
}
