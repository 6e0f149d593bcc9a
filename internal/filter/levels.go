package filter

import (
	"context"

	"github.com/gogpu/rasterfx/internal/color"
	"github.com/gogpu/rasterfx/internal/image"
	"github.com/gogpu/rasterfx/internal/parallel"
)

// Histogram counts pixels per luma value.
type Histogram [256]int

// LumaHistogram returns the luma histogram of b. b is not modified.
func LumaHistogram(b *image.Buf) Histogram {
	var h Histogram
	lumas := make([]byte, b.Width())
	for y := range b.Height() {
		color.LumaRow(lumas, b.Row(y))
		for _, l := range lumas {
			h[l]++
		}
	}
	return h
}

// Total returns the number of counted pixels.
func (h *Histogram) Total() int {
	n := 0
	for _, c := range h {
		n += c
	}
	return n
}

// Bounds returns the lowest and highest occupied bins.
// ok is false for an empty histogram.
func (h *Histogram) Bounds() (lo, hi int, ok bool) {
	lo, hi = -1, -1
	for v, c := range h {
		if c == 0 {
			continue
		}
		if lo < 0 {
			lo = v
		}
		hi = v
	}
	return lo, hi, lo >= 0
}

// LUT maps a luma value to an output gray level.
type LUT [256]uint8

// StretchLUT maps [lo, hi] linearly onto [0, 255] with integer division.
// Values outside the range saturate. lo must be less than hi.
func StretchLUT(lo, hi int) LUT {
	var lut LUT
	for v := range lut {
		lut[v] = color.Clamp255((v - lo) * 255 / (hi - lo))
	}
	return lut
}

// ExtendLUT maps [lo, hi] linearly onto [0, 255] with integer division and
// leaves values outside the range unchanged. lo must be less than hi.
func ExtendLUT(lo, hi int) LUT {
	var lut LUT
	for v := range lut {
		if v >= lo && v <= hi {
			lut[v] = uint8((v - lo) * 255 / (hi - lo))
		} else {
			lut[v] = uint8(v)
		}
	}
	return lut
}

// RemapLuma returns a new grayscale buffer whose pixels are lut[luma(src)].
func RemapLuma(ctx context.Context, src *image.Buf, lut *LUT, pool *parallel.WorkerPool) (*image.Buf, error) {
	dst, err := image.NewBuf(src.Width(), src.Height())
	if err != nil {
		return nil, err
	}
	err = parallel.Rows(ctx, pool, src.Height(), func(y int) {
		in, out := src.Row(y), dst.Row(y)
		for i := 0; i+2 < len(in); i += image.BytesPerPixel {
			v := lut[color.Luma(in[i], in[i+1], in[i+2])]
			out[i], out[i+1], out[i+2] = v, v, v
		}
	})
	if err != nil {
		return nil, err
	}
	return dst, nil
}
