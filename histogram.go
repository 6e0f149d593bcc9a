package rasterfx

import (
	"context"
	"fmt"

	"github.com/gogpu/rasterfx/internal/filter"
)

// Levels counts pixels per luma level: Levels[i] is the number of pixels
// whose luma is i.
type Levels [256]int

// Total returns the number of counted pixels.
func (l Levels) Total() int {
	h := filter.Histogram(l)
	return h.Total()
}

// Bounds returns the lowest and highest occupied levels.
// ok is false when no pixel was counted.
func (l Levels) Bounds() (lo, hi int, ok bool) {
	h := filter.Histogram(l)
	return h.Bounds()
}

// Histogram returns the luma histogram of b. b is not modified and must not
// be nil.
func Histogram(b *Buffer) Levels {
	return Levels(filter.LumaHistogram(b.buf))
}

// StretchHistogram maps the occupied luma range of b linearly onto [0,255]
// and returns the result as a new grayscale buffer:
//
//	v' = (v - min) * 255 / (max - min)
//
// using integer division. If every pixel has the same luma, b itself is
// returned unchanged. b is never modified and must not be nil.
func StretchHistogram(b *Buffer) *Buffer {
	out, _ := stretchHistogram(context.Background(), b, nil)
	return out
}

func stretchHistogram(ctx context.Context, b *Buffer, pool *WorkerPool) (*Buffer, error) {
	h := filter.LumaHistogram(b.buf)
	lo, hi, _ := h.Bounds()
	Logger().Debug("rasterfx: stretch histogram", "min", lo, "max", hi)
	if lo == hi {
		return b, nil
	}

	lut := filter.StretchLUT(lo, hi)
	out, err := filter.RemapLuma(ctx, b.buf, &lut, pool.rows())
	if err != nil {
		return nil, translateError(err)
	}
	return wrap(out), nil
}

// ExtendHistogram maps lumas in [lo, hi] linearly onto [0,255] and returns
// the result as a new grayscale buffer:
//
//	v' = (v - lo) * 255 / (hi - lo)
//
// using integer division. Pixels whose luma lies outside the range keep it.
// lo and hi are swapped if reversed. Both must be in [0,255] and differ.
// b is not modified. A nil b is ErrInvalidArgument.
func ExtendHistogram(b *Buffer, lo, hi int) (*Buffer, error) {
	if b == nil {
		return nil, errNilBuffer
	}
	return extendHistogram(context.Background(), b, lo, hi, nil)
}

func extendHistogram(ctx context.Context, b *Buffer, lo, hi int, pool *WorkerPool) (*Buffer, error) {
	if lo < 0 || lo > 255 || hi < 0 || hi > 255 {
		return nil, fmt.Errorf("%w: range [%d,%d] outside [0,255]", ErrInvalidArgument, lo, hi)
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi {
		return nil, fmt.Errorf("%w: empty range [%d,%d]", ErrInvalidArgument, lo, hi)
	}

	lut := filter.ExtendLUT(lo, hi)
	out, err := filter.RemapLuma(ctx, b.buf, &lut, pool.rows())
	if err != nil {
		return nil, translateError(err)
	}
	return wrap(out), nil
}
