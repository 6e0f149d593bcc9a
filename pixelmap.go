package rasterfx

import (
	"context"
	"fmt"

	"github.com/gogpu/rasterfx/internal/filter"
)

// Grayscale replaces every pixel of b with its luma
// trunc(0.299R + 0.587G + 0.114B) and returns b. b must not be nil.
func Grayscale(b *Buffer) *Buffer {
	// Without cancellation or a pool the row loop cannot fail.
	_ = grayscale(context.Background(), b, nil)
	return b
}

func grayscale(ctx context.Context, b *Buffer, pool *WorkerPool) error {
	return filter.Grayscale(ctx, b.buf, pool.rows())
}

// Threshold converts b to black and white in place and returns it: pixels
// whose luma is below t become black, all others white.
// t must be in [0,255]. A nil b is ErrInvalidArgument.
func Threshold(b *Buffer, t int) (*Buffer, error) {
	if b == nil {
		return nil, errNilBuffer
	}
	if err := threshold(context.Background(), b, t, nil); err != nil {
		return nil, err
	}
	return b, nil
}

func threshold(ctx context.Context, b *Buffer, t int, pool *WorkerPool) error {
	if t < 0 || t > 255 {
		return fmt.Errorf("%w: threshold %d outside [0,255]", ErrInvalidArgument, t)
	}
	return filter.Threshold(ctx, b.buf, uint8(t), pool.rows())
}

// Brightness returns a copy of b with delta added to every channel,
// saturated into [0,255]. b is not modified and must not be nil.
func Brightness(b *Buffer, delta int) *Buffer {
	out, _ := brightness(context.Background(), b, delta, nil)
	return out
}

func brightness(ctx context.Context, b *Buffer, delta int, pool *WorkerPool) (*Buffer, error) {
	out := b.Clone()
	m := filter.OffsetMatrix(float64(delta))
	if err := m.Apply(ctx, b.buf, out.buf, pool.rows()); err != nil {
		return nil, translateError(err)
	}
	return out, nil
}
