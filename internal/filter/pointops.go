package filter

import (
	"context"

	"github.com/gogpu/rasterfx/internal/color"
	"github.com/gogpu/rasterfx/internal/image"
	"github.com/gogpu/rasterfx/internal/parallel"
)

// Grayscale replaces every pixel of b with its luma, in place.
func Grayscale(ctx context.Context, b *image.Buf, pool *parallel.WorkerPool) error {
	return parallel.Rows(ctx, pool, b.Height(), func(y int) {
		row := b.Row(y)
		for i := 0; i+2 < len(row); i += image.BytesPerPixel {
			l := color.Luma(row[i], row[i+1], row[i+2])
			row[i], row[i+1], row[i+2] = l, l, l
		}
	})
}

// Threshold binarizes b in place: pixels whose luma is below level become
// black, all others white.
func Threshold(ctx context.Context, b *image.Buf, level uint8, pool *parallel.WorkerPool) error {
	return parallel.Rows(ctx, pool, b.Height(), func(y int) {
		row := b.Row(y)
		for i := 0; i+2 < len(row); i += image.BytesPerPixel {
			var v uint8
			if color.Luma(row[i], row[i+1], row[i+2]) >= level {
				v = 255
			}
			row[i], row[i+1], row[i+2] = v, v, v
		}
	})
}
