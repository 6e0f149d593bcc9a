package filter

import (
	"context"

	"github.com/gogpu/rasterfx/internal/color"
	"github.com/gogpu/rasterfx/internal/image"
	"github.com/gogpu/rasterfx/internal/parallel"
)

// ColorMatrix is a 3x4 affine color transformation:
//
//	[R']   [m0  m1  m2  m3 ]   [R]
//	[G'] = [m4  m5  m6  m7 ] * [G]
//	[B']   [m8  m9  m10 m11]   [B]
//	                           [1]
//
// The fourth column is a bias in channel units [0,255]. Results are
// truncated toward zero and saturated into [0,255].
type ColorMatrix [12]float64

// IdentityMatrix returns a matrix that leaves colors unchanged.
func IdentityMatrix() ColorMatrix {
	return ColorMatrix{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
	}
}

// OffsetMatrix returns a matrix that adds delta to every channel.
func OffsetMatrix(delta float64) ColorMatrix {
	return ColorMatrix{
		1, 0, 0, delta,
		0, 1, 0, delta,
		0, 0, 1, delta,
	}
}

// Apply writes the transformed src into dst, which must have the same size.
func (m *ColorMatrix) Apply(ctx context.Context, src, dst *image.Buf, pool *parallel.WorkerPool) error {
	if !src.SameSize(dst) {
		return image.ErrInvalidDimensions
	}
	return parallel.Rows(ctx, pool, src.Height(), func(y int) {
		m.applyRow(dst.Row(y), src.Row(y))
	})
}

func (m *ColorMatrix) applyRow(dst, src []byte) {
	for i := 0; i+2 < len(src); i += image.BytesPerPixel {
		r := float64(src[i])
		g := float64(src[i+1])
		b := float64(src[i+2])

		dst[i] = color.Saturate(m[0]*r + m[1]*g + m[2]*b + m[3])
		dst[i+1] = color.Saturate(m[4]*r + m[5]*g + m[6]*b + m[7])
		dst[i+2] = color.Saturate(m[8]*r + m[9]*g + m[10]*b + m[11])
	}
}
