package filter

import (
	"context"
	"fmt"

	"github.com/gogpu/rasterfx/internal/color"
	"github.com/gogpu/rasterfx/internal/image"
	"github.com/gogpu/rasterfx/internal/parallel"
)

// Border selects how the convolution engine treats the image border.
type Border uint8

const (
	// BorderLegacy reproduces the historical engine: the skipped margin is
	// derived from the kernel width on both axes, and edge extension uses the
	// one-pixel ring of Extend, growing the output to (W+1)×(H+1).
	BorderLegacy Border = iota

	// BorderSymmetric uses the kernel width for the horizontal margin and the
	// kernel height for the vertical one, and edge extension pads
	// symmetrically so the output keeps the source size with every pixel
	// computed.
	BorderSymmetric
)

// String returns the policy name.
func (b Border) String() string {
	switch b {
	case BorderLegacy:
		return "legacy"
	case BorderSymmetric:
		return "symmetric"
	default:
		return fmt.Sprintf("Border(%d)", uint8(b))
	}
}

// Config holds the convolution settings.
type Config struct {
	// Extend pads the source before convolving so border pixels are computed.
	Extend bool

	// Border selects the border policy.
	Border Border

	// Pool runs output rows in parallel when non-nil.
	Pool *parallel.WorkerPool
}

// Plan describes where a convolution samples and writes.
//
// The engine samples a buffer of SampleWidth×SampleHeight (the source, or
// the padded source when extending) and computes the positions
// X0 ≤ x < X1, Y0 ≤ y < Y1 of that buffer. Each computed position is written
// to (x-OffsetX, y-OffsetY) of a DstWidth×DstHeight output; every other
// output pixel stays black.
type Plan struct {
	SampleWidth, SampleHeight int
	DstWidth, DstHeight       int
	X0, X1, Y0, Y1            int
	OffsetX, OffsetY          int

	extend bool
	border Border
	padX   int
	padY   int
}

// Empty reports whether the plan computes no pixel at all.
func (p Plan) Empty() bool {
	return p.X0 >= p.X1 || p.Y0 >= p.Y1
}

// Computed returns the number of output pixels the plan computes.
func (p Plan) Computed() int {
	if p.Empty() {
		return 0
	}
	return (p.X1 - p.X0) * (p.Y1 - p.Y0)
}

// NewPlan computes the convolution plan of a kernel over a width×height image.
// It fails with ErrKernelTooLarge if any computed position would sample
// outside the sampled buffer.
func NewPlan(width, height int, k *Kernel, extend bool, border Border) (Plan, error) {
	hw, hh := k.HalfWidth(), k.HalfHeight()
	p := Plan{extend: extend, border: border}

	switch {
	case border == BorderSymmetric && extend:
		p.padX, p.padY = hw, hh
		p.SampleWidth, p.SampleHeight = width+2*hw, height+2*hh
		p.DstWidth, p.DstHeight = width, height
		p.X0, p.X1 = hw, width+hw
		p.Y0, p.Y1 = hh, height+hh
		p.OffsetX, p.OffsetY = hw, hh

	case border == BorderSymmetric:
		p.SampleWidth, p.SampleHeight = width, height
		p.DstWidth, p.DstHeight = width, height
		p.X0, p.X1 = hw, width-hw
		p.Y0, p.Y1 = hh, height-hh

	case extend:
		p.SampleWidth, p.SampleHeight = width+1, height+1
		p.DstWidth, p.DstHeight = width+1, height+1
		p.X0, p.X1 = hw, width+1-hw
		p.Y0, p.Y1 = hw, height+1-hw

	default:
		p.SampleWidth, p.SampleHeight = width, height
		p.DstWidth, p.DstHeight = width, height
		p.X0, p.X1 = hw, width-hw
		p.Y0, p.Y1 = hw, height-hw
	}

	if p.Empty() {
		return p, nil
	}

	// Offsets sampled around a computed position span
	// [-hw, k.Width()-1-hw] horizontally and [-hh, k.Height()-1-hh] vertically.
	if p.X0-hw < 0 || p.X1-1+k.Width()-1-hw >= p.SampleWidth ||
		p.Y0-hh < 0 || p.Y1-1+k.Height()-1-hh >= p.SampleHeight {
		return p, fmt.Errorf("%w: %dx%d kernel over %dx%d %s image",
			ErrKernelTooLarge, k.Width(), k.Height(), width, height, border)
	}
	return p, nil
}

// Convolve applies k to src and returns a new buffer plus the plan used.
//
// Each computed channel is the sum over kernel cells of
// trunc(sample * weight), saturated into [0,255]. src is never modified.
// If ctx is canceled between rows, Convolve returns ctx.Err() and no buffer.
func Convolve(ctx context.Context, src *image.Buf, k *Kernel, cfg Config) (*image.Buf, Plan, error) {
	plan, err := NewPlan(src.Width(), src.Height(), k, cfg.Extend, cfg.Border)
	if err != nil {
		return nil, plan, err
	}
	if err := ctx.Err(); err != nil {
		return nil, plan, err
	}

	dst, err := image.NewBuf(plan.DstWidth, plan.DstHeight)
	if err != nil {
		return nil, plan, err
	}
	if plan.Empty() {
		return dst, plan, nil
	}

	sampled, release, err := plan.sampleSource(src)
	if err != nil {
		return nil, plan, err
	}
	defer release()

	err = parallel.Rows(ctx, cfg.Pool, plan.Y1-plan.Y0, func(r int) {
		y := plan.Y0 + r
		convolveRow(dst.Row(y-plan.OffsetY), sampled, k, y, plan)
	})
	if err != nil {
		return nil, plan, err
	}
	return dst, plan, nil
}

// sampleSource returns the buffer the plan samples and a release func that
// returns any scratch buffer to the pool.
func (p Plan) sampleSource(src *image.Buf) (*image.Buf, func(), error) {
	if !p.extend {
		return src, func() {}, nil
	}

	scratch, err := image.GetFromDefault(p.SampleWidth, p.SampleHeight)
	if err != nil {
		return nil, nil, err
	}
	if p.border == BorderSymmetric {
		padInto(scratch, src, p.padX, p.padY)
	} else {
		extendInto(scratch, src)
	}
	return scratch, func() { image.PutToDefault(scratch) }, nil
}

// convolveRow computes row y of the sampled buffer into dst.
func convolveRow(dst []byte, src *image.Buf, k *Kernel, y int, p Plan) {
	hw, hh := k.HalfWidth(), k.HalfHeight()
	kh := k.Height()

	for x := p.X0; x < p.X1; x++ {
		var sumR, sumG, sumB int
		base := (x - hw) * image.BytesPerPixel

		for j := range kh {
			row := src.Row(y + j - hh)
			for i, w := range k.Row(j) {
				o := base + i*image.BytesPerPixel
				sumR += int(float64(row[o]) * w)
				sumG += int(float64(row[o+1]) * w)
				sumB += int(float64(row[o+2]) * w)
			}
		}

		d := (x - p.OffsetX) * image.BytesPerPixel
		dst[d] = color.Clamp255(sumR)
		dst[d+1] = color.Clamp255(sumG)
		dst[d+2] = color.Clamp255(sumB)
	}
}
