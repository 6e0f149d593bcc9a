package rasterfx

import (
	"context"
	"fmt"
)

// MutatingTransform modifies a buffer in place.
type MutatingTransform interface {
	// Name identifies the transform in logs and errors.
	Name() string

	// Apply modifies b. pool may be nil.
	Apply(ctx context.Context, b *Buffer, pool *WorkerPool) error
}

// PureTransform derives a buffer from its input without modifying it.
// The result may be the input itself when the transform is a no-op.
type PureTransform interface {
	// Name identifies the transform in logs and errors.
	Name() string

	// Transform returns the derived buffer. pool may be nil.
	Transform(ctx context.Context, b *Buffer, pool *WorkerPool) (*Buffer, error)
}

// GrayscaleOp replaces every pixel with its luma.
type GrayscaleOp struct{}

// Name implements MutatingTransform.
func (GrayscaleOp) Name() string { return "grayscale" }

// Apply implements MutatingTransform.
func (GrayscaleOp) Apply(ctx context.Context, b *Buffer, pool *WorkerPool) error {
	return grayscale(ctx, b, pool)
}

// ThresholdOp binarizes at Level; see Threshold.
type ThresholdOp struct {
	Level int
}

// Name implements MutatingTransform.
func (op ThresholdOp) Name() string { return fmt.Sprintf("threshold(%d)", op.Level) }

// Apply implements MutatingTransform.
func (op ThresholdOp) Apply(ctx context.Context, b *Buffer, pool *WorkerPool) error {
	return threshold(ctx, b, op.Level, pool)
}

// BrightnessOp adds Delta to every channel; see Brightness.
type BrightnessOp struct {
	Delta int
}

// Name implements PureTransform.
func (op BrightnessOp) Name() string { return fmt.Sprintf("brightness(%+d)", op.Delta) }

// Transform implements PureTransform.
func (op BrightnessOp) Transform(ctx context.Context, b *Buffer, pool *WorkerPool) (*Buffer, error) {
	return brightness(ctx, b, op.Delta, pool)
}

// ConvolveOp convolves with Kernel; see ConvolveContext.
type ConvolveOp struct {
	Kernel      *Kernel
	ExtendEdges bool
	Border      BorderPolicy
}

// Name implements PureTransform.
func (op ConvolveOp) Name() string {
	if op.Kernel == nil {
		return "convolve(nil)"
	}
	return fmt.Sprintf("convolve(%dx%d)", op.Kernel.Width(), op.Kernel.Height())
}

// Transform implements PureTransform.
func (op ConvolveOp) Transform(ctx context.Context, b *Buffer, pool *WorkerPool) (*Buffer, error) {
	return ConvolveContext(ctx, b, op.Kernel,
		WithExtendEdges(op.ExtendEdges),
		WithBorderPolicy(op.Border),
		WithPool(pool))
}

// StretchOp stretches the luma range; see StretchHistogram.
type StretchOp struct{}

// Name implements PureTransform.
func (StretchOp) Name() string { return "stretch" }

// Transform implements PureTransform.
func (StretchOp) Transform(ctx context.Context, b *Buffer, pool *WorkerPool) (*Buffer, error) {
	return stretchHistogram(ctx, b, pool)
}

// ExtendRangeOp maps [Lo, Hi] onto [0,255]; see ExtendHistogram.
type ExtendRangeOp struct {
	Lo, Hi int
}

// Name implements PureTransform.
func (op ExtendRangeOp) Name() string { return fmt.Sprintf("extend(%d,%d)", op.Lo, op.Hi) }

// Transform implements PureTransform.
func (op ExtendRangeOp) Transform(ctx context.Context, b *Buffer, pool *WorkerPool) (*Buffer, error) {
	return extendHistogram(ctx, b, op.Lo, op.Hi, pool)
}

// step is one pipeline stage; exactly one field is set.
type step struct {
	mut  MutatingTransform
	pure PureTransform
}

func (s step) name() string {
	if s.mut != nil {
		return s.mut.Name()
	}
	return s.pure.Name()
}

// Pipeline runs a sequence of transforms.
//
// Run never modifies its input: the buffer is cloned before the first
// mutating step that would otherwise touch it. Buffers produced by earlier
// steps are owned by the pipeline and are mutated in place.
//
// Example:
//
//	k, _ := rasterfx.GaussianKernel(1.4, 5)
//	out, err := rasterfx.NewPipeline().
//	    Then(rasterfx.ConvolveOp{Kernel: k, ExtendEdges: true}).
//	    Mutate(rasterfx.ThresholdOp{Level: 128}).
//	    Run(ctx, src)
type Pipeline struct {
	steps []step
	pool  *WorkerPool
}

// NewPipeline returns an empty pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// Mutate appends an in-place step.
func (p *Pipeline) Mutate(t MutatingTransform) *Pipeline {
	p.steps = append(p.steps, step{mut: t})
	return p
}

// Then appends a step that produces a new buffer.
func (p *Pipeline) Then(t PureTransform) *Pipeline {
	p.steps = append(p.steps, step{pure: t})
	return p
}

// WithPool runs every step on pool.
func (p *Pipeline) WithPool(pool *WorkerPool) *Pipeline {
	p.pool = pool
	return p
}

// Len returns the number of steps.
func (p *Pipeline) Len() int {
	return len(p.steps)
}

// Run applies the steps in order to src and returns the final buffer.
// With no steps Run returns src. A failed step aborts the run and its error
// is wrapped with the step's position and name.
func (p *Pipeline) Run(ctx context.Context, src *Buffer) (*Buffer, error) {
	if src == nil {
		return nil, errNilBuffer
	}

	cur := src
	owned := false
	for i, s := range p.steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		Logger().Debug("rasterfx: pipeline step", "index", i, "step", s.name(), "owned", owned)

		if s.mut != nil {
			if !owned {
				cur = cur.Clone()
				owned = true
			}
			if err := s.mut.Apply(ctx, cur, p.pool); err != nil {
				return nil, fmt.Errorf("step %d (%s): %w", i, s.name(), err)
			}
			continue
		}

		next, err := s.pure.Transform(ctx, cur, p.pool)
		if err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i, s.name(), err)
		}
		if next != cur {
			owned = true
		}
		cur = next
	}
	return cur, nil
}
