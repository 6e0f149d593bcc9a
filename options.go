package rasterfx

import (
	"github.com/gogpu/rasterfx/internal/filter"
	"github.com/gogpu/rasterfx/internal/parallel"
)

// BorderPolicy selects how Convolve treats the image border.
type BorderPolicy = filter.Border

const (
	// BorderLegacy skips a margin derived from the kernel width on both axes.
	// With edge extension the output grows to (W+1)×(H+1) around a one-pixel
	// black ring. It is the default.
	BorderLegacy = filter.BorderLegacy

	// BorderSymmetric skips kernelWidth/2 columns and kernelHeight/2 rows.
	// With edge extension the source is padded symmetrically and the output
	// keeps the source size with every pixel computed.
	BorderSymmetric = filter.BorderSymmetric
)

// ConvolveOption configures a convolution.
//
// Example:
//
//	// Symmetric borders on four workers
//	out, err := rasterfx.ConvolveContext(ctx, buf, k,
//	    rasterfx.WithExtendEdges(true),
//	    rasterfx.WithBorderPolicy(rasterfx.BorderSymmetric),
//	    rasterfx.WithWorkers(4))
type ConvolveOption func(*convolveOptions)

// convolveOptions holds optional configuration for a convolution.
type convolveOptions struct {
	extend  bool
	border  BorderPolicy
	workers int
	pool    *WorkerPool
}

// defaultConvolveOptions returns the default convolution options.
func defaultConvolveOptions() convolveOptions {
	return convolveOptions{
		border: BorderLegacy,
	}
}

// WithExtendEdges pads the source with black before convolving so border
// pixels are computed.
func WithExtendEdges(extend bool) ConvolveOption {
	return func(o *convolveOptions) {
		o.extend = extend
	}
}

// WithBorderPolicy selects the border policy.
func WithBorderPolicy(p BorderPolicy) ConvolveOption {
	return func(o *convolveOptions) {
		o.border = p
	}
}

// WithWorkers runs output rows on a worker pool of n goroutines created for
// the call. Values below 2 keep the convolution sequential.
// WithPool takes precedence when both are given.
func WithWorkers(n int) ConvolveOption {
	return func(o *convolveOptions) {
		o.workers = n
	}
}

// WithPool runs output rows on a caller-owned worker pool, which is reused
// across calls and closed by the caller.
func WithPool(p *WorkerPool) ConvolveOption {
	return func(o *convolveOptions) {
		o.pool = p
	}
}

// WorkerPool is a reusable pool of goroutines for row-parallel filters.
type WorkerPool struct {
	pool *parallel.WorkerPool
}

// NewWorkerPool starts a pool with n workers. n <= 0 uses GOMAXPROCS.
func NewWorkerPool(n int) *WorkerPool {
	return &WorkerPool{pool: parallel.NewWorkerPool(n)}
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.pool.Workers()
}

// Close stops the workers. Filters given a closed pool run sequentially.
func (p *WorkerPool) Close() {
	p.pool.Close()
}

// rows returns the internal pool for row dispatch, or nil when p is nil or
// closed.
func (p *WorkerPool) rows() *parallel.WorkerPool {
	if p == nil {
		return nil
	}
	if !p.pool.IsRunning() {
		Logger().Warn("rasterfx: worker pool closed, running sequentially")
		return nil
	}
	return p.pool
}

// resolvePool returns the pool to use and a release func for pools created
// for a single call.
func (o *convolveOptions) resolvePool() (*parallel.WorkerPool, func()) {
	if o.pool != nil {
		return o.pool.rows(), func() {}
	}
	if o.workers < 2 {
		return nil, func() {}
	}
	p := parallel.NewWorkerPool(o.workers)
	return p, p.Close
}
