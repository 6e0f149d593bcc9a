package rasterfx

import "github.com/gogpu/rasterfx/internal/filter"

// Kernel is an immutable matrix of convolution weights.
//
// At(i, j) is the weight applied to the pixel at horizontal offset i and
// vertical offset j from the window's top-left cell; the window is centered
// on cell (Width()/2, Height()/2).
type Kernel struct {
	k *filter.Kernel
}

// NewKernel creates a kernel from rows of weights, where rows[j][i] is the
// weight at (i, j). Rows must be non-empty, of equal length, and finite.
func NewKernel(rows [][]float64) (*Kernel, error) {
	k, err := filter.NewKernel(rows)
	if err != nil {
		return nil, invalidArgument(err)
	}
	return &Kernel{k: k}, nil
}

// GaussianKernel generates a size×size Gaussian kernel normalized to sum 1.
//
// The raw weight of the cell at offset (dx, dy) from the center is
// exp(-(dx²+dy²)/(2σ²)). sigma must be positive and finite, size a positive
// odd integer; otherwise ErrInvalidArgument is returned.
func GaussianKernel(sigma float64, size int) (*Kernel, error) {
	k, err := filter.GaussianKernel(sigma, size)
	if err != nil {
		return nil, invalidArgument(err)
	}
	return &Kernel{k: k}, nil
}

// CachedGaussianKernel is like GaussianKernel but returns a kernel shared
// with earlier calls for the same sigma and size. A bounded number of
// recently used kernels is kept.
func CachedGaussianKernel(sigma float64, size int) (*Kernel, error) {
	k, err := filter.CachedGaussianKernel(sigma, size)
	if err != nil {
		return nil, invalidArgument(err)
	}
	return &Kernel{k: k}, nil
}

// Width returns the number of columns.
func (k *Kernel) Width() int { return k.k.Width() }

// Height returns the number of rows.
func (k *Kernel) Height() int { return k.k.Height() }

// At returns the weight at column i, row j.
// It panics if (i, j) is outside the kernel.
func (k *Kernel) At(i, j int) float64 { return k.k.At(i, j) }

// Sum returns the sum of all weights.
func (k *Kernel) Sum() float64 { return k.k.Sum() }

// Rows returns a copy of the weights as rows.
func (k *Kernel) Rows() [][]float64 { return k.k.Rows() }

// Same reports whether k and o share the same weights, as kernels returned
// by CachedGaussianKernel for equal arguments do.
func (k *Kernel) Same(o *Kernel) bool {
	return o != nil && k.k == o.k
}

// KernelCacheStats reports the number of kernels held by the shared Gaussian
// kernel cache and its lookup hits and misses.
func KernelCacheStats() (entries int, hits, misses uint64) {
	s := filter.KernelCacheStats()
	return s.Len, s.Hits, s.Misses
}
