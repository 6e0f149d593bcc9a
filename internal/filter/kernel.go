package filter

import (
	"errors"
	"math"

	"github.com/gogpu/rasterfx/internal/cache"
)

// Kernel errors.
var (
	// ErrInvalidSigma is returned for a non-positive, NaN or infinite sigma.
	ErrInvalidSigma = errors.New("filter: sigma must be positive and finite")

	// ErrInvalidSize is returned for a kernel size that is not a positive odd integer.
	ErrInvalidSize = errors.New("filter: kernel size must be a positive odd integer")

	// ErrInvalidKernel is returned for empty, ragged or non-finite literal kernels.
	ErrInvalidKernel = errors.New("filter: kernel must be a non-empty rectangle of finite weights")

	// ErrKernelTooLarge is returned when a convolution would sample outside the image.
	ErrKernelTooLarge = errors.New("filter: kernel does not fit inside the image")
)

// Kernel is an immutable 2D weight matrix.
//
// Weights are stored row-major: At(i, j) is the weight applied to the pixel
// at horizontal offset i and vertical offset j from the window origin.
type Kernel struct {
	weights []float64
	width   int
	height  int
}

// NewKernel creates a kernel from rows of weights; rows[j][i] becomes At(i, j).
// All rows must be non-empty, of equal length, and hold finite values.
func NewKernel(rows [][]float64) (*Kernel, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidKernel
	}

	width := len(rows[0])
	weights := make([]float64, 0, width*len(rows))
	for _, row := range rows {
		if len(row) != width {
			return nil, ErrInvalidKernel
		}
		for _, w := range row {
			if math.IsNaN(w) || math.IsInf(w, 0) {
				return nil, ErrInvalidKernel
			}
		}
		weights = append(weights, row...)
	}

	return &Kernel{weights: weights, width: width, height: len(rows)}, nil
}

// GaussianKernel generates a size×size isotropic Gaussian kernel.
//
// The raw weight at offset (dx, dy) from the center cell is
// exp(-(dx²+dy²)/(2σ²)), with the center at index size/2. Weights are then
// divided by their sum, so the kernel sums to 1.
func GaussianKernel(sigma float64, size int) (*Kernel, error) {
	if err := validateGaussian(sigma, size); err != nil {
		return nil, err
	}

	weights := make([]float64, size*size)
	center := KernelCenter(size)
	sum := 0.0

	// Offsets are scaled by sigma before squaring so a tiny sigma cannot
	// underflow the denominator to zero.
	for j := range size {
		v := float64(j-center) / sigma
		for i := range size {
			u := float64(i-center) / sigma
			w := math.Exp(-(u*u + v*v) / 2)
			weights[j*size+i] = w
			sum += w
		}
	}

	for i := range weights {
		weights[i] /= sum
	}

	return &Kernel{weights: weights, width: size, height: size}, nil
}

func validateGaussian(sigma float64, size int) error {
	if !(sigma > 0) || math.IsInf(sigma, 1) {
		return ErrInvalidSigma
	}
	if size <= 0 || size%2 == 0 {
		return ErrInvalidSize
	}
	return nil
}

// gaussianKey identifies a cached Gaussian kernel.
type gaussianKey struct {
	sigma float64
	size  int
}

// kernelCache holds recently generated Gaussian kernels.
var kernelCache = cache.New[gaussianKey, *Kernel](64)

// CachedGaussianKernel returns a shared Gaussian kernel for (sigma, size),
// generating it on first use. The returned kernel must not be modified;
// Kernel exposes no mutators, so sharing is safe.
func CachedGaussianKernel(sigma float64, size int) (*Kernel, error) {
	if err := validateGaussian(sigma, size); err != nil {
		return nil, err
	}
	return kernelCache.GetOrCreate(gaussianKey{sigma: sigma, size: size}, func() *Kernel {
		k, _ := GaussianKernel(sigma, size)
		return k
	}), nil
}

// KernelCacheStats reports the Gaussian kernel cache statistics.
func KernelCacheStats() cache.Stats {
	return kernelCache.Stats()
}

// KernelCenter returns the center index of a kernel of the given size.
func KernelCenter(kernelSize int) int {
	return kernelSize / 2
}

// Width returns the number of columns.
func (k *Kernel) Width() int { return k.width }

// Height returns the number of rows.
func (k *Kernel) Height() int { return k.height }

// HalfWidth returns width/2, the horizontal reach left of the window center.
func (k *Kernel) HalfWidth() int { return k.width / 2 }

// HalfHeight returns height/2, the vertical reach above the window center.
func (k *Kernel) HalfHeight() int { return k.height / 2 }

// At returns the weight at column i, row j.
func (k *Kernel) At(i, j int) float64 {
	return k.weights[j*k.width+i]
}

// Row returns the weights of row j. The slice must not be modified.
func (k *Kernel) Row(j int) []float64 {
	return k.weights[j*k.width : (j+1)*k.width : (j+1)*k.width]
}

// Sum returns the sum of all weights.
func (k *Kernel) Sum() float64 {
	sum := 0.0
	for _, w := range k.weights {
		sum += w
	}
	return sum
}

// Rows returns a copy of the weights as rows, the inverse of NewKernel.
func (k *Kernel) Rows() [][]float64 {
	rows := make([][]float64, k.height)
	for j := range rows {
		rows[j] = append([]float64(nil), k.Row(j)...)
	}
	return rows
}
