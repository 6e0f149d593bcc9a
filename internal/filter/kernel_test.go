package filter

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

func TestGaussianKernelNormalized(t *testing.T) {
	tests := []struct {
		sigma float64
		size  int
	}{
		{0.5, 1}, {0.5, 3}, {1, 3}, {1, 5}, {1.4, 5}, {2, 7}, {3, 9}, {10, 21},
		{1e-170, 3}, {math.SmallestNonzeroFloat64, 5}, {1e300, 3},
	}

	for _, tt := range tests {
		k, err := GaussianKernel(tt.sigma, tt.size)
		if err != nil {
			t.Fatalf("GaussianKernel(%v, %d) error = %v", tt.sigma, tt.size, err)
		}
		if k.Width() != tt.size || k.Height() != tt.size {
			t.Errorf("GaussianKernel(%v, %d) size = %dx%d", tt.sigma, tt.size, k.Width(), k.Height())
		}
		if sum := k.Sum(); math.Abs(sum-1) > 1e-9 {
			t.Errorf("GaussianKernel(%v, %d) sum = %v, want 1", tt.sigma, tt.size, sum)
		}
	}
}

func TestGaussianKernelRotationSymmetric(t *testing.T) {
	k, err := GaussianKernel(1.7, 7)
	if err != nil {
		t.Fatal(err)
	}
	n := k.Width()

	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			// Rotating by 90° maps (i, j) to (n-1-j, i).
			if a, b := k.At(i, j), k.At(n-1-j, i); a != b {
				t.Fatalf("At(%d,%d) = %v != At(%d,%d) = %v", i, j, a, n-1-j, i, b)
			}
		}
	}
}

func TestGaussianKernelPeakAtCenter(t *testing.T) {
	k, err := GaussianKernel(2, 9)
	if err != nil {
		t.Fatal(err)
	}
	c := KernelCenter(9)
	peak := k.At(c, c)

	for j := 0; j < k.Height(); j++ {
		for i := 0; i < k.Width(); i++ {
			if k.At(i, j) > peak {
				t.Errorf("At(%d,%d) = %v exceeds center %v", i, j, k.At(i, j), peak)
			}
		}
	}
	if k.At(0, 0) >= peak {
		t.Errorf("corner %v should be below center %v", k.At(0, 0), peak)
	}
}

func TestGaussianKernelSizeOne(t *testing.T) {
	k, err := GaussianKernel(3, 1)
	if err != nil {
		t.Fatal(err)
	}
	if k.At(0, 0) != 1 {
		t.Errorf("1x1 Gaussian weight = %v, want 1", k.At(0, 0))
	}
}

func TestGaussianKernelInvalid(t *testing.T) {
	tests := []struct {
		name    string
		sigma   float64
		size    int
		wantErr error
	}{
		{"zero sigma", 0, 3, ErrInvalidSigma},
		{"negative sigma", -1, 3, ErrInvalidSigma},
		{"NaN sigma", math.NaN(), 3, ErrInvalidSigma},
		{"infinite sigma", math.Inf(1), 3, ErrInvalidSigma},
		{"zero size", 1, 0, ErrInvalidSize},
		{"negative size", 1, -3, ErrInvalidSize},
		{"even size", 1, 4, ErrInvalidSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GaussianKernel(tt.sigma, tt.size); !errors.Is(err, tt.wantErr) {
				t.Errorf("GaussianKernel() error = %v, want %v", err, tt.wantErr)
			}
			if _, err := CachedGaussianKernel(tt.sigma, tt.size); !errors.Is(err, tt.wantErr) {
				t.Errorf("CachedGaussianKernel() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCachedGaussianKernel(t *testing.T) {
	a, err := CachedGaussianKernel(1.25, 5)
	if err != nil {
		t.Fatal(err)
	}
	b, err := CachedGaussianKernel(1.25, 5)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("CachedGaussianKernel returned different instances for the same key")
	}

	fresh, _ := GaussianKernel(1.25, 5)
	for j := 0; j < 5; j++ {
		for i := 0; i < 5; i++ {
			if a.At(i, j) != fresh.At(i, j) {
				t.Fatalf("cached At(%d,%d) = %v, want %v", i, j, a.At(i, j), fresh.At(i, j))
			}
		}
	}

	if KernelCacheStats().Hits == 0 {
		t.Error("KernelCacheStats().Hits = 0 after a repeated lookup")
	}
}

func TestNewKernel(t *testing.T) {
	rows := [][]float64{
		{1, 2, 3},
		{4, 5, 6},
	}
	k, err := NewKernel(rows)
	if err != nil {
		t.Fatal(err)
	}
	if k.Width() != 3 || k.Height() != 2 {
		t.Errorf("size = %dx%d, want 3x2", k.Width(), k.Height())
	}
	if k.At(2, 1) != 6 || k.At(0, 1) != 4 {
		t.Errorf("At(2,1)=%v At(0,1)=%v, want 6 and 4", k.At(2, 1), k.At(0, 1))
	}
	if k.HalfWidth() != 1 || k.HalfHeight() != 1 {
		t.Errorf("half extents = %d,%d, want 1,1", k.HalfWidth(), k.HalfHeight())
	}
	if k.Sum() != 21 {
		t.Errorf("Sum() = %v, want 21", k.Sum())
	}

	// The kernel must not alias the caller's rows.
	rows[0][0] = 100
	if k.At(0, 0) != 1 {
		t.Error("NewKernel aliases input rows")
	}
	got := k.Rows()
	got[1][1] = -1
	if k.At(1, 1) != 5 {
		t.Error("Rows() aliases kernel weights")
	}
}

func TestNewKernelInvalid(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
	}{
		{"nil", nil},
		{"empty row", [][]float64{{}}},
		{"ragged", [][]float64{{1, 2}, {3}}},
		{"NaN", [][]float64{{1, math.NaN()}}},
		{"Inf", [][]float64{{math.Inf(-1)}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewKernel(tt.rows); !errors.Is(err, ErrInvalidKernel) {
				t.Errorf("NewKernel() error = %v, want ErrInvalidKernel", err)
			}
		})
	}
}

func BenchmarkGaussianKernel(b *testing.B) {
	for _, size := range []int{3, 9, 21} {
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_, _ = GaussianKernel(2, size)
			}
		})
	}
}

func BenchmarkCachedGaussianKernel(b *testing.B) {
	for _, size := range []int{3, 9, 21} {
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_, _ = CachedGaussianKernel(2, size)
			}
		})
	}
}
