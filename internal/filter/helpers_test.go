package filter

import (
	"math/rand/v2"
	"testing"

	"github.com/gogpu/rasterfx/internal/color"
	"github.com/gogpu/rasterfx/internal/image"
)

// Test helper functions shared across filter tests.

// newFilled creates a w×h buffer filled with (r, g, b).
func newFilled(t testing.TB, w, h int, r, g, b uint8) *image.Buf {
	t.Helper()
	buf, err := image.NewBuf(w, h)
	if err != nil {
		t.Fatalf("NewBuf(%d, %d) error = %v", w, h, err)
	}
	buf.Fill(r, g, b)
	return buf
}

// newRandom creates a w×h buffer of deterministic pseudo-random pixels.
func newRandom(t testing.TB, w, h int, seed uint64) *image.Buf {
	t.Helper()
	buf, err := image.NewBuf(w, h)
	if err != nil {
		t.Fatalf("NewBuf(%d, %d) error = %v", w, h, err)
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	for i := range buf.Data() {
		buf.Data()[i] = uint8(rng.IntN(256))
	}
	return buf
}

// mustKernel builds a kernel from rows or fails the test.
func mustKernel(t testing.TB, rows [][]float64) *Kernel {
	t.Helper()
	k, err := NewKernel(rows)
	if err != nil {
		t.Fatalf("NewKernel() error = %v", err)
	}
	return k
}

// pixel returns the channels at (x, y) or fails the test.
func pixel(t testing.TB, b *image.Buf, x, y int) [3]uint8 {
	t.Helper()
	r, g, bl, err := b.RGBAt(x, y)
	if err != nil {
		t.Fatalf("RGBAt(%d, %d) error = %v", x, y, err)
	}
	return [3]uint8{r, g, bl}
}

// referenceConvolve is a direct, unoptimized statement of the convolution
// rules, used to cross-check the engine.
func referenceConvolve(src *image.Buf, k *Kernel, extend bool, border Border) *image.Buf {
	w, h := src.Width(), src.Height()
	hw, hh := k.Width()/2, k.Height()/2

	sample := func(x, y int) [3]uint8 {
		r, g, b, _ := src.RGBAt(x, y)
		return [3]uint8{r, g, b}
	}
	dw, dh := w, h
	x0, x1, y0, y1 := hw, w-hw, hw, h-hw
	offX, offY := 0, 0

	switch {
	case extend && border == BorderLegacy:
		dw, dh = w+1, h+1
		x0, x1, y0, y1 = hw, w+1-hw, hw, h+1-hw
		sample = func(x, y int) [3]uint8 {
			if x == 0 || y == 0 || x >= w || y >= h {
				return [3]uint8{}
			}
			r, g, b, _ := src.RGBAt(x, y)
			return [3]uint8{r, g, b}
		}
	case extend && border == BorderSymmetric:
		x0, x1, y0, y1 = hw, w+hw, hh, h+hh
		offX, offY = hw, hh
		sample = func(x, y int) [3]uint8 {
			r, g, b, err := src.RGBAt(x-hw, y-hh)
			if err != nil {
				return [3]uint8{}
			}
			return [3]uint8{r, g, b}
		}
	case border == BorderSymmetric:
		y0, y1 = hh, h-hh
	}

	dst, _ := image.NewBuf(dw, dh)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			var sum [3]int
			for j := 0; j < k.Height(); j++ {
				for i := 0; i < k.Width(); i++ {
					p := sample(x+i-hw, y+j-hh)
					for c := 0; c < 3; c++ {
						sum[c] += int(float64(p[c]) * k.At(i, j))
					}
				}
			}
			_ = dst.SetRGB(x-offX, y-offY, color.Clamp255(sum[0]), color.Clamp255(sum[1]), color.Clamp255(sum[2]))
		}
	}
	return dst
}

// equalBufs reports the first differing pixel of two buffers.
func equalBufs(t testing.TB, got, want *image.Buf) {
	t.Helper()
	if !got.SameSize(want) {
		t.Fatalf("size = %dx%d, want %dx%d", got.Width(), got.Height(), want.Width(), want.Height())
	}
	for y := 0; y < want.Height(); y++ {
		for x := 0; x < want.Width(); x++ {
			if g, w := pixel(t, got, x, y), pixel(t, want, x, y); g != w {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, g, w)
			}
		}
	}
}
