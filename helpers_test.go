package rasterfx

import (
	"math/rand/v2"
	"testing"
)

// Test helper functions shared across rasterfx tests.

// newSolid creates a w×h buffer filled with c.
func newSolid(t testing.TB, w, h int, c RGB) *Buffer {
	t.Helper()
	b, err := NewBuffer(w, h)
	if err != nil {
		t.Fatalf("NewBuffer(%d, %d) error = %v", w, h, err)
	}
	b.Fill(c)
	return b
}

// newNoise creates a w×h buffer of deterministic pseudo-random pixels.
func newNoise(t testing.TB, w, h int, seed uint64) *Buffer {
	t.Helper()
	b, err := NewBuffer(w, h)
	if err != nil {
		t.Fatalf("NewBuffer(%d, %d) error = %v", w, h, err)
	}
	rng := rand.New(rand.NewPCG(seed, ^seed))
	for i := range b.Pix() {
		b.Pix()[i] = uint8(rng.IntN(256))
	}
	return b
}

// at returns pixel (x, y) or fails the test.
func at(t testing.TB, b *Buffer, x, y int) RGB {
	t.Helper()
	c, err := b.RGBAt(x, y)
	if err != nil {
		t.Fatalf("RGBAt(%d, %d) error = %v", x, y, err)
	}
	return c
}

// assertSame fails if the buffers differ in size or any pixel.
func assertSame(t testing.TB, got, want *Buffer) {
	t.Helper()
	if got.Width() != want.Width() || got.Height() != want.Height() {
		t.Fatalf("size = %dx%d, want %dx%d", got.Width(), got.Height(), want.Width(), want.Height())
	}
	g, w := got.Pix(), want.Pix()
	for i := range w {
		if g[i] != w[i] {
			p := i / 3
			t.Fatalf("pixel (%d,%d) channel %d = %d, want %d", p%want.Width(), p/want.Width(), i%3, g[i], w[i])
		}
	}
}

// assertGray fails unless every pixel of b has equal channels.
func assertGray(t testing.TB, b *Buffer) {
	t.Helper()
	pix := b.Pix()
	for i := 0; i < len(pix); i += 3 {
		if pix[i] != pix[i+1] || pix[i+1] != pix[i+2] {
			p := i / 3
			t.Fatalf("pixel (%d,%d) = %v, not gray", p%b.Width(), p/b.Width(), pix[i:i+3])
		}
	}
}
