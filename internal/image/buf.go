// Package image provides the RGB8 pixel arena shared by the rasterfx filters.
//
// A Buf is one contiguous byte slice holding three channels per pixel in
// row-major order. Filters read a source Buf through Row and PixOffset and
// write disjoint rows of a destination Buf, which keeps row-parallel work
// free of locks.
package image

import (
	"errors"
)

// BytesPerPixel is the number of channel bytes stored per pixel (R, G, B).
const BytesPerPixel = 3

// Common errors for buffer operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("image: data buffer too small")

	// ErrOutOfBounds is returned when pixel coordinates are outside image bounds.
	ErrOutOfBounds = errors.New("image: coordinates out of bounds")
)

// Buf is a tightly packed RGB8 raster.
//
// Pixel (x, y) occupies data[(y*width+x)*3 : (y*width+x)*3+3].
// A freshly allocated Buf is opaque black.
//
// Thread safety: Buf is safe for concurrent reads. Concurrent writers must
// touch disjoint rows.
type Buf struct {
	data   []byte
	width  int
	height int
}

// NewBuf creates a black buffer with the given dimensions.
func NewBuf(width, height int) (*Buf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Buf{
		data:   make([]byte, width*height*BytesPerPixel),
		width:  width,
		height: height,
	}, nil
}

// FromRaw wraps existing RGB8 data without copying.
// The caller must not resize data while the Buf is in use.
func FromRaw(data []byte, width, height int) (*Buf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	required := width * height * BytesPerPixel
	if len(data) < required {
		return nil, ErrDataTooSmall
	}
	return &Buf{
		data:   data[:required],
		width:  width,
		height: height,
	}, nil
}

// Clone creates a deep copy of the buffer.
func (b *Buf) Clone() *Buf {
	data := make([]byte, len(b.data))
	copy(data, b.data)
	return &Buf{data: data, width: b.width, height: b.height}
}

// Width returns the width in pixels.
func (b *Buf) Width() int { return b.width }

// Height returns the height in pixels.
func (b *Buf) Height() int { return b.height }

// Stride returns the number of bytes per row.
func (b *Buf) Stride() int { return b.width * BytesPerPixel }

// Data returns the underlying pixel bytes.
func (b *Buf) Data() []byte { return b.data }

// Len returns the number of pixels.
func (b *Buf) Len() int { return b.width * b.height }

// SameSize reports whether o has the same dimensions as b.
func (b *Buf) SameSize(o *Buf) bool {
	return o != nil && b.width == o.width && b.height == o.height
}

// InBounds reports whether (x, y) addresses a pixel of the buffer.
func (b *Buf) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// PixOffset returns the byte offset of pixel (x, y).
// No bounds checking is performed.
func (b *Buf) PixOffset(x, y int) int {
	return (y*b.width + x) * BytesPerPixel
}

// Row returns the bytes of row y.
// No bounds checking is performed beyond the slice bounds check.
func (b *Buf) Row(y int) []byte {
	stride := b.width * BytesPerPixel
	start := y * stride
	return b.data[start : start+stride : start+stride]
}

// RGBAt returns the channels of pixel (x, y).
func (b *Buf) RGBAt(x, y int) (r, g, bl uint8, err error) {
	if !b.InBounds(x, y) {
		return 0, 0, 0, ErrOutOfBounds
	}
	i := b.PixOffset(x, y)
	return b.data[i], b.data[i+1], b.data[i+2], nil
}

// SetRGB sets the channels of pixel (x, y).
func (b *Buf) SetRGB(x, y int, r, g, bl uint8) error {
	if !b.InBounds(x, y) {
		return ErrOutOfBounds
	}
	i := b.PixOffset(x, y)
	b.data[i] = r
	b.data[i+1] = g
	b.data[i+2] = bl
	return nil
}

// Fill sets every pixel to (r, g, bl).
func (b *Buf) Fill(r, g, bl uint8) {
	for i := 0; i < len(b.data); i += BytesPerPixel {
		b.data[i] = r
		b.data[i+1] = g
		b.data[i+2] = bl
	}
}

// Clear sets every pixel to black.
func (b *Buf) Clear() {
	clear(b.data)
}
