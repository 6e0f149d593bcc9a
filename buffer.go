package rasterfx

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	intImage "github.com/gogpu/rasterfx/internal/image"
)

// Buffer is a W×H grid of RGB pixels stored as one contiguous byte slice.
//
// Pixel (x, y) occupies Pix()[(y*W+x)*3 : (y*W+x)*3+3] in R, G, B order.
// A new Buffer is opaque black. Buffer implements image.Image.
//
// A Buffer is not safe for concurrent mutation.
type Buffer struct {
	buf *intImage.Buf
}

// NewBuffer creates a black buffer with the given dimensions.
// Width and height must be positive.
func NewBuffer(width, height int) (*Buffer, error) {
	buf, err := intImage.NewBuf(width, height)
	if err != nil {
		return nil, invalidArgument(err)
	}
	return &Buffer{buf: buf}, nil
}

// NewBufferFromPix wraps existing RGB8 data without copying.
// pix must hold at least width*height*3 bytes; extra bytes are ignored.
func NewBufferFromPix(pix []byte, width, height int) (*Buffer, error) {
	buf, err := intImage.FromRaw(pix, width, height)
	if err != nil {
		return nil, invalidArgument(err)
	}
	return &Buffer{buf: buf}, nil
}

// wrap adopts an internal buffer.
func wrap(buf *intImage.Buf) *Buffer {
	return &Buffer{buf: buf}
}

// FromImage copies img into a new Buffer.
//
// Translucent pixels are composited over black. The buffer origin is
// img.Bounds().Min.
func FromImage(img image.Image) (*Buffer, error) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, invalidArgument(intImage.ErrInvalidDimensions)
	}

	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Copy(rgba, image.Point{}, img, bounds, draw.Src, nil)

	b, err := NewBuffer(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}
	dst := b.buf.Data()
	for i, j := 0, 0; j < len(dst); i, j = i+4, j+3 {
		dst[j] = rgba.Pix[i]
		dst[j+1] = rgba.Pix[i+1]
		dst[j+2] = rgba.Pix[i+2]
	}
	return b, nil
}

// ToImage converts the buffer to an opaque image.RGBA.
func (b *Buffer) ToImage() *image.RGBA {
	img := image.NewRGBA(b.Bounds())
	src := b.buf.Data()
	for i, j := 0, 0; i < len(src); i, j = i+3, j+4 {
		img.Pix[j] = src[i]
		img.Pix[j+1] = src[i+1]
		img.Pix[j+2] = src[i+2]
		img.Pix[j+3] = 0xff
	}
	return img
}

// Width returns the width of the buffer.
func (b *Buffer) Width() int {
	return b.buf.Width()
}

// Height returns the height of the buffer.
func (b *Buffer) Height() int {
	return b.buf.Height()
}

// Pix returns the underlying pixel bytes. Writes are visible to the buffer.
func (b *Buffer) Pix() []byte {
	return b.buf.Data()
}

// RGBAt returns the color of pixel (x, y).
// Coordinates outside the buffer return ErrOutOfRange.
func (b *Buffer) RGBAt(x, y int) (RGB, error) {
	r, g, bl, err := b.buf.RGBAt(x, y)
	if err != nil {
		return RGB{}, translateError(err)
	}
	return RGB{R: r, G: g, B: bl}, nil
}

// SetRGB sets the color of pixel (x, y).
// Coordinates outside the buffer return ErrOutOfRange and nothing is written.
func (b *Buffer) SetRGB(x, y int, c RGB) error {
	return translateError(b.buf.SetRGB(x, y, c.R, c.G, c.B))
}

// Fill sets every pixel to c.
func (b *Buffer) Fill(c RGB) {
	b.buf.Fill(c.R, c.G, c.B)
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	return wrap(b.buf.Clone())
}

// At implements the image.Image interface.
// Coordinates outside the buffer return black.
func (b *Buffer) At(x, y int) color.Color {
	c, _ := b.RGBAt(x, y)
	return c
}

// Bounds implements the image.Image interface.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.buf.Width(), b.buf.Height())
}

// ColorModel implements the image.Image interface.
func (b *Buffer) ColorModel() color.Model {
	return RGBModel
}
