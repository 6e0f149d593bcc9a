package rasterfx

import (
	"context"
	"fmt"

	"github.com/gogpu/rasterfx/internal/filter"
)

// Convolve applies k to b and returns a new buffer; b is not modified.
//
// Without edge extension the output has b's size and pixels within the
// kernel margin stay black. With extendEdges the source is first surrounded
// by black (see ExtendEdges) so pixels near the border are computed, and the
// output has the extended size.
//
// Each channel of a computed pixel is the sum over kernel cells of
// trunc(channel * weight), saturated into [0,255]. If the kernel would sample
// outside the image, Convolve returns ErrInvalidArgument.
//
// Convolve uses the BorderLegacy policy; see ConvolveContext for options.
func Convolve(b *Buffer, k *Kernel, extendEdges bool) (*Buffer, error) {
	return ConvolveContext(context.Background(), b, k, WithExtendEdges(extendEdges))
}

// ConvolveContext is Convolve with options and cancellation.
//
// The context is checked between output rows. If it is done, no buffer is
// returned and the error is ctx.Err().
func ConvolveContext(ctx context.Context, b *Buffer, k *Kernel, opts ...ConvolveOption) (*Buffer, error) {
	if b == nil || k == nil {
		return nil, fmt.Errorf("%w: nil buffer or kernel", ErrInvalidArgument)
	}

	o := defaultConvolveOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.border != BorderLegacy && o.border != BorderSymmetric {
		return nil, fmt.Errorf("%w: unknown border policy %s", ErrInvalidArgument, o.border)
	}

	pool, release := o.resolvePool()
	defer release()

	out, plan, err := filter.Convolve(ctx, b.buf, k.k, filter.Config{
		Extend: o.extend,
		Border: o.border,
		Pool:   pool,
	})
	if err != nil {
		return nil, translateError(err)
	}

	Logger().Debug("rasterfx: convolve",
		"src", fmt.Sprintf("%dx%d", b.Width(), b.Height()),
		"kernel", fmt.Sprintf("%dx%d", k.Width(), k.Height()),
		"border", o.border.String(),
		"extend", o.extend,
		"dst", fmt.Sprintf("%dx%d", out.Width(), out.Height()),
		"computed", plan.Computed(),
		"parallel", pool != nil)

	return wrap(out), nil
}

// ExtendEdges returns a (W+1)×(H+1) copy of b with a black ring.
//
// Pixels keep their coordinates: column 0 and row 0 become black, and the
// added last column and row are black. The first row and column of b are
// therefore not present in the result. b is not modified and must not be nil.
func ExtendEdges(b *Buffer) *Buffer {
	return wrap(filter.Extend(b.buf))
}

// PadEdges returns b centered in a black frame padX columns wide on the left
// and right and padY rows tall on the top and bottom. b is not modified.
// A nil b is ErrInvalidArgument.
func PadEdges(b *Buffer, padX, padY int) (*Buffer, error) {
	if b == nil {
		return nil, errNilBuffer
	}
	if padX < 0 || padY < 0 {
		return nil, fmt.Errorf("%w: negative padding %d,%d", ErrInvalidArgument, padX, padY)
	}
	return wrap(filter.Pad(b.buf, padX, padY)), nil
}
