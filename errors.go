package rasterfx

import (
	"context"
	"errors"
	"fmt"

	intImage "github.com/gogpu/rasterfx/internal/image"
)

// Errors returned by rasterfx operations.
//
// Errors from the underlying filters wrap one of these sentinels, so
// errors.Is(err, ErrInvalidArgument) holds together with the more specific
// cause.
var (
	// ErrInvalidArgument is returned for arguments outside an operation's
	// domain: bad kernel parameters, thresholds outside [0,255], a kernel that
	// does not fit the image.
	ErrInvalidArgument = errors.New("rasterfx: invalid argument")

	// ErrOutOfRange is returned by checked pixel accessors for coordinates
	// outside the buffer.
	ErrOutOfRange = errors.New("rasterfx: coordinates out of range")
)

// errNilBuffer is returned by operations with an error result when passed a
// nil Buffer.
var errNilBuffer = fmt.Errorf("%w: nil buffer", ErrInvalidArgument)

// invalidArgument wraps err as an ErrInvalidArgument.
func invalidArgument(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
}

// translateError maps an internal error onto the public sentinels.
// Context errors are returned unchanged.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, intImage.ErrOutOfBounds):
		return fmt.Errorf("%w: %w", ErrOutOfRange, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return invalidArgument(err)
	}
}
