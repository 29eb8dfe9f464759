package polarstrip

import "errors"

// Errors returned by polarstrip. Use errors.Is to match them; most are
// wrapped with the failing operation.
var (
	// ErrDecode is returned when a strip source cannot be read as an image
	// or has zero width.
	ErrDecode = errors.New("polarstrip: decode")

	// ErrEncode is returned when a canvas or strip cannot be serialized.
	ErrEncode = errors.New("polarstrip: encode")

	// ErrEmptyStrip is returned for strips of zero width.
	// It matches ErrDecode.
	ErrEmptyStrip = &emptyStripError{}

	// ErrInvalidLayout is returned by Layout.Validate.
	ErrInvalidLayout = errors.New("polarstrip: invalid layout")

	// ErrUnknownStrategy is returned by ParseStrategy.
	ErrUnknownStrategy = errors.New("polarstrip: unknown strategy")

	// ErrUnknownColor is returned for unparseable color names or hex values.
	ErrUnknownColor = errors.New("polarstrip: unknown color")
)

type emptyStripError struct{}

func (*emptyStripError) Error() string { return "polarstrip: strip has zero width" }

func (*emptyStripError) Is(target error) bool { return target == ErrDecode }
