package pixfilter

import (
	"errors"
	"fmt"
)

// Pipeline errors. Operations wrap these with a "pixfilter: op" prefix
// and the offending sizes; test for them with errors.Is.
var (
	// ErrInvalidDimensions is returned for negative dimensions or a sample
	// slice whose length is not width*height*4.
	ErrInvalidDimensions = errors.New("invalid dimensions")

	// ErrDimensionMismatch is returned when two buffers passed to one
	// operation differ in width or height.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrImageTooSmall is returned when convolving an image with no
	// interior pixels (width or height below 3).
	ErrImageTooSmall = errors.New("image too small for a 3x3 kernel")

	// ErrUnknownFilter is returned when a filter name matches neither a
	// kernel nor an effect.
	ErrUnknownFilter = errors.New("unknown filter")

	// ErrNilBuffer is returned when a required buffer is nil.
	ErrNilBuffer = errors.New("nil buffer")
)

// checkSameSize reports whether a and b can be used together by op.
func checkSameSize(op string, a, b *PixelBuffer) error {
	if a == nil || b == nil {
		return fmt.Errorf("%s: %w", op, ErrNilBuffer)
	}
	if a.width != b.width || a.height != b.height {
		return fmt.Errorf("%s: %dx%d vs %dx%d: %w",
			op, a.width, a.height, b.width, b.height, ErrDimensionMismatch)
	}
	return nil
}
