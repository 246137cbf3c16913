// Package imagery: sentinel error set.
// All exported operations return these sentinels (optionally wrapped with
// context via fmt.Errorf("...: %w", ErrX)); tests match them with errors.Is.
// The one structured error, ShapeMismatchError, is matched with errors.As.

package imagery

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape indicates non-positive rows, cols or channels.
	ErrBadShape = errors.New("imagery: shape dimensions must be positive")

	// ErrPixelCount indicates a pixel slice whose length does not equal
	// rows*cols*channels.
	ErrPixelCount = errors.New("imagery: pixel count does not match shape")

	// ErrNilImage indicates a nil *Image argument.
	ErrNilImage = errors.New("imagery: nil image")

	// ErrEmptyStack indicates Stack was called with no items.
	ErrEmptyStack = errors.New("imagery: cannot stack zero images")

	// ErrBadChannel indicates a channel index outside [0, Channels).
	ErrBadChannel = errors.New("imagery: channel index out of range")

	// ErrBadPadding indicates a negative padding width.
	ErrBadPadding = errors.New("imagery: padding must be non-negative")

	// ErrBadDivisor indicates a zero normalization divisor.
	ErrBadDivisor = errors.New("imagery: divisor must be non-zero")

	// ErrBadWindow indicates a crop or embed window with non-positive extent.
	ErrBadWindow = errors.New("imagery: window extent must be positive")
)

// ShapeMismatchError reports that one item of a stack has a different shape
// than the first item. It is the typed outcome batch assembly recovers from:
// callers detect it with errors.As and apply a common-crop policy, never by
// inspecting the message text.
type ShapeMismatchError struct {
	// Index of the offending item within the stack input.
	Index int
	// Want is the shape of item 0 as (rows, cols, channels).
	Want [3]int
	// Got is the shape of the offending item.
	Got [3]int
}

// Error implements the error interface.
func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("imagery: stack: item %d has shape %d×%d×%d, want %d×%d×%d",
		e.Index, e.Got[0], e.Got[1], e.Got[2], e.Want[0], e.Want[1], e.Want[2])
}
