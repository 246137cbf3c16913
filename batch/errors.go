// Package batch: sentinel error set.
// Actions return these sentinels for malformed parameters — always before
// any per-item work starts — and the structured AssembleError for per-item
// failures. Tests match sentinels with errors.Is and AssembleError with
// errors.As.

package batch

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrBadSize indicates a non-positive batch size.
	ErrBadSize = errors.New("batch: size must be positive")

	// ErrDuplicateComponent indicates the same component name declared twice.
	ErrDuplicateComponent = errors.New("batch: duplicate component name")

	// ErrUnknownComponent indicates a component name outside the declared set.
	ErrUnknownComponent = errors.New("batch: unknown component")

	// ErrEmptyComponent indicates a declared component that has no data yet.
	ErrEmptyComponent = errors.New("batch: component has no data")

	// ErrSizeMismatch indicates a volume whose item count differs from the
	// batch size.
	ErrSizeMismatch = errors.New("batch: volume length does not match batch size")

	// ErrNilVolume indicates a nil volume assignment.
	ErrNilVolume = errors.New("batch: nil volume")

	// ErrBadIndex indicates an item index outside [0, Len).
	ErrBadIndex = errors.New("batch: item index out of range")

	// ErrBadProbability indicates a probability outside [0, 1].
	ErrBadProbability = errors.New("batch: probability must be in [0,1]")

	// ErrBadOrigin indicates an origin kind not allowed for the action.
	ErrBadOrigin = errors.New("batch: origin not valid for this action")

	// ErrMissingShape indicates a missing or non-positive target shape.
	ErrMissingShape = errors.New("batch: shape must be specified")

	// ErrBadFactor indicates a scale factor range that is not strictly
	// positive or has max < min.
	ErrBadFactor = errors.New("batch: factor must be greater than 0")

	// ErrBadAngle indicates an angle range with max < min.
	ErrBadAngle = errors.New("batch: angle range must have min ≤ max")

	// ErrBadMode indicates an unrecognized flip mode.
	ErrBadMode = errors.New("batch: mode must be one of LR, UD and All")

	// ErrChannelCount indicates a per-channel probability vector whose length
	// differs from the component's channel count.
	ErrChannelCount = errors.New("batch: channel probability count does not match channels")
)

// AssembleError reports that one or more per-item transform invocations
// failed. It carries every captured failure — not just the first — and is
// raised before the batch is mutated, so the component keeps its previous
// value.
type AssembleError struct {
	// Component is the component the action was assembling.
	Component string
	// Errs holds all captured per-item failures, in item order.
	Errs []error
}

// Error implements the error interface, listing every captured failure.
func (e *AssembleError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "batch: could not assemble %q: %d item(s) failed", e.Component, len(e.Errs))
	for _, err := range e.Errs {
		sb.WriteString("\n\t")
		sb.WriteString(err.Error())
	}

	return sb.String()
}

// Unwrap exposes the captured failures to errors.Is and errors.As.
func (e *AssembleError) Unwrap() []error { return e.Errs }
