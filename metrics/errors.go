// Package metrics: sentinel error set.
// Every validation failure surfaces one of these (optionally wrapped with
// context via fmt.Errorf("...: %w", ErrX)); tests match them with errors.Is.

package metrics

import "errors"

var (
	// ErrNilTensor indicates a nil y_true or y_pred argument.
	ErrNilTensor = errors.New("metrics: nil tensor")

	// ErrBadFormat indicates a Format value outside the declared set.
	ErrBadFormat = errors.New("metrics: unknown prediction format")

	// ErrBadClassCount indicates NumClasses below 2.
	ErrBadClassCount = errors.New("metrics: need at least two classes")

	// ErrAxisRequired indicates probability format without a reduction axis.
	ErrAxisRequired = errors.New("metrics: proba format requires an axis")

	// ErrBadAxis indicates an axis outside the prediction tensor's rank.
	ErrBadAxis = errors.New("metrics: axis out of range")

	// ErrShapeMismatch indicates y_true and y_pred shapes that disagree
	// after format normalization.
	ErrShapeMismatch = errors.New("metrics: y_true and y_pred shapes must match")

	// ErrRank indicates a sample structure of rank 3 or higher after format
	// normalization.
	ErrRank = errors.New("metrics: rank must be at most 2")

	// ErrClassIndex indicates a label that is not an integer in
	// [0, NumClasses).
	ErrClassIndex = errors.New("metrics: class index out of range")

	// ErrBadTensorShape indicates a tensor constructor called with a shape
	// that does not describe its data.
	ErrBadTensorShape = errors.New("metrics: tensor shape does not match data")
)
