// Package metrics: input normalization and confusion-matrix construction.
//
// The constructor does all the work up front:
//
//	validate options → normalize the prediction format → validate
//	shapes and rank → count every (slot, sample) pair into a C×C matrix.
//
// The calculators in calculators.go only read the finished matrix, so they
// are cheap, side-effect-free and idempotent.

package metrics

import "fmt"

// Format declares how y_pred (and, in probability form, y_true) encodes
// classes.
type Format int

const (
	// FormatLabels means both tensors already hold class indices and must
	// share a shape exactly.
	FormatLabels Format = iota
	// FormatProba means y_pred holds per-class scores which are arg-maxed
	// along Options.Axis. A y_true of the same rank is treated as one-hot
	// and reduced along the same axis.
	FormatProba
)

// Axis is the class axis to arg-max in probability format. The zero value
// means "not provided" — probability format rejects it rather than guessing
// an axis; label format ignores it entirely. Construct with Along.
type Axis struct {
	n   int
	set bool
}

// Along returns the axis at index n.
func Along(n int) Axis { return Axis{n: n, set: true} }

// Options configures New.
type Options struct {
	// Format selects the prediction encoding.
	Format Format
	// Axis is the reduction axis for probability format. Mandatory there,
	// ignored for labels; leave the zero value to mean "none".
	Axis Axis
	// NumClasses is the closed class count C; every label must lie in
	// [0, C). Must be at least 2.
	NumClasses int
}

// DefaultOptions returns label-format Options for numClasses classes with
// no reduction axis.
func DefaultOptions(numClasses int) Options {
	return Options{Format: FormatLabels, NumClasses: numClasses}
}

// Metrics holds one confusion matrix per batch slot and serves the derived
// statistics. Construct it with New; the zero value is not usable.
type Metrics struct {
	batches int
	classes int
	samples int // samples per batch slot
	// matrix[b][p][t] counts samples of slot b predicted as class p whose
	// true label is t. Summing the predicted axis out recovers the
	// per-class true-label counts.
	matrix [][][]float64
}

// New validates y_true and y_pred, normalizes the prediction format and
// builds the per-slot confusion matrices.
//
// Normalization and validation, in order:
//  1. FormatProba requires Axis (ErrAxisRequired) and a valid axis into
//     y_pred (ErrBadAxis); y_pred is arg-maxed along it. When y_true has
//     y_pred's original rank it is one-hot and reduced the same way.
//  2. The normalized shapes must match exactly (ErrShapeMismatch).
//  3. Rank above 2 is rejected (ErrRank). Rank 2 means batch-of-vectors
//     with the batch along axis 0; rank 1 or 0 forms a single batch slot.
//  4. Every label must be an integer in [0, NumClasses) (ErrClassIndex).
//
// All failures happen before any counting; no partial state escapes.
func New(yTrue, yPred *Tensor, opts Options) (*Metrics, error) {
	if yTrue == nil || yPred == nil {
		return nil, ErrNilTensor
	}
	if opts.NumClasses < 2 {
		return nil, ErrBadClassCount
	}

	switch opts.Format {
	case FormatLabels:
		// Nothing to normalize.
	case FormatProba:
		if !opts.Axis.set {
			return nil, ErrAxisRequired
		}
		predRank := yPred.Rank()
		reduced, err := yPred.ArgMax(opts.Axis.n)
		if err != nil {
			return nil, err
		}
		yPred = reduced
		if yTrue.Rank() == predRank {
			if yTrue, err = yTrue.ArgMax(opts.Axis.n); err != nil {
				return nil, err
			}
		}
	default:
		return nil, ErrBadFormat
	}

	if !sameShape(yTrue, yPred) {
		return nil, fmt.Errorf("%w: true %v, pred %v", ErrShapeMismatch, yTrue.Shape(), yPred.Shape())
	}
	if yTrue.Rank() > 2 {
		return nil, fmt.Errorf("%w: got rank %d", ErrRank, yTrue.Rank())
	}

	batches, samples := 1, yTrue.Len()
	if yTrue.Rank() == 2 {
		shape := yTrue.Shape()
		batches, samples = shape[0], shape[1]
	}

	m := &Metrics{
		batches: batches,
		classes: opts.NumClasses,
		samples: samples,
		matrix:  make([][][]float64, batches),
	}
	for b := range m.matrix {
		m.matrix[b] = make([][]float64, opts.NumClasses)
		for p := range m.matrix[b] {
			m.matrix[b][p] = make([]float64, opts.NumClasses)
		}
	}

	trues, preds := yTrue.Values(), yPred.Values()
	for i := range trues {
		t, err := classIndex(trues[i], opts.NumClasses)
		if err != nil {
			return nil, err
		}
		p, err := classIndex(preds[i], opts.NumClasses)
		if err != nil {
			return nil, err
		}
		m.matrix[i/samples][p][t]++
	}

	return m, nil
}

// classIndex converts a label value to a class index, rejecting anything
// that is not an integer in [0, classes).
func classIndex(v float64, classes int) (int, error) {
	k := int(v)
	if float64(k) != v || k < 0 || k >= classes {
		return 0, fmt.Errorf("%w: %v with %d classes", ErrClassIndex, v, classes)
	}

	return k, nil
}

// Batches returns the number of batch slots B.
func (m *Metrics) Batches() int { return m.batches }

// Classes returns the class count C.
func (m *Metrics) Classes() int { return m.classes }

// ConfusionMatrix returns a copy of the (B, C, C) confusion matrix; entry
// [b][p][t] counts slot-b samples predicted p with true label t.
func (m *Metrics) ConfusionMatrix() [][][]float64 {
	out := make([][][]float64, m.batches)
	for b := range out {
		out[b] = make([][]float64, m.classes)
		for p := range out[b] {
			out[b][p] = append([]float64(nil), m.matrix[b][p]...)
		}
	}

	return out
}

// Column reshapes a per-slot result vector into a (B, 1) column, the layout
// model-evaluation pipelines concatenate across epochs.
func Column(values []float64) [][]float64 {
	out := make([][]float64, len(values))
	for i, v := range values {
		out[i] = []float64{v}
	}

	return out
}

// counts holds the one-vs-rest decomposition for a single class in a single
// batch slot.
type counts struct {
	tp, fp, fn, tn float64
}

// classCounts decomposes slot b's matrix for class k.
func (m *Metrics) classCounts(b, k int) counts {
	var c counts
	c.tp = m.matrix[b][k][k]
	total := 0.0
	for p := 0; p < m.classes; p++ {
		for t := 0; t < m.classes; t++ {
			total += m.matrix[b][p][t]
		}
		c.fn += m.matrix[b][p][k] // true k, predicted p
		c.fp += m.matrix[b][k][p] // predicted k, true p
	}
	c.fn -= c.tp
	c.fp -= c.tp
	c.tn = total - c.tp - c.fp - c.fn

	return c
}
