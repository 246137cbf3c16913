// Package metrics: the twelve confusion-matrix statistics.
//
// Every calculator returns one value per batch slot. Two classes are scored
// one-vs-rest on class 1 ("positive"); three or more are scored per class
// and macro-averaged over the classes that appear in the slot — a class
// with no true samples and no predictions (tp+fp+fn = 0) says nothing about
// the model and is left out of the mean. A zero denominator contributes
// 0 — never NaN or Inf — so macro averages stay finite on degenerate slots.

package metrics

import "gonum.org/v1/gonum/stat"

// ratio divides with the documented zero-denominator convention.
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}

	return num / den
}

// perSlot evaluates f on every batch slot's class decomposition: directly on
// class 1 for the binary case, macro-averaged otherwise. Classes absent from
// a slot (no true samples, no predictions) are skipped, so a wide class
// space does not drag the average toward 0.
func (m *Metrics) perSlot(f func(c counts) float64) []float64 {
	out := make([]float64, m.batches)
	for b := range out {
		if m.classes == 2 {
			out[b] = f(m.classCounts(b, 1))
			continue
		}
		perClass := make([]float64, 0, m.classes)
		for k := 0; k < m.classes; k++ {
			c := m.classCounts(b, k)
			if c.tp+c.fp+c.fn == 0 {
				continue
			}
			perClass = append(perClass, f(c))
		}
		if len(perClass) > 0 {
			out[b] = stat.Mean(perClass, nil)
		}
	}

	return out
}

// Accuracy returns the fraction of samples whose prediction matches the
// true label, per batch slot.
func (m *Metrics) Accuracy() []float64 {
	out := make([]float64, m.batches)
	for b := range out {
		var diag, total float64
		for p := 0; p < m.classes; p++ {
			diag += m.matrix[b][p][p]
			for t := 0; t < m.classes; t++ {
				total += m.matrix[b][p][t]
			}
		}
		out[b] = ratio(diag, total)
	}

	return out
}

// TruePositiveRate (recall, sensitivity) returns TP / (TP + FN).
func (m *Metrics) TruePositiveRate() []float64 {
	return m.perSlot(func(c counts) float64 { return ratio(c.tp, c.tp+c.fn) })
}

// FalsePositiveRate returns FP / (FP + TN).
func (m *Metrics) FalsePositiveRate() []float64 {
	return m.perSlot(func(c counts) float64 { return ratio(c.fp, c.fp+c.tn) })
}

// FalseNegativeRate returns FN / (FN + TP).
func (m *Metrics) FalseNegativeRate() []float64 {
	return m.perSlot(func(c counts) float64 { return ratio(c.fn, c.fn+c.tp) })
}

// TrueNegativeRate (specificity) returns TN / (TN + FP).
func (m *Metrics) TrueNegativeRate() []float64 {
	return m.perSlot(func(c counts) float64 { return ratio(c.tn, c.tn+c.fp) })
}

// PositivePredictiveValue (precision) returns TP / (TP + FP).
func (m *Metrics) PositivePredictiveValue() []float64 {
	return m.perSlot(func(c counts) float64 { return ratio(c.tp, c.tp+c.fp) })
}

// FalseDiscoveryRate returns FP / (FP + TP).
func (m *Metrics) FalseDiscoveryRate() []float64 {
	return m.perSlot(func(c counts) float64 { return ratio(c.fp, c.fp+c.tp) })
}

// FalseOmissionRate returns FN / (FN + TN).
func (m *Metrics) FalseOmissionRate() []float64 {
	return m.perSlot(func(c counts) float64 { return ratio(c.fn, c.fn+c.tn) })
}

// NegativePredictiveValue returns TN / (TN + FN).
func (m *Metrics) NegativePredictiveValue() []float64 {
	return m.perSlot(func(c counts) float64 { return ratio(c.tn, c.tn+c.fn) })
}

// F1Score returns the harmonic mean of precision and recall.
func (m *Metrics) F1Score() []float64 {
	return m.perSlot(func(c counts) float64 {
		precision := ratio(c.tp, c.tp+c.fp)
		recall := ratio(c.tp, c.tp+c.fn)

		return ratio(2*precision*recall, precision+recall)
	})
}

// Dice returns 2·TP / (2·TP + FP + FN), the Sørensen–Dice coefficient.
func (m *Metrics) Dice() []float64 {
	return m.perSlot(func(c counts) float64 { return ratio(2*c.tp, 2*c.tp+c.fp+c.fn) })
}

// Jaccard returns TP / (TP + FP + FN), the intersection-over-union score.
func (m *Metrics) Jaccard() []float64 {
	return m.perSlot(func(c counts) float64 { return ratio(c.tp, c.tp+c.fp+c.fn) })
}
