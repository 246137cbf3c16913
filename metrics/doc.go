// Package metrics evaluates classification models through a per-batch-slot
// confusion matrix and the twelve standard statistics derived from it.
//
// 🚀 What is metrics?
//
//	A two-stage engine:
//	  • New — validates y_true/y_pred, normalizes the prediction format
//	    (hard labels, or probability vectors arg-maxed along a declared
//	    axis) and eagerly builds one C×C confusion matrix per batch slot
//	  • the calculators — Accuracy, TruePositiveRate, F1Score, Jaccard and
//	    the rest — pure reads of that matrix, one value per batch slot
//
// ✨ Guarantees:
//   - Strict validation before any counting: mismatched shapes, rank above
//     two, a missing axis in probability format or an out-of-range class
//     index all fail with a sentinel — never a silent best-effort guess.
//   - Two classes are scored one-vs-rest on class 1; more classes are
//     scored per class and macro-averaged.
//   - Zero denominators yield 0, never NaN or Inf, before averaging.
//   - Calculators never mutate state: repeated calls return identical
//     results.
//
// ⚙️ Usage:
//
//	m, err := metrics.New(yTrue, yPred, metrics.Options{
//		Format:     metrics.FormatProba,
//		Axis:       metrics.Along(1),
//		NumClasses: 3,
//	})
//	if err != nil { ... }
//	acc := m.Accuracy() // one value per batch slot
//
// Inputs are small dense Tensors (rank ≤ 2 after normalization): a scalar
// is one sample, a vector is one slot of samples, a matrix is a batch of
// sample vectors with the batch along axis 0.
package metrics
