package metrics_test

import (
	"testing"

	"github.com/katalvlaran/batchaug/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccuracy_Extremes(t *testing.T) {
	none := labelMetrics(t, []float64{1, 1, 0, 1}, []float64{0, 0, 1, 0}, 2)
	assert.Equal(t, []float64{0}, none.Accuracy())

	all := labelMetrics(t, []float64{1, 0, 1}, []float64{1, 0, 1}, 2)
	assert.Equal(t, []float64{1}, all.Accuracy())
}

// TestBinaryRates pins every rate against hand-computed counts for the
// class-1-positive decomposition of y_true=[1,1,0,1,0,0],
// y_pred=[0,0,1,0,0,0]: TP=0, FP=1, FN=3, TN=2.
func TestBinaryRates(t *testing.T) {
	m := labelMetrics(t, []float64{1, 1, 0, 1, 0, 0}, []float64{0, 0, 1, 0, 0, 0}, 2)

	assert.Equal(t, []float64{0}, m.TruePositiveRate())
	assert.InDelta(t, 1.0/3, m.FalsePositiveRate()[0], 1e-12)
	assert.Equal(t, []float64{1}, m.FalseNegativeRate())
	assert.InDelta(t, 2.0/3, m.TrueNegativeRate()[0], 1e-12)
	assert.Equal(t, []float64{0}, m.PositivePredictiveValue())
	assert.Equal(t, []float64{1}, m.FalseDiscoveryRate())
	assert.InDelta(t, 0.6, m.FalseOmissionRate()[0], 1e-12)
	assert.InDelta(t, 0.4, m.NegativePredictiveValue()[0], 1e-12)
	assert.Equal(t, []float64{0}, m.F1Score())
	assert.Equal(t, []float64{0}, m.Dice())
	assert.Equal(t, []float64{0}, m.Jaccard())
}

// TestZeroDenominator verifies degenerate slots yield 0, not NaN: with no
// positive samples and no positive predictions, every positive-side rate has
// an empty denominator.
func TestZeroDenominator(t *testing.T) {
	m := labelMetrics(t, []float64{0, 0}, []float64{0, 0}, 2)

	assert.Equal(t, []float64{1}, m.Accuracy())
	assert.Equal(t, []float64{0}, m.TruePositiveRate(), "no positives: TP+FN=0")
	assert.Equal(t, []float64{0}, m.PositivePredictiveValue(), "nothing predicted positive: TP+FP=0")
	assert.Equal(t, []float64{0}, m.F1Score())
	assert.Equal(t, []float64{0}, m.FalsePositiveRate())
	assert.Equal(t, []float64{1}, m.TrueNegativeRate())
}

// TestMacroAverage pins the multiclass decomposition of y_true=[0,1,2],
// y_pred=[0,1,1]: per-class recall (1, 1, 0) and precision (1, 1/2, 0).
func TestMacroAverage(t *testing.T) {
	m := labelMetrics(t, []float64{0, 1, 2}, []float64{0, 1, 1}, 3)

	assert.InDelta(t, 2.0/3, m.Accuracy()[0], 1e-12)
	assert.InDelta(t, 2.0/3, m.TruePositiveRate()[0], 1e-12)
	assert.InDelta(t, 0.5, m.PositivePredictiveValue()[0], 1e-12)

	// F1 per class: 1, 2/3, 0.
	assert.InDelta(t, 5.0/9, m.F1Score()[0], 1e-12)
	assert.InDelta(t, 5.0/9, m.Dice()[0], 1e-12)
	// Jaccard per class: 1, 1/2, 0.
	assert.InDelta(t, 0.5, m.Jaccard()[0], 1e-12)
}

// TestMacroAverage_PerfectPredictions verifies perfect multiclass
// predictions score 1.0 even when some classes never appear: averaging in
// an absent class's zero-guarded 0 would report 2/3 here.
func TestMacroAverage_PerfectPredictions(t *testing.T) {
	m := labelMetrics(t, []float64{2, 1}, []float64{2, 1}, 3)

	assert.Equal(t, []float64{1}, m.Accuracy())
	assert.Equal(t, []float64{1}, m.TruePositiveRate())
	assert.Equal(t, []float64{1}, m.PositivePredictiveValue())
	assert.Equal(t, []float64{1}, m.F1Score())
	assert.Equal(t, []float64{1}, m.Jaccard())
}

// TestMacroAverage_SkipsAbsentClasses verifies a class with no true samples
// and no predictions does not dilute the macro mean: the same data scores
// identically over a 3-class and a 4-class space.
func TestMacroAverage_SkipsAbsentClasses(t *testing.T) {
	three := labelMetrics(t, []float64{0, 1, 2}, []float64{0, 1, 1}, 3)
	four := labelMetrics(t, []float64{0, 1, 2}, []float64{0, 1, 1}, 4)

	assert.Equal(t, three.TruePositiveRate(), four.TruePositiveRate())
	assert.Equal(t, three.PositivePredictiveValue(), four.PositivePredictiveValue())
	assert.Equal(t, three.F1Score(), four.F1Score())
	assert.Equal(t, three.Jaccard(), four.Jaccard())
}

// TestBatchedSlotsIndependent verifies each slot is scored from its own
// matrix only.
func TestBatchedSlotsIndependent(t *testing.T) {
	yTrue, err := metrics.Matrix([][]float64{{1, 0, 1}, {1, 1, 0}})
	require.NoError(t, err)
	yPred, err := metrics.Matrix([][]float64{{1, 0, 1}, {0, 0, 1}})
	require.NoError(t, err)

	m, err := metrics.New(yTrue, yPred, metrics.DefaultOptions(2))
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 0}, m.Accuracy())
	assert.Equal(t, []float64{1, 0}, m.TruePositiveRate())
}

// TestIdempotence verifies calculators are pure reads: interleaved calls
// keep returning bit-identical results.
func TestIdempotence(t *testing.T) {
	m := labelMetrics(t, []float64{1, 1, 0, 1, 0, 0}, []float64{0, 0, 1, 0, 0, 0}, 2)

	first := m.Accuracy()
	_ = m.F1Score()
	_ = m.ConfusionMatrix()
	_ = m.Jaccard()
	assert.Equal(t, first, m.Accuracy())
	assert.Equal(t, m.FalseOmissionRate(), m.FalseOmissionRate())
}
