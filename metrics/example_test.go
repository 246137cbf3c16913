package metrics_test

import (
	"fmt"

	"github.com/katalvlaran/batchaug/metrics"
)

// ExampleNew scores hard label predictions for a single batch slot.
//
// Scenario:
//  1. Six samples, two classes, labels format.
//  2. The model gets two of six right.
func ExampleNew() {
	yTrue := metrics.Vector([]float64{1, 1, 0, 1, 0, 0})
	yPred := metrics.Vector([]float64{0, 0, 1, 0, 0, 0})

	m, err := metrics.New(yTrue, yPred, metrics.DefaultOptions(2))
	if err != nil {
		fmt.Println("metrics:", err)
		return
	}

	fmt.Printf("confusion=%v\n", m.ConfusionMatrix()[0])
	fmt.Printf("accuracy=%.4f\n", m.Accuracy()[0])
	fmt.Printf("recall=%.4f\n", m.TruePositiveRate()[0])

	// Output:
	// confusion=[[2 3] [1 0]]
	// accuracy=0.3333
	// recall=0.0000
}

// ExampleNew_proba scores probability-vector predictions: the class axis is
// declared explicitly and arg-maxed away before counting.
func ExampleNew_proba() {
	yTrue := metrics.Vector([]float64{2, 1})
	yPred, _ := metrics.Matrix([][]float64{
		{0.1, 0.1, 0.8},
		{0.1, 0.8, 0.1},
	})

	m, err := metrics.New(yTrue, yPred, metrics.Options{
		Format:     metrics.FormatProba,
		Axis:       metrics.Along(1),
		NumClasses: 3,
	})
	if err != nil {
		fmt.Println("metrics:", err)
		return
	}

	fmt.Printf("accuracy=%.1f f1=%.1f\n", m.Accuracy()[0], m.F1Score()[0])

	// Output:
	// accuracy=1.0 f1=1.0
}
