package imagery_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/batchaug/imagery"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleStack
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Two images of different heights are stacked. The first attempt reports a
//	typed shape mismatch; cropping both to the common minimum and retrying
//	succeeds — the exact degrade policy batch assembly applies.
func ExampleStack() {
	a, _ := imagery.New(4, 4, 1)
	b, _ := imagery.New(3, 4, 1)
	items := []*imagery.Image{a, b}

	_, err := imagery.Stack(items)
	var mismatch *imagery.ShapeMismatchError
	if errors.As(err, &mismatch) {
		rows, cols := imagery.MinShape(items)
		for i, it := range items {
			items[i], _ = it.Crop(0, 0, rows, cols)
		}
	}

	vol, err := imagery.Stack(items)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("items=%d shape=%v\n", vol.Len(), vol.Shape())
	// Output:
	// items=2 shape=[3 4 1]
}

// ExampleImage_Invert demonstrates inverting one channel around the 8-bit
// maximum.
func ExampleImage_Invert() {
	im, _ := imagery.FromPixels(1, 1, 2, []float64{10, 200})

	out, _ := im.Invert([]int{1}, 255)
	fmt.Printf("ch0=%.0f ch1=%.0f\n", out.At(0, 0, 0), out.At(0, 0, 1))
	// Output:
	// ch0=10 ch1=55
}
