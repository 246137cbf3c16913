package batch_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/batchaug/batch"
	"github.com/katalvlaran/batchaug/imagery"
)

// gradient builds a rows×cols single-channel image whose pixel at (r, c) is
// r*10 + c.
func gradient(rows, cols int) *imagery.Image {
	im, _ := imagery.New(rows, cols, 1)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			im.Set(r, c, 0, float64(r*10+c))
		}
	}

	return im
}

// ExampleBatch chains a center crop, a left/right flip and a normalization
// over the default "images" component.
//
// Scenario:
//  1. Two 4×4 images enter the batch.
//  2. Crop keeps the centered 2×2 window of each.
//  3. Flip mirrors the columns.
//  4. Normalize maps pixel values into [0, 1] by dividing by 10.
func ExampleBatch() {
	ctx := context.Background()

	b, _ := batch.New(2)
	vol, _ := imagery.Stack([]*imagery.Image{gradient(4, 4), gradient(4, 4)})
	_ = b.SetComponent("images", vol)

	crop := batch.DefaultCropOptions()
	crop.Rows, crop.Cols = 2, 2
	crop.Origin = batch.Center()
	if _, err := b.Crop(ctx, crop); err != nil {
		fmt.Println("crop:", err)
		return
	}
	if _, err := b.Flip(ctx, batch.DefaultFlipOptions()); err != nil {
		fmt.Println("flip:", err)
		return
	}
	norm := batch.DefaultNormalizeOptions()
	norm.Divisor = 10
	if _, err := b.Normalize(norm); err != nil {
		fmt.Println("normalize:", err)
		return
	}

	out, _ := b.Component("images")
	fmt.Printf("shape=%v\n", out.Shape())
	fmt.Printf("row0=[%.1f %.1f]\n", out.At(0, 0, 0, 0), out.At(0, 0, 1, 0))

	// Output:
	// shape=[2 2 1]
	// row0=[1.2 1.1]
}

// ExampleAssembleError shows the all-or-nothing contract: when items fail,
// the action reports every failure and the component keeps its old value.
func ExampleAssembleError() {
	ctx := context.Background()

	b, _ := batch.New(2)
	vol, _ := imagery.Stack([]*imagery.Image{gradient(4, 4), gradient(4, 4)})
	_ = b.SetComponent("images", vol)

	crop := batch.DefaultCropOptions()
	crop.Rows, crop.Cols = 2, 2
	crop.Origin = batch.At(10, 10) // outside every item
	_, err := b.Crop(ctx, crop)

	var asm *batch.AssembleError
	fmt.Println("assemble error:", errors.As(err, &asm))
	fmt.Println("failures:", len(asm.Errs))
	fmt.Println("window error:", errors.Is(err, imagery.ErrBadWindow))

	untouched, _ := b.Component("images")
	fmt.Println("shape kept:", untouched.Shape())

	// Output:
	// assemble error: true
	// failures: 2
	// window error: true
	// shape kept: [4 4 1]
}
