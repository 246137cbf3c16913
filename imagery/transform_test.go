package imagery_test

import (
	"testing"

	"github.com/katalvlaran/batchaug/imagery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCrop_Window verifies an interior crop copies the right window.
func TestCrop_Window(t *testing.T) {
	im := ramp(t, 4, 4, 2)

	out, err := im.Crop(1, 2, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, [3]int{2, 2, 2}, out.Shape())
	assert.Equal(t, im.At(1, 2, 0), out.At(0, 0, 0))
	assert.Equal(t, im.At(2, 3, 1), out.At(1, 1, 1))
}

// TestCrop_ClampsToBounds verifies that an overhanging window shrinks to
// what the image can supply instead of failing.
func TestCrop_ClampsToBounds(t *testing.T) {
	im := ramp(t, 4, 4, 1)

	out, err := im.Crop(2, 3, 5, 5)
	require.NoError(t, err)
	assert.Equal(t, [3]int{2, 1, 1}, out.Shape(), "window clamped to remaining rows/cols")
	assert.Equal(t, im.At(3, 3, 0), out.At(1, 0, 0))
}

// TestCrop_BadWindow verifies origin and extent validation.
func TestCrop_BadWindow(t *testing.T) {
	im := ramp(t, 3, 3, 1)

	_, err := im.Crop(0, 0, 0, 2)
	assert.ErrorIs(t, err, imagery.ErrBadWindow, "zero extent")
	_, err = im.Crop(3, 0, 1, 1)
	assert.ErrorIs(t, err, imagery.ErrBadWindow, "origin past last row")
	_, err = im.Crop(0, -1, 1, 1)
	assert.ErrorIs(t, err, imagery.ErrBadWindow, "negative origin")
}

// TestFlipLR verifies column reversal on an asymmetric image.
func TestFlipLR(t *testing.T) {
	im := ramp(t, 2, 3, 1)
	out := im.FlipLR()

	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			assert.Equal(t, im.At(r, 2-c, 0), out.At(r, c, 0), "row %d col %d", r, c)
		}
	}
}

// TestFlipUD verifies row reversal on an asymmetric image.
func TestFlipUD(t *testing.T) {
	im := ramp(t, 3, 2, 2)
	out := im.FlipUD()

	for r := 0; r < 3; r++ {
		for c := 0; c < 2; c++ {
			for ch := 0; ch < 2; ch++ {
				assert.Equal(t, im.At(2-r, c, ch), out.At(r, c, ch))
			}
		}
	}
}

// TestPad verifies shape growth, fill value and content placement.
func TestPad(t *testing.T) {
	im := ramp(t, 2, 2, 1)

	out, err := im.Pad(1, 2, 3, 0, 7)
	require.NoError(t, err)
	assert.Equal(t, [3]int{5, 5, 1}, out.Shape())
	assert.Equal(t, 7.0, out.At(0, 0, 0), "padded corner carries the fill value")
	assert.Equal(t, 7.0, out.At(4, 4, 0))
	assert.Equal(t, im.At(0, 0, 0), out.At(1, 3, 0), "content shifted by (top, left)")
	assert.Equal(t, im.At(1, 1, 0), out.At(2, 4, 0))

	_, err = im.Pad(-1, 0, 0, 0, 0)
	assert.ErrorIs(t, err, imagery.ErrBadPadding)
}

// TestInvert verifies the |max − pix| reflection on selected channels only.
func TestInvert(t *testing.T) {
	im, err := imagery.FromPixels(1, 2, 2, []float64{10, 20, 30, 40})
	require.NoError(t, err)

	out, err := im.Invert([]int{1}, 255)
	require.NoError(t, err)
	assert.Equal(t, 10.0, out.At(0, 0, 0), "unselected channel passes through")
	assert.Equal(t, 235.0, out.At(0, 0, 1))
	assert.Equal(t, 30.0, out.At(0, 1, 0))
	assert.Equal(t, 215.0, out.At(0, 1, 1))

	_, err = im.Invert([]int{2}, 255)
	assert.ErrorIs(t, err, imagery.ErrBadChannel)
}

// TestEmbed verifies pasting onto a zero canvas with overflow discarded.
func TestEmbed(t *testing.T) {
	im := ramp(t, 2, 2, 1)

	out, err := im.Embed(3, 3, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, [3]int{3, 3, 1}, out.Shape())
	assert.Equal(t, 0.0, out.At(0, 0, 0), "canvas starts zeroed")
	assert.Equal(t, im.At(0, 0, 0), out.At(2, 2, 0))
	// (0,1), (1,0) and (1,1) of the source fall outside the canvas.

	_, err = im.Embed(0, 3, 0, 0)
	assert.ErrorIs(t, err, imagery.ErrBadWindow)
}

// TestRotate_RightAngle verifies the exact pixel mapping of a 90° rotation
// with an expanding canvas: dst(r, c) = src(1−c, r) for a 2×3 input.
func TestRotate_RightAngle(t *testing.T) {
	im := ramp(t, 2, 3, 1)

	out := im.Rotate(90, false)
	require.Equal(t, [3]int{3, 2, 1}, out.Shape(), "2×3 rotated by 90° spans 3×2")
	for r := 0; r < 3; r++ {
		for c := 0; c < 2; c++ {
			assert.InDelta(t, im.At(1-c, r, 0), out.At(r, c, 0), 1e-9, "dst(%d,%d)", r, c)
		}
	}
}

// TestRotate_PreserveShape verifies the canvas keeps the input shape and a
// 0° rotation is the identity.
func TestRotate_PreserveShape(t *testing.T) {
	im := ramp(t, 3, 4, 2)

	same := im.Rotate(0, true)
	require.Equal(t, im.Shape(), same.Shape())
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			for ch := 0; ch < 2; ch++ {
				assert.InDelta(t, im.At(r, c, ch), same.At(r, c, ch), 1e-9)
			}
		}
	}

	turned := im.Rotate(30, true)
	assert.Equal(t, im.Shape(), turned.Shape(), "preserveShape keeps extents")
}
