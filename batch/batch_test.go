package batch_test

import (
	"testing"

	"github.com/katalvlaran/batchaug/batch"
	"github.com/katalvlaran/batchaug/imagery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gradientVolume stacks size images of rows×cols×channels where item i is
// filled with the value base+i.
func gradientVolume(t testing.TB, size, rows, cols, channels int, base float64) *imagery.Volume {
	t.Helper()

	items := make([]*imagery.Image, size)
	for i := range items {
		im, err := imagery.New(rows, cols, channels)
		require.NoError(t, err)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				for ch := 0; ch < channels; ch++ {
					im.Set(r, c, ch, base+float64(i))
				}
			}
		}
		items[i] = im
	}
	vol, err := imagery.Stack(items)
	require.NoError(t, err)

	return vol
}

// TestNew_Validation verifies size and component-set validation.
func TestNew_Validation(t *testing.T) {
	_, err := batch.New(0)
	assert.ErrorIs(t, err, batch.ErrBadSize)

	_, err = batch.New(2, "images", "labels", "images")
	assert.ErrorIs(t, err, batch.ErrDuplicateComponent)
}

// TestNew_DefaultComponent verifies the implicit "images" declaration.
func TestNew_DefaultComponent(t *testing.T) {
	b, err := batch.New(3)
	require.NoError(t, err)
	assert.Equal(t, 3, b.Len())
	assert.Equal(t, []string{"images"}, b.Components())
}

// TestSetComponent_Checks verifies the declared-set, nil and size guards.
func TestSetComponent_Checks(t *testing.T) {
	b, err := batch.New(2, "images", "masks")
	require.NoError(t, err)

	vol := gradientVolume(t, 2, 2, 2, 1, 0)
	assert.ErrorIs(t, b.SetComponent("labels", vol), batch.ErrUnknownComponent)
	assert.ErrorIs(t, b.SetComponent("images", nil), batch.ErrNilVolume)

	short := gradientVolume(t, 1, 2, 2, 1, 0)
	assert.ErrorIs(t, b.SetComponent("images", short), batch.ErrSizeMismatch)

	require.NoError(t, b.SetComponent("images", vol))
	got, err := b.Component("images")
	require.NoError(t, err)
	assert.Equal(t, vol.Shape(), got.Shape())
}

// TestGet verifies per-item reads and their error contract.
func TestGet(t *testing.T) {
	b, err := batch.New(2)
	require.NoError(t, err)

	_, err = b.Get(0, "images")
	assert.ErrorIs(t, err, batch.ErrEmptyComponent, "reads before assignment must fail")

	require.NoError(t, b.SetComponent("images", gradientVolume(t, 2, 2, 2, 1, 10)))

	im, err := b.Get(1, "images")
	require.NoError(t, err)
	assert.Equal(t, 11.0, im.At(0, 0, 0))

	_, err = b.Get(2, "images")
	assert.ErrorIs(t, err, batch.ErrBadIndex)
	_, err = b.Get(0, "labels")
	assert.ErrorIs(t, err, batch.ErrUnknownComponent)
}
