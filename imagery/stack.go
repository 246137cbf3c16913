package imagery

// Volume is a stack of N same-shaped images with a leading item axis —
// the homogeneous batch array a component holds after assembly.
// It is immutable once built.
type Volume struct {
	n, rows, cols, channels int
	pix                     []float64
}

// Stack copies the given images into one Volume with a leading item axis.
//
// Error contract:
//   - ErrEmptyStack — no items.
//   - ErrNilImage — a nil item.
//   - *ShapeMismatchError — item i's shape differs from item 0's. This is
//     the recoverable outcome: callers apply a common-crop policy and retry.
//
// Any other combination of inputs stacks successfully.
func Stack(items []*Image) (*Volume, error) {
	if len(items) == 0 {
		return nil, ErrEmptyStack
	}
	for i, it := range items {
		if it == nil {
			return nil, ErrNilImage
		}
		if it.Shape() != items[0].Shape() {
			return nil, &ShapeMismatchError{Index: i, Want: items[0].Shape(), Got: it.Shape()}
		}
	}

	first := items[0]
	v := &Volume{
		n:        len(items),
		rows:     first.rows,
		cols:     first.cols,
		channels: first.channels,
		pix:      make([]float64, len(items)*len(first.pix)),
	}
	for i, it := range items {
		copy(v.pix[i*len(first.pix):], it.pix)
	}

	return v, nil
}

// MinShape returns the elementwise minimum of rows and cols across items —
// only the first two axes, the common-crop policy never reconciles channel
// counts. Nil items are ignored; with no usable item it returns (0, 0).
func MinShape(items []*Image) (rows, cols int) {
	rows, cols = -1, -1
	for _, it := range items {
		if it == nil {
			continue
		}
		if rows < 0 || it.rows < rows {
			rows = it.rows
		}
		if cols < 0 || it.cols < cols {
			cols = it.cols
		}
	}
	if rows < 0 {
		return 0, 0
	}

	return rows, cols
}

// Len returns the number of stacked items.
func (v *Volume) Len() int { return v.n }

// Rows returns the per-item row count.
func (v *Volume) Rows() int { return v.rows }

// Cols returns the per-item column count.
func (v *Volume) Cols() int { return v.cols }

// Channels returns the per-item channel count.
func (v *Volume) Channels() int { return v.channels }

// Shape returns the per-item shape as (rows, cols, channels).
func (v *Volume) Shape() [3]int { return [3]int{v.rows, v.cols, v.channels} }

// At returns the pixel value of item i at (r, c, ch).
// Out-of-range indices panic, like slice indexing.
func (v *Volume) At(i, r, c, ch int) float64 {
	if i < 0 || i >= v.n || r < 0 || r >= v.rows || c < 0 || c >= v.cols || ch < 0 || ch >= v.channels {
		panic("imagery: Volume.At index out of range")
	}

	return v.pix[((i*v.rows+r)*v.cols+c)*v.channels+ch]
}

// Item returns a copy of item i as a standalone Image.
// An out-of-range index panics, like slice indexing.
func (v *Volume) Item(i int) *Image {
	if i < 0 || i >= v.n {
		panic("imagery: Volume.Item index out of range")
	}

	size := v.rows * v.cols * v.channels
	im := &Image{rows: v.rows, cols: v.cols, channels: v.channels, pix: make([]float64, size)}
	copy(im.pix, v.pix[i*size:(i+1)*size])

	return im
}

// Images returns copies of all items, in order.
func (v *Volume) Images() []*Image {
	out := make([]*Image, v.n)
	for i := range out {
		out[i] = v.Item(i)
	}

	return out
}

// Divide returns a copy of the volume with every pixel divided by d.
// Returns ErrBadDivisor when d == 0.
func (v *Volume) Divide(d float64) (*Volume, error) {
	if d == 0 {
		return nil, ErrBadDivisor
	}

	out := &Volume{n: v.n, rows: v.rows, cols: v.cols, channels: v.channels, pix: make([]float64, len(v.pix))}
	for i, p := range v.pix {
		out.pix[i] = p / d
	}

	return out, nil
}
