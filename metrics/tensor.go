package metrics

// Tensor is a small dense row-major float64 array. The metrics engine uses
// ranks 0 through 2 for sample structure plus rank-2/3 probability inputs
// that ArgMax reduces before counting.
type Tensor struct {
	shape []int
	data  []float64
}

// NewTensor builds a tensor of the given shape over data. The data slice is
// used directly, not copied.
// Returns ErrBadTensorShape when a dimension is negative or the data length
// does not equal the shape's product.
func NewTensor(shape []int, data []float64) (*Tensor, error) {
	n := 1
	for _, d := range shape {
		if d < 0 {
			return nil, ErrBadTensorShape
		}
		n *= d
	}
	if n != len(data) {
		return nil, ErrBadTensorShape
	}

	return &Tensor{shape: append([]int(nil), shape...), data: data}, nil
}

// Scalar returns a rank-0 tensor holding one value.
func Scalar(v float64) *Tensor {
	return &Tensor{shape: nil, data: []float64{v}}
}

// Vector returns a rank-1 tensor over v. The slice is used directly.
func Vector(v []float64) *Tensor {
	return &Tensor{shape: []int{len(v)}, data: v}
}

// Matrix returns a rank-2 tensor from rows.
// Returns ErrBadTensorShape when the rows are ragged.
func Matrix(rows [][]float64) (*Tensor, error) {
	if len(rows) == 0 {
		return &Tensor{shape: []int{0, 0}, data: nil}, nil
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for _, row := range rows {
		if len(row) != cols {
			return nil, ErrBadTensorShape
		}
		data = append(data, row...)
	}

	return &Tensor{shape: []int{len(rows), cols}, data: data}, nil
}

// Rank returns the number of dimensions (0 for a scalar).
func (t *Tensor) Rank() int { return len(t.shape) }

// Shape returns a copy of the dimension extents.
func (t *Tensor) Shape() []int { return append([]int(nil), t.shape...) }

// Len returns the total number of elements.
func (t *Tensor) Len() int { return len(t.data) }

// Values returns the elements in row-major order. The slice is shared.
func (t *Tensor) Values() []float64 { return t.data }

// sameShape reports whether two tensors have identical extents.
func sameShape(a, b *Tensor) bool {
	if len(a.shape) != len(b.shape) {
		return false
	}
	for i := range a.shape {
		if a.shape[i] != b.shape[i] {
			return false
		}
	}

	return true
}

// ArgMax reduces the tensor along axis to the index of the largest element
// (the first one on ties). The result drops that axis: a rank-2 input with
// axis 1 becomes a rank-1 vector of per-row winners.
// Returns ErrBadAxis when axis is outside [0, Rank).
func (t *Tensor) ArgMax(axis int) (*Tensor, error) {
	if axis < 0 || axis >= len(t.shape) {
		return nil, ErrBadAxis
	}
	if t.shape[axis] == 0 {
		return nil, ErrBadTensorShape
	}

	outer, inner := 1, 1
	for _, d := range t.shape[:axis] {
		outer *= d
	}
	for _, d := range t.shape[axis+1:] {
		inner *= d
	}
	n := t.shape[axis]

	outShape := make([]int, 0, len(t.shape)-1)
	outShape = append(outShape, t.shape[:axis]...)
	outShape = append(outShape, t.shape[axis+1:]...)
	out := make([]float64, outer*inner)

	for o := 0; o < outer; o++ {
		for i := 0; i < inner; i++ {
			base := o*n*inner + i
			best, bestVal := 0, t.data[base]
			for k := 1; k < n; k++ {
				if v := t.data[base+k*inner]; v > bestVal {
					best, bestVal = k, v
				}
			}
			out[o*inner+i] = float64(best)
		}
	}

	return &Tensor{shape: outShape, data: out}, nil
}
