package imagery

// Image is a dense rows×cols×channels array of float64 pixels, stored
// row-major with the channel axis innermost. The zero value is not usable;
// construct through New or FromPixels.
//
// Pixels are nominally in the 8-bit range [0, 255] until Normalize rescales
// them, but no transform enforces that — the type is a plain numeric array.
//
// All transforms return a new Image and leave the receiver untouched.
type Image struct {
	rows, cols, channels int
	pix                  []float64
}

// New returns a zero-filled Image of the given shape.
// Returns ErrBadShape when any dimension is non-positive.
func New(rows, cols, channels int) (*Image, error) {
	if rows <= 0 || cols <= 0 || channels <= 0 {
		return nil, ErrBadShape
	}

	return &Image{
		rows:     rows,
		cols:     cols,
		channels: channels,
		pix:      make([]float64, rows*cols*channels),
	}, nil
}

// FromPixels wraps an existing pixel slice (copied) into an Image.
// Returns ErrBadShape on non-positive dimensions and ErrPixelCount when
// len(pix) != rows*cols*channels.
func FromPixels(rows, cols, channels int, pix []float64) (*Image, error) {
	if rows <= 0 || cols <= 0 || channels <= 0 {
		return nil, ErrBadShape
	}
	if len(pix) != rows*cols*channels {
		return nil, ErrPixelCount
	}

	im := &Image{rows: rows, cols: cols, channels: channels, pix: make([]float64, len(pix))}
	copy(im.pix, pix)

	return im, nil
}

// Rows returns the number of pixel rows.
func (im *Image) Rows() int { return im.rows }

// Cols returns the number of pixel columns.
func (im *Image) Cols() int { return im.cols }

// Channels returns the number of channels per pixel.
func (im *Image) Channels() int { return im.channels }

// Shape returns (rows, cols, channels) as a fixed-size array, convenient for
// equality comparison.
func (im *Image) Shape() [3]int { return [3]int{im.rows, im.cols, im.channels} }

// index computes the flat offset of (r, c, ch). Callers guarantee bounds.
func (im *Image) index(r, c, ch int) int {
	return (r*im.cols+c)*im.channels + ch
}

// At returns the pixel value at row r, column c, channel ch.
// Out-of-range indices are a programmer error and panic, like slice indexing.
func (im *Image) At(r, c, ch int) float64 {
	if r < 0 || r >= im.rows || c < 0 || c >= im.cols || ch < 0 || ch >= im.channels {
		panic("imagery: At index out of range")
	}

	return im.pix[im.index(r, c, ch)]
}

// Set assigns the pixel value at row r, column c, channel ch.
// Out-of-range indices panic, like slice indexing.
func (im *Image) Set(r, c, ch int, v float64) {
	if r < 0 || r >= im.rows || c < 0 || c >= im.cols || ch < 0 || ch >= im.channels {
		panic("imagery: Set index out of range")
	}

	im.pix[im.index(r, c, ch)] = v
}

// Clone returns a deep copy of the image.
func (im *Image) Clone() *Image {
	out := &Image{rows: im.rows, cols: im.cols, channels: im.channels, pix: make([]float64, len(im.pix))}
	copy(out.pix, im.pix)

	return out
}

// Pixels returns a copy of the backing pixel slice in row-major order.
func (im *Image) Pixels() []float64 {
	out := make([]float64, len(im.pix))
	copy(out, im.pix)

	return out
}

// Divide returns a copy with every pixel divided by d.
// Returns ErrBadDivisor when d == 0.
func (im *Image) Divide(d float64) (*Image, error) {
	if d == 0 {
		return nil, ErrBadDivisor
	}

	out := im.Clone()
	for i := range out.pix {
		out.pix[i] /= d
	}

	return out, nil
}
