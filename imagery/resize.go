package imagery

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// Resize returns the image rescaled to rows×cols using Catmull-Rom
// interpolation from golang.org/x/image/draw.
//
// Each channel is resized as an independent 16-bit grayscale plane with its
// values mapped onto the plane's own dynamic range, so interpolation quality
// does not depend on the numeric scale of the data (raw 8-bit or normalized
// pixels behave identically, up to 1/65535 of the value range).
//
// Returns ErrBadShape when rows or cols is non-positive.
func (im *Image) Resize(rows, cols int) (*Image, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	out := &Image{rows: rows, cols: cols, channels: im.channels, pix: make([]float64, rows*cols*im.channels)}
	for ch := 0; ch < im.channels; ch++ {
		im.resizePlane(out, ch)
	}

	return out, nil
}

// Scale returns the image rescaled by the given per-axis factors, rounding
// the target shape to the nearest pixel (at least 1×1).
// Returns ErrBadShape when a factor is non-positive.
func (im *Image) Scale(factorRows, factorCols float64) (*Image, error) {
	if factorRows <= 0 || factorCols <= 0 {
		return nil, ErrBadShape
	}

	rows := int(math.Round(float64(im.rows) * factorRows))
	cols := int(math.Round(float64(im.cols) * factorCols))
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}

	return im.Resize(rows, cols)
}

// resizePlane rescales channel ch of im into the matching plane of dst.
func (im *Image) resizePlane(dst *Image, ch int) {
	lo, hi := im.planeRange(ch)
	if hi == lo {
		// Constant plane: interpolation is the identity.
		for r := 0; r < dst.rows; r++ {
			for c := 0; c < dst.cols; c++ {
				dst.pix[dst.index(r, c, ch)] = lo
			}
		}

		return
	}

	scale := 65535 / (hi - lo)
	src := image.NewGray16(image.Rect(0, 0, im.cols, im.rows))
	for r := 0; r < im.rows; r++ {
		for c := 0; c < im.cols; c++ {
			v := (im.pix[im.index(r, c, ch)] - lo) * scale
			off := src.PixOffset(c, r)
			u := uint16(math.Round(v))
			src.Pix[off] = uint8(u >> 8)
			src.Pix[off+1] = uint8(u)
		}
	}

	plane := image.NewGray16(image.Rect(0, 0, dst.cols, dst.rows))
	draw.CatmullRom.Scale(plane, plane.Bounds(), src, src.Bounds(), draw.Src, nil)

	for r := 0; r < dst.rows; r++ {
		for c := 0; c < dst.cols; c++ {
			off := plane.PixOffset(c, r)
			u := uint16(plane.Pix[off])<<8 | uint16(plane.Pix[off+1])
			dst.pix[dst.index(r, c, ch)] = lo + float64(u)/scale
		}
	}
}

// planeRange returns the min and max value on channel ch.
func (im *Image) planeRange(ch int) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for i := ch; i < len(im.pix); i += im.channels {
		if im.pix[i] < lo {
			lo = im.pix[i]
		}
		if im.pix[i] > hi {
			hi = im.pix[i]
		}
	}

	return lo, hi
}
