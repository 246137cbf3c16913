package imagery

import "math"

// Crop returns the window of rows×cols pixels anchored at (originRow,
// originCol). The window is clamped to the image bounds, so the result may
// be smaller than requested when the window overhangs the bottom or right
// edge — mirroring slice semantics, not padding.
//
// Returns ErrBadWindow when the requested extent is non-positive or the
// origin lies outside the image.
func (im *Image) Crop(originRow, originCol, rows, cols int) (*Image, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadWindow
	}
	if originRow < 0 || originRow >= im.rows || originCol < 0 || originCol >= im.cols {
		return nil, ErrBadWindow
	}

	// Clamp the window to what the image can supply.
	if originRow+rows > im.rows {
		rows = im.rows - originRow
	}
	if originCol+cols > im.cols {
		cols = im.cols - originCol
	}

	out := &Image{rows: rows, cols: cols, channels: im.channels, pix: make([]float64, rows*cols*im.channels)}
	for r := 0; r < rows; r++ {
		srcOff := im.index(originRow+r, originCol, 0)
		dstOff := out.index(r, 0, 0)
		copy(out.pix[dstOff:dstOff+cols*im.channels], im.pix[srcOff:srcOff+cols*im.channels])
	}

	return out, nil
}

// FlipLR returns the image mirrored left/right (columns reversed).
func (im *Image) FlipLR() *Image {
	out := im.Clone()
	for r := 0; r < im.rows; r++ {
		for c := 0; c < im.cols; c++ {
			src := im.index(r, im.cols-1-c, 0)
			dst := out.index(r, c, 0)
			copy(out.pix[dst:dst+im.channels], im.pix[src:src+im.channels])
		}
	}

	return out
}

// FlipUD returns the image mirrored upside down (rows reversed).
func (im *Image) FlipUD() *Image {
	out := im.Clone()
	rowLen := im.cols * im.channels
	for r := 0; r < im.rows; r++ {
		src := im.index(im.rows-1-r, 0, 0)
		dst := out.index(r, 0, 0)
		copy(out.pix[dst:dst+rowLen], im.pix[src:src+rowLen])
	}

	return out
}

// Pad returns the image extended by the given widths on each side, with new
// pixels set to value on every channel.
// Returns ErrBadPadding when any width is negative.
func (im *Image) Pad(top, bottom, left, right int, value float64) (*Image, error) {
	if top < 0 || bottom < 0 || left < 0 || right < 0 {
		return nil, ErrBadPadding
	}

	out := &Image{
		rows:     im.rows + top + bottom,
		cols:     im.cols + left + right,
		channels: im.channels,
	}
	out.pix = make([]float64, out.rows*out.cols*out.channels)
	if value != 0 {
		for i := range out.pix {
			out.pix[i] = value
		}
	}
	for r := 0; r < im.rows; r++ {
		src := im.index(r, 0, 0)
		dst := out.index(top+r, left, 0)
		copy(out.pix[dst:dst+im.cols*im.channels], im.pix[src:src+im.cols*im.channels])
	}

	return out, nil
}

// Invert reflects the selected channels around maxValue: each selected
// pixel becomes |maxValue − pix|, non-selected channels pass through.
// Returns ErrBadChannel when a channel index is out of range.
func (im *Image) Invert(channels []int, maxValue float64) (*Image, error) {
	selected := make([]bool, im.channels)
	for _, ch := range channels {
		if ch < 0 || ch >= im.channels {
			return nil, ErrBadChannel
		}
		selected[ch] = true
	}

	out := im.Clone()
	for i := range out.pix {
		if selected[i%im.channels] {
			out.pix[i] = math.Abs(maxValue - out.pix[i])
		}
	}

	return out, nil
}

// Embed pastes the image onto a zero canvas of rows×cols at (atRow, atCol).
// Source pixels falling outside the canvas are discarded. It is the paste
// half of shape preservation: crop to the canvas, then Embed at the wanted
// origin.
// Returns ErrBadWindow on a non-positive canvas.
func (im *Image) Embed(rows, cols, atRow, atCol int) (*Image, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadWindow
	}

	out := &Image{rows: rows, cols: cols, channels: im.channels, pix: make([]float64, rows*cols*im.channels)}
	for r := 0; r < im.rows; r++ {
		dr := atRow + r
		if dr < 0 || dr >= rows {
			continue
		}
		for c := 0; c < im.cols; c++ {
			dc := atCol + c
			if dc < 0 || dc >= cols {
				continue
			}
			src := im.index(r, c, 0)
			dst := out.index(dr, dc, 0)
			copy(out.pix[dst:dst+im.channels], im.pix[src:src+im.channels])
		}
	}

	return out, nil
}

// Rotate returns the image rotated counterclockwise by angleDeg degrees
// about its center, sampling with bilinear interpolation and filling
// uncovered pixels with 0.
//
// When preserveShape is true the output keeps the input shape and corners
// rotate out of frame; when false the canvas expands to the bounding box of
// the rotated image, which generally changes the shape — the case batch
// assembly reconciles with its common-crop policy.
func (im *Image) Rotate(angleDeg float64, preserveShape bool) *Image {
	rad := angleDeg * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)

	outRows, outCols := im.rows, im.cols
	if !preserveShape {
		// Bounding box of the rotated extent. The epsilon keeps right-angle
		// rotations from ceiling up on float noise in sin/cos.
		const eps = 1e-9
		h, w := float64(im.rows), float64(im.cols)
		outRows = int(math.Ceil(math.Abs(h*cos) + math.Abs(w*sin) - eps))
		outCols = int(math.Ceil(math.Abs(w*cos) + math.Abs(h*sin) - eps))
	}

	out := &Image{rows: outRows, cols: outCols, channels: im.channels, pix: make([]float64, outRows*outCols*im.channels)}

	// Inverse mapping: for each destination pixel, rotate back into the
	// source frame and sample.
	srcCR := (float64(im.rows) - 1) / 2
	srcCC := (float64(im.cols) - 1) / 2
	dstCR := (float64(outRows) - 1) / 2
	dstCC := (float64(outCols) - 1) / 2
	for r := 0; r < outRows; r++ {
		for c := 0; c < outCols; c++ {
			dr := float64(r) - dstCR
			dc := float64(c) - dstCC
			srcR := dr*cos - dc*sin + srcCR
			srcC := dr*sin + dc*cos + srcCC
			for ch := 0; ch < im.channels; ch++ {
				out.pix[out.index(r, c, ch)] = im.sampleBilinear(srcR, srcC, ch)
			}
		}
	}

	return out
}

// sampleBilinear interpolates the value at fractional coordinates (r, c) on
// channel ch, treating everything outside the image as 0.
func (im *Image) sampleBilinear(r, c float64, ch int) float64 {
	r0 := int(math.Floor(r))
	c0 := int(math.Floor(c))
	fr := r - float64(r0)
	fc := c - float64(c0)

	get := func(rr, cc int) float64 {
		if rr < 0 || rr >= im.rows || cc < 0 || cc >= im.cols {
			return 0
		}

		return im.pix[im.index(rr, cc, ch)]
	}

	top := get(r0, c0)*(1-fc) + get(r0, c0+1)*fc
	bot := get(r0+1, c0)*(1-fc) + get(r0+1, c0+1)*fc

	return top*(1-fr) + bot*fr
}
