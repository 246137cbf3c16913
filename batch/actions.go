// Package batch: augmentation actions.
//
// Every action follows the same protocol, mirrored across this file:
//
//	validate parameters → draw per-item randomness in item order →
//	parallel.Map the per-item transform → assemble (all-or-nothing).
//
// Validation always runs before any per-item work; random draws always
// happen at action time, never at validation time, and come from the
// injected source so a seed reproduces the batch.

package batch

import (
	"context"
	"fmt"

	"github.com/katalvlaran/batchaug/imagery"
	"github.com/katalvlaran/batchaug/parallel"
)

// validProbability reports whether p lies in [0, 1].
func validProbability(p float64) bool { return p >= 0 && p <= 1 }

// validOriginKind reports whether k is one of the declared kinds.
func validOriginKind(k OriginKind) bool {
	return k == OriginTopLeft || k == OriginCenter || k == OriginRandom || k == OriginAbsolute
}

// runAction fans transform out over the component's items and assembles the
// results back into the component.
func (b *Batch) runAction(ctx context.Context, name string, workers int, items []*imagery.Image, transform func(i int) (*imagery.Image, error)) (*Batch, error) {
	results, err := parallel.Map(ctx, len(items), func(_ context.Context, i int) (*imagery.Image, error) {
		return transform(i)
	}, parallel.Options{Workers: workers})
	if err != nil {
		return nil, err
	}
	if err = b.assemble(name, results); err != nil {
		return nil, err
	}

	return b, nil
}

// Crop crops every item of the component to opts.Rows×opts.Cols, anchored by
// opts.Origin. The crop shape is mandatory; a random origin is drawn per
// item from the positions where the window still fits, so a window larger
// than the items is rejected up front — a random anchor could only deliver
// it silently shrunk.
//
// Errors: ErrMissingShape, ErrBadOrigin, imagery.ErrBadWindow (random origin
// with an oversized window), plus component lookup errors — all before any
// per-item work.
func (b *Batch) Crop(ctx context.Context, opts CropOptions) (*Batch, error) {
	if opts.Rows <= 0 || opts.Cols <= 0 {
		return nil, ErrMissingShape
	}
	if !validOriginKind(opts.Origin.Kind) {
		return nil, ErrBadOrigin
	}

	name := componentOr(opts.Component)
	vol, err := b.Component(name)
	if err != nil {
		return nil, err
	}
	if opts.Origin.Kind == OriginRandom && (opts.Rows > vol.Rows() || opts.Cols > vol.Cols()) {
		return nil, fmt.Errorf("batch: random crop window %d×%d larger than items %d×%d: %w",
			opts.Rows, opts.Cols, vol.Rows(), vol.Cols(), imagery.ErrBadWindow)
	}

	items := vol.Images()
	rng := rngOr(opts.Rand)
	origins := make([][2]int, len(items))
	for i, im := range items {
		origins[i][0], origins[i][1] = opts.Origin.resolve(im.Rows(), im.Cols(), opts.Rows, opts.Cols, rng)
	}

	return b.runAction(ctx, name, opts.Workers, items, func(i int) (*imagery.Image, error) {
		return items[i].Crop(origins[i][0], origins[i][1], opts.Rows, opts.Cols)
	})
}

// Resize rescales every item of the component to opts.Rows×opts.Cols
// (64×64 when both are left zero).
func (b *Batch) Resize(ctx context.Context, opts ResizeOptions) (*Batch, error) {
	rows, cols := opts.Rows, opts.Cols
	if rows == 0 && cols == 0 {
		rows, cols = 64, 64
	}
	if rows <= 0 || cols <= 0 {
		return nil, ErrMissingShape
	}

	name := componentOr(opts.Component)
	vol, err := b.Component(name)
	if err != nil {
		return nil, err
	}

	items := vol.Images()

	return b.runAction(ctx, name, opts.Workers, items, func(i int) (*imagery.Image, error) {
		return items[i].Resize(rows, cols)
	})
}

// Scale rescales the content of each item by a factor drawn from
// opts.Factor, applying to each item with probability opts.P. With
// PreserveShape the rescaled content is cropped and pasted onto a zero
// canvas of the original shape, anchored by opts.Origin; otherwise items
// keep their rescaled extents and assembly reconciles the drift.
//
// Errors: ErrBadProbability, ErrBadFactor, ErrBadOrigin (Random is not a
// scale origin), plus component lookup errors.
func (b *Batch) Scale(ctx context.Context, opts ScaleOptions) (*Batch, error) {
	if !validProbability(opts.P) {
		return nil, ErrBadProbability
	}
	if !opts.Factor.valid() {
		return nil, ErrBadFactor
	}
	if opts.Origin.Kind == OriginRandom || !validOriginKind(opts.Origin.Kind) {
		return nil, ErrBadOrigin
	}

	name := componentOr(opts.Component)
	vol, err := b.Component(name)
	if err != nil {
		return nil, err
	}

	items := vol.Images()
	rng := rngOr(opts.Rand)

	// Per-item draws, in item order: the apply decision, then the factors
	// for the items that scale.
	type draw struct {
		apply          bool
		fRows, fCols   float64
		pasteR, pasteC int
		cropR, cropC   int
	}
	draws := make([]draw, len(items))
	for i, im := range items {
		d := draw{apply: rng.Float64() < opts.P}
		if !d.apply {
			draws[i] = d
			continue
		}
		d.fRows = opts.Factor.RowMin + rng.Float64()*(opts.Factor.RowMax-opts.Factor.RowMin)
		if opts.Factor.Uniform {
			d.fCols = d.fRows
		} else {
			d.fCols = opts.Factor.ColMin + rng.Float64()*(opts.Factor.ColMax-opts.Factor.ColMin)
		}
		if opts.PreserveShape {
			// Resolve both anchors now so the parallel stage stays pure:
			// where to crop the rescaled content and where to paste it.
			rescaledRows, rescaledCols := scaledExtent(im.Rows(), d.fRows), scaledExtent(im.Cols(), d.fCols)
			d.cropR, d.cropC = opts.Origin.resolve(rescaledRows, rescaledCols, im.Rows(), im.Cols(), rng)
			d.pasteR, d.pasteC = opts.Origin.resolve(im.Rows(), im.Cols(), rescaledRows, rescaledCols, rng)
		}
		draws[i] = d
	}

	return b.runAction(ctx, name, opts.Workers, items, func(i int) (*imagery.Image, error) {
		d := draws[i]
		if !d.apply {
			return items[i], nil
		}
		rescaled, rerr := items[i].Scale(d.fRows, d.fCols)
		if rerr != nil {
			return nil, rerr
		}
		if !opts.PreserveShape {
			return rescaled, nil
		}
		cropped, cerr := rescaled.Crop(d.cropR, d.cropC, items[i].Rows(), items[i].Cols())
		if cerr != nil {
			return nil, cerr
		}

		return cropped.Embed(items[i].Rows(), items[i].Cols(), d.pasteR, d.pasteC)
	})
}

// scaledExtent mirrors imagery's rounding of a scaled axis.
func scaledExtent(n int, factor float64) int {
	return max(1, int(float64(n)*factor+0.5))
}

// Rotate rotates each item by an angle from opts.Angle (a fixed value or a
// per-item uniform draw; unset means the (−45°, 45°) range), applying with
// probability opts.P.
//
// Errors: ErrBadProbability, ErrBadAngle, plus component lookup errors.
func (b *Batch) Rotate(ctx context.Context, opts RotateOptions) (*Batch, error) {
	if !validProbability(opts.P) {
		return nil, ErrBadProbability
	}
	angle := opts.Angle
	if angle.unset() {
		angle = AngleRange(-45, 45)
	}
	if angle.Max < angle.Min {
		return nil, ErrBadAngle
	}

	name := componentOr(opts.Component)
	vol, err := b.Component(name)
	if err != nil {
		return nil, err
	}

	items := vol.Images()
	rng := rngOr(opts.Rand)
	type draw struct {
		apply bool
		deg   float64
	}
	draws := make([]draw, len(items))
	for i := range items {
		d := draw{apply: rng.Float64() < opts.P}
		if d.apply {
			if angle.Fixed {
				d.deg = angle.Min
			} else {
				d.deg = angle.Min + rng.Float64()*(angle.Max-angle.Min)
			}
		}
		draws[i] = d
	}

	return b.runAction(ctx, name, opts.Workers, items, func(i int) (*imagery.Image, error) {
		if !draws[i].apply {
			return items[i], nil
		}

		return items[i].Rotate(draws[i].deg, opts.PreserveShape), nil
	})
}

// Flip mirrors each item left/right (ModeLR), upside down (ModeUD) or one of
// the two (ModeAll, choosing LR with probability opts.PLR), applying with
// probability opts.P.
//
// Errors: ErrBadProbability (P or PLR), ErrBadMode, plus component lookup
// errors.
func (b *Batch) Flip(ctx context.Context, opts FlipOptions) (*Batch, error) {
	if !validProbability(opts.P) || !validProbability(opts.PLR) {
		return nil, ErrBadProbability
	}
	if opts.Mode != ModeLR && opts.Mode != ModeUD && opts.Mode != ModeAll {
		return nil, ErrBadMode
	}

	name := componentOr(opts.Component)
	vol, err := b.Component(name)
	if err != nil {
		return nil, err
	}

	items := vol.Images()
	rng := rngOr(opts.Rand)
	type draw struct {
		apply bool
		lr    bool
	}
	draws := make([]draw, len(items))
	for i := range items {
		d := draw{apply: rng.Float64() < opts.P}
		if d.apply {
			switch opts.Mode {
			case ModeLR:
				d.lr = true
			case ModeUD:
				d.lr = false
			case ModeAll:
				d.lr = rng.Float64() < opts.PLR
			}
		}
		draws[i] = d
	}

	return b.runAction(ctx, name, opts.Workers, items, func(i int) (*imagery.Image, error) {
		switch {
		case !draws[i].apply:
			return items[i], nil
		case draws[i].lr:
			return items[i].FlipLR(), nil
		default:
			return items[i].FlipUD(), nil
		}
	})
}

// Pad extends every item by the given per-side widths, filling new pixels
// with opts.Value.
//
// Errors: padding validation from imagery (ErrBadPadding), plus component
// lookup errors.
func (b *Batch) Pad(ctx context.Context, opts PadOptions) (*Batch, error) {
	if opts.Top < 0 || opts.Bottom < 0 || opts.Left < 0 || opts.Right < 0 {
		return nil, imagery.ErrBadPadding
	}

	name := componentOr(opts.Component)
	vol, err := b.Component(name)
	if err != nil {
		return nil, err
	}

	items := vol.Images()

	return b.runAction(ctx, name, opts.Workers, items, func(i int) (*imagery.Image, error) {
		return items[i].Pad(opts.Top, opts.Bottom, opts.Left, opts.Right, opts.Value)
	})
}

// Invert inverts channels of each item around opts.MaxValue (255 when left
// zero).
//
// Probability semantics (see InvertOptions): an empty P inverts everything;
// a single entry decides all channels at once per item (inverts when the
// draw is below it); a per-channel vector decides each channel
// independently — a channel inverts when its draw EXCEEDS the entry, the
// inherited reading of P as "probability of not inverting".
//
// Errors: ErrBadProbability for entries outside [0,1], ErrChannelCount when
// a vector's length differs from the component's channels, plus component
// lookup errors.
func (b *Batch) Invert(ctx context.Context, opts InvertOptions) (*Batch, error) {
	probs := opts.P
	if len(probs) == 0 {
		probs = []float64{1}
	}
	for _, p := range probs {
		if !validProbability(p) {
			return nil, ErrBadProbability
		}
	}

	name := componentOr(opts.Component)
	vol, err := b.Component(name)
	if err != nil {
		return nil, err
	}
	if len(probs) > 1 && len(probs) != vol.Channels() {
		return nil, ErrChannelCount
	}

	maxValue := opts.MaxValue
	if maxValue == 0 {
		maxValue = 255
	}

	items := vol.Images()
	rng := rngOr(opts.Rand)
	channels := make([][]int, len(items))
	for i := range items {
		if len(probs) == 1 {
			// One draw decides every channel of this item together.
			if rng.Float64() < probs[0] {
				all := make([]int, vol.Channels())
				for ch := range all {
					all[ch] = ch
				}
				channels[i] = all
			}
			continue
		}
		for ch, p := range probs {
			if rng.Float64() > p {
				channels[i] = append(channels[i], ch)
			}
		}
	}

	return b.runAction(ctx, name, opts.Workers, items, func(i int) (*imagery.Image, error) {
		if len(channels[i]) == 0 {
			return items[i], nil
		}

		return items[i].Invert(channels[i], maxValue)
	})
}

// Normalize divides every pixel of the component by opts.Divisor (255 when
// left zero). The division is one whole-array operation; there is no
// per-item work to fan out.
func (b *Batch) Normalize(opts NormalizeOptions) (*Batch, error) {
	divisor := opts.Divisor
	if divisor == 0 {
		divisor = 255
	}

	name := componentOr(opts.Component)
	vol, err := b.Component(name)
	if err != nil {
		return nil, err
	}

	norm, err := vol.Divide(divisor)
	if err != nil {
		return nil, err
	}
	if err = b.SetComponent(name, norm); err != nil {
		return nil, err
	}

	return b, nil
}
