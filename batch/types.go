// Package batch: origin/angle/factor/mode types and per-action option
// structs with documented defaults.

package batch

import "math/rand"

// DefaultComponent is the component an action targets when its options
// leave Component empty.
const DefaultComponent = "images"

// OriginKind selects how a window origin is chosen within an image.
type OriginKind int

const (
	// OriginTopLeft anchors the window at (0, 0).
	OriginTopLeft OriginKind = iota
	// OriginCenter centers the window: max(0, image−shape)/2 per axis.
	OriginCenter
	// OriginRandom draws the origin uniformly from the positions where the
	// window still fits (crop only).
	OriginRandom
	// OriginAbsolute uses an explicit (row, col) pair.
	OriginAbsolute
)

// Origin is a window anchor: one of the symbolic kinds or an explicit
// (row, col) position. The zero value is TopLeft.
type Origin struct {
	Kind OriginKind
	// Row, Col are used only with OriginAbsolute.
	Row, Col int
}

// TopLeft returns the (0, 0) anchor.
func TopLeft() Origin { return Origin{Kind: OriginTopLeft} }

// Center returns the centering anchor.
func Center() Origin { return Origin{Kind: OriginCenter} }

// RandomOrigin returns the uniformly-drawn anchor.
func RandomOrigin() Origin { return Origin{Kind: OriginRandom} }

// At returns an explicit (row, col) anchor.
func At(row, col int) Origin { return Origin{Kind: OriginAbsolute, Row: row, Col: col} }

// resolve turns the origin into concrete coordinates for a window of
// shRows×shCols inside an imRows×imCols image. Random draws come from rng
// and are clamped so the window start stays inside the image.
func (o Origin) resolve(imRows, imCols, shRows, shCols int, rng *rand.Rand) (row, col int) {
	switch o.Kind {
	case OriginCenter:
		return max(0, imRows-shRows) / 2, max(0, imCols-shCols) / 2
	case OriginRandom:
		return rng.Intn(max(1, imRows-shRows+1)), rng.Intn(max(1, imCols-shCols+1))
	case OriginAbsolute:
		return o.Row, o.Col
	default: // OriginTopLeft
		return 0, 0
	}
}

// FlipMode selects the flip axis.
type FlipMode int

const (
	// ModeLR flips left/right.
	ModeLR FlipMode = iota
	// ModeUD flips upside down.
	ModeUD
	// ModeAll flips one of the two, choosing LR with probability PLR.
	ModeAll
)

// Factor is a per-axis scale factor range. Each item draws its factors
// uniformly from [RowMin, RowMax] and [ColMin, ColMax]; with Uniform set,
// one draw from the row range is applied to both axes.
type Factor struct {
	RowMin, RowMax float64
	ColMin, ColMax float64
	Uniform        bool
}

// UniformFactor returns a Factor drawing a single value from [min, max] and
// applying it to both axes.
func UniformFactor(min, max float64) Factor {
	return Factor{RowMin: min, RowMax: max, ColMin: min, ColMax: max, Uniform: true}
}

// AxisFactor returns a Factor drawing row and column factors independently.
func AxisFactor(rowMin, rowMax, colMin, colMax float64) Factor {
	return Factor{RowMin: rowMin, RowMax: rowMax, ColMin: colMin, ColMax: colMax}
}

// FixedFactor returns a deterministic Factor.
func FixedFactor(rows, cols float64) Factor {
	return Factor{RowMin: rows, RowMax: rows, ColMin: cols, ColMax: cols}
}

// valid reports whether every bound is strictly positive and ranges are
// ordered.
func (f Factor) valid() bool {
	return f.RowMin > 0 && f.ColMin > 0 && f.RowMax >= f.RowMin && f.ColMax >= f.ColMin
}

// Angle is a rotation angle in degrees: either fixed, or drawn uniformly
// from [Min, Max] per item. The zero value means "unset" and falls back to
// the default range (−45°, 45°).
type Angle struct {
	Min, Max float64
	Fixed    bool
}

// FixedAngle returns a deterministic rotation angle.
func FixedAngle(deg float64) Angle { return Angle{Min: deg, Max: deg, Fixed: true} }

// AngleRange returns an angle drawn uniformly from [min, max] per item.
func AngleRange(min, max float64) Angle { return Angle{Min: min, Max: max} }

// unset reports whether the zero value was left in place.
func (a Angle) unset() bool { return !a.Fixed && a.Min == 0 && a.Max == 0 }

// CropOptions configures Crop. Rows and Cols are mandatory.
type CropOptions struct {
	Component  string // target component; "" means DefaultComponent
	Origin     Origin // TopLeft, Center, Random or At(row, col)
	Rows, Cols int    // crop window extent (mandatory)
	Rand       *rand.Rand
	Workers    int
}

// DefaultCropOptions returns CropOptions with a top-left origin. The crop
// shape stays unset because it is mandatory.
func DefaultCropOptions() CropOptions {
	return CropOptions{Component: DefaultComponent, Origin: TopLeft()}
}

// ResizeOptions configures Resize. Leaving both Rows and Cols zero selects
// the default 64×64 target.
type ResizeOptions struct {
	Component  string
	Rows, Cols int
	Workers    int
}

// DefaultResizeOptions returns ResizeOptions targeting 64×64.
func DefaultResizeOptions() ResizeOptions {
	return ResizeOptions{Component: DefaultComponent, Rows: 64, Cols: 64}
}

// ScaleOptions configures Scale.
//
// P is the probability of applying the scale to an item (0 — none,
// 0.5 — half of the items, 1 — all). Factor is mandatory and strictly
// positive. With PreserveShape the rescaled content is cropped/pasted back
// onto a zero canvas of the original shape, anchored by Origin (Center or
// TopLeft or an explicit pair; Random is not allowed here).
type ScaleOptions struct {
	Component     string
	P             float64
	Factor        Factor
	PreserveShape bool
	Origin        Origin
	Rand          *rand.Rand
	Workers       int
}

// DefaultScaleOptions returns ScaleOptions with P=1, shape preservation on
// and a centered origin. Factor stays unset because it is mandatory.
func DefaultScaleOptions() ScaleOptions {
	return ScaleOptions{Component: DefaultComponent, P: 1, PreserveShape: true, Origin: Center()}
}

// RotateOptions configures Rotate.
//
// P is the probability of rotating an item. Angle defaults to the
// (−45°, 45°) uniform range. With PreserveShape the canvas keeps the input
// shape; otherwise it grows to the rotated bounding box and assembly
// reconciles the drift.
type RotateOptions struct {
	Component     string
	P             float64
	Angle         Angle
	PreserveShape bool
	Rand          *rand.Rand
	Workers       int
}

// DefaultRotateOptions returns RotateOptions with P=1 and shape
// preservation on.
func DefaultRotateOptions() RotateOptions {
	return RotateOptions{Component: DefaultComponent, P: 1, PreserveShape: true}
}

// FlipOptions configures Flip.
//
// P is the probability of flipping an item; with ModeAll, PLR is the
// probability of choosing the left/right flip over upside-down.
type FlipOptions struct {
	Component string
	Mode      FlipMode
	P         float64
	PLR       float64
	Rand      *rand.Rand
	Workers   int
}

// DefaultFlipOptions returns FlipOptions with ModeLR, P=1 and PLR=0.5.
func DefaultFlipOptions() FlipOptions {
	return FlipOptions{Component: DefaultComponent, Mode: ModeLR, P: 1, PLR: 0.5}
}

// PadOptions configures Pad with per-side widths and a fill value.
type PadOptions struct {
	Component                string
	Top, Bottom, Left, Right int
	Value                    float64
	Workers                  int
}

// DefaultPadOptions returns zero-width PadOptions filling with 0.
func DefaultPadOptions() PadOptions {
	return PadOptions{Component: DefaultComponent}
}

// InvertOptions configures Invert.
//
// P carries the channel-inversion probabilities:
//   - empty — every channel inverts (probability 1);
//   - one entry p — one draw decides whether ALL channels invert (drawn
//     u < p inverts);
//   - one entry per channel — each channel decided independently; channel c
//     inverts when a fresh uniform draw EXCEEDS P[c], so the vector entry
//     reads as the probability of NOT inverting that channel. Seed the Rand
//     to pin outcomes.
//
// MaxValue is the reflection point, 255 when left zero.
type InvertOptions struct {
	Component string
	P         []float64
	MaxValue  float64
	Rand      *rand.Rand
	Workers   int
}

// DefaultInvertOptions returns InvertOptions inverting all channels around
// the 8-bit maximum.
func DefaultInvertOptions() InvertOptions {
	return InvertOptions{Component: DefaultComponent, P: []float64{1}, MaxValue: 255}
}

// NormalizeOptions configures Normalize. Divisor defaults to 255 when left
// zero.
type NormalizeOptions struct {
	Component string
	Divisor   float64
}

// DefaultNormalizeOptions returns NormalizeOptions dividing by 255.
func DefaultNormalizeOptions() NormalizeOptions {
	return NormalizeOptions{Component: DefaultComponent, Divisor: 255}
}
