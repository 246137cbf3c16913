// Package imagery provides dense in-memory images and the typed stacking
// primitive used by batch assembly.
//
// 🚀 What is imagery?
//
//	A small numeric backend for 2-D images with an explicit channel axis:
//	  • Image — rows×cols×channels float64 array, immutable transform style
//	  • Transforms — Crop, FlipLR/FlipUD, Pad, Invert, Embed, Resize, Rotate
//	  • Volume — N stacked images with a leading item axis
//	  • Stack — turns N same-shaped images into one Volume, reporting shape
//	    drift as a typed *ShapeMismatchError instead of a fatal failure
//
// ✨ Key properties:
//   - Transforms never mutate their receiver; each returns a fresh Image.
//   - Stack failures are machine-readable: callers recover from shape drift
//     with errors.As, not by string-matching error messages.
//   - MinShape gives the elementwise row/column minimum across items — the
//     common-crop policy batch assembly degrades to.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/batchaug/imagery"
//
//	im, _ := imagery.New(32, 32, 3)
//	smaller, _ := im.Crop(0, 0, 28, 28)
//	vol, err := imagery.Stack([]*imagery.Image{smaller, smaller})
//
// Resize interpolates through golang.org/x/image/draw (Catmull-Rom), one
// grayscale plane per channel, so any channel count is supported.
//
// See example_test.go for end-to-end walkthroughs.
package imagery
