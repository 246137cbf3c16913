// Package batch applies randomized augmentation actions to named components
// of an image batch and reassembles per-item results into one homogeneous
// batch array.
//
// 🚀 What is batch?
//
//	The orchestration layer of the library:
//	  • Batch — N ordered items, each owning the declared components
//	    (e.g. "images"); components are an explicit name→Volume mapping,
//	    never dynamic attributes
//	  • Actions — Crop, Resize, Scale, Rotate, Flip, Pad, Invert, Normalize;
//	    each validates its parameters eagerly, fans the per-item transform
//	    out through parallel.Map, and assembles the results
//	  • Assembly — all-or-nothing: any captured per-item failure aborts the
//	    action with an AssembleError carrying every failure, and the batch
//	    is left exactly as it was
//
// ✨ Shape-tolerant assembly:
//
//	Transforms such as Rotate with PreserveShape=false legitimately produce
//	items of different extents. Rather than making every transform reconcile
//	shapes, assembly applies one predictable degrade policy: on a typed
//	shape mismatch it crops every item to the elementwise minimum rows and
//	columns (top-left anchored) and stacks again. Channel disagreement is
//	not reconciled and stays fatal.
//
// 🎲 Randomness:
//
//	Every randomized parameter (origins, factors, angles, flip and channel
//	choices) is drawn from the *rand.Rand injected through the action's
//	options, per item, at action time. Draws happen in item order before the
//	parallel fan-out, so a seeded source reproduces a batch exactly. A nil
//	Rand falls back to a time-seeded source (non-deterministic on purpose).
//
// ⚙️ Usage:
//
//	b, _ := batch.New(4, "images")
//	_ = b.SetComponent("images", vol)
//
//	opts := batch.DefaultRotateOptions()
//	opts.Angle = batch.AngleRange(-30, 30)
//	opts.Rand = rand.New(rand.NewSource(7))
//	if _, err := b.Rotate(ctx, opts); err != nil { ... }
//
// See example_test.go for complete pipelines.
package batch
