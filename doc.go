// Package batchaug is an in-memory toolkit for augmenting batches of images
// in ML data pipelines and for scoring classification models — from dense
// per-item transforms to batch-level assembly and confusion-matrix metrics.
//
// 🚀 What is batchaug?
//
//	A small, deterministic library that brings together:
//		• Dense images: rows×cols×channels arrays with crop, flip, pad,
//		  invert, resize, rotate and scale primitives
//		• Parallel mapping: ordered per-item fan-out that captures every
//		  failure instead of aborting the batch
//		• Batch assembly: stack heterogeneous per-item outputs back into one
//		  homogeneous batch array, degrading to a common crop when shapes drift
//		• Randomized actions: crop, resize, scale, rotate, flip, pad, invert
//		  and normalize over named batch components, with injected RNGs
//		• Classification metrics: accuracy, rates, predictive values, F1,
//		  dice and jaccard from a batched confusion matrix
//
// ✨ Why choose batchaug?
//
//   - Strict validation – malformed parameters fail before any work starts
//   - All-or-nothing batches – a failed item never leaves a half-built batch
//   - Reproducible – every random draw comes from a caller-seeded source
//   - Pure Go – no cgo, no hidden global state
//
// Everything is organized under four subpackages:
//
//	imagery/  — dense Image/Volume types, pixel transforms, typed stacking
//	parallel/ — ordered, bounded, failure-capturing per-item map
//	batch/    — named components, augmentation actions, shape-tolerant assembly
//	metrics/  — confusion-matrix engine and the twelve derived statistics
//
// Quick sketch of one action:
//
//	items ──▶ parallel.Map ──▶ [ok ok ok ok] ──▶ assemble ──▶ batch
//	                           [ok err ok ok] ──▶ AssembleError (batch untouched)
//
// Dive into each package's doc.go and example_test.go for full walkthroughs.
//
//	go get github.com/katalvlaran/batchaug
package batchaug
