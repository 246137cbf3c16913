// Package parallel runs one function per batch item, possibly concurrently,
// and collects every outcome — values and failures alike — in the original
// item order.
//
// 🚀 What is parallel?
//
//	The fan-out half of every batch action:
//	  • Map — invoke fn(ctx, i) for i in [0, n), bounded by a weighted
//	    semaphore, never aborting the batch on a single failure
//	  • Result — one per-item outcome: a value or a captured error that
//	    carries the stack trace of the failing item
//	  • AnyFailed / Errors — batch-level failure detection and extraction
//
// ✨ Guarantees:
//   - results[i] always belongs to item i, whatever the scheduling order.
//   - One item's error (or panic — recovered) never stops the other items.
//   - Captured errors wrap the original, so errors.Is/As see through them,
//     and carry a stack via github.com/pkg/errors for diagnosis.
//
// ⚙️ Usage:
//
//	results, err := parallel.Map(ctx, batch.Len(), transformOne, parallel.DefaultOptions())
//	if err != nil { ... }                  // malformed call, nothing ran
//	if parallel.AnyFailed(results) { ... } // per-item failures, all captured
//
// Map itself is deterministic in its outputs; callers needing reproducible
// randomness draw their per-item parameters before fanning out.
package parallel
