package parallel

import (
	"context"
	"errors"
	"runtime"
	"sync"

	pkgerrors "github.com/pkg/errors"
	"golang.org/x/sync/semaphore"
)

// Sentinel errors for parallel mapping.
var (
	// ErrNegativeCount indicates a negative item count.
	ErrNegativeCount = errors.New("parallel: item count must be non-negative")
	// ErrNilFunc indicates a nil per-item function.
	ErrNilFunc = errors.New("parallel: per-item function must not be nil")
)

// Result is the outcome of one per-item invocation: either a produced Value
// or a captured Err, never both. A Result lives exactly one action — created
// by Map, consumed by assembly, then discarded.
type Result[T any] struct {
	Value T
	Err   error
}

// Failed reports whether this item's invocation was captured as a failure.
func (r Result[T]) Failed() bool { return r.Err != nil }

// Options configures Map.
//
// Fields:
//   - Workers — maximum number of concurrently running invocations.
//     Values ≤ 0 fall back to runtime.GOMAXPROCS(0).
type Options struct {
	Workers int
}

// DefaultOptions returns Options with Workers = GOMAXPROCS.
func DefaultOptions() Options {
	return Options{Workers: runtime.GOMAXPROCS(0)}
}

// Map invokes fn(ctx, i) once for every i in [0, n), at most opts.Workers at
// a time, and returns the n outcomes in item order.
//
// Failure isolation: an error returned by fn — or a panic inside fn, which
// is recovered — is captured into results[i] and the remaining items keep
// running. Captured errors wrap the original (errors.Is/As work through
// them) and carry a stack trace. A cancelled ctx is captured the same way
// for items that have not started yet.
//
// The returned error is non-nil only for a malformed call (negative n, nil
// fn), in which case nothing was invoked.
func Map[T any](ctx context.Context, n int, fn func(ctx context.Context, i int) (T, error), opts Options) ([]Result[T], error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	if fn == nil {
		return nil, ErrNilFunc
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Result[T], n)
	sem := semaphore.NewWeighted(int64(workers))
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := sem.Acquire(ctx, 1); err != nil {
				results[i].Err = pkgerrors.Wrapf(err, "item %d not started", i)

				return
			}
			defer sem.Release(1)
			results[i] = invoke(ctx, i, fn)
		}(i)
	}
	wg.Wait()

	return results, nil
}

// invoke runs one item, converting panics and errors into a captured Result.
func invoke[T any](ctx context.Context, i int, fn func(ctx context.Context, i int) (T, error)) (res Result[T]) {
	defer func() {
		if p := recover(); p != nil {
			res.Err = pkgerrors.Errorf("item %d panicked: %v", i, p)
		}
	}()

	v, err := fn(ctx, i)
	if err != nil {
		res.Err = pkgerrors.Wrapf(err, "item %d", i)

		return res
	}
	res.Value = v

	return res
}

// AnyFailed reports whether at least one item was captured as a failure.
func AnyFailed[T any](results []Result[T]) bool {
	for _, r := range results {
		if r.Failed() {
			return true
		}
	}

	return false
}

// Errors returns the captured failures, in item order. The slice is empty
// when every item succeeded.
func Errors[T any](results []Result[T]) []error {
	var errs []error
	for _, r := range results {
		if r.Failed() {
			errs = append(errs, r.Err)
		}
	}

	return errs
}

// Values returns the produced values, in item order. Call only after
// checking AnyFailed: failed items contribute their zero value.
func Values[T any](results []Result[T]) []T {
	out := make([]T, len(results))
	for i, r := range results {
		out[i] = r.Value
	}

	return out
}
