package transduce

// Step is the return value of a Reducer's Step operation. It is the typed
// equivalent of the two-constructor sum Continue(R) | Stop(R): a plain
// result that the drive should keep folding into, or a result tagged
// final, telling the drive to stop pulling further input.
//
// Step never nests outside this package. Crossing a nested-drive boundary
// (see Cat) re-derives a fresh final Step from the outer drive's own
// accumulator type rather than literally wrapping one Step inside
// another; preservingReduced carries the "a Reduced crossed this
// boundary" bit out of band on the wrapper instance instead.
type Step[R any] struct {
	value   R
	reduced bool
}

// Continue wraps v as an ordinary, non-final result.
func Continue[R any](v R) Step[R] {
	return Step[R]{value: v}
}

// Reduced wraps v as the final result of a reduction. Once a Step built
// with Reduced is returned from Step, the drive must not call Step again;
// it unwraps v and proceeds to Complete.
//
// User-defined Reducer implementations may return Reduced from their own
// Step to signal custom early termination.
func Reduced[R any](v R) Step[R] {
	return Step[R]{value: v, reduced: true}
}

// IsReduced reports whether s marks the final result of a reduction.
func (s Step[R]) IsReduced() bool {
	return s.reduced
}

// Value returns the wrapped result, whether or not s is reduced.
func (s Step[R]) Value() R {
	return s.value
}
