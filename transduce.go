package transduce

import "iter"

// Transduce is the drive: it applies t to reducer, obtains a seed from
// the wrapped reducer's Init, pulls items from source one at a time,
// feeds each through the wrapped Step, honors Reduced by stopping early,
// and finalizes exactly once via Complete.
func Transduce[R, In, Out any](t Transducer[R, In, Out], reducer Reducer[R, Out], source iter.Seq[In]) R {
	wrapped := t.Apply(reducer)
	acc := wrapped.Init()
	for item := range source {
		sr := wrapped.Step(acc, item)
		acc = sr.Value()
		if sr.IsReduced() {
			break
		}
	}
	return wrapped.Complete(acc)
}

// TransduceInit is Transduce with an explicit seed, overriding whatever
// the wrapped reducer's Init would otherwise supply.
func TransduceInit[R, In, Out any](t Transducer[R, In, Out], reducer Reducer[R, Out], init R, source iter.Seq[In]) R {
	wrapped := t.Apply(reducer)
	acc := init
	for item := range source {
		sr := wrapped.Step(acc, item)
		acc = sr.Value()
		if sr.IsReduced() {
			break
		}
	}
	return wrapped.Complete(acc)
}

// TransduceAny is the general drive entry point: reducerOrFuncOrMethodName
// may already be step-capable (a Reducer[R, Out]), or a bare binary step
// func or MethodName to be lifted into a base Reducer, exactly as
// NewReducer/NewMethodReducer do. seed supplies the lifted reducer's
// Init (and, for an already step-capable reducer, overrides its own
// Init the way TransduceInit does) — pass nil to fall back to the
// reducer's own Init, which is only valid when
// reducerOrFuncOrMethodName is already step-capable; lifting a bare
// func or MethodName with no seed fails with ErrMissingSeed, and an
// unrecognized reducerOrFuncOrMethodName shape fails with
// ErrMissingOperation.
func TransduceAny[R, In, Out any](t Transducer[R, In, Out], reducerOrFuncOrMethodName any, seed *R, source iter.Seq[In]) (R, error) {
	reducer, err := liftReducer[R, Out](reducerOrFuncOrMethodName, seed)
	if err != nil {
		var zero R
		return zero, err
	}
	if seed != nil {
		return TransduceInit(t, reducer, *seed, source), nil
	}
	return Transduce(t, reducer, source), nil
}

// liftReducer resolves reducerOrFuncOrMethodName into a Reducer[R, Out]:
// a value that already implements Reducer[R, Out] is used as-is; a bare
// StepFunc[R, Out] (or an equivalently-shaped func literal) or a
// MethodName is lifted via NewReducer/NewMethodReducer, which is where
// a missing seed actually surfaces as ErrMissingSeed.
func liftReducer[R, Out any](v any, seed *R) (Reducer[R, Out], error) {
	switch h := v.(type) {
	case Reducer[R, Out]:
		return h, nil
	case StepFunc[R, Out]:
		return NewReducer(seed, h)
	case func(R, Out) R:
		return NewReducer(seed, StepFunc[R, Out](h))
	case MethodName:
		return NewMethodReducer[R, Out](seed, h)
	default:
		return nil, ErrMissingOperation
	}
}

// TransduceString drives t over the runes of source, matching the
// specification's requirement that string sources iterate character by
// character rather than requiring a caller-side conversion contract per
// concrete source type.
func TransduceString[R, Out any](t Transducer[R, rune, Out], reducer Reducer[R, Out], source string) R {
	return Transduce(t, reducer, RuneSeq(source))
}

// RuneSeq adapts a string to an iter.Seq[rune], the "small iteration
// capability" the specification calls for in place of enumerating
// concrete source types (§9). Any other source shape a caller wants to
// drive is expected to already satisfy, or be trivially adapted to,
// iter.Seq — SliceSeq is the adapter for the other common case.
func RuneSeq(s string) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range s {
			if !yield(r) {
				return
			}
		}
	}
}

// SliceSeq adapts a slice to an iter.Seq[T], mirroring the teacher
// library's internal/iterx.FromSlice.
func SliceSeq[T any](in []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range in {
			if !yield(item) {
				return
			}
		}
	}
}

// SeqConcat drains each of seqs in turn, sequentially, into a single
// iter.Seq[T]. It's the non-concurrent counterpart of the teacher
// library's Merge: combining multiple sources into one without spawning
// goroutines or interleaving them, which the specification's
// no-parallelism non-goal rules out. Order is preserved: every item of
// seqs[0] is yielded before seqs[1] begins.
func SeqConcat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for item := range seq {
				if !yield(item) {
					return
				}
			}
		}
	}
}
