package transduce

// Transducer wraps a downstream Reducer, itself over Out, and returns a
// new Reducer over In with additional behavior woven into its Step. A
// Transducer is a pure, reusable value: Apply must never mutate t, and
// all per-drive mutable state is created fresh inside Apply and lives on
// the Reducer it returns.
type Transducer[R, In, Out any] interface {
	Apply(down Reducer[R, Out]) Reducer[R, In]
}

// TransducerFunc adapts a plain func to Transducer, the same func-adapter
// idiom net/http's HandlerFunc (and this corpus's own middleware.Middleware)
// uses to let a bare function satisfy a single-method interface.
type TransducerFunc[R, In, Out any] func(down Reducer[R, Out]) Reducer[R, In]

// Apply implements Transducer.
func (f TransducerFunc[R, In, Out]) Apply(down Reducer[R, Out]) Reducer[R, In] {
	return f(down)
}

// Compose returns a transducer whose Apply wraps right-to-left — so that
// composed.Apply(r) == ts[0].Apply(ts[1].Apply(... ts[n-1].Apply(r))) —
// meaning data flows left-to-right through ts at runtime: ts[0] sees the
// raw input first, ts[n-1] is the last stage before r.
//
// Composing zero transducers yields the identity transducer, whose Apply
// returns its argument unchanged. Compose is associative: grouping the
// arguments differently produces an identical wrapped chain.
//
// Compose is homogeneous (every stage shares element type T) because Go
// generics have no variadic-type-chain mechanism for safely composing
// transducers whose In/Out types differ pairwise; see DESIGN.md for why
// this is the faithful translation rather than a shortcut. Mapcat, the
// one stage in this package whose type does change mid-pipeline, is
// built directly rather than through Compose.
func Compose[R, T any](ts ...Transducer[R, T, T]) Transducer[R, T, T] {
	return TransducerFunc[R, T, T](func(down Reducer[R, T]) Reducer[R, T] {
		wrapped := down
		for i := len(ts) - 1; i >= 0; i-- {
			wrapped = ts[i].Apply(wrapped)
		}
		return wrapped
	})
}
