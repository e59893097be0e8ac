/*
Package transduce provides composable transducers: reducer-to-reducer
transformations over sequences that are independent of both the source
(where items come from) and the sink (how items are accumulated).

A Transducer wraps a downstream Reducer and returns a new Reducer with
additional behavior — mapping, filtering, taking, concatenating, and so
on — woven into its Step. Transducers compose by direct functional
composition: no intermediate slice, channel, or collection is
materialized between stages, and the same composed transducer can drive
accumulation into a slice, a sum, a string, or any other reducible sink.

All transformations (Mapping, Filtering, Taking, and more) are provided
as package-level functions. Those that take a user function accept a
func, a MethodName, or a Handler-implementing value; Keeping and
KeepIndexed accept a comma-ok func or handler value but no MethodName.
Each returns a Transducer, allowing pipelines
to be built through Compose. A transducer value is immutable and safe to
reuse across independent drives; the mutable state a stateful transducer
needs (a counter, a "seen one" flag) lives on the Reducer chain Apply
returns, never on the transducer itself.

Example of a simple pipeline:

	xf := transduce.Compose(
		transduce.Filtering[[]int, int](func(n int) bool { return n%2 == 0 }),
		transduce.Mapping[[]int, int, int](func(n int) int { return n * n }),
		transduce.Taking[[]int, int](3),
	)

	result := transduce.Transduce(xf, transduce.AppendReducer[int](), transduce.SliceSeq([]int{1, 2, 3, 4, 5, 6, 7, 8}))
	// result == []int{4, 16, 36}

Cat and Mapcat flatten one level of nested iter.Seq without materializing
the flattened sequence:

	xf := transduce.Mapcat[[]int, int, int](func(n int) iter.Seq[int] {
		return transduce.SliceSeq([]int{n, n * 10})
	})
	result := transduce.Transduce(xf, transduce.AppendReducer[int](), transduce.SliceSeq([]int{1, 2, 3}))
	// result == []int{1, 10, 2, 20, 3, 30}

Early termination propagates through arbitrarily nested stages: a Taking
downstream of a Cat stops both the inner and outer drive on the same
input that would have overflowed it, never pulling a further item from
either.

For more details on each transducer and the drive itself, see the
package-level documentation for Transduce, Compose, and the individual
constructors.
*/
package transduce
