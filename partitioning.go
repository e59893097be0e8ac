package transduce

// This file adapts three ideas from the teacher library's lazy Pipe
// combinators (Chunk, GroupBy, GroupByAggregate) into stateful,
// synchronous transducers. Chunking, PartitionBy and PartitionAggregate
// are not part of the distilled specification's core transducer list,
// but they're canonical transducer-family operations (see
// other_examples/jpx40-transduce and sdboyer-transducers-go's
// Chunk/ChunkBy/PartitionAll/PartitionBy) and a natural home for the
// teacher's own grouping logic once translated out of its channel/error
// pipeline and into the Reducer/Transducer algebra: no concurrency, and
// buffered state on the wrapped reducer instance rather than captured by
// a yield closure.

// Chunking groups inputs into slices of size n and forwards each full
// slice downstream. Any trailing partial chunk is forwarded when the
// drive completes. Chunking panics if n is not positive, matching the
// teacher's own Chunk.
//
// Adapted from Pipe.Chunk in the teacher library.
func Chunking[R, T any](n int) Transducer[R, T, []T] {
	if n <= 0 {
		panic("transduce.Chunking: n must be positive")
	}
	return TransducerFunc[R, T, []T](func(down Reducer[R, []T]) Reducer[R, T] {
		return &chunkReducer[R, T]{down: down, size: n}
	})
}

type chunkReducer[R, T any] struct {
	down  Reducer[R, []T]
	size  int
	accum []T
}

func (c *chunkReducer[R, T]) Init() R { return c.down.Init() }

func (c *chunkReducer[R, T]) Complete(result R) R {
	if len(c.accum) > 0 {
		sr := c.down.Step(result, c.accum)
		result = sr.Value()
		c.accum = nil
	}
	return c.down.Complete(result)
}

func (c *chunkReducer[R, T]) Step(result R, input T) Step[R] {
	c.accum = append(c.accum, input)
	if len(c.accum) < c.size {
		return Continue(result)
	}
	chunk := c.accum
	c.accum = make([]T, 0, c.size)
	return c.down.Step(result, chunk)
}

// PartitionBy groups consecutive inputs that map to the same key,
// forwarding each completed group as a slice as soon as the key changes,
// and the final group when the drive completes. Inputs are not
// reordered; groups form only from runs of consecutive equal keys, as in
// the teacher's GroupBy. keyFunc may be a func(T) K, a MethodName, or a
// Handler[T, K].
//
// Adapted from Pipe.GroupBy in the teacher library.
func PartitionBy[R, T any, K comparable](keyFunc any) Transducer[R, T, []T] {
	h := newHandler[T, K](keyFunc)
	return TransducerFunc[R, T, []T](func(down Reducer[R, []T]) Reducer[R, T] {
		return &partitionByReducer[R, T, K]{down: down, keyFunc: h}
	})
}

type partitionByReducer[R, T any, K comparable] struct {
	down    Reducer[R, []T]
	keyFunc Handler[T, K]
	accum   []T
	key     K
	started bool
}

func (p *partitionByReducer[R, T, K]) Init() R { return p.down.Init() }

func (p *partitionByReducer[R, T, K]) Complete(result R) R {
	if len(p.accum) > 0 {
		sr := p.down.Step(result, p.accum)
		result = sr.Value()
		p.accum = nil
	}
	return p.down.Complete(result)
}

func (p *partitionByReducer[R, T, K]) Step(result R, input T) Step[R] {
	k := p.keyFunc.Process(input)
	if p.started && k != p.key {
		group := p.accum
		p.accum = nil
		sr := p.down.Step(result, group)
		result = sr.Value()
		if sr.IsReduced() {
			return Reduced(result)
		}
	}
	p.key = k
	p.started = true
	p.accum = append(p.accum, input)
	return Continue(result)
}

// PartitionAggregate groups consecutive inputs by keyFunc, as PartitionBy
// does, but folds each group into a single Out value via initFunc
// (called with the first member of a new group) and updateFunc (called
// for every member, including the first), rather than materializing a
// []T per group. This is preferred over PartitionBy followed by a Map
// when groups may be large, since it allocates no group slice at all.
//
// Adapted from Pipe.GroupByAggregate in the teacher library.
func PartitionAggregate[R, T any, K comparable, Out any](
	keyFunc func(T) K,
	initFunc func(first T) Out,
	updateFunc func(acc *Out, item T),
) Transducer[R, T, Out] {
	return TransducerFunc[R, T, Out](func(down Reducer[R, Out]) Reducer[R, T] {
		return &partitionAggregateReducer[R, T, K, Out]{
			down:       down,
			keyFunc:    keyFunc,
			initFunc:   initFunc,
			updateFunc: updateFunc,
		}
	})
}

type partitionAggregateReducer[R, T any, K comparable, Out any] struct {
	down       Reducer[R, Out]
	keyFunc    func(T) K
	initFunc   func(T) Out
	updateFunc func(*Out, T)
	acc        *Out
	key        K
}

func (p *partitionAggregateReducer[R, T, K, Out]) Init() R { return p.down.Init() }

func (p *partitionAggregateReducer[R, T, K, Out]) Complete(result R) R {
	if p.acc != nil {
		sr := p.down.Step(result, *p.acc)
		result = sr.Value()
		p.acc = nil
	}
	return p.down.Complete(result)
}

func (p *partitionAggregateReducer[R, T, K, Out]) Step(result R, input T) Step[R] {
	k := p.keyFunc(input)
	if p.acc != nil && k != p.key {
		sr := p.down.Step(result, *p.acc)
		result = sr.Value()
		p.acc = nil
		if sr.IsReduced() {
			return Reduced(result)
		}
	}
	if p.acc == nil {
		v := p.initFunc(input)
		p.acc = &v
	}
	p.key = k
	p.updateFunc(p.acc, input)
	return Continue(result)
}
