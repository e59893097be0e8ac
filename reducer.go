package transduce

import (
	"fmt"
	"reflect"
)

// Reducer folds inputs of type I into an accumulator of type R. It is the
// unit the drive (Transduce) consumes: Init supplies a seed when the
// caller doesn't provide one, Step folds one input, and Complete
// finalizes the accumulator exactly once, at the end of a successful
// drive.
type Reducer[R, I any] interface {
	Init() R
	Step(result R, input I) Step[R]
	Complete(result R) R
}

// StepFunc is a plain binary fold function, the shape a caller most often
// hands to NewReducer: it never itself returns Reduced — early
// termination is the province of stateful transducers, not of base
// reducers built straight from a user func.
type StepFunc[R, I any] func(result R, input I) R

type baseReducer[R, I any] struct {
	seed R
	step func(R, I) R
}

func (b *baseReducer[R, I]) Init() R { return b.seed }

func (b *baseReducer[R, I]) Step(result R, input I) Step[R] {
	return Continue(b.step(result, input))
}

func (b *baseReducer[R, I]) Complete(result R) R { return result }

// NewReducer lifts a plain binary step func into a Reducer, seeded with
// seed. seed is a pointer so that omitting it (nil) is distinguishable
// from the type's zero value, mirroring the "sentinel no-init value"
// the drive must reject: a nil seed yields ErrMissingSeed rather than
// silently reducing from R's zero value.
func NewReducer[R, I any](seed *R, step StepFunc[R, I]) (Reducer[R, I], error) {
	if seed == nil {
		return nil, ErrMissingSeed
	}
	return &baseReducer[R, I]{seed: *seed, step: step}, nil
}

// NewMethodReducer lifts a method-name symbol into a Reducer: each Step
// calls the named method on result, passing input, and expects a single
// R-typed return value. It is the reducer-side counterpart of the
// MethodName handler form used throughout this package.
func NewMethodReducer[R, I any](seed *R, method MethodName) (Reducer[R, I], error) {
	if seed == nil {
		return nil, ErrMissingSeed
	}
	name := string(method)
	step := func(result R, input I) R {
		m := reflect.ValueOf(result).MethodByName(name)
		if !m.IsValid() {
			panic(fmt.Sprintf("transduce: method %q not found on %T", name, result))
		}
		out := m.Call([]reflect.Value{reflect.ValueOf(input)})
		if len(out) != 1 {
			panic(fmt.Sprintf("transduce: method %q must return exactly one value", name))
		}
		result, _ = out[0].Interface().(R)
		return result
	}
	return &baseReducer[R, I]{seed: *seed, step: step}, nil
}

// ReducerFromAny asserts that v already implements Reducer[R, I],
// returning ErrMissingOperation when it does not. It is the escape hatch
// for callers who receive a reducer-shaped value dynamically (e.g. from
// a registry keyed by name) rather than constructing one with NewReducer.
func ReducerFromAny[R, I any](v any) (Reducer[R, I], error) {
	r, ok := v.(Reducer[R, I])
	if !ok {
		return nil, ErrMissingOperation
	}
	return r, nil
}

// AppendReducer returns a Reducer that accumulates inputs into a slice,
// in order. It is the default sink used throughout this package's
// examples and tests, mirroring Clojure's conj / Go's append.
func AppendReducer[T any]() Reducer[[]T, T] {
	return &baseReducer[[]T, T]{
		seed: nil,
		step: func(result []T, input T) []T {
			return append(result, input)
		},
	}
}

// StringReducer returns a Reducer that accumulates string inputs into a
// string by concatenation, seeded at "".
func StringReducer() Reducer[string, string] {
	return &baseReducer[string, string]{
		seed: "",
		step: func(result string, input string) string {
			return result + input
		},
	}
}
