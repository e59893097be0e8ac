package transduce

import (
	"fmt"
	"reflect"
)

// MethodName marks a string as "invoke this method on the input" rather
// than as a literal value. Passing a MethodName to any handler-taking
// constructor dispatches, once at construction time, to a reflection-based
// Handler that calls the named method on each input instead of applying a
// func.
type MethodName string

// Handler is the uniform one-call interface every predicate- or
// transform-taking transducer invokes exactly once per input that reaches
// it. A Handler is built from one of: a func(I) O, a MethodName, or any
// value that already implements Handler[I, O] — the dispatch happens once,
// in the constructor, never per element.
type Handler[I, O any] interface {
	Process(input I) O
}

type handlerFunc[I, O any] struct {
	fn func(I) O
}

func (h handlerFunc[I, O]) Process(input I) O { return h.fn(input) }

type handlerMethod[I, O any] struct {
	name string
}

func (h handlerMethod[I, O]) Process(input I) O {
	m := reflect.ValueOf(input).MethodByName(h.name)
	if !m.IsValid() {
		panic(fmt.Sprintf("transduce: method %q not found on %T", h.name, input))
	}
	out := m.Call(nil)
	if len(out) != 1 {
		panic(fmt.Sprintf("transduce: method %q must return exactly one value", h.name))
	}
	result, _ := out[0].Interface().(O)
	return result
}

// newHandler resolves one of {func(I) O, MethodName, Handler[I, O]} into a
// Handler[I, O], panicking for any other shape — constructors are called
// with a literal func or MethodName by every caller in this package, so an
// unrecognized shape indicates a programming error, not a runtime
// condition to recover from.
func newHandler[I, O any](v any) Handler[I, O] {
	switch h := v.(type) {
	case func(I) O:
		return handlerFunc[I, O]{fn: h}
	case Handler[I, O]:
		return h
	case MethodName:
		return handlerMethod[I, O]{name: string(h)}
	default:
		panic(fmt.Sprintf("transduce: unsupported handler of type %T", v))
	}
}

// KeepHandler is the comma-ok counterpart of Handler used by Keeping
// (KeepIndexed uses IndexedKeepHandler): the bool result plays the role the source language plays
// with a nil/none sentinel return, without forcing O to be a pointer or
// interface type.
type KeepHandler[I, O any] interface {
	Process(input I) (O, bool)
}

type keepHandlerFunc[I, O any] struct {
	fn func(I) (O, bool)
}

func (h keepHandlerFunc[I, O]) Process(input I) (O, bool) { return h.fn(input) }

func newKeepHandler[I, O any](v any) KeepHandler[I, O] {
	switch h := v.(type) {
	case func(I) (O, bool):
		return keepHandlerFunc[I, O]{fn: h}
	case KeepHandler[I, O]:
		return h
	default:
		panic(fmt.Sprintf("transduce: unsupported keep handler of type %T", v))
	}
}

// IndexedKeepHandler is the indexed counterpart of KeepHandler, used by
// KeepIndexed.
type IndexedKeepHandler[I, O any] interface {
	Process(index int, input I) (O, bool)
}

type indexedKeepHandlerFunc[I, O any] struct {
	fn func(int, I) (O, bool)
}

func (h indexedKeepHandlerFunc[I, O]) Process(index int, input I) (O, bool) {
	return h.fn(index, input)
}

func newIndexedKeepHandler[I, O any](v any) IndexedKeepHandler[I, O] {
	switch h := v.(type) {
	case func(int, I) (O, bool):
		return indexedKeepHandlerFunc[I, O]{fn: h}
	case IndexedKeepHandler[I, O]:
		return h
	default:
		panic(fmt.Sprintf("transduce: unsupported indexed keep handler of type %T", v))
	}
}
