package transduce

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewReducerRequiresSeed(t *testing.T) {
	_, err := NewReducer[int, int](nil, func(r, i int) int { return r + i })
	require.ErrorIs(t, err, ErrMissingSeed)
}

func TestNewReducerFoldsWithSeed(t *testing.T) {
	seed := 0
	r, err := NewReducer(&seed, func(result, input int) int { return result + input })
	require.NoError(t, err)

	acc := r.Init()
	require.Equal(t, 0, acc)
	for _, n := range []int{1, 2, 3} {
		acc = r.Step(acc, n).Value()
	}
	require.Equal(t, 6, r.Complete(acc))
}

type countBox struct{ n int }

func (c countBox) Add(v int) countBox { return countBox{n: c.n + v} }

func TestNewMethodReducerRequiresSeed(t *testing.T) {
	_, err := NewMethodReducer[countBox, int](nil, MethodName("Add"))
	require.ErrorIs(t, err, ErrMissingSeed)
}

func TestNewMethodReducerDispatchesNamedMethod(t *testing.T) {
	seed := countBox{}
	r, err := NewMethodReducer[countBox, int](&seed, MethodName("Add"))
	require.NoError(t, err)

	acc := r.Init()
	acc = r.Step(acc, 4).Value()
	acc = r.Step(acc, 5).Value()
	require.Equal(t, countBox{n: 9}, r.Complete(acc))
}

func TestReducerFromAnyRejectsNonReducer(t *testing.T) {
	_, err := ReducerFromAny[int, int]("not a reducer")
	require.ErrorIs(t, err, ErrMissingOperation)
}

func TestReducerFromAnyAcceptsReducer(t *testing.T) {
	seed := []int{}
	base, err := NewReducer(&seed, func(result []int, input int) []int { return append(result, input) })
	require.NoError(t, err)

	r, err := ReducerFromAny[[]int, int](base)
	require.NoError(t, err)
	require.Same(t, base, r)
}

func TestAppendReducer(t *testing.T) {
	r := AppendReducer[string]()
	acc := r.Init()
	require.Nil(t, acc)
	acc = r.Step(acc, "a").Value()
	acc = r.Step(acc, "b").Value()
	require.Equal(t, []string{"a", "b"}, r.Complete(acc))
}

func TestStringReducer(t *testing.T) {
	r := StringReducer()
	acc := r.Init()
	require.Equal(t, "", acc)
	acc = r.Step(acc, "ab").Value()
	acc = r.Step(acc, "cd").Value()
	require.Equal(t, "abcd", r.Complete(acc))
}
