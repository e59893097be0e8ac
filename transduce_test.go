package transduce

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransduceDrivesSourceThroughTransducerIntoSink(t *testing.T) {
	xf := Mapping[[]int, int, int](func(n int) int { return n * 2 })
	result := Transduce(xf, AppendReducer[int](), SliceSeq([]int{1, 2, 3}))
	require.Equal(t, []int{2, 4, 6}, result)
}

func TestTransduceStopsPullingOnReduced(t *testing.T) {
	var pulled []int
	source := func(yield func(int) bool) {
		for _, n := range []int{1, 2, 3, 4, 5} {
			pulled = append(pulled, n)
			if !yield(n) {
				return
			}
		}
	}
	xf := Taking[[]int, int](2)
	result := Transduce(xf, AppendReducer[int](), source)
	require.Equal(t, []int{1, 2}, result)
	require.Equal(t, []int{1, 2, 3}, pulled) // the 3rd pull is what triggers termination
}

func TestTransduceInitOverridesReducerSeed(t *testing.T) {
	xf := Mapping[[]int, int, int](func(n int) int { return n })
	result := TransduceInit(xf, AppendReducer[int](), []int{100}, SliceSeq([]int{1, 2}))
	require.Equal(t, []int{100, 1, 2}, result)
}

func TestTransduceStringIteratesRuneByRune(t *testing.T) {
	xf := Filtering[string, rune](func(r rune) bool { return r != ' ' })
	result := TransduceString(xf, StringReducerRunes(), "a b c")
	require.Equal(t, "abc", result)
}

// StringReducerRunes is a rune-accumulating sink, since StringReducer
// itself folds string inputs (whole tokens), not individual runes.
func StringReducerRunes() Reducer[string, rune] {
	seed := ""
	r, err := NewReducer(&seed, func(result string, input rune) string {
		return result + string(input)
	})
	if err != nil {
		panic(err)
	}
	return r
}

func TestTransduceAnyLiftsBareFuncWithSeed(t *testing.T) {
	xf := Mapping[[]int, int, int](func(n int) int { return n * 2 })
	seed := []int{}
	result, err := TransduceAny[[]int, int, int](xf, func(result []int, input int) []int {
		return append(result, input)
	}, &seed, SliceSeq([]int{1, 2, 3}))
	require.NoError(t, err)
	require.Equal(t, []int{2, 4, 6}, result)
}

func TestTransduceAnyLiftsMethodNameWithSeed(t *testing.T) {
	xf := Mapping[countBox, int, int](func(n int) int { return n })
	seed := countBox{}
	result, err := TransduceAny[countBox, int, int](xf, MethodName("Add"), &seed, SliceSeq([]int{1, 2, 3}))
	require.NoError(t, err)
	require.Equal(t, countBox{n: 6}, result)
}

func TestTransduceAnyWithBareFuncAndNoSeedFails(t *testing.T) {
	xf := Mapping[[]int, int, int](func(n int) int { return n })
	_, err := TransduceAny[[]int, int, int](xf, func(result []int, input int) []int {
		return append(result, input)
	}, nil, SliceSeq([]int{1}))
	require.ErrorIs(t, err, ErrMissingSeed)
}

func TestTransduceAnyAcceptsAlreadyStepCapableReducerWithoutSeed(t *testing.T) {
	xf := Mapping[[]int, int, int](func(n int) int { return n * 3 })
	result, err := TransduceAny[[]int, int, int](xf, AppendReducer[int](), nil, SliceSeq([]int{1, 2}))
	require.NoError(t, err)
	require.Equal(t, []int{3, 6}, result)
}

func TestTransduceAnyRejectsUnsupportedReducerShape(t *testing.T) {
	xf := Mapping[[]int, int, int](func(n int) int { return n })
	_, err := TransduceAny[[]int, int, int](xf, "not a reducer", nil, SliceSeq([]int{1}))
	require.ErrorIs(t, err, ErrMissingOperation)
}

func TestRuneSeqYieldsEachRune(t *testing.T) {
	var got []rune
	for r := range RuneSeq("hi!") {
		got = append(got, r)
	}
	require.Equal(t, []rune{'h', 'i', '!'}, got)
}

func TestSliceSeqYieldsEachElementInOrder(t *testing.T) {
	var got []string
	for s := range SliceSeq([]string{"x", "y", "z"}) {
		got = append(got, s)
	}
	require.Equal(t, []string{"x", "y", "z"}, got)
}

func TestSeqConcatPreservesOrderAcrossSources(t *testing.T) {
	combined := SeqConcat(SliceSeq([]int{1, 2}), SliceSeq([]int{3}), SliceSeq([]int{4, 5}))
	var got []int
	for n := range combined {
		got = append(got, n)
	}
	require.Equal(t, []int{1, 2, 3, 4, 5}, got)
}

func TestSeqConcatHonorsEarlyStop(t *testing.T) {
	var secondSourcePulled bool
	combined := SeqConcat(
		SliceSeq([]int{1, 2}),
		func(yield func(int) bool) {
			secondSourcePulled = true
			yield(3)
		},
	)
	var got []int
	for n := range combined {
		got = append(got, n)
		if len(got) == 1 {
			break
		}
	}
	require.Equal(t, []int{1}, got)
	require.False(t, secondSourcePulled)
}
