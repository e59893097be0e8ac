package transduce

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChunkingGroupsIntoFixedSizeSlices(t *testing.T) {
	xf := Chunking[[][]int, int](3)
	result := Transduce(xf, AppendReducer[[]int](), SliceSeq([]int{1, 2, 3, 4, 5, 6, 7}))
	require.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7}}, result)
}

func TestChunkingExactMultipleHasNoTrailingPartial(t *testing.T) {
	xf := Chunking[[][]int, int](2)
	result := Transduce(xf, AppendReducer[[]int](), SliceSeq([]int{1, 2, 3, 4}))
	require.Equal(t, [][]int{{1, 2}, {3, 4}}, result)
}

func TestChunkingPanicsOnNonPositiveSize(t *testing.T) {
	require.Panics(t, func() { Chunking[[][]int, int](0) })
	require.Panics(t, func() { Chunking[[][]int, int](-1) })
}

func TestPartitionByGroupsConsecutiveEqualKeys(t *testing.T) {
	xf := PartitionBy[[][]int, int, bool](func(n int) bool { return n%2 == 0 })
	result := Transduce(xf, AppendReducer[[]int](), SliceSeq([]int{1, 3, 2, 4, 5, 7, 6}))
	require.Equal(t, [][]int{{1, 3}, {2, 4}, {5, 7}, {6}}, result)
}

func TestPartitionByDoesNotMergeNonConsecutiveRuns(t *testing.T) {
	xf := PartitionBy[[][]string, string, rune](func(s string) rune { return rune(s[0]) })
	result := Transduce(xf, AppendReducer[[]string](), SliceSeq([]string{"apple", "avocado", "banana", "apricot"}))
	require.Equal(t, [][]string{{"apple", "avocado"}, {"banana"}, {"apricot"}}, result)
}

func TestPartitionAggregateFoldsGroupsWithoutMaterializingSlices(t *testing.T) {
	type sum struct {
		key   int
		total int
	}
	xf := PartitionAggregate[[]sum, int, int, sum](
		func(n int) int { return n % 3 },
		func(first int) sum { return sum{key: first % 3, total: 0} },
		func(acc *sum, n int) { acc.total += n },
	)
	result := Transduce(xf, AppendReducer[sum](), SliceSeq([]int{3, 6, 1, 4, 2}))
	require.Equal(t, []sum{{key: 0, total: 9}, {key: 1, total: 5}, {key: 2, total: 2}}, result)
}

func TestChunkingComposesWithDownstreamTransducers(t *testing.T) {
	xf := TransducerFunc[[][]int, int, []int](func(down Reducer[[][]int, []int]) Reducer[[][]int, int] {
		return Chunking[[][]int, int](2).Apply(Filtering[[][]int, []int](func(c []int) bool { return len(c) == 2 }).Apply(down))
	})
	result := Transduce(xf, AppendReducer[[]int](), SliceSeq([]int{1, 2, 3}))
	require.Equal(t, [][]int{{1, 2}}, result)
}
