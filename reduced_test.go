package transduce

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContinueIsNotReduced(t *testing.T) {
	s := Continue(5)
	require.False(t, s.IsReduced())
	require.Equal(t, 5, s.Value())
}

func TestReducedIsReduced(t *testing.T) {
	s := Reduced("done")
	require.True(t, s.IsReduced())
	require.Equal(t, "done", s.Value())
}

func TestStepZeroValueIsContinue(t *testing.T) {
	var s Step[int]
	require.False(t, s.IsReduced())
	require.Equal(t, 0, s.Value())
}
