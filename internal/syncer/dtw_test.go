package syncer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDTWPath_IdenticalSignals(t *testing.T) {
	t.Parallel()

	s := []float64{0, 1, 1, 0, 1}
	path := DTWPath(s, s)

	require.Len(t, path, len(s))
	for i, p := range path {
		require.Equal(t, [2]int{i, i}, p)
	}
}

func TestDTWPath_Monotone(t *testing.T) {
	t.Parallel()

	a := pulse(20, 8, 12)
	b := pulse(20, 5, 9) // same pulse, shifted

	path := DTWPath(a, b)
	require.NotEmpty(t, path)
	require.Equal(t, [2]int{0, 0}, path[0])
	require.Equal(t, [2]int{19, 19}, path[len(path)-1])

	for i := 1; i < len(path); i++ {
		require.GreaterOrEqual(t, path[i][0], path[i-1][0])
		require.GreaterOrEqual(t, path[i][1], path[i-1][1])
	}
}

func TestDTWPath_EmptyInput(t *testing.T) {
	t.Parallel()

	require.Nil(t, DTWPath(nil, []float64{1}))
	require.Nil(t, DTWPath([]float64{1}, nil))
}
