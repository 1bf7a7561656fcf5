package syncer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubtitleSignal(t *testing.T) {
	t.Parallel()

	signal := SubtitleSignal([][2]float64{{0.2, 0.5}}, 1.0, 10)
	require.Len(t, signal, 100)

	for i, v := range signal {
		if i >= 20 && i < 50 {
			require.Equal(t, 1.0, v, "window %d", i)
		} else {
			require.Equal(t, 0.0, v, "window %d", i)
		}
	}
}

func TestSubtitleSignal_ClampsOutOfRangeIntervals(t *testing.T) {
	t.Parallel()

	signal := SubtitleSignal([][2]float64{{-0.5, 0.1}, {0.9, 2.0}}, 1.0, 10)
	require.Len(t, signal, 100)

	require.Equal(t, 1.0, signal[0])
	require.Equal(t, 1.0, signal[9])
	require.Equal(t, 0.0, signal[10])
	require.Equal(t, 0.0, signal[89])
	require.Equal(t, 1.0, signal[90])
	require.Equal(t, 1.0, signal[99])
}

func TestSubtitleSignal_ZeroDuration(t *testing.T) {
	t.Parallel()

	require.Nil(t, SubtitleSignal([][2]float64{{0, 1}}, 0, 10))
}
