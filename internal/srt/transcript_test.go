package srt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFromTranscript_EstimatedTimestamps(t *testing.T) {
	t.Parallel()

	cues := FromTranscript("First line.\nSecond line.\nThird line.", 4)
	require.Len(t, cues, 3)

	require.Equal(t, 1, cues[0].Index)
	require.Equal(t, time.Duration(0), cues[0].Start)
	require.Equal(t, 4*time.Second, cues[0].End)

	require.Equal(t, 8*time.Second, cues[2].Start)
	require.Equal(t, 12*time.Second, cues[2].End)
	require.Equal(t, "Third line.", cues[2].Text)
}

func TestFromTranscript_SkipsBlankLines(t *testing.T) {
	t.Parallel()

	cues := FromTranscript("One.\n\n  \nTwo.\n", 4)
	require.Len(t, cues, 2)
	// Blank lines do not advance the clock.
	require.Equal(t, 4*time.Second, cues[1].Start)
}

func TestFromTranscript_EmptyInput(t *testing.T) {
	t.Parallel()

	require.Empty(t, FromTranscript("", 4))
	require.Empty(t, FromTranscript("   \n\n", 4))
}

func TestFromTranscript_DefaultsSecondsPerLine(t *testing.T) {
	t.Parallel()

	cues := FromTranscript("Line.", 0)
	require.Len(t, cues, 1)
	require.Equal(t, time.Duration(DefaultSecondsPerLine)*time.Second, cues[0].End)
}
