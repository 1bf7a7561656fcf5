package transcribe

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dylan-ru/sub-lator/internal/keystore"
)

type fakeSDKClient struct {
	key       string
	text      string
	sentences []TimedSentence
	err       error
}

func (f *fakeSDKClient) TranscribeFile(ctx context.Context, path string) (string, []TimedSentence, error) {
	return f.text, f.sentences, f.err
}

func newFakeAssemblyAI(t *testing.T, fake *fakeSDKClient) *AssemblyAIClient {
	t.Helper()
	c := NewAssemblyAIClient(newTestKeys(t, "aai-key"))
	c.newClient = func(key string) sdkClient {
		fake.key = key
		return fake
	}
	return c
}

func TestAssemblyAITranscribe_TimedSentences(t *testing.T) {
	t.Parallel()

	fake := &fakeSDKClient{
		text: "Hello world. Goodbye world.",
		sentences: []TimedSentence{
			{Text: "Hello world.", Start: 500, End: 1800},
			{Text: "Goodbye world.", Start: 2100, End: 3600},
		},
	}
	c := newFakeAssemblyAI(t, fake)

	cues, err := c.Transcribe(context.Background(), "clip.mp4")
	require.NoError(t, err)
	require.Equal(t, "aai-key", fake.key)

	require.Len(t, cues, 2)
	require.Equal(t, 1, cues[0].Index)
	require.Equal(t, 500*time.Millisecond, cues[0].Start)
	require.Equal(t, 1800*time.Millisecond, cues[0].End)
	require.Equal(t, "Hello world.", cues[0].Text)
	require.Equal(t, 2, cues[1].Index)
	require.Equal(t, "Goodbye world.", cues[1].Text)
}

func TestAssemblyAITranscribe_FallsBackToEstimatedTimestamps(t *testing.T) {
	t.Parallel()

	fake := &fakeSDKClient{text: "Only a plain transcript.\nWith two lines."}
	c := newFakeAssemblyAI(t, fake)

	cues, err := c.Transcribe(context.Background(), "clip.mp4")
	require.NoError(t, err)

	require.Len(t, cues, 2)
	require.Equal(t, time.Duration(0), cues[0].Start)
	require.Equal(t, 4*time.Second, cues[0].End)
	require.Equal(t, 4*time.Second, cues[1].Start)
}

func TestAssemblyAITranscribe_Error(t *testing.T) {
	t.Parallel()

	fake := &fakeSDKClient{err: errors.New("upload rejected")}
	c := newFakeAssemblyAI(t, fake)

	_, err := c.Transcribe(context.Background(), "clip.mp4")
	require.Error(t, err)
	require.Contains(t, err.Error(), "assemblyai transcription failed: upload rejected")
}

func TestAssemblyAITranscribe_NoKeys(t *testing.T) {
	t.Parallel()

	c := NewAssemblyAIClient(newTestKeys(t))

	_, err := c.Transcribe(context.Background(), "clip.mp4")
	require.ErrorIs(t, err, keystore.ErrNoKeys)
}
