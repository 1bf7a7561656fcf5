package syncer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/require"
)

const testSampleRate = 16000

// writeTestWAV encodes mono 16-bit PCM samples into a temp WAV file.
func writeTestWAV(t *testing.T, samples []int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "audio.wav")
	f, err := os.Create(path)
	require.NoError(t, err)

	enc := wav.NewEncoder(f, testSampleRate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Data:           samples,
		Format:         &audio.Format{NumChannels: 1, SampleRate: testSampleRate},
		SourceBitDepth: 16,
	}
	require.NoError(t, enc.Write(buf))
	require.NoError(t, enc.Close())
	require.NoError(t, f.Close())
	return path
}

// speechSamples builds one second of silence with a loud region between
// startSec and endSec.
func speechSamples(totalSec, startSec, endSec float64) []int {
	samples := make([]int, int(totalSec*testSampleRate))
	for i := int(startSec * testSampleRate); i < int(endSec*testSampleRate); i++ {
		if i%2 == 0 {
			samples[i] = 10000
		} else {
			samples[i] = -10000
		}
	}
	return samples
}

func TestVoiceActivity(t *testing.T) {
	t.Parallel()

	path := writeTestWAV(t, speechSamples(1.0, 0.2, 0.4))

	signal, err := VoiceActivity(path, 10)
	require.NoError(t, err)
	require.Len(t, signal, 100)

	for i, v := range signal {
		if i >= 20 && i < 40 {
			require.Equal(t, 1.0, v, "window %d", i)
		} else {
			require.Equal(t, 0.0, v, "window %d", i)
		}
	}
}

func TestVoiceActivity_Silence(t *testing.T) {
	t.Parallel()

	path := writeTestWAV(t, make([]int, testSampleRate/2))

	signal, err := VoiceActivity(path, 10)
	require.NoError(t, err)
	require.Len(t, signal, 50)
	for _, v := range signal {
		require.Equal(t, 0.0, v)
	}
}

func TestVoiceActivity_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := VoiceActivity(filepath.Join(t.TempDir(), "missing.wav"), 10)
	require.Error(t, err)
}
