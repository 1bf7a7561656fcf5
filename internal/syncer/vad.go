// Package syncer aligns subtitle timings with the speech in a media file's
// audio track. It discretizes both the audio (via energy-based voice
// activity detection) and the subtitles into binary signals on a shared
// window grid, finds the global offset with FFT cross-correlation, and can
// refine the alignment with a simplified dynamic time warping pass.
package syncer

import (
	"fmt"
	"math"
	"os"

	"github.com/go-audio/wav"
)

// DefaultWindowMS is the analysis window size in milliseconds.
const DefaultWindowMS = 10

// vadThresholdRatio scales the maximum window energy into the speech
// detection threshold.
const vadThresholdRatio = 0.05

// VoiceActivity reads a mono WAV file and returns a binary per-window
// speech signal: 1 where the window's mean energy exceeds the dynamic
// threshold, 0 elsewhere.
func VoiceActivity(wavPath string, windowMS int) ([]float64, error) {
	f, err := os.Open(wavPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open wav file: %w", err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to decode wav file: %w", err)
	}
	if buf.Format == nil || buf.Format.SampleRate <= 0 {
		return nil, fmt.Errorf("wav file %s has no sample rate", wavPath)
	}

	samples := normalize(buf.Data)
	windowSize := windowMS * buf.Format.SampleRate / 1000
	if windowSize <= 0 {
		return nil, fmt.Errorf("window of %dms is below one sample at %dHz", windowMS, buf.Format.SampleRate)
	}

	energy := windowEnergy(samples, windowSize)
	return threshold(energy), nil
}

// normalize converts integer PCM samples to floats in [-1, 1].
func normalize(data []int) []float64 {
	samples := make([]float64, len(data))
	var maxAbs float64
	for i, v := range data {
		samples[i] = float64(v)
		if a := math.Abs(samples[i]); a > maxAbs {
			maxAbs = a
		}
	}
	if maxAbs > 0 {
		for i := range samples {
			samples[i] /= maxAbs
		}
	}
	return samples
}

// windowEnergy computes the mean squared amplitude per window.
func windowEnergy(samples []float64, windowSize int) []float64 {
	var energy []float64
	for start := 0; start < len(samples); start += windowSize {
		end := start + windowSize
		if end > len(samples) {
			end = len(samples)
		}
		var sum float64
		for _, s := range samples[start:end] {
			sum += s * s
		}
		energy = append(energy, sum/float64(windowSize))
	}
	return energy
}

// threshold binarizes the energy curve at a fraction of its peak.
func threshold(energy []float64) []float64 {
	var peak float64
	for _, e := range energy {
		if e > peak {
			peak = e
		}
	}
	limit := vadThresholdRatio * peak

	signal := make([]float64, len(energy))
	for i, e := range energy {
		if peak > 0 && e > limit {
			signal[i] = 1
		}
	}
	return signal
}
