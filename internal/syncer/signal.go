package syncer

// SubtitleSignal builds the binary subtitle-activity signal on the window
// grid: 1 for windows covered by any cue interval, 0 elsewhere. Intervals
// are (start, end) pairs in seconds; out-of-range indices are clamped.
func SubtitleSignal(intervals [][2]float64, durationSeconds float64, windowMS int) []float64 {
	windows := int(durationSeconds * 1000 / float64(windowMS))
	if windows <= 0 {
		return nil
	}
	signal := make([]float64, windows)

	for _, iv := range intervals {
		start := int(iv[0] * 1000 / float64(windowMS))
		end := int(iv[1] * 1000 / float64(windowMS))

		start = clamp(start, 0, windows-1)
		end = clamp(end, 0, windows)

		for i := start; i < end; i++ {
			signal[i] = 1
		}
	}
	return signal
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
