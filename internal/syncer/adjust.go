package syncer

import "math"

// minCueDurationSeconds is the floor enforced on every adjusted cue so that
// warping can never collapse a cue into an unreadable flash.
const minCueDurationSeconds = 0.1

// AdjustTimings shifts subtitle intervals by the global offset, or remaps
// them along a DTW path when one is provided. Start times are clamped to
// zero; end times are clamped to the media duration when it is known
// (non-zero).
func AdjustTimings(intervals [][2]float64, offset float64, path [][2]int, windowMS int, duration float64) [][2]float64 {
	if len(path) == 0 {
		return shiftIntervals(intervals, offset, duration)
	}

	windowTime := float64(windowMS) / 1000

	// Invert the path into subtitle-time -> audio-time sample points.
	subTimes := make([]float64, len(path))
	audioTimes := make([]float64, len(path))
	for i, p := range path {
		audioTimes[i] = float64(p[0]) * windowTime
		subTimes[i] = float64(p[1]) * windowTime
	}

	adjusted := make([][2]float64, len(intervals))
	for i, iv := range intervals {
		start := mapTime(iv[0], subTimes, audioTimes, offset)
		end := mapTime(iv[1], subTimes, audioTimes, offset)

		start = math.Max(0, start)
		if duration > 0 {
			end = math.Min(duration, end)
		}
		if end-start < minCueDurationSeconds {
			end = start + minCueDurationSeconds
		}
		adjusted[i] = [2]float64{start, end}
	}
	return adjusted
}

// shiftIntervals applies the plain global offset.
func shiftIntervals(intervals [][2]float64, offset, duration float64) [][2]float64 {
	adjusted := make([][2]float64, len(intervals))
	for i, iv := range intervals {
		start := math.Max(0, iv[0]+offset)
		end := iv[1] + offset
		if duration > 0 {
			end = math.Min(duration, end)
		}
		if end-start < minCueDurationSeconds {
			end = start + minCueDurationSeconds
		}
		adjusted[i] = [2]float64{start, end}
	}
	return adjusted
}

// mapTime finds the path sample closest to t and returns its audio-side
// time. Times outside the sampled range fall back to the global offset.
func mapTime(t float64, subTimes, audioTimes []float64, offset float64) float64 {
	if len(subTimes) == 0 {
		return t + offset
	}
	best := 0
	bestDist := math.Abs(subTimes[0] - t)
	for i := 1; i < len(subTimes); i++ {
		if d := math.Abs(subTimes[i] - t); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return audioTimes[best]
}
