// Package tracker estimates remaining time for batch media processing. It
// learns per-second processing rates per phase as items complete and blends
// historic measurements with the most recent one.
package tracker

import (
	"fmt"
	"sync"
	"time"
)

// Phase names the stages of processing one media item.
type Phase string

const (
	PhaseExtraction    Phase = "extraction"
	PhaseTranscription Phase = "transcription"
	PhaseFormatting    Phase = "formatting"
)

// phaseWeights reflect how the total processing time splits between phases.
// Transcription dominates; extraction and formatting are bookkeeping.
var phaseWeights = map[Phase]float64{
	PhaseExtraction:    0.05,
	PhaseTranscription: 0.85,
	PhaseFormatting:    0.10,
}

// defaultRates seed the per-second estimates before any measurement exists.
var defaultRates = map[Phase]float64{
	PhaseExtraction:    0.1,
	PhaseTranscription: 0.4,
	PhaseFormatting:    0.05,
}

// latestBlend is how much of an updated rate comes from the newest
// measurement versus prior ones. Recent files predict the next file best,
// so the latest sample dominates.
const latestBlend = 0.7

// Confidence grades how trustworthy a remaining-time estimate is.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// Tracker accumulates timing data across a batch run. Safe for concurrent
// use by worker goroutines.
type Tracker struct {
	mu sync.Mutex

	total     int
	completed int
	start     time.Time

	rates map[Phase]float64 // seconds of work per second of media

	// Per-item state keyed by item path, since workers interleave.
	phaseStart map[string]time.Time
	durations  map[string]float64 // media duration in seconds

	now func() time.Time
}

// New creates a tracker for a batch of the given size.
func New(totalItems int) *Tracker {
	rates := make(map[Phase]float64, len(defaultRates))
	for phase, rate := range defaultRates {
		rates[phase] = rate
	}
	t := &Tracker{
		total:      totalItems,
		rates:      rates,
		phaseStart: make(map[string]time.Time),
		durations:  make(map[string]float64),
		now:        time.Now,
	}
	t.start = t.now()
	return t
}

// StartPhase begins timing a phase for one item. The media duration (in
// seconds) may be zero when unknown.
func (t *Tracker) StartPhase(phase Phase, item string, mediaDuration float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.phaseStart[phaseKey(phase, item)] = t.now()
	if mediaDuration > 0 {
		t.durations[item] = mediaDuration
	}
}

// EndPhase stops timing a phase. Failed phases contribute no measurement.
func (t *Tracker) EndPhase(phase Phase, item string, success bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := phaseKey(phase, item)
	started, ok := t.phaseStart[key]
	if !ok {
		return
	}
	delete(t.phaseStart, key)

	if !success {
		return
	}

	mediaDuration := t.durations[item]
	if mediaDuration <= 0 {
		return
	}

	elapsed := t.now().Sub(started).Seconds()
	rate := elapsed / mediaDuration
	t.rates[phase] = (1-latestBlend)*t.rates[phase] + latestBlend*rate
}

// CompleteItem marks one item as fully processed.
func (t *Tracker) CompleteItem(item string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.completed++
}

// Completed returns how many items have finished.
func (t *Tracker) Completed() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.completed
}

// Remaining estimates the time left for the batch, with a confidence grade
// that improves as completed items accumulate. The bool is false when no
// estimate is possible yet.
func (t *Tracker) Remaining(pendingMediaSeconds float64) (time.Duration, Confidence, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.completed == 0 {
		return 0, ConfidenceLow, false
	}
	if t.completed >= t.total {
		return 0, ConfidenceHigh, true
	}

	var estimate float64
	if pendingMediaSeconds > 0 {
		perSecond := 0.0
		for phase, weight := range phaseWeights {
			perSecond += weight * t.rates[phase]
		}
		estimate = perSecond * pendingMediaSeconds
	} else {
		// Fall back to elapsed time scaled by completion fraction.
		elapsed := t.now().Sub(t.start).Seconds()
		fraction := float64(t.completed) / float64(t.total)
		estimate = elapsed/fraction - elapsed
	}

	confidence := ConfidenceLow
	switch {
	case t.completed >= 5:
		confidence = ConfidenceHigh
	case t.completed >= 2:
		confidence = ConfidenceMedium
	}

	return time.Duration(estimate * float64(time.Second)), confidence, true
}

// RemainingText humanizes an estimate for progress logs.
func RemainingText(d time.Duration, c Confidence) string {
	var text string
	switch {
	case d < time.Minute:
		text = fmt.Sprintf("about %d seconds", int(d.Seconds()+0.5))
	case d < time.Hour:
		minutes := int(d.Minutes() + 0.5)
		text = fmt.Sprintf("about %d minute(s)", minutes)
	default:
		hours := int(d.Hours())
		minutes := int(d.Minutes()+0.5) % 60
		text = fmt.Sprintf("about %dh %dm", hours, minutes)
	}
	if c == ConfidenceLow {
		text += " (rough estimate)"
	}
	return text
}

func phaseKey(phase Phase, item string) string {
	return string(phase) + "|" + item
}
