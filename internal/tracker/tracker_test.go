package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestTracker(total int) (*Tracker, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	t := New(total)
	t.now = clock.Now
	t.start = clock.Now()
	return t, clock
}

func TestCompleteItem(t *testing.T) {
	t.Parallel()

	tr, _ := newTestTracker(3)
	require.Zero(t, tr.Completed())
	tr.CompleteItem("a.mp4")
	tr.CompleteItem("b.mp4")
	require.Equal(t, 2, tr.Completed())
}

func TestRemaining_NoCompletions(t *testing.T) {
	t.Parallel()

	tr, _ := newTestTracker(3)
	_, _, ok := tr.Remaining(100)
	require.False(t, ok)
}

func TestRemaining_AllDone(t *testing.T) {
	t.Parallel()

	tr, _ := newTestTracker(1)
	tr.CompleteItem("a.mp4")
	d, c, ok := tr.Remaining(0)
	require.True(t, ok)
	require.Zero(t, d)
	require.Equal(t, ConfidenceHigh, c)
}

func TestRemaining_FromMediaSeconds(t *testing.T) {
	t.Parallel()

	tr, _ := newTestTracker(3)
	tr.CompleteItem("a.mp4")

	// With the seeded default rates the weighted cost per second of media is
	// 0.05*0.1 + 0.85*0.4 + 0.10*0.05 = 0.35.
	d, c, ok := tr.Remaining(100)
	require.True(t, ok)
	require.InDelta(t, 35, d.Seconds(), 1e-6)
	require.Equal(t, ConfidenceLow, c)
}

func TestRemaining_ElapsedFallback(t *testing.T) {
	t.Parallel()

	tr, clock := newTestTracker(4)
	clock.Advance(10 * time.Second)
	tr.CompleteItem("a.mp4")
	tr.CompleteItem("b.mp4")

	// Half done after 10 seconds leaves roughly 10 seconds.
	d, c, ok := tr.Remaining(0)
	require.True(t, ok)
	require.InDelta(t, 10, d.Seconds(), 1e-6)
	require.Equal(t, ConfidenceMedium, c)
}

func TestRemaining_ConfidenceGrowsWithCompletions(t *testing.T) {
	t.Parallel()

	tr, _ := newTestTracker(10)
	for i := 0; i < 5; i++ {
		tr.CompleteItem("x")
	}
	_, c, ok := tr.Remaining(60)
	require.True(t, ok)
	require.Equal(t, ConfidenceHigh, c)
}

func TestEndPhase_UpdatesRate(t *testing.T) {
	t.Parallel()

	tr, clock := newTestTracker(2)

	// 60 seconds of media transcribed in 30 seconds: measured rate 0.5,
	// which dominates the seeded default at 70/30.
	tr.StartPhase(PhaseTranscription, "a.mp4", 60)
	clock.Advance(30 * time.Second)
	tr.EndPhase(PhaseTranscription, "a.mp4", true)

	want := latestBlend*0.5 + (1-latestBlend)*defaultRates[PhaseTranscription]
	require.InDelta(t, want, tr.rates[PhaseTranscription], 1e-9)
}

func TestEndPhase_FailureLeavesRateUntouched(t *testing.T) {
	t.Parallel()

	tr, clock := newTestTracker(2)
	tr.StartPhase(PhaseTranscription, "a.mp4", 60)
	clock.Advance(30 * time.Second)
	tr.EndPhase(PhaseTranscription, "a.mp4", false)

	require.InDelta(t, defaultRates[PhaseTranscription], tr.rates[PhaseTranscription], 1e-9)
}

func TestEndPhase_UnknownDurationLeavesRateUntouched(t *testing.T) {
	t.Parallel()

	tr, clock := newTestTracker(2)
	tr.StartPhase(PhaseTranscription, "a.mp4", 0)
	clock.Advance(30 * time.Second)
	tr.EndPhase(PhaseTranscription, "a.mp4", true)

	require.InDelta(t, defaultRates[PhaseTranscription], tr.rates[PhaseTranscription], 1e-9)
}

func TestRemainingText(t *testing.T) {
	t.Parallel()

	require.Equal(t, "about 30 seconds", RemainingText(30*time.Second, ConfidenceHigh))
	require.Equal(t, "about 5 minute(s)", RemainingText(5*time.Minute, ConfidenceMedium))
	require.Equal(t, "about 2h 15m", RemainingText(2*time.Hour+15*time.Minute, ConfidenceHigh))
	require.Equal(t, "about 30 seconds (rough estimate)", RemainingText(30*time.Second, ConfidenceLow))
}
