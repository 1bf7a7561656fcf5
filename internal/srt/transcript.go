package srt

import (
	"strings"
	"time"
)

// DefaultSecondsPerLine is the estimated display time for one transcript line
// when the transcription backend returns plain text without word timings.
const DefaultSecondsPerLine = 4

// FromTranscript converts a plain text transcript into cues with estimated
// timestamps. Each non-empty line becomes one cue lasting secondsPerLine
// seconds. Blank lines are skipped and do not advance the clock.
func FromTranscript(text string, secondsPerLine int) []Cue {
	if secondsPerLine <= 0 {
		secondsPerLine = DefaultSecondsPerLine
	}

	var cues []Cue
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		i := len(cues)
		cues = append(cues, Cue{
			Index: i + 1,
			Start: time.Duration(i*secondsPerLine) * time.Second,
			End:   time.Duration((i+1)*secondsPerLine) * time.Second,
			Text:  line,
		})
	}
	return cues
}
