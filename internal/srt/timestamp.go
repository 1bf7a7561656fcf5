package srt

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var timestampRe = regexp.MustCompile(`^(\d{1,2}):(\d{2}):(\d{2})[,.](\d{3})$`)

// ParseTimestamp parses an SRT timestamp of the form HH:MM:SS,mmm. A dot
// millisecond separator is accepted as well, which some tools emit.
func ParseTimestamp(s string) (time.Duration, error) {
	m := timestampRe.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("malformed timestamp %q", s)
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	seconds, _ := strconv.Atoi(m[3])
	millis, _ := strconv.Atoi(m[4])

	if minutes > 59 || seconds > 59 {
		return 0, fmt.Errorf("timestamp %q has out-of-range components", s)
	}

	return time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		time.Duration(millis)*time.Millisecond, nil
}

// FormatTimestamp renders a duration as an SRT timestamp (HH:MM:SS,mmm).
// Negative durations are clamped to zero.
func FormatTimestamp(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hours := int(d / time.Hour)
	minutes := int(d/time.Minute) % 60
	seconds := int(d/time.Second) % 60
	millis := int(d/time.Millisecond) % 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, millis)
}

// formatVTTTimestamp renders a duration as a WebVTT timestamp, which uses a
// dot before the milliseconds instead of a comma.
func formatVTTTimestamp(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hours := int(d / time.Hour)
	minutes := int(d/time.Minute) % 60
	seconds := int(d/time.Second) % 60
	millis := int(d/time.Millisecond) % 1000
	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}
