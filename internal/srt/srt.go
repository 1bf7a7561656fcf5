// Package srt implements parsing and writing of SubRip subtitle files, plus
// conversions to WebVTT and plain text.
package srt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Cue is a single subtitle entry: an index, a display interval, and one or
// more lines of text.
type Cue struct {
	Index int
	Start time.Duration
	End   time.Duration
	Text  string
}

// Parse reads an SRT document. It tolerates CRLF line endings, a UTF-8 BOM,
// and extra blank lines between blocks. A block whose timecode line cannot be
// parsed produces an error naming the block.
func Parse(r io.Reader) ([]Cue, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var cues []Cue
	var lines []string

	flush := func() error {
		if len(lines) == 0 {
			return nil
		}
		cue, err := parseBlock(lines)
		if err != nil {
			return err
		}
		cues = append(cues, cue)
		lines = nil
		return nil
	}

	first := true
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if first {
			line = strings.TrimPrefix(line, "\uFEFF")
			first = false
		}
		if strings.TrimSpace(line) == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read subtitle input: %w", err)
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return cues, nil
}

// parseBlock converts one index/timecode/text group into a Cue.
func parseBlock(lines []string) (Cue, error) {
	index, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		return Cue{}, fmt.Errorf("invalid cue index %q: %w", lines[0], err)
	}
	if len(lines) < 2 {
		return Cue{}, fmt.Errorf("cue %d has no timecode line", index)
	}

	start, end, err := parseTimecodeLine(lines[1])
	if err != nil {
		return Cue{}, fmt.Errorf("cue %d: %w", index, err)
	}

	return Cue{
		Index: index,
		Start: start,
		End:   end,
		Text:  strings.Join(lines[2:], "\n"),
	}, nil
}

func parseTimecodeLine(line string) (time.Duration, time.Duration, error) {
	parts := strings.Split(line, "-->")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed timecode line %q", line)
	}
	start, err := ParseTimestamp(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, err
	}
	end, err := ParseTimestamp(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// Write renders cues as an SRT document. Cue indices are renumbered from 1 so
// that edited cue lists always produce a well-formed file.
func Write(w io.Writer, cues []Cue) error {
	for i, cue := range cues {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "%d\n%s --> %s\n%s\n",
			i+1, FormatTimestamp(cue.Start), FormatTimestamp(cue.End), cue.Text)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteVTT renders cues as a WebVTT document.
func WriteVTT(w io.Writer, cues []Cue) error {
	if _, err := fmt.Fprint(w, "WEBVTT\n\n"); err != nil {
		return err
	}
	for i, cue := range cues {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "%s --> %s\n%s\n",
			formatVTTTimestamp(cue.Start), formatVTTTimestamp(cue.End), cue.Text)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteText renders only the text lines of the cues.
func WriteText(w io.Writer, cues []Cue) error {
	for _, cue := range cues {
		if _, err := fmt.Fprintln(w, cue.Text); err != nil {
			return err
		}
	}
	return nil
}

// Intervals returns the display intervals of the cues in seconds, in cue order.
func Intervals(cues []Cue) [][2]float64 {
	intervals := make([][2]float64, len(cues))
	for i, cue := range cues {
		intervals[i] = [2]float64{cue.Start.Seconds(), cue.End.Seconds()}
	}
	return intervals
}

// ApplyIntervals writes adjusted display intervals back onto a copy of the
// cues. It panics if the lengths differ, which indicates a programmer error.
func ApplyIntervals(cues []Cue, intervals [][2]float64) []Cue {
	if len(cues) != len(intervals) {
		panic("srt: interval count does not match cue count")
	}
	adjusted := make([]Cue, len(cues))
	for i, cue := range cues {
		cue.Start = time.Duration(intervals[i][0] * float64(time.Second))
		cue.End = time.Duration(intervals[i][1] * float64(time.Second))
		adjusted[i] = cue
	}
	return adjusted
}
