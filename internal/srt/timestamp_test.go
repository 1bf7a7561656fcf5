package srt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input   string
		want    time.Duration
		wantErr bool
	}{
		{input: "00:00:00,000", want: 0},
		{input: "00:00:01,500", want: 1500 * time.Millisecond},
		{input: "01:02:03,004", want: time.Hour + 2*time.Minute + 3*time.Second + 4*time.Millisecond},
		{input: "00:00:01.500", want: 1500 * time.Millisecond}, // dot separator variant
		{input: "10:59:59,999", want: 10*time.Hour + 59*time.Minute + 59*time.Second + 999*time.Millisecond},
		{input: "00:61:00,000", wantErr: true},
		{input: "00:00:61,000", wantErr: true},
		{input: "1:2:3,4", wantErr: true},
		{input: "garbage", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			got, err := ParseTimestamp(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	t.Parallel()

	require.Equal(t, "00:00:00,000", FormatTimestamp(0))
	require.Equal(t, "00:00:01,500", FormatTimestamp(1500*time.Millisecond))
	require.Equal(t, "01:02:03,004", FormatTimestamp(time.Hour+2*time.Minute+3*time.Second+4*time.Millisecond))
	// Negative durations clamp to zero rather than rendering nonsense.
	require.Equal(t, "00:00:00,000", FormatTimestamp(-time.Second))
}

func TestTimestampRoundTrip(t *testing.T) {
	t.Parallel()

	for _, d := range []time.Duration{0, 999 * time.Millisecond, 90 * time.Minute, 11 * time.Hour} {
		parsed, err := ParseTimestamp(FormatTimestamp(d))
		require.NoError(t, err)
		require.Equal(t, d, parsed)
	}
}
