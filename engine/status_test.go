package engine

import (
	"testing"
	"time"

	"focustimer"
)

func TestStatusLine(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name            string
		phase           focustimer.Phase
		completedCycles int
		totalCycles     int
		remaining       time.Duration
		paused          bool
		expected        string
	}{
		{
			name:        "first work phase",
			phase:       focustimer.PhaseWork,
			totalCycles: 4,
			remaining:   24*time.Minute + 59*time.Second,
			expected:    "FOCUS | cycle 1/4 | 24:59",
		},
		{
			name:            "break keeps completed cycle number",
			phase:           focustimer.PhaseBreak,
			completedCycles: 1,
			totalCycles:     4,
			remaining:       5 * time.Minute,
			expected:        "BREAK | cycle 1/4 | 05:00",
		},
		{
			name:        "paused suffix",
			phase:       focustimer.PhaseWork,
			totalCycles: 1,
			remaining:   90 * time.Second,
			paused:      true,
			expected:    "FOCUS | cycle 1/1 | 01:30 (paused)",
		},
		{
			name:            "negative remaining floors at zero",
			phase:           focustimer.PhaseDone,
			completedCycles: 4,
			totalCycles:     4,
			remaining:       -3 * time.Second,
			expected:        "DONE  | cycle 4/4 | 00:00",
		},
		{
			name:            "cycle number capped at total",
			phase:           focustimer.PhaseWork,
			completedCycles: 4,
			totalCycles:     4,
			remaining:       10 * time.Second,
			expected:        "FOCUS | cycle 4/4 | 00:10",
		},
		{
			name:        "zero padding for minutes and seconds",
			phase:       focustimer.PhaseWork,
			totalCycles: 2,
			remaining:   5*time.Minute + 9*time.Second,
			expected:    "FOCUS | cycle 1/2 | 05:09",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			result := statusLine(tc.phase, tc.completedCycles, tc.totalCycles, tc.remaining, tc.paused)
			if result != tc.expected {
				t.Errorf("statusLine() = %q, want %q", result, tc.expected)
			}
		})
	}
}

func TestPad(t *testing.T) {
	t.Parallel()

	if got := pad("abc", 6); got != "abc   " {
		t.Errorf("pad() = %q, want %q", got, "abc   ")
	}
	if got := pad("abcdef", 3); got != "abcdef" {
		t.Errorf("pad() must not truncate, got %q", got)
	}
	if got := pad("", 4); got != "    " {
		t.Errorf("pad() = %q, want four spaces", got)
	}
}
