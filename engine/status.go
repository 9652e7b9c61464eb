package engine

import (
	"fmt"
	"strings"
	"time"

	"focustimer"
)

// statusWidth is the column the in-place status line is padded to, so a
// shorter redraw fully overwrites the previous one.
const statusWidth = 64

func (e *Engine) writeStatusLocked() {
	remaining := time.Until(e.phaseEnd) + e.pausedSoFar
	line := statusLine(e.phase, e.completedCycles, e.totalCycles, remaining, e.paused)
	fmt.Fprint(e.opts.Out, "\r"+pad(line, e.opts.Width))
}

// statusLine renders one frame of the timer display, e.g.
// "FOCUS | cycle 1/4 | 24:59" with an optional "(paused)" suffix.
// The cycle number is 1-based and capped at the total; remaining time floors
// at zero.
func statusLine(phase focustimer.Phase, completedCycles, totalCycles int, remaining time.Duration, paused bool) string {
	secs := int64(remaining / time.Second)
	if secs < 0 {
		secs = 0
	}

	cycle := completedCycles
	if phase == focustimer.PhaseWork {
		cycle++
	}
	if cycle > totalCycles {
		cycle = totalCycles
	}

	line := fmt.Sprintf("%-5s | cycle %d/%d | %02d:%02d",
		phase, cycle, totalCycles, secs/60, secs%60)
	if paused {
		line += " (paused)"
	}
	return line
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
