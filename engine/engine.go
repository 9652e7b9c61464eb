// Package engine implements the focus timer state machine: WORK -> BREAK
// repeated a fixed number of times, ticking once per second. Remaining time is
// computed against an absolute phase end time so a late tick never causes
// drift.
package engine

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"focustimer"
)

// Options contains runtime options for the Engine. The zero value gives
// production behavior; tests shrink TickInterval and capture Out.
type Options struct {
	TickInterval time.Duration
	Out          io.Writer
	Width        int
}

// Engine runs one timer session. All state below mu is guarded by it; the
// tick goroutine and the command callers (TogglePause, Stop) race on it.
type Engine struct {
	workDur     time.Duration
	breakDur    time.Duration
	totalCycles int
	logger      focustimer.SessionLogger
	opts        Options

	mu              sync.Mutex
	started         bool
	running         bool
	stopping        bool
	finalized       bool
	phase           focustimer.Phase
	phaseEnd        time.Time
	completedCycles int
	paused          bool
	pausedAt        time.Time
	pausedSoFar     time.Duration
	sessionStart    time.Time
	endReason       string

	stopCh   chan struct{}
	finished chan struct{}
}

// New creates an Engine for one session with the provided configuration.
func New(workDur, breakDur time.Duration, totalCycles int, logger focustimer.SessionLogger, opts Options) *Engine {
	if opts.TickInterval <= 0 {
		opts.TickInterval = time.Second
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Width <= 0 {
		opts.Width = statusWidth
	}

	return &Engine{
		workDur:     workDur,
		breakDur:    breakDur,
		totalCycles: totalCycles,
		logger:      logger,
		opts:        opts,
		phase:       focustimer.PhaseWork,
		endReason:   "Completed",
		stopCh:      make(chan struct{}),
		finished:    make(chan struct{}),
	}
}

// IsRunning reports whether the session is active and no stop has been
// requested.
func (e *Engine) IsRunning() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running && !e.stopping
}

// Start begins the session and launches the ticking loop. An engine runs at
// most one session: calling Start again, or after a stop, is a no-op.
func (e *Engine) Start() {
	e.mu.Lock()
	if e.started || e.stopping {
		e.mu.Unlock()
		return
	}
	e.started = true
	e.running = true
	e.sessionStart = time.Now()
	e.switchToLocked(focustimer.PhaseWork)
	e.writeStatusLocked()
	e.mu.Unlock()

	go e.run()
}

// Stop requests termination with the given reason and finalizes the session.
// Safe to call from any goroutine, any number of times.
func (e *Engine) Stop(reason string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopping = true
	if e.running {
		e.endReason = reason
	}
	e.finishLocked()
}

// TogglePause freezes or unfreezes the current phase. Paused time is credited
// back to the phase on resume, so remaining time picks up where it left off.
// A no-op once the session has stopped.
func (e *Engine) TogglePause() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.running || e.stopping {
		return
	}
	if !e.paused {
		e.paused = true
		e.pausedAt = time.Now()
		e.writeStatusLocked()
		return
	}
	e.pausedSoFar += time.Since(e.pausedAt)
	e.paused = false
}

// AwaitFinish blocks until the session has finalized. Returns immediately if
// it already has.
func (e *Engine) AwaitFinish() {
	<-e.finished
}

func (e *Engine) run() {
	ticker := time.NewTicker(e.opts.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-e.stopCh:
			return
		case <-ticker.C:
			e.tick()
		}
	}
}

func (e *Engine) tick() {
	if err := e.safeTick(); err != nil {
		// tick failures are fatal to the session, not retried
		e.Stop("Error: " + err.Error())
	}
}

func (e *Engine) safeTick() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stopping || !e.running {
		return nil
	}

	remaining := time.Until(e.phaseEnd) + e.pausedSoFar
	if e.paused {
		e.writeStatusLocked()
		return nil
	}
	if remaining > 0 {
		e.writeStatusLocked()
		return nil
	}

	// time's up for this phase
	switch e.phase {
	case focustimer.PhaseWork:
		e.completedCycles++
		if e.completedCycles >= e.totalCycles {
			e.phase = focustimer.PhaseDone
			e.finishLocked()
			return nil
		}
		e.switchToLocked(focustimer.PhaseBreak)
	case focustimer.PhaseBreak:
		e.switchToLocked(focustimer.PhaseWork)
	}
	e.writeStatusLocked()
	return nil
}

// switchToLocked enters the next phase: pause bookkeeping resets, the new
// phase end is computed from now. Paused time never carries across phases.
func (e *Engine) switchToLocked(next focustimer.Phase) {
	e.phase = next
	e.paused = false
	e.pausedSoFar = 0

	switch next {
	case focustimer.PhaseWork:
		e.phaseEnd = time.Now().Add(e.workDur)
	case focustimer.PhaseBreak:
		e.phaseEnd = time.Now().Add(e.breakDur)
	default:
		e.phaseEnd = time.Now()
	}
}

// finishLocked runs the finalize step exactly once: stop ticking, clear the
// status line, emit the completion record, release AwaitFinish callers. A
// session that never started releases waiters without emitting a record.
func (e *Engine) finishLocked() {
	if e.finalized {
		return
	}
	e.finalized = true
	close(e.stopCh)

	if e.running {
		e.running = false

		// a broken writer must not lose the completion record
		func() {
			defer func() { _ = recover() }()
			fmt.Fprint(e.opts.Out, "\r"+pad("", e.opts.Width)+"\r")
			fmt.Fprintln(e.opts.Out, "Session ended: "+e.endReason)
		}()

		e.logger.Append(focustimer.SessionRecord{
			StartedAt:       e.sessionStart,
			FocusMinutes:    focusMinutes(e.workDur, e.completedCycles),
			CompletedCycles: e.completedCycles,
			Reason:          e.endReason,
		})
	}
	close(e.finished)
}

// focusMinutes counts only fully completed work phases; a phase interrupted
// by a stop contributes nothing.
func focusMinutes(workDur time.Duration, completedCycles int) int64 {
	return int64(completedCycles) * int64(workDur.Minutes())
}
