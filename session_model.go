package focustimer

import (
	"context"
	"time"
)

type Phase uint8

const (
	_ Phase = iota
	PhaseWork
	PhaseBreak
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseWork:
		return "FOCUS"
	case PhaseBreak:
		return "BREAK"
	case PhaseDone:
		return "DONE"
	default:
		panic("no matching label for Phase")
	}
}

type SessionID string

// SessionRecord describes one finished session: when it began, how much
// focused time it produced, and why it ended.
type SessionRecord struct {
	StartedAt       time.Time
	FocusMinutes    int64
	CompletedCycles int
	Reason          string
}

type ExistingSessionRecord struct {
	ExistingRecord[SessionID]
	SessionRecord
}

// SessionLogger records a finished session. Implementations report their own
// write failures instead of returning them; a failed write never ends the
// process.
type SessionLogger interface {
	Append(SessionRecord)
}

// HistoryRepo is the persistent store of finished sessions.
type HistoryRepo interface {
	Insert(context.Context, SessionRecord) (ExistingSessionRecord, error)
	List(ctx context.Context, limit int) ([]ExistingSessionRecord, error)
}
