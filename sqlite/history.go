// Package sqlite implements the session history repo
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	txStdLib "github.com/Thiht/transactor/stdlib"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"focustimer"
)

var ErrNotFound = errors.New("not found")

const SelectAllSessions = "SELECT id, started_at, focus_minutes, cycles_completed, reason, created_at FROM sessions"

type sessionEntity struct {
	ID              string
	StartedAt       int64
	FocusMinutes    int64
	CyclesCompleted int
	Reason          string
	CreatedAt       int64
}

type scannable interface {
	Scan(dest ...any) error
}

// historyRepo
type historyRepo struct {
	dbGetter txStdLib.DBGetter
	l        log.Logger
}

func NewHistoryRepo(dbGetter txStdLib.DBGetter, logger log.Logger) *historyRepo {
	return &historyRepo{
		dbGetter: dbGetter,
		l:        logger,
	}
}

func (r *historyRepo) Insert(ctx context.Context, rec focustimer.SessionRecord) (focustimer.ExistingSessionRecord, error) {
	db := r.dbGetter(ctx)
	existingRecord := focustimer.ExistingSessionRecord{
		SessionRecord:  rec,
		ExistingRecord: focustimer.NewExistingRecord[focustimer.SessionID](uuid.NewString()),
	}
	e := mapToSessionEntity(existingRecord)

	args := []any{
		e.ID,
		e.StartedAt,
		e.FocusMinutes,
		e.CyclesCompleted,
		e.Reason,
		e.CreatedAt,
	}
	query := "INSERT INTO sessions (id, started_at, focus_minutes, cycles_completed, reason, created_at) VALUES (?, ?, ?, ?, ?, ?)"
	r.l.Debug("recording session", "query", query, "args", args)
	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return focustimer.ExistingSessionRecord{}, err
	}

	return existingRecord, nil
}

func (r *historyRepo) List(ctx context.Context, limit int) ([]focustimer.ExistingSessionRecord, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("provide a positive limit")
	}

	db := r.dbGetter(ctx)
	query := fmt.Sprintf("%s ORDER BY created_at DESC, rowid DESC LIMIT ?", SelectAllSessions)
	r.l.Debug("listing sessions", "query", query, "limit", limit)
	rows, err := db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint

	var sessions []focustimer.ExistingSessionRecord
	for rows.Next() {
		session, err := extractSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *historyRepo) Get(ctx context.Context, id focustimer.SessionID) (focustimer.ExistingSessionRecord, error) {
	if id == "" {
		return focustimer.ExistingSessionRecord{}, fmt.Errorf("provide id")
	}

	db := r.dbGetter(ctx)
	row := db.QueryRowContext(
		ctx,
		fmt.Sprintf("%s WHERE id=?", SelectAllSessions), id,
	)

	return extractSession(row)
}

func extractSession(s scannable) (focustimer.ExistingSessionRecord, error) {
	var e sessionEntity
	if err := s.Scan(&e.ID, &e.StartedAt, &e.FocusMinutes, &e.CyclesCompleted, &e.Reason, &e.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return focustimer.ExistingSessionRecord{}, ErrNotFound
		}
		return focustimer.ExistingSessionRecord{}, err
	}
	return mapToExistingSessionRecord(e), nil
}

func mapToSessionEntity(rec focustimer.ExistingSessionRecord) sessionEntity {
	return sessionEntity{
		ID:              string(rec.ID),
		StartedAt:       rec.StartedAt.Unix(),
		FocusMinutes:    rec.FocusMinutes,
		CyclesCompleted: rec.CompletedCycles,
		Reason:          rec.Reason,
		CreatedAt:       rec.CreatedAt.Unix(),
	}
}

func mapToExistingSessionRecord(e sessionEntity) focustimer.ExistingSessionRecord {
	return focustimer.ExistingSessionRecord{
		ExistingRecord: focustimer.ExistingRecord[focustimer.SessionID]{
			ID:        focustimer.SessionID(e.ID),
			CreatedAt: time.Unix(e.CreatedAt, 0),
		},
		SessionRecord: focustimer.SessionRecord{
			StartedAt:       time.Unix(e.StartedAt, 0),
			FocusMinutes:    e.FocusMinutes,
			CompletedCycles: e.CyclesCompleted,
			Reason:          e.Reason,
		},
	}
}
