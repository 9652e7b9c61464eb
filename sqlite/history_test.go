package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	txStdLib "github.com/Thiht/transactor/stdlib"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focustimer"
)

func newTestRepo(t *testing.T) *historyRepo {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "focus_sessions.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, dbGetter := txStdLib.NewTransactor(db, txStdLib.NestedTransactionsSavepoints)
	return NewHistoryRepo(dbGetter, *log.Default())
}

func TestHistoryRepo_InsertAndGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	rec := focustimer.SessionRecord{
		StartedAt:       time.Date(2026, 3, 14, 9, 0, 0, 0, time.Local),
		FocusMinutes:    100,
		CompletedCycles: 4,
		Reason:          "Completed",
	}

	inserted, err := repo.Insert(ctx, rec)
	require.NoError(t, err)
	assert.NotEmpty(t, inserted.ID)
	assert.False(t, inserted.CreatedAt.IsZero())

	got, err := repo.Get(ctx, inserted.ID)
	require.NoError(t, err)
	assert.Equal(t, inserted.ID, got.ID)
	assert.Equal(t, rec.FocusMinutes, got.FocusMinutes)
	assert.Equal(t, rec.CompletedCycles, got.CompletedCycles)
	assert.Equal(t, rec.Reason, got.Reason)
	assert.True(t, got.StartedAt.Equal(rec.StartedAt))
}

func TestHistoryRepo_GetMissing(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHistoryRepo_ListNewestFirst(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for i, reason := range []string{"Quit by user", "Interrupted", "Completed"} {
		_, err := repo.Insert(ctx, focustimer.SessionRecord{
			StartedAt:       time.Now().Add(time.Duration(i) * time.Hour),
			FocusMinutes:    int64(25 * i),
			CompletedCycles: i,
			Reason:          reason,
		})
		require.NoError(t, err)
	}

	sessions, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, sessions, 3)
	assert.Equal(t, "Completed", sessions[0].Reason)
	assert.Equal(t, "Interrupted", sessions[1].Reason)
	assert.Equal(t, "Quit by user", sessions[2].Reason)
}

func TestHistoryRepo_ListHonorsLimit(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for range 5 {
		_, err := repo.Insert(ctx, focustimer.SessionRecord{
			StartedAt: time.Now(),
			Reason:    "Completed",
		})
		require.NoError(t, err)
	}

	sessions, err := repo.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, sessions, 2)

	_, err = repo.List(ctx, 0)
	assert.Error(t, err)
}
