package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narmatov/boardsync/internal/logger"
)

func newTestCheckpointStore(t *testing.T) (*checkpointStore, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	cs := &checkpointStore{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return cs, mock, db
}

func TestCheckpointStore_Load_FreshState(t *testing.T) {
	cs, mock, db := newTestCheckpointStore(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"last_full_sync_at", "last_incremental_sync_at", "in_progress"}).
		AddRow(nil, nil, false)

	mock.ExpectQuery("SELECT .* FROM sync_state").
		WillReturnRows(rows)

	cp, err := cs.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, cp.LastFullSyncAt)
	assert.Nil(t, cp.LastIncrementalSyncAt)
	assert.False(t, cp.InProgress)
}

func TestCheckpointStore_Load_AfterSync(t *testing.T) {
	cs, mock, db := newTestCheckpointStore(t)
	defer db.Close()

	full := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	incr := full.Add(30 * time.Minute)

	rows := sqlmock.NewRows([]string{"last_full_sync_at", "last_incremental_sync_at", "in_progress"}).
		AddRow(full, incr, true)

	mock.ExpectQuery("SELECT .* FROM sync_state").
		WillReturnRows(rows)

	cp, err := cs.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, cp.LastFullSyncAt)
	require.NotNil(t, cp.LastIncrementalSyncAt)
	assert.Equal(t, full, *cp.LastFullSyncAt)
	assert.Equal(t, incr, *cp.LastIncrementalSyncAt)
	assert.True(t, cp.InProgress)
}

func TestCheckpointStore_Load_QueryError(t *testing.T) {
	cs, mock, db := newTestCheckpointStore(t)
	defer db.Close()

	mock.ExpectQuery("SELECT .* FROM sync_state").
		WillReturnError(errors.New("no such table: sync_state"))

	_, err := cs.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load sync checkpoint")
}

func TestCheckpointStore_Setters(t *testing.T) {
	cs, mock, db := newTestCheckpointStore(t)
	defer db.Close()

	at := time.Now().UTC()

	mock.ExpectExec("UPDATE sync_state").
		WithArgs(at).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE sync_state").
		WithArgs(at).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE sync_state").
		WithArgs(true).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ctx := context.Background()
	require.NoError(t, cs.SetFullSyncAt(ctx, at))
	require.NoError(t, cs.SetIncrementalSyncAt(ctx, at))
	require.NoError(t, cs.SetInProgress(ctx, true))
	require.NoError(t, mock.ExpectationsWereMet())
}
