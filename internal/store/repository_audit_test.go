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
	"github.com/narmatov/boardsync/models"
)

func newTestAuditRepo(t *testing.T) (*auditRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &auditRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestAuditRepository_AppendConflict(t *testing.T) {
	repo, mock, db := newTestAuditRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO sync_conflict_log").
		WithArgs("tasks", "t1", int64(2), int64(3), "remote_wins",
			`{"title":"local"}`, `{"title":"remote"}`, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.AppendConflict(context.Background(), models.ConflictLogEntry{
		Table:         models.TableTasks,
		RecordID:      "t1",
		LocalVersion:  2,
		RemoteVersion: 3,
		Resolution:    models.RemoteWins,
		LocalData:     `{"title":"local"}`,
		RemoteData:    `{"title":"remote"}`,
		DetectedAt:    time.Now().UTC(),
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepository_AppendChange(t *testing.T) {
	repo, mock, db := newTestAuditRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO sync_change_log").
		WithArgs("c1", "projects", "p1", "update", false, "", 0, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.AppendChange(context.Background(), models.ChangeLogEntry{
		ChangeID:  "c1",
		Table:     models.TableProjects,
		RecordID:  "p1",
		Operation: models.OpUpdate,
		CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepository_MarkChangeSynced(t *testing.T) {
	repo, mock, db := newTestAuditRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE sync_change_log").
		WithArgs("c1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.MarkChangeSynced(context.Background(), "c1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepository_RecordChangeFailure(t *testing.T) {
	repo, mock, db := newTestAuditRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE sync_change_log").
		WithArgs("connection refused", 2, "c1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.RecordChangeFailure(context.Background(), "c1", "connection refused", 2))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepository_ConflictHistory(t *testing.T) {
	repo, mock, db := newTestAuditRepo(t)
	defer db.Close()

	detected := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "table_name", "record_id", "local_version", "remote_version",
		"resolution", "local_data", "remote_data", "detected_at",
	}).
		AddRow(int64(2), "tasks", "t1", int64(4), int64(5), "remote_wins", "{}", "{}", detected).
		AddRow(int64(1), "tasks", "t1", int64(1), int64(2), "local_wins", "{}", "{}", detected.Add(-time.Hour))

	mock.ExpectQuery("SELECT .* FROM sync_conflict_log").
		WithArgs("tasks", "t1").
		WillReturnRows(rows)

	got, err := repo.ConflictHistory(context.Background(), models.TableTasks, "t1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.RemoteWins, got[0].Resolution)
	assert.Equal(t, models.LocalWins, got[1].Resolution)
}

func TestAuditRepository_RecentChanges_QueryError(t *testing.T) {
	repo, mock, db := newTestAuditRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT .* FROM sync_change_log").
		WillReturnError(errors.New("database is locked"))

	_, err := repo.RecentChanges(context.Background(), 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query recent changes")
}

func TestAuditRepository_ChangeHistory(t *testing.T) {
	repo, mock, db := newTestAuditRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"id", "change_id", "table_name", "record_id", "operation",
		"synced", "error", "retry_count", "created_at",
	}).
		AddRow(int64(1), "c1", "projects", "p1", "insert", true, "", 0, time.Now().UTC())

	mock.ExpectQuery("SELECT .* FROM sync_change_log").
		WithArgs("projects", "p1").
		WillReturnRows(rows)

	got, err := repo.ChangeHistory(context.Background(), models.TableProjects, "p1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Synced)
	assert.Equal(t, models.OpInsert, got[0].Operation)
}
