package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/narmatov/boardsync/internal/logger"
	"github.com/narmatov/boardsync/models"
)

type auditRepository struct {
	*DB
	logger *logger.Logger
}

// NewAuditRepository returns the SQLite-backed implementation of
// [AuditRepository]. Entries are append-only: conflict rows are never
// mutated, change rows only transition synced/error fields.
func NewAuditRepository(db *DB, logger *logger.Logger) AuditRepository {
	return &auditRepository{
		DB:     db,
		logger: logger,
	}
}

func (a *auditRepository) AppendConflict(ctx context.Context, entry models.ConflictLogEntry) error {
	_, err := a.DB.ExecContext(ctx, appendConflictLog,
		string(entry.Table),
		entry.RecordID,
		entry.LocalVersion,
		entry.RemoteVersion,
		string(entry.Resolution),
		entry.LocalData,
		entry.RemoteData,
		entry.DetectedAt,
	)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("table", string(entry.Table)).
			Str("record_id", entry.RecordID).
			Msg("failed to append conflict log entry")
		return fmt.Errorf("append conflict log entry: %w", err)
	}

	return nil
}

func (a *auditRepository) AppendChange(ctx context.Context, entry models.ChangeLogEntry) error {
	_, err := a.DB.ExecContext(ctx, appendChangeLog,
		entry.ChangeID,
		string(entry.Table),
		entry.RecordID,
		string(entry.Operation),
		entry.Synced,
		entry.Error,
		entry.RetryCount,
		entry.CreatedAt,
	)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("change_id", entry.ChangeID).
			Msg("failed to append change log entry")
		return fmt.Errorf("append change log entry: %w", err)
	}

	return nil
}

func (a *auditRepository) MarkChangeSynced(ctx context.Context, changeID string) error {
	if _, err := a.DB.ExecContext(ctx, markChangeSyncedQuery, changeID); err != nil {
		return fmt.Errorf("mark change synced: %w", err)
	}
	return nil
}

func (a *auditRepository) RecordChangeFailure(ctx context.Context, changeID, errMsg string, retryCount int) error {
	if _, err := a.DB.ExecContext(ctx, recordChangeFailureQuery, errMsg, retryCount, changeID); err != nil {
		return fmt.Errorf("record change failure: %w", err)
	}
	return nil
}

func (a *auditRepository) ConflictHistory(ctx context.Context, table models.Table, recordID string) ([]models.ConflictLogEntry, error) {
	rows, err := a.DB.QueryContext(ctx, conflictHistoryQuery, string(table), recordID)
	if err != nil {
		return nil, fmt.Errorf("query conflict history: %w", err)
	}
	defer rows.Close()

	return scanConflictEntries(rows)
}

func (a *auditRepository) RecentConflicts(ctx context.Context, limit int) ([]models.ConflictLogEntry, error) {
	rows, err := a.DB.QueryContext(ctx, recentConflictsQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent conflicts: %w", err)
	}
	defer rows.Close()

	return scanConflictEntries(rows)
}

func (a *auditRepository) ChangeHistory(ctx context.Context, table models.Table, recordID string) ([]models.ChangeLogEntry, error) {
	rows, err := a.DB.QueryContext(ctx, changeHistoryQuery, string(table), recordID)
	if err != nil {
		return nil, fmt.Errorf("query change history: %w", err)
	}
	defer rows.Close()

	return scanChangeEntries(rows)
}

func (a *auditRepository) RecentChanges(ctx context.Context, limit int) ([]models.ChangeLogEntry, error) {
	rows, err := a.DB.QueryContext(ctx, recentChangesQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent changes: %w", err)
	}
	defer rows.Close()

	return scanChangeEntries(rows)
}

func scanConflictEntries(rows *sql.Rows) ([]models.ConflictLogEntry, error) {
	var out []models.ConflictLogEntry
	for rows.Next() {
		var e models.ConflictLogEntry
		var table, resolution string
		if err := rows.Scan(
			&e.ID, &table, &e.RecordID,
			&e.LocalVersion, &e.RemoteVersion, &resolution,
			&e.LocalData, &e.RemoteData, &e.DetectedAt,
		); err != nil {
			return nil, fmt.Errorf("scan conflict log row: %w", err)
		}
		e.Table = models.Table(table)
		e.Resolution = models.ConflictDecision(resolution)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate conflict log rows: %w", err)
	}
	return out, nil
}

func scanChangeEntries(rows *sql.Rows) ([]models.ChangeLogEntry, error) {
	var out []models.ChangeLogEntry
	for rows.Next() {
		var e models.ChangeLogEntry
		var table, op string
		if err := rows.Scan(
			&e.ID, &e.ChangeID, &table, &e.RecordID, &op,
			&e.Synced, &e.Error, &e.RetryCount, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan change log row: %w", err)
		}
		e.Table = models.Table(table)
		e.Operation = models.Operation(op)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate change log rows: %w", err)
	}
	return out, nil
}
