package store

import (
	"context"
	"fmt"
	"time"

	"github.com/narmatov/boardsync/internal/logger"
	"github.com/narmatov/boardsync/models"
)

type checkpointStore struct {
	*DB
	logger *logger.Logger
}

// NewCheckpointStore returns the SQLite-backed implementation of
// [CheckpointStore]. State lives in the single-row sync_state table seeded by
// the schema migration.
func NewCheckpointStore(db *DB, logger *logger.Logger) CheckpointStore {
	return &checkpointStore{
		DB:     db,
		logger: logger,
	}
}

func (c *checkpointStore) Load(ctx context.Context) (models.SyncCheckpoint, error) {
	var cp models.SyncCheckpoint
	var full, incr *time.Time
	var inProgress bool

	row := c.DB.QueryRowContext(ctx, loadCheckpointQuery)
	if err := row.Scan(&full, &incr, &inProgress); err != nil {
		return models.SyncCheckpoint{}, fmt.Errorf("load sync checkpoint: %w", err)
	}

	cp.LastFullSyncAt = full
	cp.LastIncrementalSyncAt = incr
	cp.InProgress = inProgress
	return cp, nil
}

func (c *checkpointStore) SetFullSyncAt(ctx context.Context, at time.Time) error {
	if _, err := c.DB.ExecContext(ctx, setFullSyncAtQuery, at); err != nil {
		return fmt.Errorf("set full sync checkpoint: %w", err)
	}
	return nil
}

func (c *checkpointStore) SetIncrementalSyncAt(ctx context.Context, at time.Time) error {
	if _, err := c.DB.ExecContext(ctx, setIncrementalSyncAtQuery, at); err != nil {
		return fmt.Errorf("set incremental sync checkpoint: %w", err)
	}
	return nil
}

func (c *checkpointStore) SetInProgress(ctx context.Context, inProgress bool) error {
	if _, err := c.DB.ExecContext(ctx, setInProgressQuery, inProgress); err != nil {
		return fmt.Errorf("set sync in-progress flag: %w", err)
	}
	return nil
}
