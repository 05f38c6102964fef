package store

import (
	"context"
	"fmt"

	"github.com/narmatov/boardsync/internal/config"
	"github.com/narmatov/boardsync/internal/logger"
)

// Storages groups all local persistence backends into a single value that
// can be passed around the service layer.
type Storages struct {
	// Records is the SQLite-backed row repository for all syncable tables.
	Records RecordRepository
	// Audit is the append-only conflict/change log repository.
	Audit AuditRepository
	// Checkpoints persists sync progress across restarts.
	Checkpoints CheckpointStore
	// Queue is the durable pending-change store backing the sync queue.
	Queue QueueStore
}

// NewStorages initialises the local persistence layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path in cfg.DB.DSN, creating
//     the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Opens (or creates) the durable queue file, degrading to in-memory
//     queue storage when the file is unwritable.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	queue, err := NewFileQueueStore(cfg.QueueFilePath, logger)
	if err != nil {
		return nil, fmt.Errorf("queue store init failed: %w", err)
	}

	return &Storages{
		Records:     NewRecordRepository(db, logger),
		Audit:       NewAuditRepository(db, logger),
		Checkpoints: NewCheckpointStore(db, logger),
		Queue:       queue,
	}, nil
}
