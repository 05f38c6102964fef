package store

import (
	"context"
	"time"

	"github.com/narmatov/boardsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// RecordRepository is the row-oriented local persistence interface shared by
// every syncable table. All read methods take an explicit
// [models.DeletionFilter]; there is no implicit tombstone handling.
type RecordRepository interface {
	// Get returns the record with the given local id, honoring the filter.
	Get(ctx context.Context, table models.Table, id string, filter models.DeletionFilter) (models.FieldMap, error)

	// List returns all records of the table, honoring the filter.
	List(ctx context.Context, table models.Table, filter models.DeletionFilter) ([]models.FieldMap, error)

	// ListWhere returns records matching the column-equality conditions,
	// honoring the filter.
	ListWhere(ctx context.Context, table models.Table, conds map[string]any, filter models.DeletionFilter) ([]models.FieldMap, error)

	// FindByRemoteID locates the record linked to the given remote id.
	// Tombstoned records are included: a deleted local record still
	// participates in conflict resolution against remote state.
	FindByRemoteID(ctx context.Context, table models.Table, remoteID string) (models.FieldMap, error)

	// FindUnlinkedByNaturalKey locates a live, never-synced record (empty
	// remote_id) by its natural key columns, used to link local-first
	// records to their remote counterparts instead of duplicating them.
	FindUnlinkedByNaturalKey(ctx context.Context, table models.Table, key models.FieldMap) (models.FieldMap, error)

	// Insert stores a new record.
	Insert(ctx context.Context, table models.Table, fields models.FieldMap) error

	// UpdateFields applies a partial column update to the record with the
	// given local id.
	UpdateFields(ctx context.Context, table models.Table, id string, fields models.FieldMap) error

	// LinkRemote attaches a remote id to a previously unlinked record and
	// refreshes its last_synced_at stamp.
	LinkRemote(ctx context.Context, table models.Table, id, remoteID string, at time.Time) error

	// SetDeletedAt stamps or clears (at == nil) the tombstone on one record.
	SetDeletedAt(ctx context.Context, table models.Table, id string, at *time.Time) error

	// CascadeDeletedAt stamps the tombstone on all live children of the
	// given parent, returning how many rows were stamped.
	CascadeDeletedAt(ctx context.Context, table models.Table, parentColumn, parentID string, at time.Time) (int64, error)

	// CascadeRestore clears tombstones on children stamped at exactly the
	// given instant, returning how many rows were restored.
	CascadeRestore(ctx context.Context, table models.Table, parentColumn, parentID string, at time.Time) (int64, error)

	// Delete removes the record permanently. Dependent rows are removed by
	// the schema's cascading foreign keys.
	Delete(ctx context.Context, table models.Table, id string) error

	// ListDeletedBefore returns tombstoned records whose deleted_at is
	// strictly before the cutoff.
	ListDeletedBefore(ctx context.Context, table models.Table, cutoff time.Time) ([]models.FieldMap, error)
}

// AuditRepository is append-only storage for conflict entries and change-log
// entries. Appends are best-effort from the caller's point of view: callers
// log failures and continue.
type AuditRepository interface {
	AppendConflict(ctx context.Context, entry models.ConflictLogEntry) error
	AppendChange(ctx context.Context, entry models.ChangeLogEntry) error
	MarkChangeSynced(ctx context.Context, changeID string) error
	RecordChangeFailure(ctx context.Context, changeID, errMsg string, retryCount int) error
	ConflictHistory(ctx context.Context, table models.Table, recordID string) ([]models.ConflictLogEntry, error)
	RecentConflicts(ctx context.Context, limit int) ([]models.ConflictLogEntry, error)
	ChangeHistory(ctx context.Context, table models.Table, recordID string) ([]models.ChangeLogEntry, error)
	RecentChanges(ctx context.Context, limit int) ([]models.ChangeLogEntry, error)
}

// CheckpointStore persists sync progress so restarts resume correctly.
type CheckpointStore interface {
	Load(ctx context.Context) (models.SyncCheckpoint, error)
	SetFullSyncAt(ctx context.Context, at time.Time) error
	SetIncrementalSyncAt(ctx context.Context, at time.Time) error
	SetInProgress(ctx context.Context, inProgress bool) error
}

// QueueStore is the restart-surviving key/value store backing the sync
// queue's pending-change list. Implementations fall back to in-memory
// storage, logged once, when durable storage is unavailable.
type QueueStore interface {
	// Put stores or replaces the pending change for its coalescing key.
	Put(change models.SyncChange) error
	// Get returns the pending change for the key, if any.
	Get(key string) (models.SyncChange, bool)
	// Remove drops the pending change for the key.
	Remove(key string) error
	// ListPending returns all pending changes in FIFO order of creation.
	ListPending() []models.SyncChange
	// Clear drops every pending change.
	Clear() error
	// SetLastProcessedAt records when the queue last completed a drain.
	SetLastProcessedAt(at time.Time) error
	// LastProcessedAt returns the recorded drain time, zero when never.
	LastProcessedAt() time.Time
}
