package models

import "time"

// Operation is the kind of outbound mutation carried by a SyncChange.
type Operation string

const (
	OpInsert Operation = "insert"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// SyncChange is one pending outbound mutation. At most one pending change
// exists per (Table, RecordID); later writes coalesce into it, replacing the
// payload and operation.
type SyncChange struct {
	ID             string    `json:"id"`
	Table          Table     `json:"table"`
	RecordID       string    `json:"record_id"`
	RemoteID       string    `json:"remote_id,omitempty"`
	Operation      Operation `json:"operation"`
	Payload        FieldMap  `json:"payload,omitempty"`
	IdempotencyKey string    `json:"idempotency_key,omitempty"`
	RetryCount     int       `json:"retry_count"`
	CreatedAt      time.Time `json:"created_at"`
}

// Key returns the coalescing key for the change.
func (c SyncChange) Key() string {
	return string(c.Table) + "/" + c.RecordID
}

// RecordState is the resolver's view of one side of a record: its comparable
// fields (local column names), version counter, and modification time. A zero
// UpdatedAt means the side carries no timestamp.
type RecordState struct {
	Fields    FieldMap
	Version   int64
	UpdatedAt time.Time
}

// ConflictDecision names the winner of a detected conflict.
type ConflictDecision string

const (
	LocalWins  ConflictDecision = "local_wins"
	RemoteWins ConflictDecision = "remote_wins"
	// NeedsMerge is reserved. Detection never produces it; resolution treats
	// it as RemoteWins and logs a warning.
	NeedsMerge ConflictDecision = "needs_merge"
)

// ConflictReport is the outcome of conflict detection for one record.
type ConflictReport struct {
	HasConflict       bool
	Decision          ConflictDecision
	ConflictingFields []string
	LocalVersion      int64
	RemoteVersion     int64
	LocalUpdatedAt    time.Time
	RemoteUpdatedAt   time.Time
}

// ConflictResolution is the outcome of handling one record pair: the report
// plus the materialized winning fields ready to write locally.
type ConflictResolution struct {
	HasConflict bool
	Decision    ConflictDecision
	Resolved    RecordState
}

// SyncCheckpoint records sync progress across restarts. A missing
// LastFullSyncAt forces a bootstrap.
type SyncCheckpoint struct {
	LastFullSyncAt        *time.Time `json:"last_full_sync_at,omitempty"`
	LastIncrementalSyncAt *time.Time `json:"last_incremental_sync_at,omitempty"`
	InProgress            bool       `json:"in_progress"`
}

// SyncResult is returned by every sync run. Sync never throws: per-record
// failures accumulate into Errors and clear Success while the run continues.
type SyncResult struct {
	Success        bool
	Synced         map[Table]int
	LocalWinCount  int
	RemoteWinCount int
	Errors         []string
	Duration       time.Duration
}

// NewSyncResult returns an empty successful result with counters allocated.
func NewSyncResult() *SyncResult {
	return &SyncResult{
		Success: true,
		Synced:  map[Table]int{},
	}
}

// AddError records a non-fatal error and clears the success flag.
func (r *SyncResult) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Success = false
}

// CleanupResult reports a tombstone garbage-collection pass.
type CleanupResult struct {
	Deleted map[Table]int
	Errors  []string
}
