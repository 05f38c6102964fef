package models

import "time"

// ConflictLogEntry is an immutable audit record written once per genuine
// field-level conflict. LocalData and RemoteData are JSON snapshots of the
// two sides at detection time.
type ConflictLogEntry struct {
	ID            int64            `json:"id"`
	Table         Table            `json:"table"`
	RecordID      string           `json:"record_id"`
	LocalVersion  int64            `json:"local_version"`
	RemoteVersion int64            `json:"remote_version"`
	Resolution    ConflictDecision `json:"resolution"`
	LocalData     string           `json:"local_data"`
	RemoteData    string           `json:"remote_data"`
	DetectedAt    time.Time        `json:"detected_at"`
}

// ChangeLogEntry is the audit trail companion of a SyncChange. It outlives
// the queue entry: once the change succeeds or is abandoned the entry keeps
// the final disposition.
type ChangeLogEntry struct {
	ID         int64     `json:"id"`
	ChangeID   string    `json:"change_id"`
	Table      Table     `json:"table"`
	RecordID   string    `json:"record_id"`
	Operation  Operation `json:"operation"`
	Synced     bool      `json:"synced"`
	Error      string    `json:"error,omitempty"`
	RetryCount int       `json:"retry_count"`
	CreatedAt  time.Time `json:"created_at"`
}
