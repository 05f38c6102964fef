// SPDX-License-Identifier: Apache-2.0

// Package service implements the synchronization core: conflict resolution,
// the debounced outbound queue, soft-delete tombstone management, and the
// full/incremental sync engine.
//
// All services are explicitly constructed objects receiving injected
// dependencies (local store, remote client, network status, event sink); none
// keep ambient global state. Remote operations are strictly gated on the
// [adapter.NetworkStatus] collaborator: offline and reconnecting states block
// remote I/O but never block local writes.
package service

import (
	"context"
	"time"

	"github.com/narmatov/boardsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ConflictResolver decides the winner when a local record and its remote
// counterpart diverge. Detection is version-based with a field-level diff;
// resolution is last-write-wins on the modification timestamp, remote winning
// exact ties.
type ConflictResolver interface {
	// Detect compares the two sides of a record. Remote fields are remapped
	// to local names through the schema mapping before the diff. When
	// comparableFields is empty, every non-metadata local field is compared.
	Detect(table models.Table, local, remote models.RecordState, comparableFields []string) models.ConflictReport

	// Resolve materializes the winning record for the given decision:
	// local_wins keeps the local comparable fields and bumps the version to
	// max(local, remote)+1; remote_wins takes the remapped remote fields with
	// version remote+1. The reserved needs_merge decision falls back to
	// remote_wins with a warning.
	Resolve(table models.Table, local, remote models.RecordState, decision models.ConflictDecision) models.RecordState

	// LogConflict appends a durable audit entry for a detected conflict.
	// Best effort: failures are logged and swallowed, never propagated.
	LogConflict(ctx context.Context, table models.Table, recordID string, local, remote models.RecordState, report models.ConflictReport)

	// Handle composes detect, log, emit and resolve for one record pair and
	// returns the report together with the materialized winner.
	Handle(ctx context.Context, table models.Table, recordID string, local, remote models.RecordState) models.ConflictResolution
}

// Scheduler owns keyed one-shot timers. It exists so that debounce and
// backoff timers are explicit handles that can be cancelled on queue-clear or
// shutdown instead of ambient callbacks closing over mutable maps.
type Scheduler interface {
	// Schedule arms a timer for key, cancelling any timer already armed for
	// the same key. fn runs on its own goroutine after d elapses.
	Schedule(key string, d time.Duration, fn func())

	// Cancel stops the timer for key if one is armed. It reports whether a
	// timer was actually cancelled before firing.
	Cancel(key string) bool

	// CancelAll stops every armed timer.
	CancelAll()
}

// SyncQueue is the persisted, debounced, retrying outbound change list. At
// most one pending change exists per (table, record id); rapid writes to the
// same record coalesce into a single entry carrying the last payload and
// operation.
type SyncQueue interface {
	// Enqueue registers an outbound change and arms its debounce timer.
	// Repeated calls within the window replace the staged payload and reset
	// the timer; when it fires the change is persisted and audited.
	Enqueue(ctx context.Context, change models.SyncChange) error

	// ProcessQueue drains pending changes to the remote backend in FIFO
	// order. It is single-flight and runs only while online; when offline,
	// unconfigured or already draining it returns nil without touching the
	// queue. Per-change failures schedule independent backoff retries and
	// never abort the drain.
	ProcessQueue(ctx context.Context) error

	// Pending returns the persisted changes in FIFO order.
	Pending(ctx context.Context) ([]models.SyncChange, error)

	// Clear cancels every debounce and retry timer and empties the queue.
	Clear(ctx context.Context) error

	// Shutdown cancels all timers without touching persisted state.
	Shutdown()
}

// SoftDeleteManager applies tombstones instead of physical deletes so that
// deletions propagate through sync and remain restorable. Cascade sets the
// identical timestamp on dependent children, which is how a later restore
// identifies "deleted together".
type SoftDeleteManager interface {
	// SoftDelete stamps the record and its dependents with the current time
	// and enqueues a tombstone update. Returns [ErrAlreadyDeleted] if the
	// record already carries a tombstone.
	SoftDelete(ctx context.Context, table models.Table, id string) error

	// Restore clears the tombstone on the record and on every child deleted
	// at the identical instant. Returns [ErrNotDeleted] if the record is not
	// tombstoned and [ErrParentDeleted] if its parent still is.
	Restore(ctx context.Context, table models.Table, id string) error

	// PermanentDelete removes the record irreversibly, relying on cascading
	// referential deletes for dependents, and enqueues a remote delete.
	PermanentDelete(ctx context.Context, table models.Table, id string) error

	// CleanupOldDeleted permanently deletes tombstones older than the given
	// age, children before parents. Per-record failures accumulate in the
	// result and do not stop the pass.
	CleanupOldDeleted(ctx context.Context, olderThan time.Duration) models.CleanupResult

	// CascadeTombstone stamps at on every dependent of the record. Used when
	// a tombstone arrives from the remote side so its cascade is reproduced
	// locally.
	CascadeTombstone(ctx context.Context, table models.Table, id string, at time.Time) error

	// CascadeRestore clears the tombstone on every dependent deleted at
	// exactly at.
	CascadeRestore(ctx context.Context, table models.Table, id string, at time.Time) error
}

// SyncEngine pulls remote state into the local store: a full bootstrap when
// no checkpoint exists, incremental deltas afterwards. Sync never throws;
// every run returns a [models.SyncResult] carrying accumulated per-record
// errors.
type SyncEngine interface {
	// NeedsFullSync reports whether no full sync has ever completed.
	NeedsFullSync(ctx context.Context) (bool, error)

	// PerformFullSync bootstraps the local store from remote state: the
	// user's memberships and their parent projects first, then tasks in
	// bounded batches, then a queue drain, finally advancing both
	// checkpoints.
	PerformFullSync(ctx context.Context, userID string) *models.SyncResult

	// PerformIncrementalSync pulls only rows modified since the last
	// checkpoint. Delegates to PerformFullSync when no bootstrap has run.
	PerformIncrementalSync(ctx context.Context, userID string) *models.SyncResult

	// PerformSync selects bootstrap or incremental automatically.
	PerformSync(ctx context.Context, userID string) *models.SyncResult

	// IsSyncInProgress reports whether a run is active. Consumers poll it to
	// avoid duplicate triggers; there is no mid-sync cancellation.
	IsSyncInProgress() bool
}

// SyncJob periodically triggers the engine in the background.
type SyncJob interface {
	// Start launches the background goroutine syncing every interval. Any
	// previously running job is stopped first.
	Start(ctx context.Context, userID string, interval time.Duration)

	// Stop signals the goroutine to exit and blocks until it has.
	Stop()
}
