// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/narmatov/boardsync/internal/adapter"
	"github.com/narmatov/boardsync/internal/config"
	"github.com/narmatov/boardsync/internal/logger"
	"github.com/narmatov/boardsync/internal/store"
	"github.com/narmatov/boardsync/models"
)

type stagedChange struct {
	models.SyncChange
	audited bool
}

type syncQueue struct {
	queue   store.QueueStore
	records store.RecordRepository
	audit   store.AuditRepository
	remote  adapter.RemoteClient
	network adapter.NetworkStatus
	mapping SchemaMapping
	sched   Scheduler
	cfg     config.Sync
	logger  *logger.Logger

	mu     sync.Mutex
	staged map[string]stagedChange

	draining atomic.Bool
}

// NewSyncQueue constructs the outbound change queue. Changes wait in a
// per-record debounce buffer before being persisted; pushing happens in
// ProcessQueue drains and in per-change backoff retries owned by sched.
func NewSyncQueue(
	queue store.QueueStore,
	records store.RecordRepository,
	audit store.AuditRepository,
	remote adapter.RemoteClient,
	network adapter.NetworkStatus,
	mapping SchemaMapping,
	sched Scheduler,
	cfg config.Sync,
	logger *logger.Logger,
) SyncQueue {
	if cfg.DebounceWindow <= 0 {
		cfg.DebounceWindow = config.DefaultDebounceWindow
	}
	if cfg.MaxRetryAttempts <= 0 {
		cfg.MaxRetryAttempts = config.DefaultMaxRetryAttempts
	}
	if cfg.RetryBackoffBase <= 0 {
		cfg.RetryBackoffBase = config.DefaultRetryBackoffBase
	}

	return &syncQueue{
		queue:   queue,
		records: records,
		audit:   audit,
		remote:  remote,
		network: network,
		mapping: mapping,
		sched:   sched,
		cfg:     cfg,
		logger:  logger,
		staged:  make(map[string]stagedChange),
	}
}

func (q *syncQueue) Enqueue(ctx context.Context, change models.SyncChange) error {
	if change.Table == "" || change.RecordID == "" || change.Operation == "" {
		return errors.New("enqueue: table, record id and operation are required")
	}
	if _, err := store.SpecFor(change.Table); err != nil {
		return err
	}

	key := change.Key()

	q.mu.Lock()
	staged, ok := q.staged[key]
	if !ok {
		// Coalesce into an already persisted entry for the same record so
		// its audit trail stays attached to one change id.
		if persisted, found := q.queue.Get(key); found {
			staged = stagedChange{SyncChange: persisted, audited: true}
		} else {
			staged = stagedChange{SyncChange: models.SyncChange{
				ID:        uuid.NewString(),
				Table:     change.Table,
				RecordID:  change.RecordID,
				CreatedAt: time.Now().UTC(),
			}}
		}
	}

	// Last-operation-wins.
	staged.Operation = change.Operation
	staged.Payload = change.Payload
	if change.RemoteID != "" {
		staged.RemoteID = change.RemoteID
	}
	if staged.Operation == models.OpInsert && staged.IdempotencyKey == "" {
		staged.IdempotencyKey = uuid.NewString()
	}
	q.staged[key] = staged
	q.mu.Unlock()

	q.sched.Schedule("debounce:"+key, q.cfg.DebounceWindow, func() {
		q.persistStaged(key)
	})

	return nil
}

// persistStaged moves a staged change into the durable queue once its
// debounce window closes, appending the audit entry on first persist.
func (q *syncQueue) persistStaged(key string) {
	q.mu.Lock()
	staged, ok := q.staged[key]
	delete(q.staged, key)
	q.mu.Unlock()
	if !ok {
		return
	}

	if err := q.queue.Put(staged.SyncChange); err != nil {
		q.logger.Err(err).Str("change_id", staged.ID).Msg("failed to persist queued change")
		return
	}

	if staged.audited {
		return
	}
	entry := models.ChangeLogEntry{
		ChangeID:  staged.ID,
		Table:     staged.Table,
		RecordID:  staged.RecordID,
		Operation: staged.Operation,
		CreatedAt: staged.CreatedAt,
	}
	if err := q.audit.AppendChange(context.Background(), entry); err != nil {
		q.logger.Err(err).Str("change_id", staged.ID).Msg("failed to audit queued change, continuing")
	}
}

func (q *syncQueue) ProcessQueue(ctx context.Context) error {
	if !q.network.IsConfigured() {
		q.logger.Debug().Msg("queue drain skipped, remote backend not configured")
		return nil
	}
	if q.network.ConnectionStatus() != adapter.StatusOnline {
		q.logger.Debug().Msg("queue drain skipped, not online")
		return nil
	}
	if !q.draining.CompareAndSwap(false, true) {
		q.logger.Debug().Msg("queue drain skipped, drain already running")
		return nil
	}
	defer q.draining.Store(false)

	changes := q.queue.ListPending()
	for _, change := range changes {
		// A drain supersedes any backoff already scheduled for the change.
		q.sched.Cancel("retry:" + change.ID)
		q.pushChange(ctx, change)
	}

	if err := q.queue.SetLastProcessedAt(time.Now().UTC()); err != nil {
		q.logger.Err(err).Msg("failed to record queue drain time")
	}
	return nil
}

func (q *syncQueue) Pending(_ context.Context) ([]models.SyncChange, error) {
	return q.queue.ListPending(), nil
}

func (q *syncQueue) Clear(_ context.Context) error {
	q.sched.CancelAll()

	q.mu.Lock()
	q.staged = make(map[string]stagedChange)
	q.mu.Unlock()

	return q.queue.Clear()
}

func (q *syncQueue) Shutdown() {
	q.sched.CancelAll()
	q.logger.Info().Msg("sync queue shut down, all timers cancelled")
}

// pushChange attempts one remote push and settles the change: removed and
// marked synced on success, retried or abandoned on failure.
func (q *syncQueue) pushChange(ctx context.Context, change models.SyncChange) {
	// An update can still turn into an insert at push time when the record
	// was never linked remotely, so any change that might insert needs its
	// idempotency key made durable before the first attempt; a retry then
	// replays the same insert instead of duplicating the row.
	if change.IdempotencyKey == "" && change.Operation != models.OpDelete {
		change.IdempotencyKey = uuid.NewString()
		if err := q.queue.Put(change); err != nil {
			q.logger.Err(err).Str("change_id", change.ID).Msg("failed to persist idempotency key")
		}
	}

	err := q.pushRemote(ctx, change)
	if err == nil {
		if rmErr := q.queue.Remove(change.Key()); rmErr != nil {
			q.logger.Err(rmErr).Str("change_id", change.ID).Msg("failed to dequeue synced change")
		}
		if auditErr := q.audit.MarkChangeSynced(ctx, change.ID); auditErr != nil {
			q.logger.Err(auditErr).Str("change_id", change.ID).Msg("failed to mark change synced, continuing")
		}
		return
	}

	q.handlePushFailure(ctx, change, err)
}

func (q *syncQueue) pushRemote(ctx context.Context, change models.SyncChange) error {
	collection := collectionFor(change.Table)
	mapping := q.mapping.For(change.Table)

	remoteID := change.RemoteID
	if remoteID == "" && change.Operation != models.OpInsert {
		rec, err := q.records.Get(ctx, change.Table, change.RecordID, models.IncludeAll)
		if errors.Is(err, store.ErrRecordNotFound) {
			// The record was permanently deleted while the change waited.
			// For updates there is nothing left to say; deletes with no
			// remote link never reached the backend at all.
			q.logger.Debug().Str("change_id", change.ID).Msg("record gone before push, dropping change")
			return nil
		}
		if err != nil {
			return fmt.Errorf("load record for push: %w", err)
		}
		remoteID = rec.FieldString(models.FieldRemoteID)
	}

	switch change.Operation {
	case models.OpInsert:
		return q.pushInsert(ctx, collection, mapping, change)

	case models.OpUpdate:
		if remoteID == "" {
			// Never synced: the backend has no row to patch yet.
			return q.pushInsert(ctx, collection, mapping, change)
		}
		if _, err := q.remote.Update(ctx, collection, remoteID, mapping.RemoteRow(change.Payload)); err != nil {
			return err
		}
		q.refreshLastSynced(ctx, change)
		return nil

	case models.OpDelete:
		if remoteID == "" {
			return nil
		}
		return q.remote.Delete(ctx, collection, remoteID)

	default:
		return fmt.Errorf("unknown queue operation %q", change.Operation)
	}
}

func (q *syncQueue) pushInsert(ctx context.Context, collection string, mapping *FieldMapping, change models.SyncChange) error {
	fields := change.Payload
	if len(fields) == 0 {
		rec, err := q.records.Get(ctx, change.Table, change.RecordID, models.IncludeAll)
		if errors.Is(err, store.ErrRecordNotFound) {
			q.logger.Debug().Str("change_id", change.ID).Msg("record gone before push, dropping change")
			return nil
		}
		if err != nil {
			return fmt.Errorf("load record for push: %w", err)
		}
		fields = rec
	}

	created, err := q.remote.Insert(ctx, collection, mapping.RemoteRow(fields), change.IdempotencyKey)
	if err != nil {
		return err
	}

	remoteID := created.FieldString("id")
	if remoteID == "" {
		return errors.New("remote insert returned no id")
	}
	if err := q.records.LinkRemote(ctx, change.Table, change.RecordID, remoteID, time.Now().UTC()); err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("link remote id after insert: %w", err)
	}
	return nil
}

func (q *syncQueue) refreshLastSynced(ctx context.Context, change models.SyncChange) {
	fields := models.FieldMap{models.FieldLastSyncedAt: time.Now().UTC()}
	if err := q.records.UpdateFields(ctx, change.Table, change.RecordID, fields); err != nil && !errors.Is(err, store.ErrRecordNotFound) {
		q.logger.Err(err).Str("change_id", change.ID).Msg("failed to refresh last synced stamp")
	}
}

func (q *syncQueue) handlePushFailure(ctx context.Context, change models.SyncChange, pushErr error) {
	change.RetryCount++

	if err := q.audit.RecordChangeFailure(ctx, change.ID, pushErr.Error(), change.RetryCount); err != nil {
		q.logger.Err(err).Str("change_id", change.ID).Msg("failed to record change failure, continuing")
	}

	if !adapter.IsTransient(pushErr) || change.RetryCount >= q.cfg.MaxRetryAttempts {
		if err := q.queue.Remove(change.Key()); err != nil {
			q.logger.Err(err).Str("change_id", change.ID).Msg("failed to remove abandoned change")
		}
		q.logger.Error().
			Err(pushErr).
			Str("change_id", change.ID).
			Int("retry_count", change.RetryCount).
			Msg("change abandoned")
		return
	}

	if err := q.queue.Put(change); err != nil {
		q.logger.Err(err).Str("change_id", change.ID).Msg("failed to persist retry count")
	}

	delay := q.cfg.RetryBackoffBase << (change.RetryCount - 1)
	q.logger.Warn().
		Err(pushErr).
		Str("change_id", change.ID).
		Int("retry_count", change.RetryCount).
		Dur("delay", delay).
		Msg("push failed, retry scheduled")

	key := change.Key()
	id := change.ID
	q.sched.Schedule("retry:"+id, delay, func() {
		q.retryChange(id, key)
	})
}

// retryChange re-pushes one change from its backoff timer. Retries are
// independent of drains: a failing record never blocks other changes.
func (q *syncQueue) retryChange(id, key string) {
	if !q.network.IsConfigured() || q.network.ConnectionStatus() != adapter.StatusOnline {
		// Leave the change pending; the next online drain picks it up.
		return
	}

	change, ok := q.queue.Get(key)
	if !ok || change.ID != id {
		return
	}

	q.pushChange(context.Background(), change)
}
