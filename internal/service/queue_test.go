// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/narmatov/boardsync/internal/adapter"
	"github.com/narmatov/boardsync/internal/config"
	"github.com/narmatov/boardsync/internal/logger"
	"github.com/narmatov/boardsync/internal/mock"
	"github.com/narmatov/boardsync/internal/store"
	"github.com/narmatov/boardsync/models"
)

type queueFixture struct {
	queue   SyncQueue
	store   store.QueueStore
	records *mock.MockRecordRepository
	audit   *mock.MockAuditRepository
	remote  *mock.MockRemoteClient
	network *mock.MockNetworkStatus
}

func newQueueFixture(t *testing.T, ctrl *gomock.Controller, cfg config.Sync) *queueFixture {
	t.Helper()

	qs, err := store.NewFileQueueStore("", logger.Nop())
	require.NoError(t, err)

	f := &queueFixture{
		store:   qs,
		records: mock.NewMockRecordRepository(ctrl),
		audit:   mock.NewMockAuditRepository(ctrl),
		remote:  mock.NewMockRemoteClient(ctrl),
		network: mock.NewMockNetworkStatus(ctrl),
	}
	f.queue = NewSyncQueue(qs, f.records, f.audit, f.remote, f.network,
		DefaultSchemaMapping(), NewScheduler(), cfg, logger.Nop())
	t.Cleanup(f.queue.Shutdown)
	return f
}

func (f *queueFixture) online() {
	f.network.EXPECT().IsConfigured().Return(true).AnyTimes()
	f.network.EXPECT().ConnectionStatus().Return(adapter.StatusOnline).AnyTimes()
}

// waitPending polls until the durable queue holds want entries.
func waitPending(t *testing.T, qs store.QueueStore, want int) []models.SyncChange {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if pending := qs.ListPending(); len(pending) == want {
			return pending
		}
		time.Sleep(2 * time.Millisecond)
	}
	pending := qs.ListPending()
	t.Fatalf("queue never reached %d pending entries, has %d", want, len(pending))
	return pending
}

func taskChange(op models.Operation, payload models.FieldMap) models.SyncChange {
	return models.SyncChange{
		Table:     models.TableTasks,
		RecordID:  "t1",
		Operation: op,
		Payload:   payload,
	}
}

// ── Enqueue and coalescing ──────────────────────────────────────────────────

func TestEnqueue_ValidatesChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newQueueFixture(t, ctrl, config.Sync{DebounceWindow: 5 * time.Millisecond})

	ctx := context.Background()
	assert.Error(t, f.queue.Enqueue(ctx, models.SyncChange{RecordID: "t1", Operation: models.OpUpdate}))
	assert.Error(t, f.queue.Enqueue(ctx, models.SyncChange{Table: models.TableTasks, Operation: models.OpUpdate}))
	assert.Error(t, f.queue.Enqueue(ctx, models.SyncChange{Table: models.TableTasks, RecordID: "t1"}))
	assert.ErrorIs(t,
		f.queue.Enqueue(ctx, models.SyncChange{Table: "bogus", RecordID: "t1", Operation: models.OpUpdate}),
		store.ErrUnknownTable)
}

func TestEnqueue_RapidEditsCoalesceToOneEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newQueueFixture(t, ctrl, config.Sync{DebounceWindow: 20 * time.Millisecond})

	f.audit.EXPECT().AppendChange(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry models.ChangeLogEntry) error {
			assert.Equal(t, models.TableTasks, entry.Table)
			assert.Equal(t, "t1", entry.RecordID)
			assert.Equal(t, models.OpUpdate, entry.Operation)
			return nil
		})

	ctx := context.Background()
	require.NoError(t, f.queue.Enqueue(ctx, taskChange(models.OpUpdate, models.FieldMap{"title": "first"})))
	require.NoError(t, f.queue.Enqueue(ctx, taskChange(models.OpUpdate, models.FieldMap{"title": "second"})))
	require.NoError(t, f.queue.Enqueue(ctx, taskChange(models.OpUpdate, models.FieldMap{"title": "third"})))

	pending := waitPending(t, f.store, 1)
	assert.Equal(t, "third", pending[0].Payload["title"])
	assert.NotEmpty(t, pending[0].ID)
}

func TestEnqueue_DistinctRecordsDoNotCoalesce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newQueueFixture(t, ctrl, config.Sync{DebounceWindow: 5 * time.Millisecond})

	f.audit.EXPECT().AppendChange(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	ctx := context.Background()
	require.NoError(t, f.queue.Enqueue(ctx, taskChange(models.OpUpdate, models.FieldMap{"title": "a"})))
	other := taskChange(models.OpUpdate, models.FieldMap{"title": "b"})
	other.RecordID = "t2"
	require.NoError(t, f.queue.Enqueue(ctx, other))

	waitPending(t, f.store, 2)
}

func TestEnqueue_InsertGetsIdempotencyKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newQueueFixture(t, ctrl, config.Sync{DebounceWindow: 5 * time.Millisecond})

	f.audit.EXPECT().AppendChange(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, f.queue.Enqueue(context.Background(),
		taskChange(models.OpInsert, models.FieldMap{"title": "new"})))

	pending := waitPending(t, f.store, 1)
	assert.NotEmpty(t, pending[0].IdempotencyKey)
}

func TestEnqueue_CoalescesIntoPersistedEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newQueueFixture(t, ctrl, config.Sync{DebounceWindow: 5 * time.Millisecond})

	// One audit entry for the first persist; the follow-up edit reuses the
	// persisted change id and is not audited again.
	f.audit.EXPECT().AppendChange(gomock.Any(), gomock.Any()).Return(nil)

	ctx := context.Background()
	require.NoError(t, f.queue.Enqueue(ctx, taskChange(models.OpUpdate, models.FieldMap{"title": "first"})))
	first := waitPending(t, f.store, 1)

	require.NoError(t, f.queue.Enqueue(ctx, taskChange(models.OpUpdate, models.FieldMap{"title": "second"})))
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if pending := f.store.ListPending(); len(pending) == 1 && pending[0].Payload["title"] == "second" {
			assert.Equal(t, first[0].ID, pending[0].ID)
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatal("second edit never replaced the persisted payload")
}

// ── ProcessQueue gating ─────────────────────────────────────────────────────

func TestProcessQueue_SkipsWhenNotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newQueueFixture(t, ctrl, config.Sync{})

	f.network.EXPECT().IsConfigured().Return(false)

	assert.NoError(t, f.queue.ProcessQueue(context.Background()))
}

func TestProcessQueue_SkipsWhenOffline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newQueueFixture(t, ctrl, config.Sync{})

	f.network.EXPECT().IsConfigured().Return(true)
	f.network.EXPECT().ConnectionStatus().Return(adapter.StatusOffline)

	assert.NoError(t, f.queue.ProcessQueue(context.Background()))
}

// ── Pushing ─────────────────────────────────────────────────────────────────

func TestProcessQueue_UpdatePushesMappedRowAndSettles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newQueueFixture(t, ctrl, config.Sync{})
	f.online()

	change := taskChange(models.OpUpdate, models.FieldMap{"title": "Fix bug", "notes": "details"})
	change.ID = "c1"
	change.RemoteID = "r1"
	require.NoError(t, f.store.Put(change))

	f.remote.EXPECT().Update(gomock.Any(), "tasks", "r1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ string, row models.FieldMap) (models.FieldMap, error) {
			assert.Equal(t, "Fix bug", row["name"])
			assert.Equal(t, "details", row["body"])
			assert.NotContains(t, row, "title")
			return models.FieldMap{}, nil
		})
	f.records.EXPECT().UpdateFields(gomock.Any(), models.TableTasks, "t1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.Table, _ string, fields models.FieldMap) error {
			assert.Contains(t, fields, models.FieldLastSyncedAt)
			return nil
		})
	f.audit.EXPECT().MarkChangeSynced(gomock.Any(), "c1").Return(nil)

	require.NoError(t, f.queue.ProcessQueue(context.Background()))
	assert.Empty(t, f.store.ListPending())
}

func TestProcessQueue_InsertLinksRemoteID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newQueueFixture(t, ctrl, config.Sync{})
	f.online()

	change := taskChange(models.OpInsert, models.FieldMap{"title": "New task"})
	change.ID = "c1"
	change.IdempotencyKey = "idem-1"
	require.NoError(t, f.store.Put(change))

	f.remote.EXPECT().Insert(gomock.Any(), "tasks", gomock.Any(), "idem-1").
		Return(models.FieldMap{"id": "r9"}, nil)
	f.records.EXPECT().LinkRemote(gomock.Any(), models.TableTasks, "t1", "r9", gomock.Any()).Return(nil)
	f.audit.EXPECT().MarkChangeSynced(gomock.Any(), "c1").Return(nil)

	require.NoError(t, f.queue.ProcessQueue(context.Background()))
	assert.Empty(t, f.store.ListPending())
}

func TestProcessQueue_UpdateWithoutRemoteLinkFallsBackToInsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newQueueFixture(t, ctrl, config.Sync{})
	f.online()

	change := taskChange(models.OpUpdate, models.FieldMap{"title": "Fix bug"})
	change.ID = "c1"
	require.NoError(t, f.store.Put(change))

	// No remote link on the record: the backend has never seen it.
	f.records.EXPECT().Get(gomock.Any(), models.TableTasks, "t1", models.IncludeAll).
		Return(models.FieldMap{models.FieldID: "t1"}, nil)
	f.remote.EXPECT().Insert(gomock.Any(), "tasks", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ models.FieldMap, key string) (models.FieldMap, error) {
			// The fallback insert must carry a key like any first insert.
			assert.NotEmpty(t, key)
			return models.FieldMap{"id": "r2"}, nil
		})
	f.records.EXPECT().LinkRemote(gomock.Any(), models.TableTasks, "t1", "r2", gomock.Any()).Return(nil)
	f.audit.EXPECT().MarkChangeSynced(gomock.Any(), "c1").Return(nil)

	require.NoError(t, f.queue.ProcessQueue(context.Background()))
	assert.Empty(t, f.store.ListPending())
}

func TestProcessQueue_FallbackInsertKeepsKeyAcrossRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newQueueFixture(t, ctrl, config.Sync{
		MaxRetryAttempts: 3,
		RetryBackoffBase: 5 * time.Millisecond,
	})
	f.online()

	change := taskChange(models.OpUpdate, models.FieldMap{"title": "Fix bug"})
	change.ID = "c1"
	require.NoError(t, f.store.Put(change))

	f.records.EXPECT().Get(gomock.Any(), models.TableTasks, "t1", models.IncludeAll).
		Return(models.FieldMap{models.FieldID: "t1"}, nil).Times(2)

	// The first attempt fails after the backend may have committed; the
	// backoff retry must replay the exact same idempotency key.
	var firstKey string
	f.remote.EXPECT().Insert(gomock.Any(), "tasks", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ models.FieldMap, key string) (models.FieldMap, error) {
			firstKey = key
			return nil, adapter.ErrUnavailable
		})
	f.audit.EXPECT().RecordChangeFailure(gomock.Any(), "c1", gomock.Any(), 1).Return(nil)

	retried := make(chan string, 1)
	f.remote.EXPECT().Insert(gomock.Any(), "tasks", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ models.FieldMap, key string) (models.FieldMap, error) {
			retried <- key
			return models.FieldMap{"id": "r2"}, nil
		})
	f.records.EXPECT().LinkRemote(gomock.Any(), models.TableTasks, "t1", "r2", gomock.Any()).Return(nil)
	f.audit.EXPECT().MarkChangeSynced(gomock.Any(), "c1").Return(nil)

	require.NoError(t, f.queue.ProcessQueue(context.Background()))

	select {
	case retryKey := <-retried:
		assert.NotEmpty(t, firstKey)
		assert.Equal(t, firstKey, retryKey)
	case <-time.After(2 * time.Second):
		t.Fatal("backoff retry never fired")
	}
	waitPending(t, f.store, 0)
}

func TestProcessQueue_DeleteWithoutRemoteLinkIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newQueueFixture(t, ctrl, config.Sync{})
	f.online()

	change := taskChange(models.OpDelete, nil)
	change.ID = "c1"
	require.NoError(t, f.store.Put(change))

	f.records.EXPECT().Get(gomock.Any(), models.TableTasks, "t1", models.IncludeAll).
		Return(models.FieldMap{models.FieldID: "t1"}, nil)
	f.audit.EXPECT().MarkChangeSynced(gomock.Any(), "c1").Return(nil)

	require.NoError(t, f.queue.ProcessQueue(context.Background()))
	assert.Empty(t, f.store.ListPending())
}

func TestProcessQueue_RecordGoneBeforePushDropsChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newQueueFixture(t, ctrl, config.Sync{})
	f.online()

	change := taskChange(models.OpUpdate, models.FieldMap{"title": "orphan"})
	change.ID = "c1"
	require.NoError(t, f.store.Put(change))

	f.records.EXPECT().Get(gomock.Any(), models.TableTasks, "t1", models.IncludeAll).
		Return(nil, store.ErrRecordNotFound)
	f.audit.EXPECT().MarkChangeSynced(gomock.Any(), "c1").Return(nil)

	require.NoError(t, f.queue.ProcessQueue(context.Background()))
	assert.Empty(t, f.store.ListPending())
}

// ── Failure handling ────────────────────────────────────────────────────────

func TestProcessQueue_TransientFailureSchedulesRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newQueueFixture(t, ctrl, config.Sync{
		MaxRetryAttempts: 3,
		RetryBackoffBase: 50 * time.Millisecond,
	})
	f.online()

	change := taskChange(models.OpUpdate, models.FieldMap{"title": "Fix bug"})
	change.ID = "c1"
	change.RemoteID = "r1"
	require.NoError(t, f.store.Put(change))

	// First push fails transiently, the backoff retry succeeds.
	f.remote.EXPECT().Update(gomock.Any(), "tasks", "r1", gomock.Any()).
		Return(nil, adapter.ErrUnavailable)
	f.audit.EXPECT().RecordChangeFailure(gomock.Any(), "c1", gomock.Any(), 1).Return(nil)

	retried := make(chan struct{})
	f.remote.EXPECT().Update(gomock.Any(), "tasks", "r1", gomock.Any()).
		DoAndReturn(func(context.Context, string, string, models.FieldMap) (models.FieldMap, error) {
			close(retried)
			return models.FieldMap{}, nil
		})
	f.records.EXPECT().UpdateFields(gomock.Any(), models.TableTasks, "t1", gomock.Any()).Return(nil)
	f.audit.EXPECT().MarkChangeSynced(gomock.Any(), "c1").Return(nil)

	require.NoError(t, f.queue.ProcessQueue(context.Background()))

	pending := f.store.ListPending()
	require.Len(t, pending, 1)
	assert.Equal(t, 1, pending[0].RetryCount)

	select {
	case <-retried:
	case <-time.After(2 * time.Second):
		t.Fatal("backoff retry never fired")
	}
	waitPending(t, f.store, 0)
}

func TestProcessQueue_AbandonsAfterMaxRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newQueueFixture(t, ctrl, config.Sync{
		MaxRetryAttempts: 3,
		RetryBackoffBase: 2 * time.Millisecond,
	})
	f.online()

	change := taskChange(models.OpUpdate, models.FieldMap{"title": "Fix bug"})
	change.ID = "c1"
	change.RemoteID = "r1"
	require.NoError(t, f.store.Put(change))

	f.remote.EXPECT().Update(gomock.Any(), "tasks", "r1", gomock.Any()).
		Return(nil, adapter.ErrUnavailable).Times(3)
	f.audit.EXPECT().RecordChangeFailure(gomock.Any(), "c1", gomock.Any(), 1).Return(nil)
	f.audit.EXPECT().RecordChangeFailure(gomock.Any(), "c1", gomock.Any(), 2).Return(nil)

	abandoned := make(chan struct{})
	f.audit.EXPECT().RecordChangeFailure(gomock.Any(), "c1", gomock.Any(), 3).
		DoAndReturn(func(context.Context, string, string, int) error {
			close(abandoned)
			return nil
		})

	require.NoError(t, f.queue.ProcessQueue(context.Background()))

	select {
	case <-abandoned:
	case <-time.After(2 * time.Second):
		t.Fatal("change never exhausted its retries")
	}
	waitPending(t, f.store, 0)
}

func TestProcessQueue_PermanentFailureAbandonsImmediately(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newQueueFixture(t, ctrl, config.Sync{MaxRetryAttempts: 3})
	f.online()

	change := taskChange(models.OpUpdate, models.FieldMap{"title": "Fix bug"})
	change.ID = "c1"
	change.RemoteID = "r1"
	require.NoError(t, f.store.Put(change))

	f.remote.EXPECT().Update(gomock.Any(), "tasks", "r1", gomock.Any()).
		Return(nil, adapter.ErrBadRequest)
	f.audit.EXPECT().RecordChangeFailure(gomock.Any(), "c1", gomock.Any(), 1).Return(nil)

	require.NoError(t, f.queue.ProcessQueue(context.Background()))
	assert.Empty(t, f.store.ListPending())
}

// ── Clear ───────────────────────────────────────────────────────────────────

func TestClear_DropsPersistedAndStagedChanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newQueueFixture(t, ctrl, config.Sync{DebounceWindow: 20 * time.Millisecond})

	require.NoError(t, f.store.Put(models.SyncChange{
		ID: "c1", Table: models.TableTasks, RecordID: "t9", Operation: models.OpUpdate,
	}))
	require.NoError(t, f.queue.Enqueue(context.Background(),
		taskChange(models.OpUpdate, models.FieldMap{"title": "staged"})))

	require.NoError(t, f.queue.Clear(context.Background()))

	assert.Empty(t, f.store.ListPending())
	// The debounce timer was cancelled: nothing reappears.
	time.Sleep(40 * time.Millisecond)
	assert.Empty(t, f.store.ListPending())
}
