package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narmatov/boardsync/internal/logger"
	"github.com/narmatov/boardsync/models"
)

func newTestChange(table models.Table, recordID string, op models.Operation, createdAt time.Time) models.SyncChange {
	return models.SyncChange{
		ID:        "change-" + recordID,
		Table:     table,
		RecordID:  recordID,
		Operation: op,
		Payload:   models.FieldMap{"name": "value for " + recordID},
		CreatedAt: createdAt,
	}
}

func TestFileQueueStore_PutReplacesSameKey(t *testing.T) {
	s, err := NewFileQueueStore(filepath.Join(t.TempDir(), "queue.json"), logger.Nop())
	require.NoError(t, err)

	now := time.Now().UTC()
	first := newTestChange(models.TableTasks, "t1", models.OpInsert, now)
	second := newTestChange(models.TableTasks, "t1", models.OpUpdate, now.Add(time.Second))

	require.NoError(t, s.Put(first))
	require.NoError(t, s.Put(second))

	pending := s.ListPending()
	require.Len(t, pending, 1)
	assert.Equal(t, models.OpUpdate, pending[0].Operation)
}

func TestFileQueueStore_ListPendingFIFO(t *testing.T) {
	s, err := NewFileQueueStore(filepath.Join(t.TempDir(), "queue.json"), logger.Nop())
	require.NoError(t, err)

	base := time.Now().UTC()
	require.NoError(t, s.Put(newTestChange(models.TableTasks, "b", models.OpUpdate, base.Add(2*time.Second))))
	require.NoError(t, s.Put(newTestChange(models.TableProjects, "a", models.OpInsert, base)))
	require.NoError(t, s.Put(newTestChange(models.TableTasks, "c", models.OpDelete, base.Add(time.Second))))

	pending := s.ListPending()
	require.Len(t, pending, 3)
	assert.Equal(t, "a", pending[0].RecordID)
	assert.Equal(t, "c", pending[1].RecordID)
	assert.Equal(t, "b", pending[2].RecordID)
}

func TestFileQueueStore_SurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "queue.json")

	s, err := NewFileQueueStore(path, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, s.Put(newTestChange(models.TableTasks, "t1", models.OpUpdate, time.Now().UTC())))
	require.NoError(t, s.SetLastProcessedAt(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)))

	reopened, err := NewFileQueueStore(path, logger.Nop())
	require.NoError(t, err)

	pending := reopened.ListPending()
	require.Len(t, pending, 1)
	assert.Equal(t, "t1", pending[0].RecordID)
	assert.Equal(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), reopened.LastProcessedAt())
}

func TestFileQueueStore_InMemoryFallbackOnUnwritablePath(t *testing.T) {
	// a directory path cannot be written as a file, triggering the fallback
	s, err := NewFileQueueStore(t.TempDir(), logger.Nop())
	require.NoError(t, err)

	require.NoError(t, s.Put(newTestChange(models.TableTasks, "t1", models.OpInsert, time.Now().UTC())))

	pending := s.ListPending()
	require.Len(t, pending, 1)
}

func TestFileQueueStore_EmptyPathIsInMemory(t *testing.T) {
	s, err := NewFileQueueStore("", logger.Nop())
	require.NoError(t, err)

	require.NoError(t, s.Put(newTestChange(models.TableTasks, "t1", models.OpInsert, time.Now().UTC())))
	change, ok := s.Get("tasks/t1")
	require.True(t, ok)
	assert.Equal(t, models.OpInsert, change.Operation)
}

func TestFileQueueStore_Clear(t *testing.T) {
	s, err := NewFileQueueStore(filepath.Join(t.TempDir(), "queue.json"), logger.Nop())
	require.NoError(t, err)

	require.NoError(t, s.Put(newTestChange(models.TableTasks, "t1", models.OpInsert, time.Now().UTC())))
	require.NoError(t, s.Put(newTestChange(models.TableTasks, "t2", models.OpUpdate, time.Now().UTC())))
	require.NoError(t, s.Clear())

	assert.Empty(t, s.ListPending())
}

func TestFileQueueStore_Remove(t *testing.T) {
	s, err := NewFileQueueStore(filepath.Join(t.TempDir(), "queue.json"), logger.Nop())
	require.NoError(t, err)

	change := newTestChange(models.TableTasks, "t1", models.OpInsert, time.Now().UTC())
	require.NoError(t, s.Put(change))
	require.NoError(t, s.Remove(change.Key()))

	_, ok := s.Get(change.Key())
	assert.False(t, ok)
}
