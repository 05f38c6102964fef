package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/narmatov/boardsync/internal/logger"
	"github.com/narmatov/boardsync/models"
)

type fileQueueStore struct {
	path     string
	inMemory bool
	logger   *logger.Logger

	mu              sync.RWMutex
	changes         map[string]models.SyncChange
	lastProcessedAt time.Time
}

type queuePersistedState struct {
	Changes         map[string]models.SyncChange `json:"changes"`
	LastProcessedAt time.Time                    `json:"last_processed_at,omitzero"`
}

// NewFileQueueStore opens (or creates) the durable queue file at path and
// returns a [QueueStore] backed by it. When the file cannot be created or
// written (sandboxed installs, read-only volumes) the store transparently
// degrades to in-memory operation and logs the downgrade once; pending
// changes then do not survive a restart, but the queue keeps functioning.
//
// An empty path selects in-memory operation explicitly.
func NewFileQueueStore(path string, log *logger.Logger) (QueueStore, error) {
	s := &fileQueueStore{
		path:     path,
		inMemory: path == "",
		logger:   log,
		changes:  make(map[string]models.SyncChange),
	}

	if s.inMemory {
		return s, nil
	}

	s.load()

	// probe writability once so the fallback decision is made up front,
	// not on a hot enqueue path
	if err := s.persistLocked(); err != nil {
		log.Warn().Err(err).
			Str("path", path).
			Msg("queue file is not writable; falling back to in-memory queue storage")
		s.inMemory = true
	}

	return s, nil
}

func (s *fileQueueStore) Put(change models.SyncChange) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.changes[change.Key()] = change
	return s.persistLocked()
}

func (s *fileQueueStore) Get(key string) (models.SyncChange, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	change, ok := s.changes[key]
	return change, ok
}

func (s *fileQueueStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.changes, key)
	return s.persistLocked()
}

func (s *fileQueueStore) ListPending() []models.SyncChange {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.SyncChange, 0, len(s.changes))
	for _, c := range s.changes {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func (s *fileQueueStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.changes = make(map[string]models.SyncChange)
	return s.persistLocked()
}

func (s *fileQueueStore) SetLastProcessedAt(at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastProcessedAt = at
	return s.persistLocked()
}

func (s *fileQueueStore) LastProcessedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lastProcessedAt
}

func (s *fileQueueStore) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn().Err(err).
				Str("path", s.path).
				Msg("could not read queue file; starting with an empty queue")
		}
		return
	}

	var st queuePersistedState
	if err = json.Unmarshal(data, &st); err != nil {
		s.logger.Warn().Err(err).
			Str("path", s.path).
			Msg("queue file is corrupt; starting with an empty queue")
		return
	}

	if st.Changes == nil {
		st.Changes = make(map[string]models.SyncChange)
	}

	s.changes = st.Changes
	s.lastProcessedAt = st.LastProcessedAt
}

func (s *fileQueueStore) persistLocked() error {
	if s.inMemory {
		return nil
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create queue dir: %w", err)
		}
	}

	state := queuePersistedState{Changes: s.changes, LastProcessedAt: s.lastProcessedAt}
	payload, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode queue state: %w", err)
	}

	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write queue file: %w", err)
	}

	return nil
}
