package service

import (
	"context"
	"sync"
	"time"

	"github.com/narmatov/boardsync/internal/config"
	"github.com/narmatov/boardsync/internal/logger"
)

type syncJob struct {
	engine SyncEngine
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob creates a background job that calls engine.PerformSync on a
// ticker. The job is idle until Start is called.
func NewSyncJob(engine SyncEngine, logger *logger.Logger) SyncJob {
	return &syncJob{engine: engine, logger: logger}
}

// Start implements [SyncJob]. It stops any previously running job, then
// launches a goroutine syncing every interval (defaulting when zero or
// negative). The goroutine exits when ctx is cancelled or Stop is called.
func (j *syncJob) Start(ctx context.Context, userID string, interval time.Duration) {
	if interval <= 0 {
		interval = config.DefaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if j.engine.IsSyncInProgress() {
					continue
				}
				result := j.engine.PerformSync(jobCtx, userID)
				if !result.Success {
					j.logger.Warn().
						Strs("errors", result.Errors).
						Msg("background sync finished with errors")
				}
			}
		}
	}()
}

// Stop implements [SyncJob]. It cancels the goroutine's context and blocks
// until it has fully exited. Safe to call when the job is not running.
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
