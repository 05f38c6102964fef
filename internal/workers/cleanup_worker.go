// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/narmatov/boardsync/internal/config"
	"github.com/narmatov/boardsync/internal/logger"
	"github.com/narmatov/boardsync/internal/service"
)

// cleanupWorker periodically deletes tombstones old enough that no client is
// expected to restore them.
type cleanupWorker struct {
	softDelete service.SoftDeleteManager
	interval   time.Duration
	age        time.Duration
	logger     *logger.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewCleanupWorker builds the tombstone cleanup worker running every
// cfg.CleanupInterval and purging tombstones older than age.
func NewCleanupWorker(softDelete service.SoftDeleteManager, cfg config.Workers, age time.Duration, logger *logger.Logger) Worker {
	if age <= 0 {
		age = config.DefaultCleanupAge
	}
	interval := cfg.CleanupInterval
	if interval <= 0 {
		interval = config.DefaultCleanupInterval
	}

	return &cleanupWorker{
		softDelete: softDelete,
		interval:   interval,
		age:        age,
		logger:     logger,
	}
}

func (w *cleanupWorker) Run() {
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.wg.Add(1)

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				result := w.softDelete.CleanupOldDeleted(ctx, w.age)
				if len(result.Errors) > 0 {
					w.logger.Warn().
						Strs("errors", result.Errors).
						Msg("tombstone cleanup finished with errors")
				}
			}
		}
	}()
}

func (w *cleanupWorker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
}
