// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"

	"github.com/narmatov/boardsync/internal/config"
	"github.com/narmatov/boardsync/internal/service"
)

// syncWorker adapts the periodic sync job to the [Worker] interface.
type syncWorker struct {
	job    service.SyncJob
	userID string
	cfg    config.Workers
}

// NewSyncWorker wraps the background sync job as a worker syncing the given
// user's boards every cfg.SyncInterval.
func NewSyncWorker(job service.SyncJob, userID string, cfg config.Workers) Worker {
	return &syncWorker{job: job, userID: userID, cfg: cfg}
}

func (w *syncWorker) Run() {
	w.job.Start(context.Background(), w.userID, w.cfg.SyncInterval)
}

func (w *syncWorker) Stop() {
	w.job.Stop()
}
