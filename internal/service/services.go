package service

import (
	"context"

	"github.com/narmatov/boardsync/internal/adapter"
	"github.com/narmatov/boardsync/internal/config"
	"github.com/narmatov/boardsync/internal/logger"
	"github.com/narmatov/boardsync/internal/store"
)

// Services bundles the constructed sync services for wiring.
type Services struct {
	Resolver   ConflictResolver
	Queue      SyncQueue
	SoftDelete SoftDeleteManager
	Engine     SyncEngine
	SyncJob    SyncJob
}

// NewServices wires the sync core together around the shared schema mapping.
// A sync guard left persisted by a crashed run is cleared here, at startup,
// so the first sync of the new process is not refused.
func NewServices(
	storages *store.Storages,
	remote adapter.RemoteClient,
	network adapter.NetworkStatus,
	events EventSink,
	cfg config.Sync,
	logger *logger.Logger,
) *Services {
	if events == nil {
		events = NopEventSink{}
	}

	mapping := DefaultSchemaMapping()
	resolver := NewConflictResolver(mapping, storages.Audit, events, logger)
	queue := NewSyncQueue(storages.Queue, storages.Records, storages.Audit, remote, network, mapping, NewScheduler(), cfg, logger)
	softDelete := NewSoftDeleteManager(storages.Records, queue, logger)
	engine := NewSyncEngine(storages.Records, storages.Checkpoints, queue, resolver, softDelete, remote, network, mapping, events, cfg, logger)

	if err := storages.Checkpoints.SetInProgress(context.Background(), false); err != nil {
		logger.Err(err).Msg("failed to clear stale sync guard at startup")
	}

	return &Services{
		Resolver:   resolver,
		Queue:      queue,
		SoftDelete: softDelete,
		Engine:     engine,
		SyncJob:    NewSyncJob(engine, logger),
	}
}
