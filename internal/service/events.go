package service

import (
	"github.com/narmatov/boardsync/internal/logger"
	"github.com/narmatov/boardsync/models"
)

//go:generate mockgen -source=events.go -destination=../mock/event_sink_mock.go -package=mock

// EventSink receives fire-and-forget notifications for the UI collaborator.
// Implementations must be fast and non-blocking; the sync services call them
// inline. Delivery failures never propagate back: every emit goes through a
// panic-recovering wrapper.
type EventSink interface {
	ConflictDetected(table models.Table, recordID string, report models.ConflictReport)
	ConflictResolved(table models.Table, recordID string, decision models.ConflictDecision)
	SyncProgress(message string, percent int)
}

// NopEventSink discards all notifications. Useful when the daemon runs
// headless.
type NopEventSink struct{}

func (NopEventSink) ConflictDetected(models.Table, string, models.ConflictReport)    {}
func (NopEventSink) ConflictResolved(models.Table, string, models.ConflictDecision) {}
func (NopEventSink) SyncProgress(string, int)                                       {}

// emit shields callers from a misbehaving sink.
func emit(l *logger.Logger, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			l.Warn().Any("panic", r).Msg("event sink panicked, notification dropped")
		}
	}()
	fn()
}
