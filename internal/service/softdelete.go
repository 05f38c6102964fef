// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/narmatov/boardsync/internal/logger"
	"github.com/narmatov/boardsync/internal/store"
	"github.com/narmatov/boardsync/models"
)

type cascadeTarget struct {
	child  models.Table
	column string
}

// cascadeTargets lists, per table, the dependents a tombstone spreads to.
// Deleting a project tombstones every task and membership under it in one
// pass (subtasks included, they carry the project id too); deleting a task
// tombstones its whole subtask subtree.
var cascadeTargets = map[models.Table][]cascadeTarget{
	models.TableProjects: {
		{child: models.TableTasks, column: "project_id"},
		{child: models.TableMemberships, column: "project_id"},
	},
	models.TableTasks: {
		{child: models.TableTasks, column: "parent_task_id"},
	},
}

// parentRefs lists, per table, the columns pointing at records whose
// tombstone blocks a restore.
var parentRefs = map[models.Table][]cascadeTarget{
	models.TableTasks: {
		{child: models.TableProjects, column: "project_id"},
		{child: models.TableTasks, column: "parent_task_id"},
	},
	models.TableMemberships: {
		{child: models.TableProjects, column: "project_id"},
	},
}

type softDeleteManager struct {
	records store.RecordRepository
	queue   SyncQueue
	logger  *logger.Logger
}

// NewSoftDeleteManager constructs the tombstone manager. Deletions and
// restores are local writes plus an enqueued tombstone update; the remote
// side observes the tombstone field and conflict-resolves it independently.
func NewSoftDeleteManager(records store.RecordRepository, queue SyncQueue, logger *logger.Logger) SoftDeleteManager {
	return &softDeleteManager{
		records: records,
		queue:   queue,
		logger:  logger,
	}
}

func (m *softDeleteManager) SoftDelete(ctx context.Context, table models.Table, id string) error {
	rec, err := m.records.Get(ctx, table, id, models.IncludeAll)
	if err != nil {
		return fmt.Errorf("load record for soft delete: %w", err)
	}
	if !rec.FieldTime(models.FieldDeletedAt).IsZero() {
		return fmt.Errorf("%w: %s/%s", ErrAlreadyDeleted, table, id)
	}

	now := time.Now().UTC()
	if err = m.records.SetDeletedAt(ctx, table, id, &now); err != nil {
		return fmt.Errorf("stamp tombstone: %w", err)
	}
	if err = m.CascadeTombstone(ctx, table, id, now); err != nil {
		return err
	}

	// The queued update carries only the tombstone, not a hard delete, so
	// other clients observe the deletion and conflict-resolve it themselves.
	change := models.SyncChange{
		Table:     table,
		RecordID:  id,
		RemoteID:  rec.FieldString(models.FieldRemoteID),
		Operation: models.OpUpdate,
		Payload: models.FieldMap{
			models.FieldDeletedAt: now,
			models.FieldUpdatedAt: now,
		},
	}
	if err = m.queue.Enqueue(ctx, change); err != nil {
		return fmt.Errorf("enqueue tombstone update: %w", err)
	}

	m.logger.Info().Str("table", string(table)).Str("id", id).Msg("record soft deleted")
	return nil
}

func (m *softDeleteManager) Restore(ctx context.Context, table models.Table, id string) error {
	rec, err := m.records.Get(ctx, table, id, models.IncludeAll)
	if err != nil {
		return fmt.Errorf("load record for restore: %w", err)
	}

	deletedAt := rec.FieldTime(models.FieldDeletedAt)
	if deletedAt.IsZero() {
		return fmt.Errorf("%w: %s/%s", ErrNotDeleted, table, id)
	}

	if err = m.checkParentsLive(ctx, table, rec); err != nil {
		return err
	}

	if err = m.records.SetDeletedAt(ctx, table, id, nil); err != nil {
		return fmt.Errorf("clear tombstone: %w", err)
	}
	if err = m.CascadeRestore(ctx, table, id, deletedAt); err != nil {
		return err
	}

	now := time.Now().UTC()
	change := models.SyncChange{
		Table:     table,
		RecordID:  id,
		RemoteID:  rec.FieldString(models.FieldRemoteID),
		Operation: models.OpUpdate,
		Payload: models.FieldMap{
			models.FieldDeletedAt: nil,
			models.FieldUpdatedAt: now,
		},
	}
	if err = m.queue.Enqueue(ctx, change); err != nil {
		return fmt.Errorf("enqueue restore update: %w", err)
	}

	m.logger.Info().Str("table", string(table)).Str("id", id).Msg("record restored")
	return nil
}

// checkParentsLive rejects restoring a child whose parent is still
// tombstoned; the parent must be restored first.
func (m *softDeleteManager) checkParentsLive(ctx context.Context, table models.Table, rec models.FieldMap) error {
	for _, ref := range parentRefs[table] {
		parentID := rec.FieldString(ref.column)
		if parentID == "" {
			continue
		}
		parent, err := m.records.Get(ctx, ref.child, parentID, models.IncludeAll)
		if errors.Is(err, store.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return fmt.Errorf("load parent %s/%s: %w", ref.child, parentID, err)
		}
		if !parent.FieldTime(models.FieldDeletedAt).IsZero() {
			return fmt.Errorf("%w: %s/%s", ErrParentDeleted, ref.child, parentID)
		}
	}
	return nil
}

func (m *softDeleteManager) PermanentDelete(ctx context.Context, table models.Table, id string) error {
	rec, err := m.records.Get(ctx, table, id, models.IncludeAll)
	if err != nil {
		return fmt.Errorf("load record for permanent delete: %w", err)
	}

	// Dependent rows go with the record through the schema's cascading
	// foreign keys.
	if err = m.records.Delete(ctx, table, id); err != nil {
		return fmt.Errorf("permanent delete: %w", err)
	}

	change := models.SyncChange{
		Table:     table,
		RecordID:  id,
		RemoteID:  rec.FieldString(models.FieldRemoteID),
		Operation: models.OpDelete,
	}
	if err = m.queue.Enqueue(ctx, change); err != nil {
		return fmt.Errorf("enqueue delete: %w", err)
	}

	m.logger.Info().Str("table", string(table)).Str("id", id).Msg("record permanently deleted")
	return nil
}

func (m *softDeleteManager) CleanupOldDeleted(ctx context.Context, olderThan time.Duration) models.CleanupResult {
	result := models.CleanupResult{Deleted: map[models.Table]int{}}
	cutoff := time.Now().UTC().Add(-olderThan)

	// Children first: parents cascade-delete whatever children remain.
	order := []models.Table{models.TableTasks, models.TableMemberships, models.TableProjects}
	for _, table := range order {
		tombstones, err := m.records.ListDeletedBefore(ctx, table, cutoff)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("list %s tombstones: %v", table, err))
			continue
		}

		for _, rec := range tombstones {
			id := rec.FieldString(models.FieldID)
			if err = m.PermanentDelete(ctx, table, id); err != nil {
				if errors.Is(err, store.ErrRecordNotFound) {
					// Already gone via a parent cascade in this pass.
					continue
				}
				result.Errors = append(result.Errors, fmt.Sprintf("cleanup %s/%s: %v", table, id, err))
				continue
			}
			result.Deleted[table]++
		}
	}

	m.logger.Info().
		Any("deleted", result.Deleted).
		Int("errors", len(result.Errors)).
		Msg("tombstone cleanup finished")
	return result
}

func (m *softDeleteManager) CascadeTombstone(ctx context.Context, table models.Table, id string, at time.Time) error {
	for _, target := range cascadeTargets[table] {
		n, err := m.records.CascadeDeletedAt(ctx, target.child, target.column, id, at)
		if err != nil {
			return fmt.Errorf("cascade tombstone into %s: %w", target.child, err)
		}
		if n > 0 {
			m.logger.Debug().
				Str("table", string(target.child)).
				Int64("rows", n).
				Msg("tombstone cascaded")
		}
		// Self-referential links nest; the stamp must reach every level.
		if n > 0 && target.child == table {
			if err := m.cascadeDescendants(ctx, target, id, at, m.CascadeTombstone); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *softDeleteManager) CascadeRestore(ctx context.Context, table models.Table, id string, at time.Time) error {
	for _, target := range cascadeTargets[table] {
		n, err := m.records.CascadeRestore(ctx, target.child, target.column, id, at)
		if err != nil {
			return fmt.Errorf("cascade restore into %s: %w", target.child, err)
		}
		if n > 0 {
			m.logger.Debug().
				Str("table", string(target.child)).
				Int64("rows", n).
				Msg("tombstone cascade restored")
		}
		if n > 0 && target.child == table {
			if err := m.cascadeDescendants(ctx, target, id, at, m.CascadeRestore); err != nil {
				return err
			}
		}
	}
	return nil
}

// cascadeDescendants applies op one nesting level down from id through a
// self-referential link, recursing until a level stamps no rows.
func (m *softDeleteManager) cascadeDescendants(
	ctx context.Context,
	target cascadeTarget,
	id string,
	at time.Time,
	op func(context.Context, models.Table, string, time.Time) error,
) error {
	children, err := m.records.ListWhere(ctx, target.child, map[string]any{target.column: id}, models.IncludeAll)
	if err != nil {
		return fmt.Errorf("list %s children of %s: %w", target.child, id, err)
	}
	for _, child := range children {
		if err := op(ctx, target.child, child.FieldString(models.FieldID), at); err != nil {
			return err
		}
	}
	return nil
}
