// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/narmatov/boardsync/internal/adapter"
	"github.com/narmatov/boardsync/internal/config"
	"github.com/narmatov/boardsync/internal/logger"
	"github.com/narmatov/boardsync/internal/store"
	"github.com/narmatov/boardsync/models"
)

type syncEngine struct {
	records     store.RecordRepository
	checkpoints store.CheckpointStore
	queue       SyncQueue
	resolver    ConflictResolver
	softDelete  SoftDeleteManager
	remote      adapter.RemoteClient
	network     adapter.NetworkStatus
	mapping     SchemaMapping
	events      EventSink
	cfg         config.Sync
	logger      *logger.Logger

	inProgress atomic.Bool
}

// NewSyncEngine constructs the remote-pull engine. Every run is serialized by
// an in-memory flag backed by the persisted checkpoint's in-progress bit, and
// returns a [models.SyncResult] instead of failing part-way.
func NewSyncEngine(
	records store.RecordRepository,
	checkpoints store.CheckpointStore,
	queue SyncQueue,
	resolver ConflictResolver,
	softDelete SoftDeleteManager,
	remote adapter.RemoteClient,
	network adapter.NetworkStatus,
	mapping SchemaMapping,
	events EventSink,
	cfg config.Sync,
	logger *logger.Logger,
) SyncEngine {
	if cfg.ChildBatchSize <= 0 {
		cfg.ChildBatchSize = config.DefaultChildBatchSize
	}

	return &syncEngine{
		records:     records,
		checkpoints: checkpoints,
		queue:       queue,
		resolver:    resolver,
		softDelete:  softDelete,
		remote:      remote,
		network:     network,
		mapping:     mapping,
		events:      events,
		cfg:         cfg,
		logger:      logger,
	}
}

func (e *syncEngine) IsSyncInProgress() bool {
	return e.inProgress.Load()
}

func (e *syncEngine) NeedsFullSync(ctx context.Context) (bool, error) {
	cp, err := e.checkpoints.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("load checkpoint: %w", err)
	}
	return cp.LastFullSyncAt == nil, nil
}

func (e *syncEngine) PerformSync(ctx context.Context, userID string) *models.SyncResult {
	needsFull, err := e.NeedsFullSync(ctx)
	if err != nil {
		result := models.NewSyncResult()
		result.AddError(err.Error())
		return result
	}
	if needsFull {
		return e.PerformFullSync(ctx, userID)
	}
	return e.PerformIncrementalSync(ctx, userID)
}

// begin runs the preflight guards. On success it returns a release function
// that must be deferred; on failure it returns a nil release and a result
// already carrying the short-circuit error.
func (e *syncEngine) begin(ctx context.Context) (*models.SyncResult, func()) {
	result := models.NewSyncResult()

	if !e.network.IsConfigured() {
		result.AddError(adapter.ErrNotConfigured.Error())
		return result, nil
	}
	if e.network.ConnectionStatus() != adapter.StatusOnline {
		result.AddError(ErrRemoteOffline.Error())
		return result, nil
	}
	if !e.inProgress.CompareAndSwap(false, true) {
		result.AddError(ErrSyncInProgress.Error())
		return result, nil
	}

	cp, err := e.checkpoints.Load(ctx)
	if err != nil {
		e.inProgress.Store(false)
		result.AddError(fmt.Sprintf("load checkpoint: %v", err))
		return result, nil
	}
	if cp.InProgress {
		// Another process holds the persisted guard.
		e.inProgress.Store(false)
		result.AddError(ErrSyncInProgress.Error())
		return result, nil
	}
	if err = e.checkpoints.SetInProgress(ctx, true); err != nil {
		e.inProgress.Store(false)
		result.AddError(fmt.Sprintf("acquire sync guard: %v", err))
		return result, nil
	}

	release := func() {
		if err := e.checkpoints.SetInProgress(context.Background(), false); err != nil {
			e.logger.Err(err).Msg("failed to release persisted sync guard")
		}
		e.inProgress.Store(false)
	}
	return result, release
}

func (e *syncEngine) PerformFullSync(ctx context.Context, userID string) *models.SyncResult {
	result, release := e.begin(ctx)
	if release == nil {
		return result
	}
	defer release()

	started := time.Now()
	defer func() { result.Duration = time.Since(started) }()

	e.progress("full sync started", 0)
	e.logger.Info().Str("user_id", userID).Msg("full sync started")

	memberships, err := e.remote.Select(ctx, collectionFor(models.TableMemberships), adapter.RowFilter{
		Eq: map[string]any{"user_id": userID},
	})
	if err != nil {
		result.AddError(fmt.Sprintf("fetch memberships: %v", err))
		return result
	}

	projectIDs := collectRemoteRefs(memberships, "project_id")

	var projects []models.FieldMap
	if len(projectIDs) > 0 {
		projects, err = e.remote.Select(ctx, collectionFor(models.TableProjects), adapter.RowFilter{
			In: map[string][]any{"id": projectIDs},
		})
		if err != nil {
			result.AddError(fmt.Sprintf("fetch projects: %v", err))
			return result
		}
	}

	// Parents strictly before the rows referencing them.
	e.upsertRows(ctx, models.TableProjects, projects, result)
	e.progress("projects synced", 25)

	e.upsertRows(ctx, models.TableMemberships, memberships, result)
	e.progress("memberships synced", 50)

	e.syncTasks(ctx, projectIDs, nil, result)
	e.progress("tasks synced", 75)

	if err = e.queue.ProcessQueue(ctx); err != nil {
		result.AddError(fmt.Sprintf("drain queue: %v", err))
	}
	e.progress("queue drained", 90)

	now := time.Now().UTC()
	if err = e.checkpoints.SetFullSyncAt(ctx, now); err != nil {
		result.AddError(fmt.Sprintf("advance full checkpoint: %v", err))
	}
	if err = e.checkpoints.SetIncrementalSyncAt(ctx, now); err != nil {
		result.AddError(fmt.Sprintf("advance incremental checkpoint: %v", err))
	}

	e.progress("full sync complete", 100)
	e.logger.Info().
		Bool("success", result.Success).
		Int("errors", len(result.Errors)).
		Dur("duration", time.Since(started)).
		Msg("full sync finished")
	return result
}

func (e *syncEngine) PerformIncrementalSync(ctx context.Context, userID string) *models.SyncResult {
	needsFull, err := e.NeedsFullSync(ctx)
	if err != nil {
		result := models.NewSyncResult()
		result.AddError(err.Error())
		return result
	}
	if needsFull {
		return e.PerformFullSync(ctx, userID)
	}

	result, release := e.begin(ctx)
	if release == nil {
		return result
	}
	defer release()

	started := time.Now()
	defer func() { result.Duration = time.Since(started) }()

	cp, err := e.checkpoints.Load(ctx)
	if err != nil {
		result.AddError(fmt.Sprintf("load checkpoint: %v", err))
		return result
	}
	since := cp.LastFullSyncAt
	if cp.LastIncrementalSyncAt != nil {
		since = cp.LastIncrementalSyncAt
	}

	e.progress("incremental sync started", 0)
	e.logger.Info().Str("user_id", userID).Time("since", *since).Msg("incremental sync started")

	memberships, err := e.remote.Select(ctx, collectionFor(models.TableMemberships), adapter.RowFilter{
		Eq:           map[string]any{"user_id": userID},
		UpdatedAfter: since,
	})
	if err != nil {
		result.AddError(fmt.Sprintf("fetch memberships: %v", err))
		return result
	}

	linkedIDs, newIDs, err := e.knownProjectRefs(ctx, memberships)
	if err != nil {
		result.AddError(err.Error())
		return result
	}

	var projects []models.FieldMap
	if len(linkedIDs) > 0 {
		projects, err = e.remote.Select(ctx, collectionFor(models.TableProjects), adapter.RowFilter{
			In:           map[string][]any{"id": linkedIDs},
			UpdatedAfter: since,
		})
		if err != nil {
			result.AddError(fmt.Sprintf("fetch projects: %v", err))
			return result
		}
	}
	// A membership added since the checkpoint can reference a project whose
	// own row is older than the checkpoint; the since filter would hide it
	// on every run, so unknown project ids are fetched unfiltered.
	if len(newIDs) > 0 {
		fresh, err := e.remote.Select(ctx, collectionFor(models.TableProjects), adapter.RowFilter{
			In: map[string][]any{"id": newIDs},
		})
		if err != nil {
			result.AddError(fmt.Sprintf("fetch projects: %v", err))
			return result
		}
		projects = append(projects, fresh...)
	}
	projectIDs := append(linkedIDs, newIDs...)

	e.upsertRows(ctx, models.TableProjects, projects, result)
	e.progress("projects synced", 25)

	e.upsertRows(ctx, models.TableMemberships, memberships, result)
	e.progress("memberships synced", 50)

	e.syncTasks(ctx, projectIDs, since, result)
	e.progress("tasks synced", 75)

	if err = e.queue.ProcessQueue(ctx); err != nil {
		result.AddError(fmt.Sprintf("drain queue: %v", err))
	}
	e.progress("queue drained", 90)

	if err = e.checkpoints.SetIncrementalSyncAt(ctx, time.Now().UTC()); err != nil {
		result.AddError(fmt.Sprintf("advance incremental checkpoint: %v", err))
	}

	e.progress("incremental sync complete", 100)
	e.logger.Info().
		Bool("success", result.Success).
		Int("errors", len(result.Errors)).
		Dur("duration", time.Since(started)).
		Msg("incremental sync finished")
	return result
}

// syncTasks fetches the child rows scoped to the known parent remote ids in
// fixed-size batches to bound request size. since is nil for a bootstrap.
func (e *syncEngine) syncTasks(ctx context.Context, projectIDs []any, since *time.Time, result *models.SyncResult) {
	for start := 0; start < len(projectIDs); start += e.cfg.ChildBatchSize {
		end := start + e.cfg.ChildBatchSize
		if end > len(projectIDs) {
			end = len(projectIDs)
		}

		tasks, err := e.remote.Select(ctx, collectionFor(models.TableTasks), adapter.RowFilter{
			In:           map[string][]any{"project_id": projectIDs[start:end]},
			UpdatedAfter: since,
		})
		if err != nil {
			result.AddError(fmt.Sprintf("fetch tasks batch: %v", err))
			continue
		}

		// Parent tasks before their subtasks, so the self-referential link
		// resolves within one batch.
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].FieldString("parent_id") == "" && tasks[j].FieldString("parent_id") != ""
		})
		e.upsertRows(ctx, models.TableTasks, tasks, result)
	}
}

func (e *syncEngine) upsertRows(ctx context.Context, table models.Table, rows []models.FieldMap, result *models.SyncResult) {
	for _, row := range rows {
		e.upsertLocalEntity(ctx, table, row, result)
	}
}

// upsertLocalEntity folds one remote row into the local store: resolve
// against the remote-linked record if one exists, otherwise adopt a matching
// never-synced local record or create a fresh one. Failures accumulate in
// result; the batch continues.
func (e *syncEngine) upsertLocalEntity(ctx context.Context, table models.Table, remoteRow models.FieldMap, result *models.SyncResult) {
	remoteID := remoteRow.FieldString("id")
	if remoteID == "" {
		result.AddError(fmt.Sprintf("%s: remote row without id", table))
		return
	}

	remote := models.RecordState{
		Fields:    remoteRow,
		Version:   remoteRow.FieldInt64("version"),
		UpdatedAt: remoteRow.FieldTime("updated_at"),
	}

	local, err := e.records.FindByRemoteID(ctx, table, remoteID)
	switch {
	case err == nil:
		e.applyRemoteToExisting(ctx, table, local, remote, result)
	case errors.Is(err, store.ErrRecordNotFound):
		e.adoptOrCreate(ctx, table, remoteID, remote, result)
	default:
		result.AddError(fmt.Sprintf("%s/%s: lookup by remote id: %v", table, remoteID, err))
	}
}

func (e *syncEngine) applyRemoteToExisting(ctx context.Context, table models.Table, localRec models.FieldMap, remote models.RecordState, result *models.SyncResult) {
	id := localRec.FieldString(models.FieldID)
	local := models.RecordState{
		Fields:    localRec,
		Version:   localRec.FieldInt64(models.FieldSyncVersion),
		UpdatedAt: localRec.FieldTime(models.FieldUpdatedAt),
	}

	res := e.resolver.Handle(ctx, table, id, local, remote)
	if res.HasConflict {
		if res.Decision == models.LocalWins {
			result.LocalWinCount++
		} else {
			result.RemoteWinCount++
		}
	}

	// Write only when the remote side is strictly newer or a real conflict
	// was resolved; anything else would be a redundant local write.
	if remote.Version <= local.Version && !res.HasConflict {
		return
	}

	write := res.Resolved.Fields.Clone()
	if res.Decision != models.LocalWins {
		if err := e.resolveParentRefs(ctx, table, write); err != nil {
			result.AddError(fmt.Sprintf("%s/%s: %v", table, id, err))
			return
		}
		write[models.FieldLastSyncedAt] = time.Now().UTC()
	}
	write[models.FieldSyncVersion] = res.Resolved.Version
	if !res.Resolved.UpdatedAt.IsZero() {
		write[models.FieldUpdatedAt] = res.Resolved.UpdatedAt
	}

	prevDeleted := localRec.FieldTime(models.FieldDeletedAt)
	newDeleted := write.FieldTime(models.FieldDeletedAt)

	if err := e.records.UpdateFields(ctx, table, id, write); err != nil {
		result.AddError(fmt.Sprintf("%s/%s: apply resolved fields: %v", table, id, err))
		return
	}
	result.Synced[table]++

	// Reproduce the remote side's tombstone cascade locally so "deleted
	// together" keeps meaning the same instant on every client.
	switch {
	case prevDeleted.IsZero() && !newDeleted.IsZero():
		if err := e.softDelete.CascadeTombstone(ctx, table, id, newDeleted); err != nil {
			result.AddError(fmt.Sprintf("%s/%s: %v", table, id, err))
		}
	case !prevDeleted.IsZero() && newDeleted.IsZero():
		if err := e.softDelete.CascadeRestore(ctx, table, id, prevDeleted); err != nil {
			result.AddError(fmt.Sprintf("%s/%s: %v", table, id, err))
		}
	}
}

func (e *syncEngine) adoptOrCreate(ctx context.Context, table models.Table, remoteID string, remote models.RecordState, result *models.SyncResult) {
	localFields := e.mapping.For(table).LocalRow(remote.Fields)
	if err := e.resolveParentRefs(ctx, table, localFields); err != nil {
		result.AddError(fmt.Sprintf("%s/%s: %v", table, remoteID, err))
		return
	}

	// A record created locally before ever syncing has no remote link yet;
	// match it by natural key instead of duplicating it.
	if adopted := e.adoptByNaturalKey(ctx, table, remoteID, localFields, remote, result); adopted {
		return
	}

	now := time.Now().UTC()
	createdAt := remote.Fields.FieldTime("created_at")
	if createdAt.IsZero() {
		createdAt = now
	}
	updatedAt := remote.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = now
	}

	fields := localFields.Clone()
	fields[models.FieldID] = uuid.NewString()
	fields[models.FieldRemoteID] = remoteID
	fields[models.FieldSyncVersion] = remote.Version
	fields[models.FieldCreatedAt] = createdAt
	fields[models.FieldUpdatedAt] = updatedAt
	fields[models.FieldLastSyncedAt] = now
	if deletedAt := remote.Fields.FieldTime("deleted_at"); !deletedAt.IsZero() {
		fields[models.FieldDeletedAt] = deletedAt
	} else {
		fields[models.FieldDeletedAt] = nil
	}

	if err := e.records.Insert(ctx, table, fields); err != nil {
		result.AddError(fmt.Sprintf("%s/%s: create local record: %v", table, remoteID, err))
		return
	}
	result.Synced[table]++
}

func (e *syncEngine) adoptByNaturalKey(ctx context.Context, table models.Table, remoteID string, localFields models.FieldMap, remote models.RecordState, result *models.SyncResult) bool {
	spec, err := store.SpecFor(table)
	if err != nil {
		return false
	}

	key := make(models.FieldMap, len(spec.NaturalKey))
	for _, col := range spec.NaturalKey {
		v, ok := localFields[col]
		if !ok || v == nil {
			return false
		}
		key[col] = v
	}

	rec, err := e.records.FindUnlinkedByNaturalKey(ctx, table, key)
	if errors.Is(err, store.ErrRecordNotFound) {
		return false
	}
	if err != nil {
		result.AddError(fmt.Sprintf("%s/%s: natural key lookup: %v", table, remoteID, err))
		return true
	}

	id := rec.FieldString(models.FieldID)
	if err = e.records.LinkRemote(ctx, table, id, remoteID, time.Now().UTC()); err != nil {
		result.AddError(fmt.Sprintf("%s/%s: link local-first record: %v", table, id, err))
		return true
	}
	e.logger.Info().
		Str("table", string(table)).
		Str("id", id).
		Str("remote_id", remoteID).
		Msg("local-first record linked to remote counterpart")

	rec[models.FieldRemoteID] = remoteID
	e.applyRemoteToExisting(ctx, table, rec, remote, result)
	return true
}

// resolveParentRefs rewrites remote parent references into local ids. The
// remote backend keys rows by its own ids, so a task row arrives pointing at
// a remote project id that must be looked up locally before the write.
func (e *syncEngine) resolveParentRefs(ctx context.Context, table models.Table, fields models.FieldMap) error {
	translate := func(column string, parentTable models.Table) error {
		ref := fields.FieldString(column)
		if ref == "" {
			return nil
		}
		parent, err := e.records.FindByRemoteID(ctx, parentTable, ref)
		if errors.Is(err, store.ErrRecordNotFound) {
			return fmt.Errorf("parent %s %s not found locally", parentTable, ref)
		}
		if err != nil {
			return fmt.Errorf("resolve parent %s %s: %w", parentTable, ref, err)
		}
		fields[column] = parent.FieldString(models.FieldID)
		return nil
	}

	switch table {
	case models.TableTasks:
		if err := translate("project_id", models.TableProjects); err != nil {
			return err
		}
		return translate("parent_task_id", models.TableTasks)
	case models.TableMemberships:
		return translate("project_id", models.TableProjects)
	default:
		return nil
	}
}

// knownProjectRefs splits the project remote ids relevant to an incremental
// run: linked ids already held by a local project, and new ids carried only
// by freshly fetched membership rows. New ids have no local row yet, so their
// projects must be fetched without a checkpoint bound.
func (e *syncEngine) knownProjectRefs(ctx context.Context, memberships []models.FieldMap) (linked, unlinked []any, err error) {
	local, err := e.records.List(ctx, models.TableProjects, models.IncludeAll)
	if err != nil {
		return nil, nil, fmt.Errorf("list local projects: %w", err)
	}

	seen := make(map[string]struct{})
	for _, rec := range local {
		id := rec.FieldString(models.FieldRemoteID)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		linked = append(linked, id)
	}
	for _, row := range memberships {
		id := row.FieldString("project_id")
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unlinked = append(unlinked, id)
	}
	return linked, unlinked, nil
}

func collectRemoteRefs(rows []models.FieldMap, column string) []any {
	seen := make(map[string]struct{}, len(rows))
	out := make([]any, 0, len(rows))
	for _, row := range rows {
		v := row.FieldString(column)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func (e *syncEngine) progress(message string, percent int) {
	emit(e.logger, func() { e.events.SyncProgress(message, percent) })
}
