// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"encoding/json"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/narmatov/boardsync/internal/logger"
	"github.com/narmatov/boardsync/internal/store"
	"github.com/narmatov/boardsync/models"
)

type conflictResolver struct {
	mapping SchemaMapping
	audit   store.AuditRepository
	events  EventSink
	logger  *logger.Logger
}

// NewConflictResolver constructs the version-based, last-write-wins resolver.
// mapping translates remote field names to local columns before the
// field-level diff; audit receives one immutable entry per genuine conflict.
func NewConflictResolver(mapping SchemaMapping, audit store.AuditRepository, events EventSink, logger *logger.Logger) ConflictResolver {
	return &conflictResolver{
		mapping: mapping,
		audit:   audit,
		events:  events,
		logger:  logger,
	}
}

func (r *conflictResolver) Detect(table models.Table, local, remote models.RecordState, comparableFields []string) models.ConflictReport {
	report := models.ConflictReport{
		LocalVersion:    local.Version,
		RemoteVersion:   remote.Version,
		LocalUpdatedAt:  local.UpdatedAt,
		RemoteUpdatedAt: remote.UpdatedAt,
	}

	// Local already current or ahead.
	if remote.Version <= local.Version {
		report.Decision = models.LocalWins
		return report
	}

	remoteFields := r.mapping.For(table).LocalRow(remote.Fields)

	fields := comparableFields
	if len(fields) == 0 {
		fields = defaultComparableFields(local.Fields)
	}

	for _, name := range fields {
		if !equalFieldValues(local.Fields[name], remoteFields[name]) {
			report.ConflictingFields = append(report.ConflictingFields, name)
		}
	}
	sort.Strings(report.ConflictingFields)

	// Trivial version advance: the remote side is newer but carries no
	// observable difference.
	if len(report.ConflictingFields) == 0 {
		report.Decision = models.RemoteWins
		return report
	}

	report.HasConflict = true
	report.Decision = lastWriteWins(local.UpdatedAt, remote.UpdatedAt)
	return report
}

// lastWriteWins applies the timestamp tie-break for a genuine field conflict:
// strictly later local wins, a missing timestamp defers to the side that has
// one, and an exact tie goes to the remote side (server authority).
func lastWriteWins(localAt, remoteAt time.Time) models.ConflictDecision {
	switch {
	case localAt.IsZero() && remoteAt.IsZero():
		return models.RemoteWins
	case localAt.IsZero():
		return models.RemoteWins
	case remoteAt.IsZero():
		return models.LocalWins
	case localAt.After(remoteAt):
		return models.LocalWins
	default:
		return models.RemoteWins
	}
}

func (r *conflictResolver) Resolve(table models.Table, local, remote models.RecordState, decision models.ConflictDecision) models.RecordState {
	if decision == models.NeedsMerge {
		r.logger.Warn().
			Str("table", string(table)).
			Msg("needs_merge decision is not implemented, falling back to remote_wins")
		decision = models.RemoteWins
	}

	if decision == models.LocalWins {
		return models.RecordState{
			Fields:    comparableSubset(local.Fields),
			Version:   maxVersion(local.Version, remote.Version) + 1,
			UpdatedAt: local.UpdatedAt,
		}
	}

	return models.RecordState{
		Fields:    comparableSubset(r.mapping.For(table).LocalRow(remote.Fields)),
		Version:   remote.Version + 1,
		UpdatedAt: remote.UpdatedAt,
	}
}

func (r *conflictResolver) LogConflict(ctx context.Context, table models.Table, recordID string, local, remote models.RecordState, report models.ConflictReport) {
	entry := models.ConflictLogEntry{
		Table:         table,
		RecordID:      recordID,
		LocalVersion:  local.Version,
		RemoteVersion: remote.Version,
		Resolution:    report.Decision,
		LocalData:     snapshotJSON(local.Fields),
		RemoteData:    snapshotJSON(remote.Fields),
		DetectedAt:    time.Now().UTC(),
	}

	if err := r.audit.AppendConflict(ctx, entry); err != nil {
		r.logger.Err(err).
			Str("table", string(table)).
			Str("record_id", recordID).
			Msg("failed to log conflict, continuing")
	}
}

func (r *conflictResolver) Handle(ctx context.Context, table models.Table, recordID string, local, remote models.RecordState) models.ConflictResolution {
	report := r.Detect(table, local, remote, nil)

	if report.HasConflict {
		r.LogConflict(ctx, table, recordID, local, remote, report)
		emit(r.logger, func() { r.events.ConflictDetected(table, recordID, report) })
	}

	resolved := r.Resolve(table, local, remote, report.Decision)

	if report.HasConflict {
		emit(r.logger, func() { r.events.ConflictResolved(table, recordID, report.Decision) })
	}

	return models.ConflictResolution{
		HasConflict: report.HasConflict,
		Decision:    report.Decision,
		Resolved:    resolved,
	}
}

func defaultComparableFields(fields models.FieldMap) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		if !models.IsMetadataField(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func comparableSubset(fields models.FieldMap) models.FieldMap {
	out := make(models.FieldMap, len(fields))
	for name, v := range fields {
		if !models.IsMetadataField(name) {
			out[name] = v
		}
	}
	return out
}

func maxVersion(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func snapshotJSON(fields models.FieldMap) string {
	b, err := json.Marshal(fields)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// equalFieldValues compares one field across the two sides after
// normalization: nil and missing are equivalent, dates compare by instant
// regardless of representation, numeric types compare by value, and strings
// holding serialized arrays or objects compare structurally.
func equalFieldValues(a, b any) bool {
	av := normalizeFieldValue(a)
	bv := normalizeFieldValue(b)

	if av == nil || bv == nil {
		return av == nil && bv == nil
	}

	if at, ok := av.(time.Time); ok {
		bt, ok := bv.(time.Time)
		return ok && at.Equal(bt)
	}

	if af, ok := av.(float64); ok {
		bf, ok := bv.(float64)
		return ok && af == bf
	}

	return reflect.DeepEqual(av, bv)
}

func normalizeFieldValue(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case []byte:
		return normalizeString(string(t))
	case string:
		return normalizeString(t)
	case time.Time:
		return t.UTC()
	case int:
		return float64(t)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	case float32:
		return float64(t)
	case float64:
		return t
	case bool:
		return t
	default:
		return v
	}
}

func normalizeString(s string) any {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC()
	}

	trimmed := strings.TrimSpace(s)
	if strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "{") {
		var parsed any
		if err := json.Unmarshal([]byte(trimmed), &parsed); err == nil {
			return parsed
		}
	}

	return s
}
