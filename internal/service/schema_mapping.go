package service

import "github.com/narmatov/boardsync/models"

// FieldMapping is an explicit bidirectional translation between local column
// names and the remote backend's field-naming convention for one table.
// Fields absent from the mapping do not cross the wire in either direction;
// record metadata (local id, remote link, version counter) is handled
// explicitly by the callers, never through the mapping.
type FieldMapping struct {
	toRemote map[string]string
	toLocal  map[string]string
}

// NewFieldMapping builds a mapping from local-name to remote-name pairs.
func NewFieldMapping(localToRemote map[string]string) *FieldMapping {
	m := &FieldMapping{
		toRemote: make(map[string]string, len(localToRemote)),
		toLocal:  make(map[string]string, len(localToRemote)),
	}
	for local, remote := range localToRemote {
		m.toRemote[local] = remote
		m.toLocal[remote] = local
	}
	return m
}

// RemoteRow translates the mapped fields of a local row into remote names.
func (m *FieldMapping) RemoteRow(local models.FieldMap) models.FieldMap {
	out := make(models.FieldMap, len(local))
	for name, v := range local {
		if remote, ok := m.toRemote[name]; ok {
			out[remote] = v
		}
	}
	return out
}

// LocalRow translates the mapped fields of a remote row into local names.
func (m *FieldMapping) LocalRow(remote models.FieldMap) models.FieldMap {
	out := make(models.FieldMap, len(remote))
	for name, v := range remote {
		if local, ok := m.toLocal[name]; ok {
			out[local] = v
		}
	}
	return out
}

// LocalName returns the local column for a remote field name.
func (m *FieldMapping) LocalName(remote string) (string, bool) {
	local, ok := m.toLocal[remote]
	return local, ok
}

// RemoteName returns the remote field for a local column name.
func (m *FieldMapping) RemoteName(local string) (string, bool) {
	remote, ok := m.toRemote[local]
	return remote, ok
}

// SchemaMapping holds the per-table field mappings shared by the resolver,
// the queue and the engine.
type SchemaMapping map[models.Table]*FieldMapping

// For returns the mapping for table, or an empty identity-free mapping when
// the table is unknown.
func (s SchemaMapping) For(table models.Table) *FieldMapping {
	if m, ok := s[table]; ok {
		return m
	}
	return NewFieldMapping(nil)
}

// DefaultSchemaMapping returns the mapping for the stock remote backend.
// Timestamps and the tombstone keep their names; most domain fields differ
// because the backend exposes a generic row vocabulary (name/body/state/
// sort_order/tags) rather than the kanban-specific local schema.
func DefaultSchemaMapping() SchemaMapping {
	return SchemaMapping{
		models.TableProjects: NewFieldMapping(map[string]string{
			"owner_id":    "owner_id",
			"name":        "name",
			"description": "body",
			"color":       "color",
			"position":    "sort_order",
			"created_at":  "created_at",
			"updated_at":  "updated_at",
			"deleted_at":  "deleted_at",
		}),
		models.TableTasks: NewFieldMapping(map[string]string{
			"project_id":     "project_id",
			"parent_task_id": "parent_id",
			"title":          "name",
			"notes":          "body",
			"status":         "state",
			"priority":       "priority",
			"position":       "sort_order",
			"due_at":         "due_at",
			"labels":         "tags",
			"created_at":     "created_at",
			"updated_at":     "updated_at",
			"deleted_at":     "deleted_at",
		}),
		models.TableMemberships: NewFieldMapping(map[string]string{
			"project_id": "project_id",
			"user_id":    "user_id",
			"role":       "role",
			"created_at": "created_at",
			"updated_at": "updated_at",
			"deleted_at": "deleted_at",
		}),
	}
}

// collectionFor names the remote collection backing a local table.
func collectionFor(table models.Table) string {
	return string(table)
}
