package models

import "time"

// Table identifies a syncable local table / remote collection pair.
type Table string

const (
	TableProjects    Table = "projects"
	TableTasks       Table = "tasks"
	TableMemberships Table = "memberships"
)

// DeletionFilter selects how tombstoned rows participate in a read.
// Every read path must pass one explicitly; there is no implicit default.
type DeletionFilter int

const (
	// ExcludeDeleted returns only live rows (deleted_at IS NULL).
	ExcludeDeleted DeletionFilter = iota
	// OnlyDeleted returns only tombstoned rows.
	OnlyDeleted
	// IncludeAll returns live and tombstoned rows alike.
	IncludeAll
)

// FieldMap is a column-name keyed view of a single record. The sync services
// operate on field maps so that one code path serves every syncable table.
type FieldMap map[string]any

// Clone returns a shallow copy of the field map.
func (f FieldMap) Clone() FieldMap {
	out := make(FieldMap, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Metadata column names shared by every syncable table. These are excluded
// from field-level conflict comparison.
const (
	FieldID           = "id"
	FieldRemoteID     = "remote_id"
	FieldSyncVersion  = "sync_version"
	FieldCreatedAt    = "created_at"
	FieldUpdatedAt    = "updated_at"
	FieldDeletedAt    = "deleted_at"
	FieldLastSyncedAt = "last_synced_at"
)

// MetadataFields lists the columns that carry sync bookkeeping rather than
// user data.
var MetadataFields = []string{
	FieldID, FieldRemoteID, FieldSyncVersion,
	FieldCreatedAt, FieldUpdatedAt, FieldLastSyncedAt,
}

// IsMetadataField reports whether name is a bookkeeping column. Note that
// deleted_at is NOT metadata: tombstones propagate through the same
// conflict-resolution path as any other field.
func IsMetadataField(name string) bool {
	for _, m := range MetadataFields {
		if m == name {
			return true
		}
	}
	return false
}

// Project is the container entity: a kanban board owned by a user and shared
// through memberships.
type Project struct {
	ID           string     `json:"id"`
	RemoteID     string     `json:"remote_id,omitempty"`
	OwnerID      string     `json:"owner_id"`
	Name         string     `json:"name"`
	Description  string     `json:"description,omitempty"`
	Color        string     `json:"color,omitempty"`
	Position     int64      `json:"position"`
	SyncVersion  int64      `json:"sync_version"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
	LastSyncedAt *time.Time `json:"last_synced_at,omitempty"`
}

// Task belongs to a project and may nest under a parent task.
type Task struct {
	ID           string     `json:"id"`
	RemoteID     string     `json:"remote_id,omitempty"`
	ProjectID    string     `json:"project_id"`
	ParentTaskID *string    `json:"parent_task_id,omitempty"`
	Title        string     `json:"title"`
	Notes        string     `json:"notes,omitempty"`
	Status       string     `json:"status"`
	Priority     int64      `json:"priority"`
	Position     int64      `json:"position"`
	DueAt        *time.Time `json:"due_at,omitempty"`
	Labels       string     `json:"labels,omitempty"` // JSON-serialized string array
	SyncVersion  int64      `json:"sync_version"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
	LastSyncedAt *time.Time `json:"last_synced_at,omitempty"`
}

// Membership joins a user to a project with a role.
type Membership struct {
	ID           string     `json:"id"`
	RemoteID     string     `json:"remote_id,omitempty"`
	ProjectID    string     `json:"project_id"`
	UserID       string     `json:"user_id"`
	Role         string     `json:"role"`
	SyncVersion  int64      `json:"sync_version"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
	LastSyncedAt *time.Time `json:"last_synced_at,omitempty"`
}
