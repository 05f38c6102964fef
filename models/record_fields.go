package models

import "time"

// Fields returns the column-keyed view of the project used by the sync
// services and the record repository.
func (p Project) Fields() FieldMap {
	return FieldMap{
		FieldID:           p.ID,
		FieldRemoteID:     p.RemoteID,
		"owner_id":        p.OwnerID,
		"name":            p.Name,
		"description":     p.Description,
		"color":           p.Color,
		"position":        p.Position,
		FieldSyncVersion:  p.SyncVersion,
		FieldCreatedAt:    p.CreatedAt,
		FieldUpdatedAt:    p.UpdatedAt,
		FieldDeletedAt:    timePtrValue(p.DeletedAt),
		FieldLastSyncedAt: timePtrValue(p.LastSyncedAt),
	}
}

// Fields returns the column-keyed view of the task.
func (t Task) Fields() FieldMap {
	return FieldMap{
		FieldID:           t.ID,
		FieldRemoteID:     t.RemoteID,
		"project_id":      t.ProjectID,
		"parent_task_id":  strPtrValue(t.ParentTaskID),
		"title":           t.Title,
		"notes":           t.Notes,
		"status":          t.Status,
		"priority":        t.Priority,
		"position":        t.Position,
		"due_at":          timePtrValue(t.DueAt),
		"labels":          t.Labels,
		FieldSyncVersion:  t.SyncVersion,
		FieldCreatedAt:    t.CreatedAt,
		FieldUpdatedAt:    t.UpdatedAt,
		FieldDeletedAt:    timePtrValue(t.DeletedAt),
		FieldLastSyncedAt: timePtrValue(t.LastSyncedAt),
	}
}

// Fields returns the column-keyed view of the membership.
func (m Membership) Fields() FieldMap {
	return FieldMap{
		FieldID:           m.ID,
		FieldRemoteID:     m.RemoteID,
		"project_id":      m.ProjectID,
		"user_id":         m.UserID,
		"role":            m.Role,
		FieldSyncVersion:  m.SyncVersion,
		FieldCreatedAt:    m.CreatedAt,
		FieldUpdatedAt:    m.UpdatedAt,
		FieldDeletedAt:    timePtrValue(m.DeletedAt),
		FieldLastSyncedAt: timePtrValue(m.LastSyncedAt),
	}
}

func timePtrValue(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

func strPtrValue(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

// FieldString reads a string field, tolerating nil.
func (f FieldMap) FieldString(name string) string {
	if v, ok := f[name].(string); ok {
		return v
	}
	return ""
}

// FieldInt64 reads an integer field, tolerating nil and float64 values that
// arrive from JSON decoding.
func (f FieldMap) FieldInt64(name string) int64 {
	switch v := f[name].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	default:
		return 0
	}
}

// FieldTime reads a time field, tolerating nil, pointer values, and RFC 3339
// strings that arrive from JSON decoding. The zero time means absent.
func (f FieldMap) FieldTime(name string) time.Time {
	switch v := f[name].(type) {
	case time.Time:
		return v
	case *time.Time:
		if v != nil {
			return *v
		}
	case string:
		if ts, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return ts
		}
	}
	return time.Time{}
}
