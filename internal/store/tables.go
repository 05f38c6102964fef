package store

import (
	"fmt"

	"github.com/narmatov/boardsync/models"
)

// TableSpec describes one syncable table: its full column list, the natural
// key used to link never-synced local records to remote counterparts, the
// column referencing the parent container, and the child tables a soft
// delete cascades into.
type TableSpec struct {
	Table        models.Table
	Columns      []string
	NaturalKey   []string
	ParentColumn string
	ChildTables  []models.Table
}

var metadataColumns = []string{
	models.FieldID,
	models.FieldRemoteID,
	models.FieldSyncVersion,
	models.FieldCreatedAt,
	models.FieldUpdatedAt,
	models.FieldDeletedAt,
	models.FieldLastSyncedAt,
}

var tableSpecs = map[models.Table]TableSpec{
	models.TableProjects: {
		Table: models.TableProjects,
		Columns: append([]string{
			"owner_id", "name", "description", "color", "position",
		}, metadataColumns...),
		NaturalKey:  []string{"owner_id", "name"},
		ChildTables: []models.Table{models.TableTasks, models.TableMemberships},
	},
	models.TableTasks: {
		Table: models.TableTasks,
		Columns: append([]string{
			"project_id", "parent_task_id", "title", "notes", "status",
			"priority", "position", "due_at", "labels",
		}, metadataColumns...),
		NaturalKey:   []string{"project_id", "title"},
		ParentColumn: "project_id",
	},
	models.TableMemberships: {
		Table: models.TableMemberships,
		Columns: append([]string{
			"project_id", "user_id", "role",
		}, metadataColumns...),
		NaturalKey:   []string{"project_id", "user_id"},
		ParentColumn: "project_id",
	},
}

// SpecFor returns the table descriptor for a syncable table.
func SpecFor(table models.Table) (TableSpec, error) {
	spec, ok := tableSpecs[table]
	if !ok {
		return TableSpec{}, fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}
	return spec, nil
}

// SyncableTables lists every table participating in sync, parents first.
func SyncableTables() []models.Table {
	return []models.Table{models.TableProjects, models.TableMemberships, models.TableTasks}
}
