package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/narmatov/boardsync/internal/logger"
	"github.com/narmatov/boardsync/models"
)

type recordRepository struct {
	*DB
	logger *logger.Logger
}

// NewRecordRepository returns the SQLite-backed implementation of
// [RecordRepository] shared by all syncable tables.
func NewRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	return &recordRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *recordRepository) Get(ctx context.Context, table models.Table, id string, filter models.DeletionFilter) (models.FieldMap, error) {
	spec, err := SpecFor(table)
	if err != nil {
		return nil, err
	}

	b := applyDeletionFilter(selectBase(spec).Where(sq.Eq{models.FieldID: id}), filter)
	return r.queryOne(ctx, spec, b)
}

func (r *recordRepository) List(ctx context.Context, table models.Table, filter models.DeletionFilter) ([]models.FieldMap, error) {
	spec, err := SpecFor(table)
	if err != nil {
		return nil, err
	}

	b := applyDeletionFilter(selectBase(spec), filter)
	return r.queryAll(ctx, spec, b)
}

func (r *recordRepository) ListWhere(ctx context.Context, table models.Table, conds map[string]any, filter models.DeletionFilter) ([]models.FieldMap, error) {
	spec, err := SpecFor(table)
	if err != nil {
		return nil, err
	}

	b := selectBase(spec)
	for col, v := range conds {
		b = b.Where(sq.Eq{col: v})
	}
	b = applyDeletionFilter(b, filter)

	return r.queryAll(ctx, spec, b)
}

func (r *recordRepository) FindByRemoteID(ctx context.Context, table models.Table, remoteID string) (models.FieldMap, error) {
	spec, err := SpecFor(table)
	if err != nil {
		return nil, err
	}

	// tombstoned records still take part in conflict resolution, so no
	// deletion filter here
	b := selectBase(spec).Where(sq.Eq{models.FieldRemoteID: remoteID})
	return r.queryOne(ctx, spec, b)
}

func (r *recordRepository) FindUnlinkedByNaturalKey(ctx context.Context, table models.Table, key models.FieldMap) (models.FieldMap, error) {
	spec, err := SpecFor(table)
	if err != nil {
		return nil, err
	}

	b := selectBase(spec).Where(sq.Eq{models.FieldRemoteID: ""})
	for _, col := range spec.NaturalKey {
		b = b.Where(sq.Eq{col: key[col]})
	}
	b = applyDeletionFilter(b, models.ExcludeDeleted)

	return r.queryOne(ctx, spec, b)
}

func (r *recordRepository) Insert(ctx context.Context, table models.Table, fields models.FieldMap) error {
	spec, err := SpecFor(table)
	if err != nil {
		return err
	}

	cols := make([]string, 0, len(spec.Columns))
	vals := make([]any, 0, len(spec.Columns))
	for _, col := range spec.Columns {
		if v, ok := fields[col]; ok {
			cols = append(cols, col)
			vals = append(vals, v)
		}
	}

	query, args, err := sq.Insert(string(spec.Table)).Columns(cols...).Values(vals...).ToSql()
	if err != nil {
		return fmt.Errorf("build insert for %s: %w", table, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("table", string(table)).
			Str("id", fields.FieldString(models.FieldID)).
			Msg("failed to insert record")
		return fmt.Errorf("insert into %s: %w", table, err)
	}

	return nil
}

func (r *recordRepository) UpdateFields(ctx context.Context, table models.Table, id string, fields models.FieldMap) error {
	spec, err := SpecFor(table)
	if err != nil {
		return err
	}

	setMap := make(map[string]any, len(fields))
	for _, col := range spec.Columns {
		if col == models.FieldID {
			continue
		}
		if v, ok := fields[col]; ok {
			setMap[col] = v
		}
	}
	if len(setMap) == 0 {
		return nil
	}

	query, args, err := sq.Update(string(spec.Table)).
		SetMap(setMap).
		Where(sq.Eq{models.FieldID: id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update for %s: %w", table, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("table", string(table)).
			Str("id", id).
			Msg("failed to update record fields")
		return fmt.Errorf("update %s: %w", table, err)
	}

	return requireAffected(res, table, id)
}

func (r *recordRepository) LinkRemote(ctx context.Context, table models.Table, id, remoteID string, at time.Time) error {
	spec, err := SpecFor(table)
	if err != nil {
		return err
	}

	query, args, err := sq.Update(string(spec.Table)).
		Set(models.FieldRemoteID, remoteID).
		Set(models.FieldLastSyncedAt, at).
		Where(sq.Eq{models.FieldID: id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build link update for %s: %w", table, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("link %s record to remote: %w", table, err)
	}

	return requireAffected(res, table, id)
}

func (r *recordRepository) SetDeletedAt(ctx context.Context, table models.Table, id string, at *time.Time) error {
	spec, err := SpecFor(table)
	if err != nil {
		return err
	}

	b := sq.Update(string(spec.Table)).Where(sq.Eq{models.FieldID: id})
	if at != nil {
		b = b.Set(models.FieldDeletedAt, *at).Set(models.FieldUpdatedAt, *at)
	} else {
		b = b.Set(models.FieldDeletedAt, nil).Set(models.FieldUpdatedAt, time.Now().UTC())
	}

	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build tombstone update for %s: %w", table, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("set tombstone on %s: %w", table, err)
	}

	return requireAffected(res, table, id)
}

func (r *recordRepository) CascadeDeletedAt(ctx context.Context, table models.Table, parentColumn, parentID string, at time.Time) (int64, error) {
	spec, err := SpecFor(table)
	if err != nil {
		return 0, err
	}

	// only live children are stamped: records tombstoned earlier keep their
	// original timestamp, so a later restore will not resurrect them
	query, args, err := sq.Update(string(spec.Table)).
		Set(models.FieldDeletedAt, at).
		Set(models.FieldUpdatedAt, at).
		Where(sq.Eq{parentColumn: parentID}).
		Where(sq.Eq{models.FieldDeletedAt: nil}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build cascade tombstone for %s: %w", table, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("cascade tombstone into %s: %w", table, err)
	}

	return res.RowsAffected()
}

func (r *recordRepository) CascadeRestore(ctx context.Context, table models.Table, parentColumn, parentID string, at time.Time) (int64, error) {
	spec, err := SpecFor(table)
	if err != nil {
		return 0, err
	}

	// exact-timestamp match restores only children deleted together with
	// the parent
	query, args, err := sq.Update(string(spec.Table)).
		Set(models.FieldDeletedAt, nil).
		Set(models.FieldUpdatedAt, time.Now().UTC()).
		Where(sq.Eq{parentColumn: parentID}).
		Where(sq.Eq{models.FieldDeletedAt: at}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build cascade restore for %s: %w", table, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("cascade restore into %s: %w", table, err)
	}

	return res.RowsAffected()
}

func (r *recordRepository) Delete(ctx context.Context, table models.Table, id string) error {
	spec, err := SpecFor(table)
	if err != nil {
		return err
	}

	query, args, err := sq.Delete(string(spec.Table)).Where(sq.Eq{models.FieldID: id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete for %s: %w", table, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}

	return requireAffected(res, table, id)
}

func (r *recordRepository) ListDeletedBefore(ctx context.Context, table models.Table, cutoff time.Time) ([]models.FieldMap, error) {
	spec, err := SpecFor(table)
	if err != nil {
		return nil, err
	}

	b := selectBase(spec).
		Where(sq.NotEq{models.FieldDeletedAt: nil}).
		Where(sq.Lt{models.FieldDeletedAt: cutoff})

	return r.queryAll(ctx, spec, b)
}

// ── query plumbing ──────────────────────────────────────────────────────────

func selectBase(spec TableSpec) sq.SelectBuilder {
	return sq.Select(spec.Columns...).From(string(spec.Table))
}

func applyDeletionFilter(b sq.SelectBuilder, filter models.DeletionFilter) sq.SelectBuilder {
	switch filter {
	case models.ExcludeDeleted:
		return b.Where(sq.Eq{models.FieldDeletedAt: nil})
	case models.OnlyDeleted:
		return b.Where(sq.NotEq{models.FieldDeletedAt: nil})
	default:
		return b
	}
}

func (r *recordRepository) queryOne(ctx context.Context, spec TableSpec, b sq.SelectBuilder) (models.FieldMap, error) {
	rows, err := r.queryAll(ctx, spec, b)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrRecordNotFound
	}
	return rows[0], nil
}

func (r *recordRepository) queryAll(ctx context.Context, spec TableSpec, b sq.SelectBuilder) ([]models.FieldMap, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select for %s: %w", spec.Table, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("table", string(spec.Table)).
			Msg("failed to query records")
		return nil, fmt.Errorf("query %s: %w", spec.Table, err)
	}
	defer rows.Close()

	var out []models.FieldMap
	for rows.Next() {
		fm, err := scanFieldMap(rows, spec.Columns)
		if err != nil {
			return nil, fmt.Errorf("scan %s row: %w", spec.Table, err)
		}
		out = append(out, fm)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s rows: %w", spec.Table, err)
	}

	return out, nil
}

func scanFieldMap(rows *sql.Rows, cols []string) (models.FieldMap, error) {
	vals := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	if err := rows.Scan(ptrs...); err != nil {
		return nil, err
	}

	fm := make(models.FieldMap, len(cols))
	for i, col := range cols {
		fm[col] = normalizeDBValue(vals[i])
	}
	return fm, nil
}

func normalizeDBValue(v any) any {
	switch t := v.(type) {
	case []byte:
		return string(t)
	default:
		return v
	}
}

func requireAffected(res sql.Result, table models.Table, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for %s: %w", table, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s id=%s", ErrRecordNotFound, table, id)
	}
	return nil
}
