package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// Table describes how one entity kind is laid out in the store.
//
// Columns lists the insert columns in order; the primary key "id" is implied
// and assigned by the store. ToRow must return one value per insert column.
// FromRow receives rows selected as "id" followed by Columns and must return
// scan errors unchanged (or wrapped with %w) so sql.ErrNoRows stays detectable.
type Table[T any] struct {
	Name    string
	Columns []string
	ToRow   func(entity *T) []any
	FromRow func(row Scanner) (T, error)
}

// GenericRepository implements the CRUD statements shared by every entity
// repository for a single table.
type GenericRepository[T any] struct {
	db         SQLExecutor
	table      Table[T]
	selectList string
}

// NewGenericRepository creates a repository for table on db.
func NewGenericRepository[T any](db SQLExecutor, table Table[T]) *GenericRepository[T] {
	return &GenericRepository[T]{
		db:         db,
		table:      table,
		selectList: "id, " + strings.Join(table.Columns, ", "),
	}
}

// TableName returns the name of the underlying table.
func (r *GenericRepository[T]) TableName() string {
	return r.table.Name
}

func (r *GenericRepository[T]) executor(executor SQLExecutor) SQLExecutor {
	if executor == nil {
		return r.db
	}
	return executor
}

func (r *GenericRepository[T]) hasColumn(column string) bool {
	for _, c := range r.table.Columns {
		if c == column {
			return true
		}
	}
	return false
}

// Insert adds entity to the table and returns the store-assigned id.
func (r *GenericRepository[T]) Insert(ctx context.Context, executor SQLExecutor, entity *T) (int64, error) {
	values := r.table.ToRow(entity)
	if len(values) != len(r.table.Columns) {
		return 0, fmt.Errorf("%w: %s: %d values for %d columns", ErrDatabaseError, r.table.Name, len(values), len(r.table.Columns))
	}

	exec := r.executor(executor)
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(values)), ", ")
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		r.table.Name, strings.Join(r.table.Columns, ", "), placeholders)

	var id int64
	if err := exec.QueryRowxContext(ctx, exec.Rebind(query), values...).Scan(&id); err != nil {
		return 0, classifyError(err, "inserting into "+r.table.Name)
	}
	return id, nil
}

// FetchAll returns every row ordered by id. The result is never nil.
func (r *GenericRepository[T]) FetchAll(ctx context.Context) ([]T, error) {
	return r.findWhere(ctx, "", "id")
}

// FetchByID returns the row with the given id; found is false when no row matches.
func (r *GenericRepository[T]) FetchByID(ctx context.Context, id int64) (T, bool, error) {
	return r.findOneWhere(ctx, "id = ?", id)
}

// DeleteByID removes the row with the given id and reports whether a row was actually removed.
func (r *GenericRepository[T]) DeleteByID(ctx context.Context, executor SQLExecutor, id int64) (bool, error) {
	exec := r.executor(executor)
	query := fmt.Sprintf("DELETE FROM %s WHERE id = ?", r.table.Name)
	result, err := exec.ExecContext(ctx, exec.Rebind(query), id)
	if err != nil {
		return false, classifyError(err, fmt.Sprintf("deleting %s ID %d", r.table.Name, id))
	}
	return rowsChanged(result, r.table.Name, id)
}

// Exists reports whether a row with the given id is present.
func (r *GenericRepository[T]) Exists(ctx context.Context, id int64) (bool, error) {
	return r.existsWhere(ctx, "id = ?", id)
}

// SearchByColumnSubstring returns rows whose column contains fragment, ordered
// by that column. Case sensitivity follows the store's LIKE semantics.
func (r *GenericRepository[T]) SearchByColumnSubstring(ctx context.Context, column, fragment string) ([]T, error) {
	if !r.hasColumn(column) {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownColumn, r.table.Name, column)
	}
	condition := fmt.Sprintf(`CAST(%s AS TEXT) LIKE ? ESCAPE '\'`, column)
	return r.findWhere(ctx, condition, column+", id", "%"+escapeLike(fragment)+"%")
}

// UpdateColumn sets a single column on the row with the given id and reports
// whether a row matched.
func (r *GenericRepository[T]) UpdateColumn(ctx context.Context, executor SQLExecutor, id int64, column string, value any) (bool, error) {
	if !r.hasColumn(column) {
		return false, fmt.Errorf("%w: %s.%s", ErrUnknownColumn, r.table.Name, column)
	}
	exec := r.executor(executor)
	query := fmt.Sprintf("UPDATE %s SET %s = ? WHERE id = ?", r.table.Name, column)
	result, err := exec.ExecContext(ctx, exec.Rebind(query), value, id)
	if err != nil {
		return false, classifyError(err, fmt.Sprintf("updating %s.%s for ID %d", r.table.Name, column, id))
	}
	return rowsChanged(result, r.table.Name, id)
}

// findWhere runs a SELECT with a fixed condition and ordering supplied by an entity repository.
func (r *GenericRepository[T]) findWhere(ctx context.Context, condition, orderBy string, args ...any) ([]T, error) {
	var query strings.Builder
	fmt.Fprintf(&query, "SELECT %s FROM %s", r.selectList, r.table.Name)
	if condition != "" {
		query.WriteString(" WHERE " + condition)
	}
	if orderBy != "" {
		query.WriteString(" ORDER BY " + orderBy)
	}

	rows, err := r.db.QueryxContext(ctx, r.db.Rebind(query.String()), args...)
	if err != nil {
		return nil, classifyError(err, "querying "+r.table.Name)
	}
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		item, err := r.table.FromRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning %s: %v", ErrDatabaseError, r.table.Name, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating %s rows: %v", ErrDatabaseError, r.table.Name, err)
	}
	return items, nil
}

func (r *GenericRepository[T]) findOneWhere(ctx context.Context, condition string, args ...any) (T, bool, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s", r.selectList, r.table.Name, condition)
	item, err := r.table.FromRow(r.db.QueryRowxContext(ctx, r.db.Rebind(query), args...))
	if err != nil {
		var zero T
		if errors.Is(err, sql.ErrNoRows) {
			return zero, false, nil
		}
		return zero, false, classifyError(err, "getting "+r.table.Name)
	}
	return item, true, nil
}

func (r *GenericRepository[T]) existsWhere(ctx context.Context, condition string, args ...any) (bool, error) {
	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s)", r.table.Name, condition)
	var exists bool
	if err := r.db.QueryRowxContext(ctx, r.db.Rebind(query), args...).Scan(&exists); err != nil {
		return false, classifyError(err, "checking "+r.table.Name)
	}
	return exists, nil
}

func rowsChanged(result sql.Result, table string, id int64) (bool, error) {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: getting rows affected for %s ID %d: %v", ErrDatabaseError, table, id, err)
	}
	return rowsAffected > 0, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(fragment string) string {
	return likeEscaper.Replace(fragment)
}
