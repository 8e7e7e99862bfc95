package repositories

import (
	"context"
	"strings"

	intconfig "ibrac/internal/config"
	"ibrac/internal/pagination"

	"github.com/jmoiron/sqlx"
)

// TableSource serves a pagination.Source from one MySQL table or view. Rows are
// mapped into T through sqlx `db` tags, so T decides the schema.
type TableSource[T any] struct {
	DB *sqlx.DB
}

func (s TableSource[T]) db() *sqlx.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func quoteIdent(name string) string {
	return "`" + name + "`"
}

func selectList(d pagination.Descriptor) string {
	cols := d.ColumnList()
	if len(cols) == 0 {
		return "*"
	}
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = quoteIdent(c)
	}
	return strings.Join(quoted, ", ")
}

// whereClause renders the equality filters in FilterFields order.
func whereClause(d pagination.Descriptor) (string, []any) {
	fields := d.FilterFields()
	if len(fields) == 0 {
		return "", nil
	}
	parts := make([]string, len(fields))
	args := make([]any, len(fields))
	for i, f := range fields {
		parts[i] = quoteIdent(f) + " = ?"
		args[i] = d.Filters[f]
	}
	return " WHERE " + strings.Join(parts, " AND "), args
}

func orderClause(d pagination.Descriptor) string {
	if d.OrderBy.Field == "" {
		return ""
	}
	dir := "DESC"
	if d.OrderBy.Ascending {
		dir = "ASC"
	}
	return " ORDER BY " + quoteIdent(d.OrderBy.Field) + " " + dir
}

func countQuery(d pagination.Descriptor) (string, []any) {
	where, args := whereClause(d)
	return "SELECT COUNT(*) FROM " + quoteIdent(d.Resource) + where, args
}

func pageQuery(d pagination.Descriptor, w pagination.Window) (string, []any) {
	where, args := whereClause(d)
	q := "SELECT " + selectList(d) + " FROM " + quoteIdent(d.Resource) + where + orderClause(d) + " LIMIT ? OFFSET ?"
	return q, append(args, w.Limit, w.Offset)
}

func (s TableSource[T]) Count(ctx context.Context, d pagination.Descriptor) (int, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	db := s.db()
	if db == nil {
		return 0, errNoDB
	}
	q, args := countQuery(d)
	var n int
	if err := db.GetContext(ctx, &n, q, args...); err != nil {
		return 0, mapError(d.Resource, err)
	}
	return n, nil
}

func (s TableSource[T]) Fetch(ctx context.Context, d pagination.Descriptor, w pagination.Window) ([]T, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	db := s.db()
	if db == nil {
		return nil, errNoDB
	}
	q, args := pageQuery(d, w)
	rows := []T{}
	if err := db.SelectContext(ctx, &rows, q, args...); err != nil {
		return nil, mapError(d.Resource, err)
	}
	return rows, nil
}

// FetchAll returns up to limit rows of the filtered, ordered view. Exports use it.
func (s TableSource[T]) FetchAll(ctx context.Context, d pagination.Descriptor, limit int) ([]T, error) {
	return s.Fetch(ctx, d, pagination.Window{Offset: 0, Limit: limit})
}

var _ pagination.Source[struct{}] = TableSource[struct{}]{}
