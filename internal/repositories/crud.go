package repositories

import (
	"context"
	"strings"

	"ibrac/internal/domain"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

func getByID[T any](ctx context.Context, db *sqlx.DB, table string, id int64) (T, error) {
	var out T
	if db == nil {
		return out, errNoDB
	}
	err := db.GetContext(ctx, &out, "SELECT * FROM "+quoteIdent(table)+" WHERE id = ?", id)
	if err != nil {
		return out, mapError(table, err)
	}
	return out, nil
}

func deleteByID(ctx context.Context, db *sqlx.DB, table string, id int64) error {
	if db == nil {
		return errNoDB
	}
	res, err := db.ExecContext(ctx, "DELETE FROM "+quoteIdent(table)+" WHERE id = ?", id)
	if err != nil {
		return mapError(table, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: table}
	}
	return nil
}

// periodWhere renders the inclusive date bounds of p on column.
func periodWhere(column string, p domain.Period) (string, []any) {
	var (
		parts []string
		args  []any
	)
	if !p.Start.IsZero() {
		parts = append(parts, quoteIdent(column)+" >= ?")
		args = append(args, p.Start)
	}
	if !p.End.IsZero() {
		parts = append(parts, quoteIdent(column)+" <= ?")
		args = append(args, p.End)
	}
	if len(parts) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(parts, " AND "), args
}

// sumInPeriod returns SUM(expr) over rows whose dateColumn falls in p.
func sumInPeriod(ctx context.Context, db *sqlx.DB, table, expr, dateColumn string, p domain.Period) (decimal.Decimal, error) {
	if db == nil {
		return decimal.Zero, errNoDB
	}
	where, args := periodWhere(dateColumn, p)
	var total decimal.Decimal
	q := "SELECT COALESCE(SUM(" + expr + "), 0) FROM " + quoteIdent(table) + where
	if err := db.GetContext(ctx, &total, q, args...); err != nil {
		return decimal.Zero, mapError(table, err)
	}
	return total, nil
}
