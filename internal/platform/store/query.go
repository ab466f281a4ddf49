package store

import (
	"context"
	"errors"

	perr "todos/internal/platform/errors"
)

// ErrTooManyRows is returned by One when the statement yields a second row
var ErrTooManyRows = errors.New("store: expected one row, got more")

// ScanFunc maps the current row onto a T
type ScanFunc[T any] func(Row) (T, error)

// Affected runs a write and returns the number of rows it touched
func Affected(ctx context.Context, q RowQuerier, sql string, args ...any) (int64, error) {
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// One runs a statement that must yield exactly one row.
// No rows is perr.ErrNotFound and a second row is ErrTooManyRows
func One[T any](ctx context.Context, q RowQuerier, scan ScanFunc[T], sql string, args ...any) (T, error) {
	var zero T
	items, err := query(ctx, q, scan, 2, sql, args...)
	switch {
	case err != nil:
		return zero, err
	case len(items) == 0:
		return zero, perr.ErrNotFound
	case len(items) > 1:
		return zero, ErrTooManyRows
	}
	return items[0], nil
}

// Many runs a statement and scans every row; no rows is an empty, non nil slice
func Many[T any](ctx context.Context, q RowQuerier, scan ScanFunc[T], sql string, args ...any) ([]T, error) {
	return query(ctx, q, scan, -1, sql, args...)
}

// query scans at most limit rows, all of them when limit is negative
func query[T any](ctx context.Context, q RowQuerier, scan ScanFunc[T], limit int, sql string, args ...any) ([]T, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []T{}
	for (limit < 0 || len(out) < limit) && rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
