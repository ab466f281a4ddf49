// Package repo provides postgres access for todos
package repo

import (
	"context"

	"todos/internal/modkit/repokit"
	perr "todos/internal/platform/errors"
	"todos/internal/platform/store"
	"todos/internal/services/api/todos/domain"
)

// TodoStore is the persistence surface for todos.
// Every method is a single parameterized statement on the bound Queryer
type TodoStore interface {
	Find(ctx context.Context, id int32) (domain.Todo, error)
	List(ctx context.Context, limit, offset int64) ([]Row, error)
	Create(ctx context.Context, title, content string) (domain.Todo, error)
	Update(ctx context.Context, id int32, title, content string) (domain.Todo, error)
	Delete(ctx context.Context, id int32) (int64, error)
	EnsureSchema(ctx context.Context) error
}

// Row is a listed todo annotated with the unfiltered table count
type Row struct {
	domain.Todo
	Total int64
}

// Schema creates the todos table when missing
const Schema = `
create table if not exists todos (
	id      serial primary key,
	title   text not null,
	content text not null
)`

type (
	// PG is a binder that can bind the store to a Queryer or TxRunner
	PG struct{}
	// queries implements TodoStore
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder for the postgres TodoStore
func NewPG() repokit.Binder[TodoStore] { return PG{} }

// Bind wires a Queryer to the store
func (PG) Bind(q repokit.Queryer) TodoStore { return &queries{q: q} }

func scanTodo(r store.Row) (domain.Todo, error) {
	var t domain.Todo
	err := r.Scan(&t.ID, &t.Title, &t.Content)
	return t, err
}

func scanRow(r store.Row) (Row, error) {
	var out Row
	err := r.Scan(&out.ID, &out.Title, &out.Content, &out.Total)
	return out, err
}

func (r *queries) Find(ctx context.Context, id int32) (domain.Todo, error) {
	const sql = `select id, title, content from todos where id = $1`
	t, err := store.One(ctx, r.q, scanTodo, sql, id)
	if err != nil {
		return domain.Todo{}, mapErr(err, "todos.find", id)
	}
	return t, nil
}

func (r *queries) List(ctx context.Context, limit, offset int64) ([]Row, error) {
	// the window count rides along on every row so paging costs one round trip
	const sql = `
select id, title, content, count(*) over () as total
from todos
order by id asc
limit $1 offset $2
`
	rows, err := store.Many(ctx, r.q, scanRow, sql, limit, offset)
	if err != nil {
		return nil, perr.WithOp(perr.FromPostgres(err, "list todos"), "todos.list")
	}
	return rows, nil
}

func (r *queries) Create(ctx context.Context, title, content string) (domain.Todo, error) {
	const sql = `insert into todos (title, content) values ($1, $2) returning id, title, content`
	t, err := store.One(ctx, r.q, scanTodo, sql, title, content)
	if err != nil {
		return domain.Todo{}, perr.WithOp(perr.FromPostgres(err, "insert todo"), "todos.create")
	}
	return t, nil
}

func (r *queries) Update(ctx context.Context, id int32, title, content string) (domain.Todo, error) {
	const sql = `update todos set title = $2, content = $3 where id = $1 returning id, title, content`
	t, err := store.One(ctx, r.q, scanTodo, sql, id, title, content)
	if err != nil {
		return domain.Todo{}, mapErr(err, "todos.update", id)
	}
	return t, nil
}

func (r *queries) Delete(ctx context.Context, id int32) (int64, error) {
	const sql = `delete from todos where id = $1`
	n, err := store.Affected(ctx, r.q, sql, id)
	if err != nil {
		return 0, perr.WithOp(perr.FromPostgresf(err, "delete todo %d", id), "todos.delete")
	}
	return n, nil
}

func (r *queries) EnsureSchema(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, Schema); err != nil {
		return perr.WithOp(perr.FromPostgres(err, "create todos table"), "todos.schema")
	}
	return nil
}

// mapErr keeps a missing row as NotFound and wraps everything else as a storage error
func mapErr(err error, op string, id int32) error {
	if perr.IsNotFound(err) {
		return perr.WithOp(perr.NotFoundf("todo %d not found", id), op)
	}
	return perr.WithOp(perr.FromPostgresf(err, "todo %d", id), op)
}
