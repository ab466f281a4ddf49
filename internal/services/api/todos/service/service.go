// Package service contains todo workflows
package service

import (
	"context"
	"fmt"

	"todos/internal/modkit/repokit"
	perr "todos/internal/platform/errors"
	"todos/internal/services/api/todos/domain"
	"todos/internal/services/api/todos/repo"
)

// Service defines the todos service contract
type Service interface {
	domain.ServicePort
	domain.ImportPort
}

// Svc implements the todos service
type Svc struct {
	Repo   repo.TodoStore
	binder repokit.Binder[repo.TodoStore]
	db     repokit.TxRunner
}

// New constructs a todos service
func New(db repokit.TxRunner, binder repokit.Binder[repo.TodoStore]) *Svc {
	if db == nil {
		panic("todos.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("todos.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// NewWithStore builds a service over an already bound store
func NewWithStore(st repo.TodoStore) *Svc {
	if st == nil {
		panic("todos.Service requires a non nil TodoStore")
	}
	return &Svc{Repo: st}
}

// ClampLimit applies the default and the ceiling to a requested page size.
// Zero and negative values pass through untouched
func ClampLimit(requested *int64) int64 {
	if requested == nil {
		return domain.DefaultLimit
	}
	return min(*requested, domain.MaxLimit)
}

// Get returns one todo or NotFound
func (s *Svc) Get(ctx context.Context, id int32) (domain.Todo, error) {
	return s.Repo.Find(ctx, id)
}

// List returns a page of todos ordered by id with the table total
func (s *Svc) List(ctx context.Context, q domain.ListQuery) (domain.Page, error) {
	limit := ClampLimit(q.Limit)
	var offset int64
	if q.Offset != nil {
		offset = *q.Offset
	}

	rows, err := s.Repo.List(ctx, limit, offset)
	if err != nil {
		return domain.Page{}, err
	}

	page := domain.Page{Limit: limit, Offset: offset, Items: make([]domain.Todo, 0, len(rows))}
	if len(rows) > 0 {
		page.Total = rows[0].Total
	}
	for _, r := range rows {
		page.Items = append(page.Items, r.Todo)
	}
	return page, nil
}

// Create inserts a todo and returns it with its assigned id
func (s *Svc) Create(ctx context.Context, title, content string) (domain.Todo, error) {
	return s.Repo.Create(ctx, title, content)
}

// Update overwrites title and content of an existing todo
func (s *Svc) Update(ctx context.Context, id int32, title, content string) (domain.Todo, error) {
	// the existence check and the write are separate statements; a concurrent
	// delete in between still yields NotFound from the update itself
	if _, err := s.Repo.Find(ctx, id); err != nil {
		return domain.Todo{}, err
	}
	return s.Repo.Update(ctx, id, title, content)
}

// Delete removes an existing todo; anything other than exactly one removed row is an integrity failure
func (s *Svc) Delete(ctx context.Context, id int32) error {
	if _, err := s.Repo.Find(ctx, id); err != nil {
		return err
	}
	n, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n != 1 {
		return perr.WithOp(perr.Integrityf("delete todo %d affected %d rows", id, n), "todos.delete")
	}
	return nil
}

// Import creates drafts in order. With a TxRunner it is all or nothing;
// a service built over a bare store stops at the first failure and keeps what it wrote
func (s *Svc) Import(ctx context.Context, drafts []domain.Draft) ([]domain.Todo, error) {
	if s.db == nil || s.binder == nil {
		return createAll(ctx, s.Repo, drafts)
	}
	var out []domain.Todo
	err := repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		var err error
		out, err = createAll(ctx, s.binder.Bind(q), drafts)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func createAll(ctx context.Context, st repo.TodoStore, drafts []domain.Draft) ([]domain.Todo, error) {
	out := make([]domain.Todo, 0, len(drafts))
	for i, d := range drafts {
		t, err := st.Create(ctx, d.Title, d.Content)
		if err != nil {
			return out, fmt.Errorf("draft %d (%q): %w", i, d.Title, err)
		}
		out = append(out, t)
	}
	return out, nil
}

// ErrNoDatabase is returned by every Offline call
var ErrNoDatabase = perr.New(perr.ErrorCodeUnavailable, "todos: no database configured")

// Offline serves the todos routes when postgres is disabled; every call fails
// with ErrNoDatabase, which clients see as the generic 500
type Offline struct{}

var _ Service = Offline{}

// Get fails with ErrNoDatabase
func (Offline) Get(context.Context, int32) (domain.Todo, error) { return domain.Todo{}, ErrNoDatabase }

// List fails with ErrNoDatabase
func (Offline) List(context.Context, domain.ListQuery) (domain.Page, error) {
	return domain.Page{}, ErrNoDatabase
}

// Create fails with ErrNoDatabase
func (Offline) Create(context.Context, string, string) (domain.Todo, error) {
	return domain.Todo{}, ErrNoDatabase
}

// Update fails with ErrNoDatabase
func (Offline) Update(context.Context, int32, string, string) (domain.Todo, error) {
	return domain.Todo{}, ErrNoDatabase
}

// Delete fails with ErrNoDatabase
func (Offline) Delete(context.Context, int32) error { return ErrNoDatabase }

// Import fails with ErrNoDatabase
func (Offline) Import(context.Context, []domain.Draft) ([]domain.Todo, error) {
	return nil, ErrNoDatabase
}
