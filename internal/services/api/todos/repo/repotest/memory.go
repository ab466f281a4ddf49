// Package repotest provides an in memory TodoStore for tests
package repotest

import (
	"context"
	"slices"
	"sync"

	perr "todos/internal/platform/errors"
	"todos/internal/services/api/todos/domain"
	"todos/internal/services/api/todos/repo"
)

// Memory is a TodoStore backed by a map; ids start at 1 like a serial column
type Memory struct {
	mu     sync.Mutex
	next   int32
	rows   map[int32]domain.Todo
	Err    error // returned by every call when set
	Shadow int64 // when non zero Delete reports this many rows instead of the real count
}

// NewMemory returns an empty store
func NewMemory() *Memory { return &Memory{rows: map[int32]domain.Todo{}} }

var _ repo.TodoStore = (*Memory)(nil)

// Find implements repo.TodoStore
func (m *Memory) Find(_ context.Context, id int32) (domain.Todo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return domain.Todo{}, m.Err
	}
	t, ok := m.rows[id]
	if !ok {
		return domain.Todo{}, perr.NotFoundf("todo %d not found", id)
	}
	return t, nil
}

// List implements repo.TodoStore
func (m *Memory) List(_ context.Context, limit, offset int64) ([]repo.Row, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	if limit < 0 || offset < 0 {
		return nil, perr.Newf(perr.ErrorCodeDB, "negative limit or offset")
	}
	ids := make([]int32, 0, len(m.rows))
	for id := range m.rows {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	total := int64(len(ids))
	out := []repo.Row{}
	for i := offset; i < total && i < offset+limit; i++ {
		out = append(out, repo.Row{Todo: m.rows[ids[i]], Total: total})
	}
	return out, nil
}

// Create implements repo.TodoStore
func (m *Memory) Create(_ context.Context, title, content string) (domain.Todo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return domain.Todo{}, m.Err
	}
	m.next++
	t := domain.Todo{ID: m.next, Title: title, Content: content}
	m.rows[t.ID] = t
	return t, nil
}

// Update implements repo.TodoStore
func (m *Memory) Update(_ context.Context, id int32, title, content string) (domain.Todo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return domain.Todo{}, m.Err
	}
	if _, ok := m.rows[id]; !ok {
		return domain.Todo{}, perr.NotFoundf("todo %d not found", id)
	}
	t := domain.Todo{ID: id, Title: title, Content: content}
	m.rows[id] = t
	return t, nil
}

// Delete implements repo.TodoStore
func (m *Memory) Delete(_ context.Context, id int32) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	if m.Shadow != 0 {
		return m.Shadow, nil
	}
	if _, ok := m.rows[id]; !ok {
		return 0, nil
	}
	delete(m.rows, id)
	return 1, nil
}

// EnsureSchema implements repo.TodoStore
func (m *Memory) EnsureSchema(context.Context) error { return m.Err }

// Len reports the number of stored todos
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}
