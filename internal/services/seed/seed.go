// Package seed loads fixture todos from TOML and imports them through the todos service
package seed

import (
	"context"
	"fmt"
	"strings"

	"todos/internal/platform/logger"
	"todos/internal/services/api/todos/domain"

	"github.com/BurntSushi/toml"
)

// Entry is one [[todo]] table
type Entry struct {
	Title   string `toml:"title"`
	Content string `toml:"content"`
}

// File is the fixture document
type File struct {
	Todos []Entry `toml:"todo"`
}

// Load decodes a fixture file; unknown keys are rejected so typos do not seed blanks
func Load(path string) (File, error) {
	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return File{}, fmt.Errorf("decode %s: %w", path, err)
	}
	if extra := md.Undecoded(); len(extra) > 0 {
		keys := make([]string, 0, len(extra))
		for _, k := range extra {
			keys = append(keys, k.String())
		}
		return File{}, fmt.Errorf("decode %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return f, nil
}

// Mock returns n entries titled mock-title-1..n with matching mock-content bodies
func Mock(n int) []Entry {
	out := make([]Entry, 0, max(n, 0))
	for i := 1; i <= n; i++ {
		out = append(out, Entry{
			Title:   fmt.Sprintf("mock-title-%d", i),
			Content: fmt.Sprintf("mock-content-%d", i),
		})
	}
	return out
}

// Drafts converts entries for the import port
func Drafts(entries []Entry) []domain.Draft {
	out := make([]domain.Draft, len(entries))
	for i, e := range entries {
		out[i] = domain.Draft{Title: e.Title, Content: e.Content}
	}
	return out
}

// Run imports every entry and returns the stored todos.
// Whether a failure keeps earlier entries is up to the importer
func Run(ctx context.Context, imp domain.ImportPort, entries []Entry) ([]domain.Todo, error) {
	todos, err := imp.Import(ctx, Drafts(entries))
	if err != nil {
		return todos, fmt.Errorf("seed %d entries: %w", len(entries), err)
	}
	log := logger.Named("seed")
	for _, t := range todos {
		log.Debug().Int32("id", t.ID).Str("title", t.Title).Msg("seeded")
	}
	return todos, nil
}
