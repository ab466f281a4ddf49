//go:build integration_pg

package store

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"todos/internal/platform/store/pgtest"

	"github.com/rs/zerolog"
)

func openIntegration(t *testing.T) (*Store, context.Context) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	t.Cleanup(cancel)

	s, err := Open(ctx, Config{
		AppName: "todos-store-it",
		PG: PGConfig{
			Enabled:  true,
			URL:      pgtest.Start(t),
			MaxConns: 2,
			LogSQL:   true, // hit tracer wiring path
		},
	}, WithLogger(zerolog.New(io.Discard)))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return s, ctx
}

func TestSQLAdapter_Integration_ExecQueryColumns(t *testing.T) {
	s, ctx := openIntegration(t)

	if err := s.Guard(ctx); err != nil {
		t.Fatalf("guard: %v", err)
	}

	if _, err := s.PG.Exec(ctx, `CREATE TABLE adapter_t (id SERIAL PRIMARY KEY, title TEXT NOT NULL)`); err != nil {
		t.Fatalf("create table: %v", err)
	}
	tag, err := s.PG.Exec(ctx, `INSERT INTO adapter_t (title) VALUES ($1), ($2)`, "zoe", "ada")
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if tag.RowsAffected() != 2 {
		t.Fatalf("rows affected = %d", tag.RowsAffected())
	}

	var first string
	if err := s.PG.QueryRow(ctx, `SELECT title FROM adapter_t WHERE id=$1`, 1).Scan(&first); err != nil {
		t.Fatalf("queryrow scan: %v", err)
	}
	if first != "zoe" {
		t.Fatalf("unexpected title: %q", first)
	}

	got, err := Many(ctx, s.PG, func(r Row) (string, error) {
		var title string
		err := r.Scan(&title)
		return title, err
	}, `SELECT title FROM adapter_t ORDER BY id`)
	if err != nil {
		t.Fatalf("many: %v", err)
	}
	if len(got) != 2 || got[0] != "zoe" || got[1] != "ada" {
		t.Fatalf("rows mismatch %v", got)
	}

	st, ok := s.Stats()
	if !ok || st.Max != 2 || st.Total < 1 {
		t.Fatalf("unexpected stats ok=%v %+v", ok, st)
	}
}

func TestSQLAdapter_Integration_TxCommitAndRollback(t *testing.T) {
	s, ctx := openIntegration(t)

	if _, err := s.PG.Exec(ctx, `CREATE TABLE adapter_tx (id SERIAL PRIMARY KEY, val INT NOT NULL)`); err != nil {
		t.Fatalf("create table: %v", err)
	}

	if err := s.PG.Tx(ctx, func(q RowQuerier) error {
		_, err := q.Exec(ctx, `INSERT INTO adapter_tx (val) VALUES (10)`)
		return err
	}); err != nil {
		t.Fatalf("tx commit: %v", err)
	}

	errRollback := errors.New("rollback")
	err := s.PG.Tx(ctx, func(q RowQuerier) error {
		if _, err := q.Exec(ctx, `INSERT INTO adapter_tx (val) VALUES (20)`); err != nil {
			return err
		}
		return errRollback
	})
	if !errors.Is(err, errRollback) {
		t.Fatalf("expected rollback error, got %v", err)
	}

	var committed, rolledBack int
	if err := s.PG.QueryRow(ctx, `SELECT count(*) FILTER (WHERE val=10), count(*) FILTER (WHERE val=20) FROM adapter_tx`).
		Scan(&committed, &rolledBack); err != nil {
		t.Fatalf("count: %v", err)
	}
	if committed != 1 || rolledBack != 0 {
		t.Fatalf("commit=%d rollback=%d, want 1 and 0", committed, rolledBack)
	}
}
