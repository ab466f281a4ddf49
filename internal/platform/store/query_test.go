package store

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	perr "todos/internal/platform/errors"
)

type affected int64

func (a affected) String() string      { return fmt.Sprintf("DELETE %d", int64(a)) }
func (a affected) RowsAffected() int64 { return int64(a) }

// fakeRowQuerier records the last statement and replays canned results
type fakeRowQuerier struct {
	lastSQL  string
	lastArgs []any

	execTag CommandTag
	execErr error

	queryRows Rows
	queryErr  error
}

func (f *fakeRowQuerier) Exec(_ context.Context, sql string, args ...any) (CommandTag, error) {
	f.lastSQL, f.lastArgs = sql, args
	return f.execTag, f.execErr
}

func (f *fakeRowQuerier) Query(_ context.Context, sql string, args ...any) (Rows, error) {
	f.lastSQL, f.lastArgs = sql, args
	return f.queryRows, f.queryErr
}

func (f *fakeRowQuerier) QueryRow(context.Context, string, ...any) Row { return nil }

// todoRows serves (id, title) pairs
type todoRows struct {
	data   [][2]any
	pos    int
	err    error
	closed bool
}

func rowsOf(data ...[2]any) *todoRows { return &todoRows{data: data, pos: -1} }

func (r *todoRows) Columns() []string { return []string{"id", "title"} }
func (r *todoRows) Err() error        { return r.err }
func (r *todoRows) Close()            { r.closed = true }

func (r *todoRows) Next() bool {
	if r.err != nil {
		return false
	}
	r.pos++
	return r.pos < len(r.data)
}

func (r *todoRows) Scan(dest ...any) error {
	id, ok := r.data[r.pos][0].(int32)
	if !ok {
		return fmt.Errorf("id: cannot scan %T", r.data[r.pos][0])
	}
	*dest[0].(*int32) = id
	*dest[1].(*string) = r.data[r.pos][1].(string)
	return nil
}

type listed struct {
	ID    int32
	Title string
}

func scanListed(r Row) (listed, error) {
	var l listed
	err := r.Scan(&l.ID, &l.Title)
	return l, err
}

func TestAffected(t *testing.T) {
	t.Parallel()

	f := &fakeRowQuerier{execTag: affected(1)}
	n, err := Affected(context.Background(), f, "delete from todos where id = $1", int32(4))
	if err != nil || n != 1 {
		t.Fatalf("Affected = %d, %v", n, err)
	}
	if f.lastSQL != "delete from todos where id = $1" || !reflect.DeepEqual(f.lastArgs, []any{int32(4)}) {
		t.Fatalf("recorded %q %v", f.lastSQL, f.lastArgs)
	}

	boom := errors.New("boom")
	if _, err := Affected(context.Background(), &fakeRowQuerier{execErr: boom}, "x"); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
}

func TestOne(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	failing := rowsOf()
	failing.err = boom

	cases := []struct {
		name    string
		rows    *todoRows
		qErr    error
		want    listed
		wantErr func(error) bool
	}{
		{name: "single row", rows: rowsOf([2]any{int32(1), "a"}), want: listed{1, "a"}},
		{name: "no rows", rows: rowsOf(), wantErr: perr.IsNotFound},
		{name: "two rows", rows: rowsOf([2]any{int32(1), "a"}, [2]any{int32(2), "b"}), wantErr: func(err error) bool { return errors.Is(err, ErrTooManyRows) }},
		{name: "query error", qErr: boom, wantErr: func(err error) bool { return errors.Is(err, boom) }},
		{name: "rows error beats not found", rows: failing, wantErr: func(err error) bool { return errors.Is(err, boom) }},
		{name: "scan error", rows: rowsOf([2]any{"x", "a"}), wantErr: func(err error) bool { return err != nil && !perr.IsNotFound(err) }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			f := &fakeRowQuerier{queryErr: c.qErr}
			if c.rows != nil {
				f.queryRows = c.rows
			}
			got, err := One(context.Background(), f, scanListed, "select id, title from todos")
			if c.wantErr != nil {
				if !c.wantErr(err) {
					t.Fatalf("unexpected err %v", err)
				}
				return
			}
			if err != nil || got != c.want {
				t.Fatalf("One = %+v, %v", got, err)
			}
			if !c.rows.closed {
				t.Fatal("rows left open")
			}
		})
	}
}

func TestMany(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	rs := rowsOf([2]any{int32(1), "a"}, [2]any{int32(2), "b"})
	got, err := Many(ctx, &fakeRowQuerier{queryRows: rs}, scanListed, "select")
	if err != nil {
		t.Fatalf("Many: %v", err)
	}
	if want := []listed{{1, "a"}, {2, "b"}}; !reflect.DeepEqual(got, want) || !rs.closed {
		t.Fatalf("Many = %+v (closed=%v)", got, rs.closed)
	}

	empty, err := Many(ctx, &fakeRowQuerier{queryRows: rowsOf()}, scanListed, "select")
	if err != nil || empty == nil || len(empty) != 0 {
		t.Fatalf("empty = %#v, %v; want non nil empty slice", empty, err)
	}

	failing := rowsOf()
	failing.err = errors.New("iter")
	if _, err := Many(ctx, &fakeRowQuerier{queryRows: failing}, scanListed, "select"); err == nil {
		t.Fatal("expected iterator error")
	}
}
