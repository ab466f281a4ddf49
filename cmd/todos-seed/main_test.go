package main

import (
	"context"
	"testing"
)

func TestRun_ExitCodes(t *testing.T) {
	t.Setenv("SERVICE_PGSQL_ENABLED", "false")

	cases := []struct {
		name string
		args []string
		want int
	}{
		{"nothing to seed", nil, 0},
		{"unknown flag", []string{"-nope"}, 2},
		{"missing fixture file", []string{"-file", "testdata/absent.toml"}, 1},
		{"typo in fixture file", []string{"-file", "../../internal/services/seed/testdata/typo.toml"}, 1},
		{"database disabled", []string{"-file", "../../internal/services/seed/testdata/todos.toml", "-mock", "2"}, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := run(context.Background(), c.args); got != c.want {
				t.Fatalf("run(%q) = %d, want %d", c.args, got, c.want)
			}
		})
	}
}
