package config

import (
	"testing"
	"time"

	kit "todos/internal/platform/testkit"
)

func TestPrefixNestsAndKeys(t *testing.T) {
	c := New().Prefix("CORE_").Prefix("API_")
	if got := c.Key("PORT"); got != "CORE_API_PORT" {
		t.Fatalf("Key = %q, want CORE_API_PORT", got)
	}
	if got := New().Key("DATABASE_URL"); got != "DATABASE_URL" {
		t.Fatalf("root Key = %q", got)
	}
}

func TestMustString(t *testing.T) {
	c := New().Prefix("DATABASE_")
	t.Setenv("DATABASE_USER", "  todos ")
	if got := c.MustString("USER"); got != "todos" {
		t.Fatalf("MustString = %q, want todos", got)
	}

	msg := kit.MustPanic(t, func() { _ = c.MustString("NAME") })
	if msg == "" {
		t.Fatalf("panic message should not be empty")
	}
	t.Setenv("DATABASE_HOST", "   ")
	kit.MustPanic(t, func() { _ = c.MustString("HOST") })
}

func TestMayString(t *testing.T) {
	c := New().Prefix("S_")
	if got := c.MayString("MISSING", "def"); got != "def" {
		t.Fatalf("MayString default = %q", got)
	}
	t.Setenv("S_NAME", " todos-api ")
	if got := c.MayString("NAME", "x"); got != "todos-api" {
		t.Fatalf("MayString value = %q", got)
	}
}

func TestMayParsersFallBack(t *testing.T) {
	c := New().Prefix("MAY_")
	t.Setenv("MAY_INT", " 7 ")
	t.Setenv("MAY_INT_BAD", "seven")
	t.Setenv("MAY_BOOL", "true")
	t.Setenv("MAY_BOOL_NUM", "0")
	t.Setenv("MAY_BOOL_BAD", "nope")
	t.Setenv("MAY_DUR", "150ms")
	t.Setenv("MAY_DUR_BAD", "soon")

	if got := c.MayInt("INT", 0); got != 7 {
		t.Fatalf("MayInt = %d", got)
	}
	if got := c.MayInt("INT_BAD", 3); got != 3 {
		t.Fatalf("MayInt malformed = %d, want default", got)
	}
	if got := c.MayInt("INT_MISSING", 9); got != 9 {
		t.Fatalf("MayInt missing = %d", got)
	}

	if !c.MayBool("BOOL", false) || c.MayBool("BOOL_NUM", true) {
		t.Fatalf("MayBool parse mismatch")
	}
	if !c.MayBool("BOOL_BAD", true) || !c.MayBool("BOOL_MISSING", true) {
		t.Fatalf("MayBool should fall back to default")
	}

	if got := c.MayDuration("DUR", time.Second); got != 150*time.Millisecond {
		t.Fatalf("MayDuration = %v", got)
	}
	if got := c.MayDuration("DUR_BAD", time.Minute); got != time.Minute {
		t.Fatalf("MayDuration malformed = %v, want default", got)
	}
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("CORS_")
	def := []string{"*"}

	if got := c.MayCSV("ORIGINS", def); len(got) != 1 || got[0] != "*" {
		t.Fatalf("MayCSV default = %#v", got)
	}

	t.Setenv("CORS_ORIGINS", " http://a.test, http://b.test , ,")
	got := c.MayCSV("ORIGINS", def)
	if len(got) != 2 || got[0] != "http://a.test" || got[1] != "http://b.test" {
		t.Fatalf("MayCSV = %#v", got)
	}

	t.Setenv("CORS_ORIGINS", " , ,")
	if got := c.MayCSV("ORIGINS", def); len(got) != 1 || got[0] != "*" {
		t.Fatalf("MayCSV all blank = %#v, want default", got)
	}
}
