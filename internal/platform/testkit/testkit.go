// Package testkit provides testing helpers shared across packages
package testkit

import (
	"fmt"
	"strings"
	"sync"
	"testing"
)

// serial guards tests that touch package level state (registries, seams, env)
var serial sync.Mutex

// Swap replaces *target for the duration of the test; the old value comes back on cleanup
func Swap[T any](t *testing.T, target *T, replacement T) {
	t.Helper()
	orig := *target
	*target = replacement
	t.Cleanup(func() { *target = orig })
}

// Serial holds a process wide lock until the test ends.
// Do not combine with t.Parallel in the same test
func Serial(t *testing.T) {
	t.Helper()
	serial.Lock()
	t.Cleanup(serial.Unlock)
}

// MustPanic asserts that fn panics and returns the recovered value rendered as text
func MustPanic(t *testing.T, fn func()) string {
	t.Helper()
	var (
		msg      string
		panicked bool
	)
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicked = true
				msg = fmt.Sprint(r)
			}
		}()
		fn()
	}()
	if !panicked {
		t.Fatalf("expected panic, got none")
	}
	return msg
}

// MustPanicWith asserts that fn panics with a message containing want
func MustPanicWith(t *testing.T, want string, fn func()) {
	t.Helper()
	if msg := MustPanic(t, fn); !strings.Contains(msg, want) {
		t.Fatalf("panic %q does not mention %q", msg, want)
	}
}

// MustContain fails the test when s does not contain sub
func MustContain(t *testing.T, s, sub string) {
	t.Helper()
	if !strings.Contains(s, sub) {
		t.Fatalf("%q does not contain %q", s, sub)
	}
}
