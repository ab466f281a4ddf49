// Package raw reads environment variables without logging.
// The logger bootstraps from it, so it must not import the logger package
package raw

import (
	"os"
	"strconv"
	"strings"
)

// Env is a variable name prefix, e.g. Env("LOG_")
type Env string

func (e Env) lookup(key string) string {
	return strings.TrimSpace(os.Getenv(string(e) + key))
}

// Get returns the trimmed value or def when blank
func (e Env) Get(key, def string) string {
	if v := e.lookup(key); v != "" {
		return v
	}
	return def
}

// Bool accepts 1/true/yes and 0/false/no in any case; anything else is def
func (e Env) Bool(key string, def bool) bool {
	switch strings.ToLower(e.lookup(key)) {
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	default:
		return def
	}
}

// Int returns a non-negative integer or def
func (e Env) Int(key string, def int) int {
	n, err := strconv.Atoi(e.lookup(key))
	if err != nil || n < 0 {
		return def
	}
	return n
}
