// Package version reports what build is running.
//
// Release builds stamp the values with
//
//	-ldflags "-X todos/internal/core/version.version=v0.1.0 -X todos/internal/core/version.commit=abcd123 -X todos/internal/core/version.date=2026-01-02"
//
// Unstamped builds fall back to the VCS settings the go tool embeds
package version

import (
	"runtime"
	"runtime/debug"
)

var (
	service = "todos-api"
	version = "dev"
	commit  = "none"
	date    = "unknown"

	readBuildInfo = debug.ReadBuildInfo
)

// BuildInfo is served by /meta/version
type BuildInfo struct {
	Service string `json:"service" example:"todos-api"`
	Version string `json:"version" example:"v0.1.0"`
	Commit  string `json:"commit"  example:"abcd123"`
	Date    string `json:"date"    example:"2026-01-02"`
	Go      string `json:"go"      example:"go1.25.0"`
}

// Info returns the stamped values, filling unstamped commit and date from vcs.revision and vcs.time
func Info() BuildInfo {
	bi := BuildInfo{Service: service, Version: version, Commit: commit, Date: date, Go: runtime.Version()}
	info, ok := readBuildInfo()
	if !ok {
		return bi
	}
	for _, s := range info.Settings {
		switch {
		case s.Key == "vcs.revision" && bi.Commit == "none":
			bi.Commit = s.Value
		case s.Key == "vcs.time" && bi.Date == "unknown":
			bi.Date = s.Value
		}
	}
	return bi
}
