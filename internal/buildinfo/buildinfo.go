// Package buildinfo carries version data stamped at link time.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

// Set with -ldflags "-X github.com/aalvaropc/launchenv/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	version, commit, date := Version, Commit, Date
	if version == "dev" {
		version, commit, date = fromModule(version, commit, date)
	}
	return fmt.Sprintf("launchenv %s (commit=%s, date=%s)", version, commit, date)
}

// fromModule fills gaps from the module build info embedded by `go install`.
func fromModule(version, commit, date string) (string, string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return version, commit, date
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		version = v
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if commit == "none" {
				commit = s.Value
			}
		case "vcs.time":
			if date == "unknown" {
				date = s.Value
			}
		}
	}
	return version, commit, date
}
