package version

import (
	"fmt"
	"runtime"
)

// Set at build time, e.g.
// -ldflags "-X github.com/faizmokh/alloy/internal/version.Version=v0.2.0".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info describes the build for `alloy version` and `alloy --version`.
func Info() string {
	return fmt.Sprintf("%s (commit %s, built %s, %s)", Version, Commit, Date, runtime.Version())
}
