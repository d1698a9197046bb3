package app

import "fmt"

// Build metadata, overridden with -ldflags "-X .../internal/app.Version=1.2.0".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion formats the build metadata for logs, health and the CLI.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
