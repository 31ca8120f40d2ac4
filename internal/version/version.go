// Package version provides build-time version information for huegen.
package version

import (
	"fmt"
	"runtime"
)

// Injected at build time via
// -ldflags "-X github.com/jmylchreest/huegen/internal/version.<name>=...".
var (
	// Version is the semantic version of the application.
	Version = "dev"

	// Commit is the git commit hash of the build.
	Commit = "unknown"

	// Date is the build date in RFC3339 format.
	Date = "unknown"
)

// Info holds the resolved build information for the running binary.
type Info struct {
	Version   string
	Commit    string
	Date      string
	GoVersion string
	Platform  string
}

// GetInfo returns the build information, with the Go version and platform
// filled in from the runtime.
func GetInfo() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a human-readable version string.
func String() string {
	info := GetInfo()
	if info.Commit != "unknown" && info.Date != "unknown" {
		return fmt.Sprintf("huegen version %s (commit: %s, built: %s, %s, %s)",
			info.Version, info.Commit[:8], info.Date, info.GoVersion, info.Platform)
	}
	return fmt.Sprintf("huegen version %s (%s, %s)", info.Version, info.GoVersion, info.Platform)
}

// Short returns just the version number, for cobra's --version plumbing.
func Short() string {
	return Version
}
