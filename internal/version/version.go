// Package version holds build metadata for strainlife.
package version

import "fmt"

// These variables are set at build time using -ldflags
// Example: go build -ldflags "-X github.com/alexiusacademia/strainlife/internal/version.Version=1.0.0"
var (
	// Version is the semantic version of the application
	Version = "0.1.0"

	// BuildTime is the time the binary was built (set via ldflags)
	BuildTime = "unknown"

	// GitCommit is the git commit hash (set via ldflags)
	GitCommit = "unknown"

	// Author of the application
	Author = "Alexius Academia"

	// Year of release
	Year = "2026"
)

// String returns the one-line version banner
func String() string {
	if GitCommit == "unknown" {
		return fmt.Sprintf("strainlife v%s", Version)
	}
	return fmt.Sprintf("strainlife v%s (%s, built %s)", Version, GitCommit, BuildTime)
}
