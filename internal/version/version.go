package version

import "fmt"

var (
	// Version is the semantic version of the console.
	Version = "0.1.0"

	// GitCommit is set at build time through -ldflags.
	GitCommit = ""
)

// FullVersion returns the version including the commit when known.
func FullVersion() string {
	if GitCommit == "" {
		return Version
	}
	return fmt.Sprintf("%s (%s)", Version, GitCommit)
}
