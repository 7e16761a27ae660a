// Package cmd holds skillindex build metadata. Release builds set these with
// -ldflags "-X github.com/thoreinstein/skillindex/cmd.Version=...".
package cmd

// Reported by skillindex --version.
var (
	// Version is the release tag, or "dev" for local builds.
	Version = "dev"
	// Commit is the git commit the binary was built from.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)
