// Package buildmeta holds version information injected at build time:
//
//	go build -ldflags="-X github.com/andreixhz/tools-cli/internal/buildmeta.Version=v1.1.0"
package buildmeta

var (
	// Version is the release version of the binary.
	Version = "v1.0.0"
	// Commit is the Git SHA the binary was built from.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)
