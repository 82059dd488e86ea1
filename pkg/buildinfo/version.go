// Package buildinfo holds version information injected at link time:
//
//	go build -ldflags "-X github.com/bugadani/embedded-layout/pkg/buildinfo.Version=v0.2.0 \
//	    -X github.com/bugadani/embedded-layout/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/bugadani/embedded-layout/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/embedded-layout
package buildinfo

import "fmt"

var (
	// Version is the semantic version, "dev" for local builds.
	Version = "dev"
	// Commit is the git commit the binary was built from.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)

// String returns the build information on three lines.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s (%s, built %s)\n", Version, Commit, Date)
}

// UserAgent identifies the binary in the Server header of HTTP responses.
func UserAgent() string {
	return "embedded-layout/" + Version
}
