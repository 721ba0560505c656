// Package version holds build metadata for the harness binary. The library
// version under test lives in pkg/cstring.
package version

// Populated by the Go linker (-ldflags -X) from magefile.go.
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)
