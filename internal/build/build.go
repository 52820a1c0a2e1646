// Package build holds version metadata injected at link time.
package build

// Set via -ldflags at release time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
