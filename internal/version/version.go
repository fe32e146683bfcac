// Package version provides version information for tracelog.
// The Version variable is set at build time via ldflags.
package version

import "runtime"

// Version is the current version of tracelog.
// Set at build time via: -ldflags "-X github.com/xdg/tracelog/internal/version.Version=v1.0.0"
// Defaults to "dev" for development builds.
var Version = "dev"

// String returns the version followed by the Go toolchain and platform,
// e.g. "v1.0.0 (go1.25.4 linux/amd64)".
func String() string {
	return Version + " (" + runtime.Version() + " " + runtime.GOOS + "/" + runtime.GOARCH + ")"
}
