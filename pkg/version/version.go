// Package version exposes build information for rusty-server.
package version

import "runtime"

// Version is the server version reported in the handshake and in statistics.
// Release builds override it with -ldflags "-X github.com/theapemachine/rusty-server/pkg/version.Version=...".
var Version = "0.1.0"

// GoVersion reports the Go toolchain the binary was built with.
func GoVersion() string {
	return runtime.Version()
}
