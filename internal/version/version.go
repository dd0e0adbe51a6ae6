// Package version exposes the build version of devrando.
package version

// Version is the devrando version, overridden at build time via
// -ldflags "-X github.com/devrando/devrando/internal/version.Version=...".
var Version = "dev"
