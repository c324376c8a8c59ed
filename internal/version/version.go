// Package version centralizes the binary's version string.
package version

// Version is the current release. Overridable at build time with
// -ldflags "-X .../internal/version.Version=x.y.z".
var Version = "0.1.0"
