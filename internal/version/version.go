// Package version reports the cuppa build version.
package version

import "runtime/debug"

// Version is set at build time via -ldflags "-X github.com/indaco/cuppa/internal/version.Version=1.2.3".
var Version = ""

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// GetVersion returns the linker-provided version, the module version from
// build info, or "dev".
func GetVersion() string {
	if Version != "" {
		return Version
	}
	if info, ok := readBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}
