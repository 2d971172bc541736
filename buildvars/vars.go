// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

// Package buildvars contains variables injected at build time.
package buildvars

import "runtime/debug"

// Version is set at link time via `-ldflags -X github.com/seriousbug/littletools/buildvars.Version=...`.
// It will be empty for local or development builds.
var Version string

// VersionOrDefault returns `Version` if set, then the main module version
// recorded by `go install`, otherwise the provided default.
func VersionOrDefault(def string) string {
	if len(Version) > 0 {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return def
}
