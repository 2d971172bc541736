// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

package buildvars

import "testing"

func TestVersionOrDefault(t *testing.T) {
	prev := Version
	defer func() { Version = prev }()

	Version = "1.2.3"
	if got := VersionOrDefault("dev"); got != "1.2.3" {
		t.Fatalf("expected injected version, got %q", got)
	}

	Version = ""
	if got := VersionOrDefault("dev"); got == "" {
		t.Fatalf("expected a non-empty fallback")
	}
}
