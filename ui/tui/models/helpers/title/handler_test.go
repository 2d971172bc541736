// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

package windowtitle

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestTitleHandler(t *testing.T) {
	h := NewHandler("Little Tools", " | ")
	if h.Title() != "Little Tools" {
		t.Fatalf("unexpected base title %q", h.Title())
	}

	cmd, handled := h.Handle(Set("Base64 Encoder/Decoder")())
	if !handled || cmd == nil {
		t.Fatalf("expected title change command")
	}
	if h.Title() != "Little Tools | Base64 Encoder/Decoder" {
		t.Fatalf("unexpected title %q", h.Title())
	}

	// same title again is consumed without a command
	if cmd, handled := h.Handle(Set("Base64 Encoder/Decoder")()); !handled || cmd != nil {
		t.Fatalf("expected no-op for repeated title")
	}

	if _, handled := h.Handle(tea.KeyMsg{}); handled {
		t.Fatalf("foreign message handled")
	}

	h.Handle(Set("")())
	if h.Title() != "Little Tools" {
		t.Fatalf("expected base title after reset, got %q", h.Title())
	}
}
