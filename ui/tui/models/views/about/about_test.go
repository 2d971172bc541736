// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

package about

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/seriousbug/littletools/internal/i18n"
)

func TestAbout_RendersCopy(t *testing.T) {
	i18n.Init("en")
	m := New()
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})

	view := ansi.Strip(m.View())
	for _, want := range []string{"Welcome to Little Tools", "Why Little Tools?", "Open Source", "Private"} {
		if !strings.Contains(view, want) {
			t.Fatalf("about view missing %q:\n%s", want, view)
		}
	}
	for _, line := range strings.Split(view, "\n") {
		if ansi.StringWidth(line) > 80 {
			t.Fatalf("line wider than the page: %q", line)
		}
	}
}

func TestAbout_ScrollsOnlyWhenFocused(t *testing.T) {
	i18n.Init("en")
	m := New()
	m.Update(tea.WindowSizeMsg{Width: 30, Height: 5})

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.viewport.YOffset != 0 {
		t.Fatalf("blurred page scrolled to %d", m.viewport.YOffset)
	}

	if _, km := m.Focus(); km == nil {
		t.Fatalf("expected key map on focus")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.viewport.YOffset != 1 {
		t.Fatalf("expected scroll to 1, got %d", m.viewport.YOffset)
	}
}
