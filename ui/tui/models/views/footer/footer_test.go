// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.
package footer

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/seriousbug/littletools/internal/i18n"
	"github.com/seriousbug/littletools/ui/tui/util"
)

type keys []key.Binding

func (k keys) ShortHelp() []key.Binding  { return k }
func (k keys) FullHelp() [][]key.Binding { return [][]key.Binding{k} }

var _ help.KeyMap = keys{}

func TestFooter_MergesBaseKeyMap(t *testing.T) {
	i18n.Init("en")
	base := keys{key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit"))}
	page := keys{key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field"))}

	m := New(base)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 4})
	m.Update(util.AnnounceKeyMapMsg{KeyMap: page})

	view := ansi.Strip(m.View())
	for _, want := range []string{"next field", "quit", "Made with ♥ in Illinois", "AGPLv3"} {
		if !strings.Contains(view, want) {
			t.Fatalf("footer missing %q:\n%s", want, view)
		}
	}
	if got := len(m.KeyMap().ShortHelp()); got != 2 {
		t.Fatalf("expected merged key map with 2 bindings, got %d", got)
	}
}

func TestFooter_SizeConfig(t *testing.T) {
	i18n.Init("en")
	m := New(keys{})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 4})
	if got := SizeConfig.Calculate(m, 40, 40); got != viewHeight(m)+1 {
		t.Fatalf("unexpected footer size %d", got)
	}
	if got := SizeConfig.Calculate(m, 1, 40); got != 1 {
		t.Fatalf("footer must not exceed remaining size, got %d", got)
	}
}

func viewHeight(m *Model) int {
	return strings.Count(m.view(), "\n") + 1
}
