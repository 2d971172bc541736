// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

// Package helppopup shows the full key help in a popup.
package helppopup

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/seriousbug/littletools/internal/i18n"
	"github.com/seriousbug/littletools/ui/tui/models/components/keyhelp"
	"github.com/seriousbug/littletools/ui/tui/models/components/popup"
	"github.com/seriousbug/littletools/ui/tui/util"
)

var titleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)

type KeyMap struct {
	Close key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Close} }

func (k KeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Close}} }

type Model struct {
	help   *keyhelp.Model
	keyMap KeyMap
}

// New shows the bindings of keyMap.
func New(keyMap help.KeyMap) *Model {
	h := keyhelp.New()
	h.KeyMap = keyMap
	h.Expanded = true
	return &Model{
		help: h,
		keyMap: KeyMap{
			Close: key.NewBinding(
				key.WithKeys("?", "esc", "f1", "q"),
				key.WithHelp("?/esc", i18n.T("help.back")),
			),
		},
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.help.Update(msg)
	case tea.KeyMsg:
		if key.Matches(msg, m.keyMap.Close) {
			return popup.Close()
		}
	}
	return nil
}

func (m *Model) View() string {
	return titleStyle.Render(i18n.T("help.title")) + "\n" + m.help.View()
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, m.keyMap
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
