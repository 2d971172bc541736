// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

package header

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/seriousbug/littletools/internal/i18n"
	"github.com/seriousbug/littletools/ui/tui/util"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8655B1"))
	taglineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type Model struct {
	size util.Size
	// Version is shown next to the tagline when set.
	Version string
}

func New(version string) *Model {
	return &Model{Version: version}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	m.size.Update(msg)
	return nil
}

func (m *Model) line() string {
	line := titleStyle.Render(i18n.T("app.name")) + "  " + taglineStyle.Render(i18n.T("app.tagline"))
	if m.Version != "" {
		line += taglineStyle.Render("  " + m.Version)
	}
	return line
}

func (m *Model) View() string {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false).
		BorderBottom(true).
		MaxWidth(m.size.Width).
		Render(lipgloss.PlaceHorizontal(m.size.Width, lipgloss.Center, m.line()))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
