// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

// Package about is the landing page with the project introduction.
package about

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/seriousbug/littletools/internal/i18n"
	"github.com/seriousbug/littletools/ui/tui/util"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8655B1"))
	headingStyle = lipgloss.NewStyle().Bold(true)
	bulletStyle  = lipgloss.NewStyle().PaddingLeft(2)
	linkStyle    = lipgloss.NewStyle().Underline(true)
)

type KeyMap struct {
	Up   key.Binding
	Down key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Up, k.Down} }

func (k KeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Up, k.Down}} }

type Model struct {
	size     util.Size
	focused  bool
	viewport viewport.Model
	keyMap   KeyMap
}

func New() *Model {
	vp := viewport.New(0, 0)
	return &Model{
		viewport: vp,
		keyMap: KeyMap{
			Up:   vp.KeyMap.Up,
			Down: vp.KeyMap.Down,
		},
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		m.viewport.Width = m.size.Width
		m.viewport.Height = m.size.Height
		m.viewport.SetContent(content(m.size.Width))
		return nil
	}
	if _, ok := msg.(tea.KeyMsg); ok && !m.focused {
		return nil
	}
	return util.UpdateTeaModelInplace(msg, &m.viewport)
}

// content renders the page text wrapped to width.
func content(width int) string {
	paragraph := lipgloss.NewStyle().Width(max(width, 1))
	bullets := make([]string, 0, 4)
	for _, id := range []string{"about.free", "about.private", "about.fast", "about.safe"} {
		bullets = append(bullets, bulletStyle.Width(max(width, 3)).Render("• "+i18n.T(id)))
	}

	return strings.Join([]string{
		titleStyle.Render(i18n.T("about.title")),
		paragraph.Render(i18n.T("about.welcome")),
		headingStyle.Render(i18n.T("about.why.title")),
		paragraph.Render(i18n.T("about.why.body")),
		paragraph.Render(i18n.T("about.believe")) + "\n" + strings.Join(bullets, "\n"),
		headingStyle.Render(i18n.T("about.oss.title")),
		paragraph.Render(i18n.T("about.oss.body")),
		linkStyle.Render(i18n.T("footer.source")),
		paragraph.Render(i18n.T("about.closing")),
	}, "\n\n")
}

func (m *Model) View() string {
	return m.viewport.View()
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	m.focused = true
	return nil, m.keyMap
}

func (m *Model) Blur() {
	m.focused = false
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
