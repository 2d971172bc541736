// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.
package footer

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/seriousbug/littletools/internal/i18n"
	"github.com/seriousbug/littletools/ui/tui/models/components/keyhelp"
	"github.com/seriousbug/littletools/ui/tui/util"
)

var noteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

type Model struct {
	baseKeyMap help.KeyMap
	size       util.Size
	help       *keyhelp.Model
}

func New(baseKeyMap help.KeyMap) *Model {
	return &Model{
		baseKeyMap: baseKeyMap,
		help:       keyhelp.New(),
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	// catch AnnounceKeyMapMsg and inject baseKeyMap
	if msg, ok := msg.(util.AnnounceKeyMapMsg); ok {
		return m.help.Update(util.AnnounceKeyMapMsg{
			KeyMap: util.MergeKeyMaps(msg.KeyMap, m.baseKeyMap),
		})
	}

	m.size.Update(msg)
	return m.help.Update(msg)
}

// KeyMap is the key map currently shown, base bindings included.
func (m *Model) KeyMap() help.KeyMap {
	return m.help.KeyMap
}

func (m *Model) note() string {
	return noteStyle.Render(i18n.T("footer.love") + " · " + i18n.T("footer.license"))
}

func (m *Model) view() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.help.View(),
		lipgloss.PlaceHorizontal(m.size.Width, lipgloss.Center, m.note()),
	)
}

func (m *Model) View() string {
	return lipgloss.
		NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		MaxWidth(m.size.Width).
		Render(lipgloss.Place(
			m.size.Width, max(m.size.Height-1, 0),
			lipgloss.Left, lipgloss.Top,
			m.view(),
		))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
