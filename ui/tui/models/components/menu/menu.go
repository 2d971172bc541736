// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

// Package menu is the left navigation list of the shell.
package menu

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/seriousbug/littletools/ui/tui/util"
	"github.com/seriousbug/littletools/util/slicest"
)

type Model struct {
	Items []Item
	// Cursor is the highlighted item, Active the one currently shown.
	Cursor int
	Active int

	size    util.Size
	focused bool
}

func New(items ...Item) *Model {
	return &Model{Items: items}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) || !m.focused {
		return nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		km := DefaultKeyMap()
		switch {
		case key.Matches(msg, km.Up):
			m.Cursor = util.Clamp(0, m.Cursor-1, len(m.Items)-1)
		case key.Matches(msg, km.Down):
			m.Cursor = util.Clamp(0, m.Cursor+1, len(m.Items)-1)
		case key.Matches(msg, km.Select):
			return m.selectCursor()
		}
	}
	return nil
}

func (m *Model) selectCursor() tea.Cmd {
	if len(m.Items) == 0 {
		return nil
	}
	item := m.Items[m.Cursor]
	if item.Cmd != nil {
		return item.Cmd
	}
	return func() tea.Msg { return ItemSelected{Id: item.Id} }
}

// SetActive marks the item with id as shown and moves the cursor onto it.
// Unknown ids are ignored.
func (m *Model) SetActive(id string) {
	if i := slicest.IndexFunc(m.Items, func(item Item) bool { return item.Id == id }); i >= 0 {
		m.Active, m.Cursor = i, i
	}
}

// ActiveId is the id of the active item or "".
func (m *Model) ActiveId() string {
	if m.Active < 0 || m.Active >= len(m.Items) {
		return ""
	}
	return m.Items[m.Active].Id
}

func (m *Model) view(width int) string {
	return strings.Join(slicest.MapI(m.Items, func(i int, item Item) string {
		return item.View(width, i == m.Cursor, i == m.Active, m.focused)
	}), "\n")
}

func (m *Model) View() string {
	return lipgloss.NewStyle().
		MaxWidth(m.size.Width).
		MaxHeight(m.size.Height).
		Margin(0, 1).
		Render(m.view(m.size.Width - 2))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	m.focused = true
	return nil, DefaultKeyMap()
}

func (m *Model) Blur() {
	m.focused = false
}

func (m *Model) Focused() bool {
	return m.focused
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
