// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

package menu

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#8655B1"))
	activeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8655B1")).Bold(true)
	inactiveStyle = lipgloss.NewStyle()
)

func WithItem(id string, name string) Item {
	return Item{Id: id, Name: name}
}

type Item struct {
	Id   string
	Name string
	// Cmd replaces the ItemSelected message when set.
	Cmd tea.Cmd
}

// View renders the item into width cells. The active item (the shown page)
// carries a marker, the cursor is highlighted while the menu is focused.
func (i Item) View(width int, isCursor, isActive, focused bool) string {
	marker := "  "
	if isActive {
		marker = "▍ "
	}
	content := ansi.Truncate(marker+i.Name, max(width, 0), "…")

	switch {
	case isCursor && focused:
		return cursorStyle.Render(content)
	case isActive:
		return activeStyle.Render(content)
	default:
		return inactiveStyle.Render(content)
	}
}

// ItemSelected is sent when enter is pressed on an item without Cmd.
type ItemSelected struct {
	Id string
}
