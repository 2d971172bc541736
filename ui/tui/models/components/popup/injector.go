// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

// Package popup draws models centred over a dimmed child view. While a popup
// is open it receives all input.
package popup

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/seriousbug/littletools/ui/tui/util"
)

// space taken by the popup frame
const (
	reservedHeight int = 2
	reservedWidth  int = 6
)

var (
	frameStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#8655B1")).
			Margin(0, 1)
	dimmedStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#DDDADA",
		Dark:  "#3C3C3C",
	})
)

type Injector struct {
	child  *util.Model
	popups []*util.Model
	size   util.Size
}

func NewInjector(child *util.Model) *Injector {
	return &Injector{child: child}
}

// IsOpen reports whether a popup is shown.
func (m *Injector) IsOpen() bool {
	return len(m.popups) > 0
}

func (m *Injector) Init() tea.Cmd {
	return (*m.child).Init()
}

func (m *Injector) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		if m.IsOpen() {
			return tea.Batch(
				(*m.activeModel()).Update(m.popupSize()),
				(*m.child).Update(msg),
			)
		}
		return (*m.child).Update(msg)
	}

	switch msg := msg.(type) {
	case openMsg:
		return m.open(msg.Model)
	case closeMsg:
		return m.close()
	case tea.KeyMsg:
		return (*m.activeModel()).Update(msg)
	}

	// everything but input keeps flowing to the child underneath
	if m.IsOpen() {
		return tea.Batch((*m.activeModel()).Update(msg), (*m.child).Update(msg))
	}
	return (*m.child).Update(msg)
}

func (m *Injector) View() string {
	childView := (*m.child).View()
	if !m.IsOpen() {
		return childView
	}
	popupView := frameStyle.Render((*m.activeModel()).View())
	return overlay(dimmedStyle.Render(ansi.Strip(childView)), popupView)
}

func (m *Injector) Focus() (tea.Cmd, help.KeyMap) {
	return (*m.activeModel()).Focus()
}

func (m *Injector) Blur() {
	(*m.activeModel()).Blur()
}

// *Injector implements util.Model
var _ util.Model = (*Injector)(nil)

func (m *Injector) popupSize() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{
		Width:  max(m.size.Width-reservedWidth, 0),
		Height: max(m.size.Height-reservedHeight, 0),
	}
}

func (m *Injector) open(p *util.Model) tea.Cmd {
	m.Blur()
	m.popups = append(m.popups, p)
	return tea.Batch(
		(*p).Init(),
		(*p).Update(m.popupSize()),
		util.FocusAndAnnounce(m),
	)
}

func (m *Injector) close() tea.Cmd {
	if !m.IsOpen() {
		return nil
	}
	m.Blur()
	m.popups = m.popups[:len(m.popups)-1]
	return util.FocusAndAnnounce(m)
}

func (m *Injector) activeModel() *util.Model {
	if m.IsOpen() {
		return m.popups[len(m.popups)-1]
	}
	return m.child
}

// overlay centres top over base. top is clipped to the size of base.
func overlay(base, top string) string {
	baseWidth, baseHeight := lipgloss.Size(base)
	top = lipgloss.NewStyle().MaxWidth(baseWidth).MaxHeight(baseHeight).Render(top)
	topWidth, topHeight := lipgloss.Size(top)

	offsetLeft := (baseWidth - topWidth) / 2
	offsetTop := (baseHeight - topHeight) / 2

	baseLines := strings.Split(base, "\n")
	for i, line := range strings.Split(top, "\n") {
		row := i + offsetTop
		if row >= len(baseLines) {
			break
		}
		left := ansi.Truncate(baseLines[row], offsetLeft, "")
		// pad short base lines so the popup keeps its column
		left += strings.Repeat(" ", max(offsetLeft-ansi.StringWidth(left), 0))
		right := ansi.TruncateLeft(baseLines[row], offsetLeft+topWidth, "")
		baseLines[row] = left + line + right
	}
	return strings.Join(baseLines, "\n")
}
