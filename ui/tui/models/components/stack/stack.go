// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

package stack

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/seriousbug/littletools/ui/tui/util"
	"github.com/seriousbug/littletools/util/slicest"
)

const (
	Vertical   Orientation = true
	Horizontal Orientation = false
)

type Orientation bool

type Model struct {
	Orientation Orientation
	Align       lipgloss.Position
	Gap         int
	MsgFilters  []MsgFilter

	items         []Item
	size          util.Size
	focussedIndex Focus
}

type Item struct {
	Model      *util.Model
	SizeConfig SizeConfig
	MsgFilters []MsgFilter
	size       int
	oldSize    int
}

func (s *Model) Init() tea.Cmd {
	return tea.Batch(slicest.Map(s.items, func(item Item) tea.Cmd {
		return (*item.Model).Init()
	})...)
}

func (s *Model) Update(msg tea.Msg) tea.Cmd {
	if s.size.Update(msg) {
		s.calculateItemSizes()
		return tea.Batch(s.updateResizedItems(true)...)
	}

	cmds := slicest.Map(s.items, func(item Item) tea.Cmd {
		itemMsg := applyMessageFilters(*item.Model, msg, item.MsgFilters)
		itemMsg = applyMessageFilters(*item.Model, itemMsg, s.MsgFilters)
		if itemMsg == nil {
			return nil
		}
		return (*item.Model).Update(itemMsg)
	})

	// children may want a different size after the update (e.g. the menu)
	s.calculateItemSizes()
	cmds = append(cmds, s.updateResizedItems(false)...)

	return tea.Batch(cmds...)
}

func (s *Model) View() string {
	var (
		joiner func(pos lipgloss.Position, strs ...string) string
		styler func(size int, margin int) lipgloss.Style
	)
	switch s.Orientation {
	case Vertical:
		joiner = lipgloss.JoinVertical
		styler = func(size int, margin int) lipgloss.Style {
			return lipgloss.NewStyle().
				Width(s.size.Width).
				Height(size + margin).
				MaxWidth(s.size.Width).
				MaxHeight(size + margin).
				MarginTop(margin)
		}
	case Horizontal:
		joiner = lipgloss.JoinHorizontal
		styler = func(size int, margin int) lipgloss.Style {
			return lipgloss.NewStyle().
				Width(size + margin).
				Height(s.size.Height).
				MaxWidth(size + margin).
				MaxHeight(s.size.Height).
				MarginLeft(margin)
		}
	}

	return joiner(
		s.Align,
		slicest.MapI(s.items, func(i int, item Item) string {
			if item.size == 0 {
				return ""
			}
			// no gap before the first item
			margin := s.Gap * min(i, 1)
			return styler(item.size, margin).Render((*item.Model).View())
		})...,
	)
}

func (s *Model) Focus() (tea.Cmd, help.KeyMap) {
	if len(s.items) == 0 {
		return nil, nil
	}
	if s.focussedIndex != FocusAll() {
		return (*s.items[s.focussedIndex].Model).Focus()
	}

	cmds := make([]tea.Cmd, len(s.items))
	keyMaps := make([]help.KeyMap, len(s.items))
	for i, item := range s.items {
		cmds[i], keyMaps[i] = (*item.Model).Focus()
	}
	return tea.Batch(cmds...), util.MergeKeyMaps(keyMaps...)
}

func (s *Model) Blur() {
	if len(s.items) == 0 {
		return
	}
	if s.focussedIndex != FocusAll() {
		(*s.items[s.focussedIndex].Model).Blur()
		return
	}
	for _, item := range s.items {
		(*item.Model).Blur()
	}
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

type Focus int

func FocusAll() Focus        { return -1 }
func FocusIndex(i int) Focus { return Focus(i) }

// Focused is the index of the focused item, or FocusAll().
func (s *Model) Focused() Focus {
	return s.focussedIndex
}

// SetFocus moves focus and returns what the newly focused item reports.
func (s *Model) SetFocus(focus Focus) (tea.Cmd, help.KeyMap) {
	s.Blur()
	s.focussedIndex = util.Clamp(FocusAll(), focus, Focus(len(s.items)-1))
	return s.Focus()
}

// Sizes returns the size every item got on the stack axis.
func (s *Model) Sizes() []int {
	return slicest.Map(s.items, func(item Item) int { return item.size })
}
