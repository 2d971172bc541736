// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

// Package form arranges inputs in rows, moves focus between them with tab and
// shift+tab, and decodes their values into a struct with mapstructure.
package form

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-viper/mapstructure/v2"
	"github.com/seriousbug/littletools/ui/tui/util"
	"github.com/seriousbug/littletools/util/slicest"
)

type FormInput interface {
	util.Focusable
	Reset()
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Cmd, Action)
	Set(any)
	Get() any
	View(width int) string
}

// Disableable inputs are skipped by focus cycling while disabled.
type Disableable interface {
	IsDisabled() bool
}

type formItem struct {
	id    string
	input FormInput
}

func (i formItem) disabled() bool {
	d, ok := i.input.(Disableable)
	return ok && d.IsDisabled()
}

type formRow struct {
	items []int
}

type Form[T any] struct {
	OnChange func(id string)
	OnLeave  func(id string)
	// Gap is the number of blank lines between rows.
	Gap int

	items       []formItem
	rows        []formRow
	activeIndex int
	focused     bool
	size        util.Size
}

func (f *Form[T]) Init() tea.Cmd {
	return tea.Batch(slicest.Map(f.items, func(item formItem) tea.Cmd {
		return item.input.Init()
	})...)
}

func (f *Form[T]) Update(msg tea.Msg) tea.Cmd {
	if f.size.Update(msg) || !f.focused || len(f.items) == 0 {
		return nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(kmsg, DefaultKeyMap().Next):
			return f.changeActiveIndex(1)
		case key.Matches(kmsg, DefaultKeyMap().Prev):
			return f.changeActiveIndex(-1)
		}
	}

	return f.updateActiveInput(msg)
}

func (f *Form[T]) View() string {
	rows := slicest.Map(f.rows, func(row formRow) string {
		width := f.size.Width / len(row.items)
		return lipgloss.JoinHorizontal(
			lipgloss.Top,
			slicest.Map(row.items, func(i int) string {
				return lipgloss.NewStyle().Width(width).Render(f.items[i].input.View(width))
			})...,
		)
	})
	return strings.Join(rows, strings.Repeat("\n", f.Gap+1))
}

func (f *Form[T]) Focus() (tea.Cmd, help.KeyMap) {
	if len(f.items) == 0 {
		return nil, nil
	}
	f.focused = true
	if f.items[f.activeIndex].disabled() {
		if next, ok := f.nextEnabled(f.activeIndex, 1); ok {
			f.activeIndex = next
		}
	}
	cmd, keyMap := f.items[f.activeIndex].input.Focus()
	return cmd, util.MergeKeyMaps(keyMap, DefaultKeyMap())
}

func (f *Form[T]) Blur() {
	if !f.focused || len(f.items) == 0 {
		return
	}
	f.focused = false
	f.leave(f.activeIndex)
}

// *Form implements util.Model
var _ util.Model = (*Form[any])(nil)

// ActiveId is the id of the focused (or last focused) input.
func (f *Form[T]) ActiveId() string {
	if len(f.items) == 0 {
		return ""
	}
	return f.items[f.activeIndex].id
}

// FocusId moves focus to the input with id.
func (f *Form[T]) FocusId(id string) tea.Cmd {
	i := slicest.IndexFunc(f.items, func(item formItem) bool { return item.id == id })
	if i < 0 || i == f.activeIndex {
		return nil
	}
	return f.changeActiveIndex(i - f.activeIndex)
}

func (f *Form[T]) Reset() tea.Cmd {
	if len(f.items) == 0 {
		return nil
	}
	for _, item := range f.items {
		item.input.Reset()
	}
	return f.FocusId(f.items[0].id)
}

func (f *Form[T]) updateActiveInput(msg tea.Msg) tea.Cmd {
	item := f.items[f.activeIndex]
	cmd, action := item.input.Update(msg)

	var actionCmd tea.Cmd
	switch action {
	case ActionChanged:
		if f.OnChange != nil {
			f.OnChange(item.id)
		}
	case ActionNext:
		actionCmd = f.changeActiveIndex(1)
	case ActionPrev:
		actionCmd = f.changeActiveIndex(-1)
	}
	return tea.Batch(cmd, actionCmd)
}

// nextEnabled walks from index in direction step (wrapping) and returns the
// first enabled item other than index.
func (f *Form[T]) nextEnabled(index, step int) (int, bool) {
	n := len(f.items)
	for i := 1; i < n; i++ {
		candidate := ((index+step*i)%n + n) % n
		if !f.items[candidate].disabled() {
			return candidate, true
		}
	}
	return index, false
}

func (f *Form[T]) leave(index int) {
	f.items[index].input.Blur()
	if f.OnLeave != nil {
		f.OnLeave(f.items[index].id)
	}
}

// changeActiveIndex moves focus by delta items. A delta landing on a
// disabled item keeps walking in the same direction.
func (f *Form[T]) changeActiveIndex(delta int) tea.Cmd {
	if delta == 0 || len(f.items) < 2 {
		return nil
	}
	n := len(f.items)
	target := ((f.activeIndex+delta)%n + n) % n
	if f.items[target].disabled() {
		step := 1
		if delta < 0 {
			step = -1
		}
		next, ok := f.nextEnabled(target, step)
		if !ok || next == f.activeIndex {
			return nil
		}
		target = next
	}

	if f.focused {
		f.leave(f.activeIndex)
	}
	f.activeIndex = target
	if !f.focused {
		return nil
	}
	cmd, keyMap := f.items[f.activeIndex].input.Focus()
	return tea.Batch(cmd, util.AnnounceKeyMapCmd(util.MergeKeyMaps(keyMap, DefaultKeyMap())))
}

// Get decodes the value of every input into a T, keyed by input id.
func (f *Form[T]) Get() (T, error) {
	var data T
	values := make(map[string]any, len(f.items))
	for _, item := range f.items {
		if v := item.input.Get(); v != nil {
			values[item.id] = v
		}
	}
	err := mapstructure.Decode(values, &data)
	return data, err
}

// Set fills every input whose id matches a field of data.
func (f *Form[T]) Set(data T) error {
	values := make(map[string]any, len(f.items))
	if err := mapstructure.Decode(data, &values); err != nil {
		return err
	}
	for _, item := range f.items {
		if value, ok := values[item.id]; ok {
			item.input.Set(value)
		}
	}
	return nil
}

// SetValue fills the input with id. Unknown ids are ignored.
func (f *Form[T]) SetValue(id string, value any) {
	for _, item := range f.items {
		if item.id == id {
			item.input.Set(value)
			return
		}
	}
}
