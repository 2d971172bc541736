// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.
package forminput

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/seriousbug/littletools/ui/tui/models/helpers/form"
	"github.com/seriousbug/littletools/ui/tui/util"
)

// TextArea is a multi line input. Enter inserts a newline, so leaving it
// takes tab or shift+tab.
type TextArea struct {
	Label       string
	Placeholder string
	// Height is the number of visible lines.
	Height int
	KeyMap TextAreaKeyMap

	input   textarea.Model
	focused bool
}

type TextAreaKeyMap struct {
	Newline key.Binding
}

func (k TextAreaKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Newline} }

func (k TextAreaKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Newline}} }

func (k TextAreaKeyMap) CapturesText() bool { return true }

var _ util.TextEntry = TextAreaKeyMap{}

func NewTextArea(label, placeholder string, height int) *TextArea {
	input := textarea.New()
	input.CharLimit = 0
	input.MaxHeight = 0
	input.ShowLineNumbers = false
	input.Prompt = "│ "
	return &TextArea{
		Label:       label,
		Placeholder: placeholder,
		Height:      max(height, 1),
		KeyMap: TextAreaKeyMap{
			Newline: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", "new line"),
			),
		},
		input: input,
	}
}

func (t *TextArea) Blur() {
	t.input.Blur()
	t.focused = false
}

func (t *TextArea) Focus() (tea.Cmd, help.KeyMap) {
	t.focused = true
	return t.input.Focus(), t.KeyMap
}

func (t *TextArea) Get() any {
	return t.input.Value()
}

func (t *TextArea) Value() string {
	return t.input.Value()
}

func (t *TextArea) Init() tea.Cmd {
	return nil
}

func (t *TextArea) Reset() {
	t.input.Reset()
}

func (t *TextArea) Set(value any) {
	if value, ok := value.(string); ok {
		t.input.SetValue(value)
	}
}

func (t *TextArea) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	before := t.input.Value()
	cmd := util.UpdateTeaModelInplace(msg, &t.input)
	if t.input.Value() != before {
		return cmd, form.ActionChanged
	}
	return cmd, form.ActionNone
}

func (t *TextArea) View(width int) string {
	t.input.SetWidth(max(width, 2))
	t.input.SetHeight(t.Height)
	t.input.Placeholder = t.Placeholder

	return lipgloss.JoinVertical(lipgloss.Left, renderLabel(t.Label, t.focused, width), t.input.View())
}

var _ form.FormInput = (*TextArea)(nil)
