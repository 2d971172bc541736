// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.
package forminput

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/seriousbug/littletools/ui/tui/models/helpers/form"
)

type Button struct {
	Label    string
	Disabled bool
	// OnPress runs when the button is pressed while enabled.
	OnPress func() tea.Cmd
	KeyMap  ButtonKeyMap

	DisabledStyle lipgloss.Style
	BlurredStyle  lipgloss.Style
	FocusedStyle  lipgloss.Style

	focused bool
}

type ButtonKeyMap struct {
	Press key.Binding
}

func (k ButtonKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Press} }

func (k ButtonKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Press}} }

func NewButton(label string, onPress func() tea.Cmd) *Button {
	base := lipgloss.NewStyle().
		Padding(0, 2).
		Border(lipgloss.RoundedBorder())
	return &Button{
		Label:   label,
		OnPress: onPress,
		KeyMap: ButtonKeyMap{
			Press: key.NewBinding(
				key.WithKeys("enter", " "),
				key.WithHelp("enter", strings.ToLower(label)),
			),
		},
		DisabledStyle: base.
			BorderForeground(lipgloss.Color("236")).
			Foreground(lipgloss.Color("238")),
		BlurredStyle: base.
			BorderForeground(lipgloss.Color("240")).
			Foreground(lipgloss.Color("250")),
		FocusedStyle: base.
			BorderForeground(lipgloss.Color("205")).
			Foreground(lipgloss.Color("255")).
			Bold(true),
	}
}

func (b *Button) Focus() (tea.Cmd, help.KeyMap) {
	b.focused = true
	return nil, b.KeyMap
}

func (b *Button) Blur() {
	b.focused = false
}

func (b *Button) IsDisabled() bool {
	return b.Disabled
}

func (b *Button) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	if msg, ok := msg.(tea.KeyMsg); ok && !b.Disabled && key.Matches(msg, b.KeyMap.Press) && b.OnPress != nil {
		return b.OnPress(), form.ActionNone
	}
	return nil, form.ActionNone
}

func (b *Button) View(width int) string {
	if b.Disabled {
		return b.DisabledStyle.MaxWidth(width).Render(b.Label)
	} else if b.focused {
		return b.FocusedStyle.MaxWidth(width).Render(b.Label)
	} else {
		return b.BlurredStyle.MaxWidth(width).Render(b.Label)
	}
}

// not needed
func (b *Button) Get() any      { return nil }
func (b *Button) Init() tea.Cmd { return nil }
func (b *Button) Reset()        {}
func (b *Button) Set(any)       {}

var (
	_ form.FormInput   = (*Button)(nil)
	_ form.Disableable = (*Button)(nil)
)
