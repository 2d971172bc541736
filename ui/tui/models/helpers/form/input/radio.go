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
	"github.com/seriousbug/littletools/util/slicest"
)

type Option struct {
	Value string
	Label string
}

// Radio picks exactly one of Options. The first option is selected
// initially.
type Radio struct {
	Label   string
	Options []Option
	KeyMap  RadioKeyMap

	selected int
	focused  bool
}

type RadioKeyMap struct {
	Prev key.Binding
	Next key.Binding
}

func (k RadioKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Prev, k.Next} }

func (k RadioKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Prev, k.Next}} }

func NewRadio(label string, options ...Option) *Radio {
	return &Radio{
		Label:   label,
		Options: options,
		KeyMap: RadioKeyMap{
			Prev: key.NewBinding(
				key.WithKeys("left", "h"),
				key.WithHelp("←/h", "previous option"),
			),
			Next: key.NewBinding(
				key.WithKeys("right", "l", " "),
				key.WithHelp("→/l", "next option"),
			),
		},
	}
}

func (r *Radio) Blur() {
	r.focused = false
}

func (r *Radio) Focus() (tea.Cmd, help.KeyMap) {
	r.focused = true
	return nil, r.KeyMap
}

func (r *Radio) Init() tea.Cmd {
	return nil
}

// Get returns the value of the selected option, or nil without options.
func (r *Radio) Get() any {
	if len(r.Options) == 0 {
		return nil
	}
	return r.Options[r.selected].Value
}

func (r *Radio) Value() string {
	if v, ok := r.Get().(string); ok {
		return v
	}
	return ""
}

func (r *Radio) Reset() {
	r.selected = 0
}

// Set selects the option with the given value. Unknown values are ignored.
func (r *Radio) Set(value any) {
	v, ok := value.(string)
	if !ok {
		return
	}
	if i := slicest.IndexFunc(r.Options, func(o Option) bool { return o.Value == v }); i >= 0 {
		r.selected = i
	}
}

func (r *Radio) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(r.Options) < 2 {
		return nil, form.ActionNone
	}
	n := len(r.Options)
	switch {
	case key.Matches(kmsg, r.KeyMap.Prev):
		r.selected = (r.selected + n - 1) % n
	case key.Matches(kmsg, r.KeyMap.Next):
		r.selected = (r.selected + 1) % n
	default:
		return nil, form.ActionNone
	}
	return nil, form.ActionChanged
}

var (
	optionStyle         = lipgloss.NewStyle()
	selectedOptionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
)

// View lays the options out on one line, or one per line when they do not
// fit into width.
func (r *Radio) View(width int) string {
	options := slicest.MapI(r.Options, func(i int, o Option) string {
		if i == r.selected {
			return selectedOptionStyle.Render("(•) " + o.Label)
		}
		return optionStyle.Render("( ) " + o.Label)
	})

	body := strings.Join(options, "  ")
	if lipgloss.Width(body) > width {
		body = lipgloss.NewStyle().MaxWidth(width).Render(strings.Join(options, "\n"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, renderLabel(r.Label, r.focused, width), body)
}

var _ form.FormInput = (*Radio)(nil)
