// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

// Package base64 is the page encoding text to Base64 and back.
package base64

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	b64core "github.com/seriousbug/littletools/core/base64"
	"github.com/seriousbug/littletools/internal/i18n"
	"github.com/seriousbug/littletools/internal/logging"
	"github.com/seriousbug/littletools/ui/tui/clipboard"
	"github.com/seriousbug/littletools/ui/tui/models/helpers/form"
	forminput "github.com/seriousbug/littletools/ui/tui/models/helpers/form/input"
	"github.com/seriousbug/littletools/ui/tui/util"
)

const (
	fieldMode  = "mode"
	fieldInput = "input"
	fieldClear = "clear"
	fieldCopy  = "copy"

	inputHeight = 5
)

var (
	titleStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8655B1"))
	mutedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	placeholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

var outputStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

type values struct {
	Mode  string `mapstructure:"mode"`
	Input string `mapstructure:"input"`
}

type Model struct {
	state     b64core.State
	clipboard clipboard.Writer
	form      *form.Form[values]
	input     *forminput.TextArea
	copy      *forminput.Button
	copied    bool
	size      util.Size
}

// New builds the page. Copy writes through w.
func New(w clipboard.Writer) *Model {
	if w == nil {
		w = clipboard.Disabled{}
	}
	m := &Model{
		state:     b64core.NewState(),
		clipboard: w,
		input:     forminput.NewTextArea("", "", inputHeight),
	}
	m.copy = forminput.NewButton(i18n.T("base64.copy"), m.copyOutput)

	m.form = form.New(
		form.WithInput[values](fieldMode, forminput.NewRadio(i18n.T("base64.mode"),
			forminput.Option{Value: b64core.Encode.String(), Label: i18n.T("base64.mode.encode")},
			forminput.Option{Value: b64core.Decode.String(), Label: i18n.T("base64.mode.decode")},
		)),
		form.WithInput[values](fieldInput, m.input),
		form.WithInput[values](fieldClear, forminput.NewButton(i18n.T("base64.clear"), m.clear)),
		form.WithInline[values](fieldCopy, m.copy),
		form.WithOnChange[values](m.changed),
	)
	m.sync()
	return m
}

// State is the current page state.
func (m *Model) State() b64core.State {
	return m.state
}

func (m *Model) changed(id string) {
	v, err := m.form.Get()
	if err != nil {
		logging.Warnf("base64: reading form: %v", err)
		return
	}
	switch id {
	case fieldMode:
		mode, err := b64core.ParseMode(v.Mode)
		if err != nil {
			logging.Warnf("base64: %v", err)
			return
		}
		m.state = m.state.SetMode(mode)
	case fieldInput:
		m.state = m.state.SetInput(v.Input)
	}
	m.sync()
}

// sync updates the widgets that depend on the state.
func (m *Model) sync() {
	m.copied = false
	m.copy.Label = i18n.T("base64.copy")
	m.copy.Disabled = !m.state.CanCopy()

	if m.state.Mode == b64core.Decode {
		m.input.Label = i18n.T("base64.input.base64")
		m.input.Placeholder = i18n.T("base64.placeholder.decode")
	} else {
		m.input.Label = i18n.T("base64.input.plain")
		m.input.Placeholder = i18n.T("base64.placeholder.encode")
	}
}

func (m *Model) clear() tea.Cmd {
	m.state = m.state.Clear()
	m.input.Reset()
	m.sync()
	return nil
}

func (m *Model) copyOutput() tea.Cmd {
	if !m.state.CanCopy() {
		return nil
	}
	return clipboard.Copy(m.clipboard, m.state.Output)
}

func (m *Model) Init() tea.Cmd {
	return m.form.Init()
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		return m.form.Update(tea.WindowSizeMsg{Width: m.size.Width, Height: m.size.Height})
	}
	if msg, ok := msg.(clipboard.CopiedMsg); ok {
		m.handleCopied(msg)
		return nil
	}
	return m.form.Update(msg)
}

func (m *Model) handleCopied(msg clipboard.CopiedMsg) {
	if msg.Text != m.state.Output {
		// output changed while the write was in flight
		return
	}
	if msg.Err != nil {
		logging.Warnf("base64: copy to clipboard: %v", msg.Err)
		return
	}
	m.copied = true
	m.copy.Label = i18n.T("base64.copied")
}

func (m *Model) outputLabel() string {
	if m.state.Mode == b64core.Decode {
		return i18n.T("base64.output.plain")
	}
	return i18n.T("base64.output.base64")
}

func (m *Model) View() string {
	width := max(m.size.Width, 1)

	output := placeholderStyle.Render(i18n.T("base64.output.placeholder"))
	switch {
	case b64core.IsError(m.state.Output):
		output = errorStyle.Render(m.state.Output)
	case m.state.Output != "":
		output = m.state.Output
	}

	return strings.Join([]string{
		titleStyle.Render(i18n.T("base64.title")),
		mutedStyle.Width(width).Render(i18n.T("base64.description")),
		m.form.View(),
		mutedStyle.Render(m.outputLabel()),
		outputStyle.Width(max(width-2, 1)).Render(output),
	}, "\n\n")
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return m.form.Focus()
}

func (m *Model) Blur() {
	m.form.Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
