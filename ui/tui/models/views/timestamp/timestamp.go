// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

// Package timestamp is the page converting Unix timestamps to dates.
package timestamp

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	tscore "github.com/seriousbug/littletools/core/timestamp"
	"github.com/seriousbug/littletools/internal/i18n"
	"github.com/seriousbug/littletools/internal/logging"
	"github.com/seriousbug/littletools/ui/tui/models/helpers/form"
	forminput "github.com/seriousbug/littletools/ui/tui/models/helpers/form/input"
	"github.com/seriousbug/littletools/ui/tui/util"
)

const (
	fieldTimestamp = "timestamp"
	fieldFormat    = "format"
	fieldOutput    = "output"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8655B1"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	detectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("36")).Italic(true)
)

var panelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

type values struct {
	Timestamp string `mapstructure:"timestamp"`
	Format    string `mapstructure:"format"`
	Output    string `mapstructure:"output"`
}

type Model struct {
	state tscore.State
	form  *form.Form[values]
	loc   *time.Location
	now   func() time.Time
	size  util.Size
}

// New builds the page. Dates are shown in loc; now is the clock used for
// the initial date and relative times.
func New(loc *time.Location, now func() time.Time) *Model {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	m := &Model{
		state: tscore.NewState(now()),
		loc:   loc,
		now:   now,
	}

	formatOption := func(f tscore.Format, label string) forminput.Option {
		return forminput.Option{Value: f.String(), Label: i18n.T(label)}
	}
	m.form = form.New(
		form.WithInput[values](fieldTimestamp, forminput.NewText(i18n.T("timestamp.input"), i18n.T("timestamp.placeholder"))),
		form.WithInput[values](fieldFormat, forminput.NewRadio(i18n.T("timestamp.format"),
			formatOption(tscore.Unset, "timestamp.format.auto"),
			formatOption(tscore.Seconds, "timestamp.format.seconds"),
			formatOption(tscore.Milliseconds, "timestamp.format.milliseconds"),
		)),
		form.WithInput[values](fieldOutput, forminput.NewRadio(i18n.T("timestamp.output_format"),
			forminput.Option{Value: "", Label: i18n.T("timestamp.format.same")},
			formatOption(tscore.Seconds, "timestamp.format.seconds"),
			formatOption(tscore.Milliseconds, "timestamp.format.milliseconds"),
		)),
		form.WithOnChange[values](m.changed),
		form.WithOnLeave[values](m.left),
	)
	return m
}

// State is the current page state.
func (m *Model) State() tscore.State {
	return m.state
}

func (m *Model) values() values {
	v, err := m.form.Get()
	if err != nil {
		logging.Warnf("timestamp: reading form: %v", err)
	}
	return v
}

func (m *Model) changed(id string) {
	v := m.values()
	switch id {
	case fieldTimestamp:
		m.state = m.state.SetInput(v.Timestamp)
	case fieldFormat:
		f, err := tscore.ParseFormat(v.Format)
		if err != nil {
			logging.Warnf("timestamp: %v", err)
			return
		}
		m.state = m.state.SelectFormat(f)
	case fieldOutput:
		f, err := tscore.ParseFormat(v.Output)
		if err != nil {
			logging.Warnf("timestamp: %v", err)
			return
		}
		m.state = m.state.SelectOutputFormat(f)
	}
}

// left commits the typed timestamp once the field loses focus.
func (m *Model) left(id string) {
	if id == fieldTimestamp {
		m.state = m.state.Commit()
	}
}

func (m *Model) Init() tea.Cmd {
	return m.form.Init()
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		return m.form.Update(tea.WindowSizeMsg{Width: m.size.Width, Height: m.size.Height})
	}
	return m.form.Update(msg)
}

func (m *Model) View() string {
	width := max(m.size.Width, 1)
	text := lipgloss.NewStyle().Width(width)

	parts := []string{
		titleStyle.Render(i18n.T("timestamp.title")),
		mutedStyle.Width(width).Render(i18n.T("timestamp.description")),
		m.form.View(),
	}
	if res, ok := m.state.Detected(); ok {
		unit := i18n.T("timestamp.unit." + res.Format.String())
		parts = append(parts, detectedStyle.Render(i18n.T("timestamp.detected", unit)))
	}
	now := m.now()
	parts = append(parts,
		panel(width, i18n.T("timestamp.date"), tscore.FormatDate(m.state.DateTime, m.loc, i18n.DateLayout())),
		text.Render(mutedStyle.Render(i18n.T("timestamp.relative"))+" "+tscore.Relative(m.state.DateTime, now)),
		panel(width, i18n.T("timestamp.formatted"), strconv.FormatInt(m.state.Formatted(), 10)),
	)
	return strings.Join(parts, "\n\n")
}

func panel(width int, label, value string) string {
	return panelStyle.Width(max(width-2, 1)).Render(mutedStyle.Render(label) + "\n" + value)
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return m.form.Focus()
}

func (m *Model) Blur() {
	m.form.Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
