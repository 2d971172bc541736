// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

// Package root is the top level model: header, navigation shell with popups,
// footer.
package root

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/seriousbug/littletools/internal/i18n"
	"github.com/seriousbug/littletools/ui/tui/models/components/header"
	"github.com/seriousbug/littletools/ui/tui/models/components/popup"
	"github.com/seriousbug/littletools/ui/tui/models/components/stack"
	windowtitle "github.com/seriousbug/littletools/ui/tui/models/helpers/title"
	"github.com/seriousbug/littletools/ui/tui/models/views/footer"
	"github.com/seriousbug/littletools/ui/tui/models/views/helppopup"
	"github.com/seriousbug/littletools/ui/tui/models/views/shell"
	"github.com/seriousbug/littletools/ui/tui/util"
)

type Options struct {
	Version string
	Shell   shell.Options
}

type Model struct {
	stack        *stack.Model
	injector     *popup.Injector
	shell        *shell.Model
	footer       *footer.Model
	titleHandler *windowtitle.TitleHandler
	keys         KeyMap
	// keyMap is the last announced key map of the focused model.
	keyMap help.KeyMap
}

func New(opts Options) (*Model, error) {
	_shell, err := shell.New(opts.Shell)
	if err != nil {
		return nil, err
	}
	keys := newKeyMap()
	_footer := footer.New(keys)
	_injector := popup.NewInjector(util.ModelPointer(_shell))

	return &Model{
		stack: stack.New(
			stack.WithOrientation(stack.Vertical),
			stack.WithFocus(stack.FocusIndex(1)),
			stack.WithItem(util.ModelPointer(header.New(opts.Version)), header.SizeConfig),
			stack.WithItem(util.ModelPointer(_injector), stack.VariableSize(1)),
			stack.WithItem(util.ModelPointer(_footer), footer.SizeConfig),
		),
		injector:     _injector,
		shell:        _shell,
		footer:       _footer,
		titleHandler: windowtitle.NewHandler(i18n.T("app.name"), " | "),
		keys:         keys,
	}, nil
}

func (m *Model) Init() tea.Cmd {
	titleCmd := m.titleHandler.Init()
	initCmd := m.stack.Init()
	focusCmd, keyMap := m.stack.Focus()
	keyMapCmd := util.AnnounceKeyMapCmd(keyMap)

	return tea.Sequence(titleCmd, initCmd, focusCmd, keyMapCmd)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// handle keys messages
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Exit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help) && m.helpAllowed(msg):
			return m, popup.Open(util.ModelPointer(helppopup.New(m.footer.KeyMap())))
		}
		return m, m.stack.Update(msg)
	}
	if msg, ok := msg.(util.AnnounceKeyMapMsg); ok {
		m.keyMap = msg.KeyMap
	}
	// handle window title messages
	if cmd, ok := m.titleHandler.Handle(msg); ok {
		return m, cmd
	}
	// handle other messages
	return m, m.stack.Update(msg)
}

// helpAllowed reports whether msg opens the help popup. "?" is left to text
// inputs while one is focused, f1 always works.
func (m *Model) helpAllowed(msg tea.KeyMsg) bool {
	if m.injector.IsOpen() {
		return false
	}
	return msg.String() == "f1" || !util.CapturesText(m.keyMap)
}

func (m *Model) View() string {
	return m.stack.View()
}

// *Model implements tea.Model
var _ tea.Model = (*Model)(nil)
