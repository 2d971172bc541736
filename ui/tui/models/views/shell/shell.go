// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

// Package shell is the navigation shell: the menu on the left and the routed
// page next to it.
package shell

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/seriousbug/littletools/internal/i18n"
	"github.com/seriousbug/littletools/internal/logging"
	"github.com/seriousbug/littletools/ui/tui/clipboard"
	"github.com/seriousbug/littletools/ui/tui/models/components/menu"
	"github.com/seriousbug/littletools/ui/tui/models/components/router"
	"github.com/seriousbug/littletools/ui/tui/models/components/stack"
	"github.com/seriousbug/littletools/ui/tui/models/views/about"
	"github.com/seriousbug/littletools/ui/tui/models/views/base64"
	"github.com/seriousbug/littletools/ui/tui/models/views/timestamp"
	"github.com/seriousbug/littletools/ui/tui/util"
	"github.com/seriousbug/littletools/util/slicest"
)

const (
	PathAbout     = "/"
	PathTimestamp = "/timestamp"
	PathBase64    = "/base64"

	menuIndex = 0
	pageIndex = 1
)

type Options struct {
	StartPage string
	Location  *time.Location
	Now       func() time.Time
	Clipboard clipboard.Writer
}

type Model struct {
	stack    *stack.Model
	menu     *menu.Model
	router   *router.Router
	controll router.Controll
	keyMap   KeyMap
}

// focusPageMsg moves focus to the page once a navigation went through.
type focusPageMsg struct{}

// Routes is the route table of the shell.
func Routes(opts Options) []router.Route {
	return []router.Route{
		{
			Path:  PathAbout,
			Title: i18n.T("nav.about"),
			New:   func() util.Model { return about.New() },
		},
		{
			Path:  PathTimestamp,
			Title: i18n.T("nav.timestamp"),
			New:   func() util.Model { return timestamp.New(opts.Location, opts.Now) },
		},
		{
			Path:  PathBase64,
			Title: i18n.T("nav.base64"),
			New:   func() util.Model { return base64.New(opts.Clipboard) },
		},
	}
}

func New(opts Options) (*Model, error) {
	routes := Routes(opts)
	start := opts.StartPage
	if start == "" {
		start = PathAbout
	}
	if slicest.IndexFunc(routes, func(route router.Route) bool { return route.Path == start }) < 0 {
		logging.Warnf("start page %q: %v, showing %s", start, router.ErrUnknownRoute, PathAbout)
		start = PathAbout
	}

	r, controll, err := router.New(routes, start)
	if err != nil {
		return nil, err
	}
	m := menu.New(slicest.Map(routes, func(route router.Route) menu.Item {
		return menu.WithItem(route.Path, route.Title)
	})...)
	m.SetActive(start)

	return &Model{
		stack: stack.New(
			stack.WithOrientation(stack.Horizontal),
			stack.WithFocus(stack.FocusIndex(menuIndex)),
			stack.WithGap(1),
			stack.WithItem(util.ModelPointer(m), menu.SizeConfig),
			stack.WithItem(util.ModelPointer(r), stack.VariableSize(1)),
		),
		menu:     m,
		router:   r,
		controll: controll,
		keyMap:   newKeyMap(),
	}, nil
}

// Current is the path of the shown page.
func (m *Model) Current() string {
	return m.router.Current()
}

// PageFocused reports whether the page, not the menu, holds focus.
func (m *Model) PageFocused() bool {
	return m.stack.Focused() == pageIndex
}

func (m *Model) Init() tea.Cmd {
	return m.stack.Init()
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.PageFocused() && key.Matches(msg, m.keyMap.Menu) {
			return m.setFocus(menuIndex)
		}
	case menu.ItemSelected:
		return tea.Sequence(
			m.controll.Navigate(msg.Id),
			func() tea.Msg { return focusPageMsg{} },
		)
	case focusPageMsg:
		return m.setFocus(pageIndex)
	case router.ChangedMsg:
		m.menu.SetActive(msg.Path)
	}
	return m.stack.Update(msg)
}

func (m *Model) View() string {
	return m.stack.View()
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	cmd, keyMap := m.stack.Focus()
	return cmd, m.withKeys(keyMap)
}

func (m *Model) Blur() {
	m.stack.Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

func (m *Model) setFocus(index int) tea.Cmd {
	if m.stack.Focused() == stack.FocusIndex(index) {
		return nil
	}
	cmd, keyMap := m.stack.SetFocus(stack.FocusIndex(index))
	return tea.Batch(cmd, util.AnnounceKeyMapCmd(m.withKeys(keyMap)))
}

// withKeys adds the shell bindings that apply to the focused side.
func (m *Model) withKeys(keyMap help.KeyMap) help.KeyMap {
	if m.PageFocused() {
		return util.MergeKeyMaps(keyMap, m.keyMap)
	}
	return keyMap
}
