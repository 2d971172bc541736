// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

// Package router maps paths to pages. Pages are created on first visit and
// kept for the rest of the session, so their state survives navigation.
package router

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/seriousbug/littletools/ui/tui/util"
)

var ErrUnknownRoute = errors.New("unknown route")

var routerId = 1

// Route binds a path to a page factory. Title is the window title suffix.
type Route struct {
	Path  string
	Title string
	New   func() util.Model
}

type Router struct {
	id      int
	size    util.Size
	focused bool

	routes  map[string]Route
	pages   map[string]*util.Model
	history []string
}

// New validates the route table and shows initial.
func New(routes []Route, initial string) (*Router, Controll, error) {
	table := make(map[string]Route, len(routes))
	for _, r := range routes {
		if r.New == nil {
			return nil, Controll{}, fmt.Errorf("route %q has no page", r.Path)
		}
		if _, dup := table[r.Path]; dup {
			return nil, Controll{}, fmt.Errorf("duplicate route %q", r.Path)
		}
		table[r.Path] = r
	}
	if _, ok := table[initial]; !ok {
		return nil, Controll{}, fmt.Errorf("%w: %q", ErrUnknownRoute, initial)
	}

	id := routerId
	routerId++
	return &Router{
		id:      id,
		routes:  table,
		pages:   make(map[string]*util.Model, len(table)),
		history: []string{initial},
	}, Controll{rid: id}, nil
}

// Current is the path shown right now.
func (r *Router) Current() string {
	return r.history[len(r.history)-1]
}

// Has reports whether path is in the route table.
func (r *Router) Has(path string) bool {
	_, ok := r.routes[path]
	return ok
}

func (r *Router) Init() tea.Cmd {
	return r.show()
}

func (r *Router) Update(msg tea.Msg) tea.Cmd {
	if r.size.Update(msg) {
		return r.activeUpdate(msg)
	}

	if rmsg, ok := msg.(RouterMsg); ok {
		if rmsg.routerID() != r.id {
			// never hand a parent's Controll down to pages
			if _, isInit := msg.(InitMsg); isInit {
				return nil
			}
			return r.activeUpdate(msg)
		}
		switch msg := msg.(type) {
		case NavigateMsg:
			return r.navigate(msg.Path)
		case BackMsg:
			return r.back()
		}
		return nil
	}

	return r.activeUpdate(msg)
}

func (r *Router) View() string {
	if page, ok := r.pages[r.Current()]; ok {
		return (*page).View()
	}
	return ""
}

func (r *Router) Focus() (tea.Cmd, help.KeyMap) {
	r.focused = true
	page, initCmd := r.ensure(r.Current())
	cmd, keyMap := (*page).Focus()
	return tea.Batch(initCmd, cmd), keyMap
}

func (r *Router) Blur() {
	r.focused = false
	if page, ok := r.pages[r.Current()]; ok {
		(*page).Blur()
	}
}

// *Router implements util.Model
var _ util.Model = (*Router)(nil)
