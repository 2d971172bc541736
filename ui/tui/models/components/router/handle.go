// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

package router

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/seriousbug/littletools/internal/logging"
	windowtitle "github.com/seriousbug/littletools/ui/tui/models/helpers/title"
	"github.com/seriousbug/littletools/ui/tui/util"
)

func (r *Router) navigate(path string) tea.Cmd {
	if _, ok := r.routes[path]; !ok {
		logging.Warnf("navigate: %v: %q", ErrUnknownRoute, path)
		return nil
	}
	if path == r.Current() {
		return nil
	}

	r.leave()
	r.history = append(r.history, path)
	return r.show()
}

func (r *Router) back() tea.Cmd {
	if len(r.history) <= 1 {
		return nil
	}

	r.leave()
	r.history = r.history[:len(r.history)-1]
	return r.show()
}

func (r *Router) leave() {
	if page, ok := r.pages[r.Current()]; ok && r.focused {
		(*page).Blur()
	}
}

// ensure returns the page for path, creating it on first use. The returned
// command initialises a new page and is nil otherwise.
func (r *Router) ensure(path string) (*util.Model, tea.Cmd) {
	if page, ok := r.pages[path]; ok {
		return page, nil
	}
	model := r.routes[path].New()
	page := &model
	r.pages[path] = page
	logging.Debugf("router: created page %s", path)
	return page, tea.Batch(
		model.Init(),
		model.Update(InitMsg{Controll: Controll{rid: r.id}}),
	)
}

// show sizes the current page and focuses it when the router holds focus.
func (r *Router) show() tea.Cmd {
	path := r.Current()
	page, initCmd := r.ensure(path)

	cmds := []tea.Cmd{initCmd, (*page).Update(r.size.ToMsg())}
	if r.focused {
		cmds = append(cmds, util.FocusAndAnnounce(*page))
	}
	changed := func() tea.Msg { return ChangedMsg{Path: path} }
	return tea.Batch(append(cmds, windowtitle.Set(r.routes[path].Title), changed)...)
}

func (r *Router) activeUpdate(msg tea.Msg) tea.Cmd {
	if page, ok := r.pages[r.Current()]; ok {
		return (*page).Update(msg)
	}
	return nil
}
