// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

package router

import tea "github.com/charmbracelet/bubbletea"

// Controll sends navigation requests to the router it belongs to.
type Controll struct {
	rid int
}

func (c Controll) Navigate(path string) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{rid: c.rid, Path: path} }
}

func (c Controll) Back() tea.Cmd {
	return func() tea.Msg { return BackMsg{rid: c.rid} }
}
