// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

package router

// Router -> page

// InitMsg is sent to a page right after it was created so it can navigate.
type InitMsg struct {
	Controll Controll
}

// page -> Router

type NavigateMsg struct {
	rid  int
	Path string
}

type BackMsg struct {
	rid int
}

// Router -> parent

// ChangedMsg reports the route now shown.
type ChangedMsg struct {
	Path string
}

func (m InitMsg) routerID() int     { return m.Controll.rid }
func (m NavigateMsg) routerID() int { return m.rid }
func (m BackMsg) routerID() int     { return m.rid }

type RouterMsg interface {
	routerID() int
}
