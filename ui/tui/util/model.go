// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

// Package util holds the small contracts every TUI component follows: the
// pointer based Model interface, focus and key map announcements, and sizing.
package util

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Model is a bubbletea model updated in place. Components hold their
// children as *Model so a parent and a router can share one instance.
type Model interface {
	Init() tea.Cmd
	Update(tea.Msg) tea.Cmd
	View() string
	Focusable
}

func ptr[T any](v T) *T { return &v }

// ModelPointer boxes a concrete model pointer into a shared *Model.
func ModelPointer[T any, PT interface {
	*T
	Model
}](v PT) *Model {
	return ptr(Model(v))
}

// BorrowModel unboxes m. The returned func stores the model back.
func BorrowModel[T any, PT interface {
	*T
	Model
}](m *Model) (PT, func()) {
	t := (*m).(PT)
	return t, func() { *m = Model(t) }
}

// BorrowModelFunc runs fn with the concrete model behind m.
func BorrowModelFunc[T any, PT interface {
	*T
	Model
}](m *Model, fn func(PT)) {
	t, done := BorrowModel[T, PT](m)
	fn(t)
	done()
}
