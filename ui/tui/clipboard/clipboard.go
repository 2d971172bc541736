// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

// Package clipboard writes page output to the system clipboard from a tea.Cmd.
package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrDisabled is returned by Disabled.
var ErrDisabled = errors.New("clipboard disabled by configuration")

type Writer interface {
	WriteAll(text string) error
}

// System writes to the OS clipboard.
type System struct{}

func (System) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Disabled refuses every write.
type Disabled struct{}

func (Disabled) WriteAll(string) error {
	return ErrDisabled
}

// CopiedMsg reports the outcome of Copy.
type CopiedMsg struct {
	Text string
	Err  error
}

// New returns System when enabled, otherwise Disabled.
func New(enabled bool) Writer {
	if enabled {
		return System{}
	}
	return Disabled{}
}

func Copy(w Writer, text string) tea.Cmd {
	return func() tea.Msg {
		return CopiedMsg{Text: text, Err: w.WriteAll(text)}
	}
}
