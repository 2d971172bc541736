// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

package util

import (
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/seriousbug/littletools/util/slicest"
)

type Focusable interface {
	// Focus returns the command to run on focus and the key map that
	// applies while focused. Either may be nil.
	Focus() (tea.Cmd, help.KeyMap)
	Blur()
}

// AnnounceKeyMapMsg tells the footer which keys apply right now.
type AnnounceKeyMapMsg struct {
	KeyMap help.KeyMap
}

func AnnounceKeyMapCmd(k help.KeyMap) tea.Cmd {
	return func() tea.Msg {
		return AnnounceKeyMapMsg{KeyMap: k}
	}
}

// FocusAndAnnounce focuses m and announces the key map it returns.
func FocusAndAnnounce(m Focusable) tea.Cmd {
	cmd, keyMap := m.Focus()
	return tea.Batch(cmd, AnnounceKeyMapCmd(keyMap))
}

// TextEntry is implemented by key maps of inputs that consume printable
// keys. Global single-letter shortcuts stay quiet while one is announced.
type TextEntry interface {
	CapturesText() bool
}

// CapturesText reports whether k (or any key map merged into it) belongs to
// a text input.
func CapturesText(k help.KeyMap) bool {
	te, ok := k.(TextEntry)
	return ok && te.CapturesText()
}

func MergeKeyMaps(keymaps ...help.KeyMap) help.KeyMap {
	return MergedKeyMaps{KeyMaps: keymaps}
}

type MergedKeyMaps struct {
	KeyMaps []help.KeyMap
}

func (m MergedKeyMaps) ShortHelp() []key.Binding {
	return slices.Concat(slicest.Map(m.KeyMaps, func(k help.KeyMap) []key.Binding {
		if k != nil {
			return k.ShortHelp()
		}
		return nil
	})...)
}

func (m MergedKeyMaps) FullHelp() [][]key.Binding {
	return slices.Concat(slicest.Map(m.KeyMaps, func(k help.KeyMap) [][]key.Binding {
		if k != nil {
			return k.FullHelp()
		}
		return nil
	})...)
}

func (m MergedKeyMaps) CapturesText() bool {
	return slices.ContainsFunc(m.KeyMaps, CapturesText)
}

var (
	_ help.KeyMap = MergedKeyMaps{}
	_ TextEntry   = MergedKeyMaps{}
)
