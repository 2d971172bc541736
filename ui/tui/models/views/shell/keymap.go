// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.
package shell

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/seriousbug/littletools/internal/i18n"
)

type KeyMap struct {
	Menu key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Menu}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Menu}}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

func newKeyMap() KeyMap {
	return KeyMap{
		Menu: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", i18n.T("help.menu")),
		),
	}
}
