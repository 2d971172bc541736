// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

package windowtitle

import tea "github.com/charmbracelet/bubbletea"

type titleMsg string

// Set requests title as the suffix of the window title. "" shows the base only.
func Set(title string) tea.Cmd {
	return func() tea.Msg { return titleMsg(title) }
}
