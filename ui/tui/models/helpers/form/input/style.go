// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.
package forminput

import "github.com/charmbracelet/lipgloss"

var (
	labelStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	focusedLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
)

func renderLabel(label string, focused bool, width int) string {
	if focused {
		return focusedLabelStyle.MaxWidth(width).Render(label)
	}
	return labelStyle.MaxWidth(width).Render(label)
}
