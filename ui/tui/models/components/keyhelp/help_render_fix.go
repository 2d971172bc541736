// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

// Package keyhelp renders key help. It replaces help.Model's own views, which
// do not drop disabled bindings reliably and overflow narrow widths.
package keyhelp

import (
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// fit keeps the leading parts that fit into width. If a part had to be
// dropped the tail (an ellipsis) is appended when it still fits.
func fit(parts []string, width int, tail string) []string {
	var (
		out  []string
		used int
	)
	tailLen := lipgloss.Width(tail)
	for i, part := range parts {
		partLen := lipgloss.Width(part)
		last := i == len(parts)-1
		if (last && used+partLen <= width) || (!last && used+partLen+tailLen <= width) {
			used += partLen
			out = append(out, part)
			continue
		}
		if used+tailLen <= width {
			out = append(out, tail)
		}
		break
	}
	return out
}

func enabled(b key.Binding) bool { return b.Enabled() }

// ShortHelpView renders bindings on one line.
func ShortHelpView(m help.Model, bindings []key.Binding) string {
	var items []string
	separator := m.Styles.ShortSeparator.Inline(true).Render(m.ShortSeparator)
	for _, kb := range bindings {
		if !kb.Enabled() {
			continue
		}
		var sep string
		if len(items) > 0 {
			sep = separator
		}
		items = append(items, sep+
			m.Styles.ShortKey.Inline(true).Render(kb.Help().Key)+" "+
			m.Styles.ShortDesc.Inline(true).Render(kb.Help().Desc))
	}
	if len(items) == 0 {
		return ""
	}

	tail := " " + m.Styles.Ellipsis.Inline(true).Render(m.Ellipsis)
	return lipgloss.JoinHorizontal(lipgloss.Top, fit(items, m.Width, tail)...)
}

// FullHelpView renders one column per group of bindings.
func FullHelpView(m help.Model, groups [][]key.Binding) string {
	var cols []string
	separator := m.Styles.FullSeparator.Inline(true).Render(m.FullSeparator)

	for _, group := range groups {
		// groups with only disabled bindings are skipped
		if !slices.ContainsFunc(group, enabled) {
			continue
		}
		var sep string
		if len(cols) > 0 {
			sep = separator
		}

		var keys, descriptions []string
		for _, binding := range group {
			if !binding.Enabled() {
				continue
			}
			keys = append(keys, binding.Help().Key)
			descriptions = append(descriptions, binding.Help().Desc)
		}

		cols = append(cols, lipgloss.JoinHorizontal(lipgloss.Top,
			sep,
			m.Styles.FullKey.Render(lipgloss.JoinVertical(lipgloss.Left, keys...)),
			" ",
			m.Styles.FullDesc.Render(lipgloss.JoinVertical(lipgloss.Left, descriptions...)),
		))
	}
	if len(cols) == 0 {
		return ""
	}

	tail := " " + m.Styles.Ellipsis.Inline(true).Render(m.Ellipsis)
	return lipgloss.JoinHorizontal(lipgloss.Top, fit(cols, m.Width, tail)...)
}
