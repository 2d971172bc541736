// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

package stack

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/seriousbug/littletools/ui/tui/util"
	"github.com/seriousbug/littletools/util/slicest"
)

// MsgFilter may rewrite or drop (return nil) a message before it reaches
// model.
type MsgFilter = func(model util.Model, msg tea.Msg) tea.Msg

func applyMessageFilters(model util.Model, msg tea.Msg, msgFilters []MsgFilter) tea.Msg {
	return slicest.ReduceD(msgFilters, msg, func(msgFilter MsgFilter, msg tea.Msg) tea.Msg {
		if msg == nil {
			return nil
		}
		return msgFilter(model, msg)
	})
}

// OnlyFocused drops key messages for every item but the focused one.
func OnlyFocused(s *Model) MsgFilter {
	return func(model util.Model, msg tea.Msg) tea.Msg {
		if _, ok := msg.(tea.KeyMsg); !ok {
			return msg
		}
		if s.focussedIndex == FocusAll() || *s.items[s.focussedIndex].Model == model {
			return msg
		}
		return nil
	}
}
