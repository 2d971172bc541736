// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

package util

import tea "github.com/charmbracelet/bubbletea"

type updatableSelf[T any] interface {
	Update(tea.Msg) (T, tea.Cmd)
}

// UpdateTeaModelInplace updates a bubbles style value model (one whose
// Update returns its own type) through a pointer.
func UpdateTeaModelInplace[M any](msg tea.Msg, model *M) tea.Cmd {
	if updatable, ok := any(*model).(updatableSelf[M]); ok {
		updated, cmd := updatable.Update(msg)
		*model = updated
		return cmd
	}
	return nil
}
