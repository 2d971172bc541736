// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/seriousbug/littletools/ui/tui/models/views/root"
)

type Options = root.Options

// Run starts the program on the alternate screen and blocks until it quits.
func Run(opts Options) error {
	model, err := root.New(opts)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(
		model,
		tea.WithAltScreen(),
	).Run()
	return err
}
