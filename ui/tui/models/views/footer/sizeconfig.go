// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.
package footer

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/seriousbug/littletools/ui/tui/models/components/stack"
	"github.com/seriousbug/littletools/ui/tui/util"
)

var SizeConfig = &sizeConfig{}

type sizeConfig struct{}

var _ stack.SizeConfig = (*sizeConfig)(nil)

func (s *sizeConfig) Priority() int { return 20 }

// Calculate reserves the border line plus the rendered help and note.
func (s *sizeConfig) Calculate(model util.Model, remainingSize int, _ int) int {
	if footer, ok := model.(*Model); ok {
		return min(lipgloss.Height(footer.view())+1, remainingSize)
	}
	return min(3, remainingSize)
}
