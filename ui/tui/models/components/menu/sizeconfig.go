// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

package menu

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/seriousbug/littletools/ui/tui/models/components/stack"
	"github.com/seriousbug/littletools/ui/tui/util"
	"github.com/seriousbug/littletools/util/slicest"
)

const (
	minSize = 16
	maxSize = 32
)

var SizeConfig = &sizeConfig{}

type sizeConfig struct{}

var _ stack.SizeConfig = (*sizeConfig)(nil)

func (s *sizeConfig) Priority() int { return 20 }

// Calculate fits the widest item name plus marker and margins, within
// [minSize, maxSize] and never more than half of the terminal.
func (s *sizeConfig) Calculate(model util.Model, remainingSize int, totalSize int) int {
	menu, ok := model.(*Model)
	if !ok {
		return minSize
	}
	wanted := slicest.Reduce(menu.Items, func(item Item, widest int) int {
		return max(widest, lipgloss.Width(item.Name))
	}) + 4
	return util.Clamp(min(minSize, remainingSize), wanted, min(maxSize, remainingSize, totalSize/2))
}
