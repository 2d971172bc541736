// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

package header

import (
	"github.com/seriousbug/littletools/ui/tui/models/components/stack"
	"github.com/seriousbug/littletools/ui/tui/util"
)

// minTotal is the terminal height below which the header is hidden.
const minTotal = 12

var SizeConfig = &sizeConfig{}

type sizeConfig struct{}

var _ stack.SizeConfig = (*sizeConfig)(nil)

func (s *sizeConfig) Priority() int { return 10 }

func (s *sizeConfig) Calculate(_ util.Model, _ int, totalSize int) int {
	if totalSize >= minTotal {
		// one line plus the bottom border
		return 2
	}
	return 0
}
