// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

package form_test

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

func contains(view, s string) bool {
	return strings.Contains(ansi.Strip(view), s)
}
