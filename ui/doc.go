// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

// Package ui contains the user interfaces of Little Tools: the cobra command
// line in ui/cli and the bubbletea terminal UI in ui/tui.
package ui
