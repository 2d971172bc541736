// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

package form

// Action is what an input asks its form to do after an update.
type Action int

const (
	ActionNone Action = iota
	// ActionChanged reports a new value.
	ActionChanged
	ActionNext
	ActionPrev
)
