// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

package base64

// State is the page-local state of the Base64 tool. Output is always derived
// from Input and Mode.
type State struct {
	Input  string
	Output string
	Mode   Mode
}

// NewState starts empty in encode mode.
func NewState() State {
	return State{Mode: Encode}
}

func (s State) SetInput(input string) State {
	s.Input = input
	s.Output = Transform(s.Input, s.Mode)
	return s
}

func (s State) SetMode(mode Mode) State {
	s.Mode = mode
	s.Output = Transform(s.Input, s.Mode)
	return s
}

// Clear empties the input, and with it the output.
func (s State) Clear() State {
	return s.SetInput("")
}

// CanCopy reports whether there is a non-error output worth copying.
func (s State) CanCopy() bool {
	return s.Output != "" && !IsError(s.Output)
}
