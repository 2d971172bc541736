// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

package timestamp

import (
	"strings"
	"time"
)

// State is the page-local state of the timestamp tool. All transitions are
// value methods returning the next state.
type State struct {
	// Input is the text currently typed into the field.
	Input string
	// DateTime is the most recent successfully parsed instant.
	DateTime time.Time
	// Format is the sticky unit. Unset means auto-detect.
	Format Format
	// OutputFormat overrides the unit of the re-encoded number only.
	// Unset falls back to Format.
	OutputFormat Format
}

// NewState returns the initial state with DateTime set to now.
func NewState(now time.Time) State {
	return State{DateTime: now}
}

// SetInput stores typed text. Typing alone never parses.
func (s State) SetInput(raw string) State {
	s.Input = raw
	return s
}

// Commit parses Input, e.g. when the field loses focus.
func (s State) Commit() State {
	if parsed, ok := ParseInput(s.Input, s.Format); ok {
		s.DateTime = parsed.Date
	}
	return s
}

// SelectFormat sets the sticky unit (Unset resets to auto-detect) and
// re-parses the current input if there is any.
func (s State) SelectFormat(f Format) State {
	s.Format = f
	if strings.TrimSpace(s.Input) != "" {
		return s.Commit()
	}
	return s
}

// SelectOutputFormat changes the unit of the displayed number only.
func (s State) SelectOutputFormat(f Format) State {
	s.OutputFormat = f
	return s
}

// EffectiveOutputFormat is the unit Formatted projects onto before inference.
func (s State) EffectiveOutputFormat() Format {
	if s.OutputFormat.Explicit() {
		return s.OutputFormat
	}
	return s.Format
}

// Formatted is the re-encoded timestamp shown next to the date.
func (s State) Formatted() int64 {
	return FormatTimestamp(s.DateTime, s.EffectiveOutputFormat())
}

// Detected reports the unit the current input resolves to. ok is false while
// the field is empty.
func (s State) Detected() (res Resolution, ok bool) {
	if strings.TrimSpace(s.Input) == "" {
		return Resolution{}, false
	}
	return Resolve(s.Input, s.Format), true
}
