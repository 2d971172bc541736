// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

// Package timestamp converts Unix timestamps typed by a user into instants and
// back. It owns the seconds/milliseconds unit resolution and the page-local
// state reducer of the timestamp tool. Nothing in here touches the UI.
package timestamp

import (
	"errors"
	"fmt"
	"strings"
)

// Format is the unit a timestamp is expressed in. The zero value means the
// unit is inferred from the input.
type Format int

const (
	Unset Format = iota
	Seconds
	Milliseconds
)

// ErrUnknownFormat is returned by ParseFormat for unrecognised names.
var ErrUnknownFormat = errors.New("unknown timestamp format")

func (f Format) String() string {
	switch f {
	case Seconds:
		return "seconds"
	case Milliseconds:
		return "milliseconds"
	default:
		return "auto"
	}
}

// Explicit reports whether f is a user-selected unit.
func (f Format) Explicit() bool {
	return f == Seconds || f == Milliseconds
}

// ParseFormat maps the textual form of a format back to a Format. The empty
// string is auto.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto", "unset":
		return Unset, nil
	case "s", "sec", "seconds":
		return Seconds, nil
	case "ms", "millis", "milliseconds":
		return Milliseconds, nil
	}
	return Unset, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}
