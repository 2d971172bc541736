// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

package timestamp

import (
	"strconv"
	"strings"
)

// MillisecondDigits is the digit count from which an input is taken to be a
// millisecond timestamp. Millisecond timestamps after September 2001 have 13
// digits. This is a heuristic: very large second values are misread.
const MillisecondDigits = 13

// Resolution is the outcome of the unit decision table.
type Resolution struct {
	Format   Format
	Rule     string
	Inferred bool
}

type resolveInput struct {
	current Format
	digits  int
}

type unitRule struct {
	name     string
	applies  func(in resolveInput) bool
	format   Format
	inferred bool
}

// unitRules is evaluated top to bottom, the first matching rule wins. The last
// rule always matches.
var unitRules = []unitRule{
	{
		name:    "explicit seconds",
		applies: func(in resolveInput) bool { return in.current == Seconds },
		format:  Seconds,
	},
	{
		name:    "explicit milliseconds",
		applies: func(in resolveInput) bool { return in.current == Milliseconds },
		format:  Milliseconds,
	},
	{
		name:     "long input",
		applies:  func(in resolveInput) bool { return in.digits >= MillisecondDigits },
		format:   Milliseconds,
		inferred: true,
	},
	{
		name:     "short input",
		applies:  func(resolveInput) bool { return true },
		format:   Seconds,
		inferred: true,
	},
}

func resolve(in resolveInput) Resolution {
	for _, rule := range unitRules {
		if rule.applies(in) {
			return Resolution{Format: rule.format, Rule: rule.name, Inferred: rule.inferred}
		}
	}
	// unreachable, the last rule matches everything
	return Resolution{Format: Seconds, Rule: "fallback", Inferred: true}
}

// Resolve runs the unit decision table for raw under the sticky format
// current. raw does not need to be a valid integer.
func Resolve(raw string, current Format) Resolution {
	return resolve(resolveInput{current: current, digits: countDigits(strings.TrimSpace(raw))})
}

// inferFromEpoch is the output-side inference. It looks at the length of the
// decimal millisecond epoch string, sign included, and does not know which
// unit the value was typed in.
func inferFromEpoch(ms int64) Format {
	if len(strconv.FormatInt(ms, 10)) >= MillisecondDigits {
		return Milliseconds
	}
	return Seconds
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
