// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

package timestamp

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Parsed is a successfully interpreted timestamp input.
type Parsed struct {
	Date     time.Time
	Format   Format
	Inferred bool
}

// ParseInput trims raw, parses it as a base-10 integer and turns it into an
// instant using the unit picked by Resolve. ok is false when raw is not an
// integer or does not fit into a millisecond epoch; callers must then keep
// their previous value.
func ParseInput(raw string, current Format) (Parsed, bool) {
	trimmed := strings.TrimSpace(raw)
	value, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return Parsed{}, false
	}

	res := Resolve(trimmed, current)
	ms := value
	if res.Format == Seconds {
		if value > math.MaxInt64/1000 || value < math.MinInt64/1000 {
			return Parsed{}, false
		}
		ms = value * 1000
	}

	return Parsed{
		Date:     time.UnixMilli(ms),
		Format:   res.Format,
		Inferred: res.Inferred,
	}, true
}

// FormatTimestamp projects dateTime back onto a unit. With Unset the unit is
// inferred again from the millisecond epoch, which can disagree with the unit
// the value was entered in.
func FormatTimestamp(dateTime time.Time, format Format) int64 {
	ms := dateTime.UnixMilli()
	if format == Unset {
		format = inferFromEpoch(ms)
	}
	if format == Milliseconds {
		return ms
	}
	return floorDiv(ms, 1000)
}

// FormatDate renders dateTime in loc using a Go reference layout. A nil loc
// means time.Local.
func FormatDate(dateTime time.Time, loc *time.Location, layout string) string {
	if loc == nil {
		loc = time.Local
	}
	return dateTime.In(loc).Format(layout)
}

// Relative describes dateTime relative to now, e.g. "3 hours ago".
func Relative(dateTime, now time.Time) string {
	return humanize.RelTime(dateTime, now, "ago", "from now")
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
