// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

package timestamp

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	tscore "github.com/seriousbug/littletools/core/timestamp"
	"github.com/seriousbug/littletools/internal/i18n"
)

var testNow = time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

func newTestPage(t *testing.T) *Model {
	t.Helper()
	i18n.Init("en")
	m := New(time.UTC, func() time.Time { return testNow })
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	m.Focus()
	return m
}

func typeText(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func view(m *Model) string {
	return ansi.Strip(m.View())
}

func TestTimestamp_StartsAtNow(t *testing.T) {
	m := newTestPage(t)
	if !m.State().DateTime.Equal(testNow) {
		t.Fatalf("expected initial date %v, got %v", testNow, m.State().DateTime)
	}
	if strings.Contains(view(m), "Detected format") {
		t.Fatalf("detected label must be hidden for empty input")
	}
	if !strings.Contains(view(m), "10/14/2026, 12:00:00 PM") {
		t.Fatalf("expected current date in view:\n%s", view(m))
	}
}

func TestTimestamp_CommitsOnLeave(t *testing.T) {
	m := newTestPage(t)
	typeText(m, "1744953600")

	if !m.State().DateTime.Equal(testNow) {
		t.Fatalf("typing alone must not parse, got %v", m.State().DateTime)
	}
	if !strings.Contains(view(m), "Detected format: seconds") {
		t.Fatalf("expected detected label:\n%s", view(m))
	}

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if got := m.State().DateTime.Unix(); got != 1744953600 {
		t.Fatalf("expected commit on tab, got %d", got)
	}
	out := view(m)
	for _, want := range []string{"4/18/2025, 5:20:00 AM", "ago", "1744953600000"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q:\n%s", want, out)
		}
	}
}

func TestTimestamp_MillisecondsAutoDetected(t *testing.T) {
	m := newTestPage(t)
	typeText(m, "1744953600000")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if got := m.State().DateTime.UnixMilli(); got != 1744953600000 {
		t.Fatalf("expected millisecond parse, got %d", got)
	}
	if !strings.Contains(view(m), "Detected format: milliseconds") {
		t.Fatalf("expected milliseconds label:\n%s", view(m))
	}
}

func TestTimestamp_InvalidInputKeepsDate(t *testing.T) {
	m := newTestPage(t)
	typeText(m, "12ab")
	m.Blur()
	if !m.State().DateTime.Equal(testNow) {
		t.Fatalf("invalid input changed the date to %v", m.State().DateTime)
	}
}

func TestTimestamp_FormatRadios(t *testing.T) {
	m := newTestPage(t)
	typeText(m, "100000")
	m.Update(tea.KeyMsg{Type: tea.KeyTab})

	// format radio: auto -> seconds -> milliseconds
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.State().Format != tscore.Milliseconds {
		t.Fatalf("expected milliseconds format, got %v", m.State().Format)
	}
	if got := m.State().DateTime.UnixMilli(); got != 100000 {
		t.Fatalf("expected re-parse as milliseconds, got %d", got)
	}

	// output radio: same as input -> seconds
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.State().OutputFormat != tscore.Seconds || m.State().Formatted() != 100 {
		t.Fatalf("expected output in seconds, got %v %d", m.State().OutputFormat, m.State().Formatted())
	}
	if got := m.State().DateTime.UnixMilli(); got != 100000 {
		t.Fatalf("output format must not change the date, got %d", got)
	}

	// back to same as input
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if m.State().OutputFormat != tscore.Unset || m.State().Formatted() != 100000 {
		t.Fatalf("expected output to follow input format, got %v %d", m.State().OutputFormat, m.State().Formatted())
	}
}

func TestTimestamp_IgnoresKeysWhenBlurred(t *testing.T) {
	m := newTestPage(t)
	m.Blur()
	typeText(m, "42")
	if m.State().Input != "" {
		t.Fatalf("blurred page took input %q", m.State().Input)
	}
}
