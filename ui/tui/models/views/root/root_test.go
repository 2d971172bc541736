// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

package root

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/seriousbug/littletools/internal/i18n"
	"github.com/seriousbug/littletools/ui/tui/clipboard"
	forminput "github.com/seriousbug/littletools/ui/tui/models/helpers/form/input"
	windowtitle "github.com/seriousbug/littletools/ui/tui/models/helpers/title"
	"github.com/seriousbug/littletools/ui/tui/models/views/shell"
	"github.com/seriousbug/littletools/ui/tui/util"
)

func newTestRoot(t *testing.T) *Model {
	t.Helper()
	i18n.Init("en")
	m, err := New(Options{
		Version: "v1.2.3",
		Shell: shell.Options{
			Location:  time.UTC,
			Now:       func() time.Time { return time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC) },
			Clipboard: clipboard.Disabled{},
		},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m.Init()
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m
}

// send delivers msg and feeds the resulting message back once. Only use it
// for commands that do not block.
func send(m *Model, msg tea.Msg) {
	_, cmd := m.Update(msg)
	if cmd != nil {
		m.Update(cmd())
	}
}

func TestRoot_QuitsOnCtrlC(t *testing.T) {
	m := newTestRoot(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestRoot_Layout(t *testing.T) {
	m := newTestRoot(t)
	view := ansi.Strip(m.View())
	for _, want := range []string{"Little Tools", "v1.2.3", "About", "Timestamp to Date", "Base64 Encoder/Decoder", "Made with ♥ in Illinois"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
	if lines := strings.Count(view, "\n") + 1; lines > 40 {
		t.Fatalf("view taller than the terminal: %d lines", lines)
	}
}

func TestRoot_HelpPopup(t *testing.T) {
	m := newTestRoot(t)
	send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	if !m.injector.IsOpen() {
		t.Fatalf("? should open the help popup")
	}
	if !strings.Contains(ansi.Strip(m.View()), "Keyboard shortcuts") {
		t.Fatalf("help popup not rendered:\n%s", ansi.Strip(m.View()))
	}

	send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.injector.IsOpen() {
		t.Fatalf("esc should close the help popup")
	}
}

func TestRoot_QuestionMarkLeftToTextInputs(t *testing.T) {
	m := newTestRoot(t)
	m.Update(util.AnnounceKeyMapMsg{KeyMap: util.MergeKeyMaps(forminput.NewText("", "").KeyMap)})

	send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	if m.injector.IsOpen() {
		t.Fatalf("? must not open help while a text input is focused")
	}

	send(m, tea.KeyMsg{Type: tea.KeyF1})
	if !m.injector.IsOpen() {
		t.Fatalf("f1 should always open help")
	}
}

func TestRoot_WindowTitle(t *testing.T) {
	m := newTestRoot(t)
	m.Update(windowtitle.Set("About")())
	if got := m.titleHandler.Title(); got != "Little Tools | About" {
		t.Fatalf("unexpected title %q", got)
	}
}
