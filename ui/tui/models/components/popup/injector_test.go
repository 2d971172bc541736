// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

package popup

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/seriousbug/littletools/ui/tui/util"
)

type box struct {
	text    string
	keys    int
	ticks   int
	focused bool
}

func (b *box) Init() tea.Cmd { return nil }
func (b *box) Update(msg tea.Msg) tea.Cmd {
	switch msg.(type) {
	case tea.KeyMsg:
		b.keys++
	case tickMsg:
		b.ticks++
	}
	return nil
}
func (b *box) View() string { return b.text }
func (b *box) Focus() (tea.Cmd, help.KeyMap) { b.focused = true; return nil, nil }
func (b *box) Blur() { b.focused = false }

type tickMsg struct{}

func TestInjector_OpenRoutesInput(t *testing.T) {
	child := &box{text: strings.Repeat(strings.Repeat(".", 30)+"\n", 9) + strings.Repeat(".", 30)}
	inj := NewInjector(util.ModelPointer(child))
	inj.Update(tea.WindowSizeMsg{Width: 30, Height: 10})
	inj.Focus()

	p := &box{text: "HELP"}
	inj.Update(Open(util.ModelPointer(p))())
	if !inj.IsOpen() || child.focused || !p.focused {
		t.Fatalf("popup did not take focus")
	}

	inj.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if p.keys != 1 || child.keys != 0 {
		t.Fatalf("keys popup=%d child=%d", p.keys, child.keys)
	}

	inj.Update(tickMsg{})
	if p.ticks != 1 || child.ticks != 1 {
		t.Fatalf("non-key messages should reach both, popup=%d child=%d", p.ticks, child.ticks)
	}

	view := ansi.Strip(inj.View())
	if !strings.Contains(view, "HELP") {
		t.Fatalf("popup not drawn: %q", view)
	}
	for _, line := range strings.Split(view, "\n") {
		if ansi.StringWidth(line) != 30 {
			t.Fatalf("overlay changed line width: %q", line)
		}
	}

	inj.Update(Close()())
	if inj.IsOpen() || !child.focused {
		t.Fatalf("close did not restore the child")
	}
	if strings.Contains(ansi.Strip(inj.View()), "HELP") {
		t.Fatalf("popup still drawn after close")
	}
}

func TestInjector_CloseWithoutPopup(t *testing.T) {
	inj := NewInjector(util.ModelPointer(&box{}))
	if cmd := inj.Update(Close()()); cmd != nil {
		t.Fatalf("expected nil command")
	}
}
