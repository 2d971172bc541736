// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/seriousbug/littletools/internal/logging"
	"github.com/seriousbug/littletools/ui/tui"
)

var testNow = time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

// isolate points the config search path at a temp dir and restores the
// package logger afterwards.
func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("HOME", tmp)
	t.Chdir(tmp)
	prev := logging.L
	t.Cleanup(func() { logging.L = prev })
	return tmp
}

type result struct {
	stdout string
	stderr string
	err    error
}

// run executes the root command with args against a test app.
func run(t *testing.T, a *app, stdin string, args ...string) result {
	t.Helper()
	if a == nil {
		a = testApp(nil)
	}
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func testApp(runTUI func(tui.Options) error) *app {
	a := newApp()
	a.now = func() time.Time { return testNow }
	a.isTerminal = func() bool { return runTUI != nil }
	if runTUI != nil {
		a.runTUI = runTUI
	}
	return a
}
