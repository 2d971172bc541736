// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

package cli

import (
	"errors"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/seriousbug/littletools/ui/tui"
	"github.com/seriousbug/littletools/ui/tui/clipboard"
)

func TestRoot_RefusesWithoutTerminal(t *testing.T) {
	isolate(t)
	res := run(t, nil, "")
	if res.err == nil || !strings.Contains(res.err.Error(), "interactive terminal") {
		t.Fatalf("expected terminal error, got %v", res.err)
	}
}

func TestRoot_StartsTUIWithConfig(t *testing.T) {
	isolate(t)
	var got tui.Options
	a := testApp(func(opts tui.Options) error {
		got = opts
		return nil
	})
	res := run(t, a, "", "--start-page", "/timestamp", "--timezone", "UTC", "--clipboard=false")
	if res.err != nil {
		t.Fatalf("root failed: %v", res.err)
	}
	if got.Shell.StartPage != "/timestamp" {
		t.Fatalf("unexpected start page %q", got.Shell.StartPage)
	}
	if got.Shell.Location == nil || got.Shell.Location.String() != "UTC" {
		t.Fatalf("unexpected location %v", got.Shell.Location)
	}
	if _, ok := got.Shell.Clipboard.(clipboard.Disabled); !ok {
		t.Fatalf("expected disabled clipboard, got %T", got.Shell.Clipboard)
	}
	if !got.Shell.Now().Equal(testNow) {
		t.Fatalf("clock not passed through")
	}
}

func TestRoot_TUIErrorIsReturned(t *testing.T) {
	isolate(t)
	boom := errors.New("boom")
	res := run(t, testApp(func(tui.Options) error { return boom }), "")
	if !errors.Is(res.err, boom) {
		t.Fatalf("expected boom, got %v", res.err)
	}
}

func TestRoot_InvalidLogLevel(t *testing.T) {
	isolate(t)
	if res := run(t, nil, "", "--log-level", "chatty", "version"); res.err == nil {
		t.Fatalf("expected error for invalid log level")
	}
}

func TestVersionCmd(t *testing.T) {
	isolate(t)
	res := run(t, nil, "", "version")
	if res.err != nil {
		t.Fatalf("version failed: %v", res.err)
	}
	if !strings.HasPrefix(res.stdout, "version: ") || !strings.Contains(res.stdout, "commit: ") {
		t.Fatalf("unexpected version output %q", res.stdout)
	}
}

func TestResolveBuildVersion_MainVersion(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Path: modulePath, Version: "v1.2.3"},
	}
	v, c, d := resolveBuildVersion(info)
	if v != "v1.2.3" {
		t.Fatalf("expected v1.2.3 got %s", v)
	}
	if c != gitCommit {
		t.Fatalf("expected commit to equal package gitCommit (default) got %s", c)
	}
	if d != buildDate {
		t.Fatalf("expected date to equal package buildDate (default) got %s", d)
	}
}

func TestResolveBuildVersion_DependencyFallback(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Path: modulePath, Version: "(devel)"},
		Deps: []*debug.Module{
			{Path: modulePath, Version: "v0.3.1-0.20261001120000-d1692e4643ee"},
		},
	}
	v, _, _ := resolveBuildVersion(info)
	if v != "v0.3.1-0.20261001120000-d1692e4643ee" {
		t.Fatalf("expected dependency version fallback got %s", v)
	}
}

func TestResolveBuildVersion_VCSSettings(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Path: modulePath, Version: "v1.0.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2026-10-01T12:00:00Z"},
		},
	}
	_, c, d := resolveBuildVersion(info)
	if c != "abc123" || d != "2026-10-01T12:00:00Z" {
		t.Fatalf("unexpected vcs values %q %q", c, d)
	}
}

func TestResolveBuildVersion_GitCommitFallback(t *testing.T) {
	orig := gitCommit
	defer func() { gitCommit = orig }()
	gitCommit = "deadbeef"
	info := &debug.BuildInfo{
		Main: debug.Module{Path: modulePath, Version: "(devel)"},
	}
	v, _, _ := resolveBuildVersion(info)
	if v != "deadbeef" {
		t.Fatalf("expected gitCommit fallback got %s", v)
	}
}
