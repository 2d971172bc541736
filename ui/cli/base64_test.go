// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

package cli

import (
	"errors"
	"strings"
	"testing"
)

func TestBase64_EncodeArgs(t *testing.T) {
	isolate(t)
	res := run(t, nil, "", "base64", "encode", "Hello,", "World!")
	if res.err != nil {
		t.Fatalf("encode failed: %v", res.err)
	}
	if res.stdout != "SGVsbG8sIFdvcmxkIQ==\n" {
		t.Fatalf("unexpected output %q", res.stdout)
	}
}

func TestBase64_DecodeStdin(t *testing.T) {
	isolate(t)
	res := run(t, nil, "SGVsbG8s\nIFdvcmxkIQ==\n", "base64", "decode")
	if res.err != nil {
		t.Fatalf("decode failed: %v", res.err)
	}
	if res.stdout != "Hello, World!\n" {
		t.Fatalf("unexpected output %q", res.stdout)
	}
}

func TestBase64_DecodeError(t *testing.T) {
	isolate(t)
	res := run(t, nil, "", "base64", "decode", "not base64!")
	if !errors.Is(res.err, errReported) {
		t.Fatalf("expected errReported, got %v", res.err)
	}
	if res.stdout != "" {
		t.Fatalf("nothing should go to stdout, got %q", res.stdout)
	}
	if !strings.HasPrefix(res.stderr, "Error: Invalid input for decode") {
		t.Fatalf("unexpected stderr %q", res.stderr)
	}
}

func TestBase64_EmptyInput(t *testing.T) {
	isolate(t)
	res := run(t, nil, "", "base64", "encode")
	if res.err != nil || res.stdout != "\n" {
		t.Fatalf("expected empty line, got %q %v", res.stdout, res.err)
	}
}
