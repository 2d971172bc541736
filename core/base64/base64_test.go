// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

package base64

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransform_KnownValues(t *testing.T) {
	cases := []struct {
		plain, encoded string
	}{
		{"Hello, World!", "SGVsbG8sIFdvcmxkIQ=="},
		{"Grüße, 世界 🌍", "R3LDvMOfZSwg5LiW55WMIPCfjI0="},
		{"a", "YQ=="},
		{"ab", "YWI="},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.encoded, Transform(tc.plain, Encode), tc.plain)
		assert.Equal(t, tc.plain, Transform(tc.encoded, Decode), tc.encoded)
	}
}

func TestTransform_RoundTrip(t *testing.T) {
	for _, s := range []string{"x", "line one\nline two", "tabs\tand  spaces", "日本語のテキスト", "emoji 🎉🎉", strings.Repeat("z", 1000)} {
		assert.Equal(t, s, Transform(Transform(s, Encode), Decode))
	}
}

func TestTransform_BlankInput(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\t"} {
		assert.Equal(t, "", Transform(in, Encode))
		assert.Equal(t, "", Transform(in, Decode))
	}
}

func TestTransform_DecodeErrors(t *testing.T) {
	for _, in := range []string{"not base64!", "SGVsbG8", "/w==", "a"} {
		out := Transform(in, Decode)
		if in == "SGVsbG8" {
			// missing padding is accepted
			assert.Equal(t, "Hello", out)
			continue
		}
		require.True(t, IsError(out), "expected error for %q, got %q", in, out)
		assert.True(t, strings.HasPrefix(out, "Error: Invalid input for decode\n\n"), out)
	}
}

func TestDecodeString_InvalidUTF8(t *testing.T) {
	_, err := DecodeString("/w==")
	assert.True(t, errors.Is(err, ErrInvalidUTF8))

	out := Transform("/w==", Decode)
	assert.Contains(t, out, ErrInvalidUTF8.Error())
}

func TestDecodeString_IgnoresWhitespace(t *testing.T) {
	got, err := DecodeString("SGVs bG8s\nIFdv\r\ncmxk IQ==")
	require.NoError(t, err)
	assert.Equal(t, "Hello, World!", got)
}

func TestEncodeString_ReplacesInvalidUTF8(t *testing.T) {
	assert.Equal(t, EncodeString("a\uFFFDb"), EncodeString("a\xffb"))
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("Decode")
	require.NoError(t, err)
	assert.Equal(t, Decode, m)

	m, err = ParseMode(Encode.String())
	require.NoError(t, err)
	assert.Equal(t, Encode, m)

	_, err = ParseMode("rot13")
	assert.True(t, errors.Is(err, ErrUnknownMode))
}

func TestState_Transitions(t *testing.T) {
	s := NewState()
	assert.Equal(t, Encode, s.Mode)
	assert.False(t, s.CanCopy())

	s = s.SetInput("Hello, World!")
	assert.Equal(t, "SGVsbG8sIFdvcmxkIQ==", s.Output)
	assert.True(t, s.CanCopy())

	// switching mode re-runs the transform on the same input
	s = s.SetMode(Decode)
	assert.True(t, IsError(s.Output))
	assert.False(t, s.CanCopy())

	s = s.SetInput("SGVsbG8sIFdvcmxkIQ==")
	assert.Equal(t, "Hello, World!", s.Output)

	s = s.Clear()
	assert.Equal(t, "", s.Input)
	assert.Equal(t, "", s.Output)
	assert.Equal(t, Decode, s.Mode)
}
