// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

// Package base64 implements the text transform behind the Base64 tool and its
// page-local state. Failures are carried in the output text rather than
// returned, so the output panel can show them as is.
package base64

import (
	stdbase64 "encoding/base64"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Mode selects the direction of the transform.
type Mode int

const (
	Encode Mode = iota
	Decode
)

// ErrorPrefix starts every output that reports a failure.
const ErrorPrefix = "Error:"

var (
	// ErrInvalidUTF8 is reported when decoded bytes are not UTF-8 text.
	ErrInvalidUTF8 = errors.New("decoded bytes are not valid UTF-8 text")
	// ErrUnknownMode is returned by ParseMode for unrecognised names.
	ErrUnknownMode = errors.New("unknown base64 mode")
)

func (m Mode) String() string {
	if m == Decode {
		return "decode"
	}
	return "encode"
}

// ParseMode maps "encode" / "decode" back to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "encode", "enc", "e":
		return Encode, nil
	case "decode", "dec", "d":
		return Decode, nil
	}
	return Encode, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Transform encodes or decodes input. Blank input gives blank output. A
// failed decode yields a text starting with ErrorPrefix followed by the
// underlying error.
func Transform(input string, mode Mode) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}

	if mode == Encode {
		return EncodeString(input)
	}

	out, err := DecodeString(input)
	if err != nil {
		return fmt.Sprintf("%s Invalid input for %s\n\n%s", ErrorPrefix, mode, err)
	}
	return out
}

// EncodeString returns the standard padded Base64 form of the UTF-8 text s.
// Invalid UTF-8 sequences are replaced with U+FFFD first.
func EncodeString(s string) string {
	return stdbase64.StdEncoding.EncodeToString([]byte(strings.ToValidUTF8(s, "\uFFFD")))
}

// DecodeString decodes standard Base64 into UTF-8 text. ASCII whitespace is
// ignored and trailing padding may be omitted.
func DecodeString(s string) (string, error) {
	compact := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', '\f', '\v':
			return -1
		}
		return r
	}, s)

	enc := stdbase64.StdEncoding
	if !strings.HasSuffix(compact, "=") && len(compact)%4 != 0 {
		enc = stdbase64.RawStdEncoding
	}

	data, err := enc.DecodeString(compact)
	if err != nil {
		return "", fmt.Errorf("malformed base64: %w", err)
	}
	if !utf8.Valid(data) {
		return "", ErrInvalidUTF8
	}
	return string(data), nil
}

// IsError reports whether output is a failure text produced by Transform.
func IsError(output string) bool {
	return strings.HasPrefix(output, ErrorPrefix)
}
