// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

// Package logging holds the package-level logger shared by the CLI and the TUI.
package logging

import (
	"fmt"
	"io"
	"os"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger. Callers should use the helper functions
// below.
var L = clog.New(os.Stderr)

// Options selects where log lines go and how verbose they are.
type Options struct {
	// Level is one of debug, info, warn, error. Empty means info.
	Level string
	// File receives the log when set. Otherwise Fallback is used.
	File string
	// Fallback is the writer used without File. Nil discards output.
	Fallback io.Writer
	// Debug forces the debug level.
	Debug bool
}

// Setup reconfigures L. The returned closer releases the log file, if any,
// and is never nil.
func Setup(opts Options) (io.Closer, error) {
	level := clog.InfoLevel
	if opts.Level != "" {
		parsed, err := clog.ParseLevel(opts.Level)
		if err != nil {
			return nopCloser{}, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		level = parsed
	}
	if opts.Debug {
		level = clog.DebugLevel
	}

	var (
		out    io.Writer = io.Discard
		closer io.Closer = nopCloser{}
	)
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return closer, fmt.Errorf("could not open log file %s: %w", opts.File, err)
		}
		out, closer = f, f
	} else if opts.Fallback != nil {
		out = opts.Fallback
	}

	L = clog.NewWithOptions(out, clog.Options{
		Level:           level,
		ReportTimestamp: opts.File != "",
		Prefix:          "littletools",
	})
	return closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...any) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...any) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...any) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...any) {
	L.Error(fmt.Sprintf(format, v...))
}
