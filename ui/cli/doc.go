// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

// Package cli is the cobra command line of Little Tools. Without a
// subcommand it starts the terminal UI; the base64 and timestamp subcommands
// run the same conversions for scripts and pipes.
package cli
