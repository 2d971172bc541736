// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

// Command-line entrypoint for Little Tools.
//
// Usage:
//
//	go run . [flags]
//	./littletools [flags]
//	./littletools base64 encode "Hello, World!"
//
// Without a subcommand the terminal UI starts. See --help for options.
package main

import (
	"os"

	"github.com/seriousbug/littletools/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
