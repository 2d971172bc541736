// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

// Package tui implements the terminal UI. Presentation and input handling
// live here, the conversions themselves are provided by `core`.
package tui
