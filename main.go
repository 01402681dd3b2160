// Copyright (c) 2026 Roster Team
// Roster - employee directory
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Roster.
//
// Usage:
//
//	go run . [flags]
//	./roster [command] [flags]
//
// Without a command this starts the interactive menu. See --help for options.
package main

import (
	"os"

	"github.com/toeirei/roster/internal/logging"
	"github.com/toeirei/roster/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("roster: %v", err)
		os.Exit(1)
	}
}
