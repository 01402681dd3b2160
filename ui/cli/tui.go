// Copyright (c) 2026 Roster Team
// Roster - employee directory
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/toeirei/roster/internal/directory"
	"github.com/toeirei/roster/internal/i18n"
	"github.com/toeirei/roster/internal/tui"
)

// runTUI starts the full-screen UI. Tests replace it.
var runTUI = tui.Run

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the full-screen terminal interface",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(int(os.Stdin.Fd())) || !isTerminal(int(os.Stdout.Fd())) {
				return errors.New(i18n.T("cli.tui_requires_terminal"))
			}
			return runTUI(directory.New(), menuOptions())
		},
	}
}
