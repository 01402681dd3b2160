// Copyright (c) 2026 Roster Team
// Roster - employee directory
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/toeirei/roster/internal/i18n"
	"github.com/toeirei/roster/internal/logging"
	"github.com/toeirei/roster/internal/stats"
)

func newSummaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary [int...]",
		Short: "Print the median and mode of a list of integers",
		Long: `Reads integers from the arguments, or whitespace-separated from stdin
when no arguments are given, and prints their median and mode.

Ties for the mode resolve to the smallest value. For an even count the
median is the integer average of the two middle values; set
summary.median_rule to "reference" to average the values at n/2 and
n/2+1 instead, matching the historical output of this tool.`,
		Example: "  roster summary 3 4 1 7 9 3 2 7 5 3 8 6",
		RunE: func(cmd *cobra.Command, args []string) error {
			rule, err := stats.ParseMedianRule(appConfig.Summary.MedianRule)
			if err != nil {
				return err
			}

			fields := args
			if len(fields) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read numbers: %w", err)
				}
				fields = strings.Fields(string(data))
			}

			numbers, err := stats.ParseInts(fields)
			if err != nil {
				return err
			}
			logging.Debugf("summarizing %d numbers with %s median rule", len(numbers), rule)

			sum, err := stats.Summarize(numbers, stats.WithMedianRule(rule))
			if errors.Is(err, stats.ErrEmptyInput) {
				return fmt.Errorf("%s: %w", i18n.T("summary.error_empty"), err)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, i18n.T("summary.median", sum.Median))
			fmt.Fprintln(out, i18n.T("summary.mode", sum.Mode))
			return nil
		},
	}
	cmd.Flags().String("summary.median_rule", "conventional", `Even-count median rule ("conventional" or "reference")`)
	// Flags must come first so "3 -4" reads -4 as a number. A leading
	// negative number needs "--" before it.
	cmd.Flags().SetInterspersed(false)
	return cmd
}
