// Copyright (c) 2026 Roster Team
// Roster - employee directory
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/toeirei/roster/internal/i18n"
	"github.com/toeirei/roster/internal/logging"
)

func newDebugCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "debug",
		Short: "Dump debug information about config, env, flags and locales",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "--- ROSTER DEBUG ---")

			used := ""
			var settings map[string]any
			if appViper != nil {
				used = appViper.ConfigFileUsed()
				settings = appViper.AllSettings()
			}
			fmt.Fprintf(out, "Config file used: %s\n", used)

			b, err := json.MarshalIndent(settings, "", "  ")
			if err != nil {
				logging.Errorf("could not marshal settings: %v", err)
			} else {
				fmt.Fprintln(out, "-- settings --")
				fmt.Fprintln(out, string(b))
			}

			fmt.Fprintln(out, "-- flags --")
			cmd.Flags().VisitAll(func(f *pflag.Flag) {
				fmt.Fprintf(out, "%s = %s\n", f.Name, f.Value.String())
			})

			fmt.Fprintln(out, "-- environment (ROSTER_*) --")
			for _, e := range os.Environ() {
				if strings.HasPrefix(e, "ROSTER_") {
					fmt.Fprintln(out, e)
				}
			}

			fmt.Fprintln(out, "-- locales --")
			locales := i18n.GetAvailableLocales()
			codes := make([]string, 0, len(locales))
			for code := range locales {
				codes = append(codes, code)
			}
			sort.Strings(codes)
			for _, code := range codes {
				marker := " "
				if code == i18n.GetLang() {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %s (%s)\n", marker, code, locales[code])
			}
			fmt.Fprintln(out, "--- END DEBUG ---")
		},
	}
}
