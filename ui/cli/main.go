// Copyright (c) 2026 Roster Team
// Roster - employee directory
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the root command for Roster using the Cobra library. It
// loads configuration, initializes logging and i18n, and runs the
// interactive menu when no subcommand is given.

package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/toeirei/roster/buildvars"
	"github.com/toeirei/roster/internal/config"
	"github.com/toeirei/roster/internal/directory"
	"github.com/toeirei/roster/internal/i18n"
	"github.com/toeirei/roster/internal/logging"
	"github.com/toeirei/roster/internal/menu"
)

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

var cfgFile string
var verbose bool

var appConfig config.Config
var appViper *viper.Viper

// isTerminal reports whether fd is attached to a terminal. Tests replace it.
var isTerminal = term.IsTerminal

func setupDefaultServices(cmd *cobra.Command, args []string) error {
	configPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	appConfig, appViper, err = config.LoadConfig[config.Config](cmd, config.Defaults(), configPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if err := logging.SetLevel(appConfig.LogLevel); err != nil {
		logging.Warnf("ignoring log_level: %v", err)
	}
	if verbose {
		logging.SetDebug(true)
	}
	if used := appViper.ConfigFileUsed(); used != "" {
		logging.Debugf("using config file %s", used)
	}

	i18n.Init(appConfig.Language)
	return nil
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	// Make sure the user-provided file exists to avoid unwanted behavior.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// menuOptions derives listing options from the loaded config.
func menuOptions() menu.Options {
	return menu.Options{Sorted: appConfig.Listing.Sorted, Language: i18n.Tag()}
}

// NewRootCmd creates and configures a new root cobra command. It builds
// fresh subcommands each time so tests get isolated flag sets.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Roster keeps a directory of employees by department.",
		Long: `Roster is an interactive employee directory.
Add employees to departments, list a single department or the whole
company, and summarize integer lists with the summary command.

Running without a subcommand starts the numbered text menu; the directory
lives in memory for the duration of the run.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setupDefaultServices,
		RunE: func(cmd *cobra.Command, args []string) error {
			console := menu.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout())
			return menu.New(directory.New(), console, console, menuOptions()).Run(cmd.Context())
		},
	}

	v, c, d := resolveBuildVersion(nil)
	compositeVersion := v
	if c != "" && c != "dev" {
		compositeVersion = compositeVersion + " (" + c + ")"
	}
	if d != "" {
		compositeVersion = compositeVersion + " built: " + d
	}
	cmd.Version = compositeVersion

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	cmd.PersistentFlags().String("language", "en", `Interface language ("en", "de")`)
	cmd.PersistentFlags().Bool("listing.sorted", false, "List departments and employees alphabetically")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", v)
			fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}

	cmd.AddCommand(
		newSummaryCmd(),
		newTUICmd(),
		newConfigCmd(),
		newDebugCmd(),
		versionCmd,
	)

	return cmd
}

// resolveBuildVersion reports version, commit and build date. Link-time
// values are the fallback; a tagged module version and VCS stamps from
// info (or the running binary when info is nil) take precedence. An
// untagged build is named after its commit.
func resolveBuildVersion(info *debug.BuildInfo) (ver, commit, date string) {
	ver, commit, date = buildvars.VersionOrDefault(version), gitCommit, buildDate
	if info == nil {
		info, _ = debug.ReadBuildInfo()
	}
	if info != nil {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			ver = v
		}
		for _, s := range info.Settings {
			if s.Value == "" {
				continue
			}
			switch s.Key {
			case "vcs.revision":
				commit = s.Value
			case "vcs.time":
				date = s.Value
			}
		}
	}
	if ver == "dev" && commit != "" && commit != "dev" {
		ver = commit
	}
	return ver, commit, date
}
