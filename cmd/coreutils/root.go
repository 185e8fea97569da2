// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/win32coreutils/coreutils/internal/config"
	"github.com/win32coreutils/coreutils/internal/coreutil"
	"github.com/win32coreutils/coreutils/internal/issue"
	"github.com/win32coreutils/coreutils/pkg/types"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// utilitySummaries are the one-line descriptions shown in the command list.
var utilitySummaries = map[string]string{
	"cat": "Concatenate files to standard output",
	"ls":  "List directory contents with Windows attributes and owners",
	"yes": "Output a string repeatedly until killed",
}

// newRootCommand builds the command tree around app.
func newRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   config.AppName + " [utility] [args...]",
		Short: "Core utilities for Windows hosts",
		Long: TitleStyle.Render(config.AppName) + SubtitleStyle.Render(" - core utilities for Windows hosts") + `

One binary, several utilities. Call a utility by name, or copy the binary
as ls.exe, cat.exe or yes.exe and it behaves as that utility.

` + SubtitleStyle.Render("Examples:") + `
  coreutils ls -la C:\Users     Long listing including hidden entries
  coreutils cat -n notes.txt    Print a file with line numbers
  coreutils yes | more          Repeat 'y' forever
  coreutils config show         Show current configuration`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			app.renderIssue(issue.UtilityNotFoundId, config.ColorSchemeAuto)
			return &ExitError{Code: types.ExitFatal, Err: fmt.Errorf("%s: %w", args[0], coreutil.ErrUnknownUtility)}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", app.verbose, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&app.configFile, "config", app.configFile, "config file (default is <config dir>/config.cue, then ./config.cue)")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{Code: types.ExitFatal, Err: err}
	})

	for _, name := range app.Registry.Names() {
		rootCmd.AddCommand(newUtilityCommand(app, name))
	}
	rootCmd.AddCommand(newConfigCommand(app))

	return rootCmd
}

// newUtilityCommand exposes a registered utility as a subcommand. The utility
// parses its own flags.
func newUtilityCommand(app *App, name string) *cobra.Command {
	return &cobra.Command{
		Use:                name + " [args...]",
		Short:              utilitySummaries[name],
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runUtility(cmd.Context(), name, args)
		},
	}
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the multi-call front end with the process arguments and exits.
// This is called by main.main().
func Execute() {
	os.Exit(int(run(os.Args)))
}

// ExecuteUtility runs the named utility with the process arguments and exits.
// The per-utility binaries call it so that their behavior does not depend on
// how the executable was renamed.
func ExecuteUtility(name string) {
	argv := append([]string{name}, os.Args[1:]...)
	os.Exit(int(run(argv)))
}

func run(argv []string) types.ExitCode {
	coreutil.Version = Version

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return NewApp(Dependencies{}).Run(ctx, argv)
}
