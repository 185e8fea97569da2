// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/win32coreutils/coreutils/internal/config"
	"github.com/win32coreutils/coreutils/internal/issue"
	"github.com/win32coreutils/coreutils/pkg/types"
)

// newConfigCommand creates the `coreutils config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage coreutils configuration",
		Long: `Manage coreutils configuration.

Configuration is stored in:
  - Windows: %APPDATA%\coreutils\config.cue
  - macOS: ~/Library/Application Support/coreutils/config.cue
  - Linux: ~/.config/coreutils/config.cue

A config.cue in the current directory is used when the file above is
missing. Flags given to a utility always override configured defaults.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd, app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd.OutOrStdout(), app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath(cmd.OutOrStdout())
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Config.Load(cmd.Context(), app.loadOptions())
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), config.GenerateCUE(cfg))
			return err
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "check [file]",
		Short: "Validate a configuration file against the schema",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkConfig(cmd.OutOrStdout(), app, args)
		},
	})

	return cfgCmd
}

func showConfig(cmd *cobra.Command, app *App) error {
	loaded, err := config.LoadWithPath(cmd.Context(), app.Config, app.loadOptions())
	if err != nil {
		app.renderIssue(issue.ConfigLoadFailedId, config.ColorSchemeAuto)
		return err
	}
	cfg := loaded.Config
	w := cmd.OutOrStdout()

	keyStyle := CmdStyle
	valueStyle := SuccessStyle

	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)

	if loaded.Path != "" {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), loaded.Path)
	} else {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(w)

	logLevel := string(cfg.LogLevel)
	if logLevel == "" {
		logLevel = SubtitleStyle.Render(fmt.Sprintf("(unset, effective %s)", cfg.EffectiveLogLevel()))
	} else {
		logLevel = valueStyle.Render(logLevel)
	}
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("log_level"), logLevel)

	section := func(name string, fields ...any) {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s:\n", keyStyle.Render(name))
		for i := 0; i+1 < len(fields); i += 2 {
			fmt.Fprintf(w, "  %s: %s\n", fields[i], valueStyle.Render(fmt.Sprint(fields[i+1])))
		}
	}
	section("ui",
		"color_scheme", cfg.UI.ColorScheme,
		"verbose", cfg.UI.Verbose)
	section("ls",
		"one_per_line", cfg.Ls.OnePerLine,
		"all", cfg.Ls.All,
		"almost_all", cfg.Ls.AlmostAll,
		"no_group", cfg.Ls.NoGroup,
		"full_time", cfg.Ls.FullTime,
		"recursive", cfg.Ls.Recursive)
	section("cat",
		"number", cfg.Cat.Number,
		"show_ends", cfg.Cat.ShowEnds,
		"squeeze_blank", cfg.Cat.SqueezeBlank)

	return nil
}

// createDefaultConfig is replaced in tests.
var createDefaultConfig = config.CreateDefaultConfig

func initConfig(w io.Writer, app *App) error {
	cfgPath, err := config.FilePath()
	if err != nil {
		return err
	}

	created, err := createDefaultConfig()
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			app.renderIssue(issue.PermissionDeniedId, config.ColorSchemeAuto)
		}
		return fmt.Errorf("failed to create config: %w", err)
	}

	if created {
		fmt.Fprintf(w, "%s Created default configuration at %s\n", SuccessStyle.Render("✓"), cfgPath)
	} else {
		fmt.Fprintf(w, "%s Configuration already exists at %s\n", SubtitleStyle.Render("•"), cfgPath)
	}
	return nil
}

func showConfigPath(w io.Writer) error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	cfgPath, err := config.FilePath()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Config directory: %s\n", cfgDir)
	fmt.Fprintf(w, "Config file: %s\n", cfgPath)
	return nil
}

// checkConfig validates the named file, the --config file, or the default
// file, in that order of preference.
func checkConfig(w io.Writer, app *App, args []string) error {
	path := app.configFile
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		var err error
		if path, err = config.FilePath(); err != nil {
			return err
		}
	}

	if _, err := config.Check(path); err != nil {
		return &ExitError{Code: types.ExitNonFatal, Err: err}
	}
	fmt.Fprintf(w, "%s %s is valid\n", SuccessStyle.Render("✓"), path)
	return nil
}
