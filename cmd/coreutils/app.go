// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/afero"

	"github.com/win32coreutils/coreutils/internal/config"
	"github.com/win32coreutils/coreutils/internal/coreutil"
	"github.com/win32coreutils/coreutils/internal/issue"
	"github.com/win32coreutils/coreutils/pkg/platform"
	"github.com/win32coreutils/coreutils/pkg/types"
)

type (
	// App wires the front end to its services. Every Cobra handler and every
	// direct utility invocation goes through one App.
	App struct {
		Config   config.Provider
		Registry *coreutil.Registry
		Fs       afero.Fs
		stdin    io.Reader
		stdout   io.Writer
		stderr   io.Writer

		// Global flags. They are bound to the root command's persistent
		// flags and also accepted in front of a utility name.
		verbose    bool
		configFile string
	}

	// Dependencies defines the injection points for building an App. Nil fields are
	// replaced with production defaults by NewApp.
	Dependencies struct {
		Config   config.Provider
		Registry *coreutil.Registry
		Fs       afero.Fs
		Stdin    io.Reader
		Stdout   io.Writer
		Stderr   io.Writer
	}
)

// NewApp creates an App, filling unset dependencies with the process defaults.
func NewApp(deps Dependencies) *App {
	app := &App{
		Config:   deps.Config,
		Registry: deps.Registry,
		Fs:       deps.Fs,
		stdin:    deps.Stdin,
		stdout:   deps.Stdout,
		stderr:   deps.Stderr,
	}
	if app.Config == nil {
		app.Config = config.NewProvider()
	}
	if app.Registry == nil {
		app.Registry = coreutil.DefaultRegistry
	}
	if app.Fs == nil {
		app.Fs = afero.NewOsFs()
	}
	if app.stdin == nil {
		app.stdin = os.Stdin
	}
	if app.stdout == nil {
		app.stdout = os.Stdout
	}
	if app.stderr == nil {
		app.stderr = os.Stderr
	}
	return app
}

// Run dispatches a full argument vector and returns the exit status.
//
// Invoked under a utility's name (argv[0] "ls", "cat.exe", ...) the binary is
// that utility. Otherwise a utility name following the global flags runs the
// utility directly, so its own flags never reach Cobra. Everything else is
// handled by the Cobra command tree.
func (a *App) Run(ctx context.Context, argv []string) types.ExitCode {
	if len(argv) == 0 {
		argv = []string{config.AppName}
	}

	if name := platform.UtilityName(argv[0]); a.isUtility(name) {
		return exitCodeOf(a.runUtility(ctx, name, argv[1:]))
	}

	if rest := a.leadingGlobals(argv[1:]); len(rest) > 0 && a.isUtility(rest[0]) {
		return exitCodeOf(a.runUtility(ctx, rest[0], rest[1:]))
	}

	root := newRootCommand(a)
	root.SetArgs(argv[1:])
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	err := fang.Execute(
		ctx,
		root,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(handleError),
	)
	return exitCodeOf(err)
}

// handleError prints errors that have not been reported yet.
func handleError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}
	var statusErr *coreutil.StatusError
	if errors.As(err, &statusErr) {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

func (a *App) isUtility(name string) bool {
	_, ok := a.Registry.Lookup(name)
	return ok
}

// leadingGlobals consumes --verbose and --config in front of the first
// other argument and returns the rest untouched.
func (a *App) leadingGlobals(args []string) []string {
	for len(args) > 0 {
		switch arg := args[0]; {
		case arg == "-v" || arg == "--verbose":
			a.verbose = true
			args = args[1:]
		case arg == "--config" && len(args) > 1:
			a.configFile = args[1]
			args = args[2:]
		case strings.HasPrefix(arg, "--config="):
			a.configFile = strings.TrimPrefix(arg, "--config=")
			args = args[1:]
		default:
			return args
		}
	}
	return args
}

// runUtility runs a registered utility with its own arguments. A failing
// utility has already written its diagnostics, so only the code survives;
// with --verbose a usage error also gets the invalid arguments guide.
func (a *App) runUtility(ctx context.Context, name string, args []string) error {
	cfg := a.loadConfig(ctx)

	hc := &coreutil.HandlerContext{
		Stdin:  a.stdin,
		Stdout: a.stdout,
		Stderr: a.stderr,
		Fs:     a.Fs,
		Config: cfg,
	}
	slog.Debug("running utility", "name", name, "args", args)

	err := a.Registry.Run(coreutil.WithHandlerContext(ctx, hc), name, append([]string{name}, args...))
	var statusErr *coreutil.StatusError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &statusErr):
		if statusErr.Code == types.ExitFatal && a.verbose {
			a.renderIssue(issue.InvalidArgumentsId, cfg.UI.ColorScheme)
		}
		return &ExitError{Code: statusErr.Code}
	case errors.Is(err, coreutil.ErrUnknownUtility):
		a.renderIssue(issue.UtilityNotFoundId, cfg.UI.ColorScheme)
		return &ExitError{Code: types.ExitFatal, Err: err}
	default:
		fmt.Fprintf(a.stderr, "%s: %v\n", name, err)
		return &ExitError{Code: types.ExitNonFatal}
	}
}

// loadOptions turns the global flags into provider options.
func (a *App) loadOptions() config.LoadOptions {
	return config.LoadOptions{ConfigFilePath: a.configFile}
}

// loadConfig loads the configuration and sets up logging from it. A broken
// configuration is reported as a warning and the defaults are used instead.
func (a *App) loadConfig(ctx context.Context) *config.Config {
	cfg, err := a.Config.Load(ctx, a.loadOptions())
	if err != nil {
		fmt.Fprintln(a.stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, a.verbose))
		if a.verbose {
			a.renderIssue(issue.ConfigLoadFailedId, config.ColorSchemeAuto)
		}
		cfg = config.DefaultConfig()
	}

	level := cfg.EffectiveLogLevel()
	if a.verbose {
		level = config.LogLevelDebug
	}
	configureLogging(a.stderr, level)
	return cfg
}

// renderIssue writes the catalog entry for id to stderr.
func (a *App) renderIssue(id issue.Id, scheme config.ColorScheme) {
	entry := issue.Get(id)
	if entry == nil {
		return
	}
	rendered, err := entry.Render(glamourStyle(scheme))
	if err != nil {
		slog.Warn("failed to render issue catalog entry", "issueID", id, "error", err)
		return
	}
	fmt.Fprint(a.stderr, rendered)
}

// glamourStyle maps the configured color scheme to a glamour standard style.
func glamourStyle(scheme config.ColorScheme) string {
	switch scheme {
	case config.ColorSchemeDark, config.ColorSchemeLight:
		return string(scheme)
	default:
		return "auto"
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
