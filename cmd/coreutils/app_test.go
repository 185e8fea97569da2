// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/win32coreutils/coreutils/internal/config"
	"github.com/win32coreutils/coreutils/internal/coreutil"
	"github.com/win32coreutils/coreutils/internal/testutil"
	"github.com/win32coreutils/coreutils/pkg/types"
)

type appRun struct {
	code   types.ExitCode
	stdout string
	stderr string
}

// isolateConfig points the config directory at a fresh temp dir and returns it.
func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	config.SetConfigDirOverride(dir)
	t.Cleanup(config.Reset)
	return dir
}

func runApp(t *testing.T, fsys afero.Fs, stdin string, argv ...string) appRun {
	t.Helper()

	var stdout, stderr bytes.Buffer
	app := NewApp(Dependencies{
		Fs:     fsys,
		Stdin:  strings.NewReader(stdin),
		Stdout: &stdout,
		Stderr: &stderr,
	})
	code := app.Run(t.Context(), argv)
	return appRun{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func textFs(t *testing.T) afero.Fs {
	t.Helper()
	return testutil.NewMemFs(t, testutil.MemFile{Path: "/notes.txt", Content: "hi\tthere\n"})
}

func TestApp_Run_UtilityFromArgv0(t *testing.T) {
	isolateConfig(t)

	for _, argv0 := range []string{"cat", "cat.exe", `C:\Tools\CAT.EXE`, "/usr/bin/cat"} {
		res := runApp(t, textFs(t), "", argv0, "/notes.txt")
		if res.code != types.ExitNormal {
			t.Errorf("%s: exit code = %d, stderr %q", argv0, res.code, res.stderr)
		}
		if res.stdout != "hi\tthere\n" {
			t.Errorf("%s: stdout = %q", argv0, res.stdout)
		}
	}
}

func TestApp_Run_UtilityAsArgument(t *testing.T) {
	isolateConfig(t)

	res := runApp(t, textFs(t), "", "coreutils", "cat", "-T", "/notes.txt")
	if res.code != types.ExitNormal {
		t.Fatalf("exit code = %d, stderr %q", res.code, res.stderr)
	}
	if res.stdout != "hi^Ithere\n" {
		t.Errorf("stdout = %q", res.stdout)
	}
}

func TestApp_Run_GlobalFlagsBeforeUtility(t *testing.T) {
	isolateConfig(t)

	res := runApp(t, textFs(t), "", "coreutils", "--verbose", "cat", "-v", "/notes.txt")
	if res.code != types.ExitNormal {
		t.Fatalf("exit code = %d, stderr %q", res.code, res.stderr)
	}
	// -v after the utility name belongs to cat, not to the front end.
	if res.stdout != "hi\tthere\n" {
		t.Errorf("stdout = %q", res.stdout)
	}
	if !strings.Contains(res.stderr, "running utility") {
		t.Errorf("verbose run did not log at debug level: %q", res.stderr)
	}
}

func TestApp_Run_StdinFlowsToUtility(t *testing.T) {
	isolateConfig(t)

	res := runApp(t, textFs(t), "piped\n", "coreutils", "cat", "-n")
	if res.stdout != "     1\tpiped\n" {
		t.Errorf("stdout = %q", res.stdout)
	}
}

func TestApp_Run_UtilityExitCodes(t *testing.T) {
	isolateConfig(t)

	res := runApp(t, textFs(t), "", "coreutils", "cat", "/missing.txt", "/notes.txt")
	if res.code != types.ExitNonFatal {
		t.Errorf("missing operand: exit code = %d, want %d", res.code, types.ExitNonFatal)
	}
	if !strings.Contains(res.stderr, "cat: /missing.txt: No such file or directory") {
		t.Errorf("missing operand: stderr = %q", res.stderr)
	}
	if res.stdout != "hi\tthere\n" {
		t.Errorf("missing operand: stdout = %q", res.stdout)
	}

	res = runApp(t, textFs(t), "", "ls", "--no-such-flag")
	if res.code != types.ExitFatal {
		t.Errorf("bad flag: exit code = %d, want %d", res.code, types.ExitFatal)
	}
	if !strings.Contains(res.stderr, "Try 'ls --help' for more information.") {
		t.Errorf("bad flag: stderr = %q", res.stderr)
	}
	if strings.Contains(res.stderr, "Invalid arguments") {
		t.Errorf("bad flag: usage guide shown without --verbose: %q", res.stderr)
	}
}

func TestApp_Run_VerboseUsageErrorShowsGuide(t *testing.T) {
	isolateConfig(t)

	res := runApp(t, textFs(t), "", "coreutils", "--verbose", "ls", "--no-such-flag")
	if res.code != types.ExitFatal {
		t.Errorf("exit code = %d, want %d", res.code, types.ExitFatal)
	}
	if !strings.Contains(res.stderr, "Invalid arguments") {
		t.Errorf("stderr = %q, want the invalid arguments guide", res.stderr)
	}

	// A missing file is not a usage error.
	res = runApp(t, textFs(t), "", "coreutils", "-v", "cat", "/missing.txt")
	if res.code != types.ExitNonFatal {
		t.Errorf("exit code = %d, want %d", res.code, types.ExitNonFatal)
	}
	if strings.Contains(res.stderr, "Invalid arguments") {
		t.Errorf("guide shown for a missing file: %q", res.stderr)
	}
}

func TestApp_Run_ConfigInitPermissionDenied(t *testing.T) {
	isolateConfig(t)

	orig := createDefaultConfig
	t.Cleanup(func() { createDefaultConfig = orig })
	createDefaultConfig = func() (bool, error) {
		return false, fmt.Errorf("failed to create config directory: %w", &fs.PathError{Op: "mkdir", Path: `C:\ProgramData\coreutils`, Err: fs.ErrPermission})
	}

	res := runApp(t, nil, "", "coreutils", "config", "init")
	if res.code == types.ExitNormal {
		t.Error("exit code = 0 for a failed init")
	}
	if !strings.Contains(res.stderr, "Permission denied") {
		t.Errorf("stderr = %q, want the permission denied guide", res.stderr)
	}

	createDefaultConfig = func() (bool, error) {
		return false, errors.New("failed to write config file: disk full")
	}
	res = runApp(t, nil, "", "coreutils", "config", "init")
	if strings.Contains(res.stderr, "Permission denied") {
		t.Errorf("guide shown for an unrelated failure: %q", res.stderr)
	}
}

func TestApp_Run_LsOnePerLine(t *testing.T) {
	isolateConfig(t)

	fsys := testutil.NewMemFs(t,
		testutil.MemFile{Path: "/d/b.txt", Content: "b"},
		testutil.MemFile{Path: "/d/a.txt", Content: "a"},
	)
	res := runApp(t, fsys, "", "coreutils", "ls", "-1", "/d")
	if res.code != types.ExitNormal {
		t.Fatalf("exit code = %d, stderr %q", res.code, res.stderr)
	}
	if res.stdout != "a.txt\nb.txt\n" {
		t.Errorf("stdout = %q", res.stdout)
	}
}

func TestApp_Run_UnknownUtility(t *testing.T) {
	isolateConfig(t)

	res := runApp(t, textFs(t), "", "coreutils", "frobnicate")
	if res.code != types.ExitFatal {
		t.Errorf("exit code = %d, want %d", res.code, types.ExitFatal)
	}
	if !strings.Contains(res.stderr, "Unknown utility") {
		t.Errorf("stderr does not explain the failure: %q", res.stderr)
	}
}

func TestApp_Run_RootFlagError(t *testing.T) {
	isolateConfig(t)

	res := runApp(t, textFs(t), "", "coreutils", "--bogus")
	if res.code != types.ExitFatal {
		t.Errorf("exit code = %d, want %d", res.code, types.ExitFatal)
	}
}

func TestApp_Run_ConfigDefaults(t *testing.T) {
	dir := isolateConfig(t)
	testutil.MustWriteFile(t, filepath.Join(dir, "config.cue"), []byte("cat: { number: true }\n"))

	res := runApp(t, textFs(t), "", "coreutils", "cat", "/notes.txt")
	if res.stdout != "     1\thi\tthere\n" {
		t.Errorf("stdout = %q", res.stdout)
	}
}

func TestApp_Run_ExplicitConfigFile(t *testing.T) {
	isolateConfig(t)
	path := filepath.Join(t.TempDir(), "custom.cue")
	testutil.MustWriteFile(t, path, []byte("cat: { show_ends: true }\n"))

	for _, argv := range [][]string{
		{"coreutils", "--config", path, "cat", "/notes.txt"},
		{"coreutils", "--config=" + path, "cat", "/notes.txt"},
	} {
		res := runApp(t, textFs(t), "", argv...)
		if res.stdout != "hi\tthere$\n" {
			t.Errorf("%v: stdout = %q", argv, res.stdout)
		}
	}
}

func TestApp_Run_BrokenConfigFallsBackToDefaults(t *testing.T) {
	dir := isolateConfig(t)
	testutil.MustWriteFile(t, filepath.Join(dir, "config.cue"), []byte("cat: { bogus: 1 }\n"))

	res := runApp(t, textFs(t), "", "coreutils", "cat", "/notes.txt")
	if res.code != types.ExitNormal {
		t.Errorf("exit code = %d, want 0", res.code)
	}
	if res.stdout != "hi\tthere\n" {
		t.Errorf("stdout = %q", res.stdout)
	}
	if !strings.Contains(res.stderr, "Warning: ") {
		t.Errorf("stderr = %q, want a warning", res.stderr)
	}
}

func TestApp_LeadingGlobals(t *testing.T) {
	t.Parallel()

	app := NewApp(Dependencies{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}})
	rest := app.leadingGlobals([]string{"-v", "--config", "a.cue", "--config=b.cue", "ls", "-v"})

	if !app.verbose {
		t.Error("verbose not set")
	}
	if app.configFile != "b.cue" {
		t.Errorf("configFile = %q, want b.cue", app.configFile)
	}
	if !slices.Equal(rest, []string{"ls", "-v"}) {
		t.Errorf("rest = %v, want [ls -v]", rest)
	}

	if rest := app.leadingGlobals([]string{"--config"}); !slices.Equal(rest, []string{"--config"}) {
		t.Errorf("dangling --config consumed: %v", rest)
	}
}

func TestExitCodeOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want types.ExitCode
	}{
		{"nil", nil, types.ExitNormal},
		{"exit error", &ExitError{Code: types.ExitFatal}, types.ExitFatal},
		{"status error", &coreutil.StatusError{Code: types.ExitNonFatal}, types.ExitNonFatal},
		{"plain", errors.New("boom"), types.ExitNonFatal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCodeOf(tt.err); got != tt.want {
				t.Errorf("exitCodeOf() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExitError(t *testing.T) {
	t.Parallel()

	inner := errors.New("inner")
	err := &ExitError{Code: types.ExitFatal, Err: inner}
	if err.Error() != "inner" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("errors.Is(err, inner) = false")
	}
	if got := (&ExitError{Code: types.ExitNonFatal}).Error(); got != "exit status 1" {
		t.Errorf("Error() = %q", got)
	}
}

func TestGlamourStyle(t *testing.T) {
	t.Parallel()

	if got := glamourStyle(config.ColorSchemeDark); got != "dark" {
		t.Errorf("dark -> %q", got)
	}
	if got := glamourStyle(config.ColorSchemeLight); got != "light" {
		t.Errorf("light -> %q", got)
	}
	if got := glamourStyle(config.ColorSchemeAuto); got != "auto" {
		t.Errorf("auto -> %q", got)
	}
}

func TestNewApp_Defaults(t *testing.T) {
	t.Parallel()

	app := NewApp(Dependencies{})
	if app.Registry != coreutil.DefaultRegistry {
		t.Error("Registry does not default to DefaultRegistry")
	}
	if app.stdout != os.Stdout || app.stderr != os.Stderr || app.stdin != os.Stdin {
		t.Error("streams do not default to the process streams")
	}
	if app.Config == nil || app.Fs == nil {
		t.Error("Config and Fs must be set")
	}
}
