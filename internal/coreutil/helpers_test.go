// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/win32coreutils/coreutils/internal/config"
	"github.com/win32coreutils/coreutils/pkg/types"
)

// runResult captures one utility invocation.
type runResult struct {
	stdout string
	stderr string
	err    error
}

// exitCode returns the code the CLI would exit with for r.err.
func (r runResult) exitCode() types.ExitCode {
	if r.err == nil {
		return types.ExitNormal
	}
	var se *StatusError
	if errors.As(r.err, &se) {
		return se.Code
	}
	return types.ExitFatal
}

// runCommand runs cmd against fsys with the given stdin and configuration.
// A nil cfg uses the defaults.
func runCommand(t *testing.T, cmd Command, fsys afero.Fs, stdin string, cfg *config.Config, args ...string) runResult {
	t.Helper()
	return runCommandContext(t.Context(), cmd, fsys, stdin, cfg, args...)
}

func runCommandContext(ctx context.Context, cmd Command, fsys afero.Fs, stdin string, cfg *config.Config, args ...string) runResult {
	var stdout, stderr bytes.Buffer
	ctx = WithHandlerContext(ctx, &HandlerContext{
		Stdin:  strings.NewReader(stdin),
		Stdout: &stdout,
		Stderr: &stderr,
		Fs:     fsys,
		Config: cfg,
	})
	err := cmd.Run(ctx, append([]string{cmd.Name()}, args...))
	return runResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// failingWriter rejects every write.
type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }
