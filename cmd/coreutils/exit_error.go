// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/win32coreutils/coreutils/internal/coreutil"
	"github.com/win32coreutils/coreutils/pkg/types"
)

// ExitError signals a non-zero exit code without forcing os.Exit in RunE handlers.
// An ExitError without Err has already been reported and prints nothing.
type ExitError struct {
	Code types.ExitCode
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// exitCodeOf maps the error a command run ended with to the process exit
// status. Errors that carry no code are treated as non-fatal failures.
func exitCodeOf(err error) types.ExitCode {
	if err == nil {
		return types.ExitNormal
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	var statusErr *coreutil.StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Code
	}
	return types.ExitNonFatal
}
