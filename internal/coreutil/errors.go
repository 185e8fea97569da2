// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/win32coreutils/coreutils/pkg/types"
)

// ErrIsDirectory is reported for directory operands of utilities that read
// file contents.
var ErrIsDirectory = errors.New("Is a directory") //nolint:staticcheck // matches the traditional diagnostic

// StatusError ends a utility run with a non-zero exit code. Whatever caused
// it has already been written to the handler's Stderr.
type StatusError struct {
	Code types.ExitCode
	Err  error
}

// Error returns the error message for StatusError.
func (e *StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *StatusError) Unwrap() error {
	return e.Err
}

// exitStatus converts a code into the error a Command returns: nil for
// success, a *StatusError otherwise.
func exitStatus(code types.ExitCode, err error) error {
	if code.IsSuccess() {
		return nil
	}
	return &StatusError{Code: code, Err: err}
}

// wrapError prefixes err with the command name. Returns nil if err is nil.
func wrapError(cmdName string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", cmdName, err)
}

// reason renders the cause of a file failure the way traditional utilities
// do, independent of the platform's wording.
func reason(err error) string {
	switch {
	case errors.Is(err, ErrIsDirectory):
		return ErrIsDirectory.Error()
	case errors.Is(err, fs.ErrNotExist):
		return "No such file or directory"
	case errors.Is(err, fs.ErrPermission):
		return "Permission denied"
	}
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err.Error()
	}
	return err.Error()
}
