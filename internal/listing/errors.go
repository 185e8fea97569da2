// SPDX-License-Identifier: MPL-2.0

package listing

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrDirectoryUnreadable is the sentinel wrapped by DirectoryUnreadableError.
	ErrDirectoryUnreadable = errors.New("directory unreadable")
	// ErrEntrySkipped is the sentinel wrapped by EntrySkippedError.
	ErrEntrySkipped = errors.New("entry skipped")
)

type (
	// DirectoryUnreadableError reports that an operand could not be listed.
	// It escalates the operand's Severity to NonFatal.
	DirectoryUnreadableError struct {
		// Op is the action that failed, e.g. "open directory" or "access".
		Op string
		// Path is the operand as the user typed it.
		Path string
		// Err is the underlying cause.
		Err error
	}

	// EntrySkippedError reports a child that disappeared while its directory
	// was being read. The child is omitted and Severity is unaffected.
	EntrySkippedError struct {
		Path string
		Err  error
	}
)

// Error implements the error interface.
func (e *DirectoryUnreadableError) Error() string {
	return fmt.Sprintf("cannot %s '%s': %s", e.Op, e.Path, causeText(e.Err))
}

// Unwrap returns both the sentinel and the cause so that errors.Is works for
// ErrDirectoryUnreadable as well as fs.ErrNotExist and friends.
func (e *DirectoryUnreadableError) Unwrap() []error {
	return []error{ErrDirectoryUnreadable, e.Err}
}

// Error implements the error interface.
func (e *EntrySkippedError) Error() string {
	return fmt.Sprintf("skipping '%s': %s", e.Path, causeText(e.Err))
}

// Unwrap returns both the sentinel and the cause.
func (e *EntrySkippedError) Unwrap() []error {
	return []error{ErrEntrySkipped, e.Err}
}

// causeText strips the operation and path from a *fs.PathError, which are
// already part of the surrounding message.
func causeText(err error) string {
	if err == nil {
		return "unknown error"
	}
	var pe *fs.PathError
	if errors.As(err, &pe) && pe.Err != nil {
		return pe.Err.Error()
	}
	return err.Error()
}
