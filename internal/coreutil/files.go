// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"errors"
	"io"
	"io/fs"

	"github.com/spf13/afero"
)

// stdinOperand names standard input among file operands.
const stdinOperand = "-"

// FileProcessor processes a single reader with file context.
// Parameters:
//   - r: the input stream to process
//   - filename: the original filename argument (or "-" for stdin)
//   - index: 0-based index of current file (0 for stdin)
//   - total: total number of files being processed (0 for stdin)
type FileProcessor func(r io.Reader, filename string, index, total int) error

// ProcessFilesOrStdin feeds every file operand to processor, or stdin when
// args is empty. "-" among the operands also means stdin.
//
// Files that cannot be opened, and directories, do not stop the run: each
// is handed to onSkip together with the operand as typed, and processing
// moves on. An error
// returned by processor aborts the run and is returned as is.
func ProcessFilesOrStdin(
	fsys afero.Fs,
	args []string,
	stdin io.Reader,
	processor FileProcessor,
	onSkip func(file string, err error),
) error {
	if len(args) == 0 {
		return processor(stdin, stdinOperand, 0, 0)
	}

	total := len(args)
	for i, file := range args {
		if file == stdinOperand {
			if err := processor(stdin, file, i, total); err != nil {
				return err
			}
			continue
		}

		err := processFile(fsys, file, func(f afero.File) error {
			return processor(f, file, i, total)
		})
		var skip *skipError
		if errors.As(err, &skip) {
			onSkip(file, skip.err)
			continue
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// skipError marks failures that concern the operand rather than the run.
type skipError struct{ err error }

func (e *skipError) Error() string { return e.err.Error() }
func (e *skipError) Unwrap() error { return e.err }

// processFile opens a file and calls the processor, aggregating the close
// error via the named return.
func processFile(fsys afero.Fs, file string, processor func(f afero.File) error) (err error) {
	info, err := fsys.Stat(file)
	if err != nil {
		return &skipError{err: err}
	}
	if info.IsDir() {
		return &skipError{err: &fs.PathError{Op: "read", Path: file, Err: ErrIsDirectory}}
	}

	f, err := fsys.Open(file)
	if err != nil {
		return &skipError{err: err}
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = &skipError{err: closeErr}
		}
	}()

	return processor(f)
}
