// SPDX-License-Identifier: MPL-2.0

package listing

import (
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"
)

type (
	// Entry is one directory child as read from the filesystem.
	// Info is nil when the child's metadata could not be read.
	Entry struct {
		// Path locates the child for follow-up lookups (owner, recursion).
		Path string
		// Name is the base name, or the operand itself for entries listed
		// with DirectoryAsEntry.
		Name string
		Info fs.FileInfo
	}

	// Reader enumerates directory children on a filesystem.
	Reader struct {
		Fs afero.Fs
	}
)

// NewReader creates a Reader over fsys. A nil fsys reads the host filesystem.
func NewReader(fsys afero.Fs) *Reader {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &Reader{Fs: fsys}
}

// Read returns the immediate children of dir in the order the filesystem
// reports them. Children that vanish before they can be inspected are left
// out and returned as *EntrySkippedError values. If dir itself cannot be
// opened and enumerated, the error is a *DirectoryUnreadableError.
func (r *Reader) Read(dir string) (entries []Entry, skipped []error, err error) {
	f, err := r.Fs.Open(dir)
	if err != nil {
		return nil, nil, &DirectoryUnreadableError{Op: "open directory", Path: dir, Err: err}
	}
	defer func() { _ = f.Close() }() // Read-only handle; close error is not actionable

	names, err := f.Readdirnames(-1)
	if err != nil {
		return nil, nil, &DirectoryUnreadableError{Op: "open directory", Path: dir, Err: err}
	}

	entries = make([]Entry, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		info, statErr := r.Lstat(path)
		switch {
		case statErr == nil:
		case errors.Is(statErr, fs.ErrNotExist):
			skipped = append(skipped, &EntrySkippedError{Path: path, Err: statErr})
			continue
		default:
			slog.Debug("listing: metadata unavailable", "path", path, "error", statErr)
			info = nil
		}
		entries = append(entries, Entry{Path: path, Name: name, Info: info})
	}

	return entries, skipped, nil
}

// Entry builds the Entry for path itself, named as given.
func (r *Reader) Entry(path, name string) (Entry, error) {
	info, err := r.Lstat(path)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Path: path, Name: name, Info: info}, nil
}

// Lstat reads metadata without following a final symbolic link when the
// filesystem supports it.
func (r *Reader) Lstat(path string) (fs.FileInfo, error) {
	if ls, ok := r.Fs.(afero.Lstater); ok {
		info, _, err := ls.LstatIfPossible(path)
		return info, err
	}
	return r.Fs.Stat(path)
}

// IsDir reports whether path names a directory, following symbolic links.
func (r *Reader) IsDir(path string) bool {
	info, err := r.Fs.Stat(path)
	return err == nil && info.IsDir()
}
