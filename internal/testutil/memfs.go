// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
)

// MemFile describes one entry of an in-memory test tree.
type MemFile struct {
	Path    string
	Content string
	// Dir creates a directory instead of a file; Content is ignored.
	Dir bool
	// ModTime is applied to the entry when non-zero.
	ModTime time.Time
}

// NewMemFs builds an afero.MemMapFs holding files. Parent directories are
// created as needed.
func NewMemFs(t testing.TB, files ...MemFile) afero.Fs {
	t.Helper()

	fsys := afero.NewMemMapFs()
	for _, f := range files {
		if f.Dir {
			if err := fsys.MkdirAll(f.Path, 0o755); err != nil {
				t.Fatalf("failed to create directory %s: %v", f.Path, err)
			}
		} else {
			if err := fsys.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
				t.Fatalf("failed to create directory %s: %v", filepath.Dir(f.Path), err)
			}
			if err := afero.WriteFile(fsys, f.Path, []byte(f.Content), 0o644); err != nil {
				t.Fatalf("failed to write %s: %v", f.Path, err)
			}
		}
		if !f.ModTime.IsZero() {
			if err := fsys.Chtimes(f.Path, f.ModTime, f.ModTime); err != nil {
				t.Fatalf("failed to set times on %s: %v", f.Path, err)
			}
		}
	}
	return fsys
}
