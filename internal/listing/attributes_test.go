// SPDX-License-Identifier: MPL-2.0

package listing

import (
	"io/fs"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/win32coreutils/coreutils/internal/owner"
)

type fakeInfo struct {
	name string
	size int64
	mode fs.FileMode
	mod  time.Time
}

func (f fakeInfo) Name() string       { return f.name }
func (f fakeInfo) Size() int64        { return f.size }
func (f fakeInfo) Mode() fs.FileMode  { return f.mode }
func (f fakeInfo) ModTime() time.Time { return f.mod }
func (f fakeInfo) IsDir() bool        { return f.mode.IsDir() }
func (f fakeInfo) Sys() any           { return nil }

func TestScaleSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bytes uint64
		want  string
	}{
		{0, "0.00 B"},
		{44, "44.00 B"},
		{1023, "1023.00 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{1024*1024 - 1, "1024.00 KB"}, // 1023.999 KB is below the next step
		{1 << 20, "1.00 MB"},
		{5 << 30, "5.00 GB"},
		{1 << 40, "1.00 TB"},
		{1 << 50, "1024.00 TB"}, // no unit past TB
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ScaleSize(tt.bytes), "ScaleSize(%d)", tt.bytes)
	}
}

func TestTypeMarkerOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		info fs.FileInfo
		want string
	}{
		{"regular file", fakeInfo{mode: 0o644}, "-"},
		{"directory", fakeInfo{mode: fs.ModeDir | 0o755}, "d"},
		{"symlink", fakeInfo{mode: fs.ModeSymlink | 0o777}, "l"},
		{"named pipe counts as file", fakeInfo{mode: fs.ModeNamedPipe}, "-"},
		{"unreadable", nil, "?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, TypeMarkerOf(tt.info).String())
		})
	}
}

func TestPermissionSummary(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "rwxrwxrwx", PermissionSummary(fakeInfo{mode: 0o644}))
	assert.Equal(t, "rwxrwxrwx", PermissionSummary(fakeInfo{mode: 0o600}))
	assert.Equal(t, "r-xr-xr-x", PermissionSummary(fakeInfo{mode: 0o444}))
	assert.Equal(t, "r-xr-xr-x", PermissionSummary(fakeInfo{mode: fs.ModeDir | 0o555}))
	assert.Equal(t, "???????", PermissionSummary(nil))
}

func TestSizeDisplay(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "44.00 B", SizeDisplay(fakeInfo{size: 44}))
	assert.Equal(t, "<DIR>", SizeDisplay(fakeInfo{mode: fs.ModeDir, size: 4096}))
	assert.Equal(t, "<DIR>", SizeDisplay(fakeInfo{mode: fs.ModeSymlink, size: 12}))
	assert.Equal(t, "?", SizeDisplay(fakeInfo{size: -1}))
	assert.Equal(t, "?", SizeDisplay(nil))
}

func TestTimeDisplay(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 3, 14, 10, 26, 53, 123, time.FixedZone("CET", 3600))

	assert.Equal(t, "03/14/2024 09:26", TimeDisplay(ts, false))
	assert.Equal(t, "2024-03-14 09:26:53.000000123 +0000", TimeDisplay(ts, true))
	assert.Equal(t, "?", TimeDisplay(time.Time{}, false))
	assert.Equal(t, "?", TimeDisplay(time.Time{}, true))
}

func TestFileName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "report.txt", FileName("report.txt"))
	assert.Equal(t, "?", FileName(""))
	assert.Equal(t, "�data.bin", FileName("\xffdata.bin"))
	assert.Equal(t, "日本語.txt", FileName("日本語.txt"))
}

func TestAttributes(t *testing.T) {
	t.Parallel()

	mod := time.Date(2024, 3, 14, 9, 26, 0, 0, time.UTC)
	e := Entry{Path: "/data/ascii.txt", Name: "ascii.txt", Info: fakeInfo{name: "ascii.txt", size: 44, mode: 0o644, mod: mod}}
	owners := owner.ResolverFunc(func(path string) owner.Owner {
		return owner.Owner{Domain: "WORKGROUP", Account: "builder"}
	})

	t.Run("long form resolves owner", func(t *testing.T) {
		t.Parallel()
		got := Attributes(e, DefaultOptions(), owners)
		assert.Equal(t, EntryAttributes{
			Type:        TypeFile,
			Permissions: "rwxrwxrwx",
			Size:        "44.00 B",
			Time:        "03/14/2024 09:26",
			Owner:       "WORKGROUP        builder         ",
			Name:        "ascii.txt",
		}, got)
	})

	t.Run("no domain hides the first owner column", func(t *testing.T) {
		t.Parallel()
		opts := DefaultOptions()
		opts.NoDomain = true
		got := Attributes(e, opts, owners)
		assert.Equal(t, "builder         ", got.Owner)
	})

	t.Run("one per line skips owner lookup", func(t *testing.T) {
		t.Parallel()
		opts := DefaultOptions()
		opts.Mode = OnePerLine
		got := Attributes(e, opts, owner.ResolverFunc(func(string) owner.Owner {
			t.Error("owner resolver must not be called for one-per-line output")
			return owner.Unknown
		}))
		assert.Equal(t, "?", got.Owner)
	})

	t.Run("missing metadata degrades every attribute", func(t *testing.T) {
		t.Parallel()
		got := Attributes(Entry{Path: "/data/x", Name: "x"}, DefaultOptions(), nil)
		assert.Equal(t, TypeUnknown, got.Type)
		assert.Equal(t, "???????", got.Permissions)
		assert.Equal(t, "?", got.Size)
		assert.Equal(t, "?", got.Time)
		assert.Equal(t, owner.Unknown.String(), got.Owner)
		assert.Equal(t, "x", got.Name)
	})
}
