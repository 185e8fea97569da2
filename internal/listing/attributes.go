// SPDX-License-Identifier: MPL-2.0

package listing

import (
	"fmt"
	"io/fs"
	"strings"
	"time"
	"unicode/utf8"

	"code.cloudfoundry.org/bytefmt"

	"github.com/win32coreutils/coreutils/internal/owner"
)

const (
	// TypeUnknown is reported when the entry's type cannot be read.
	TypeUnknown TypeMarker = iota
	// TypeFile is any entry that is neither a directory nor a symbolic link.
	TypeFile
	// TypeDirectory is a directory.
	TypeDirectory
	// TypeSymlink is a symbolic link or other reparse point reported as one.
	TypeSymlink
)

const (
	// Placeholder replaces any single attribute that could not be read.
	Placeholder = "?"
	// PermissionsPlaceholder replaces the permission summary. It is seven
	// characters wide, not nine, matching the historical output.
	PermissionsPlaceholder = "???????"
	// DirSize is shown in the size column of directories and links.
	DirSize = "<DIR>"

	permsReadOnly  = "r-xr-xr-x"
	permsWritable  = "rwxrwxrwx"
	shortTimestamp = "01/02/2006 15:04"
	fullTimestamp  = "2006-01-02 15:04:05.000000000 -0700"
)

// sizeUnits are the suffixes used by SizeDisplay. Values never scale past
// the last one.
var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

type (
	// TypeMarker classifies an entry for the first column of a long listing.
	TypeMarker int

	// EntryAttributes holds the display strings for one entry. Every field
	// is always populated; unavailable values hold a placeholder.
	EntryAttributes struct {
		Type        TypeMarker
		Permissions string
		Size        string
		Time        string
		Owner       string
		Name        string
	}
)

// String returns the single-character marker: d, l, - or ?.
func (t TypeMarker) String() string {
	switch t {
	case TypeDirectory:
		return "d"
	case TypeSymlink:
		return "l"
	case TypeFile:
		return "-"
	default:
		return Placeholder
	}
}

// TypeMarkerOf classifies info. A nil info is TypeUnknown.
func TypeMarkerOf(info fs.FileInfo) TypeMarker {
	if info == nil {
		return TypeUnknown
	}
	mode := info.Mode()
	switch {
	case mode&fs.ModeSymlink != 0:
		return TypeSymlink
	case mode.IsDir():
		return TypeDirectory
	default:
		return TypeFile
	}
}

// PermissionSummary reports r-xr-xr-x for read-only entries and rwxrwxrwx
// otherwise. An entry is read-only when no write bit is set, which is how
// the Windows read-only attribute surfaces in a FileMode.
func PermissionSummary(info fs.FileInfo) string {
	if info == nil {
		return PermissionsPlaceholder
	}
	if info.Mode().Perm()&0o222 == 0 {
		return permsReadOnly
	}
	return permsWritable
}

// SizeDisplay reports <DIR> for directories and links and a scaled size with
// two decimals for everything else.
func SizeDisplay(info fs.FileInfo) string {
	if info == nil {
		return Placeholder
	}
	switch TypeMarkerOf(info) {
	case TypeDirectory, TypeSymlink:
		return DirSize
	}
	if info.Size() < 0 {
		return Placeholder
	}
	return ScaleSize(uint64(info.Size()))
}

// ScaleSize divides b by 1024 until it is below 1024 or the largest unit is
// reached, and formats the result with two fractional digits.
func ScaleSize(b uint64) string {
	value := float64(b)
	idx := 0
	for value >= bytefmt.KILOBYTE && idx < len(sizeUnits)-1 {
		value /= bytefmt.KILOBYTE
		idx++
	}
	return fmt.Sprintf("%.2f %s", value, sizeUnits[idx])
}

// TimeDisplay formats t in UTC. The zero time is unavailable.
func TimeDisplay(t time.Time, full bool) string {
	if t.IsZero() {
		return Placeholder
	}
	if full {
		return t.UTC().Format(fullTimestamp)
	}
	return t.UTC().Format(shortTimestamp)
}

// FileName returns name with invalid UTF-8 replaced by U+FFFD. An empty name
// is shown as a placeholder.
func FileName(name string) string {
	if name == "" {
		return Placeholder
	}
	if !utf8.ValidString(name) {
		return strings.ToValidUTF8(name, string(utf8.RuneError))
	}
	return name
}

// Attributes resolves every display attribute of e. One-per-line output never
// shows the owner, so the lookup is skipped and Owner holds a placeholder.
func Attributes(e Entry, opts Options, owners owner.Resolver) EntryAttributes {
	attrs := EntryAttributes{
		Type:        TypeMarkerOf(e.Info),
		Permissions: PermissionSummary(e.Info),
		Size:        SizeDisplay(e.Info),
		Time:        TimeDisplay(timeOf(e.Info, opts.Time), opts.FullTime),
		Owner:       Placeholder,
		Name:        FileName(e.Name),
	}
	if opts.Mode == LongForm {
		o := owner.Unknown
		if owners != nil {
			o = owners.Resolve(e.Path)
		}
		attrs.Owner = o.Display(opts.NoDomain)
	}
	return attrs
}
