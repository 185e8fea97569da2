// SPDX-License-Identifier: MPL-2.0

package listing

const (
	// LongForm renders one detailed row per entry.
	LongForm DisplayMode = iota
	// OnePerLine renders only the file name of each entry.
	OnePerLine
)

const (
	// VisibilityDefault hides names starting with a dot.
	VisibilityDefault Visibility = iota
	// VisibilityAll shows dot files and the implied "." and ".." entries.
	VisibilityAll
	// VisibilityAlmostAll shows dot files but not "." and "..".
	VisibilityAlmostAll
)

const (
	// ByName sorts lexically by file name.
	ByName SortKey = iota
	// BySize sorts largest first.
	BySize
	// ByModifiedTime sorts newest modification first.
	ByModifiedTime
	// ByAccessTime sorts newest access first.
	ByAccessTime
	// ByCreationTime sorts newest creation first.
	ByCreationTime
)

const (
	// ModifiedTime displays the last write time.
	ModifiedTime TimeField = iota
	// AccessTime displays the last access time.
	AccessTime
	// CreationTime displays the creation time (inode change time on Unix
	// systems that do not record a birth time).
	CreationTime
)

type (
	// DisplayMode selects how each entry is rendered.
	DisplayMode int

	// Visibility selects which dot entries are reported.
	Visibility int

	// SortKey selects the ordering applied before rendering.
	SortKey int

	// TimeField selects which timestamp the long form shows.
	TimeField int

	// Options controls a listing run. It is built once from the command line
	// and never modified by the engine.
	Options struct {
		Mode       DisplayMode
		Visibility Visibility
		Sort       SortKey
		// Reverse inverts the order produced by Sort.
		Reverse bool
		// Time selects the timestamp shown in the long form.
		Time TimeField
		// Recursive lists real subdirectories after their parent.
		Recursive bool
		// DirectoryAsEntry lists operands themselves instead of their contents.
		DirectoryAsEntry bool
		// FullTime shows timestamps with seconds, nanoseconds and zone.
		FullTime bool
		// NoDomain omits the domain (group) column of the owner field.
		NoDomain bool
	}
)

// DefaultOptions returns a long, name-sorted listing that hides dot files.
func DefaultOptions() Options {
	return Options{
		Mode:       LongForm,
		Visibility: VisibilityDefault,
		Sort:       ByName,
		Time:       ModifiedTime,
	}
}

// String returns the flag-style name of the sort key for logs.
func (k SortKey) String() string {
	switch k {
	case ByName:
		return "name"
	case BySize:
		return "size"
	case ByModifiedTime:
		return "mtime"
	case ByAccessTime:
		return "atime"
	case ByCreationTime:
		return "ctime"
	default:
		return "unknown"
	}
}

// shows reports whether an entry called name is visible under v.
func (v Visibility) shows(name string) bool {
	if v == VisibilityDefault {
		return len(name) == 0 || name[0] != '.'
	}
	return true
}
