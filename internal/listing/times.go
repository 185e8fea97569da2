// SPDX-License-Identifier: MPL-2.0

package listing

import (
	"io/fs"
	"time"
)

// timeOf returns the timestamp selected by field. Platforms (or filesystems)
// that do not record access or creation times fall back to the modification
// time.
func timeOf(info fs.FileInfo, field TimeField) time.Time {
	if info == nil {
		return time.Time{}
	}
	switch field {
	case AccessTime:
		if t, ok := accessTime(info); ok {
			return t
		}
	case CreationTime:
		if t, ok := creationTime(info); ok {
			return t
		}
	}
	return info.ModTime()
}
