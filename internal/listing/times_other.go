// SPDX-License-Identifier: MPL-2.0

//go:build !windows && !linux && !openbsd && !darwin && !freebsd && !netbsd

package listing

import (
	"io/fs"
	"time"
)

func accessTime(fs.FileInfo) (time.Time, bool) { return time.Time{}, false }

func creationTime(fs.FileInfo) (time.Time, bool) { return time.Time{}, false }
