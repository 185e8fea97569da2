// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"path/filepath"
	"strings"
)

// OS name constants for runtime.GOOS comparisons.
// Centralizes the string literals to avoid scattered magic strings.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// ExecutableSuffix is appended to program names on Windows.
const ExecutableSuffix = ".exe"

// UtilityName derives the utility a multi-call binary was invoked as from
// its argv[0]: the base name, lower-cased, without a trailing ".exe".
// Both slash styles are accepted so that Windows paths resolve the same way
// on every platform.
func UtilityName(argv0 string) string {
	name := argv0
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	name = filepath.Base(name)
	if strings.EqualFold(filepath.Ext(name), ExecutableSuffix) {
		name = name[:len(name)-len(ExecutableSuffix)]
	}
	return strings.ToLower(name)
}
