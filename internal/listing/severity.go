// SPDX-License-Identifier: MPL-2.0

package listing

import "github.com/win32coreutils/coreutils/pkg/types"

const (
	// Normal means every operand was listed.
	Normal Severity = iota
	// NonFatal means at least one operand (or recursed subdirectory) could not
	// be listed.
	NonFatal
	// Fatal means the run could not start. The engine never produces it; it is
	// reserved for argument parsing in the CLI layer.
	Fatal
)

// Severity is the outcome of listing one or more operands. Severities are
// ordered so that the worst of several outcomes is their maximum.
type Severity int

// Max returns the more severe of s and other.
func (s Severity) Max(other Severity) Severity {
	if other > s {
		return other
	}
	return s
}

// ExitCode maps the severity to the process exit status.
func (s Severity) ExitCode() types.ExitCode {
	switch s {
	case Normal:
		return types.ExitNormal
	case NonFatal:
		return types.ExitNonFatal
	default:
		return types.ExitFatal
	}
}

// String returns a lower-case name for logs.
func (s Severity) String() string {
	switch s {
	case Normal:
		return "normal"
	case NonFatal:
		return "non-fatal"
	case Fatal:
		return "fatal"
	default:
		return "unknown"
	}
}
