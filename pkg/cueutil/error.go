// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"
	"strings"

	"cuelang.org/go/cue/errors"
)

// ValidationError is a single CUE failure located in a file.
type ValidationError struct {
	// FilePath is the file being validated.
	FilePath string

	// CUEPath is the dotted path to the offending value (e.g., "ls.one_per_line").
	CUEPath string

	// Message is the validation error message.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.CUEPath != "" {
		return fmt.Sprintf("%s: %s: %s", e.FilePath, e.CUEPath, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.FilePath, e.Message)
}

// FormatError formats a CUE error with path prefixes.
//
// Error format: <file-path>: <cue-path>: <message>
//
// Examples:
//   - config.cue: ls.one_per_line: conflicting values true and "yes"
//   - config.cue: log_level: 4 errors in empty disjunction
//
// Schema definitions are dropped from the path, so a value checked against
// #Config.ls is reported as ls. Errors on a single path are returned as a
// *ValidationError; errors on several paths are folded into one multi-line
// error.
func FormatError(err error, filePath string) error {
	if err == nil {
		return nil
	}

	cueErrors := errors.Errors(err)
	if len(cueErrors) == 0 {
		return fmt.Errorf("%s: %w", filePath, err)
	}

	found := make([]*ValidationError, 0, len(cueErrors))
	for _, e := range cueErrors {
		full := errors.Path(e)
		pathStr := formatPath(fieldPath(full))
		msg := trimPath(e.Error(), formatPath(full), pathStr)
		found = append(found, &ValidationError{FilePath: filePath, CUEPath: pathStr, Message: msg})
	}

	// A failed disjunction is reported once per branch, all on one path.
	if samePath(found) {
		return found[0]
	}

	lines := make([]string, 0, len(found))
	for _, v := range found {
		if v.CUEPath != "" {
			lines = append(lines, v.CUEPath+": "+v.Message)
		} else {
			lines = append(lines, v.Message)
		}
	}
	return fmt.Errorf("%s: validation failed:\n  %s", filePath, strings.Join(lines, "\n  "))
}

func samePath(found []*ValidationError) bool {
	for _, v := range found[1:] {
		if v.CUEPath != found[0].CUEPath {
			return false
		}
	}
	return true
}

// fieldPath drops the schema definitions (#Config, ...) the document was
// unified with, leaving the path as the user wrote it.
func fieldPath(path []string) []string {
	for len(path) > 0 && strings.HasPrefix(path[0], "#") {
		path = path[1:]
	}
	return path
}

// trimPath removes a leading copy of any of the given paths from msg; CUE
// sometimes repeats the path at the start of the message.
func trimPath(msg string, paths ...string) string {
	for _, p := range paths {
		if p == "" || !strings.HasPrefix(msg, p+":") {
			continue
		}
		return strings.TrimSpace(strings.TrimPrefix(msg, p+":"))
	}
	return msg
}

// formatPath joins a CUE error path with dots, rendering purely numeric
// elements as list indices: ["a", "0", "b"] becomes "a[0].b".
func formatPath(path []string) string {
	if len(path) == 0 {
		return ""
	}

	var result strings.Builder
	for i, part := range path {
		isIndex := part != ""
		for _, c := range part {
			if c < '0' || c > '9' {
				isIndex = false
				break
			}
		}

		if isIndex && i > 0 {
			result.WriteString("[")
			result.WriteString(part)
			result.WriteString("]")
			continue
		}
		if i > 0 {
			result.WriteString(".")
		}
		result.WriteString(part)
	}

	return result.String()
}

// CheckFileSize returns an error when data is larger than maxSize bytes.
func CheckFileSize(data []byte, maxSize int64, filename string) error {
	if int64(len(data)) > maxSize {
		return fmt.Errorf("%s: file size %d bytes exceeds maximum %d bytes",
			filename, len(data), maxSize)
	}
	return nil
}
