// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
)

// ActionableError is a failed operation together with the steps a user can
// take to fix it.
//
//	return &issue.ActionableError{
//		Operation:   "load configuration",
//		Resource:    path,
//		Suggestions: []string{"Run 'coreutils config check' for details"},
//		Cause:       err,
//	}
type ActionableError struct {
	// Operation is a verb phrase such as "load configuration".
	Operation string
	// Resource names the file involved, if any.
	Resource string
	// Suggestions are shown one per line below the message.
	Suggestions []string
	Cause       error
}

// Error reads "failed to <operation>: <resource>: <cause>". The resource is
// left out when the cause already names it.
func (e *ActionableError) Error() string {
	parts := []string{"failed to " + e.Operation}
	var cause string
	if e.Cause != nil {
		cause = e.Cause.Error()
	}
	if e.Resource != "" && !strings.Contains(cause, e.Resource) {
		parts = append(parts, e.Resource)
	}
	if cause != "" {
		parts = append(parts, cause)
	}
	return strings.Join(parts, ": ")
}

func (e *ActionableError) Unwrap() error {
	return e.Cause
}

// Format renders the message followed by its suggestions. Verbose output
// also lists every error in the cause chain, outermost first.
func (e *ActionableError) Format(verbose bool) string {
	var sb strings.Builder
	sb.WriteString(e.Error())

	if len(e.Suggestions) > 0 {
		sb.WriteString("\n")
		for _, s := range e.Suggestions {
			sb.WriteString("\n  • " + s)
		}
	}

	if verbose && e.Cause != nil {
		sb.WriteString("\n\nError chain:")
		for i, err := 1, e.Cause; err != nil; i, err = i+1, errors.Unwrap(err) {
			fmt.Fprintf(&sb, "\n  %d. %s", i, err)
		}
	}
	return sb.String()
}
