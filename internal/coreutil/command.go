// SPDX-License-Identifier: MPL-2.0

package coreutil

import "context"

type (
	// Command defines the interface for utility implementations.
	Command interface {
		// Name returns the command name (e.g., "ls", "cat").
		Name() string

		// Run executes the command with the given context and arguments.
		// The context carries the HandlerContext with stdin/stdout/stderr.
		// args[0] is the command name (for error messages), args[1:] are the arguments.
		// Returns nil on success or a *StatusError carrying the exit code.
		Run(ctx context.Context, args []string) error

		// SupportedFlags returns the flags this implementation supports.
		// This is used for documentation and introspection.
		SupportedFlags() []FlagInfo
	}

	// FlagInfo describes a supported flag.
	FlagInfo struct {
		// Name is the long flag name without dashes (e.g., "recursive" for --recursive).
		// Flags that only exist in short form use the short name here.
		Name string
		// ShortName is the single-character alias (e.g., "R" for --recursive).
		// Empty if no short form exists.
		ShortName string
		// Description explains what the flag does.
		Description string
		// TakesValue indicates if the flag requires a value.
		TakesValue bool
	}
)
