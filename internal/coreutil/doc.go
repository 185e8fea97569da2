// SPDX-License-Identifier: MPL-2.0

// Package coreutil implements the utilities shipped by the coreutils binary:
// ls, cat and yes.
//
// Each utility implements Command and registers itself in DefaultRegistry
// from an init function. The CLI looks utilities up by name, either from a
// subcommand ("coreutils ls -l") or from the name the binary was invoked as
// ("ls.exe -l").
//
// # I/O
//
// Utilities never touch os.Stdin, os.Stdout or the real filesystem directly.
// They read everything from the HandlerContext stored in the context passed
// to Run, which makes them testable against an afero.MemMapFs and in-memory
// buffers. The one exception is the owner column of ls, which asks the
// operating system about the path.
//
// # Exit Status
//
// Diagnostics are written to the handler's Stderr as they happen, prefixed
// with the utility name:
//
//	ls: cannot open directory 'C:\missing': The system cannot find the file specified.
//	cat: notes: Is a directory
//
// A utility that finishes with a non-zero status returns a *StatusError.
// Its message has already been reported, so callers only need its Code.
//
// # Flags
//
// Flags are parsed with pflag, so short flags combine ("-la") and long
// flags use two dashes. Every utility accepts --help and --version.
// An unknown flag is reported together with a hint to run --help, and the
// utility exits with status 2.
package coreutil
