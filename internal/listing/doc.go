// SPDX-License-Identifier: MPL-2.0

// Package listing implements the directory-listing engine behind ls.
//
// The engine is split into four cooperating parts:
//
//   - Reader enumerates the direct children of a directory on an afero.Fs and
//     lstats each one. A child that vanishes between the two steps is reported
//     as skipped; any other metadata failure keeps the child with no metadata.
//   - The attribute functions (TypeMarkerOf, PermissionSummary, SizeDisplay,
//     TimeDisplay, FileName) turn one entry into display strings. None of them
//     can fail: missing information degrades to a placeholder.
//   - Renderer filters, sorts and formats a batch of entries as a long listing
//     or one name per line. It returns text and never writes.
//   - Lister drives the others for each requested operand, reports failures on
//     its error stream and folds the per-operand Severity into one result.
//
// # Output format
//
// A long listing row has the shape
//
//	-rwxrwxrwx BUILTIN          Administrators     1.50 KB 03/14/2024 09:26 report.txt
//
// that is: type marker and permissions, owner (two 16-cell columns), size
// right-justified in 9 cells, timestamp in UTC and the file name.
package listing
