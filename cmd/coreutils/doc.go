// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the coreutils command-line front end.
//
// The front end is a multi-call binary. A utility named by argv[0] or by the
// first argument after the global flags runs directly; the Cobra tree only
// handles help, version, configuration management and unknown names.
//
// Exit statuses follow the utilities: 0 on success, 1 when some operand
// failed, 2 for usage errors and unknown utilities.
package cmd
