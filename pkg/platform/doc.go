// SPDX-License-Identifier: MPL-2.0

// Package platform holds the few operating-system facts the utilities need:
// GOOS name constants and how a multi-call binary recovers its utility name
// from argv[0].
package platform
