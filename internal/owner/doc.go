// SPDX-License-Identifier: MPL-2.0

// Package owner maps a filesystem object to the security principal that owns
// it.
//
// On Windows the object is opened with backup semantics, its security
// descriptor is queried for the owner SID, and the SID is looked up to a
// domain and account name. On Unix hosts the owning uid and gid are resolved
// through the user database, with the group standing in for the domain. Every
// other platform, and every failure along the way, yields Unknown.
package owner
