// SPDX-License-Identifier: MPL-2.0

//go:build windows

package owner

import (
	"log/slog"

	"golang.org/x/sys/windows"
)

// SystemResolver resolves owners through the Win32 security APIs.
type SystemResolver struct{}

// NewResolver returns the resolver for the running platform.
func NewResolver() *SystemResolver {
	return &SystemResolver{}
}

// Resolve opens path for reading with backup semantics so that directories
// can be opened too, reads the owner SID from the security descriptor and
// maps it to a domain/account pair.
func (r *SystemResolver) Resolve(path string) Owner {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return Unknown
	}

	h, err := windows.CreateFile(
		p,
		windows.GENERIC_READ,
		windows.FILE_SHARE_READ,
		nil,
		windows.OPEN_EXISTING,
		windows.FILE_ATTRIBUTE_NORMAL|windows.FILE_FLAG_BACKUP_SEMANTICS,
		0,
	)
	if err != nil {
		slog.Debug("owner: open failed", "path", path, "error", err)
		return Unknown
	}
	defer func() { _ = windows.CloseHandle(h) }() // Read-only handle; close error is not actionable

	// GetSecurityInfo copies the descriptor into Go memory and releases the
	// LocalAlloc'd buffer itself.
	sd, err := windows.GetSecurityInfo(h, windows.SE_FILE_OBJECT, windows.OWNER_SECURITY_INFORMATION)
	if err != nil {
		slog.Debug("owner: security info unavailable", "path", path, "error", err)
		return Unknown
	}

	sid, _, err := sd.Owner()
	if err != nil || sid == nil {
		return Unknown
	}

	account, domain, _, err := sid.LookupAccount("")
	if err != nil {
		slog.Debug("owner: account lookup failed", "path", path, "sid", sid.String(), "error", err)
		return Unknown
	}

	return Owner{Domain: domain, Account: account}
}
