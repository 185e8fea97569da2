// SPDX-License-Identifier: MPL-2.0

//go:build unix

package owner

import (
	"os"
	"os/user"
	"strconv"
	"sync"
	"syscall"
)

// SystemResolver resolves owners from the uid and gid recorded in the inode.
// Name lookups are memoized for the lifetime of the resolver.
type SystemResolver struct {
	mu     sync.Mutex
	users  map[uint32]string
	groups map[uint32]string
}

// NewResolver returns the resolver for the running platform.
func NewResolver() *SystemResolver {
	return &SystemResolver{
		users:  make(map[uint32]string),
		groups: make(map[uint32]string),
	}
}

// Resolve reports the owning user as the account and the owning group as the
// domain. Symbolic links are not followed.
func (r *SystemResolver) Resolve(path string) Owner {
	info, err := os.Lstat(path)
	if err != nil {
		return Unknown
	}
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return Unknown
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return Owner{
		Domain:  r.groupName(st.Gid),
		Account: r.userName(st.Uid),
	}
}

func (r *SystemResolver) userName(uid uint32) string {
	if name, ok := r.users[uid]; ok {
		return name
	}
	id := strconv.FormatUint(uint64(uid), 10)
	name := id
	if u, err := user.LookupId(id); err == nil && u.Username != "" {
		name = u.Username
	}
	r.users[uid] = name
	return name
}

func (r *SystemResolver) groupName(gid uint32) string {
	if name, ok := r.groups[gid]; ok {
		return name
	}
	id := strconv.FormatUint(uint64(gid), 10)
	name := id
	if g, err := user.LookupGroupId(id); err == nil && g.Name != "" {
		name = g.Name
	}
	r.groups[gid] = name
	return name
}
