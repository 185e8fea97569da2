// SPDX-License-Identifier: MPL-2.0

package listing

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/win32coreutils/coreutils/internal/owner"
)

// Renderer turns a batch of entries into listing text.
type Renderer struct {
	Options Options
	Owners  owner.Resolver
}

// NewRenderer creates a Renderer. A nil resolver reports every owner as
// unknown.
func NewRenderer(opts Options, owners owner.Resolver) *Renderer {
	if owners == nil {
		owners = owner.Unavailable
	}
	return &Renderer{Options: opts, Owners: owners}
}

// Render filters and sorts entries according to the options, then formats
// them. The input slice is not modified.
func (r *Renderer) Render(entries []Entry) string {
	return r.Format(r.Arrange(entries))
}

// Format renders entries in the order given.
func (r *Renderer) Format(entries []Entry) string {
	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(r.Row(Attributes(e, r.Options, r.Owners)))
	}
	return sb.String()
}

// Row formats a single entry, including the trailing newline.
func (r *Renderer) Row(a EntryAttributes) string {
	if r.Options.Mode == OnePerLine {
		return a.Name + "\n"
	}
	return fmt.Sprintf("%s%s %s %9s %s %s\n", a.Type, a.Permissions, a.Owner, a.Size, a.Time, a.Name)
}

// Arrange applies visibility and ordering and returns a new slice.
func (r *Renderer) Arrange(entries []Entry) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if r.Options.Visibility.shows(e.Name) {
			out = append(out, e)
		}
	}

	cmpFn := compareFunc(r.Options.Sort)
	if r.Options.Reverse {
		slices.SortStableFunc(out, func(a, b Entry) int { return cmpFn(b, a) })
	} else {
		slices.SortStableFunc(out, cmpFn)
	}
	return out
}

// compareFunc returns the ordering for key. Sizes and times sort in
// descending order; ties always fall back to the name.
func compareFunc(key SortKey) func(a, b Entry) int {
	byName := func(a, b Entry) int { return cmp.Compare(a.Name, b.Name) }

	switch key {
	case BySize:
		return func(a, b Entry) int {
			if c := cmp.Compare(sizeOf(b), sizeOf(a)); c != 0 {
				return c
			}
			return byName(a, b)
		}
	case ByModifiedTime, ByAccessTime, ByCreationTime:
		field := sortTimeField(key)
		return func(a, b Entry) int {
			if c := timeOf(b.Info, field).Compare(timeOf(a.Info, field)); c != 0 {
				return c
			}
			return byName(a, b)
		}
	default:
		return byName
	}
}

func sortTimeField(key SortKey) TimeField {
	switch key {
	case ByAccessTime:
		return AccessTime
	case ByCreationTime:
		return CreationTime
	default:
		return ModifiedTime
	}
}

// sizeOf counts directories as empty and sorts unreadable entries last.
func sizeOf(e Entry) int64 {
	if e.Info == nil {
		return -1
	}
	if e.Info.IsDir() {
		return 0
	}
	return e.Info.Size()
}
