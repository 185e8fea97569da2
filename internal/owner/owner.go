// SPDX-License-Identifier: MPL-2.0

package owner

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// ColumnWidth is the display width of each owner column in a long listing.
const ColumnWidth = 16

const unknownName = "unknown"

// Unknown is returned whenever the owner of an object cannot be determined.
var Unknown = Owner{Domain: unknownName, Account: unknownName}

type (
	// Owner identifies the principal that owns a filesystem object.
	Owner struct {
		// Domain is the authority that issued the account (a Windows domain or
		// machine name, or the owning group on Unix).
		Domain string
		// Account is the account name within Domain.
		Account string
	}

	// Resolver looks up the owner of the object at a path.
	// Implementations must never fail: anything that goes wrong is reported
	// as Unknown.
	Resolver interface {
		Resolve(path string) Owner
	}

	// ResolverFunc adapts a plain function to the Resolver interface.
	ResolverFunc func(path string) Owner
)

// Resolve calls f(path).
func (f ResolverFunc) Resolve(path string) Owner { return f(path) }

// IsUnknown reports whether o is the Unknown sentinel.
func (o Owner) IsUnknown() bool { return o == Unknown }

// String renders both columns, each padded or truncated to ColumnWidth.
func (o Owner) String() string {
	return Column(o.Domain) + " " + Column(o.Account)
}

// Display renders the owner for a long listing. With noDomain set only the
// account column is shown.
func (o Owner) Display(noDomain bool) string {
	if noDomain {
		return Column(o.Account)
	}
	return o.String()
}

// Column pads or truncates s to exactly ColumnWidth display cells. An empty
// name is shown as "unknown".
func Column(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		s = unknownName
	}
	return runewidth.FillRight(runewidth.Truncate(s, ColumnWidth, ""), ColumnWidth)
}

// Unavailable is a Resolver that always reports Unknown.
var Unavailable Resolver = ResolverFunc(func(string) Owner { return Unknown })
