// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"context"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/win32coreutils/coreutils/internal/config"
	"github.com/win32coreutils/coreutils/internal/listing"
	"github.com/win32coreutils/coreutils/internal/owner"
	"github.com/win32coreutils/coreutils/pkg/types"
)

const lsSynopsis = `
Usage: ls [OPTION]... [FILE]...
List information about the FILEs (the current directory by default).
Entries are sorted alphabetically unless a sort option is given.
`

type (
	// lsCommand implements the ls utility.
	lsCommand struct {
		name   string
		owners owner.Resolver
	}

	// lsFlags holds the raw flag values of one ls invocation.
	lsFlags struct {
		long, onePerLine     bool
		all, almostAll       bool
		directory, recursive bool
		reverse              bool
		sortSize, sortTime   bool
		accessTime, ctime    bool
		fullTime, noGroup    bool
	}
)

func init() {
	RegisterDefault(newLsCommand())
}

// newLsCommand creates a new ls command.
func newLsCommand() *lsCommand {
	return &lsCommand{name: "ls", owners: owner.NewResolver()}
}

// Name returns the command name.
func (c *lsCommand) Name() string {
	return c.name
}

// SupportedFlags returns the flags supported by this command.
func (c *lsCommand) SupportedFlags() []FlagInfo {
	fs, _ := c.flagSet(config.DefaultConfig())
	return flagInfos(fs)
}

func (c *lsCommand) flagSet(cfg *config.Config) (*pflag.FlagSet, *lsFlags) {
	f := &lsFlags{}
	fs := newFlagSet(c.name)
	fs.BoolVarP(&f.all, "all", "a", cfg.Ls.All, "do not ignore entries starting with . and list . and ..")
	fs.BoolVarP(&f.almostAll, "almost-all", "A", cfg.Ls.AlmostAll, "do not list implied . and ..")
	fs.BoolVarP(&f.ctime, "creation-time", "c", false, "show creation time; with -t, sort by it")
	fs.BoolVarP(&f.directory, "directory", "d", false, "list directories themselves, not their contents")
	fs.BoolVar(&f.fullTime, "full-time", cfg.Ls.FullTime, "show full timestamps with nanoseconds and zone")
	fs.BoolVarP(&f.noGroup, "no-group", "G", cfg.Ls.NoGroup, "do not show the owner's domain")
	fs.BoolVarP(&f.long, "long", "l", false, "use the long listing format (default)")
	fs.BoolVarP(&f.reverse, "reverse", "r", false, "reverse order while sorting")
	fs.BoolVarP(&f.recursive, "recursive", "R", cfg.Ls.Recursive, "list subdirectories recursively")
	fs.BoolVarP(&f.sortSize, "sort-size", "S", false, "sort by file size, largest first")
	fs.BoolVarP(&f.sortTime, "sort-time", "t", false, "sort by time, newest first")
	fs.BoolVarP(&f.accessTime, "access-time", "u", false, "show access time; with -t, sort by it")
	fs.BoolVarP(&f.onePerLine, "single-column", "1", cfg.Ls.OnePerLine, "list one file name per line")
	return fs, f
}

// Run executes the ls command.
func (c *lsCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	fs, f := c.flagSet(hc.Config)
	if done, err := parseFlags(hc, fs, args, lsSynopsis); done {
		return err
	}

	opts := f.options(fs)
	slog.Debug("ls: options", "mode", opts.Mode, "visibility", opts.Visibility, "sort", opts.Sort.String(), "reverse", opts.Reverse)

	lister := listing.NewLister(hc.Fs, opts, c.owners, hc.Stdout, hc.Stderr)
	lister.Prefix = c.name + ": "

	sev := lister.Run(ctx, types.Operands(fs.Args()))
	return exitStatus(sev.ExitCode(), nil)
}

// options maps flags to listing options. A flag set on the command line
// beats a conflicting default taken from the configuration.
func (f *lsFlags) options(fs *pflag.FlagSet) listing.Options {
	opts := listing.DefaultOptions()

	if f.onePerLine && !(fs.Changed("long") && !fs.Changed("single-column")) {
		opts.Mode = listing.OnePerLine
	}

	switch {
	case f.all && !(fs.Changed("almost-all") && !fs.Changed("all")):
		opts.Visibility = listing.VisibilityAll
	case f.almostAll:
		opts.Visibility = listing.VisibilityAlmostAll
	}

	// -c takes precedence over -u.
	switch {
	case f.ctime:
		opts.Time = listing.CreationTime
	case f.accessTime:
		opts.Time = listing.AccessTime
	}

	switch {
	case f.sortSize:
		opts.Sort = listing.BySize
	case f.sortTime && opts.Time == listing.CreationTime:
		opts.Sort = listing.ByCreationTime
	case f.sortTime && opts.Time == listing.AccessTime:
		opts.Sort = listing.ByAccessTime
	case f.sortTime:
		opts.Sort = listing.ByModifiedTime
	}

	opts.Reverse = f.reverse
	opts.Recursive = f.recursive
	opts.DirectoryAsEntry = f.directory
	opts.FullTime = f.fullTime
	opts.NoDomain = f.noGroup
	return opts
}
