// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"github.com/win32coreutils/coreutils/pkg/types"
)

// ProductName appears in every --version line.
const ProductName = "Win32CoreUtils"

// Version is the release reported by --version (set via -ldflags).
var Version = "dev"

// VersionLine formats the --version output of the named utility.
func VersionLine(name string) string {
	return fmt.Sprintf("%s (%s) v%s\n", name, ProductName, Version)
}

// newFlagSet returns a silent flag set with --help and --version registered.
func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false
	fs.Bool("help", false, "display this help and exit")
	fs.Bool("version", false, "output version information and exit")
	return fs
}

// parseFlags parses args[1:] into fs. done reports that the run is already
// over: help or version text was printed, or a usage error was reported.
func parseFlags(hc *HandlerContext, fs *pflag.FlagSet, args []string, synopsis string) (done bool, err error) {
	name := fs.Name()
	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			writeUsage(hc.Stdout, fs, synopsis)
			return true, nil
		}
		fmt.Fprintf(hc.Stderr, "%s: %v\nTry '%s --help' for more information.\n", name, err, name)
		return true, &StatusError{Code: types.ExitFatal, Err: wrapError(name, err)}
	}

	if help, _ := fs.GetBool("help"); help {
		writeUsage(hc.Stdout, fs, synopsis)
		return true, nil
	}
	if version, _ := fs.GetBool("version"); version {
		fmt.Fprint(hc.Stdout, VersionLine(name))
		return true, nil
	}
	return false, nil
}

func writeUsage(w io.Writer, fs *pflag.FlagSet, synopsis string) {
	var sb strings.Builder
	sb.WriteString(strings.TrimSpace(synopsis))
	sb.WriteString("\n\n")
	sb.WriteString(fs.FlagUsages())
	_, _ = io.WriteString(w, sb.String()) // Help output is best effort
}

// flagInfos describes every flag of fs except --help and --version.
func flagInfos(fs *pflag.FlagSet) []FlagInfo {
	var infos []FlagInfo
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Name == "help" || f.Name == "version" {
			return
		}
		infos = append(infos, FlagInfo{
			Name:        f.Name,
			ShortName:   f.Shorthand,
			Description: f.Usage,
			TakesValue:  f.Value.Type() != "bool",
		})
	})
	return infos
}
