// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/win32coreutils/coreutils/pkg/types"
)

const yesSynopsis = `
Usage: yes [STRING]...
  or:  yes OPTION
Repeatedly output a line with all specified STRING(s), or 'y'.

      --help       display this help and exit
      --version    output version information and exit
`

// yesBufferSize is the target size of each write.
const yesBufferSize = 8 * 1024

// yesCommand implements the yes utility.
type yesCommand struct {
	name string
}

func init() {
	RegisterDefault(newYesCommand())
}

// newYesCommand creates a new yes command.
func newYesCommand() *yesCommand {
	return &yesCommand{name: "yes"}
}

// Name returns the command name.
func (c *yesCommand) Name() string {
	return c.name
}

// SupportedFlags returns the flags supported by this command.
func (c *yesCommand) SupportedFlags() []FlagInfo {
	return nil
}

// Run writes the line until ctx is done or standard output fails. Only a
// lone --help or --version is treated as an option; every other argument,
// dashes included, is part of the line.
func (c *yesCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	operands := args[1:]
	if len(operands) == 1 {
		switch operands[0] {
		case "--help":
			_, err := io.WriteString(hc.Stdout, strings.TrimPrefix(yesSynopsis, "\n"))
			return err
		case "--version":
			_, err := io.WriteString(hc.Stdout, VersionLine(c.name))
			return err
		}
	}

	line := "y"
	if len(operands) > 0 {
		line = strings.Join(operands, " ")
	}
	buf := yesBuffer(line + "\n")

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		if _, err := hc.Stdout.Write(buf); err != nil {
			fmt.Fprintf(hc.Stderr, "%s: standard output: %v\n", c.name, err)
			return exitStatus(types.ExitNonFatal, wrapError(c.name, err))
		}
	}
}

// yesBuffer repeats line to fill roughly yesBufferSize bytes. Lines longer
// than that are written one at a time.
func yesBuffer(line string) []byte {
	n := yesBufferSize / len(line)
	if n < 1 {
		n = 1
	}
	return bytes.Repeat([]byte(line), n)
}
