// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/win32coreutils/coreutils/internal/config"
	"github.com/win32coreutils/coreutils/pkg/types"
)

const catSynopsis = `
Usage: cat [OPTION]... [FILE]...
Concatenate FILE(s) to standard output.
With no FILE, or when FILE is -, read standard input.
`

type (
	// catCommand implements the cat utility.
	catCommand struct {
		name string
	}

	// catOptions selects the transformations applied to each line.
	catOptions struct {
		numberAll      bool
		numberNonBlank bool
		squeezeBlank   bool
		showEnds       bool
		showTabs       bool
		showNonprint   bool
	}

	// catFlags holds the raw flag values of one cat invocation.
	catFlags struct {
		catOptions
		showAll, vE, vT, unbuffered bool
	}

	// catState carries line numbering and blank squeezing across files.
	catState struct {
		opts      catOptions
		line      int
		prevBlank bool
	}

	// writeError marks failures of the output stream.
	writeError struct{ err error }
)

func (e *writeError) Error() string { return "write error: " + e.err.Error() }
func (e *writeError) Unwrap() error { return e.err }

func init() {
	RegisterDefault(newCatCommand())
}

// newCatCommand creates a new cat command.
func newCatCommand() *catCommand {
	return &catCommand{name: "cat"}
}

// Name returns the command name.
func (c *catCommand) Name() string {
	return c.name
}

// SupportedFlags returns the flags supported by this command.
func (c *catCommand) SupportedFlags() []FlagInfo {
	fs, _ := c.flagSet(config.DefaultConfig())
	return flagInfos(fs)
}

func (c *catCommand) flagSet(cfg *config.Config) (*pflag.FlagSet, *catFlags) {
	f := &catFlags{}
	fs := newFlagSet(c.name)
	fs.BoolVarP(&f.showAll, "show-all", "A", false, "equivalent to -vET")
	fs.BoolVarP(&f.numberNonBlank, "number-nonblank", "b", false, "number nonempty output lines, overrides -n")
	fs.BoolVarP(&f.vE, "e", "e", false, "equivalent to -vE")
	fs.BoolVarP(&f.showEnds, "show-ends", "E", cfg.Cat.ShowEnds, "display $ at end of each line")
	fs.BoolVarP(&f.numberAll, "number", "n", cfg.Cat.Number, "number all output lines")
	fs.BoolVarP(&f.squeezeBlank, "squeeze-blank", "s", cfg.Cat.SqueezeBlank, "suppress repeated empty output lines")
	fs.BoolVarP(&f.vT, "t", "t", false, "equivalent to -vT")
	fs.BoolVarP(&f.showTabs, "show-tabs", "T", false, "display TAB characters as ^I")
	fs.BoolVarP(&f.unbuffered, "u", "u", false, "(ignored)")
	fs.BoolVarP(&f.showNonprint, "show-nonprinting", "v", false, "use ^ and M- notation, except for LFD and TAB")
	return fs, f
}

// resolve folds the combined flags into the individual options.
func (f *catFlags) resolve() catOptions {
	opts := f.catOptions
	if f.showAll {
		opts.showNonprint, opts.showEnds, opts.showTabs = true, true, true
	}
	if f.vE {
		opts.showNonprint, opts.showEnds = true, true
	}
	if f.vT {
		opts.showNonprint, opts.showTabs = true, true
	}
	if opts.numberNonBlank {
		opts.numberAll = false
	}
	return opts
}

// plain reports whether input can be copied through untouched.
func (o catOptions) plain() bool {
	return o == catOptions{}
}

// Run executes the cat command.
func (c *catCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	fs, f := c.flagSet(hc.Config)
	if done, err := parseFlags(hc, fs, args, catSynopsis); done {
		return err
	}

	state := &catState{opts: f.resolve()}
	out := bufio.NewWriter(hc.Stdout)
	code := types.ExitNormal

	err := ProcessFilesOrStdin(hc.Fs, fs.Args(), hc.Stdin,
		func(r io.Reader, filename string, _, _ int) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			slog.Debug("cat: reading", "file", filename)
			return state.copy(ctx, out, r)
		},
		func(file string, err error) {
			// Keep output ordered with the diagnostic.
			_ = out.Flush() //nolint:errcheck // a failing stdout is reported by the final flush
			fmt.Fprintf(hc.Stderr, "%s: %s: %s\n", c.name, file, reason(err))
			code = code.Max(types.ExitNonFatal)
		})

	if flushErr := out.Flush(); flushErr != nil && err == nil {
		err = &writeError{err: flushErr}
	}
	if err != nil {
		fmt.Fprintf(hc.Stderr, "%s: %v\n", c.name, err)
		code = code.Max(types.ExitNonFatal)
		return exitStatus(code, wrapError(c.name, err))
	}
	return exitStatus(code, nil)
}

// copy streams r to w applying the configured transformations.
func (s *catState) copy(ctx context.Context, w *bufio.Writer, r io.Reader) error {
	if s.opts.plain() {
		if _, err := io.Copy(outputWriter{w}, r); err != nil {
			var we *writeError
			if errors.As(err, &we) {
				return we
			}
			return fmt.Errorf("read error: %w", err)
		}
		return nil
	}

	br := bufio.NewReader(r)
	for {
		line, readErr := br.ReadBytes('\n')
		if len(line) > 0 {
			if err := s.writeLine(w, line); err != nil {
				return &writeError{err: err}
			}
		}
		if readErr == io.EOF {
			return nil
		}
		if readErr != nil {
			return fmt.Errorf("read error: %w", readErr)
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

// writeLine writes one input line, including its terminator if present.
func (s *catState) writeLine(w *bufio.Writer, line []byte) error {
	body, ending := splitEnding(line)
	blank := len(body) == 0 && len(ending) > 0

	if s.opts.squeezeBlank {
		if blank && s.prevBlank {
			return nil
		}
		s.prevBlank = blank
	}

	if s.opts.numberAll || (s.opts.numberNonBlank && !blank) {
		s.line++
		if _, err := fmt.Fprintf(w, "%6d\t", s.line); err != nil {
			return err
		}
	}

	if s.opts.showNonprint || s.opts.showTabs {
		body = visible(body, s.opts.showNonprint, s.opts.showTabs)
	}
	if _, err := w.Write(body); err != nil {
		return err
	}

	if s.opts.showEnds && len(ending) > 0 {
		if err := w.WriteByte('$'); err != nil {
			return err
		}
	}
	_, err := w.Write(ending)
	return err
}

// splitEnding separates a line from its "\n" or "\r\n" terminator.
func splitEnding(line []byte) (body, ending []byte) {
	switch {
	case bytes.HasSuffix(line, []byte("\r\n")):
		return line[:len(line)-2], line[len(line)-2:]
	case bytes.HasSuffix(line, []byte("\n")):
		return line[:len(line)-1], line[len(line)-1:]
	default:
		return line, nil
	}
}

// visible rewrites TAB as ^I (tabs), control bytes as ^X, DEL as ^? and bytes
// above 127 as M- followed by the notation of the low seven bits (nonprint).
func visible(body []byte, nonprint, tabs bool) []byte {
	out := make([]byte, 0, len(body))
	for _, b := range body {
		switch {
		case b == '\t':
			if tabs {
				out = append(out, '^', 'I')
			} else {
				out = append(out, b)
			}
		case !nonprint:
			out = append(out, b)
		default:
			out = appendNonprinting(out, b)
		}
	}
	return out
}

func appendNonprinting(out []byte, b byte) []byte {
	if b >= 128 {
		out = append(out, 'M', '-')
		b -= 128
	}
	switch {
	case b < 32:
		return append(out, '^', b+64)
	case b == 127:
		return append(out, '^', '?')
	default:
		return append(out, b)
	}
}

// outputWriter tags write failures so they can be told apart from read
// failures after io.Copy.
type outputWriter struct{ w io.Writer }

func (o outputWriter) Write(p []byte) (int, error) {
	n, err := o.w.Write(p)
	if err != nil {
		return n, &writeError{err: err}
	}
	return n, nil
}
