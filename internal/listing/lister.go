// SPDX-License-Identifier: MPL-2.0

package listing

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/win32coreutils/coreutils/internal/owner"
	"github.com/win32coreutils/coreutils/pkg/types"
)

const (
	currentDir = "."
	parentDir  = ".."
)

type (
	// Lister lists operands one after another, writing listings to Stdout and
	// diagnostics to Stderr.
	Lister struct {
		Options  Options
		Reader   *Reader
		Renderer *Renderer
		Stdout   io.Writer
		Stderr   io.Writer
		// Prefix is written in front of every diagnostic line, e.g. "ls: ".
		Prefix string
	}

	// ListingResult is the outcome of listing a single directory.
	ListingResult struct {
		// Text is the rendered listing, without any header.
		Text string
		// Severity is NonFatal when the directory could not be read.
		Severity Severity
		// Subdirectories holds, in display order, the real subdirectories a
		// recursive listing descends into. It is empty unless Recursive is set.
		Subdirectories []string
	}
)

// NewLister wires a Lister over fsys. Nil writers discard their output.
func NewLister(fsys afero.Fs, opts Options, owners owner.Resolver, stdout, stderr io.Writer) *Lister {
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}
	return &Lister{
		Options:  opts,
		Reader:   NewReader(fsys),
		Renderer: NewRenderer(opts, owners),
		Stdout:   stdout,
		Stderr:   stderr,
	}
}

// Run lists every operand (the current directory when there are none) and
// returns the worst Severity seen. A failing operand is reported and the run
// continues with the next one.
func (l *Lister) Run(ctx context.Context, operands []types.Operand) Severity {
	if len(operands) == 0 {
		operands = []types.Operand{currentDir}
	}
	slog.Debug("listing operands", "count", len(operands), "sort", l.Options.Sort.String(), "recursive", l.Options.Recursive)

	if l.Options.DirectoryAsEntry {
		return l.listOperandsAsEntries(ctx, operands)
	}

	headers := len(operands) > 1 || l.Options.Recursive
	wrote := false
	sev := Normal
	for _, op := range operands {
		if err := ctx.Err(); err != nil {
			l.report(err)
			return sev.Max(NonFatal)
		}
		if err := op.Validate(); err != nil {
			l.report(&DirectoryUnreadableError{Op: "access", Path: op.String(), Err: err})
			sev = sev.Max(NonFatal)
			continue
		}
		sev = sev.Max(l.walk(ctx, op.String(), headers, &wrote))
	}
	return sev
}

// ListPath lists the children of a single directory.
func (l *Lister) ListPath(ctx context.Context, path string) ListingResult {
	if err := ctx.Err(); err != nil {
		l.report(err)
		return ListingResult{Severity: NonFatal}
	}

	entries, skipped, err := l.Reader.Read(path)
	if err != nil {
		l.report(err)
		return ListingResult{Severity: NonFatal}
	}
	for _, s := range skipped {
		l.report(s)
	}

	if l.Options.Visibility == VisibilityAll {
		entries = append(entries, l.impliedEntry(path, currentDir), l.impliedEntry(filepath.Join(path, parentDir), parentDir))
	}

	arranged := l.Renderer.Arrange(entries)
	result := ListingResult{Text: l.Renderer.Format(arranged), Severity: Normal}

	if l.Options.Recursive {
		for _, e := range arranged {
			if e.Name == currentDir || e.Name == parentDir {
				continue
			}
			if TypeMarkerOf(e.Info) == TypeDirectory {
				result.Subdirectories = append(result.Subdirectories, e.Path)
			}
		}
	}

	return result
}

// walk writes the listing of path, preceded by a header when requested, and
// then descends into its subdirectories.
func (l *Lister) walk(ctx context.Context, path string, header bool, wrote *bool) Severity {
	res := l.ListPath(ctx, path)
	sev := res.Severity

	if sev == Normal {
		var sb strings.Builder
		if header {
			if *wrote {
				sb.WriteString("\n")
			}
			sb.WriteString(path)
			sb.WriteString(":\n")
		}
		sb.WriteString(res.Text)
		if err := l.write(sb.String()); err != nil {
			return sev.Max(NonFatal)
		}
		*wrote = true
	}

	for _, sub := range res.Subdirectories {
		if err := ctx.Err(); err != nil {
			l.report(err)
			return sev.Max(NonFatal)
		}
		sev = sev.Max(l.walk(ctx, sub, header, wrote))
	}
	return sev
}

// listOperandsAsEntries renders the operands themselves as one listing.
// Operands are always shown, whatever their names.
func (l *Lister) listOperandsAsEntries(ctx context.Context, operands []types.Operand) Severity {
	sev := Normal
	entries := make([]Entry, 0, len(operands))
	for _, op := range operands {
		if err := ctx.Err(); err != nil {
			l.report(err)
			return sev.Max(NonFatal)
		}
		if err := op.Validate(); err != nil {
			l.report(&DirectoryUnreadableError{Op: "access", Path: op.String(), Err: err})
			sev = sev.Max(NonFatal)
			continue
		}
		e, err := l.Reader.Entry(op.String(), op.String())
		if err != nil {
			l.report(&DirectoryUnreadableError{Op: "access", Path: op.String(), Err: err})
			sev = sev.Max(NonFatal)
			continue
		}
		entries = append(entries, e)
	}

	r := *l.Renderer
	r.Options.Visibility = VisibilityAlmostAll
	if err := l.write(r.Render(entries)); err != nil {
		return sev.Max(NonFatal)
	}
	return sev
}

// impliedEntry builds the "." or ".." entry. Missing metadata is tolerated;
// the row then shows placeholders.
func (l *Lister) impliedEntry(path, name string) Entry {
	e, err := l.Reader.Entry(path, name)
	if err != nil {
		slog.Debug("listing: implied entry unavailable", "path", path, "error", err)
		return Entry{Path: path, Name: name}
	}
	return e
}

func (l *Lister) write(s string) error {
	if s == "" {
		return nil
	}
	if _, err := io.WriteString(l.Stdout, s); err != nil {
		slog.Debug("listing: write failed", "error", err)
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func (l *Lister) report(err error) {
	slog.Debug("listing: diagnostic", "error", err)
	_, _ = fmt.Fprintf(l.Stderr, "%s%s\n", l.Prefix, err) // Diagnostics are best effort
}
