// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"context"
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/win32coreutils/coreutils/internal/config"
)

type (
	// HandlerContext provides the execution environment of a utility.
	HandlerContext struct {
		// Stdin is the input stream for the command.
		Stdin io.Reader
		// Stdout is the output stream for the command.
		Stdout io.Writer
		// Stderr is the error output stream for the command.
		Stderr io.Writer
		// Fs is the filesystem operands are resolved against.
		Fs afero.Fs
		// Config supplies flag defaults. Command-line flags always win.
		Config *config.Config
	}

	// handlerContextKey is the context key for storing HandlerContext.
	handlerContextKey struct{}
)

// NewOSHandlerContext returns a HandlerContext bound to the process's standard
// streams and the real filesystem.
func NewOSHandlerContext(cfg *config.Config) *HandlerContext {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &HandlerContext{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Fs:     afero.NewOsFs(),
		Config: cfg,
	}
}

// WithHandlerContext stores a HandlerContext in the context.
func WithHandlerContext(ctx context.Context, hc *HandlerContext) context.Context {
	return context.WithValue(ctx, handlerContextKey{}, hc)
}

// GetHandlerContext retrieves the HandlerContext from the context.
// Missing fields are filled from NewOSHandlerContext; a context without a
// HandlerContext gets the OS one.
func GetHandlerContext(ctx context.Context) *HandlerContext {
	hc, ok := ctx.Value(handlerContextKey{}).(*HandlerContext)
	if !ok || hc == nil {
		return NewOSHandlerContext(nil)
	}

	filled := *hc
	def := NewOSHandlerContext(hc.Config)
	if filled.Stdin == nil {
		filled.Stdin = def.Stdin
	}
	if filled.Stdout == nil {
		filled.Stdout = def.Stdout
	}
	if filled.Stderr == nil {
		filled.Stderr = def.Stderr
	}
	if filled.Fs == nil {
		filled.Fs = def.Fs
	}
	filled.Config = def.Config
	return &filled
}
