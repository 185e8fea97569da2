// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"

	"github.com/win32coreutils/coreutils/internal/config"
)

// configureLogging routes the default slog logger through a charm logger
// writing to w. Unknown levels fall back to warn.
func configureLogging(w io.Writer, level config.LogLevel) {
	lvl, err := log.ParseLevel(string(level))
	if err != nil {
		lvl = log.WarnLevel
	}
	logger := log.NewWithOptions(w, log.Options{
		Prefix: config.AppName,
		Level:  lvl,
	})
	slog.SetDefault(slog.New(logger))
}
