// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/coreutils/config.cue (or XDG equivalent on Linux,
// ~/Library/Application Support/coreutils/config.cue on macOS, %APPDATA%\coreutils\config.cue
// on Windows), falling back to ./config.cue. The file supplies defaults for the ls and cat
// flags, the log level, and UI settings.
//
// Configuration validation is performed against a CUE schema (config_schema.cue) to ensure
// type safety and provide clear error messages for invalid configurations.
package config
