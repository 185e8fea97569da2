// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/win32coreutils/coreutils/internal/issue"
	"github.com/win32coreutils/coreutils/pkg/cueutil"
	"github.com/win32coreutils/coreutils/pkg/platform"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "coreutils"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
)

//go:embed config_schema.cue
var configSchema string

// ConfigDir returns the configuration directory using platform-specific
// conventions: Windows uses %APPDATA%, macOS uses ~/Library/Application Support,
// and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case platform.Windows:
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case platform.Darwin:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// FilePath returns the path of the config file inside ConfigDir.
func FilePath() (string, error) {
	cfgDir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt), nil
}

// loadWithOptions performs option-driven config loading. It returns the
// loaded config and the path it came from ("" when only defaults apply).
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("ui.color_scheme", defaults.UI.ColorScheme)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)
	v.SetDefault("ls.one_per_line", defaults.Ls.OnePerLine)
	v.SetDefault("ls.all", defaults.Ls.All)
	v.SetDefault("ls.almost_all", defaults.Ls.AlmostAll)
	v.SetDefault("ls.no_group", defaults.Ls.NoGroup)
	v.SetDefault("ls.full_time", defaults.Ls.FullTime)
	v.SetDefault("ls.recursive", defaults.Ls.Recursive)
	v.SetDefault("cat.number", defaults.Cat.Number)
	v.SetDefault("cat.show_ends", defaults.Cat.ShowEnds)
	v.SetDefault("cat.squeeze_blank", defaults.Cat.SqueezeBlank)

	resolvedPath := ""

	// An explicit --config file is used exclusively.
	if opts.ConfigFilePath != "" {
		if !fileExists(opts.ConfigFilePath) {
			return nil, "", &issue.ActionableError{
				Operation: "load configuration",
				Resource:  opts.ConfigFilePath,
				Suggestions: []string{
					"Verify the file path is correct",
					"Check that the file exists and is readable",
					"Use 'coreutils config show' to see the default configuration",
				},
				Cause: fmt.Errorf("config file not found: %w", fs.ErrNotExist),
			}
		}
		if err := loadCUEIntoViper(v, opts.ConfigFilePath); err != nil {
			return nil, "", loadError(opts.ConfigFilePath, err)
		}
		resolvedPath = opts.ConfigFilePath
	} else {
		cfgDir, err := configDirWithOverride(opts.ConfigDirPath)
		if err != nil {
			return nil, "", err
		}

		candidates := []string{
			filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt),
			ConfigFileName + "." + ConfigFileExt,
		}
		for _, path := range candidates {
			if !fileExists(path) {
				continue
			}
			if err := loadCUEIntoViper(v, path); err != nil {
				return nil, "", loadError(path, err)
			}
			resolvedPath = path
			break
		}
		// No config file is not an error; defaults apply.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	if valid, errs := cfg.IsValid(); !valid {
		return nil, "", &issue.ActionableError{
			Operation:   "validate configuration",
			Resource:    resolvedPath,
			Suggestions: errorStrings(errs),
			Cause:       errs[0],
		}
	}

	return &cfg, resolvedPath, nil
}

func loadError(path string, err error) error {
	return &issue.ActionableError{
		Operation: "load configuration",
		Resource:  path,
		Suggestions: []string{
			"Check that the file contains valid CUE syntax",
			"Verify the configuration values match the expected schema",
			"Run 'coreutils config check " + path + "' to validate the file",
		},
		Cause: err,
	}
}

func errorStrings(errs []error) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Error()
	}
	return out
}

// configDirWithOverride resolves the configuration directory, honoring
// explicit provider options before platform defaults.
func configDirWithOverride(configDirPath string) (string, error) {
	if configDirPath != "" {
		return configDirPath, nil
	}

	return ConfigDir()
}

// loadCUEIntoViper parses a CUE file, validates it against the #Config schema,
// and merges its contents into Viper.
//
// Fields are optional, so validation runs with Concrete(false) and the
// result is decoded into a map that Viper merges over its defaults.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, path); err != nil {
		return err
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(configSchema)
	if schemaValue.Err() != nil {
		return fmt.Errorf("internal error: failed to compile config schema: %w", schemaValue.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(path))
	if userValue.Err() != nil {
		return cueutil.FormatError(userValue.Err(), path)
	}

	schema := schemaValue.LookupPath(cue.ParsePath("#Config"))
	unified := schema.Unify(userValue)
	if err := unified.Validate(cue.Concrete(false)); err != nil {
		return cueutil.FormatError(err, path)
	}

	var configMap map[string]any
	if err := unified.Decode(&configMap); err != nil {
		return cueutil.FormatError(err, path)
	}

	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}

	return nil
}

// Check parses the CUE document at path against the schema without
// touching any defaults. Every field must be well typed.
func Check(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	res, err := cueutil.ParseAndDecodeString[Config](configSchema, data, "#Config", cueutil.WithFilename(path))
	if err != nil {
		return nil, err
	}
	if valid, errs := res.Value.IsValid(); !valid {
		return nil, errs[0]
	}
	return res.Value, nil
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// EnsureConfigDir creates the config directory if it doesn't exist
func EnsureConfigDir() error {
	cfgDir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(cfgDir, 0o755)
}

// CreateDefaultConfig creates a default config file if it doesn't exist.
// It reports whether a new file was written.
func CreateDefaultConfig() (bool, error) {
	if err := EnsureConfigDir(); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}

	cfgPath, err := FilePath()
	if err != nil {
		return false, err
	}

	if _, err := os.Stat(cfgPath); err == nil {
		return false, nil
	}

	if err := os.WriteFile(cfgPath, []byte(GenerateCUE(DefaultConfig())), 0o644); err != nil {
		return false, fmt.Errorf("failed to write config file: %w", err)
	}

	return true, nil
}

// GenerateCUE generates a CUE representation of the configuration
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// coreutils configuration file\n")
	sb.WriteString("// Flags given on the command line always override these values.\n\n")

	if cfg.LogLevel != "" {
		fmt.Fprintf(&sb, "log_level: %q\n\n", cfg.LogLevel)
	}

	sb.WriteString("ui: {\n")
	fmt.Fprintf(&sb, "\tcolor_scheme: %q\n", cfg.UI.ColorScheme)
	fmt.Fprintf(&sb, "\tverbose: %v\n", cfg.UI.Verbose)
	sb.WriteString("}\n")

	sb.WriteString("\nls: {\n")
	fmt.Fprintf(&sb, "\tone_per_line: %v\n", cfg.Ls.OnePerLine)
	fmt.Fprintf(&sb, "\tall: %v\n", cfg.Ls.All)
	fmt.Fprintf(&sb, "\talmost_all: %v\n", cfg.Ls.AlmostAll)
	fmt.Fprintf(&sb, "\tno_group: %v\n", cfg.Ls.NoGroup)
	fmt.Fprintf(&sb, "\tfull_time: %v\n", cfg.Ls.FullTime)
	fmt.Fprintf(&sb, "\trecursive: %v\n", cfg.Ls.Recursive)
	sb.WriteString("}\n")

	sb.WriteString("\ncat: {\n")
	fmt.Fprintf(&sb, "\tnumber: %v\n", cfg.Cat.Number)
	fmt.Fprintf(&sb, "\tshow_ends: %v\n", cfg.Cat.ShowEnds)
	fmt.Fprintf(&sb, "\tsqueeze_blank: %v\n", cfg.Cat.SqueezeBlank)
	sb.WriteString("}\n")

	return sb.String()
}
