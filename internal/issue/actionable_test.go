// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/win32coreutils/coreutils/pkg/cueutil"
)

const cfgPath = `C:\Users\ada\AppData\Roaming\coreutils\config.cue`

func loadFailure(cause error) *ActionableError {
	return &ActionableError{
		Operation:   "load configuration",
		Resource:    cfgPath,
		Suggestions: []string{"Check that the file contains valid CUE syntax", "See 'coreutils config --help'"},
		Cause:       cause,
	}
}

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *ActionableError
		want string
	}{
		{
			name: "missing config file",
			err:  loadFailure(fmt.Errorf("config file not found: %w", fs.ErrNotExist)),
			want: "failed to load configuration: " + cfgPath + ": config file not found: file does not exist",
		},
		{
			name: "schema violation names the file once",
			err: loadFailure(&cueutil.ValidationError{
				FilePath: cfgPath,
				CUEPath:  "ls.one_per_line",
				Message:  `conflicting values "yes" and bool`,
			}),
			want: "failed to load configuration: " + cfgPath + `: ls.one_per_line: conflicting values "yes" and bool`,
		},
		{
			name: "invalid log level without a file",
			err: &ActionableError{
				Operation: "validate configuration",
				Cause:     errors.New(`log_level: "loud" is not one of debug, info, warn, error`),
			},
			want: `failed to validate configuration: log_level: "loud" is not one of debug, info, warn, error`,
		},
		{
			name: "operation only",
			err:  &ActionableError{Operation: "load configuration", Resource: "config.cue"},
			want: "failed to load configuration: config.cue",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestActionableError_CauseChain(t *testing.T) {
	t.Parallel()

	ve := &cueutil.ValidationError{FilePath: cfgPath, CUEPath: "ui.color_scheme", Message: "5 errors in empty disjunction"}
	err := error(loadFailure(ve))

	var got *cueutil.ValidationError
	if !errors.As(err, &got) || got.CUEPath != "ui.color_scheme" {
		t.Errorf("errors.As should reach the validation error, got %v", got)
	}

	missing := loadFailure(fmt.Errorf("config file not found: %w", fs.ErrNotExist))
	if !errors.Is(missing, fs.ErrNotExist) {
		t.Error("errors.Is should reach fs.ErrNotExist")
	}

	if (&ActionableError{Operation: "load configuration"}).Unwrap() != nil {
		t.Error("Unwrap() without a cause should be nil")
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	err := loadFailure(fmt.Errorf("failed to read config file: %w", fs.ErrPermission))

	t.Run("suggestions", func(t *testing.T) {
		t.Parallel()
		want := "failed to load configuration: " + cfgPath + ": failed to read config file: permission denied\n" +
			"\n  • Check that the file contains valid CUE syntax" +
			"\n  • See 'coreutils config --help'"
		if got := err.Format(false); got != want {
			t.Errorf("Format(false) =\n%s\nwant\n%s", got, want)
		}
	})

	t.Run("verbose adds the chain", func(t *testing.T) {
		t.Parallel()
		got := err.Format(true)
		chain := got[strings.Index(got, "Error chain:"):]
		want := "Error chain:\n  1. failed to read config file: permission denied\n  2. permission denied"
		if chain != want {
			t.Errorf("chain =\n%s\nwant\n%s", chain, want)
		}
	})

	t.Run("no suggestions", func(t *testing.T) {
		t.Parallel()
		bare := &ActionableError{Operation: "validate configuration", Cause: errors.New("bad value")}
		if got, want := bare.Format(false), "failed to validate configuration: bad value"; got != want {
			t.Errorf("Format(false) = %q, want %q", got, want)
		}
	})
}
