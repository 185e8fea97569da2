// SPDX-License-Identifier: MPL-2.0

package platform

import "testing"

func TestUtilityName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		argv0 string
		want  string
	}{
		{"ls", "ls"},
		{"ls.exe", "ls"},
		{"LS.EXE", "ls"},
		{`C:\Tools\coreutils\cat.exe`, "cat"},
		{"/usr/local/bin/yes", "yes"},
		{"./bin/coreutils", "coreutils"},
		{"archive.tar", "archive.tar"},
		{"", "."},
	}

	for _, tt := range tests {
		t.Run(tt.argv0, func(t *testing.T) {
			t.Parallel()
			if got := UtilityName(tt.argv0); got != tt.want {
				t.Errorf("UtilityName(%q) = %q, want %q", tt.argv0, got, tt.want)
			}
		})
	}
}
