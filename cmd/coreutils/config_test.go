// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/win32coreutils/coreutils/internal/testutil"
	"github.com/win32coreutils/coreutils/pkg/types"
)

func TestConfigCommand_Path(t *testing.T) {
	dir := isolateConfig(t)

	res := runApp(t, nil, "", "coreutils", "config", "path")
	if res.code != types.ExitNormal {
		t.Fatalf("exit code = %d, stderr %q", res.code, res.stderr)
	}
	if !strings.Contains(res.stdout, "Config directory: "+dir) {
		t.Errorf("stdout = %q", res.stdout)
	}
	if !strings.Contains(res.stdout, filepath.Join(dir, "config.cue")) {
		t.Errorf("stdout = %q", res.stdout)
	}
}

func TestConfigCommand_InitThenCheck(t *testing.T) {
	dir := isolateConfig(t)

	res := runApp(t, nil, "", "coreutils", "config", "init")
	if res.code != types.ExitNormal {
		t.Fatalf("init: exit code = %d, stderr %q", res.code, res.stderr)
	}
	if !strings.Contains(res.stdout, "Created default configuration") {
		t.Errorf("init: stdout = %q", res.stdout)
	}

	res = runApp(t, nil, "", "coreutils", "config", "init")
	if !strings.Contains(res.stdout, "already exists") {
		t.Errorf("second init: stdout = %q", res.stdout)
	}

	res = runApp(t, nil, "", "coreutils", "config", "check")
	if res.code != types.ExitNormal {
		t.Fatalf("check: exit code = %d, stderr %q", res.code, res.stderr)
	}
	if !strings.Contains(res.stdout, filepath.Join(dir, "config.cue")+" is valid") {
		t.Errorf("check: stdout = %q", res.stdout)
	}
}

func TestConfigCommand_CheckRejectsInvalidFile(t *testing.T) {
	isolateConfig(t)
	path := filepath.Join(t.TempDir(), "bad.cue")
	testutil.MustWriteFile(t, path, []byte("ls: { one_per_line: \"yes\" }\n"))

	res := runApp(t, nil, "", "coreutils", "config", "check", path)
	if res.code != types.ExitNonFatal {
		t.Errorf("exit code = %d, want %d", res.code, types.ExitNonFatal)
	}
	if !strings.Contains(res.stderr, "one_per_line") {
		t.Errorf("stderr does not name the offending field: %q", res.stderr)
	}
}

func TestConfigCommand_Dump(t *testing.T) {
	dir := isolateConfig(t)
	testutil.MustWriteFile(t, filepath.Join(dir, "config.cue"), []byte("ls: { recursive: true }\n"))

	res := runApp(t, nil, "", "coreutils", "config", "dump")
	if res.code != types.ExitNormal {
		t.Fatalf("exit code = %d, stderr %q", res.code, res.stderr)
	}
	for _, want := range []string{"ls: {", "\trecursive: true", "cat: {"} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("dump is missing %q:\n%s", want, res.stdout)
		}
	}
}

func TestConfigCommand_Show(t *testing.T) {
	isolateConfig(t)

	res := runApp(t, nil, "", "coreutils", "config", "show")
	if res.code != types.ExitNormal {
		t.Fatalf("exit code = %d, stderr %q", res.code, res.stderr)
	}
	for _, want := range []string{"Current Configuration", "(using defaults)", "effective warn", "color_scheme: auto", "squeeze_blank: false"} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("show is missing %q:\n%s", want, res.stdout)
		}
	}
}

func TestConfigCommand_ShowReportsBrokenFile(t *testing.T) {
	dir := isolateConfig(t)
	testutil.MustWriteFile(t, filepath.Join(dir, "config.cue"), []byte("ui: { color_scheme: \"neon\" }\n"))

	res := runApp(t, nil, "", "coreutils", "config", "show")
	if res.code == types.ExitNormal {
		t.Errorf("exit code = 0 for a broken config")
	}
	if !strings.Contains(res.stderr, "Failed to load configuration") {
		t.Errorf("stderr = %q", res.stderr)
	}
}
