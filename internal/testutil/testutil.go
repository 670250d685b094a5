// Package testutil provides shared helpers for tests that exercise
// external tool invocations through PATH stubs.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteStub writes an executable shell stub that exits successfully.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStub(t *testing.T, dir string, name string) {
	t.Helper()
	WriteStubWithExit(t, dir, name, 0)
}

// WriteStubWithExit writes an executable shell stub that exits with the provided code.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStubWithExit(t *testing.T, dir string, name string, exitCode int) {
	t.Helper()
	WriteStubScript(t, dir, name, fmt.Sprintf("exit %d", exitCode))
}

// WriteStubScript writes an executable shell stub with an arbitrary body.
// t is the active test; dir is the output directory; name is the executable
// file name; body is the script body placed after the shebang line.
func WriteStubScript(t *testing.T, dir string, name string, body string) {
	t.Helper()
	path := filepath.Join(dir, name)
	content := []byte("#!/bin/sh\n" + body + "\n")
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
}

// WriteRecordingStub writes an executable shell stub that appends its
// argument vector, one invocation per line, to logFile and exits
// successfully. Tests use it to assert the exact command lines passed
// to python3.
func WriteRecordingStub(t *testing.T, dir string, name string, logFile string) {
	t.Helper()
	WriteStubScript(t, dir, name, fmt.Sprintf("echo \"$@\" >> %q", logFile))
}

// WritePythonBuildStub writes a python3 stub that understands the two
// subcommands the pipeline invokes. `-m build --wheel --outdir <dir> <src>`
// drops a wheel named after the source directory into <dir>; `-m pip ...`
// records the invocation. Both append their argument vectors to logFile.
// The body uses only shell builtins so PATH may point at the stub
// directory alone; dashes in the source directory name become
// underscores, matching wheel file naming.
func WritePythonBuildStub(t *testing.T, dir string, logFile string) {
	t.Helper()
	body := fmt.Sprintf(`echo "$@" >> %q
if [ "$1" = "-m" ] && [ "$2" = "build" ]; then
  out=""
  prev=""
  src=""
  for arg in "$@"; do
    if [ "$prev" = "--outdir" ]; then out="$arg"; fi
    prev="$arg"
    src="$arg"
  done
  name=${src##*/}
  IFS=-
  set -f
  set -- $name
  IFS=_
  name="$*"
  : > "$out/${name}-1.0.0-py3-none-any.whl"
fi
exit 0`, logFile)
	WriteStubScript(t, dir, "python3", body)
}

// ReadInvocations returns the recorded stub invocations from logFile,
// one argument vector per entry.
func ReadInvocations(t *testing.T, logFile string) []string {
	t.Helper()
	data, err := os.ReadFile(logFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		t.Fatalf("read invocation log: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil
	}
	return lines
}

// WithWorkingDir runs fn with dir as the current working directory and restores the previous directory.
// t is the active test; dir is the temporary working directory for fn.
func WithWorkingDir(t *testing.T, dir string, fn func()) {
	t.Helper()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer func() {
		if err := os.Chdir(cwd); err != nil {
			t.Fatalf("restore chdir: %v", err)
		}
	}()
	fn()
}
