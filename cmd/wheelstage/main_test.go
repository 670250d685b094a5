package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
)

func TestMainVersion(t *testing.T) {
	var out bytes.Buffer
	if err := execute([]string{"wheelstage", "--version"}, &out, &out); err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if !strings.Contains(out.String(), Version) {
		t.Fatalf("expected version output, got %q", out.String())
	}
}

func TestMainUnknownCommand(t *testing.T) {
	var out bytes.Buffer
	if err := execute([]string{"wheelstage", "unknown"}, &out, &out); err == nil {
		t.Fatalf("expected error")
	}
}

func TestRunMainSuccess(t *testing.T) {
	var out bytes.Buffer
	called := false
	runMain([]string{"wheelstage", "--version"}, &out, &out, func(code int) {
		called = true
	})
	if called {
		t.Fatalf("unexpected exit")
	}
}

func TestRunMainError(t *testing.T) {
	var out bytes.Buffer
	code := 0
	runMain([]string{"wheelstage", "unknown"}, &out, &out, func(exitCode int) {
		code = exitCode
	})
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(out.String(), "unknown command") {
		t.Fatalf("expected error output, got %q", out.String())
	}
}

func TestRunMainSilentExit(t *testing.T) {
	orig := executeFunc
	defer func() { executeFunc = orig }()
	executeFunc = func(args []string, stdout io.Writer, stderr io.Writer) error {
		return &SilentExitError{Code: 3}
	}

	var out bytes.Buffer
	code := -1
	runMain([]string{"wheelstage"}, &out, &out, func(exitCode int) {
		code = exitCode
	})
	if code != 3 {
		t.Fatalf("expected exit code 3, got %d", code)
	}
	if out.Len() != 0 {
		t.Fatalf("silent exit must not print, got %q", out.String())
	}
}

func TestRunMainPropagatesToolExitCode(t *testing.T) {
	toolErr := exec.Command("sh", "-c", "exit 4").Run()
	var exitErr *exec.ExitError
	if !errors.As(toolErr, &exitErr) {
		t.Fatalf("expected exit error from shell, got %v", toolErr)
	}

	orig := executeFunc
	defer func() { executeFunc = orig }()
	executeFunc = func(args []string, stdout io.Writer, stderr io.Writer) error {
		return toolErr
	}

	var out bytes.Buffer
	code := 0
	runMain([]string{"wheelstage"}, &out, &out, func(exitCode int) {
		code = exitCode
	})
	if code != 4 {
		t.Fatalf("expected exit code 4, got %d", code)
	}
	if out.Len() == 0 {
		t.Fatalf("expected error output for tool failure")
	}
}

func TestMainCallsExecute(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()

	os.Args = []string{"wheelstage", "--version"}
	main()
}

func TestVersionString(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, BuildDate
	defer func() { Version, Commit, BuildDate = origVersion, origCommit, origDate }()

	Version, Commit, BuildDate = "1.2.3", "unknown", "unknown"
	if got := versionString(); got != "1.2.3" {
		t.Fatalf("expected bare version, got %q", got)
	}

	Commit, BuildDate = "abc1234", "2026-08-30"
	got := versionString()
	for _, want := range []string{"1.2.3", "commit abc1234", "built 2026-08-30"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in version string %q", want, got)
		}
	}
}
