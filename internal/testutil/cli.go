// Package testutil holds helpers shared by command tests.
package testutil

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"testing"
)

// ExecResult holds the outcome of one CLI invocation.
type ExecResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunCLI executes the fsfilter binary built at the project root (make
// build, or go build ./cmd/fsfilter) and captures its output and exit code.
func RunCLI(tb testing.TB, args ...string) ExecResult {
	tb.Helper()

	binary := "./fsfilter"
	if _, err := os.Stat(binary); os.IsNotExist(err) {
		// two levels up from cmd/fsfilter
		binary = "../../fsfilter"
		if _, err := os.Stat(binary); os.IsNotExist(err) {
			tb.Fatalf("fsfilter binary not found - build it first")
		}
	}

	cmd := exec.Command(binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	} else if err != nil {
		tb.Fatalf("failed to run fsfilter: %v", err)
	}

	return ExecResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}
