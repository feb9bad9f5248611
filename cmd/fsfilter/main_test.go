package main

import (
	"bytes"
	"strings"
	"testing"
)

type cliResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// execute runs the CLI in-process.
func execute(t *testing.T, args ...string) cliResult {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return cliResult{Stdout: stdout.String(), Stderr: stderr.String(), ExitCode: code}
}

func TestRootHelp(t *testing.T) {
	result := execute(t, "--help")

	if result.ExitCode != ExitSuccess {
		t.Errorf("exit code = %d, want %d", result.ExitCode, ExitSuccess)
	}
	for _, want := range []string{"check", "glob", "version"} {
		if !strings.Contains(result.Stdout, want) {
			t.Errorf("help should list %q, got:\n%s", want, result.Stdout)
		}
	}
}

func TestUnknownCommand(t *testing.T) {
	result := execute(t, "frobnicate")

	if result.ExitCode != ExitInputError {
		t.Errorf("exit code = %d, want %d", result.ExitCode, ExitInputError)
	}
	if !strings.Contains(result.Stderr, "unknown command") {
		t.Errorf("stderr should mention unknown command, got:\n%s", result.Stderr)
	}
}

func TestInvalidLogLevel(t *testing.T) {
	result := execute(t, "--log-level", "loud", "version")

	if result.ExitCode != ExitInputError {
		t.Errorf("exit code = %d, want %d", result.ExitCode, ExitInputError)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"rejected", errRejected, ExitRejected},
		{"unreadable", errUnreadable, ExitInputError},
		{"other", bytes.ErrTooLarge, ExitInputError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
