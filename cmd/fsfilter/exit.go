package main

import "errors"

// Process exit codes.
const (
	ExitSuccess    = 0
	ExitRejected   = 1 // at least one path or test subject did not match
	ExitInputError = 2 // bad flags, config or filter, or an unreadable path
)

var (
	errRejected   = errors.New("one or more paths were rejected")
	errUnreadable = errors.New("one or more paths could not be checked")
)

// exitCode maps a command error onto a process exit code.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, errRejected):
		return ExitRejected
	default:
		return ExitInputError
	}
}
