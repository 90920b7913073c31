package util

import (
	"fmt"
	"strconv"
)

// Standard exit codes for the idioma binary
const (
	ExitSuccess      = 0 // Command succeeded
	ExitFailure      = 1 // Requested failure (error or fatal message)
	ExitInvalidInput = 2 // Invalid user input
	ExitRuntimeError = 3 // Anything else
)

// Valid process exit status range per POSIX
const (
	minExitCode = 0
	maxExitCode = 255
)

// ParseExitCode parses a user supplied exit status
func ParseExitCode(s string) (int, error) {
	code, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid exit code %q: must be a number", s)
	}
	if code < minExitCode || code > maxExitCode {
		return 0, fmt.Errorf("invalid exit code %d: must be between %d and %d", code, minExitCode, maxExitCode)
	}
	return code, nil
}
