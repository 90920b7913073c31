package idioma

import (
	"errors"
	"fmt"
)

// DefaultExitCode is used when a fatal exit does not name a code
const DefaultExitCode = 1

// ExitCoder is implemented by errors that know which exit code they deserve
type ExitCoder interface {
	ExitCode() int
}

// ExitError attaches an exit code to an error
type ExitError struct {
	Code int
	Err  error
}

// NewExitError wraps err with an exit code
func NewExitError(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

func (e *ExitError) ExitCode() int { return e.Code }

// Fatal reports a fatal message and exits with DefaultExitCode
func (r *Reporter) Fatal(format string, args ...any) {
	r.ExitWith(KindFatal, sprintf(format, args...), DefaultExitCode)
}

// Exitf reports a fatal message and exits with code
func (r *Reporter) Exitf(code int, format string, args ...any) {
	r.ExitWith(KindFatal, sprintf(format, args...), code)
}

// ExitIfError does nothing for a nil error. Otherwise it reports err as an
// error and exits, using the code of the first ExitCoder in the chain or
// DefaultExitCode.
func (r *Reporter) ExitIfError(err error) {
	if err == nil {
		return
	}
	r.ExitWith(KindError, err.Error(), exitCode(err))
}

func exitCode(err error) int {
	var coder ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return DefaultExitCode
}
