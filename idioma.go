// Package idioma prints consistently labelled messages for command line
// programs and can end the process with an exit code.
//
// Every message is one line of the form "<label>: <text>". Info and success
// messages go to stdout; debug, warning, error and fatal messages go to
// stderr. Labels are bold and coloured when the stream is a terminal.
//
//	if err := run(); err != nil {
//		idioma.Exitf(2, "cannot continue: %v", err)
//	}
//	idioma.Warning("config file %s not found, using defaults", path)
//
// The package-level functions use a Reporter bound to os.Stdout and
// os.Stderr. Build your own with New to redirect output or change colours.
package idioma

import "github.com/charmbracelet/lipgloss"

var std = New()

// Report writes a message of kind to its stream. See Reporter.Report.
func Report(kind Kind, text string) error { return std.Report(kind, text) }

// Reportf is Report with Sprintf formatting
func Reportf(kind Kind, format string, args ...any) error {
	return std.Reportf(kind, format, args...)
}

// Print reports a prepared message
func Print(m Message) error { return std.Print(m) }

// ExitWith reports text and terminates the process with code
func ExitWith(kind Kind, text string, code int) { std.ExitWith(kind, text, code) }

// Debug prints a debug message to stderr
func Debug(format string, args ...any) { std.Debug(format, args...) }

// Info prints a neutral message to stdout
func Info(format string, args ...any) { std.Info(format, args...) }

// Success prints a success message to stdout
func Success(format string, args ...any) { std.Success(format, args...) }

// Warning prints a warning to stderr
func Warning(format string, args ...any) { std.Warning(format, args...) }

// Error prints an error to stderr without exiting
func Error(format string, args ...any) { std.Error(format, args...) }

// Fatal reports a fatal message and exits with status 1
func Fatal(format string, args ...any) { std.Fatal(format, args...) }

// Exitf reports a fatal message and exits with code
func Exitf(code int, format string, args ...any) { std.Exitf(code, format, args...) }

// ExitIfError exits when err is non-nil. See Reporter.ExitIfError.
func ExitIfError(err error) { std.ExitIfError(err) }

// Custom returns a Printer for a user-defined label
func Custom(label string, color lipgloss.Color) Printer { return std.Custom(label, color) }

// ExitWithLabel prints text under a custom label and exits with code
func ExitWithLabel(label string, color lipgloss.Color, text string, code int) {
	std.ExitWithLabel(label, color, text, code)
}
