package idioma

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Reporter writes labelled messages to a pair of streams. It is not modified
// after New returns, so one Reporter can be shared freely.
type Reporter struct {
	stdout io.Writer
	stderr io.Writer
	color  ColorMode
	exit   func(int)

	outRenderer *lipgloss.Renderer
	errRenderer *lipgloss.Renderer
}

// Option configures a Reporter
type Option func(*Reporter)

// WithOutput replaces the stdout and stderr writers. A nil writer keeps the default.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(r *Reporter) {
		if stdout != nil {
			r.stdout = stdout
		}
		if stderr != nil {
			r.stderr = stderr
		}
	}
}

// WithColor sets the color mode (default ColorAuto)
func WithColor(mode ColorMode) Option {
	return func(r *Reporter) {
		r.color = mode
	}
}

// WithExitFunc replaces os.Exit. Tests use it to observe fatal exits.
func WithExitFunc(fn func(int)) Option {
	return func(r *Reporter) {
		if fn != nil {
			r.exit = fn
		}
	}
}

// New creates a Reporter writing to the process streams unless told otherwise
func New(opts ...Option) *Reporter {
	r := &Reporter{
		stdout: os.Stdout,
		stderr: os.Stderr,
		color:  ColorAuto,
		exit:   os.Exit,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.outRenderer = newRenderer(r.stdout, r.color)
	r.errRenderer = newRenderer(r.stderr, r.color)
	return r
}

// Report writes "<label>: <text>\n" to the stream of kind. The write error,
// if any, is returned and nothing else is done about it. Terminal kinds exit
// with DefaultExitCode after writing.
func (r *Reporter) Report(kind Kind, text string) error {
	if kind.Terminal() {
		return r.terminate(kind, text, DefaultExitCode)
	}
	return r.emit(kind.Stream(), kind.String(), kind.color(), text)
}

// Reportf is Report with Sprintf formatting
func (r *Reporter) Reportf(kind Kind, format string, args ...any) error {
	return r.Report(kind, sprintf(format, args...))
}

// Print reports a prepared message
func (r *Reporter) Print(m Message) error {
	return r.Report(m.Kind, m.Text)
}

// ExitWith reports text and terminates the process with code. It does not
// return unless the exit func set with WithExitFunc returns. The exit
// happens even if the message could not be written.
func (r *Reporter) ExitWith(kind Kind, text string, code int) {
	_ = r.terminate(kind, text, code)
}

// ExitWithLabel is ExitWith for a custom label. Like Custom it writes to stdout.
func (r *Reporter) ExitWithLabel(label string, color lipgloss.Color, text string, code int) {
	_ = r.exitLabel(Stdout, label, color, text, code)
}

func (r *Reporter) terminate(kind Kind, text string, code int) error {
	return r.exitLabel(kind.Stream(), kind.String(), kind.color(), text, code)
}

func (r *Reporter) exitLabel(s Stream, label string, color lipgloss.Color, text string, code int) error {
	err := r.emit(s, label, color, text)
	flush(r.writer(s))
	r.exit(code)
	return err
}

// Debug prints a debug message to stderr
func (r *Reporter) Debug(format string, args ...any) {
	_ = r.Reportf(KindDebug, format, args...)
}

// Info prints a neutral message to stdout
func (r *Reporter) Info(format string, args ...any) {
	_ = r.Reportf(KindInfo, format, args...)
}

// Success prints a success message to stdout
func (r *Reporter) Success(format string, args ...any) {
	_ = r.Reportf(KindSuccess, format, args...)
}

// Warning prints a warning to stderr
func (r *Reporter) Warning(format string, args ...any) {
	_ = r.Reportf(KindWarning, format, args...)
}

// Error prints an error to stderr without exiting
func (r *Reporter) Error(format string, args ...any) {
	_ = r.Reportf(KindError, format, args...)
}

// Printer prints a formatted message under a fixed label
type Printer func(format string, args ...any)

// Custom returns a Printer for a label that is not one of the predefined
// kinds. Custom messages go to stdout.
func (r *Reporter) Custom(label string, color lipgloss.Color) Printer {
	return func(format string, args ...any) {
		_ = r.emit(Stdout, label, color, sprintf(format, args...))
	}
}

func (r *Reporter) writer(s Stream) io.Writer {
	if s == Stdout {
		return r.stdout
	}
	return r.stderr
}

func (r *Reporter) renderer(s Stream) *lipgloss.Renderer {
	if s == Stdout {
		return r.outRenderer
	}
	return r.errRenderer
}

// emit performs exactly one Write so concurrent callers never interleave
// inside a line.
func (r *Reporter) emit(s Stream, label string, color lipgloss.Color, text string) error {
	re := r.renderer(s)
	styled := re.NewStyle().Bold(true).Foreground(color).Render(label) +
		re.NewStyle().Bold(true).Render(":")

	line := styled
	if text != "" {
		line += " " + text
	}
	_, err := io.WriteString(r.writer(s), line+"\n")
	return err
}

type flusher interface {
	Flush() error
}

// flush drains buffered writers. *os.File is unbuffered and needs nothing.
func flush(w io.Writer) {
	if f, ok := w.(flusher); ok {
		_ = f.Flush()
	}
}
