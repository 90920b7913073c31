package cli

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/ppiankov/idioma"
	"github.com/ppiankov/idioma/internal/util"
)

type result struct {
	stdout string
	stderr string
	codes  []int
	err    error
}

type harness struct {
	stdout bytes.Buffer
	stderr bytes.Buffer
	codes  []int
}

// newHarness builds a root command writing into buffers, with exits recorded
// instead of taken. Arguments are passed through untouched.
func newHarness(t *testing.T, args ...string) (*harness, *cobra.Command) {
	t.Helper()

	h := &harness{}
	orig := exitFunc
	exitFunc = func(code int) { h.codes = append(h.codes, code) }
	t.Cleanup(func() { exitFunc = orig })

	cmd := NewRootCommand("test", "none", "today")
	cmd.SetOut(&h.stdout)
	cmd.SetErr(&h.stderr)
	cmd.SetArgs(args)
	return h, cmd
}

func execute(t *testing.T, args ...string) result {
	t.Helper()

	h, cmd := newHarness(t, append([]string{"--color", "never"}, args...)...)
	err := cmd.Execute()
	return result{stdout: h.stdout.String(), stderr: h.stderr.String(), codes: h.codes, err: err}
}

func exitCodeOf(err error) int {
	var coder idioma.ExitCoder
	if errors.As(ExitError(err), &coder) {
		return coder.ExitCode()
	}
	return -1
}

func TestPrintCommand(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantStdout string
		wantStderr string
		wantCodes  []int
	}{
		{"info", []string{"print", "info", "hello"}, "info: hello\n", "", nil},
		{"error", []string{"print", "error", "bad", "input"}, "", "error: bad input\n", nil},
		{"alias", []string{"print", "WARN", "careful"}, "", "warning: careful\n", nil},
		{"empty text", []string{"print", "success"}, "success:\n", "", nil},
		{"fatal exits", []string{"print", "fatal", "done"}, "", "fatal: done\n", []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := execute(t, tt.args...)
			if res.err != nil {
				t.Fatalf("unexpected error: %v", res.err)
			}
			if res.stdout != tt.wantStdout {
				t.Errorf("stdout = %q, want %q", res.stdout, tt.wantStdout)
			}
			if res.stderr != tt.wantStderr {
				t.Errorf("stderr = %q, want %q", res.stderr, tt.wantStderr)
			}
			if len(res.codes) != len(tt.wantCodes) {
				t.Fatalf("exit codes = %v, want %v", res.codes, tt.wantCodes)
			}
			for i := range res.codes {
				if res.codes[i] != tt.wantCodes[i] {
					t.Errorf("exit codes = %v, want %v", res.codes, tt.wantCodes)
				}
			}
		})
	}
}

func TestInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown kind", []string{"print", "loud", "x"}},
		{"missing kind", []string{"print"}},
		{"bad exit code", []string{"exit", "fatal", "300", "x"}},
		{"non-numeric exit code", []string{"exit", "fatal", "two"}},
		{"missing exit code", []string{"exit", "fatal"}},
		{"empty custom label", []string{"custom", " ", "x"}},
		{"bad color mode", []string{"--color", "sometimes", "print", "info", "x"}},
		{"unknown flag", []string{"print", "--shout", "info", "x"}},
		{"kinds takes no args", []string{"kinds", "extra"}},
		{"unknown command", []string{"bogus"}},
		{"bad custom exit code", []string{"custom", "lol", "--exit-code", "256", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := execute(t, tt.args...)
			if res.err == nil {
				t.Fatal("expected an error")
			}
			if got := exitCodeOf(res.err); got != util.ExitInvalidInput {
				t.Errorf("exit code = %d, want %d (err: %v)", got, util.ExitInvalidInput, res.err)
			}
			if len(res.codes) != 0 {
				t.Errorf("should not have exited, got %v", res.codes)
			}
		})
	}
}

func TestExitCommand(t *testing.T) {
	res := execute(t, "exit", "fatal", "2", "cannot", "continue")
	if res.err != nil {
		t.Fatalf("unexpected error: %v", res.err)
	}
	if res.stderr != "fatal: cannot continue\n" {
		t.Errorf("stderr = %q", res.stderr)
	}
	if len(res.codes) != 1 || res.codes[0] != 2 {
		t.Errorf("exit codes = %v, want [2]", res.codes)
	}

	res = execute(t, "exit", "info", "0", "all good")
	if res.stdout != "info: all good\n" {
		t.Errorf("stdout = %q", res.stdout)
	}
	if len(res.codes) != 1 || res.codes[0] != 0 {
		t.Errorf("exit codes = %v, want [0]", res.codes)
	}
}

func TestCustomCommand(t *testing.T) {
	res := execute(t, "custom", "deploy", "--label-color", "12", "rolling", "out")
	if res.err != nil {
		t.Fatalf("unexpected error: %v", res.err)
	}
	if res.stdout != "deploy: rolling out\n" {
		t.Errorf("stdout = %q", res.stdout)
	}
	if len(res.codes) != 0 {
		t.Errorf("custom without --exit-code must not exit, got %v", res.codes)
	}

	res = execute(t, "custom", "lol", "--exit-code", "4", "did you expect something serious?")
	if res.err != nil {
		t.Fatalf("unexpected error: %v", res.err)
	}
	if res.stdout != "lol: did you expect something serious?\n" {
		t.Errorf("stdout = %q", res.stdout)
	}
	if len(res.codes) != 1 || res.codes[0] != 4 {
		t.Errorf("exit codes = %v, want [4]", res.codes)
	}
}

func TestRootWithoutArgsShowsHelp(t *testing.T) {
	res := execute(t)
	if res.err != nil {
		t.Fatalf("unexpected error: %v", res.err)
	}
	if !strings.Contains(res.stdout, "Usage:") {
		t.Errorf("expected help on stdout, got %q", res.stdout)
	}
}

func TestFailureReportUsesColorFlag(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantEscape bool
	}{
		{"never", []string{"--color", "never", "print", "loud", "x"}, false},
		{"always", []string{"--color", "always", "print", "loud", "x"}, true},
		{"unknown command", []string{"--color", "never", "bogus"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, cmd := newHarness(t, tt.args...)
			run(cmd)

			out := h.stderr.String()
			if got := strings.Contains(out, "\x1b["); got != tt.wantEscape {
				t.Errorf("escape present = %v, want %v (stderr %q)", got, tt.wantEscape, out)
			}
			if !tt.wantEscape && !strings.HasPrefix(out, "error: ") {
				t.Errorf("stderr = %q, want plain error line", out)
			}
			if len(h.codes) != 1 || h.codes[0] != util.ExitInvalidInput {
				t.Errorf("exit codes = %v, want [%d]", h.codes, util.ExitInvalidInput)
			}
		})
	}
}

func TestRunSuccessDoesNotExit(t *testing.T) {
	h, cmd := newHarness(t, "--color", "never", "print", "info", "ok")
	run(cmd)

	if h.stdout.String() != "info: ok\n" {
		t.Errorf("stdout = %q", h.stdout.String())
	}
	if len(h.codes) != 0 {
		t.Errorf("exit codes = %v, want none", h.codes)
	}
}

func TestKindsCommand(t *testing.T) {
	res := execute(t, "kinds")
	if res.err != nil {
		t.Fatalf("unexpected error: %v", res.err)
	}

	lines := strings.Split(strings.TrimSuffix(res.stdout, "\n"), "\n")
	if len(lines) != len(idioma.Kinds()) {
		t.Fatalf("got %d lines, want %d: %q", len(lines), len(idioma.Kinds()), res.stdout)
	}
	for i, k := range idioma.Kinds() {
		want := k.String() + "\t" + k.Stream().String()
		if lines[i] != want {
			t.Errorf("line %d = %q, want %q", i, lines[i], want)
		}
	}
}

func TestDemoCommand(t *testing.T) {
	res := execute(t, "demo")
	if res.err != nil {
		t.Fatalf("unexpected error: %v", res.err)
	}

	wantStdout := "success: Yay, you actually managed to build this!\n" +
		"info: This is just a demo of what idioma can do.\n" +
		"custom: This is a custom label. You can make one too!\n"
	if res.stdout != wantStdout {
		t.Errorf("stdout = %q, want %q", res.stdout, wantStdout)
	}
	if !strings.HasSuffix(res.stderr, "error: Time to say bye-bye...\n") {
		t.Errorf("stderr = %q", res.stderr)
	}
	if len(res.codes) != 1 || res.codes[0] != util.ExitFailure {
		t.Errorf("exit codes = %v, want [%d]", res.codes, util.ExitFailure)
	}
}

func TestVersionCommand(t *testing.T) {
	res := execute(t, "version")
	if !strings.Contains(res.stdout, "idioma version test") {
		t.Errorf("stdout = %q", res.stdout)
	}
	if !strings.Contains(res.stdout, "Commit: none (built today)") {
		t.Errorf("stdout = %q, want commit and build date", res.stdout)
	}
}

func TestVerboseLogging(t *testing.T) {
	res := execute(t, "--verbose", "print", "info", "hi")
	if res.stdout != "info: hi\n" {
		t.Errorf("stdout = %q", res.stdout)
	}
	if !strings.Contains(res.stderr, "resolved color mode") {
		t.Errorf("expected debug log on stderr, got %q", res.stderr)
	}
	if strings.Contains(res.stderr, "\x1b") {
		t.Errorf("--color never must keep the log free of escapes, got %q", res.stderr)
	}
	if logOutput == io.Discard {
		t.Error("verbose run should log to stderr")
	}
}

func TestLoggerDiscardedWithoutVerbose(t *testing.T) {
	// A verbose run first, so the quiet run has to undo it
	execute(t, "--verbose", "kinds")

	res := execute(t, "print", "info", "hi")
	if res.stderr != "" {
		t.Errorf("expected quiet stderr without --verbose, got %q", res.stderr)
	}
	if logOutput != io.Discard {
		t.Errorf("logger bound to %T without --verbose, want io.Discard", logOutput)
	}
}

func TestExitError(t *testing.T) {
	if ExitError(nil) != nil {
		t.Error("ExitError(nil) should be nil")
	}
	if got := exitCodeOf(errors.New("boom")); got != util.ExitRuntimeError {
		t.Errorf("plain error code = %d, want %d", got, util.ExitRuntimeError)
	}
	if got := exitCodeOf(invalidInput(errors.New("bad"))); got != util.ExitInvalidInput {
		t.Errorf("invalid input code = %d, want %d", got, util.ExitInvalidInput)
	}
}

func TestResolveColorMode(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	mode, err := resolveColorMode("auto")
	if err != nil || mode != idioma.ColorNever {
		t.Errorf("auto with NO_COLOR = %s, %v; want never", mode, err)
	}
	mode, err = resolveColorMode("always")
	if err != nil || mode != idioma.ColorAlways {
		t.Errorf("always with NO_COLOR = %s, %v; want always", mode, err)
	}
	if _, err := resolveColorMode("rainbow"); err == nil {
		t.Error("expected error for unknown mode")
	}
}
