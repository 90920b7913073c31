package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ppiankov/idioma"
	"github.com/ppiankov/idioma/internal/util"
)

var (
	colorFlag string
	verbose   bool
	version   string // Stored for use in subcommands
	commit    string
	buildDate string

	// logger stays on io.Discard unless --verbose is set
	logger              = log.New(io.Discard)
	logOutput io.Writer = io.Discard

	// exitFunc terminates the process after a fatal message. Tests stub it.
	exitFunc = os.Exit
)

// NewRootCommand creates the root command for idioma
func NewRootCommand(ver, rev, date string) *cobra.Command {
	version, commit, buildDate = ver, rev, date // Store for subcommands
	rootCmd := &cobra.Command{
		Use:   "idioma",
		Short: "Print labelled messages from shell scripts",
		Long: `idioma prints messages in the same "label: text" style Go programs get
from the idioma library. Info and success messages go to stdout, everything
else goes to stderr. Fatal messages end the process with an exit code.`,
		Version:           fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: setupLogging,
		// Runnable so that stray arguments fail validation as invalid input
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto", "Colorize labels (auto, always, never)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return invalidInput(err)
	})

	// Add subcommands
	rootCmd.AddCommand(newPrintCommand())
	rootCmd.AddCommand(newExitCommand())
	rootCmd.AddCommand(newCustomCommand())
	rootCmd.AddCommand(newKindsCommand())
	rootCmd.AddCommand(newDemoCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// Execute runs idioma and reports a failure in the color mode the user asked for
func Execute(ver, rev, date string) {
	run(NewRootCommand(ver, rev, date))
}

func run(rootCmd *cobra.Command) {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	r, rerr := newReporter(rootCmd)
	if rerr != nil {
		// The --color value itself was rejected
		r = idioma.New(
			idioma.WithOutput(rootCmd.OutOrStdout(), rootCmd.ErrOrStderr()),
			idioma.WithExitFunc(exitFunc),
		)
	}
	r.ExitIfError(ExitError(err))
}

// ExitError attaches an exit code to an error returned by Execute. Errors
// that carry no code become runtime errors.
func ExitError(err error) error {
	if err == nil {
		return nil
	}
	var coder idioma.ExitCoder
	if errors.As(err, &coder) {
		return err
	}
	return idioma.NewExitError(util.ExitRuntimeError, err)
}

func setupLogging(cmd *cobra.Command, args []string) error {
	if !verbose {
		logger = log.New(io.Discard)
		logOutput = io.Discard
		return nil
	}

	mode, err := resolveColorMode(colorFlag)
	if err != nil {
		return invalidInput(err)
	}

	w := cmd.ErrOrStderr()
	// The wrapper hides the file descriptor so the logger never queries the terminal
	logger = log.NewWithOptions(logWriter{w}, log.Options{Prefix: "idioma", Level: log.DebugLevel})
	if mode == idioma.ColorAlways || (mode == idioma.ColorAuto && isTerminal(w)) {
		logger.SetColorProfile(termenv.ANSI)
	}
	logOutput = w
	return nil
}

type logWriter struct {
	io.Writer
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// newReporter builds a reporter bound to the command's writers
func newReporter(cmd *cobra.Command) (*idioma.Reporter, error) {
	mode, err := resolveColorMode(colorFlag)
	if err != nil {
		return nil, invalidInput(err)
	}
	logger.Debug("resolved color mode", "flag", colorFlag, "mode", mode)

	return idioma.New(
		idioma.WithOutput(cmd.OutOrStdout(), cmd.ErrOrStderr()),
		idioma.WithColor(mode),
		idioma.WithExitFunc(exitFunc),
	), nil
}

// resolveColorMode honours the NO_COLOR convention when the flag is auto
func resolveColorMode(flag string) (idioma.ColorMode, error) {
	mode, err := idioma.ParseColorMode(flag)
	if err != nil {
		return 0, err
	}
	if mode == idioma.ColorAuto && os.Getenv("NO_COLOR") != "" {
		return idioma.ColorNever, nil
	}
	return mode, nil
}

func invalidInput(err error) error {
	return idioma.NewExitError(util.ExitInvalidInput, err)
}

// usageArgs marks argument validation failures as invalid input
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return invalidInput(err)
		}
		return nil
	}
}
