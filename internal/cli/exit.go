package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/ppiankov/idioma"
	"github.com/ppiankov/idioma/internal/util"
)

func newExitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "exit KIND CODE [TEXT...]",
		Short: "Print a labelled message and exit with CODE",
		Long: `Exit prints TEXT under the label of KIND and terminates with CODE,
which must be between 0 and 255.`,
		Example: `  idioma exit fatal 2 "cannot continue"`,
		Args:    usageArgs(cobra.MinimumNArgs(2)),
		RunE:    runExit,
	}
}

func runExit(cmd *cobra.Command, args []string) error {
	kind, err := idioma.ParseKind(args[0])
	if err != nil {
		return invalidInput(err)
	}
	code, err := util.ParseExitCode(args[1])
	if err != nil {
		return invalidInput(err)
	}

	r, err := newReporter(cmd)
	if err != nil {
		return err
	}

	logger.Debug("exiting", "kind", kind, "code", code)
	r.ExitWith(kind, strings.Join(args[2:], " "), code)
	return nil
}
