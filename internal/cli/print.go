package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ppiankov/idioma"
)

func newPrintCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "print KIND [TEXT...]",
		Short: "Print a labelled message",
		Long: `Print joins TEXT with spaces and prints it under the label of KIND
(debug, info, success, warning, error, fatal). A fatal message exits with status 1.`,
		Example: `  idioma print warning "disk almost full"
  idioma print success deployed $VERSION`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: runPrint,
	}
}

func runPrint(cmd *cobra.Command, args []string) error {
	kind, err := idioma.ParseKind(args[0])
	if err != nil {
		return invalidInput(err)
	}

	r, err := newReporter(cmd)
	if err != nil {
		return err
	}

	logger.Debug("printing message", "kind", kind, "stream", kind.Stream())
	if err := r.Report(kind, strings.Join(args[1:], " ")); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	return nil
}
