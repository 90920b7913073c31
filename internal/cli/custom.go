package cli

import (
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ppiankov/idioma/internal/util"
)

var (
	labelColor     string
	customExitCode string
)

func newCustomCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "custom LABEL [TEXT...]",
		Short: "Print a message under a custom label",
		Example: `  idioma custom deploy --label-color 12 "rolling out v2"
  idioma custom lol --exit-code 1 "did you expect something serious?"`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: runCustom,
	}

	cmd.Flags().StringVar(&labelColor, "label-color", "14", "Label color (ANSI number or #RRGGBB)")
	cmd.Flags().StringVar(&customExitCode, "exit-code", "", "Exit with this code (0-255) after printing")
	return cmd
}

func runCustom(cmd *cobra.Command, args []string) error {
	label := strings.TrimSpace(args[0])
	if label == "" {
		return invalidInput(errors.New("label must not be empty"))
	}

	code := -1
	if customExitCode != "" {
		c, err := util.ParseExitCode(customExitCode)
		if err != nil {
			return invalidInput(err)
		}
		code = c
	}

	r, err := newReporter(cmd)
	if err != nil {
		return err
	}

	text := strings.Join(args[1:], " ")
	color := lipgloss.Color(labelColor)
	logger.Debug("printing custom label", "label", label, "color", labelColor, "exit", code)
	if code >= 0 {
		r.ExitWithLabel(label, color, text, code)
		return nil
	}
	r.Custom(label, color)(text)
	return nil
}
