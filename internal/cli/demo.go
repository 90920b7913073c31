package cli

import (
	"github.com/spf13/cobra"

	"github.com/ppiankov/idioma"
	"github.com/ppiankov/idioma/internal/util"
)

func newDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Show every label, then exit with status 1",
		Args:  usageArgs(cobra.NoArgs),
		RunE:  runDemo,
	}
}

func runDemo(cmd *cobra.Command, args []string) error {
	r, err := newReporter(cmd)
	if err != nil {
		return err
	}

	r.Success("Yay, you actually managed to build this!")
	r.Info("This is just a demo of what idioma can do.")
	r.Custom("custom", "12")("This is a custom label. You can make one too!")
	r.Warning("This program will shut down with error very soon!")
	r.Debug("But you shouldn't worry, it's normal.")
	r.ExitWith(idioma.KindError, "Time to say bye-bye...", util.ExitFailure)
	return nil
}
