package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/idioma"
)

func newKindsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List message kinds and the stream each one is written to",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, k := range idioma.Kinds() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", k, k.Stream()); err != nil {
					return fmt.Errorf("failed to list kinds: %w", err)
				}
			}
			return nil
		},
	}
}
