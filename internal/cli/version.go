package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/alloy/internal/version"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information.",
		Args:  cobra.NoArgs,
		// Printing the version never needs the vault or config.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "alloy %s\n", version.Info())
			return nil
		},
	}
}
