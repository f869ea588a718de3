package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/alloy/internal/journal"
)

func newWeekCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "week [date]",
		Short: "Print the week folder name for a date in YYYY-MM-DD (default: today).",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			label := journal.FormatWeek(e.now())
			if len(args) == 1 {
				var err error
				label, err = journal.WeekLabel(args[0])
				if err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), label)
			return nil
		},
	}
}
