package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/alloy/internal/files"
	"github.com/faizmokh/alloy/internal/timesheet"
)

func newHoursCommand(e *env) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "hours [note]",
		Short: "Sum the time ranges logged in a note (default: today's daily note).",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			note := e.resolveNote(args)

			found, err := printHours(cmd, e, note)
			if err != nil || !found || !watch {
				return err
			}

			return e.manager.Watch(e.ctx, note.Path, func() {
				if _, err := printHours(cmd, e, note); err != nil {
					e.log.WithField("note", note.Basename()).WithError(err).Warn("recalculate hours")
				}
			})
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Keep running and print the total again whenever the note changes")

	return cmd
}

// printHours reports whether the note exists.
func printHours(cmd *cobra.Command, e *env, note files.Note) (bool, error) {
	lines, err := e.manager.ReadLines(note.Path)
	if err != nil {
		if errors.Is(err, files.ErrNoActiveNote) {
			fmt.Fprintln(cmd.OutOrStdout(), msgNoActiveFile)
			return false, nil
		}
		return false, err
	}

	fmt.Fprintln(cmd.OutOrStdout(), timesheet.FormatHours(timesheet.TotalHours(lines)))
	return true, nil
}
