package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/alloy/internal/files"
	"github.com/faizmokh/alloy/internal/organizer"
)

func newOrganizeCommand(e *env) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "organize",
		Short: "Copy dreams into the year journal and move daily notes into week folders.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			ok, err := e.manager.Exists(e.settings.DailyNoteFolder)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(out, msgNoDailyNoteFolder)
				return nil
			}

			org := e.organizer()
			if dryRun {
				items, err := org.Plan(e.ctx)
				if err != nil {
					return err
				}
				printPlan(cmd, items)
				return nil
			}

			report, err := org.Organize(e.ctx)
			if err != nil {
				return err
			}
			printReport(cmd, report)
			if err := report.Err(); err != nil {
				e.log.WithError(err).Info("some notes were not organized")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Show what would happen without touching the vault")

	return cmd
}

func newDreamsCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "dreams [note]",
		Short: "Copy a note's dream section into the year journal (default: today's daily note).",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			note := e.resolveNote(args)
			org := e.organizer()

			copied, err := org.CopyDreamsToJournal(e.ctx, note)
			switch {
			case errors.Is(err, files.ErrNoActiveNote):
				fmt.Fprintln(out, msgNoActiveFile)
				return nil
			case err != nil:
				e.log.WithField("note", note.Basename()).WithError(err).Warn("failed to add dreams")
				fmt.Fprintln(out, msgFailedToAddDreams)
				return nil
			case !copied:
				fmt.Fprintln(out, msgNoDreamsToCopy)
				return nil
			}

			_, journalPath, _, err := org.DreamEntry(note)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, msgDreamsCopied+"\n", journalPath)
			return nil
		},
	}
}

func printPlan(cmd *cobra.Command, items []organizer.PlanItem) {
	out := cmd.OutOrStdout()
	if len(items) == 0 {
		fmt.Fprintln(out, msgNoNotesToMove)
		return
	}
	for _, item := range items {
		switch {
		case item.Err != nil:
			fmt.Fprintf(out, msgPlanItemSkipped+"\n", item.Note, item.Err)
		case item.HasDreams:
			fmt.Fprintf(out, msgPlanItemWithDreams+"\n", item.Note, item.Target, item.Journal)
		default:
			fmt.Fprintf(out, msgPlanItem+"\n", item.Note, item.Target)
		}
	}
}

func printReport(cmd *cobra.Command, report organizer.Report) {
	out := cmd.OutOrStdout()
	for i := 0; i < report.DreamFailures(); i++ {
		fmt.Fprintln(out, msgFailedToAddDreams)
	}
	if report.Total == 0 {
		fmt.Fprintln(out, msgNoNotesToMove)
		return
	}
	fmt.Fprintf(out, msgNotesMoved+"\n", report.Moved)
}
