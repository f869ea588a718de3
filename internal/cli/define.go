package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/faizmokh/alloy/internal/dictionary"
)

// copyToClipboard is swapped out in tests.
var copyToClipboard = clipboard.WriteAll

func newDefineCommand(e *env) *cobra.Command {
	var noCopy bool

	cmd := &cobra.Command{
		Use:   "define <word>",
		Short: "Look up the first word of a selection and copy its definition.",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			selection := strings.Join(args, " ")

			client := dictionary.NewClient(e.settings.DictionaryURL, nil)
			def, err := client.Lookup(e.ctx, selection)
			if err != nil {
				fmt.Fprintln(out, lookupNotice(e, selection, err))
				return nil
			}

			if !noCopy {
				if err := copyToClipboard(def.Text); err != nil {
					e.log.WithError(err).Warn("copy definition")
					fmt.Fprintln(cmd.ErrOrStderr(), msgClipboardFailed)
				}
			}
			e.log.WithFields(logrus.Fields{
				"word":           def.Word,
				"part_of_speech": def.PartOfSpeech,
			}).Debug("definition found")
			fmt.Fprintf(out, msgDefinition+"\n", def.Word, def.Text)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noCopy, "no-copy", false, "Print the definition without copying it")

	return cmd
}

func lookupNotice(e *env, selection string, err error) string {
	switch {
	case errors.Is(err, dictionary.ErrNoWord):
		e.log.Warn("selection is empty")
		return msgNoWord
	case errors.Is(err, dictionary.ErrNoData):
		return msgNoData
	case errors.Is(err, dictionary.ErrNoMeaning):
		return msgNoMeaning
	case errors.Is(err, dictionary.ErrNoDefinition):
		return msgNoDefinition
	default:
		e.log.WithField("selection", selection).WithError(err).Error("dictionary lookup failed")
		return msgLookupFailed
	}
}
