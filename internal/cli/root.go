package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/faizmokh/alloy/internal/config"
	"github.com/faizmokh/alloy/internal/logging"
	"github.com/faizmokh/alloy/internal/ui"
	"github.com/faizmokh/alloy/internal/version"
)

// NewRootCommand creates the top-level Cobra command to host subcommands and TUI launcher.
func NewRootCommand(ctx context.Context) *cobra.Command {
	e := newEnv(ctx)
	v := config.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:     "alloy",
		Short:   "Tidy daily notes, sum logged hours and keep a dream journal.",
		Version: version.Info(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.load(cmd, v, cfgFile)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return logging.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			m := ui.NewModel(ctx, e.organizer())
			if _, err := tea.NewProgram(m).Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate("alloy {{.Version}}\n")

	flags := cmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Config file (default: $HOME/.alloy.yaml)")
	flags.String("vault", "", "Notes vault folder (default: $ALLOY_VAULT or $HOME/Notes)")
	flags.StringP("loglevel", "l", config.Defaults().LogLevel, "Log level (debug|info|warn|error|fatal)")

	cmd.AddCommand(
		newHoursCommand(e),
		newWeekCommand(e),
		newOrganizeCommand(e),
		newDreamsCommand(e),
		newDefineCommand(e),
		newVersionCommand(),
	)

	return cmd
}

// Run executes the root command with args and returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand(ctx)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// Main is a helper used by cmd/alloy/main.go to keep wiring contained in one package.
// The caller exits with the returned code.
func Main(ctx context.Context) int {
	return Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
}
