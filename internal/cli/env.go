package cli

import (
	"context"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/faizmokh/alloy/internal/config"
	"github.com/faizmokh/alloy/internal/files"
	"github.com/faizmokh/alloy/internal/logging"
	"github.com/faizmokh/alloy/internal/organizer"
)

const markdownExt = ".md"

// env carries what the subcommands share once the root command has loaded
// the configuration.
type env struct {
	ctx      context.Context
	settings config.Settings
	manager  *files.Manager
	log      logrus.FieldLogger
	now      func() time.Time
}

func newEnv(ctx context.Context) *env {
	return &env{
		ctx:      ctx,
		settings: config.Defaults(),
		log:      logging.Log,
		now:      time.Now,
	}
}

// load reads the config file and flags, then opens the vault.
func (e *env) load(cmd *cobra.Command, v *viper.Viper, cfgFile string) error {
	if err := config.ReadFile(v, cfgFile); err != nil {
		return err
	}
	settings, err := config.FromViper(v)
	if err != nil {
		return err
	}
	settings.Vault = config.FlagOrViperString(cmd, v, "vault", config.KeyVault)
	settings.LogLevel = config.FlagOrViperString(cmd, v, "loglevel", config.KeyLogLevel)

	logging.SetOutput(cmd.ErrOrStderr())
	if err := logging.SetLogLevel(settings.LogLevel); err != nil {
		return err
	}
	if err := logging.SetFile(settings.LogFile); err != nil {
		return err
	}

	manager, err := files.NewManager(settings.Vault)
	if err != nil {
		return err
	}
	e.settings = settings
	e.manager = manager
	e.log.WithField("vault", manager.BasePath()).Debug("vault opened")
	return nil
}

func (e *env) organizer() *organizer.Organizer {
	return organizer.New(e.manager, e.settings,
		organizer.WithLogger(e.log),
		organizer.WithClock(e.now),
	)
}

// resolveNote turns a command argument into a note. A bare name such as
// "2024-06-24" refers to the daily note folder; no argument means today's
// daily note.
func (e *env) resolveNote(args []string) files.Note {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return files.Note{Path: e.organizer().TodayNote()}
	}

	rel := filepath.ToSlash(strings.TrimSpace(args[0]))
	if !strings.EqualFold(path.Ext(rel), markdownExt) {
		rel += markdownExt
	}
	if !strings.Contains(rel, "/") {
		rel = path.Join(e.settings.DailyNoteFolder, rel)
	}
	return files.Note{Path: rel}
}
