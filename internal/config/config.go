package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Keys understood in the config file and as ALLOY_* environment variables.
const (
	KeyVault              = "vault"
	KeyDailyNoteFolder    = "daily_note_folder"
	KeyDreamJournalFolder = "dream_journal_folder"
	KeyDreamSection       = "dream_section"
	KeySubsectionPrefix   = "subsection_prefix"
	KeyLogLevel           = "loglevel"
	KeyLogFile            = "log_file"
	KeyDictionaryURL      = "dictionary_url"
)

const (
	// DefaultConfigName is the config file looked up in the home directory.
	DefaultConfigName = ".alloy"
	envPrefix         = "ALLOY"
)

// Settings carries everything the note operations need. It is a value:
// pass it along instead of reading globals.
type Settings struct {
	Vault              string
	DailyNoteFolder    string
	DreamJournalFolder string
	DreamSection       string
	SubsectionPrefix   string
	LogLevel           string
	// LogFile, when set, receives log output instead of stderr.
	LogFile       string
	DictionaryURL string
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	const prefix = "###"
	return Settings{
		DailyNoteFolder:    "Daily Notes",
		DreamJournalFolder: "Dream Journal",
		DreamSection:       prefix + " Dream Journal",
		SubsectionPrefix:   prefix,
		LogLevel:           "warn",
		DictionaryURL:      "https://api.dictionaryapi.dev/api/v2/entries/en/",
	}
}

// New returns a viper instance with defaults and ALLOY_* environment binding.
func New() *viper.Viper {
	v := viper.New()
	d := Defaults()
	v.SetDefault(KeyVault, d.Vault)
	v.SetDefault(KeyDailyNoteFolder, d.DailyNoteFolder)
	v.SetDefault(KeyDreamJournalFolder, d.DreamJournalFolder)
	v.SetDefault(KeyDreamSection, d.DreamSection)
	v.SetDefault(KeySubsectionPrefix, d.SubsectionPrefix)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyLogFile, d.LogFile)
	v.SetDefault(KeyDictionaryURL, d.DictionaryURL)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// ReadFile loads cfgFile into v, or ~/.alloy.yaml when cfgFile is empty.
// A missing default file is not an error.
func ReadFile(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		path, err := homedir.Expand(cfgFile)
		if err != nil {
			return fmt.Errorf("expand config path: %w", err)
		}
		v.SetConfigFile(path)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return fmt.Errorf("resolve home: %w", err)
		}
		v.AddConfigPath(home)
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// FromViper snapshots v into Settings.
func FromViper(v *viper.Viper) (Settings, error) {
	s := Settings{
		Vault:              strings.TrimSpace(v.GetString(KeyVault)),
		DailyNoteFolder:    cleanFolder(v.GetString(KeyDailyNoteFolder)),
		DreamJournalFolder: cleanFolder(v.GetString(KeyDreamJournalFolder)),
		DreamSection:       v.GetString(KeyDreamSection),
		SubsectionPrefix:   v.GetString(KeySubsectionPrefix),
		LogLevel:           v.GetString(KeyLogLevel),
		LogFile:            strings.TrimSpace(v.GetString(KeyLogFile)),
		DictionaryURL:      strings.TrimSpace(v.GetString(KeyDictionaryURL)),
	}
	return s, s.Validate()
}

// Load reads cfgFile (or the default file) and returns the resulting Settings.
func Load(cfgFile string) (Settings, error) {
	v := New()
	if err := ReadFile(v, cfgFile); err != nil {
		return Settings{}, err
	}
	return FromViper(v)
}

// Validate reports settings that would make note operations misbehave.
func (s Settings) Validate() error {
	switch {
	case s.DailyNoteFolder == "":
		return fmt.Errorf("%s must not be empty", KeyDailyNoteFolder)
	case s.DreamJournalFolder == "":
		return fmt.Errorf("%s must not be empty", KeyDreamJournalFolder)
	case s.DreamSection == "":
		return fmt.Errorf("%s must not be empty", KeyDreamSection)
	case s.SubsectionPrefix == "":
		return fmt.Errorf("%s must not be empty", KeySubsectionPrefix)
	}
	return nil
}

func cleanFolder(folder string) string {
	folder = strings.TrimSpace(folder)
	if folder == "" {
		return ""
	}
	return strings.Trim(filepath.ToSlash(folder), "/")
}
