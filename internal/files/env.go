package files

import (
	"os"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
)

const (
	// DefaultDirName defines the vault folder under the user's home directory.
	DefaultDirName = "Notes"
	// VaultEnv overrides the vault location.
	VaultEnv = "ALLOY_VAULT"
)

// ResolveBasePath determines which vault alloy works on, defaulting to ~/Notes.
// The location can be overridden by exporting ALLOY_VAULT.
func ResolveBasePath() (string, error) {
	if override, ok := os.LookupEnv(VaultEnv); ok {
		override = strings.TrimSpace(override)
		if override != "" {
			return normalizePath(override)
		}
	}

	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultDirName), nil
}

func normalizePath(input string) (string, error) {
	return homedir.Expand(input)
}
