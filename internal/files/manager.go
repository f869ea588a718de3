package files

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

// Manager centralizes access to the vault on disk. All paths it accepts are
// relative to the vault root and use forward slashes.
type Manager struct {
	basePath string
}

// NewManager constructs a Manager rooted at the provided directory. If basePath
// is empty, it falls back to ~/Notes (or another location determined by
// ResolveBasePath).
func NewManager(basePath string) (*Manager, error) {
	var err error
	if basePath == "" {
		basePath, err = ResolveBasePath()
		if err != nil {
			return nil, err
		}
	} else {
		basePath, err = normalizePath(basePath)
		if err != nil {
			return nil, err
		}
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}

	return &Manager{basePath: abs}, nil
}

// BasePath returns the vault root.
func (m *Manager) BasePath() string {
	return m.basePath
}

// Abs resolves a vault-relative path to an absolute one. Absolute input is
// returned unchanged.
func (m *Manager) Abs(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(m.basePath, filepath.FromSlash(rel))
}

// Exists reports whether rel is present in the vault.
func (m *Manager) Exists(rel string) (bool, error) {
	_, err := os.Stat(m.Abs(rel))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// ReadLines returns the note's content split into lines.
func (m *Manager) ReadLines(rel string) ([]string, error) {
	data, err := os.ReadFile(m.Abs(rel))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoActiveNote, rel)
		}
		return nil, fmt.Errorf("read %s: %w", rel, err)
	}
	return splitLines(string(data)), nil
}

// ListNotes returns the markdown files directly inside folder, sorted by name.
// Subfolders are not descended into.
func (m *Manager) ListNotes(folder string) ([]Note, error) {
	entries, err := os.ReadDir(m.Abs(folder))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFolderNotFound, folder)
		}
		return nil, fmt.Errorf("list %s: %w", folder, err)
	}

	var notes []Note
	for _, entry := range entries {
		if entry.IsDir() || !isNote(entry.Name()) {
			continue
		}
		notes = append(notes, Note{Path: joinRel(folder, entry.Name())})
	}
	sort.Slice(notes, func(i, j int) bool { return notes[i].Path < notes[j].Path })
	return notes, nil
}

// EnsureFolder creates folder (and parents) when missing.
func (m *Manager) EnsureFolder(folder string) error {
	if err := os.MkdirAll(m.Abs(folder), dirPermissions); err != nil {
		return fmt.Errorf("create folder %s: %w", folder, err)
	}
	return nil
}

// EnsureFile creates an empty file at rel when missing, including its folder.
func (m *Manager) EnsureFile(rel string) error {
	path := m.Abs(rel)
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, filePermissions)
	if err != nil {
		return fmt.Errorf("create file %s: %w", rel, err)
	}
	return file.Close()
}

// Rename moves a note to a new vault path. The target folder must exist and
// the target must not.
func (m *Manager) Rename(from, to string) error {
	target := m.Abs(to)
	if _, err := os.Stat(target); err == nil {
		return fmt.Errorf("%w: %s", ErrNoteExists, to)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", to, err)
	}
	if err := os.Rename(m.Abs(from), target); err != nil {
		return fmt.Errorf("rename %s: %w", from, err)
	}
	return nil
}

// Append adds text to the end of rel, replacing the file atomically.
func (m *Manager) Append(rel, text string) error {
	path := m.Abs(rel)
	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("read %s: %w", rel, err)
	}
	return writeFile(path, string(data)+text)
}

func joinRel(folder, name string) string {
	if folder == "" {
		return name
	}
	return strings.TrimSuffix(folder, "/") + "/" + name
}

func splitLines(input string) []string {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	lines := strings.Split(input, "\n")
	// Remove the trailing empty element produced by Split when the input ends with a newline.
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func writeFile(path, content string) error {
	dir := filepath.Dir(path)
	temp, err := os.CreateTemp(dir, "alloy-*")
	if err != nil {
		return err
	}
	defer os.Remove(temp.Name())

	if _, err := temp.WriteString(content); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Sync(); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Close(); err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err == nil {
		if err := os.Chmod(temp.Name(), info.Mode()); err != nil {
			return err
		}
	} else if err := os.Chmod(temp.Name(), filePermissions); err != nil {
		return err
	}

	return os.Rename(temp.Name(), path)
}
