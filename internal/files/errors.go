package files

import "errors"

var (
	// ErrNoActiveNote is returned when the note to operate on does not exist.
	ErrNoActiveNote = errors.New("no active note")
	// ErrFolderNotFound is returned when a listed folder is missing from the vault.
	ErrFolderNotFound = errors.New("folder not found")
	// ErrNoteExists is returned when a rename would overwrite another note.
	ErrNoteExists = errors.New("note already exists")
)
