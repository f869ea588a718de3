package files

import (
	"path"
	"strings"
)

const markdownExt = ".md"

// Note identifies a markdown file by its vault-relative path.
type Note struct {
	// Path uses forward slashes, e.g. "Daily Notes/2024-06-24.md".
	Path string
}

// Name is the file name including the extension.
func (n Note) Name() string {
	return path.Base(n.Path)
}

// Basename is the file name without the extension, usually the note's date.
func (n Note) Basename() string {
	return strings.TrimSuffix(n.Name(), path.Ext(n.Path))
}

// Folder is the vault-relative folder holding the note.
func (n Note) Folder() string {
	dir := path.Dir(n.Path)
	if dir == "." {
		return ""
	}
	return dir
}

// NotePath joins a folder and a basename into a markdown note path.
func NotePath(folder, basename string) string {
	return path.Join(folder, basename+markdownExt)
}

func isNote(name string) bool {
	return strings.EqualFold(path.Ext(name), markdownExt)
}
