package journal

import (
	"path"
	"strconv"
	"strings"
	"time"
)

const (
	isoDateLength = 10
	isoYearLength = 4
	markdownExt   = ".md"
)

// DreamEntry is a dated dream section ready to be appended to a year journal.
type DreamEntry struct {
	Title string
	Lines []string
}

// NewDreamEntry builds the entry for a note's dream section. Leading and
// trailing blank lines are dropped; ok is false when nothing is left.
func NewDreamEntry(prefix, basename string, section []string) (DreamEntry, bool) {
	lines := trimBlank(section)
	if len(lines) == 0 {
		return DreamEntry{}, false
	}
	return DreamEntry{Title: EntryTitle(prefix, basename), Lines: lines}, true
}

// EntryTitle is the heading used for a note's dreams, e.g. "### 2024-06-24".
// At most the first ten characters of basename are kept.
func EntryTitle(prefix, basename string) string {
	date := basename
	if r := []rune(basename); len(r) > isoDateLength {
		date = string(r[:isoDateLength])
	}
	return prefix + " " + date
}

// BuildEntry renders a title and its lines preceded by a blank line.
func BuildEntry(title string, lines []string) string {
	return "\n\n" + title + "\n" + strings.Join(lines, "\n")
}

// MergeIfAbsent decides whether an entry still needs to be appended to a
// journal. An existing line equal to title makes the merge a no-op.
func MergeIfAbsent(title string, lines, target []string) (bool, string) {
	for _, line := range target {
		if line == title {
			return false, ""
		}
	}
	return true, BuildEntry(title, lines)
}

// JournalYear takes the year from the first four characters of a note name,
// falling back to the year of now.
func JournalYear(basename string, now time.Time) string {
	if len(basename) >= isoYearLength {
		year := basename[:isoYearLength]
		if _, err := strconv.ParseUint(year, 10, 16); err == nil {
			return year
		}
	}
	return strconv.Itoa(now.Year())
}

// JournalName is the basename of a year journal, e.g. "2024 Dreams".
func JournalName(year string) string {
	return year + " Dreams"
}

// JournalPath is the vault path of the year journal inside folder.
func JournalPath(folder, year string) string {
	return path.Join(folder, JournalName(year)+markdownExt)
}

func trimBlank(lines []string) []string {
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	if start == end {
		return nil
	}
	out := make([]string, end-start)
	copy(out, lines[start:end])
	return out
}
