package journal

import "strings"

// ExtractSection returns the lines following the first line equal to marker,
// up to the next line starting with prefix. When no such heading follows, the
// section runs to the end of the document and includes the final line.
// A missing marker or an empty range yields nil.
func ExtractSection(lines []string, marker, prefix string) []string {
	start := -1
	for i, line := range lines {
		if line == marker {
			start = i
			break
		}
	}
	if start == -1 {
		return nil
	}

	end := -1
	for i := start + 1; i < len(lines); i++ {
		if strings.HasPrefix(lines[i], prefix) {
			end = i
			break
		}
		if i == len(lines)-1 {
			end = i + 1
		}
	}
	if end <= start+1 {
		return nil
	}

	section := make([]string, end-start-1)
	copy(section, lines[start+1:end])
	return section
}
