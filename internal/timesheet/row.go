package timesheet

import (
	"regexp"
	"strings"
)

var (
	rangePattern = regexp.MustCompile(`[0-2]?[0-9]:?[0-5][0-9] ?- ?[0-2]?[0-9]:?[0-5][0-9]`)
	timePattern  = regexp.MustCompile(`[0-2]?[0-9]:?[0-5][0-9]`)
)

// MatchesRange reports whether row contains a "time - time" range anywhere.
func MatchesRange(row string) bool {
	return rangePattern.MatchString(row)
}

// ExtractTimes returns the first two clock tokens of a row that contains a
// time range, or nil when the row has no range.
//
// The range check and the token scan are separate passes. A stray time-like
// value before the real range is picked up as the start token; callers get
// the first two matches in the row, not necessarily the ones forming the range.
func ExtractTimes(row string) []string {
	if !MatchesRange(row) {
		return nil
	}
	return scanTimes(row, 2)
}

func scanTimes(row string, limit int) []string {
	matches := timePattern.FindAllString(row, limit)
	if len(matches) == 0 {
		return nil
	}
	times := make([]string, 0, len(matches))
	for _, match := range matches {
		times = append(times, strings.Replace(match, ":", "", 1))
	}
	return times
}
