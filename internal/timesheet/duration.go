package timesheet

import (
	"fmt"
	"strconv"
)

// Hours returns the elapsed hours between Start and End.
//
// When the end hour is numerically smaller than the start hour, 12 is added
// to the end hour ("11:00 - 1:30" is read as 11:00 to 13:30). The result is
// not rounded and may be negative for ranges the heuristic cannot fix.
func (e TimeEntry) Hours() float64 {
	startHour, startMinute := splitToken(e.Start)
	endHour, endMinute := splitToken(e.End)

	if endHour < startHour {
		endHour += 12
	}

	return float64(endHour-startHour) + float64(endMinute-startMinute)/60
}

// splitToken separates a token into hour and minute. Three digit tokens carry
// a single hour digit. Unparseable parts read as zero.
func splitToken(token string) (int, int) {
	hourDigits := 2
	if len(token) == 3 {
		hourDigits = 1
	}
	if len(token) < hourDigits {
		return 0, 0
	}
	hour, _ := strconv.Atoi(token[:hourDigits])
	minute, _ := strconv.Atoi(token[hourDigits:])
	return hour, minute
}

// FormatHours renders a total the way it is shown to users.
func FormatHours(total float64) string {
	return fmt.Sprintf("%.2f hours", total)
}
