package journal

import (
	"fmt"
	"path"
	"strings"
	"time"
)

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// ParseDate reads an ISO style date such as a daily note basename.
func ParseDate(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

// WeekRange returns the Monday and Sunday of the week containing date.
func WeekRange(date time.Time) (time.Time, time.Time) {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location()).AddDate(0, 0, -(weekday - 1))
	return start, start.AddDate(0, 0, 6)
}

// WeekLabel names the Monday to Sunday week containing the date, for example
// "2024 06-24 thru 06-30". The year is the year of the Monday.
func WeekLabel(value string) (string, error) {
	date, err := ParseDate(value)
	if err != nil {
		return "", err
	}
	return FormatWeek(date), nil
}

// FormatWeek is WeekLabel for an already parsed date.
func FormatWeek(date time.Time) string {
	start, end := WeekRange(date)
	return fmt.Sprintf("%04d %s thru %s", start.Year(), start.Format("01-02"), end.Format("01-02"))
}

// WeekFolder is the vault path a daily note is moved into.
func WeekFolder(dailyNoteFolder, label string) string {
	return path.Join(dailyNoteFolder, label)
}
