package timesheet

// Entries returns the time entries found in lines, in document order.
// Blank rows, rows without a range and rows whose tokens are not valid clock
// times (hour above 23) are skipped.
func Entries(lines []string) []TimeEntry {
	var entries []TimeEntry
	for _, line := range lines {
		if line == "" {
			continue
		}
		times := ExtractTimes(line)
		if len(times) != 2 {
			continue
		}
		entry, err := NewTimeEntry(times[0], times[1])
		if err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// TotalHours sums the durations of every row that yields a start and end time.
func TotalHours(lines []string) float64 {
	var total float64
	for _, entry := range Entries(lines) {
		total += entry.Hours()
	}
	return total
}
