package timesheet

import "fmt"

// TimeEntry is a start/end pair of clock tokens taken from a single row.
// Tokens are 3 or 4 digits with the colon stripped, e.g. "900" or "1730".
type TimeEntry struct {
	Start string
	End   string
}

// NewTimeEntry validates both tokens before building an entry.
func NewTimeEntry(start, end string) (TimeEntry, error) {
	if err := validateToken(start); err != nil {
		return TimeEntry{}, err
	}
	if err := validateToken(end); err != nil {
		return TimeEntry{}, err
	}
	return TimeEntry{Start: start, End: end}, nil
}

func validateToken(token string) error {
	if len(token) != 3 && len(token) != 4 {
		return fmt.Errorf("%w: %q must be 3 or 4 digits", ErrInvalidToken, token)
	}
	for _, r := range token {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: %q contains a non-digit", ErrInvalidToken, token)
		}
	}
	hour, minute := splitToken(token)
	if hour > 23 {
		return fmt.Errorf("%w: hour %d out of range in %q", ErrInvalidToken, hour, token)
	}
	if minute > 59 {
		return fmt.Errorf("%w: minute %d out of range in %q", ErrInvalidToken, minute, token)
	}
	return nil
}
