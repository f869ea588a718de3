package journal

import "errors"

// ErrInvalidDate is returned when a note name cannot be read as a calendar date.
var ErrInvalidDate = errors.New("invalid date")
