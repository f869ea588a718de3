package timesheet

import "errors"

// ErrInvalidToken is returned when a clock token is not a 3 or 4 digit H:MM/HH:MM value.
var ErrInvalidToken = errors.New("invalid time token")
