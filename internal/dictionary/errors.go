package dictionary

import "errors"

// Each lookup stage that can come back empty has its own error so callers can
// tell the user which one it was.
var (
	ErrNoWord       = errors.New("no word selected")
	ErrNoData       = errors.New("no data returned")
	ErrNoMeaning    = errors.New("no meaning returned")
	ErrNoDefinition = errors.New("no definition returned")
)
