package sheet

import "errors"

// Sentinel kinds for roster reading errors.
var (
	ErrUnsupportedFormat = errors.New("unsupported roster format")
	ErrMissingColumn     = errors.New("missing column")
	ErrNoHeader          = errors.New("roster has no header row")
	ErrSheetNotFound     = errors.New("sheet not found")
)
