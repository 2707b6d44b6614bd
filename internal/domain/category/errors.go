package category

import "errors"

// Sentinel error kinds for this package.
var (
	ErrUnexpectedBirthYear = errors.New("unexpected birth year")
	ErrUnknownCombination  = errors.New("unknown category combination")
	ErrUnknownCategory     = errors.New("unknown category")
)
