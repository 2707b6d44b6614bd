// Package gender derives the gender code of a duo team.
package gender

import "strings"

// Team gender codes.
const (
	Male   = "M"
	Female = "F"
	Mixed  = "X"
)

// Normalize returns the upper-cased, trimmed sex code.
func Normalize(sex string) string {
	return strings.ToUpper(strings.TrimSpace(sex))
}

// Combine returns M when both members are M, F when both are F and X for
// every other pairing, including missing or unknown codes.
func Combine(a, b string) string {
	a, b = Normalize(a), Normalize(b)
	switch {
	case a == Male && b == Male:
		return Male
	case a == Female && b == Female:
		return Female
	default:
		return Mixed
	}
}
