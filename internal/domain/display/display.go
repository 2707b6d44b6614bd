// Package display builds the names printed on start lists.
package display

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// missingMarker is the text spreadsheet exports use for empty numeric cells.
const missingMarker = "nan"

// Clean trims raw, normalizes it to NFC and maps the "nan" marker to "".
func Clean(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.EqualFold(s, missingMarker) {
		return ""
	}
	return norm.NFC.String(s)
}

// FullName returns "first last" with absent parts dropped.
func FullName(first, last string) string {
	return strings.TrimSpace(Clean(first) + " " + Clean(last))
}

// Participant returns "first last (club)", omitting the club suffix when the
// club is empty.
func Participant(first, last, club string) string {
	name := FullName(first, last)
	if c := Clean(club); c != "" {
		return name + " (" + c + ")"
	}
	return name
}

// TeamFullName returns "team - participant1 - participant2".
func TeamFullName(team, participant1, participant2 string) string {
	return team + " - " + participant1 + " - " + participant2
}
