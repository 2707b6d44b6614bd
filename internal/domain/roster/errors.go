package roster

import (
	"errors"
	"fmt"
)

// Sentinel error kinds for this package.
var (
	ErrDateParse        = errors.New("date parse")
	ErrMalformedTeam    = errors.New("malformed team")
	ErrDuplicateAthlete = errors.New("duplicate athlete id")
)

// MalformedTeamError reports a team that does not have exactly two members.
type MalformedTeamError struct {
	Team  string
	Count int
}

func (e *MalformedTeamError) Error() string {
	return fmt.Sprintf("%s: team %q has %d members, want %d", ErrMalformedTeam, e.Team, e.Count, teamSize)
}

// Unwrap lets errors.Is match ErrMalformedTeam.
func (e *MalformedTeamError) Unwrap() error { return ErrMalformedTeam }
