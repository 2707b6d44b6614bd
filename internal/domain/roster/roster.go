// Package roster turns athlete registrations into duo team start list rows.
package roster

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/okian/startlist/internal/domain/birthdate"
	"github.com/okian/startlist/internal/domain/category"
	"github.com/okian/startlist/internal/domain/display"
	"github.com/okian/startlist/internal/domain/gender"
	"github.com/okian/startlist/internal/domain/model"
)

const (
	teamSize        = 2
	defaultStartBib = 1
)

// Transformer builds start list rows from a roster.
type Transformer struct {
	startBib int
}

// New creates a Transformer with configuration options.
func New(opts ...Option) *Transformer {
	t := &Transformer{startBib: defaultStartBib}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// StartBib returns the bib the first team of a Build receives.
func (t *Transformer) StartBib() int { return t.startBib }

// member is an athlete with its derived fields.
type member struct {
	athlete model.Athlete
	team    string
	born    birthdate.Date
	cat     category.Category
}

// Build returns one team per team name, numbered from the configured start
// bib. The first malformed team aborts the whole build.
func (t *Transformer) Build(ctx context.Context, athletes []model.Athlete) ([]model.Team, error) {
	return t.BuildWith(ctx, athletes, NewCounter(t.startBib))
}

// BuildWith is Build with bibs drawn from c, so several rosters can share
// one numbering. c is only advanced for teams that are emitted.
func (t *Transformer) BuildWith(ctx context.Context, athletes []model.Athlete, c *Counter) ([]model.Team, error) {
	members, err := classify(athletes)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(members, func(a, b member) int {
		return cmp.Or(
			cmp.Compare(a.team, b.team),
			model.CompareID(a.athlete.ID, b.athlete.ID),
		)
	})

	var teams []model.Team
	for start := 0; start < len(members); {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		end := start + 1
		for end < len(members) && members[end].team == members[start].team {
			end++
		}
		group := members[start:end]
		start = end

		if len(group) != teamSize || group[0].team == "" {
			return nil, &MalformedTeamError{Team: group[0].team, Count: len(group)}
		}
		team, err := buildTeam(group[0], group[1], c)
		if err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}
	return teams, nil
}

// classify parses birth dates and individual categories, and rejects
// duplicate ids.
func classify(athletes []model.Athlete) ([]member, error) {
	members := make([]member, 0, len(athletes))
	seen := make(map[string]struct{}, len(athletes))
	for _, a := range athletes {
		id := display.Clean(a.ID)
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateAthlete, id)
		}
		seen[id] = struct{}{}

		born := birthdate.Parse(a.BirthDate)
		year, ok := born.Year()
		if !ok {
			return nil, fmt.Errorf("%w: athlete %q: birth date %q", ErrDateParse, id, a.BirthDate)
		}
		cat, err := category.Classify(year)
		if err != nil {
			return nil, fmt.Errorf("athlete %q: %w", id, err)
		}
		members = append(members, member{
			athlete: a,
			team:    display.Clean(a.Team),
			born:    born,
			cat:     cat,
		})
	}
	return members, nil
}

func buildTeam(p1, p2 member, c *Counter) (model.Team, error) {
	cat, err := category.Combine(p1.cat, p2.cat)
	if err != nil {
		return model.Team{}, fmt.Errorf("team %q: %w", p1.team, err)
	}
	a1, a2 := p1.athlete, p2.athlete
	return model.Team{
		Bib:          c.Next(),
		Competition:  display.Clean(a1.Competition),
		TeamName:     p1.team,
		TeamGender:   gender.Combine(a1.Sex, a2.Sex),
		TeamCategory: cat.String(),
		Participant1: participant(p1),
		Participant2: participant(p2),
		TeamFullName: display.TeamFullName(
			p1.team,
			display.Participant(a1.FirstName, a1.LastName, a1.Club),
			display.Participant(a2.FirstName, a2.LastName, a2.Club),
		),
	}, nil
}

func participant(m member) model.Participant {
	a := m.athlete
	return model.Participant{
		Name:      display.FullName(a.FirstName, a.LastName),
		Gender:    gender.Normalize(display.Clean(a.Sex)),
		BirthDate: m.born.String(),
		Club:      display.Clean(a.Club),
		License:   display.Clean(a.License),
	}
}
