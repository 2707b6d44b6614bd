package model

import "strconv"

// Participant is one member of a team as printed on the start list.
type Participant struct {
	Name      string
	Gender    string
	BirthDate string // dd/mm/yyyy or empty
	Club      string
	License   string
}

// Team is one start list row.
type Team struct {
	Bib          int
	Competition  string
	TeamName     string
	TeamGender   string // M, F or X
	TeamCategory string
	Participant1 Participant
	Participant2 Participant
	TeamFullName string
}

var header = []string{
	"bib",
	"competition",
	"teamName",
	"teamGender",
	"teamCategory",
	"nameParticipant1",
	"genderParticipant1",
	"birthDateParticipant1",
	"clubParticipant1",
	"licenseParticipant1",
	"nameParticipant2",
	"genderParticipant2",
	"birthDateParticipant2",
	"clubParticipant2",
	"licenseParticipant2",
	"teamFullName",
}

// Header returns the start list column names in output order.
func Header() []string {
	return append([]string(nil), header...)
}

// Record returns the team as a row matching Header.
func (t Team) Record() []string {
	return []string{
		strconv.Itoa(t.Bib),
		t.Competition,
		t.TeamName,
		t.TeamGender,
		t.TeamCategory,
		t.Participant1.Name,
		t.Participant1.Gender,
		t.Participant1.BirthDate,
		t.Participant1.Club,
		t.Participant1.License,
		t.Participant2.Name,
		t.Participant2.Gender,
		t.Participant2.BirthDate,
		t.Participant2.Club,
		t.Participant2.License,
		t.TeamFullName,
	}
}
