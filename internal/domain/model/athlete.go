// Package model contains domain models passed between layers.
package model

import (
	"cmp"
	"strconv"
	"strings"
)

// Athlete is one registration row: a single athlete of a duo team.
type Athlete struct {
	ID          string // unique registration id
	Competition string // race label, e.g. "XS"
	Team        string // team name shared by both members
	License     string // federation license number, optional
	LastName    string
	FirstName   string
	Sex         string // M, F, or anything else when unknown
	BirthDate   string // raw text, day-first
	Club        string // optional
}

// CompareID orders athlete ids numerically when both are integers and
// lexically otherwise.
func CompareID(a, b string) int {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	na, errA := strconv.ParseInt(a, 10, 64)
	nb, errB := strconv.ParseInt(b, 10, 64)
	if errA == nil && errB == nil {
		return cmp.Compare(na, nb)
	}
	return strings.Compare(a, b)
}
