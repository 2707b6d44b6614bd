// Package birthdate parses the day-first birth dates found in registration
// exports and renders them back as dd/mm/yyyy.
package birthdate

import (
	"strings"
	"time"
)

// outputLayout is the start list rendering of a birth date.
const outputLayout = "02/01/2006"

// layouts accepted by Parse, tried in order. Day-first forms come before
// ISO so 03/04/2010 reads as 3 April.
var layouts = []string{
	"2/1/2006",
	"2-1-2006",
	"2.1.2006",
	"2/1/06",
	"2-1-06",
	"2.1.06",
	"2/1/2006 15:04",
	"2/1/2006 15:04:05",
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// Date is a calendar date that may be missing.
type Date struct {
	t     time.Time
	valid bool
}

// FromTime wraps t as a valid date, dropping the time of day.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), valid: true}
}

// Parse reads raw in any accepted layout. Empty or unparseable input
// yields a missing date.
func Parse(raw string) Date {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Date{}
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return FromTime(t)
		}
	}
	return Date{}
}

// Valid reports whether the date is present.
func (d Date) Valid() bool { return d.valid }

// Year returns the year of a valid date.
func (d Date) Year() (int, bool) {
	if !d.valid {
		return 0, false
	}
	return d.t.Year(), true
}

// Time returns the date at midnight UTC, or the zero time when missing.
func (d Date) Time() time.Time { return d.t }

// String renders dd/mm/yyyy, or "" for a missing date.
func (d Date) String() string {
	if !d.valid {
		return ""
	}
	return d.t.Format(outputLayout)
}
