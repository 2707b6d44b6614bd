// Package category classifies athletes into age categories and combines
// two individual categories into the category of a duo team.
package category

import (
	"fmt"
	"strings"
)

// Category is an age category. Values are ordered from youngest to oldest.
type Category int

// Age categories, youngest first.
const (
	MiniPoussin Category = iota
	Poussin
	Pupille
	Benjamin
	Minime
	Cadet
	Junior
	Senior
	Master

	count = int(Master) + 1
)

var labels = [count]string{
	MiniPoussin: "Mini-Poussin",
	Poussin:     "Poussin",
	Pupille:     "Pupille",
	Benjamin:    "Benjamin",
	Minime:      "Minime",
	Cadet:       "Cadet",
	Junior:      "Junior",
	Senior:      "Senior",
	Master:      "Master",
}

// band is an inclusive range of birth years mapped to a category.
type band struct {
	from, to int
	cat      Category
}

// masterUpTo is the last birth year classified as Master.
const masterUpTo = 1985

var bands = []band{
	{2018, 2019, MiniPoussin},
	{2016, 2017, Poussin},
	{2014, 2015, Pupille},
	{2012, 2013, Benjamin},
	{2010, 2011, Minime},
	{2008, 2009, Cadet},
	{2006, 2007, Junior},
	{1986, 2005, Senior},
}

// All returns every category in order, youngest first.
func All() []Category {
	out := make([]Category, count)
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool { return c >= 0 && int(c) < count }

// String returns the display label, e.g. "Mini-Poussin".
func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return labels[c]
}

// Parse returns the category whose label matches s (case-insensitive).
func Parse(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for i, l := range labels {
		if strings.EqualFold(l, s) {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Classify maps a birth year to its age category.
func Classify(birthYear int) (Category, error) {
	if birthYear <= masterUpTo {
		return Master, nil
	}
	for _, b := range bands {
		if birthYear >= b.from && birthYear <= b.to {
			return b.cat, nil
		}
	}
	return 0, fmt.Errorf("%w: %d", ErrUnexpectedBirthYear, birthYear)
}
