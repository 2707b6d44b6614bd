package category

import "fmt"

// Shorthands for the table below.
const (
	mp = MiniPoussin
	po = Poussin
	pu = Pupille
	be = Benjamin
	mi = Minime
	ca = Cadet
	ju = Junior
	se = Senior
	ma = Master
)

// teamTable[a][b] is the category of a team whose members are a and b.
// A team only races as Master when both members are Master; every other
// pairing with a Master member races as Senior.
var teamTable = [count][count]Category{
	/*         mp  po  pu  be  mi  ca  ju  se  ma */
	mp: {mp, po, pu, be, mi, ca, ju, se, se},
	po: {po, po, pu, be, mi, ca, ju, se, se},
	pu: {pu, pu, pu, be, mi, ca, ju, se, se},
	be: {be, be, be, be, mi, ca, ju, se, se},
	mi: {mi, mi, mi, mi, mi, ca, ju, se, se},
	ca: {ca, ca, ca, ca, ca, ca, ju, se, se},
	ju: {ju, ju, ju, ju, ju, ju, ju, se, se},
	se: {se, se, se, se, se, se, se, se, se},
	ma: {se, se, se, se, se, se, se, se, ma},
}

// Combine returns the team category for members in categories a and b.
// The result does not depend on argument order.
func Combine(a, b Category) (Category, error) {
	if !a.Valid() || !b.Valid() {
		return 0, fmt.Errorf("%w: %s / %s", ErrUnknownCombination, a, b)
	}
	return teamTable[a][b], nil
}
