// Public domain.

package orbit

// CList represents the plotted dynamical classes.  Order matters: an object
// belongs to the first class whose predicate accepts it, so the catch-all
// must stay last.
var CList = []struct {
	Abbr, Heading string
	IsClass       func(q, e, a float64) bool
}{
	{"NEA", "NEA (q < 1.3)", isNEA},
	{"MBA", "MBA (q >= 1.3, a = 1.8-3.3)", isMBA},
	{"Hil", "Hilda (q >= 1.3, a = 3.7-4.0, e = 0.07-0.30)", isHilda},
	{"JTr", "Trojan (q >= 1.3, a = 5.0-5.4)", isTrojan},
	{"TNO", "TNO (q >= 1.3, a >= 30.0)", isTNO},
	{"Oth", "Others", isOther},
}

// Classify returns the CList index for perihelion distance q,
// eccentricity e, and semi-major axis a.
func Classify(q, e, a float64) int {
	for cx, c := range CList {
		if c.IsClass(q, e, a) {
			return cx
		}
	}
	return len(CList) - 1
}

// 'NEA' objects
// q < 1.3
func isNEA(q, e, a float64) bool {
	return q < 1.3
}

// Main belt
// q >= 1.3 keeps the classes exclusive of NEAs
func isMBA(q, e, a float64) bool {
	return q >= 1.3 && a >= 1.8 && a <= 3.3
}

// Hildas
// 3.7 <= a <= 4.0, .07 <= e <= .3
func isHilda(q, e, a float64) bool {
	return q >= 1.3 && a >= 3.7 && a <= 4 && e >= .07 && e <= .3
}

// Jupiter trojans
// 5.0 <= a <= 5.4
func isTrojan(q, e, a float64) bool {
	return q >= 1.3 && a >= 5 && a <= 5.4
}

// Trans-Neptunian objects
// a >= 30
func isTNO(q, e, a float64) bool {
	return q >= 1.3 && a >= 30
}

func isOther(q, e, a float64) bool {
	return true
}
