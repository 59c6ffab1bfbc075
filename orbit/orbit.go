// Public domain.

// Package orbit projects Keplerian orbital elements to heliocentric
// ecliptic positions.
//
// The projection advances the mean anomaly linearly from the osculating
// epoch, so it is suitable for plotting spatial distributions near the
// epoch, not for long-term propagation.
package orbit

import (
	"math"

	"github.com/soniakeys/astro"
	"github.com/soniakeys/coord"
	"github.com/soniakeys/unit"

	"github.com/mpaint/mpaint/mpcorb"
)

// MeanMotion returns mean motion in radians per day for semi-major axis a
// in AU, from Gauss's gravitational constant.
func MeanMotion(a float64) float64 {
	return astro.K / (a * math.Sqrt(a))
}

// Newton iteration count.  Convergence is quadratic once bracketed, and
// catalog eccentricities stay below 1.
const keplerIterations = 10

// KeplerE solves Kepler's equation M = E - e sin E for the eccentric
// anomaly E.  Arguments and result are in radians.
func KeplerE(M, e float64) float64 {
	E := M
	for i := 0; i < keplerIterations; i++ {
		s, c := math.Sincos(E)
		E -= (E - e*s - M) / (1 - e*c)
	}
	return E
}

// PositionAt returns the heliocentric ecliptic position of rec at Julian
// date jd, in AU, and the heliocentric distance r.
//
// The result is a pure function of rec and jd.
func PositionAt(rec *mpcorb.Record, jd float64) (p coord.Cart, r float64) {
	M := unit.AngleFromDeg(rec.MA).Rad() + MeanMotion(rec.A)*(jd-rec.EpochJD)
	E := KeplerE(math.Mod(M, 2*math.Pi), rec.E)

	// true anomaly from the half-angle relation
	sE2, cE2 := math.Sincos(E / 2)
	nu := 2 * math.Atan2(math.Sqrt(1+rec.E)*sE2, math.Sqrt(1-rec.E)*cE2)
	r = rec.A * (1 - rec.E*math.Cos(E))

	// rotate the argument of latitude through node and inclination
	su, cu := math.Sincos(unit.AngleFromDeg(rec.Peri).Rad() + nu)
	sn, cn := math.Sincos(unit.AngleFromDeg(rec.Node).Rad())
	si, ci := math.Sincos(unit.AngleFromDeg(rec.Inc).Rad())
	p.X = r * (cn*cu - sn*su*ci)
	p.Y = r * (sn*cu + cn*su*ci)
	p.Z = r * su * si
	return p, r
}
