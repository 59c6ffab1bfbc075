// Public domain.

// Package planets computes the planet underlay for catalog figures:
// heliocentric ecliptic positions and orbit traces for Mercury through
// Neptune from the VSOP87 theory, plus Pluto.
package planets

import (
	"math"

	"github.com/soniakeys/coord"
	"github.com/soniakeys/meeus/v3/planetposition"
	"github.com/soniakeys/meeus/v3/pluto"
	"github.com/soniakeys/unit"
)

// Planet is one body of the underlay: its position at the figure epoch and
// a sampled orbit trace bracketing that epoch.
type Planet struct {
	Name  string
	Pos   coord.Cart
	Trace []coord.Cart
}

// Sampling spans cover roughly one orbital period each; steps keep the
// traces smooth without oversampling the slow outer planets.
var table = []struct {
	name       string
	v87        int     // planetposition body index, -1 for Pluto
	span, step float64 // days
}{
	{"Mercury", planetposition.Mercury, 120, 1},
	{"Venus", planetposition.Venus, 250, 1},
	{"Earth", planetposition.Earth, 370, 1},
	{"Mars", planetposition.Mars, 750, 2},
	{"Jupiter", planetposition.Jupiter, 4400, 10},
	{"Saturn", planetposition.Saturn, 11000, 20},
	{"Uranus", planetposition.Uranus, 31000, 50},
	{"Neptune", planetposition.Neptune, 60000, 100},
	{"Pluto", -1, 90000, 150},
}

// Positions returns underlay data for all nine bodies at Julian date jd.
//
// VSOP87 data files are loaded from vsopDir, or from the path in the
// VSOP87 environment variable when vsopDir is empty.  An error loading the
// data fails the whole underlay; callers may treat that as non-fatal and
// render without it.
func Positions(jd float64, vsopDir string) ([]Planet, error) {
	ps := make([]Planet, 0, len(table))
	for _, e := range table {
		at, err := positionFunc(e.v87, vsopDir)
		if err != nil {
			return nil, err
		}
		p := Planet{Name: e.name, Pos: at(jd)}
		for t := jd - e.span/2; t <= jd+e.span/2; t += e.step {
			p.Trace = append(p.Trace, at(t))
		}
		ps = append(ps, p)
	}
	return ps, nil
}

func positionFunc(v87 int, vsopDir string) (func(jd float64) coord.Cart, error) {
	if v87 < 0 {
		return func(jd float64) coord.Cart {
			return cart(pluto.Heliocentric(jd))
		}, nil
	}
	var v *planetposition.V87Planet
	var err error
	if vsopDir == "" {
		v, err = planetposition.LoadPlanet(v87)
	} else {
		v, err = planetposition.LoadPlanetPath(v87, vsopDir)
	}
	if err != nil {
		return nil, err
	}
	return func(jd float64) coord.Cart {
		return cart(v.Position2000(jd))
	}, nil
}

// cart converts heliocentric ecliptic spherical coordinates to cartesian.
func cart(l, b unit.Angle, r float64) coord.Cart {
	sb, cb := math.Sincos(b.Rad())
	sl, cl := math.Sincos(l.Rad())
	return coord.Cart{X: r * cb * cl, Y: r * cb * sl, Z: r * sb}
}
