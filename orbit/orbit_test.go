// Public domain.

package orbit_test

import (
	"math"
	"testing"

	"github.com/mpaint/mpaint/mpcorb"
	"github.com/mpaint/mpaint/orbit"
)

func TestMeanMotion(t *testing.T) {
	// a = 1 AU gives very nearly one revolution per year
	period := 2 * math.Pi / orbit.MeanMotion(1)
	if math.Abs(period-365.25) > 0.02 {
		t.Fatal("period for a=1:", period)
	}
}

var keplerTestCases = []struct {
	m, e float64
}{
	{0, 0},
	{1, 0},
	{0.5, 0.076},
	{3, 0.3},
	{5.5, 0.7},
	{0.1, 0.96},
}

func TestKeplerE(t *testing.T) {
	for _, c := range keplerTestCases {
		E := orbit.KeplerE(c.m, c.e)
		if r := E - c.e*math.Sin(E); math.Abs(r-c.m) > 1e-12 {
			t.Fatalf("M, e = %g, %g: residual %g", c.m, c.e, r-c.m)
		}
	}
}

func TestKeplerECircular(t *testing.T) {
	if E := orbit.KeplerE(1.23, 0); E != 1.23 {
		t.Fatal("E for e=0:", E)
	}
}

const epochJD = 2459000.5

func TestPositionAtCircular(t *testing.T) {
	// circular orbit in the ecliptic, at perihelion at the epoch
	rec := &mpcorb.Record{Desig: "test", A: 2, EpochJD: epochJD}
	p, r := orbit.PositionAt(rec, epochJD)
	if math.Abs(r-2) > 1e-12 {
		t.Fatal("r:", r)
	}
	if math.Abs(p.X-2) > 1e-12 || math.Abs(p.Y) > 1e-12 || math.Abs(p.Z) > 1e-12 {
		t.Fatal("position:", p)
	}
}

func TestPositionDistanceBounds(t *testing.T) {
	rec := &mpcorb.Record{
		Desig: "test", A: 2.77, E: 0.076,
		Inc: 10.6, Node: 80.3, Peri: 73.7, MA: 162.7,
		EpochJD: epochJD,
	}
	for _, dt := range []float64{-400, -100, 0, 1, 250, 1000} {
		p, r := orbit.PositionAt(rec, epochJD+dt)
		if q := rec.Perihelion(); r < q-1e-9 || r > rec.A*(1+rec.E)+1e-9 {
			t.Fatalf("dt %g: r = %g outside [%g, %g]",
				dt, r, q, rec.A*(1+rec.E))
		}
		if m := math.Hypot(p.X, p.Y); m > r+1e-9 {
			t.Fatalf("dt %g: projected distance %g exceeds r %g", dt, m, r)
		}
	}
}

// Rerunning the projection must reproduce coordinates bit for bit.
func TestPositionAtDeterministic(t *testing.T) {
	rec := &mpcorb.Record{
		Desig: "test", A: 5.2, E: 0.15,
		Inc: 10.3, Node: 316, Peri: 50, MA: 100,
		EpochJD: epochJD,
	}
	p1, r1 := orbit.PositionAt(rec, epochJD+123.456)
	p2, r2 := orbit.PositionAt(rec, epochJD+123.456)
	if p1 != p2 || r1 != r2 {
		t.Fatal("projection not deterministic")
	}
}
