// Public domain.

package planets_test

import (
	"math"
	"testing"

	"github.com/mpaint/mpaint/planets"
)

const j2000 = 2451545.0

// Needs the VSOP87B data files; set the VSOP87 environment variable to
// their directory to run.
func TestPositions(t *testing.T) {
	ps, err := planets.Positions(j2000, "")
	if err != nil {
		t.Skip(err)
	}
	if len(ps) != 9 {
		t.Fatal("bodies:", len(ps))
	}
	for _, p := range ps {
		if p.Name == "Earth" {
			r := math.Sqrt(p.Pos.X*p.Pos.X + p.Pos.Y*p.Pos.Y + p.Pos.Z*p.Pos.Z)
			if math.Abs(r-1) > 0.05 {
				t.Fatal("Earth distance:", r)
			}
		}
		if len(p.Trace) < 2 {
			t.Fatal(p.Name, "trace too short:", len(p.Trace))
		}
	}
}
