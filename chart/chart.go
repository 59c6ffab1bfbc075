// Public domain.

// Package chart renders the spatial distribution of minor planets as a
// raster figure: one scatter series per dynamical class over a planet
// underlay, viewed from the north ecliptic pole.
package chart

import (
	"fmt"
	"image/color"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/mpaint/mpaint/mpcorb"
	"github.com/mpaint/mpaint/orbit"
	"github.com/mpaint/mpaint/planets"
)

// Config holds the options of one plotting run.  It is constructed once
// per invocation and read-only afterwards.
type Config struct {
	Epoch      time.Time // reference epoch, UTC
	Range      float64   // square plot extent, -Range to +Range AU
	RMin, RMax float64   // inclusive heliocentric distance filter, AU
	NObj       int       // max records to plot, 0 for all
	Catalog    string    // input catalog path
	Out        string    // output image file
	VSOP87Dir  string    // VSOP87 data directory for the planet underlay
}

// Filtered reports whether the distance filter is enabled.
func (c *Config) Filtered() bool { return c.RMax > 0 }

// Point is one plotted object.
type Point struct {
	X, Y  float64
	Class int // index into orbit.CList
}

// Build projects records to plot points at Julian date jd.
//
// Records whose heliocentric distance falls outside [RMin, RMax], bounds
// inclusive, are dropped when the filter is enabled.  Counts holds the
// number of kept objects per orbit.CList entry.  The result depends only
// on recs, jd, and cfg.
func Build(recs []*mpcorb.Record, jd float64, cfg *Config) (pts []Point, counts []int) {
	counts = make([]int, len(orbit.CList))
	for _, rec := range recs {
		p, r := orbit.PositionAt(rec, jd)
		if cfg.Filtered() && (r < cfg.RMin || r > cfg.RMax) {
			continue
		}
		cx := orbit.Classify(rec.Perihelion(), rec.E, rec.A)
		counts[cx]++
		pts = append(pts, Point{X: p.X, Y: p.Y, Class: cx})
	}
	return pts, counts
}

// Series colors, in orbit.CList order.
var classColors = []color.RGBA{
	{R: 0xd6, G: 0x28, B: 0x28, A: 0xff}, // NEA red
	{R: 0x2e, G: 0x8b, B: 0x2e, A: 0xff}, // MBA green
	{R: 0xff, G: 0x8c, B: 0x00, A: 0xff}, // Hilda orange
	{R: 0x1f, G: 0x4e, B: 0xd6, A: 0xff}, // Trojan blue
	{R: 0x87, G: 0xce, B: 0xeb, A: 0xff}, // TNO sky blue
	{R: 0x80, G: 0x80, B: 0x80, A: 0xff}, // others gray
}

var (
	traceColor  = color.RGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xff}
	planetColor = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	sunColor    = color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}
)

// Render writes the figure for pts and the planet underlay to cfg.Out.
// The image format follows the file extension; jpg and png are useful.
//
// An empty point set is not an error: the frame, underlay, and legend with
// zero counts are still drawn, so reruns on filtered-out catalogs produce
// a valid, empty figure.
func Render(pts []Point, counts []int, pl []planets.Planet, cfg *Config) error {
	p := plot.New()
	p.Title.Text = cfg.Epoch.UTC().Format("2006-01-02T15:04:05") + " UTC"
	p.X.Label.Text = "X [AU]"
	p.Y.Label.Text = "Y [AU]"
	p.X.Min, p.X.Max = -cfg.Range, cfg.Range
	p.Y.Min, p.Y.Max = -cfg.Range, cfg.Range

	byClass := make([]plotter.XYs, len(orbit.CList))
	for _, pt := range pts {
		byClass[pt.Class] = append(byClass[pt.Class], plotter.XY{X: pt.X, Y: pt.Y})
	}
	for cx, xys := range byClass {
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return err
		}
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		sc.GlyphStyle.Color = classColors[cx]
		sc.GlyphStyle.Radius = vg.Points(0.5)
		p.Add(sc)
		p.Legend.Add(fmt.Sprintf("%s: N=%d", orbit.CList[cx].Heading, counts[cx]), sc)
	}

	for _, pb := range pl {
		xys := make(plotter.XYs, len(pb.Trace))
		for i, c := range pb.Trace {
			xys[i] = plotter.XY{X: c.X, Y: c.Y}
		}
		ln, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		ln.LineStyle.Color = traceColor
		ln.LineStyle.Width = vg.Points(0.5)
		p.Add(ln)

		mk, err := plotter.NewScatter(plotter.XYs{{X: pb.Pos.X, Y: pb.Pos.Y}})
		if err != nil {
			return err
		}
		mk.GlyphStyle.Shape = draw.CircleGlyph{}
		mk.GlyphStyle.Color = planetColor
		mk.GlyphStyle.Radius = vg.Points(2)
		p.Add(mk)
	}

	sun, err := plotter.NewScatter(plotter.XYs{{X: 0, Y: 0}})
	if err != nil {
		return err
	}
	sun.GlyphStyle.Shape = draw.CircleGlyph{}
	sun.GlyphStyle.Color = sunColor
	sun.GlyphStyle.Radius = vg.Points(3)
	p.Add(sun)

	// square canvas keeps the AU scale equal on both axes
	return p.Save(8*vg.Inch, 8*vg.Inch, cfg.Out)
}
