// Public domain.

package prog

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/soniakeys/astro"
	"github.com/soniakeys/exit"
	"github.com/soniakeys/observation"
	sexa "github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mpaint/mpaint/mpcorb"
)

var (
	ephemEnd     string
	ephemCatalog string
)

var ephemCmd = &cobra.Command{
	Use:   "ephem DESIG DATE",
	Short: "print an astrometric ephemeris for one object",
	Long: `Ephem locates DESIG (packed designation) in the catalog and prints
its geocentric RA, declination, V magnitude, and solar elongation at DATE,
and at --end when given.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runEphem(args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(ephemCmd)
	f := ephemCmd.Flags()
	f.StringVar(&ephemEnd, "end", "", "also print a line for this UTC date")
	f.StringVar(&ephemCatalog, "mpcorb", "", "path to the catalog file")
}

func runEphem(desig, dateArg string) {
	start, err := parseEpoch(dateArg)
	if err != nil {
		exit.Log(err)
	}
	var end time.Time
	if ephemEnd != "" {
		if end, err = parseEpoch(ephemEnd); err != nil {
			exit.Log(err)
		}
	}
	if ephemCatalog == "" {
		dir := viper.GetString("data_dir")
		if dir == "" {
			dir = "data"
		}
		ephemCatalog = filepath.Join(dir, "MPCORB.DAT")
	}

	recs, _, err := mpcorb.ReadFile(ephemCatalog)
	if err != nil {
		exit.Log(err)
	}
	var rec *mpcorb.Record
	for _, r := range recs {
		if strings.TrimSpace(r.Desig) == desig {
			rec = r
			break
		}
	}
	if rec == nil {
		exit.Log("desig " + desig + " not found in " + ephemCatalog)
	}

	var el astro.Elements
	el.Axis = rec.A
	el.Ecc = rec.E
	el.Inc = unit.AngleFromDeg(rec.Inc)
	el.ArgP = unit.AngleFromDeg(rec.Peri)
	el.Node = unit.AngleFromDeg(rec.Node)
	el.TimeP = rec.EpochJD -
		(rec.MA*math.Pi/180)*rec.A*math.Sqrt(rec.A)/astro.K
	o := astro.NewOrbit(&el)

	earth, err := astro.LoadPlanet(astro.Earth)
	if err != nil {
		exit.Log(err)
	}
	sunPos := func(jde float64) (x, y, z, r float64) {
		return astro.SolarPositionJ2000(earth, jde)
	}

	fmt.Println(rec.Desig, " a:", rec.A, " e:", rec.E)
	fmt.Println("\n           Time      RA          Dec        V     Elongation")
	printLine := func(t time.Time) {
		ra, dec, elong, beta, r, delta := observation.AstrometricJ2000(
			astro.TimeToJD(t), sunPos, o.Position)
		vs := ""
		if v := observation.Vmag(rec.H, rec.G, beta, r, delta); v >= 6 {
			vs = fmt.Sprintf("%4.1f", v)
		}
		fmt.Printf("%s  %2v  %2v  %4s  %v\n",
			t.Format("2006-01-02 15:04:05"),
			sexa.FmtRA(unit.RA(ra)),
			sexa.FmtAngle(unit.Angle(dec)),
			vs,
			sexa.FmtAngle(unit.Angle(elong)))
	}
	printLine(start)
	if !end.IsZero() {
		printLine(end)
	}
}
