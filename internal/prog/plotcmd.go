// Public domain.

package prog

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/soniakeys/exit"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mpaint/mpaint/chart"
	"github.com/mpaint/mpaint/mpcorb"
	"github.com/mpaint/mpaint/planets"
)

var plotCfg chart.Config

var plotCmd = &cobra.Command{
	Use:   "plot DATE",
	Short: "render the catalog as a figure at the given UTC date",
	Long: `Plot projects every catalog record to its heliocentric ecliptic x-y
position at DATE (ISO 8601, UTC) and writes a figure colored by dynamical
class, with planet positions and orbits underlaid.

Records may be filtered to an inclusive heliocentric distance interval with
--rmin and --rmax; the filter and the plot extent (--range) are independent.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runPlot(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(plotCmd)
	f := plotCmd.Flags()
	f.Float64Var(&plotCfg.Range, "range", 6.5, "plot extent in AU (square from -range to +range)")
	f.Float64Var(&plotCfg.RMin, "rmin", 0, "minimum heliocentric distance to plot, AU")
	f.Float64Var(&plotCfg.RMax, "rmax", 0, "maximum heliocentric distance to plot, AU (0 disables the filter)")
	f.IntVar(&plotCfg.NObj, "nobj", 0, "number of objects to plot, 0 for all")
	f.StringVar(&plotCfg.Catalog, "mpcorb", "", "path to the catalog file")
	f.StringVar(&plotCfg.Out, "out", "MPCORB.jpg", "figure file name")
	f.StringVar(&plotCfg.VSOP87Dir, "vsop87", "", "VSOP87 data directory for the planet underlay")
}

func runPlot(cmd *cobra.Command, dateArg string) {
	t, err := parseEpoch(dateArg)
	if err != nil {
		exit.Log(err)
	}
	plotCfg.Epoch = t
	applyConfigured(cmd)

	recs, skipped, err := mpcorb.ReadFile(plotCfg.Catalog)
	if err != nil {
		exit.Log(err)
	}
	if skipped > 0 {
		log.Println(skipped, "catalog lines skipped")
	}
	if plotCfg.NObj > 0 && len(recs) > plotCfg.NObj {
		recs = recs[:plotCfg.NObj]
	}
	fmt.Println(len(recs), "objects read from", plotCfg.Catalog)
	if len(recs) > 0 {
		printEpochCheck(recs)
	}

	jd := julian.TimeToJD(t)
	pts, counts := chart.Build(recs, jd, &plotCfg)
	if len(pts) == 0 {
		log.Println("no objects to plot; rendering empty figure")
	}
	pl, err := planets.Positions(jd, plotCfg.VSOP87Dir)
	if err != nil {
		log.Println("planet underlay skipped:", err)
		pl = nil
	}
	if err := chart.Render(pts, counts, pl, &plotCfg); err != nil {
		exit.Log(err)
	}
	fmt.Println("figure saved as", plotCfg.Out)
}

// applyConfigured fills defaults from the optional config file for flags
// the user didn't set.
func applyConfigured(cmd *cobra.Command) {
	f := cmd.Flags()
	if plotCfg.Catalog == "" {
		dir := viper.GetString("data_dir")
		if dir == "" {
			dir = "data"
		}
		plotCfg.Catalog = filepath.Join(dir, "MPCORB.DAT")
	}
	if !f.Changed("out") && viper.IsSet("out") {
		plotCfg.Out = viper.GetString("out")
	}
	if !f.Changed("range") && viper.IsSet("range") {
		plotCfg.Range = viper.GetFloat64("range")
	}
	if plotCfg.VSOP87Dir == "" {
		plotCfg.VSOP87Dir = viper.GetString("vsop87_dir")
	}
}

// printEpochCheck reports the osculation epoch spread of the catalog.  The
// linear mean-anomaly advance degrades away from the epochs, so the spread
// is worth a glance before trusting a figure.
func printEpochCheck(recs []*mpcorb.Record) {
	min, max := recs[0].EpochJD, recs[0].EpochJD
	for _, r := range recs[1:] {
		if r.EpochJD < min {
			min = r.EpochJD
		}
		if r.EpochJD > max {
			max = r.EpochJD
		}
	}
	fmt.Println("osculation epochs:")
	fmt.Println("  earliest:", julian.JDToTime(min).UTC().Format("2006-01-02"))
	fmt.Println("  latest:  ", julian.JDToTime(max).UTC().Format("2006-01-02"))
}
