// Public domain.

// Package prog implements the mpaint command.
package prog

import (
	"errors"
	"os"
	"time"

	"github.com/soniakeys/exit"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const versionString = "mpaint version 0.2 Go source."

var rootCmd = &cobra.Command{
	Use:     "mpaint",
	Short:   "plot the spatial distribution of minor planets",
	Version: versionString,
	Long: `Mpaint reads Minor Planet Center orbital-element catalogs and renders
the spatial distribution of minor planets as a figure viewed from the north
ecliptic pole, colored by dynamical class.`,
}

// Main runs the command.  Fatal errors terminate through exit.Handler.
func Main() {
	defer exit.Handler()
	readConfig()
	if err := rootCmd.Execute(); err != nil {
		exit.Log(err)
	}
}

// readConfig loads the optional mpaint.toml configuration file from the
// directory in MPAINT_CONFIG, or from the working directory.  A missing
// file is not an error; command line flags win over configured values.
func readConfig() {
	viper.SetConfigName("mpaint")
	viper.SetConfigType("toml")
	if dir := os.Getenv("MPAINT_CONFIG"); dir != "" {
		viper.AddConfigPath(dir)
	}
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			exit.Log(err)
		}
	}
}

// epoch layouts accepted on the command line, tried in order.
var epochLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseEpoch parses a command line date as UTC.
func parseEpoch(s string) (time.Time, error) {
	var err error
	for _, layout := range epochLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
