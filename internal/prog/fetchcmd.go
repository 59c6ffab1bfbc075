// Public domain.

package prog

import (
	"fmt"
	"os"

	"github.com/soniakeys/exit"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mpaint/mpaint/mpcorb"
)

var fetchDir string

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "download the MPCORB and NEA catalogs",
	Long: `Fetch downloads MPCORB.DAT and NEAm00.txt from the Minor Planet
Center into the data directory.  The full catalog is large; expect the
download to take a while.`,
	Run: func(cmd *cobra.Command, args []string) {
		runFetch(cmd)
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)
	fetchCmd.Flags().StringVar(&fetchDir, "data", "", "directory to write the catalogs to")
}

func runFetch(cmd *cobra.Command) {
	if fetchDir == "" {
		if fetchDir = viper.GetString("data_dir"); fetchDir == "" {
			fetchDir = "data"
		}
	}
	if err := os.MkdirAll(fetchDir, 0o755); err != nil {
		exit.Log(err)
	}
	fmt.Println("fetching", mpcorb.MPCORBUrl)
	fn, err := mpcorb.FetchMPCORB(fetchDir)
	if err != nil {
		exit.Log(err)
	}
	fmt.Println("wrote", fn)
	fmt.Println("fetching", mpcorb.NEAUrl)
	if fn, err = mpcorb.FetchNEA(fetchDir); err != nil {
		exit.Log(err)
	}
	fmt.Println("wrote", fn)
}
