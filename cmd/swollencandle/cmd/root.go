package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ortfero/swollencandle/config"
)

var rootCmd = &cobra.Command{
	Use:   "swollencandle",
	Short: "OHLCV candle aggregation and series toolkit",
	Long: `Swollencandle folds raw trade ticks into fixed-interval OHLCV candles
and works with the resulting series.

It provides tools for:
  - Aggregating trade files into candle files
  - Upscaling candle series to coarser periods
  - Merging candle series with conflict detection
  - Inspecting series coverage and gaps
  - Keeping named candle datasets in a local SQLite store`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

var (
	cfgFile string
	cfg     = config.Default()
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file overriding the built-in defaults")
	cobra.OnInitialize(loadConfig)
}

func loadConfig() {
	if cfgFile == "" {
		return
	}
	loaded, err := config.LoadFromFile(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	cfg = loaded
}
