package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ortfero/swollencandle/candle"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Report coverage of a candle file",
	Long: `Read a candle file and print a coverage summary: span, totals and any
gaps in the bucket sequence.

Example:
  swollencandle info -i candles.csv`,
	RunE: runInfo,
}

var infoIn string

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().StringVarP(&infoIn, "in", "i", "", "candle file to read (required)")
	infoCmd.MarkFlagRequired("in")
}

func runInfo(cmd *cobra.Command, args []string) error {
	candles, err := candle.ReadCandlesFile(infoIn)
	if err != nil {
		return fmt.Errorf("read candles: %w", err)
	}

	stats, err := candle.Stats(candles)
	if err != nil {
		return fmt.Errorf("stats: %w", err)
	}

	stats.WriteReport(os.Stdout)
	return nil
}
