package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ortfero/swollencandle/candle"
)

var upscaleCmd = &cobra.Command{
	Use:   "upscale",
	Short: "Re-aggregate a candle file to a coarser period",
	Long: `Read a constant-period candle file and roll it up into a coarser named
period. The target must be an exact multiple of the source period.

Example:
  swollencandle upscale -i candles.csv -o hourly.csv -p hour`,
	RunE: runUpscale,
}

var (
	upscaleIn     string
	upscaleOut    string
	upscalePeriod string
)

func init() {
	rootCmd.AddCommand(upscaleCmd)

	upscaleCmd.Flags().StringVarP(&upscaleIn, "in", "i", "", "candle file to read (required)")
	upscaleCmd.Flags().StringVarP(&upscaleOut, "out", "o", "", "candle file to write (required)")
	upscaleCmd.Flags().StringVarP(&upscalePeriod, "period", "p", "", "target period name (default from config)")
	upscaleCmd.MarkFlagRequired("in")
	upscaleCmd.MarkFlagRequired("out")
}

func runUpscale(cmd *cobra.Command, args []string) error {
	unit, err := resolvePeriod(upscalePeriod, cfg.Upscale.Period)
	if err != nil {
		return err
	}

	source, err := candle.ReadCandlesFile(upscaleIn)
	if err != nil {
		return fmt.Errorf("read candles: %w", err)
	}

	result, err := candle.Upscale(source, unit)
	if err != nil {
		return fmt.Errorf("upscale: %w", err)
	}

	if err := candle.WriteCandlesFile(upscaleOut, result); err != nil {
		return fmt.Errorf("write candles: %w", err)
	}

	fmt.Printf("✓ %d candles → %d %s candles: %s\n",
		len(source), len(result), unit, upscaleOut)
	return nil
}
