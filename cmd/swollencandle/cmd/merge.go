package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ortfero/swollencandle/candle"
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge two candle files into one series",
	Long: `Union two candle files keyed by time. Overlapping times must carry
identical candles; conflicting overlaps fail the merge.

Example:
  swollencandle merge -a january.csv -b february.csv -o q1.csv`,
	RunE: runMerge,
}

var (
	mergeA   string
	mergeB   string
	mergeOut string
)

func init() {
	rootCmd.AddCommand(mergeCmd)

	mergeCmd.Flags().StringVarP(&mergeA, "first", "a", "", "first candle file (required)")
	mergeCmd.Flags().StringVarP(&mergeB, "second", "b", "", "second candle file (required)")
	mergeCmd.Flags().StringVarP(&mergeOut, "out", "o", "", "candle file to write (required)")
	mergeCmd.MarkFlagRequired("first")
	mergeCmd.MarkFlagRequired("second")
	mergeCmd.MarkFlagRequired("out")
}

func runMerge(cmd *cobra.Command, args []string) error {
	x, err := candle.ReadCandlesFile(mergeA)
	if err != nil {
		return fmt.Errorf("read %s: %w", mergeA, err)
	}
	y, err := candle.ReadCandlesFile(mergeB)
	if err != nil {
		return fmt.Errorf("read %s: %w", mergeB, err)
	}

	merged, err := candle.Merge(x, y)
	if err != nil {
		return fmt.Errorf("merge: %w", err)
	}

	if err := candle.WriteCandlesFile(mergeOut, merged); err != nil {
		return fmt.Errorf("write candles: %w", err)
	}

	fmt.Printf("✓ merged %d + %d → %d candles: %s\n",
		len(x), len(y), len(merged), mergeOut)
	return nil
}
