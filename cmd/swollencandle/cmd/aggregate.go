package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ortfero/swollencandle/candle"
)

var aggregateCmd = &cobra.Command{
	Use:   "aggregate",
	Short: "Aggregate a trade file into a candle file",
	Long: `Read raw trades, fold them into fixed-interval OHLCV candles and write
the candle file. Trades must be ordered by time.

Example:
  swollencandle aggregate -i trades.csv -o candles.csv -p minute`,
	RunE: runAggregate,
}

var (
	aggregateIn     string
	aggregateOut    string
	aggregatePeriod string
)

func init() {
	rootCmd.AddCommand(aggregateCmd)

	aggregateCmd.Flags().StringVarP(&aggregateIn, "in", "i", "", "trade file to read (required)")
	aggregateCmd.Flags().StringVarP(&aggregateOut, "out", "o", "", "candle file to write (required)")
	aggregateCmd.Flags().StringVarP(&aggregatePeriod, "period", "p", "", "bucket period name (default from config)")
	aggregateCmd.MarkFlagRequired("in")
	aggregateCmd.MarkFlagRequired("out")
}

func runAggregate(cmd *cobra.Command, args []string) error {
	period, err := resolvePeriod(aggregatePeriod, cfg.Aggregate.Period)
	if err != nil {
		return err
	}

	trades, err := candle.ReadTradesFile(aggregateIn)
	if err != nil {
		return fmt.Errorf("read trades: %w", err)
	}

	candles := candle.FromTrades(trades, period.Seconds())
	if err := candle.WriteCandlesFile(aggregateOut, candles); err != nil {
		return fmt.Errorf("write candles: %w", err)
	}

	fmt.Printf("✓ %d trades → %d %s candles: %s\n",
		len(trades), len(candles), period, aggregateOut)
	return nil
}

// resolvePeriod parses the flag value, falling back to the config
// default when the flag was left empty.
func resolvePeriod(flag, fallback string) (candle.Period, error) {
	name := flag
	if name == "" {
		name = fallback
	}
	period, ok := candle.ParsePeriod(name)
	if !ok {
		return 0, fmt.Errorf("unknown period %q (minute|hour|day|month|year)", name)
	}
	return period, nil
}
