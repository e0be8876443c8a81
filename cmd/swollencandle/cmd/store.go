package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ortfero/swollencandle/candle"
	"github.com/ortfero/swollencandle/store"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage named candle datasets in the local store",
	Long: `Keep candle series as named datasets in a local SQLite database.

Subcommands:
  save - store a candle file under a dataset name
  load - write a stored dataset back to a candle file
  list - list stored datasets
  rm   - delete a stored dataset

Examples:
  swollencandle store save -i candles.csv -n eurusd-m1
  swollencandle store load -n eurusd-m1 -o candles.csv
  swollencandle store list
  swollencandle store rm -n eurusd-m1`,
}

var storeSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Store a candle file under a dataset name",
	RunE:  runStoreSave,
}

var storeLoadCmd = &cobra.Command{
	Use:   "load",
	Short: "Write a stored dataset back to a candle file",
	RunE:  runStoreLoad,
}

var storeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored datasets",
	RunE:  runStoreList,
}

var storeRmCmd = &cobra.Command{
	Use:   "rm",
	Short: "Delete a stored dataset",
	RunE:  runStoreRm,
}

var (
	storeDB       string
	storeSaveIn   string
	storeSaveName string
	storeLoadName string
	storeLoadOut  string
	storeRmName   string
)

func init() {
	rootCmd.AddCommand(storeCmd)
	storeCmd.AddCommand(storeSaveCmd)
	storeCmd.AddCommand(storeLoadCmd)
	storeCmd.AddCommand(storeListCmd)
	storeCmd.AddCommand(storeRmCmd)

	storeCmd.PersistentFlags().StringVar(&storeDB, "db", "", "store database path (default from config)")

	storeSaveCmd.Flags().StringVarP(&storeSaveIn, "in", "i", "", "candle file to read (required)")
	storeSaveCmd.Flags().StringVarP(&storeSaveName, "name", "n", "", "dataset name (required)")
	storeSaveCmd.MarkFlagRequired("in")
	storeSaveCmd.MarkFlagRequired("name")

	storeLoadCmd.Flags().StringVarP(&storeLoadName, "name", "n", "", "dataset name (required)")
	storeLoadCmd.Flags().StringVarP(&storeLoadOut, "out", "o", "", "candle file to write (required)")
	storeLoadCmd.MarkFlagRequired("name")
	storeLoadCmd.MarkFlagRequired("out")

	storeRmCmd.Flags().StringVarP(&storeRmName, "name", "n", "", "dataset name (required)")
	storeRmCmd.MarkFlagRequired("name")
}

func openStore() (*store.Store, error) {
	path := storeDB
	if path == "" {
		path = cfg.Store.Path
	}
	s, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return s, nil
}

func runStoreSave(cmd *cobra.Command, args []string) error {
	candles, err := candle.ReadCandlesFile(storeSaveIn)
	if err != nil {
		return fmt.Errorf("read candles: %w", err)
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	ds, err := s.SaveCandles(storeSaveName, candles)
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}

	fmt.Printf("✓ saved %s: %d candles, period %ds (id %s)\n",
		ds.Name, ds.Candles, ds.Period, ds.ID)
	return nil
}

func runStoreLoad(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	candles, err := s.LoadCandles(storeLoadName)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}

	if err := candle.WriteCandlesFile(storeLoadOut, candles); err != nil {
		return fmt.Errorf("write candles: %w", err)
	}

	fmt.Printf("✓ %s: %d candles → %s\n", storeLoadName, len(candles), storeLoadOut)
	return nil
}

func runStoreList(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	datasets, err := s.ListDatasets()
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}
	if len(datasets) == 0 {
		fmt.Println("no datasets")
		return nil
	}

	for _, ds := range datasets {
		fmt.Printf("%-20s  period %8ds  %8d candles  %s  %s\n",
			ds.Name, ds.Period, ds.Candles,
			ds.Created.Format(time.RFC3339), ds.ID)
	}
	return nil
}

func runStoreRm(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.DeleteDataset(storeRmName); err != nil {
		return fmt.Errorf("rm: %w", err)
	}

	fmt.Printf("✓ deleted %s\n", storeRmName)
	return nil
}
