package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ortfero/swollencandle/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Generate or validate configuration files",
	Long: `Manage configuration files for the toolkit.

Subcommands:
  init     - Generate a default configuration file
  validate - Validate an existing configuration file

Examples:
  swollencandle config init -o my-config.yaml
  swollencandle config validate -f my-config.yaml`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default configuration file",
	RunE:  runConfigInit,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a configuration file",
	RunE:  runConfigValidate,
}

var (
	configInitOutput   string
	configValidatePath string
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)

	configInitCmd.Flags().StringVarP(&configInitOutput, "output", "o", "swollencandle.yaml", "output config file path")
	configValidateCmd.Flags().StringVarP(&configValidatePath, "file", "f", "", "path to config file (required)")
	configValidateCmd.MarkFlagRequired("file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if err := config.Default().SaveToFile(configInitOutput); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Printf("✓ created default configuration: %s\n", configInitOutput)
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	loaded, err := config.LoadFromFile(configValidatePath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Printf("✓ configuration valid: %s\n", configValidatePath)
	fmt.Printf("  store path: %s\n", loaded.Store.Path)
	fmt.Printf("  aggregate period: %s\n", loaded.Aggregate.Period)
	fmt.Printf("  upscale period: %s\n", loaded.Upscale.Period)
	return nil
}
