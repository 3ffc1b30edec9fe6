// Package cmd implements the spendview CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/spendview/internal/config"
	"github.com/theirongolddev/spendview/internal/pipeline"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Printf("  View state:  %s\n", config.StatePath())
	fmt.Printf("  Log file:    %s\n", config.LogPath())
	fmt.Println()

	fmt.Println("  [General]")
	if cfg.General.DataFile != "" {
		fmt.Printf("    Data file: %s\n", cfg.General.DataFile)
	} else {
		fmt.Println("    Data file: not set")
	}
	if env := os.Getenv(config.DataEnvVar); env != "" {
		fmt.Printf("    $%s:  %s (overrides config)\n", config.DataEnvVar, env)
	}
	resolved := dataPath(cfg)
	if resolved == "" {
		resolved = pipeline.BundledSource
	}
	fmt.Printf("    Using:     %s\n", resolved)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Chart]")
	fmt.Printf("    Fill missing days: %v\n", cfg.Chart.FillMissingDays)
	fmt.Println()

	fmt.Println("  [TUI]")
	fmt.Printf("    Animate: %v\n", cfg.TUI.Animate)
	fmt.Println()

	fmt.Println("  Run `spendview setup` to reconfigure.")
	return nil
}
