package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/theirongolddev/spendview/internal/cli"
	"github.com/theirongolddev/spendview/internal/config"
	"github.com/theirongolddev/spendview/internal/logging"
	"github.com/theirongolddev/spendview/internal/pipeline"

	"github.com/spf13/cobra"
)

var (
	flagDataFile string
	flagQuiet    bool
	flagVerbose  bool
	flagFillGaps bool
)

// logger is the CLI logger, replaced once flags are parsed.
var logger = logging.Discard()

var rootCmd = &cobra.Command{
	Use:   "spendview",
	Short: "Expense breakdown by category and day",
	Long: "Summarize a JSON list of expenses by category, chart one category's\n" +
		"daily spending, or explore both in an interactive dashboard.",
	RunE:              runSummary,
	PersistentPreRunE: setupLogging,
	SilenceUsage:      true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataFile, "data", "f", "", "Expenses JSON file (default: config, $"+config.DataEnvVar+", then bundled sample)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagFillGaps, "fill-gaps", false, "Show days without expenses as zero")
}

func logLevel() slog.Level {
	switch {
	case flagVerbose:
		return slog.LevelDebug
	case flagQuiet:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func setupLogging(_ *cobra.Command, _ []string) error {
	logger = logging.New(os.Stderr, logLevel(), "cli")
	logging.SetDefault(logger)
	return nil
}

// loadConfig loads config, returning defaults on error so commands can
// always run even if the file is corrupted.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		logger.Warn("config unreadable, using defaults", "path", config.Path(), "err", err)
		return config.DefaultConfig()
	}
	return cfg
}

// dataPath resolves the payload path: flag, then env/config. Empty means
// the bundled payload.
func dataPath(cfg config.Config) string {
	path := flagDataFile
	if path == "" {
		path = config.DataFile(cfg)
	}
	return expandHome(path)
}

func expandHome(path string) string {
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, rest)
		}
	}
	return path
}

// loadData is the shared data loading path used by all commands. A payload
// that fails to parse stops the command.
func loadData(cfg config.Config) (*pipeline.LoadResult, error) {
	result, err := pipeline.Load(dataPath(cfg))
	if err != nil {
		return nil, fmt.Errorf("loading expenses: %w", err)
	}

	logger.WithComponent("loader").Debug("payload loaded",
		"source", result.Source,
		"entries", len(result.Entries),
		"categories", result.Categories,
		"elapsed", result.LoadTime)

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Loaded %s expenses in %d categories from %s\n",
			cli.FormatNumber(int64(len(result.Entries))),
			result.Categories,
			result.Source,
		)
	}
	return result, nil
}

func fillGaps(cfg config.Config) bool {
	return flagFillGaps || cfg.Chart.FillMissingDays
}
