package cmd

import (
	"fmt"
	"log/slog"

	"github.com/theirongolddev/spendview/internal/config"
	"github.com/theirongolddev/spendview/internal/logging"
	"github.com/theirongolddev/spendview/internal/tui"
	"github.com/theirongolddev/spendview/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var flagNoAnimate bool

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive TUI dashboard",
	RunE:  runTUI,
}

func init() {
	tuiCmd.Flags().BoolVar(&flagNoAnimate, "no-animate", false, "Switch views instantly")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	theme.SetActive(cfg.Appearance.Theme)

	result, err := loadData(cfg)
	if err != nil {
		return err
	}

	// stdout belongs to the renderer, so the dashboard logs to a file.
	level := slog.LevelInfo
	if flagVerbose {
		level = slog.LevelDebug
	}
	tuiLog, closer, err := logging.OpenFile(config.LogPath(), level, "tui")
	if err != nil {
		logger.Warn("dashboard log unavailable", "path", config.LogPath(), "err", err)
		tuiLog = logging.Discard()
	} else {
		defer closer.Close()
	}

	snap, err := config.LoadState()
	if err != nil {
		tuiLog.Warn("ignoring saved view state", "err", err)
	}

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(tui.Options{
		Entries:  result.Entries,
		Source:   result.Source,
		FillGaps: fillGaps(cfg),
		Animate:  cfg.TUI.Animate && !flagNoAnimate,
		State:    snap,
		Logger:   tuiLog,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	if a, ok := final.(tui.App); ok {
		if err := config.SaveState(a.ViewState().Snapshot()); err != nil {
			logger.Warn("could not save view state", "path", config.StatePath(), "err", err)
		}
	}
	return nil
}
