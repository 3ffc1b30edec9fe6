package cmd

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/theirongolddev/spendview/internal/cli"
	"github.com/theirongolddev/spendview/internal/pipeline"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

const dailyBarWidth = 24

var dailyCmd = &cobra.Command{
	Use:               "daily <category>",
	Short:             "Daily spending for one category",
	Args:              cobra.ExactArgs(1),
	RunE:              runDaily,
	ValidArgsFunction: completeCategories,
}

func init() {
	rootCmd.AddCommand(dailyCmd)
}

func runDaily(_ *cobra.Command, args []string) error {
	category := args[0]

	cfg := loadConfig()
	result, err := loadData(cfg)
	if err != nil {
		return err
	}

	categories := pipeline.Categories(result.Entries)
	if !slices.Contains(categories, category) {
		return fmt.Errorf("unknown category %q (have: %s)", category, strings.Join(categories, ", "))
	}

	buckets := pipeline.AggregateByDateIn(result.Entries, category, time.Local)
	if fillGaps(cfg) {
		filled, err := pipeline.FillDateGaps(buckets, time.Local)
		if err != nil {
			logger.Warn("showing recorded days only", "category", category, "err", err)
		}
		buckets = filled
	}

	peak, total := 0.0, 0.0
	for _, b := range buckets {
		total += b.Amount
		if b.Amount > peak {
			peak = b.Amount
		}
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("DAILY SPENDING  %s", category)))
	fmt.Println()

	rows := make([][]string, 0, len(buckets)+2)
	for _, b := range buckets {
		rows = append(rows, []string{
			b.Date.Format("2006-01-02"),
			cli.FormatDayOfWeek(int(b.Date.Weekday())),
			cli.FormatAmount(b.Amount),
			padBar(cli.RenderHorizontalBar(b.Amount, peak, dailyBarWidth)),
		})
	}
	rows = append(rows,
		[]string{"---"},
		[]string{"Total", "", cli.FormatAmount(total), ""},
	)

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Day", "Amount", ""},
		Rows:    rows,
	}))

	return nil
}

// padBar right-pads a bar to the full bar width so right-aligned table cells
// still line bars up on the left.
func padBar(bar string) string {
	if gap := dailyBarWidth - lipgloss.Width(bar); gap > 0 {
		return bar + strings.Repeat(" ", gap)
	}
	return bar
}

// completeCategories offers the loaded categories for shell completion.
func completeCategories(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	result, err := pipeline.Load(dataPath(loadConfig()))
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return pipeline.Categories(result.Entries), cobra.ShellCompDirectiveNoFileComp
}
