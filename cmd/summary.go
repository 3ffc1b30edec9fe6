package cmd

import (
	"fmt"

	"github.com/theirongolddev/spendview/internal/chart"
	"github.com/theirongolddev/spendview/internal/cli"
	"github.com/theirongolddev/spendview/internal/pipeline"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Spending by category with pie angles",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	result, err := loadData(cfg)
	if err != nil {
		return err
	}

	if len(result.Entries) == 0 {
		fmt.Println("\n  No expenses found.")
		return nil
	}

	totals := pipeline.AggregateByCategory(result.Entries)
	slices := chart.LayoutSlices(totals)
	summary := pipeline.Summarize(result.Entries)

	fmt.Println()
	fmt.Println(cli.RenderTitle("SPENDING BY CATEGORY"))
	fmt.Println()
	fmt.Println(cli.RenderField("Source", result.Source))
	fmt.Println(cli.RenderField("Period", summary.First.Local().Format("2006-01-02")+" to "+summary.Last.Local().Format("2006-01-02")))
	fmt.Println()

	rows := make([][]string, 0, len(totals)+2)
	for i, ct := range totals {
		share := 0.0
		if summary.Total > 0 {
			share = ct.Amount / summary.Total
		}
		// An all-zero payload has no slices.
		start, sweep := "", ""
		if i < len(slices) {
			start = cli.FormatAngle(slices[i].StartAngle)
			sweep = cli.FormatAngle(slices[i].SweepAngle)
		}
		var daily []float64
		for _, b := range pipeline.AggregateByDate(result.Entries, ct.Category) {
			daily = append(daily, b.Amount)
		}
		rows = append(rows, []string{
			ct.Category,
			cli.FormatAmount(ct.Amount),
			cli.FormatPercent(share),
			start,
			sweep,
			cli.RenderSparkline(daily),
		})
	}
	rows = append(rows,
		[]string{"---"},
		[]string{"Total", cli.FormatAmount(summary.Total), cli.FormatPercent(1), "", "", ""},
	)

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Category", "Total", "Share", "Start", "Sweep", "Daily"},
		Rows:    rows,
	}))

	return nil
}
