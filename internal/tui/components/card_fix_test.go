package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/theirongolddev/spendview/internal/model"
	"github.com/theirongolddev/spendview/internal/tui/theme"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestCardRowMatchesTallestCard(t *testing.T) {
	theme.SetActive("flexoki-dark")

	pie := ContentCard("Spending", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 30)
	legend := ContentCard("Legend", "Продукты", 40)

	pieLines := len(strings.Split(pie, "\n"))
	legendLines := len(strings.Split(legend, "\n"))
	if legendLines >= pieLines {
		t.Fatal("test setup error: legend card should be shorter than pie card")
	}

	joined := CardRow([]string{pie, legend})
	lines := strings.Split(joined, "\n")
	if len(lines) != pieLines {
		t.Errorf("joined height = %d, want %d", len(lines), pieLines)
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 70 {
			t.Errorf("line %d width = %d, want 70", i, w)
		}
	}
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	for _, total := range []int{80, 81, 119, 120} {
		widths := LayoutRow(total, 3)
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != total {
			t.Errorf("LayoutRow(%d, 3) sums to %d", total, sum)
		}
	}
	if LayoutRow(10, 0) != nil {
		t.Error("LayoutRow with n=0 should be nil")
	}
}

func TestMetricCardRowWidth(t *testing.T) {
	row := MetricCardRow([]Metric{
		{Label: "Total", Value: "12,345"},
		{Label: "Categories", Value: "8"},
		{Label: "Entries", Value: "53", Note: "01 Jun - 30 Jun"},
	}, 90)
	for i, line := range strings.Split(row, "\n") {
		if w := lipgloss.Width(line); w != 90 {
			t.Errorf("line %d width = %d, want 90", i, w)
		}
	}
}

// fg and bg return the TrueColor escape parameters lipgloss emits for c.
func fg(c lipgloss.Color) string {
	return termenv.TrueColor.Color(string(c)).Sequence(false)
}

func bg(c lipgloss.Color) string {
	return termenv.TrueColor.Color(string(c)).Sequence(true)
}

func TestMetricCardRowValueColor(t *testing.T) {
	theme.SetActive("flexoki-dark")
	peak := theme.Active.Peak

	row := MetricCardRow([]Metric{
		{Label: "Total", Value: "120"},
		{Label: "Peak day", Value: "80", Note: "05 Jan", Color: peak},
	}, 60)
	if !strings.Contains(row, fg(peak)) {
		t.Error("peak metric value not drawn in the peak color")
	}

	plain := MetricCardRow([]Metric{{Label: "Total", Value: "120"}}, 60)
	if strings.Contains(plain, fg(peak)) {
		t.Error("uncolored metric picked up the peak color")
	}
}

func TestLegendHighlightBackground(t *testing.T) {
	theme.SetActive("flexoki-dark")
	dim := theme.Active.AccentDim

	out := Legend([]model.CategoryTotal{
		{Category: "Food", Amount: 150},
		{Category: "Travel", Amount: 200},
	}, "Travel", 60)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("rows = %d, want 2", len(lines))
	}
	if strings.Contains(lines[0], bg(dim)) {
		t.Error("plain row uses the highlight background")
	}
	if !strings.Contains(lines[1], bg(dim)) {
		t.Error("highlighted row lacks the highlight background")
	}
}

func TestLineChartEmptyHintColor(t *testing.T) {
	theme.SetActive("flexoki-dark")
	out := LineChart(nil, theme.SliceColor(0), 40, 10)
	if !strings.Contains(out, fg(theme.Active.Hint)) {
		t.Error("empty chart hint not drawn in the hint color")
	}
}
