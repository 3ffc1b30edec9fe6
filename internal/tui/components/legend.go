package components

import (
	"strings"

	"github.com/theirongolddev/spendview/internal/cli"
	"github.com/theirongolddev/spendview/internal/model"
	"github.com/theirongolddev/spendview/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

const (
	legendNameMax = 18
	legendBarMin  = 6
)

// Legend renders one row per category: a swatch in the slice color, the
// name, a share bar, the total and the share as a percentage. The row for
// highlight gets a marker and the dimmed accent background.
func Legend(totals []model.CategoryTotal, highlight string, width int) string {
	if len(totals) == 0 {
		return ""
	}
	t := theme.Active

	sum := 0.0
	nameW, amountW := 0, 0
	for _, ct := range totals {
		sum += ct.Amount
		if w := lipgloss.Width(ct.Category); w > nameW {
			nameW = w
		}
		if w := lipgloss.Width(cli.FormatAmount(ct.Amount)); w > amountW {
			amountW = w
		}
	}
	if nameW > legendNameMax {
		nameW = legendNameMax
	}

	// marker(2) swatch(2) name gap(1) bar gap(1) amount gap(1) pct(6)
	barW := width - nameW - amountW - 13
	if barW < legendBarMin {
		barW = legendBarMin
	}

	rows := make([]string, 0, len(totals))
	for i, ct := range totals {
		share := 0.0
		if sum > 0 {
			share = ct.Amount / sum
		}
		color := theme.SliceColor(i)

		active := ct.Category == highlight
		bg := t.Surface
		if active {
			bg = t.AccentDim
		}
		space := lipgloss.NewStyle().Background(bg)
		nameStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(bg)
		amountStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(bg)
		pctStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(bg)

		marker := space.Render("  ")
		if active {
			marker = lipgloss.NewStyle().Foreground(t.Accent).Background(bg).Bold(true).Render("▸ ")
			nameStyle = nameStyle.Foreground(t.TextPrimary).Bold(true)
		}

		swatch := lipgloss.NewStyle().Foreground(color).Background(bg).Render("■")
		name := cli.PadRight(cli.Truncate(ct.Category, nameW), nameW)
		amount := cli.PadLeft(cli.FormatAmount(ct.Amount), amountW)
		pct := cli.PadLeft(cli.FormatPercent(share), 6)

		rows = append(rows, marker+swatch+space.Render(" ")+
			nameStyle.Render(name)+space.Render(" ")+
			ShareBar(share, color, barW)+space.Render(" ")+
			amountStyle.Render(amount)+space.Render(" ")+
			pctStyle.Render(pct))
	}
	return strings.Join(rows, "\n")
}
