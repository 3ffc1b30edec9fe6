package components

import (
	"math"
	"strings"

	"github.com/theirongolddev/spendview/internal/chart"
	"github.com/theirongolddev/spendview/internal/cli"
	"github.com/theirongolddev/spendview/internal/model"
	"github.com/theirongolddev/spendview/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// EmptyChartHint is drawn inside the axes when there is nothing to plot.
const EmptyChartHint = "nothing to draw"

const (
	pointGlyph = '●'
	lineGlyph  = '·'
)

// LineChart draws buckets as a connected line on a cell grid, with y tick
// labels on the left and date labels under the x axis. width and height are
// the outer size in cells. The axes are drawn even when there is no data.
func LineChart(buckets []model.DateBucket, color lipgloss.Color, width, height int) string {
	t := theme.Active

	// Tick text depends only on the data, so a unit-sized layout is enough
	// to size the label gutter.
	labelW := 1
	for _, tick := range chart.LayoutTimeSeries(buckets, 1, 1).YTicks {
		if w := lipgloss.Width(tick.Text); w > labelW {
			labelW = w
		}
	}

	plotW := width - labelW - 1
	if plotW < 4 {
		plotW = 4
	}
	plotH := height - 2 // x axis + date labels
	if plotH < 2 {
		plotH = 2
	}

	layout := chart.LayoutTimeSeries(buckets, float64(plotW-1), float64(plotH-1))

	grid := make([][]rune, plotH)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", plotW))
	}

	cells := make([][2]int, len(layout.Points))
	for i, p := range layout.Points {
		cells[i] = [2]int{clampInt(int(math.Round(p.X)), 0, plotW-1), clampInt(int(math.Round(p.Y)), 0, plotH-1)}
	}
	for i := 1; i < len(cells); i++ {
		drawLine(grid, cells[i-1], cells[i])
	}
	for _, c := range cells {
		grid[c[1]][c[0]] = pointGlyph
	}

	if layout.Empty() {
		hint := []rune(EmptyChartHint)
		if len(hint) <= plotW {
			start := (plotW - len(hint)) / 2
			copy(grid[plotH/2][start:], hint)
		}
	}

	tickRows := make(map[int]string, len(layout.YTicks))
	for _, tick := range layout.YTicks {
		tickRows[clampInt(int(math.Round(tick.Y)), 0, plotH-1)] = tick.Text
	}

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	plotStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface)
	if layout.Empty() {
		plotStyle = lipgloss.NewStyle().Foreground(t.Hint).Background(t.Surface)
	}

	var b strings.Builder
	for r := 0; r < plotH; r++ {
		label, ok := tickRows[r]
		tick := "│"
		if ok {
			tick = "┤"
		}
		b.WriteString(axisStyle.Render(cli.PadLeft(label, labelW) + tick))
		b.WriteString(plotStyle.Render(string(grid[r])))
		b.WriteString("\n")
	}

	b.WriteString(axisStyle.Render(strings.Repeat(" ", labelW) + "└" + strings.Repeat("─", plotW)))

	if labels := placeLabels(layout.XLabels, plotW); labels != "" {
		b.WriteString("\n")
		b.WriteString(axisStyle.Render(strings.Repeat(" ", labelW+1) + labels))
	}

	return b.String()
}

// placeLabels centers each label under its position and skips any that would
// overlap the previous one. The last label is preferred over its neighbour so
// the end of the range is always named.
func placeLabels(labels []model.AxisLabel, width int) string {
	if len(labels) == 0 {
		return ""
	}
	buf := []rune(strings.Repeat(" ", width))

	spanOf := func(l model.AxisLabel) (int, []rune) {
		text := []rune(l.Text)
		if len(text) > width {
			text = text[:width]
		}
		pos := int(math.Round(l.Pos)) - len(text)/2
		return clampInt(pos, 0, width-len(text)), text
	}

	lastPos, lastText := spanOf(labels[len(labels)-1])
	lastEnd := -1
	for _, l := range labels[:len(labels)-1] {
		pos, text := spanOf(l)
		if pos <= lastEnd || pos+len(text) >= lastPos {
			continue
		}
		copy(buf[pos:], text)
		lastEnd = pos + len(text)
	}
	copy(buf[lastPos:], lastText)

	return strings.TrimRight(string(buf), " ")
}

// drawLine marks the cells between a and b with Bresenham's algorithm.
func drawLine(grid [][]rune, a, b [2]int) {
	x0, y0 := a[0], a[1]
	x1, y1 := b[0], b[1]
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		grid[y0][x0] = lineGlyph
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
