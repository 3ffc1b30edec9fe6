package components

import (
	"math"
	"strings"

	"github.com/theirongolddev/spendview/internal/chart"
	"github.com/theirongolddev/spendview/internal/model"
	"github.com/theirongolddev/spendview/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// PieCanvas maps terminal cells to pie coordinates. A cell counts as half a
// unit wide and one unit tall so the ring stays round on screen.
type PieCanvas struct {
	OriginX, OriginY int // screen position of the top-left cell
	Cols, Rows       int
}

const pieMargin = 0.5

// Center is the pie center in pie units.
func (c PieCanvas) Center() model.Point {
	return model.Point{X: float64(c.Cols) / 4, Y: float64(c.Rows) / 2}
}

// Radius is the outer radius in pie units.
func (c PieCanvas) Radius() float64 {
	r := math.Min(float64(c.Cols)/4, float64(c.Rows)/2) - pieMargin
	if r < 0 {
		return 0
	}
	return r
}

// CellPoint returns the pie-space point at the middle of a cell.
func CellPoint(col, row int) model.Point {
	return model.Point{X: (float64(col) + 0.5) / 2, Y: float64(row) + 0.5}
}

// CategoryAt hit-tests the cell at (col, row) relative to the canvas.
func (c PieCanvas) CategoryAt(slices []model.PieSlice, col, row int) (string, bool) {
	if col < 0 || row < 0 || col >= c.Cols || row >= c.Rows {
		return "", false
	}
	return chart.HitTest(slices, CellPoint(col, row), c.Center(), c.Radius())
}

// CategoryAtScreen hit-tests an absolute screen position.
func (c PieCanvas) CategoryAtScreen(slices []model.PieSlice, x, y int) (string, bool) {
	return c.CategoryAt(slices, x-c.OriginX, y-c.OriginY)
}

// Render draws the ring cell by cell. Each cell takes the color of the slice
// its center falls in; the highlighted slice is drawn solid and the rest
// shaded. An empty highlight draws every slice solid.
func (c PieCanvas) Render(slices []model.PieSlice, highlight string) string {
	if c.Cols <= 0 || c.Rows <= 0 {
		return ""
	}

	index := make(map[string]int, len(slices))
	for i, s := range slices {
		index[s.Category] = i
	}

	blank := lipgloss.NewStyle().Background(theme.Active.Surface)

	var b strings.Builder
	for row := 0; row < c.Rows; row++ {
		run := ""
		runLen := 0
		flush := func() {
			if runLen == 0 {
				return
			}
			if run == "" {
				b.WriteString(blank.Render(strings.Repeat(" ", runLen)))
			} else {
				glyph := "█"
				if highlight != "" && run != highlight {
					glyph = "▓"
				}
				style := lipgloss.NewStyle().
					Foreground(theme.SliceColor(index[run])).
					Background(theme.Active.Surface)
				b.WriteString(style.Render(strings.Repeat(glyph, runLen)))
			}
			runLen = 0
		}

		for col := 0; col < c.Cols; col++ {
			cat, _ := c.CategoryAt(slices, col, row)
			if cat != run {
				flush()
				run = cat
			}
			runLen++
		}
		flush()

		if row < c.Rows-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
