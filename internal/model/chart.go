package model

// PieSlice is one angular wedge of the pie chart.
// Angles are degrees, clockwise from the 3 o'clock position.
type PieSlice struct {
	Category   string
	StartAngle float64
	SweepAngle float64
}

// EndAngle returns StartAngle + SweepAngle.
func (s PieSlice) EndAngle() float64 {
	return s.StartAngle + s.SweepAngle
}

// Point is a position in chart-local coordinates (y grows downward).
type Point struct {
	X float64
	Y float64
}

// AxisLabel is a text label placed at Pos along an axis.
type AxisLabel struct {
	Pos  float64
	Text string
}

// YTick is one y-axis tick: its vertical position and amount.
type YTick struct {
	Y     float64
	Value int64
	Text  string
}

// TimeSeriesLayout is the plot-ready form of a bucket series.
type TimeSeriesLayout struct {
	Points  []Point
	XLabels []AxisLabel
	YTicks  []YTick
	Max     float64
}

// Empty reports whether there is nothing to plot.
func (l TimeSeriesLayout) Empty() bool {
	return len(l.Points) == 0
}
