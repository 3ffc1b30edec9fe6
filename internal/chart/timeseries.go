package chart

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/theirongolddev/spendview/internal/model"
)

// TickCount is the number of y-axis ticks: 0 through max in five steps.
const TickCount = 6

// LayoutTimeSeries maps date buckets onto a width x height plot area.
// Bucket i of n sits in the middle of the i-th of n equal slots; y is
// inverted so the largest amount touches the top. An empty series or an
// all-zero series yields an empty layout and the caller draws axes only.
// Missing days are not synthesized here.
func LayoutTimeSeries(buckets []model.DateBucket, width, height float64) model.TimeSeriesLayout {
	if len(buckets) == 0 || width <= 0 || height <= 0 {
		return model.TimeSeriesLayout{}
	}

	maxAmount := 0.0
	for _, b := range buckets {
		if b.Amount > maxAmount {
			maxAmount = b.Amount
		}
	}
	if maxAmount == 0 {
		return model.TimeSeriesLayout{}
	}

	n := float64(len(buckets))
	slot := width / n

	layout := model.TimeSeriesLayout{
		Points:  make([]model.Point, 0, len(buckets)),
		XLabels: make([]model.AxisLabel, 0, len(buckets)),
		YTicks:  make([]model.YTick, 0, TickCount),
		Max:     maxAmount,
	}

	for i, b := range buckets {
		x := float64(i)*slot + slot/2
		y := height - ratio(b.Amount, maxAmount)*height
		y = math.Max(0, math.Min(height, y))
		layout.Points = append(layout.Points, model.Point{X: x, Y: y})
		layout.XLabels = append(layout.XLabels, model.AxisLabel{Pos: x, Text: b.Label})
	}

	steps := float64(TickCount - 1)
	stepH := height / steps
	for i := 0; i < TickCount; i++ {
		f := maxAmount * float64(i) / steps
		if math.IsInf(f, 1) && !math.IsInf(maxAmount, 1) {
			f = maxAmount / steps * float64(i)
		}
		v, text := tickValue(f)
		layout.YTicks = append(layout.YTicks, model.YTick{
			Y:     height - float64(i)*stepH,
			Value: v,
			Text:  text,
		})
	}

	return layout
}

// maxTick is the largest float64 below 2^63, the int64 overflow point.
var maxTick = math.Nextafter(math.Exp2(63), 0)

// tickValue truncates v toward zero. Values past the int64 range clamp to
// math.MaxInt64 and are labelled in exponent form instead.
func tickValue(v float64) (int64, string) {
	if v > maxTick {
		return math.MaxInt64, strconv.FormatFloat(v, 'g', 3, 64)
	}
	n := int64(v)
	return n, humanize.Comma(n)
}
