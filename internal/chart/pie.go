// Package chart holds the pure geometry behind the pie and line charts.
// Nothing here knows about terminals or colors; callers supply sizes in
// whatever units their drawing surface uses.
package chart

import (
	"math"

	"github.com/theirongolddev/spendview/internal/model"
)

// InnerRadiusRatio is the size of the pie's empty center relative to its
// outer radius. Points inside the hole never hit a slice.
const InnerRadiusRatio = 0.5

// LayoutSlices converts category totals into contiguous slices, in input
// order, starting at 0 degrees (3 o'clock) and running clockwise.
// A zero grand total yields no slices. Amounts are scaled by the largest one
// before summing so totals near the float64 limit still split 360 degrees.
func LayoutSlices(totals []model.CategoryTotal) []model.PieSlice {
	maxAmount := 0.0
	for _, t := range totals {
		maxAmount = math.Max(maxAmount, t.Amount)
	}
	if maxAmount <= 0 {
		return []model.PieSlice{}
	}

	var sum float64
	for _, t := range totals {
		sum += ratio(t.Amount, maxAmount)
	}

	slices := make([]model.PieSlice, 0, len(totals))
	start := 0.0
	for _, t := range totals {
		sweep := 360 * ratio(t.Amount, maxAmount) / sum
		slices = append(slices, model.PieSlice{
			Category:   t.Category,
			StartAngle: start,
			SweepAngle: sweep,
		})
		start += sweep
	}
	return slices
}

// ratio returns a/maxAmount in [0,1]. An infinite maximum shares the whole
// range among the infinite amounts.
func ratio(a, maxAmount float64) float64 {
	if math.IsInf(maxAmount, 1) {
		if math.IsInf(a, 1) {
			return 1
		}
		return 0
	}
	if a <= 0 {
		return 0
	}
	return a / maxAmount
}

// Annulus is the ring between the inner hole and the outer edge of the pie.
type Annulus struct {
	Center model.Point
	Outer  float64
}

// Contains reports whether p lies inside the ring, edges included.
func (a Annulus) Contains(p model.Point) bool {
	d := math.Hypot(p.X-a.Center.X, p.Y-a.Center.Y)
	return d <= a.Outer && d >= a.Outer*InnerRadiusRatio
}

// HitTest returns the category of the slice under point, or false when the
// point is outside the ring or no slice covers its angle. Intervals are
// inclusive on both ends and scanned in order, so a point exactly on a
// boundary belongs to the earlier slice.
func HitTest(slices []model.PieSlice, point, center model.Point, outerRadius float64) (string, bool) {
	if outerRadius <= 0 {
		return "", false
	}
	ring := Annulus{Center: center, Outer: outerRadius}
	if !ring.Contains(point) {
		return "", false
	}
	return SliceAtAngle(slices, AngleOf(center, point))
}

// SliceAtAngle returns the category whose interval contains angle.
func SliceAtAngle(slices []model.PieSlice, angle float64) (string, bool) {
	for _, s := range slices {
		if angle >= s.StartAngle && angle <= s.EndAngle() {
			return s.Category, true
		}
	}
	return "", false
}

// AngleOf returns the clockwise angle of p around center in [0, 360),
// measured from the positive x axis with y growing downward.
func AngleOf(center, p model.Point) float64 {
	deg := math.Atan2(p.Y-center.Y, p.X-center.X) * 180 / math.Pi
	deg = math.Mod(deg+360, 360)
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// MidAngle returns the angle halfway through the slice.
func MidAngle(s model.PieSlice) float64 {
	return s.StartAngle + s.SweepAngle/2
}

// PointAt returns the point at radius and angle (degrees) from center.
func PointAt(center model.Point, radius, angle float64) model.Point {
	rad := angle * math.Pi / 180
	return model.Point{
		X: center.X + radius*math.Cos(rad),
		Y: center.Y + radius*math.Sin(rad),
	}
}

// IndexOf returns the position of category in slices, or -1.
func IndexOf(slices []model.PieSlice, category string) int {
	for i, s := range slices {
		if s.Category == category {
			return i
		}
	}
	return -1
}
