package chart

import (
	"math"
	"testing"

	"github.com/theirongolddev/spendview/internal/model"
)

const angleTolerance = 1e-3

func totals(amounts ...float64) []model.CategoryTotal {
	names := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L"}
	out := make([]model.CategoryTotal, len(amounts))
	for i, a := range amounts {
		out[i] = model.CategoryTotal{Category: names[i], Amount: a}
	}
	return out
}

func TestLayoutSlices_SweepsSumTo360(t *testing.T) {
	cases := [][]float64{
		{1},
		{1, 1},
		{100, 50, 200},
		{0.01, 12345.67, 3, 3, 3},
		{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
	}

	for _, amounts := range cases {
		slices := LayoutSlices(totals(amounts...))
		sum := 0.0
		for _, s := range slices {
			sum += s.SweepAngle
		}
		if math.Abs(sum-360) > angleTolerance {
			t.Errorf("%v: sweep sum = %.6f, want 360", amounts, sum)
		}
	}
}

func TestLayoutSlices_Contiguous(t *testing.T) {
	slices := LayoutSlices(totals(3, 1, 4, 1, 5, 9, 2, 6))
	if slices[0].StartAngle != 0 {
		t.Fatalf("first StartAngle = %v, want 0", slices[0].StartAngle)
	}
	for i := 0; i < len(slices)-1; i++ {
		if got, want := slices[i].EndAngle(), slices[i+1].StartAngle; math.Abs(got-want) > 1e-9 {
			t.Errorf("slice %d ends at %v, slice %d starts at %v", i, got, i+1, want)
		}
	}
}

func TestLayoutSlices_Example(t *testing.T) {
	slices := LayoutSlices([]model.CategoryTotal{
		{Category: "Food", Amount: 150},
		{Category: "Travel", Amount: 200},
	})
	if len(slices) != 2 {
		t.Fatalf("len = %d, want 2", len(slices))
	}

	food, travel := slices[0], slices[1]
	if food.Category != "Food" || travel.Category != "Travel" {
		t.Fatalf("order = [%s %s], want [Food Travel]", food.Category, travel.Category)
	}
	if math.Abs(food.SweepAngle-154.2857) > angleTolerance {
		t.Errorf("Food sweep = %.4f, want ~154.2857", food.SweepAngle)
	}
	if math.Abs(travel.SweepAngle-205.7143) > angleTolerance {
		t.Errorf("Travel sweep = %.4f, want ~205.7143", travel.SweepAngle)
	}
	if food.StartAngle != 0 || math.Abs(travel.StartAngle-154.2857) > angleTolerance {
		t.Errorf("starts = [%.4f %.4f], want [0 ~154.2857]", food.StartAngle, travel.StartAngle)
	}
}

func TestLayoutSlices_Degenerate(t *testing.T) {
	if got := LayoutSlices(nil); len(got) != 0 {
		t.Errorf("LayoutSlices(nil) len = %d, want 0", len(got))
	}
	if got := LayoutSlices(totals(0, 0)); len(got) != 0 {
		t.Errorf("LayoutSlices(zeros) len = %d, want 0", len(got))
	}
}

func TestLayoutSlices_ZeroAmountKeepsPlace(t *testing.T) {
	slices := LayoutSlices(totals(1, 0, 1))
	if len(slices) != 3 {
		t.Fatalf("len = %d, want 3", len(slices))
	}
	if slices[1].SweepAngle != 0 || slices[1].StartAngle != 180 {
		t.Errorf("zero slice = %+v, want start 180 sweep 0", slices[1])
	}
}

func TestHitTest_MidAngle(t *testing.T) {
	center := model.Point{X: 100, Y: 100}
	radius := 80.0
	slices := LayoutSlices(totals(100, 50, 200, 10))

	for _, s := range slices {
		p := PointAt(center, 0.75*radius, MidAngle(s))
		got, ok := HitTest(slices, p, center, radius)
		if !ok || got != s.Category {
			t.Errorf("mid of %s (%.1f deg) -> %q,%v", s.Category, MidAngle(s), got, ok)
		}
	}
}

func TestHitTest_InsideHole(t *testing.T) {
	center := model.Point{X: 0, Y: 0}
	radius := 10.0
	slices := LayoutSlices(totals(1, 2, 3))

	for angle := 0.0; angle < 360; angle += 7.5 {
		p := PointAt(center, 0.3*radius, angle)
		if got, ok := HitTest(slices, p, center, radius); ok {
			t.Errorf("angle %.1f in hole -> %q, want none", angle, got)
		}
	}
	if _, ok := HitTest(slices, center, center, radius); ok {
		t.Error("exact center should not hit")
	}
}

func TestHitTest_OutsideRadius(t *testing.T) {
	center := model.Point{X: 0, Y: 0}
	slices := LayoutSlices(totals(1))
	if _, ok := HitTest(slices, model.Point{X: 10.01, Y: 0}, center, 10); ok {
		t.Error("point beyond outer radius should not hit")
	}
}

func TestHitTest_RingEdgesInclusive(t *testing.T) {
	center := model.Point{X: 0, Y: 0}
	slices := LayoutSlices(totals(1))
	for _, r := range []float64{5, 10} {
		if _, ok := HitTest(slices, model.Point{X: 0, Y: r}, center, 10); !ok {
			t.Errorf("point at distance %v should hit", r)
		}
	}
}

func TestHitTest_BoundaryGoesToEarlierSlice(t *testing.T) {
	// Two equal slices: A covers [0,180], B covers [180,360].
	slices := LayoutSlices(totals(1, 1))
	center := model.Point{}

	// 180 degrees is straight left of center.
	got, ok := HitTest(slices, model.Point{X: -8, Y: 0}, center, 10)
	if !ok || got != "A" {
		t.Errorf("boundary at 180 -> %q,%v, want A", got, ok)
	}

	// 0 degrees is straight right: only A's start matches.
	got, ok = HitTest(slices, model.Point{X: 8, Y: 0}, center, 10)
	if !ok || got != "A" {
		t.Errorf("boundary at 0 -> %q,%v, want A", got, ok)
	}
}

func TestHitTest_ClockwiseScreenAngles(t *testing.T) {
	// Four equal slices; with y growing downward, 90 degrees is straight down.
	slices := LayoutSlices(totals(1, 1, 1, 1))
	center := model.Point{}
	tests := []struct {
		p    model.Point
		want string
	}{
		{model.Point{X: 5, Y: 5}, "A"},   // 45: right-down
		{model.Point{X: -5, Y: 5}, "B"},  // 135: left-down
		{model.Point{X: -5, Y: -5}, "C"}, // 225: left-up
		{model.Point{X: 5, Y: -5}, "D"},  // 315: right-up
	}
	for _, tt := range tests {
		got, ok := HitTest(slices, tt.p, center, 10)
		if !ok || got != tt.want {
			t.Errorf("HitTest(%v) = %q,%v, want %q", tt.p, got, ok, tt.want)
		}
	}
}

func TestHitTest_NoSlices(t *testing.T) {
	if _, ok := HitTest(nil, model.Point{X: 7}, model.Point{}, 10); ok {
		t.Error("empty slices should never hit")
	}
	if _, ok := HitTest(LayoutSlices(totals(1)), model.Point{X: 7}, model.Point{}, 0); ok {
		t.Error("zero radius should never hit")
	}
}

func TestAngleOf_Range(t *testing.T) {
	center := model.Point{}
	for a := 0.0; a < 360; a += 0.5 {
		p := PointAt(center, 1, a)
		got := AngleOf(center, p)
		if got < 0 || got >= 360 {
			t.Fatalf("AngleOf(%v) = %v out of [0,360)", a, got)
		}
		diff := math.Abs(got - a)
		if diff > 1e-6 && math.Abs(diff-360) > 1e-6 {
			t.Errorf("AngleOf(PointAt(%v)) = %v", a, got)
		}
	}
}

func TestIndexOf(t *testing.T) {
	slices := LayoutSlices(totals(1, 2))
	if IndexOf(slices, "B") != 1 || IndexOf(slices, "Z") != -1 {
		t.Error("IndexOf returned wrong index")
	}
}

func TestLayoutSlices_HugeAmounts(t *testing.T) {
	// The plain sum of these overflows to +Inf.
	slices := LayoutSlices(totals(1e308, 1e308, 5e307))
	if len(slices) != 3 {
		t.Fatalf("len = %d, want 3", len(slices))
	}
	sum := 0.0
	for _, s := range slices {
		if math.IsNaN(s.SweepAngle) || math.IsInf(s.SweepAngle, 0) {
			t.Fatalf("slice %s sweep = %v", s.Category, s.SweepAngle)
		}
		sum += s.SweepAngle
	}
	if math.Abs(sum-360) > angleTolerance {
		t.Errorf("sweep sum = %.6f, want 360", sum)
	}
	if math.Abs(slices[0].SweepAngle-144) > angleTolerance || math.Abs(slices[2].SweepAngle-72) > angleTolerance {
		t.Errorf("sweeps = [%v %v %v], want [144 144 72]",
			slices[0].SweepAngle, slices[1].SweepAngle, slices[2].SweepAngle)
	}
}

func TestLayoutSlices_InfiniteTotal(t *testing.T) {
	slices := LayoutSlices(totals(math.Inf(1), 10))
	if len(slices) != 2 {
		t.Fatalf("len = %d, want 2", len(slices))
	}
	if slices[0].SweepAngle != 360 || slices[1].SweepAngle != 0 {
		t.Errorf("sweeps = [%v %v], want [360 0]", slices[0].SweepAngle, slices[1].SweepAngle)
	}
}
