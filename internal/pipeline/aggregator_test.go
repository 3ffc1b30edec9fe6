package pipeline

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/theirongolddev/spendview/internal/model"
)

// t0 is 2021-06-08 10:00 UTC.
const t0 int64 = 1623146400

const day int64 = 86400

func entry(cat string, amount float64, ts int64) model.ExpenseEntry {
	return model.ExpenseEntry{Name: cat, Amount: amount, Category: cat, Time: ts}
}

func TestAggregateByCategory_FirstOccurrenceOrder(t *testing.T) {
	entries := []model.ExpenseEntry{
		entry("A", 1, t0),
		entry("B", 2, t0),
		entry("A", 3, t0),
	}

	got := AggregateByCategory(entries)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Category != "A" || got[1].Category != "B" {
		t.Errorf("order = [%s %s], want [A B]", got[0].Category, got[1].Category)
	}
	if got[0].Amount != 4 || got[1].Amount != 2 {
		t.Errorf("amounts = [%v %v], want [4 2]", got[0].Amount, got[1].Amount)
	}
}

func TestAggregateByCategory_Example(t *testing.T) {
	entries := []model.ExpenseEntry{
		entry("Food", 100, t0),
		entry("Food", 50, t0+day),
		entry("Travel", 200, t0),
	}

	got := AggregateByCategory(entries)
	want := []model.CategoryTotal{{Category: "Food", Amount: 150}, {Category: "Travel", Amount: 200}}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestAggregateByCategory_Empty(t *testing.T) {
	got := AggregateByCategory(nil)
	if got == nil || len(got) != 0 {
		t.Errorf("AggregateByCategory(nil) = %#v, want empty non-nil slice", got)
	}
}

func TestAggregateByCategory_NoDrift(t *testing.T) {
	// 0.1 summed 10,000 times drifts in naive float64 accumulation.
	entries := make([]model.ExpenseEntry, 10_000)
	for i := range entries {
		entries[i] = entry("Coffee", 0.1, t0)
	}

	got := AggregateByCategory(entries)
	if got[0].Amount != 1000 {
		t.Errorf("Amount = %.12f, want exactly 1000", got[0].Amount)
	}
}

func TestAggregateByDate_SameDay(t *testing.T) {
	entries := []model.ExpenseEntry{
		entry("Food", 12.5, t0),
		entry("Food", 7.25, t0+3600),
		entry("Food", 30, t0+7200),
		entry("Travel", 999, t0),
	}

	got := AggregateByDateIn(entries, "Food", time.UTC)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Amount != 49.75 {
		t.Errorf("Amount = %v, want 49.75", got[0].Amount)
	}
	if got[0].Label != "08 Jun" {
		t.Errorf("Label = %q, want %q", got[0].Label, "08 Jun")
	}
}

func TestAggregateByDate_SortedByDate(t *testing.T) {
	entries := []model.ExpenseEntry{
		entry("Food", 3, t0+30*day), // 08 Jul
		entry("Food", 1, t0),        // 08 Jun
		entry("Food", 2, t0+2*day),  // 10 Jun
	}

	got := AggregateByDateIn(entries, "Food", time.UTC)
	wantLabels := []string{"08 Jun", "10 Jun", "08 Jul"}
	if len(got) != len(wantLabels) {
		t.Fatalf("len = %d, want %d", len(got), len(wantLabels))
	}
	for i, w := range wantLabels {
		if got[i].Label != w {
			t.Errorf("got[%d].Label = %q, want %q", i, got[i].Label, w)
		}
	}
}

func TestAggregateByDate_YearsDoNotCollide(t *testing.T) {
	jun2021 := time.Date(2021, 6, 8, 12, 0, 0, 0, time.UTC).Unix()
	jun2022 := time.Date(2022, 6, 8, 12, 0, 0, 0, time.UTC).Unix()
	entries := []model.ExpenseEntry{
		entry("Food", 5, jun2022),
		entry("Food", 1, jun2021),
	}

	got := AggregateByDateIn(entries, "Food", time.UTC)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (same label, different years)", len(got))
	}
	if got[0].Date.Year() != 2021 || got[1].Date.Year() != 2022 {
		t.Errorf("years = [%d %d], want [2021 2022]", got[0].Date.Year(), got[1].Date.Year())
	}
	if got[0].Label != got[1].Label {
		t.Errorf("labels differ: %q vs %q", got[0].Label, got[1].Label)
	}
}

func TestAggregateByDate_UsesLocation(t *testing.T) {
	// 23:30 UTC is already the next day in Moscow (UTC+3).
	ts := time.Date(2021, 6, 8, 23, 30, 0, 0, time.UTC).Unix()
	msk := time.FixedZone("MSK", 3*3600)

	utc := AggregateByDateIn([]model.ExpenseEntry{entry("Food", 1, ts)}, "Food", time.UTC)
	local := AggregateByDateIn([]model.ExpenseEntry{entry("Food", 1, ts)}, "Food", msk)

	if utc[0].Label != "08 Jun" {
		t.Errorf("UTC label = %q, want 08 Jun", utc[0].Label)
	}
	if local[0].Label != "09 Jun" {
		t.Errorf("MSK label = %q, want 09 Jun", local[0].Label)
	}
}

func TestAggregateByDate_NoMatches(t *testing.T) {
	got := AggregateByDateIn([]model.ExpenseEntry{entry("Food", 1, t0)}, "Travel", time.UTC)
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestFillDateGaps(t *testing.T) {
	entries := []model.ExpenseEntry{
		entry("Food", 1, t0),
		entry("Food", 4, t0+3*day),
	}
	buckets := AggregateByDateIn(entries, "Food", time.UTC)

	filled, err := FillDateGaps(buckets, time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(filled) != 4 {
		t.Fatalf("len = %d, want 4", len(filled))
	}
	wantAmounts := []float64{1, 0, 0, 4}
	for i, w := range wantAmounts {
		if filled[i].Amount != w {
			t.Errorf("filled[%d].Amount = %v, want %v", i, filled[i].Amount, w)
		}
	}
	if filled[1].Label != "09 Jun" || filled[2].Label != "10 Jun" {
		t.Errorf("gap labels = [%q %q], want [09 Jun 10 Jun]", filled[1].Label, filled[2].Label)
	}
}

func TestFillDateGaps_ShortInput(t *testing.T) {
	one := []model.DateBucket{{Label: "08 Jun", Amount: 1}}
	if got, err := FillDateGaps(one, time.UTC); err != nil || len(got) != 1 {
		t.Errorf("len = %d, err = %v, want 1, nil", len(got), err)
	}
	if got, err := FillDateGaps(nil, time.UTC); err != nil || len(got) != 0 {
		t.Errorf("len = %d, err = %v, want 0, nil", len(got), err)
	}
}

func TestFillDateGaps_SpanLimit(t *testing.T) {
	tests := []struct {
		name    string
		days    int64 // offset of the second entry from the first
		wantErr bool
		wantLen int
	}{
		{"at limit", MaxFillDays - 1, false, MaxFillDays},
		{"one past limit", MaxFillDays, true, 2},
		{"decades apart", 40 * 365, true, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buckets := AggregateByDateIn([]model.ExpenseEntry{
				entry("Food", 1, t0),
				entry("Food", 2, t0+tt.days*day),
			}, "Food", time.UTC)

			got, err := FillDateGaps(buckets, time.UTC)
			if tt.wantErr != errors.Is(err, ErrFillSpanTooLong) {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if len(got) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(got), tt.wantLen)
			}
		})
	}
}

func TestCategoriesAndFilter(t *testing.T) {
	entries := []model.ExpenseEntry{
		entry("B", 1, t0),
		entry("A", 1, t0),
		entry("B", 1, t0),
	}

	cats := Categories(entries)
	if len(cats) != 2 || cats[0] != "B" || cats[1] != "A" {
		t.Errorf("Categories = %v, want [B A]", cats)
	}
	if n := len(FilterByCategory(entries, "B")); n != 2 {
		t.Errorf("FilterByCategory(B) len = %d, want 2", n)
	}
}

func TestSummarize(t *testing.T) {
	entries := []model.ExpenseEntry{
		entry("Food", 100, t0+day),
		entry("Food", 50, t0),
		entry("Travel", 200, t0+2*day),
	}

	s := Summarize(entries)
	if s.Entries != 3 || s.Categories != 2 {
		t.Errorf("Entries/Categories = %d/%d, want 3/2", s.Entries, s.Categories)
	}
	if math.Abs(s.Total-350) > 1e-9 {
		t.Errorf("Total = %v, want 350", s.Total)
	}
	if s.First.Unix() != t0 || s.Last.Unix() != t0+2*day {
		t.Errorf("span = %v..%v", s.First, s.Last)
	}
}
