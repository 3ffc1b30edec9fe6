// Package pipeline loads expense payloads and aggregates them for the charts.
package pipeline

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/spendview/internal/model"
)

// DayLabelLayout formats a bucket label: two-digit day and short month.
const DayLabelLayout = "02 Jan"

const dayKeyLayout = "2006-01-02"

// MaxFillDays caps how many days FillDateGaps will lay out. A stray
// timestamp years away would otherwise allocate a bucket per day in between.
const MaxFillDays = 731

// ErrFillSpanTooLong is returned by FillDateGaps when the buckets span more
// than MaxFillDays.
var ErrFillSpanTooLong = errors.New("date span too long to fill")

// AggregateByCategory sums amounts per category. Output order is the order in
// which each category first appears in entries.
func AggregateByCategory(entries []model.ExpenseEntry) []model.CategoryTotal {
	if len(entries) == 0 {
		return []model.CategoryTotal{}
	}

	sums := make(map[string]decimal.Decimal)
	var order []string

	for _, e := range entries {
		sum, ok := sums[e.Category]
		if !ok {
			order = append(order, e.Category)
		}
		sums[e.Category] = sum.Add(decimal.NewFromFloat(e.Amount))
	}

	totals := make([]model.CategoryTotal, 0, len(order))
	for _, cat := range order {
		totals = append(totals, model.CategoryTotal{
			Category: cat,
			Amount:   sums[cat].InexactFloat64(),
		})
	}
	return totals
}

// AggregateByDate buckets one category's entries by local calendar day.
func AggregateByDate(entries []model.ExpenseEntry, category string) []model.DateBucket {
	return AggregateByDateIn(entries, category, time.Local)
}

// AggregateByDateIn buckets one category's entries by calendar day in loc.
// Buckets are keyed on the full date, so the same "day month" label in two
// different years yields two buckets. Result is sorted by date ascending.
func AggregateByDateIn(entries []model.ExpenseEntry, category string, loc *time.Location) []model.DateBucket {
	if loc == nil {
		loc = time.Local
	}

	type acc struct {
		date time.Time
		sum  decimal.Decimal
	}
	dayMap := make(map[string]*acc)

	for _, e := range FilterByCategory(entries, category) {
		t := e.LocalTime(loc)
		dayKey := t.Format(dayKeyLayout)
		a, ok := dayMap[dayKey]
		if !ok {
			a = &acc{date: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)}
			dayMap[dayKey] = a
		}
		a.sum = a.sum.Add(decimal.NewFromFloat(e.Amount))
	}

	buckets := make([]model.DateBucket, 0, len(dayMap))
	for _, a := range dayMap {
		buckets = append(buckets, model.DateBucket{
			Date:   a.date,
			Label:  a.date.Format(DayLabelLayout),
			Amount: a.sum.InexactFloat64(),
		})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Date.Before(buckets[j].Date)
	})

	return buckets
}

// FillDateGaps returns buckets with a zero-amount bucket inserted for every
// missing day between the first and last bucket. Input must be sorted. If the
// span exceeds MaxFillDays the input comes back unchanged together with
// ErrFillSpanTooLong.
func FillDateGaps(buckets []model.DateBucket, loc *time.Location) ([]model.DateBucket, error) {
	if len(buckets) < 2 {
		return buckets, nil
	}
	if loc == nil {
		loc = time.Local
	}

	byDay := make(map[string]model.DateBucket, len(buckets))
	for _, b := range buckets {
		byDay[b.Date.In(loc).Format(dayKeyLayout)] = b
	}

	first := buckets[0].Date.In(loc)
	last := buckets[len(buckets)-1].Date.In(loc)
	if days := spanDays(first, last); days > MaxFillDays {
		return buckets, fmt.Errorf("%w: %d days (limit %d)", ErrFillSpanTooLong, days, MaxFillDays)
	}

	var filled []model.DateBucket
	// AddDate keeps wall-clock midnight across DST changes; Add(24h) would not.
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		if b, ok := byDay[day.Format(dayKeyLayout)]; ok {
			filled = append(filled, b)
			continue
		}
		filled = append(filled, model.DateBucket{
			Date:  day,
			Label: day.Format(DayLabelLayout),
		})
	}
	return filled, nil
}

// spanDays counts calendar days from first to last, both included.
func spanDays(first, last time.Time) int {
	start := time.Date(first.Year(), first.Month(), first.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(last.Year(), last.Month(), last.Day(), 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours()/24) + 1
}

// FilterByCategory returns entries belonging to category.
func FilterByCategory(entries []model.ExpenseEntry, category string) []model.ExpenseEntry {
	var result []model.ExpenseEntry
	for _, e := range entries {
		if e.Category == category {
			result = append(result, e)
		}
	}
	return result
}

// Categories returns the distinct categories in first-occurrence order.
func Categories(entries []model.ExpenseEntry) []string {
	seen := make(map[string]struct{})
	var cats []string
	for _, e := range entries {
		if _, ok := seen[e.Category]; ok {
			continue
		}
		seen[e.Category] = struct{}{}
		cats = append(cats, e.Category)
	}
	return cats
}

// Summarize computes entry count, category count, grand total and time span.
func Summarize(entries []model.ExpenseEntry) model.Summary {
	var s model.Summary
	var total decimal.Decimal
	cats := make(map[string]struct{})

	for _, e := range entries {
		s.Entries++
		total = total.Add(decimal.NewFromFloat(e.Amount))
		cats[e.Category] = struct{}{}

		t := time.Unix(e.Time, 0)
		if s.First.IsZero() || t.Before(s.First) {
			s.First = t
		}
		if s.Last.IsZero() || t.After(s.Last) {
			s.Last = t
		}
	}

	s.Categories = len(cats)
	s.Total = total.InexactFloat64()
	return s
}
