// Package model defines domain types for spendview expenses and charts.
package model

import "time"

// ExpenseEntry is one expense record from the payload.
type ExpenseEntry struct {
	ID       int64
	Name     string
	Amount   float64
	Category string
	Time     int64 // epoch seconds
}

// LocalTime returns the entry timestamp in loc.
func (e ExpenseEntry) LocalTime(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Unix(e.Time, 0).In(loc)
}

// CategoryTotal is the summed amount of one category.
type CategoryTotal struct {
	Category string
	Amount   float64
}

// DateBucket is the summed amount of one category on one calendar day.
type DateBucket struct {
	Date   time.Time // midnight of the day in the aggregation location
	Label  string    // "02 Jan"
	Amount float64
}

// Summary holds the top-level numbers printed above CLI tables.
type Summary struct {
	Entries    int
	Categories int
	Total      float64
	First      time.Time
	Last       time.Time
}
