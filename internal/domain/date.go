package domain

import (
	"fmt"
	"time"
)

// Date represents a calendar date with no time-of-day or zone
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns a normalized Date, so NewDate(2015, time.July, 32) is August 1st
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf drops the time-of-day from t, using t's own location
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) toTime() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// IsZero reports whether the date was never set
func (d Date) IsZero() bool {
	return d == Date{}
}

// AddDays adds n calendar days
func (d Date) AddDays(n int) Date {
	return DateOf(d.toTime().AddDate(0, 0, n))
}

func (d Date) Weekday() time.Weekday {
	return d.toTime().Weekday()
}

func (d Date) Before(other Date) bool {
	return d.toTime().Before(other.toTime())
}

func (d Date) After(other Date) bool {
	return d.toTime().After(other.toTime())
}

// Format uses the time package layout syntax, e.g. "01/02/06"
func (d Date) Format(layout string) string {
	return d.toTime().Format(layout)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}
