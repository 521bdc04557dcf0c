package pricing

import (
	"time"

	"tool-rental-checkout/internal/domain"
)

// Holiday yields the date a holiday is observed in a given year
type Holiday interface {
	Name() string
	ObservedOn(year int) domain.Date
}

type observedFixedHoliday struct {
	name  string
	month time.Month
	day   int
}

// ObservedFixedHoliday is a fixed-date holiday that moves to the nearest
// weekday: Saturday is observed on Friday, Sunday on Monday.
func ObservedFixedHoliday(name string, month time.Month, day int) Holiday {
	return observedFixedHoliday{name: name, month: month, day: day}
}

func (h observedFixedHoliday) Name() string { return h.name }

func (h observedFixedHoliday) ObservedOn(year int) domain.Date {
	d := domain.NewDate(year, h.month, h.day)
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDays(-1)
	case time.Sunday:
		return d.AddDays(1)
	}
	return d
}

type nthWeekdayHoliday struct {
	name    string
	month   time.Month
	weekday time.Weekday
	n       int
}

// NthWeekdayHoliday falls on the nth given weekday of a month, e.g. the
// first Monday of September. n starts at 1.
func NthWeekdayHoliday(name string, month time.Month, weekday time.Weekday, n int) Holiday {
	return nthWeekdayHoliday{name: name, month: month, weekday: weekday, n: n}
}

func (h nthWeekdayHoliday) Name() string { return h.name }

func (h nthWeekdayHoliday) ObservedOn(year int) domain.Date {
	first := domain.NewDate(year, h.month, 1)
	offset := (int(h.weekday) - int(first.Weekday()) + 7) % 7
	return first.AddDays(offset + 7*(h.n-1))
}

var (
	IndependenceDay = ObservedFixedHoliday("Independence Day", time.July, 4)
	LaborDay        = NthWeekdayHoliday("Labor Day", time.September, time.Monday, 1)
)

// Calendar classifies dates as weekday, weekend or holiday
type Calendar struct {
	holidays []Holiday
}

func NewCalendar(holidays ...Holiday) *Calendar {
	return &Calendar{holidays: append([]Holiday(nil), holidays...)}
}

// DefaultCalendar observes Independence Day and Labor Day
func DefaultCalendar() *Calendar {
	return NewCalendar(IndependenceDay, LaborDay)
}

func (c *Calendar) IsWeekend(d domain.Date) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func (c *Calendar) IsHoliday(d domain.Date) bool {
	for _, h := range c.holidays {
		if h.ObservedOn(d.Year) == d {
			return true
		}
	}
	return false
}

// Classify checks weekend first: a weekend date is never reported as a
// holiday, even when it is one.
func (c *Calendar) Classify(d domain.Date) domain.DayType {
	if c.IsWeekend(d) {
		return domain.DayTypeWeekend
	}
	if c.IsHoliday(d) {
		return domain.DayTypeHoliday
	}
	return domain.DayTypeWeekday
}
