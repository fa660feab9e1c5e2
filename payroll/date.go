package payroll

import (
	"fmt"
	"time"
)

// =============================================================================
// DATE - Pure calendar-day value (no time-of-day, no timezone)
// =============================================================================

// Date identifies one calendar day. It deliberately carries no time-of-day
// or timezone component: the payroll rules compare days, and a stray
// time offset would shift a duty across a weekend boundary.
//
// Date is comparable and safe to use as a map key.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate creates a Date. Out-of-range values are normalized the way
// time.Date normalizes them (e.g., February 30 becomes March 1 or 2).
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf truncates a time.Time to its calendar day.
// The day is taken from the time's own location, so callers holding local
// times keep the day they see on their wall clock.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseDate parses an ISO "2006-01-02" date string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// MustParseDate is ParseDate for static data and tests; panics on bad input.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// toTime returns the date at midnight UTC. Internal anchor for all
// calendar arithmetic.
func (d Date) toTime() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Comparison
func (d Date) Before(other Date) bool { return d.toTime().Before(other.toTime()) }
func (d Date) After(other Date) bool  { return d.toTime().After(other.toTime()) }
func (d Date) Equal(other Date) bool  { return d == other }

// Arithmetic
func (d Date) AddDays(n int) Date { return DateOf(d.toTime().AddDate(0, 0, n)) }
func (d Date) Next() Date         { return d.AddDays(1) }

// Properties
func (d Date) Weekday() time.Weekday { return d.toTime().Weekday() }
func (d Date) IsFriday() bool        { return d.Weekday() == time.Friday }
func (d Date) IsZero() bool          { return d == Date{} }


// InMonth reports whether the date falls in the given year/month.
func (d Date) InMonth(year int, month time.Month) bool {
	return d.Year == year && d.Month == month
}

func (d Date) String() string {
	return d.toTime().Format("2006-01-02")
}

// MonthKey returns the YYYYMM key used to bucket duties by month.
func (d Date) MonthKey() string {
	return MonthKey(d.Year, d.Month)
}

// MonthKey formats a year/month pair as YYYYMM.
func MonthKey(year int, month time.Month) string {
	return fmt.Sprintf("%04d%02d", year, int(month))
}

// DaysInMonth returns every day of the given month in order.
func DaysInMonth(year int, month time.Month) []Date {
	var days []Date
	last := NewDate(year, month+1, 1).AddDays(-1)
	for d := NewDate(year, month, 1); !d.After(last); d = d.Next() {
		days = append(days, d)
	}
	return days
}
