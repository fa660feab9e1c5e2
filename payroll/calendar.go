/*
calendar.go - Public holiday lookup

PURPOSE:
  Answers point queries about public holidays: is this day a holiday,
  what is it called, and is the next day a holiday. The engine never owns
  holiday data itself - it receives a HolidayCalendar so the holiday set
  can be swapped or extended (new years, other jurisdictions) without
  touching calculation logic.

OUT-OF-RANGE YEARS:
  Querying a date outside the configured years is NOT an error. The
  calendar answers "not a holiday" and moves on. New years are added by
  updating configuration (or the holidays table), never by changing code.

IMPLEMENTATIONS:
  StaticCalendar: fixed in-memory set, built from a slice of Holidays
  NopCalendar:    no holidays at all (rule-only calculations, tests)

SEE ALSO:
  - nrw.go: the built-in NRW holiday set for 2025-2026
  - engine.go: classification rules that consume this interface
*/
package payroll

import "sort"

// =============================================================================
// HOLIDAY
// =============================================================================

// Holiday is a single named public holiday.
type Holiday struct {
	Date   Date
	Name   string
	Region string // informational only, e.g. "NRW"
}

// =============================================================================
// HOLIDAY CALENDAR
// =============================================================================

// HolidayCalendar provides holiday lookups for the engine. All queries are
// pure; dates in unconfigured years simply report "no holiday".
type HolidayCalendar interface {
	// IsHoliday reports whether the date matches a configured holiday.
	IsHoliday(date Date) bool

	// IsDayBeforeHoliday reports whether the next calendar day is a holiday.
	IsDayBeforeHoliday(date Date) bool

	// HolidayName returns the holiday's name, or ok=false if the date is
	// not a holiday.
	HolidayName(date Date) (name string, ok bool)
}

// =============================================================================
// STATIC CALENDAR - Fixed holiday set
// =============================================================================

// StaticCalendar is an immutable HolidayCalendar over a fixed holiday set.
type StaticCalendar struct {
	byDate map[Date]Holiday
}

// NewStaticCalendar builds a calendar from a holiday list. Later entries
// with a duplicate date win; dates are expected to be unique.
func NewStaticCalendar(holidays []Holiday) *StaticCalendar {
	byDate := make(map[Date]Holiday, len(holidays))
	for _, h := range holidays {
		byDate[h.Date] = h
	}
	return &StaticCalendar{byDate: byDate}
}

func (c *StaticCalendar) IsHoliday(date Date) bool {
	_, ok := c.byDate[date]
	return ok
}

func (c *StaticCalendar) IsDayBeforeHoliday(date Date) bool {
	return c.IsHoliday(date.Next())
}

func (c *StaticCalendar) HolidayName(date Date) (string, bool) {
	h, ok := c.byDate[date]
	return h.Name, ok
}

// Holidays returns the configured holidays in date order.
func (c *StaticCalendar) Holidays() []Holiday {
	out := make([]Holiday, 0, len(c.byDate))
	for _, h := range c.byDate {
		out = append(out, h)
	}
	sortHolidays(out)
	return out
}

// HolidaysInYear returns the configured holidays for one year, in date order.
func (c *StaticCalendar) HolidaysInYear(year int) []Holiday {
	var out []Holiday
	for _, h := range c.byDate {
		if h.Date.Year == year {
			out = append(out, h)
		}
	}
	sortHolidays(out)
	return out
}

func sortHolidays(hs []Holiday) {
	sort.Slice(hs, func(i, j int) bool { return hs[i].Date.Before(hs[j].Date) })
}

// =============================================================================
// NOP CALENDAR - No holidays
// =============================================================================

// NopCalendar is a HolidayCalendar with no holidays. Weekday rules still
// apply; only the holiday and day-before-holiday rules go dark.
type NopCalendar struct{}

func (NopCalendar) IsHoliday(Date) bool             { return false }
func (NopCalendar) IsDayBeforeHoliday(Date) bool    { return false }
func (NopCalendar) HolidayName(Date) (string, bool) { return "", false }
