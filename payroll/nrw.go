package payroll

// NRW public holidays, currently covering 2025-2026. Extend this list (or
// load holidays from storage instead) when new years are published; the
// calendar's silent not-a-holiday answer for unconfigured years means
// forgetting to do so misclassifies holidays as ordinary days.
var nrwHolidays = []Holiday{
	{Date: MustParseDate("2025-01-01"), Name: "Neujahr", Region: "NRW"},
	{Date: MustParseDate("2025-04-18"), Name: "Karfreitag", Region: "NRW"},
	{Date: MustParseDate("2025-04-21"), Name: "Ostermontag", Region: "NRW"},
	{Date: MustParseDate("2025-05-01"), Name: "Tag der Arbeit", Region: "NRW"},
	{Date: MustParseDate("2025-05-29"), Name: "Christi Himmelfahrt", Region: "NRW"},
	{Date: MustParseDate("2025-06-09"), Name: "Pfingstmontag", Region: "NRW"},
	{Date: MustParseDate("2025-06-19"), Name: "Fronleichnam", Region: "NRW"},
	{Date: MustParseDate("2025-10-03"), Name: "Tag der Deutschen Einheit", Region: "NRW"},
	{Date: MustParseDate("2025-11-01"), Name: "Allerheiligen", Region: "NRW"},
	{Date: MustParseDate("2025-12-25"), Name: "1. Weihnachtstag", Region: "NRW"},
	{Date: MustParseDate("2025-12-26"), Name: "2. Weihnachtstag", Region: "NRW"},
	{Date: MustParseDate("2026-01-01"), Name: "Neujahr", Region: "NRW"},
	{Date: MustParseDate("2026-04-03"), Name: "Karfreitag", Region: "NRW"},
	{Date: MustParseDate("2026-04-06"), Name: "Ostermontag", Region: "NRW"},
	{Date: MustParseDate("2026-05-01"), Name: "Tag der Arbeit", Region: "NRW"},
	{Date: MustParseDate("2026-05-14"), Name: "Christi Himmelfahrt", Region: "NRW"},
	{Date: MustParseDate("2026-05-25"), Name: "Pfingstmontag", Region: "NRW"},
	{Date: MustParseDate("2026-06-04"), Name: "Fronleichnam", Region: "NRW"},
	{Date: MustParseDate("2026-10-03"), Name: "Tag der Deutschen Einheit", Region: "NRW"},
	{Date: MustParseDate("2026-11-01"), Name: "Allerheiligen", Region: "NRW"},
	{Date: MustParseDate("2026-12-25"), Name: "1. Weihnachtstag", Region: "NRW"},
	{Date: MustParseDate("2026-12-26"), Name: "2. Weihnachtstag", Region: "NRW"},
}

// NRWHolidays returns the built-in NRW public holiday set.
func NRWHolidays() []Holiday {
	out := make([]Holiday, len(nrwHolidays))
	copy(out, nrwHolidays)
	return out
}

// NewNRWCalendar returns a calendar loaded with the built-in NRW holidays.
func NewNRWCalendar() *StaticCalendar {
	return NewStaticCalendar(nrwHolidays)
}
