/*
engine.go - Day classification and payout calculation

PURPOSE:
  Implements the duty-bonus rules on top of a HolidayCalendar:

  1. Classify each duty date. Qualifying = Friday, Saturday, Sunday,
     public holiday, or day before a public holiday. Friday is tracked
     separately because it has deduction priority.
  2. Aggregate an employee's shares into weekday / qualifying-Friday /
     qualifying-other buckets.
  3. Threshold test: qualifying pay exists only when the month's
     qualifying total reaches Threshold (within Tolerance). All or
     nothing - just under the threshold pays zero qualifying bonus.
  4. Deduction: once the threshold is reached, Deduction units are
     removed before payment, Fridays first, the rest from other
     qualifying days.
  5. Weekday pay is never gated; it is paid in full regardless of the
     qualifying total.

DETERMINISM:
  The engine is a pure function over its inputs. Results are grouped by
  employee and returned sorted by employee ID, so output is independent
  of input order and safe to diff across runs.

SEE ALSO:
  - types.go: input/output types and the Rules parameters
  - calendar.go: holiday lookup interface
*/
package payroll

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// ENGINE
// =============================================================================

// Engine computes monthly payout results. It holds only immutable
// configuration and is safe for concurrent use.
type Engine struct {
	calendar HolidayCalendar
	rules    Rules
}

// NewEngine creates an engine with DefaultRules.
func NewEngine(calendar HolidayCalendar) *Engine {
	return NewEngineWithRules(calendar, DefaultRules())
}

// NewEngineWithRules creates an engine with custom parameters.
func NewEngineWithRules(calendar HolidayCalendar, rules Rules) *Engine {
	if calendar == nil {
		calendar = NopCalendar{}
	}
	return &Engine{calendar: calendar, rules: rules}
}

// Rules returns the engine's parameters.
func (e *Engine) Rules() Rules { return e.rules }

// =============================================================================
// CLASSIFICATION
// =============================================================================

// Classify determines whether a date is a qualifying day and whether it is
// a Friday. Friday is reported from the weekday alone: a Friday that is
// also a holiday still counts as Friday for deduction priority.
func (e *Engine) Classify(date Date) DayClassification {
	wd := date.Weekday()
	friday := wd == time.Friday

	weekend := friday || wd == time.Saturday || wd == time.Sunday
	holiday := e.calendar.IsHoliday(date)
	beforeHoliday := e.calendar.IsDayBeforeHoliday(date)

	label := wd.String()
	if name, ok := e.calendar.HolidayName(date); ok {
		label = "holiday (" + name + ")"
	} else if beforeHoliday {
		label = "day before holiday"
	}

	return DayClassification{
		Qualifying: weekend || holiday || beforeHoliday,
		Friday:     friday,
		Label:      label,
	}
}

// =============================================================================
// CALCULATION
// =============================================================================

// Calculate computes one Result per employee appearing in records for the
// given month, sorted ascending by employee ID. The year/month pair is
// context only: callers are responsible for supplying records filtered to
// the target month; the engine does not re-check membership.
//
// Employees with no records simply do not appear; callers needing a zero
// row should use EmptyResult.
func (e *Engine) Calculate(records []DutyRecord, year int, month time.Month) []Result {
	_ = year
	_ = month

	byEmployee := make(map[EmployeeID][]DutyRecord)
	for _, rec := range records {
		byEmployee[rec.EmployeeID] = append(byEmployee[rec.EmployeeID], rec)
	}

	results := make([]Result, 0, len(byEmployee))
	for id, recs := range byEmployee {
		results = append(results, e.CalculateForEmployee(id, recs))
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].EmployeeID < results[j].EmployeeID
	})
	return results
}

// CalculateForEmployee computes the payout breakdown for one employee's
// duty records. Multiple records on the same date are summed, not
// deduplicated.
func (e *Engine) CalculateForEmployee(employeeID EmployeeID, records []DutyRecord) Result {
	weekday := decimal.Zero
	friday := decimal.Zero
	other := decimal.Zero

	for _, rec := range records {
		c := e.Classify(rec.Date)
		switch {
		case c.Qualifying && c.Friday:
			friday = friday.Add(rec.Share)
		case c.Qualifying:
			other = other.Add(rec.Share)
		default:
			weekday = weekday.Add(rec.Share)
		}
	}

	qualifyingTotal := friday.Add(other)

	// Threshold check within tolerance: a float-fed total of 1.9999...
	// still counts as 2.0.
	thresholdReached := qualifyingTotal.GreaterThanOrEqual(e.rules.Threshold.Sub(e.rules.Tolerance))

	deductionFriday := decimal.Zero
	deductionOther := decimal.Zero
	paid := decimal.Zero
	if thresholdReached {
		deductionFriday = decimal.Min(e.rules.Deduction, friday)
		deductionOther = decimal.Max(decimal.Zero, e.rules.Deduction.Sub(deductionFriday))
		paid = friday.Sub(deductionFriday).Add(other.Sub(deductionOther))
	}

	payoutWeekday := weekday.Mul(e.rules.RateWeekday)
	payoutQualifying := paid.Mul(e.rules.RateQualifying)

	return Result{
		EmployeeID:           employeeID,
		WeekdayUnits:         weekday,
		FridayUnits:          friday,
		OtherQualifyingUnits: other,
		QualifyingTotal:      qualifyingTotal,
		ThresholdReached:     thresholdReached,
		DeductionFriday:      deductionFriday,
		DeductionOther:       deductionOther,
		PaidQualifyingUnits:  paid,
		PayoutWeekday:        payoutWeekday,
		PayoutQualifying:     payoutQualifying,
		PayoutTotal:          payoutWeekday.Add(payoutQualifying),
	}
}

// EmptyResult returns the all-zero Result for an employee with no duties
// in the month. Callers that need a row for every known employee use this
// instead of the engine emitting absent employees itself.
func EmptyResult(employeeID EmployeeID) Result {
	return Result{
		EmployeeID:           employeeID,
		WeekdayUnits:         decimal.Zero,
		FridayUnits:          decimal.Zero,
		OtherQualifyingUnits: decimal.Zero,
		QualifyingTotal:      decimal.Zero,
		DeductionFriday:      decimal.Zero,
		DeductionOther:       decimal.Zero,
		PaidQualifyingUnits:  decimal.Zero,
		PayoutWeekday:        decimal.Zero,
		PayoutQualifying:     decimal.Zero,
		PayoutTotal:          decimal.Zero,
	}
}
