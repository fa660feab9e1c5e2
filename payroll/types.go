/*
Package payroll computes monthly duty-bonus payouts from a roster of
duty-shift assignments.

PURPOSE:
  This package contains the day-classification and payout-calculation
  rules. A calendar day is either a "qualifying" day (Friday, Saturday,
  Sunday, a public holiday, or the day before one) or an ordinary weekday.
  Weekday work is paid flat per unit. Qualifying work is paid only once a
  monthly threshold of qualifying units is met, and then one unit is
  deducted before payment - Fridays absorb the deduction first.

KEY CONCEPTS IN THIS FILE (types.go):
  - DutyRecord: one employee/date/share assignment, the engine's input
  - DayClassification: the qualifying/Friday verdict for one date
  - Result: the per-employee monthly payout breakdown
  - Rules: the rate, threshold, deduction and tolerance parameters

DESIGN PRINCIPLES:
  1. Purity: the engine performs no I/O and holds no mutable state;
     identical inputs always produce identical results
  2. Precision: decimal.Decimal for shares and currency, with an explicit
     comparison tolerance for threshold checks on caller-supplied fractions
  3. Permissive input: duplicate (employee, date) records are summed, odd
     shares pass through - validation belongs to the roster layer

USAGE:
  engine := payroll.NewEngine(payroll.NewNRWCalendar())
  results := engine.Calculate(records, 2025, time.November)

SEE ALSO:
  - engine.go: classification, aggregation and threshold policy
  - calendar.go: HolidayCalendar interface and implementations
*/
package payroll

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// IDENTIFIERS
// =============================================================================

type EmployeeID string

// =============================================================================
// DUTY RECORD - One shift assignment
// =============================================================================

// DutyRecord assigns a fractional workload share to one employee on one
// calendar day. Shares are expected in (0, 1], typically 1.0 (full shift)
// or 0.5 (half shift); the engine itself does not reject other values.
type DutyRecord struct {
	EmployeeID EmployeeID
	Date       Date
	Share      decimal.Decimal
}

// NewDutyRecord builds a DutyRecord from a float share.
func NewDutyRecord(employeeID EmployeeID, date Date, share float64) DutyRecord {
	return DutyRecord{EmployeeID: employeeID, Date: date, Share: decimal.NewFromFloat(share)}
}

// =============================================================================
// DAY CLASSIFICATION
// =============================================================================

// DayClassification is the verdict for a single date. Label is for display
// only and never feeds back into the calculation.
type DayClassification struct {
	Qualifying bool
	Friday     bool
	Label      string
}

// =============================================================================
// RESULT - Per-employee monthly payout breakdown
// =============================================================================

// Result is the payout calculation for one employee for one month.
//
// Invariants: PayoutTotal = PayoutWeekday + PayoutQualifying;
// PaidQualifyingUnits is zero when the threshold is not reached; the two
// deductions sum to the configured deduction exactly when it is.
type Result struct {
	EmployeeID EmployeeID

	WeekdayUnits         decimal.Decimal // shares on ordinary weekdays
	FridayUnits          decimal.Decimal // shares on qualifying Fridays
	OtherQualifyingUnits decimal.Decimal // shares on all other qualifying days
	QualifyingTotal      decimal.Decimal // FridayUnits + OtherQualifyingUnits

	ThresholdReached bool
	DeductionFriday  decimal.Decimal
	DeductionOther   decimal.Decimal

	PaidQualifyingUnits decimal.Decimal
	PayoutWeekday       decimal.Decimal
	PayoutQualifying    decimal.Decimal
	PayoutTotal         decimal.Decimal
}

// =============================================================================
// RULES - Jurisdiction parameters
// =============================================================================

// Rules holds the payout parameters. DefaultRules matches the NRW
// "Variante 2 (streng)" rule set the engine was built for.
type Rules struct {
	// RateWeekday is paid per weekday unit, unconditionally.
	RateWeekday decimal.Decimal

	// RateQualifying is paid per qualifying unit remaining after the
	// deduction, and only once Threshold is reached.
	RateQualifying decimal.Decimal

	// Threshold is the minimum monthly sum of qualifying units before any
	// qualifying pay is produced. Below it the qualifying payout is zero,
	// not partial.
	Threshold decimal.Decimal

	// Deduction is removed from the qualifying buckets once Threshold is
	// reached, Fridays first.
	Deduction decimal.Decimal

	// Tolerance absorbs rounding error in the threshold comparison, so a
	// sum of caller-supplied fractions landing at 1.9999... still counts
	// as 2.0. Callers feeding higher-precision shares may tighten it.
	Tolerance decimal.Decimal
}

// DefaultRules returns the standard NRW parameters: 250 per weekday unit,
// 450 per qualifying unit, threshold 2.0, deduction 1.0, tolerance 1e-4.
func DefaultRules() Rules {
	return Rules{
		RateWeekday:    decimal.NewFromInt(250),
		RateQualifying: decimal.NewFromInt(450),
		Threshold:      decimal.NewFromInt(2),
		Deduction:      decimal.NewFromInt(1),
		Tolerance:      decimal.New(1, -4),
	}
}
