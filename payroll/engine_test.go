/*
engine_test.go - Specification tests for the payout calculation

PURPOSE:
  These tests serve as EXECUTABLE SPECIFICATIONS of the payout rules.
  Each test documents one behavior: the qualifying-day classification,
  the all-or-nothing threshold gate, the Friday-first deduction, and the
  deterministic, sorted output.

READING THESE TESTS:
  Each test has GIVEN/WHEN/THEN comments explaining the scenario.
  November 2025 is the reference month for rule-only scenarios: Nov 3 is
  a Monday, Nov 7/14 are Fridays, Nov 8 a Saturday, Nov 9 a Sunday.
*/
package payroll_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/warp/payroll-engine/payroll"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func newRuleEngine() *payroll.Engine {
	// No holidays: only the Fri/Sat/Sun rule applies.
	return payroll.NewEngine(payroll.NopCalendar{})
}

func duty(emp string, date string, share float64) payroll.DutyRecord {
	return payroll.NewDutyRecord(payroll.EmployeeID(emp), payroll.MustParseDate(date), share)
}

func wantDec(t *testing.T, field string, got decimal.Decimal, want float64) {
	t.Helper()
	if !got.Equal(decimal.NewFromFloat(want)) {
		t.Errorf("%s = %v, want %v", field, got, want)
	}
}

// =============================================================================
// SCENARIO TESTS
// =============================================================================

func TestCalculate_UnderThreshold_NoQualifyingPay(t *testing.T) {
	// GIVEN: weekday 1.0 + Friday 0.75 + Saturday 1.0 (qualifying total 1.75)
	// WHEN: calculating the month
	// THEN: threshold not reached, weekday pay in full, zero qualifying pay

	engine := newRuleEngine()
	records := []payroll.DutyRecord{
		duty("alice", "2025-11-03", 1.0),  // Monday
		duty("alice", "2025-11-07", 0.75), // Friday
		duty("alice", "2025-11-08", 1.0),  // Saturday
	}

	results := engine.Calculate(records, 2025, time.November)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	r := results[0]

	wantDec(t, "QualifyingTotal", r.QualifyingTotal, 1.75)
	if r.ThresholdReached {
		t.Error("threshold should not be reached at 1.75")
	}
	wantDec(t, "PaidQualifyingUnits", r.PaidQualifyingUnits, 0)
	wantDec(t, "PayoutWeekday", r.PayoutWeekday, 250)
	wantDec(t, "PayoutQualifying", r.PayoutQualifying, 0)
	wantDec(t, "PayoutTotal", r.PayoutTotal, 250)
}

func TestCalculate_ExactlyAtThreshold(t *testing.T) {
	// GIVEN: Friday 1.0 + Saturday 1.0 (qualifying total exactly 2.0)
	// WHEN: calculating
	// THEN: threshold reached, full 1.0 deduction from Fridays, 450 paid

	engine := newRuleEngine()
	records := []payroll.DutyRecord{
		duty("alice", "2025-11-07", 1.0), // Friday
		duty("alice", "2025-11-08", 1.0), // Saturday
	}

	r := engine.Calculate(records, 2025, time.November)[0]

	if !r.ThresholdReached {
		t.Fatal("threshold should be reached at exactly 2.0")
	}
	wantDec(t, "DeductionFriday", r.DeductionFriday, 1.0)
	wantDec(t, "DeductionOther", r.DeductionOther, 0)
	wantDec(t, "PaidQualifyingUnits", r.PaidQualifyingUnits, 1.0)
	wantDec(t, "PayoutQualifying", r.PayoutQualifying, 450)
}

func TestCalculate_OverThreshold(t *testing.T) {
	// GIVEN: Friday 1.0 + Saturday 1.0 + Sunday 1.0 + Friday 0.5
	//        (qualifying total 3.5)
	// THEN: 2.5 units paid after the 1.0 deduction -> 1125

	engine := newRuleEngine()
	records := []payroll.DutyRecord{
		duty("bob", "2025-11-07", 1.0), // Friday
		duty("bob", "2025-11-08", 1.0), // Saturday
		duty("bob", "2025-11-09", 1.0), // Sunday
		duty("bob", "2025-11-14", 0.5), // Friday
	}

	r := engine.Calculate(records, 2025, time.November)[0]

	wantDec(t, "QualifyingTotal", r.QualifyingTotal, 3.5)
	wantDec(t, "PaidQualifyingUnits", r.PaidQualifyingUnits, 2.5)
	wantDec(t, "PayoutQualifying", r.PayoutQualifying, 1125)
}

func TestCalculate_SplitDeduction_FridayFirst(t *testing.T) {
	// GIVEN: Friday 0.4 + Saturday 0.6 + Sunday 1.0 (qualifying total 2.0)
	// THEN: deduction takes all 0.4 from Friday, the remaining 0.6 from
	//       other qualifying days

	engine := newRuleEngine()
	records := []payroll.DutyRecord{
		duty("carol", "2025-11-07", 0.4), // Friday
		duty("carol", "2025-11-08", 0.6), // Saturday
		duty("carol", "2025-11-09", 1.0), // Sunday
	}

	r := engine.Calculate(records, 2025, time.November)[0]

	if !r.ThresholdReached {
		t.Fatal("threshold should be reached at 2.0")
	}
	wantDec(t, "DeductionFriday", r.DeductionFriday, 0.4)
	wantDec(t, "DeductionOther", r.DeductionOther, 0.6)
	wantDec(t, "PaidQualifyingUnits", r.PaidQualifyingUnits, 1.0)
	wantDec(t, "PayoutQualifying", r.PayoutQualifying, 450)
}

func TestCalculate_DeductionPriority_FullFridayAbsorption(t *testing.T) {
	// GIVEN: fridayUnits >= 1.0
	// THEN: the entire deduction comes from Fridays

	engine := newRuleEngine()
	records := []payroll.DutyRecord{
		duty("dave", "2025-11-07", 1.0), // Friday
		duty("dave", "2025-11-14", 1.0), // Friday
		duty("dave", "2025-11-08", 0.5), // Saturday
	}

	r := engine.Calculate(records, 2025, time.November)[0]

	wantDec(t, "DeductionFriday", r.DeductionFriday, 1.0)
	wantDec(t, "DeductionOther", r.DeductionOther, 0)
	wantDec(t, "PaidQualifyingUnits", r.PaidQualifyingUnits, 1.5)
}

func TestCalculate_WeekdayPayNeverGated(t *testing.T) {
	// GIVEN: plenty of weekday work but zero qualifying work
	// THEN: weekday pay is unconditional

	engine := newRuleEngine()
	records := []payroll.DutyRecord{
		duty("erin", "2025-11-03", 1.0), // Monday
		duty("erin", "2025-11-04", 1.0), // Tuesday
		duty("erin", "2025-11-05", 0.5), // Wednesday
	}

	r := engine.Calculate(records, 2025, time.November)[0]

	wantDec(t, "WeekdayUnits", r.WeekdayUnits, 2.5)
	wantDec(t, "PayoutWeekday", r.PayoutWeekday, 625)
	wantDec(t, "PayoutQualifying", r.PayoutQualifying, 0)
	wantDec(t, "PayoutTotal", r.PayoutTotal, 625)
}

// =============================================================================
// PROPERTY TESTS
// =============================================================================

func TestCalculate_MultipleEmployees_SortedByID(t *testing.T) {
	// GIVEN: records for two employees, supplied interleaved and unordered
	// THEN: each gets an independent result, output sorted by employee ID

	engine := newRuleEngine()
	records := []payroll.DutyRecord{
		duty("zoe", "2025-11-07", 1.0),
		duty("adam", "2025-11-03", 1.0),
		duty("zoe", "2025-11-08", 1.0),
		duty("adam", "2025-11-08", 0.5),
	}

	results := engine.Calculate(records, 2025, time.November)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].EmployeeID != "adam" || results[1].EmployeeID != "zoe" {
		t.Errorf("results not sorted by employee ID: %v, %v",
			results[0].EmployeeID, results[1].EmployeeID)
	}

	wantDec(t, "adam PayoutWeekday", results[0].PayoutWeekday, 250)
	if results[0].ThresholdReached {
		t.Error("adam (0.5 qualifying) should not reach threshold")
	}
	if !results[1].ThresholdReached {
		t.Error("zoe (2.0 qualifying) should reach threshold")
	}
}

func TestCalculate_Deterministic(t *testing.T) {
	// GIVEN: a fixed input
	// WHEN: calculating repeatedly
	// THEN: results are identical every time

	engine := payroll.NewEngine(payroll.NewNRWCalendar())
	records := []payroll.DutyRecord{
		duty("alice", "2025-11-07", 0.5),
		duty("alice", "2025-11-08", 1.0),
		duty("alice", "2025-11-21", 0.75),
		duty("bob", "2025-11-03", 1.0),
	}

	first := engine.Calculate(records, 2025, time.November)
	for i := 0; i < 10; i++ {
		again := engine.Calculate(records, 2025, time.November)
		if len(again) != len(first) {
			t.Fatalf("run %d: result count changed", i)
		}
		for j := range first {
			if first[j].EmployeeID != again[j].EmployeeID ||
				!first[j].PayoutTotal.Equal(again[j].PayoutTotal) ||
				!first[j].QualifyingTotal.Equal(again[j].QualifyingTotal) {
				t.Fatalf("run %d: result %d differs: %+v vs %+v", i, j, first[j], again[j])
			}
		}
	}
}

func TestCalculate_DuplicateRecordsSameDay_Summed(t *testing.T) {
	// GIVEN: two records for the same (employee, date)
	// THEN: their shares are summed, not deduplicated or rejected

	engine := newRuleEngine()
	records := []payroll.DutyRecord{
		duty("alice", "2025-11-08", 0.5), // Saturday
		duty("alice", "2025-11-08", 0.5), // Saturday, again
		duty("alice", "2025-11-09", 1.0), // Sunday
	}

	r := engine.Calculate(records, 2025, time.November)[0]
	wantDec(t, "QualifyingTotal", r.QualifyingTotal, 2.0)
	if !r.ThresholdReached {
		t.Error("summed duplicates should reach the threshold")
	}
}

func TestCalculate_ToleranceAbsorbsAccumulationError(t *testing.T) {
	// GIVEN: fractional shares summing to 1.9999, within 1e-4 of 2.0
	// THEN: the threshold counts as reached

	engine := newRuleEngine()
	records := []payroll.DutyRecord{
		duty("alice", "2025-11-07", 0.6666), // Friday
		duty("alice", "2025-11-08", 0.6666), // Saturday
		duty("alice", "2025-11-09", 0.6667), // Sunday
	}

	r := engine.Calculate(records, 2025, time.November)[0]
	if !r.ThresholdReached {
		t.Errorf("threshold should be reached at %v (within tolerance of 2.0)", r.QualifyingTotal)
	}
}

func TestCalculate_JustBelowTolerance_NotReached(t *testing.T) {
	// GIVEN: a qualifying total clearly below threshold-tolerance
	// THEN: no qualifying pay at all, however close

	engine := newRuleEngine()
	records := []payroll.DutyRecord{
		duty("alice", "2025-11-08", 1.0),  // Saturday
		duty("alice", "2025-11-09", 0.99), // Sunday
	}

	r := engine.Calculate(records, 2025, time.November)[0]
	if r.ThresholdReached {
		t.Error("1.99 is below 2.0 - 1e-4 and must not reach the threshold")
	}
	wantDec(t, "PayoutQualifying", r.PayoutQualifying, 0)
}

func TestCalculate_EmptyInput_EmptyOutput(t *testing.T) {
	engine := newRuleEngine()
	results := engine.Calculate(nil, 2025, time.November)
	if len(results) != 0 {
		t.Errorf("expected no results for empty input, got %d", len(results))
	}
}

func TestEmptyResult_AllZero(t *testing.T) {
	r := payroll.EmptyResult("ghost")
	if r.EmployeeID != "ghost" {
		t.Errorf("EmployeeID = %v", r.EmployeeID)
	}
	wantDec(t, "PayoutTotal", r.PayoutTotal, 0)
	wantDec(t, "QualifyingTotal", r.QualifyingTotal, 0)
	if r.ThresholdReached {
		t.Error("empty result must not reach the threshold")
	}
}

// =============================================================================
// INVARIANT SWEEP
// =============================================================================

func TestCalculate_ResultInvariants(t *testing.T) {
	// For a spread of inputs: total = weekday + qualifying payout, paid
	// units are zero below threshold, deductions sum to 1.0 above it.

	cases := [][]payroll.DutyRecord{
		{duty("a", "2025-11-03", 1.0)},
		{duty("a", "2025-11-07", 0.5), duty("a", "2025-11-08", 0.5)},
		{duty("a", "2025-11-07", 1.0), duty("a", "2025-11-08", 1.0)},
		{duty("a", "2025-11-07", 0.25), duty("a", "2025-11-08", 1.0), duty("a", "2025-11-09", 1.0)},
		{duty("a", "2025-11-08", 1.0), duty("a", "2025-11-09", 1.0), duty("a", "2025-11-15", 1.0)},
	}

	engine := newRuleEngine()
	one := decimal.NewFromInt(1)

	for i, records := range cases {
		r := engine.Calculate(records, 2025, time.November)[0]

		if !r.PayoutTotal.Equal(r.PayoutWeekday.Add(r.PayoutQualifying)) {
			t.Errorf("case %d: PayoutTotal != PayoutWeekday + PayoutQualifying", i)
		}
		if !r.QualifyingTotal.Equal(r.FridayUnits.Add(r.OtherQualifyingUnits)) {
			t.Errorf("case %d: QualifyingTotal != FridayUnits + OtherQualifyingUnits", i)
		}
		deductions := r.DeductionFriday.Add(r.DeductionOther)
		if r.ThresholdReached {
			if !deductions.Equal(one) {
				t.Errorf("case %d: deductions sum to %v, want 1.0", i, deductions)
			}
		} else {
			if !deductions.IsZero() {
				t.Errorf("case %d: deductions %v without threshold", i, deductions)
			}
			if !r.PaidQualifyingUnits.IsZero() {
				t.Errorf("case %d: paid units %v without threshold", i, r.PaidQualifyingUnits)
			}
		}
	}
}

// =============================================================================
// CLASSIFICATION WITH HOLIDAYS
// =============================================================================

func TestClassify_HolidayRules(t *testing.T) {
	engine := payroll.NewEngine(payroll.NewNRWCalendar())

	cases := []struct {
		date       string
		qualifying bool
		friday     bool
		note       string
	}{
		{"2025-11-03", false, false, "ordinary Monday"},
		{"2025-11-07", true, true, "Friday"},
		{"2025-11-08", true, false, "Saturday"},
		{"2025-11-09", true, false, "Sunday"},
		{"2025-12-25", true, false, "1. Weihnachtstag (Thursday)"},
		{"2025-12-24", true, false, "Wednesday before a holiday"},
		{"2025-04-18", true, true, "Karfreitag: holiday AND Friday"},
		{"2025-06-18", true, false, "Wednesday before Fronleichnam"},
		{"2024-12-25", false, false, "Christmas in an unconfigured year is an ordinary Wednesday"},
	}

	for _, tc := range cases {
		c := engine.Classify(payroll.MustParseDate(tc.date))
		if c.Qualifying != tc.qualifying {
			t.Errorf("%s (%s): Qualifying = %v, want %v", tc.date, tc.note, c.Qualifying, tc.qualifying)
		}
		if c.Friday != tc.friday {
			t.Errorf("%s (%s): Friday = %v, want %v", tc.date, tc.note, c.Friday, tc.friday)
		}
	}
}

func TestCalculate_HolidayFriday_CountsAsFridayForDeduction(t *testing.T) {
	// GIVEN: Karfreitag 2025-04-18 (a Friday that is also a holiday)
	//        plus a Saturday and Sunday
	// THEN: its share lands in the Friday bucket and absorbs the deduction

	engine := payroll.NewEngine(payroll.NewNRWCalendar())
	records := []payroll.DutyRecord{
		duty("alice", "2025-04-18", 1.0), // Karfreitag, Friday
		duty("alice", "2025-04-12", 1.0), // Saturday
	}

	r := engine.Calculate(records, 2025, time.April)[0]
	wantDec(t, "FridayUnits", r.FridayUnits, 1.0)
	wantDec(t, "DeductionFriday", r.DeductionFriday, 1.0)
	wantDec(t, "DeductionOther", r.DeductionOther, 0)
}

func TestCalculate_DayBeforeHoliday_Qualifies(t *testing.T) {
	// GIVEN: a Wednesday duty on the day before Fronleichnam
	// THEN: it counts into the other-qualifying bucket

	engine := payroll.NewEngine(payroll.NewNRWCalendar())
	records := []payroll.DutyRecord{
		duty("alice", "2025-06-18", 1.0), // Wednesday before Fronleichnam
		duty("alice", "2025-06-19", 1.0), // Fronleichnam (Thursday)
	}

	r := engine.Calculate(records, 2025, time.June)[0]
	wantDec(t, "OtherQualifyingUnits", r.OtherQualifyingUnits, 2.0)
	wantDec(t, "WeekdayUnits", r.WeekdayUnits, 0)
	if !r.ThresholdReached {
		t.Error("two qualifying units should reach the threshold")
	}
}
