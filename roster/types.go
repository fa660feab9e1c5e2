// Package roster manages the duty plan that feeds the payroll engine:
// employees, their duty records, and the validation the engine itself
// deliberately does not perform.
package roster

import (
	"strings"

	"github.com/warp/payroll-engine/payroll"
)

// =============================================================================
// EMPLOYEE
// =============================================================================

// Employee is a roster member. The ID doubles as the payroll grouping key.
type Employee struct {
	ID   payroll.EmployeeID
	Name string
}

// =============================================================================
// DUTY - Stored duty entry
// =============================================================================

// Duty is a persisted duty assignment. It is the storage shape of
// payroll.DutyRecord plus an identity and its YYYYMM month bucket.
type Duty struct {
	ID         int64
	EmployeeID payroll.EmployeeID
	Date       payroll.Date
	Share      float64
}

// MonthKey returns the duty's YYYYMM bucket.
func (d Duty) MonthKey() string { return d.Date.MonthKey() }

// Record converts the duty to the engine's input shape.
func (d Duty) Record() payroll.DutyRecord {
	return payroll.NewDutyRecord(d.EmployeeID, d.Date, d.Share)
}

// Validate enforces the input contract the engine assumes: a non-empty
// employee ID and a share in (0, 1]. The engine tolerates violations; the
// roster layer rejects them before they are stored.
func (d Duty) Validate() error {
	if strings.TrimSpace(string(d.EmployeeID)) == "" {
		return ErrEmptyEmployeeID
	}
	if d.Share <= 0 || d.Share > 1 {
		return &InvalidShareError{EmployeeID: d.EmployeeID, Date: d.Date, Share: d.Share}
	}
	if d.Date.IsZero() {
		return ErrMissingDate
	}
	return nil
}

// Records converts a duty list to engine input.
func Records(duties []Duty) []payroll.DutyRecord {
	records := make([]payroll.DutyRecord, len(duties))
	for i, d := range duties {
		records[i] = d.Record()
	}
	return records
}
