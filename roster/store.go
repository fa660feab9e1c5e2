/*
store.go - Persistence interface for the duty plan

PURPOSE:
  Defines the interface between the roster layer and the database. The
  payroll engine never sees a store: it receives already-materialized
  duty records and returns results, so implementations can be swapped
  (SQLite, in-memory) without touching calculation logic.

IMPLEMENTATIONS:
  - store/sqlite/sqlite.go: production SQLite
  - roster/store/memory.go: in-memory for testing/dev

SEE ALSO:
  - service.go: Combines a Store with the payroll engine
*/
package roster

import (
	"context"
	"time"

	"github.com/warp/payroll-engine/payroll"
)

// =============================================================================
// STORE - Duty plan persistence
// =============================================================================

// Store persists employees and duty entries. Callers are expected to have
// validated duties (Duty.Validate) before writing.
type Store interface {
	// AddDuty persists a new duty and returns it with its assigned ID.
	AddDuty(ctx context.Context, duty Duty) (Duty, error)

	// UpdateDuty replaces the duty with the same ID.
	// Returns ErrDutyNotFound if it does not exist.
	UpdateDuty(ctx context.Context, duty Duty) error

	// RemoveDuty deletes a duty by ID.
	// Returns ErrDutyNotFound if it does not exist.
	RemoveDuty(ctx context.Context, id int64) error

	// ListDutiesForMonth returns all duties in the given month, ordered by
	// date then employee ID.
	ListDutiesForMonth(ctx context.Context, year int, month time.Month) ([]Duty, error)

	// ListAllDuties returns every duty, ordered by date then employee ID.
	ListAllDuties(ctx context.Context) ([]Duty, error)

	// SaveEmployee creates an employee.
	// Returns ErrEmployeeExists if the ID is taken.
	SaveEmployee(ctx context.Context, emp Employee) error

	// ListEmployees returns all employees ordered by ID.
	ListEmployees(ctx context.Context) ([]Employee, error)

	// DeleteEmployee removes an employee and all of their duties.
	// Returns ErrEmployeeNotFound if the employee does not exist.
	DeleteEmployee(ctx context.Context, id payroll.EmployeeID) error

	// Reset removes all employees and duties (dev/testing).
	Reset(ctx context.Context) error
}

// HolidayStore is implemented by stores that also persist the holiday
// calendar, so new years can be configured without a code change.
type HolidayStore interface {
	// SaveHoliday inserts or replaces a holiday by date.
	SaveHoliday(ctx context.Context, h payroll.Holiday) error

	// ListHolidays returns all configured holidays in date order.
	ListHolidays(ctx context.Context) ([]payroll.Holiday, error)

	// Calendar materializes the configured holidays as a calendar for
	// the payroll engine.
	Calendar(ctx context.Context) (payroll.HolidayCalendar, error)
}
