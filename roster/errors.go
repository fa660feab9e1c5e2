/*
errors.go - Centralized error types for the roster layer

The payroll engine itself never errors: below-threshold months, empty
inputs and odd shares are valid computed outcomes or caller bugs, not
faults. Everything that CAN go wrong - invalid input, missing records,
storage failures - surfaces here, before records ever reach the engine.
*/
package roster

import (
	"errors"
	"fmt"

	"github.com/warp/payroll-engine/payroll"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrEmptyEmployeeID is returned for a duty or employee with a blank ID.
	// Grouping behavior is undefined for empty IDs, so they never get stored.
	ErrEmptyEmployeeID = errors.New("employee id is empty")

	// ErrMissingDate is returned for a duty without a calendar date.
	ErrMissingDate = errors.New("duty date is missing")

	// ErrInvalidShare is returned for a share outside (0, 1].
	ErrInvalidShare = errors.New("share must be in (0, 1]")

	// ErrDutyNotFound is returned when a duty ID does not exist.
	ErrDutyNotFound = errors.New("duty not found")

	// ErrEmployeeNotFound is returned when an employee ID does not exist.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrEmployeeExists is returned when creating an employee whose ID is taken.
	ErrEmployeeExists = errors.New("employee already exists")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InvalidShareError reports which duty carried the out-of-range share.
type InvalidShareError struct {
	EmployeeID payroll.EmployeeID
	Date       payroll.Date
	Share      float64
}

func (e *InvalidShareError) Error() string {
	return fmt.Sprintf("invalid share %v for %s on %s: must be in (0, 1]",
		e.Share, e.EmployeeID, e.Date)
}

func (e *InvalidShareError) Unwrap() error { return ErrInvalidShare }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsNotFound returns true if the error indicates a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrDutyNotFound) || errors.Is(err, ErrEmployeeNotFound)
}

// IsClientError returns true if the error is due to invalid client input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrEmptyEmployeeID) ||
		errors.Is(err, ErrMissingDate) ||
		errors.Is(err, ErrInvalidShare) ||
		errors.Is(err, ErrEmployeeExists)
}
