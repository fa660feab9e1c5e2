/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract. Currency and
  unit fields are plain floats, unrounded; display rounding is the
  frontend's concern.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"github.com/warp/payroll-engine/payroll"
	"github.com/warp/payroll-engine/roster"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// EmployeeDTO represents a roster member in API responses.
type EmployeeDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateEmployeeRequest is the request to create an employee.
type CreateEmployeeRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DutyDTO represents a duty entry in API responses.
type DutyDTO struct {
	ID         int64   `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"` // ISO "2006-01-02"
	Share      float64 `json:"share"`
	DayType    string  `json:"day_type,omitempty"`
	Qualifying bool    `json:"qualifying"`
}

// CreateDutyRequest is the request to add a duty entry.
type CreateDutyRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"` // ISO "2006-01-02"
	Share      float64 `json:"share"`
}

// PayrollResultDTO is one employee's monthly payout breakdown.
type PayrollResultDTO struct {
	EmployeeID           string  `json:"employee_id"`
	WeekdayUnits         float64 `json:"weekday_units"`
	FridayUnits          float64 `json:"friday_units"`
	OtherQualifyingUnits float64 `json:"other_qualifying_units"`
	QualifyingTotal      float64 `json:"qualifying_total"`
	ThresholdReached     bool    `json:"threshold_reached"`
	DeductionFriday      float64 `json:"deduction_friday"`
	DeductionOther       float64 `json:"deduction_other"`
	PaidQualifyingUnits  float64 `json:"paid_qualifying_units"`
	PayoutWeekday        float64 `json:"payout_weekday"`
	PayoutQualifying     float64 `json:"payout_qualifying"`
	PayoutTotal          float64 `json:"payout_total"`
}

// PayrollReportDTO is the month's full report.
type PayrollReportDTO struct {
	Year    int                `json:"year"`
	Month   int                `json:"month"`
	Results []PayrollResultDTO `json:"results"`
}

// HolidayDTO represents a configured public holiday.
type HolidayDTO struct {
	Date   string `json:"date"`
	Name   string `json:"name"`
	Region string `json:"region"`
}

// DayInfoDTO is the classification of a single calendar date.
type DayInfoDTO struct {
	Date       string `json:"date"`
	Weekday    string `json:"weekday"`
	Qualifying bool   `json:"qualifying"`
	Friday     bool   `json:"friday"`
	Label      string `json:"label"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toEmployeeDTO(e roster.Employee) EmployeeDTO {
	return EmployeeDTO{ID: string(e.ID), Name: e.Name}
}

func toDutyDTO(d roster.Duty, c payroll.DayClassification) DutyDTO {
	return DutyDTO{
		ID:         d.ID,
		EmployeeID: string(d.EmployeeID),
		Date:       d.Date.String(),
		Share:      d.Share,
		DayType:    c.Label,
		Qualifying: c.Qualifying,
	}
}

func toResultDTO(r payroll.Result) PayrollResultDTO {
	return PayrollResultDTO{
		EmployeeID:           string(r.EmployeeID),
		WeekdayUnits:         r.WeekdayUnits.InexactFloat64(),
		FridayUnits:          r.FridayUnits.InexactFloat64(),
		OtherQualifyingUnits: r.OtherQualifyingUnits.InexactFloat64(),
		QualifyingTotal:      r.QualifyingTotal.InexactFloat64(),
		ThresholdReached:     r.ThresholdReached,
		DeductionFriday:      r.DeductionFriday.InexactFloat64(),
		DeductionOther:       r.DeductionOther.InexactFloat64(),
		PaidQualifyingUnits:  r.PaidQualifyingUnits.InexactFloat64(),
		PayoutWeekday:        r.PayoutWeekday.InexactFloat64(),
		PayoutQualifying:     r.PayoutQualifying.InexactFloat64(),
		PayoutTotal:          r.PayoutTotal.InexactFloat64(),
	}
}

func toHolidayDTO(h payroll.Holiday) HolidayDTO {
	return HolidayDTO{Date: h.Date.String(), Name: h.Name, Region: h.Region}
}
