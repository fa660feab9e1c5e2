/*
handlers.go - HTTP API handlers for the duty payroll system

PURPOSE:
  Exposes the roster and payroll report via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to the roster
  service and payroll engine.

ENDPOINTS:
  Employees:
    GET    /api/employees          List all employees
    POST   /api/employees          Create employee
    DELETE /api/employees/{id}     Delete employee (and their duties)

  Duties:
    GET    /api/duties?year=&month= List duties (month-filtered or all)
    POST   /api/duties              Add a duty entry
    DELETE /api/duties/{id}         Remove a duty entry

  Reports:
    GET    /api/payroll?year=&month=[&all=true] Monthly payout report

  Calendar:
    GET    /api/holidays[?year=]   Configured public holidays
    GET    /api/calendar/{date}    Day classification for one date

  Admin:
    POST   /api/reset              Wipe employees and duties (dev only)

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 404: Resource not found
  - 409: Conflict (duplicate employee)
  - 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/warp/payroll-engine/payroll"
	"github.com/warp/payroll-engine/roster"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store   roster.Store
	Service *roster.Service

	// Holidays is optional; when the store also persists holidays the
	// holiday endpoints serve from it, otherwise from the built-in set.
	Holidays roster.HolidayStore
}

// NewHandler creates a Handler around a store and a roster service.
func NewHandler(store roster.Store, service *roster.Service) *Handler {
	h := &Handler{Store: store, Service: service}
	if hs, ok := store.(roster.HolidayStore); ok {
		h.Holidays = hs
	}
	return h
}

// =============================================================================
// EMPLOYEES
// =============================================================================

func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Store.ListEmployees(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	dtos := make([]EmployeeDTO, 0, len(employees))
	for _, e := range employees {
		dtos = append(dtos, toEmployeeDTO(e))
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	if req.ID == "" {
		writeBadRequest(w, "id is required")
		return
	}
	if req.Name == "" {
		req.Name = req.ID
	}

	emp := roster.Employee{ID: payroll.EmployeeID(req.ID), Name: req.Name}
	if err := h.Store.SaveEmployee(r.Context(), emp); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEmployeeDTO(emp))
}

func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Store.DeleteEmployee(r.Context(), payroll.EmployeeID(id)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// DUTIES
// =============================================================================

func (h *Handler) ListDuties(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		duties []roster.Duty
		err    error
	)
	if r.URL.Query().Get("year") != "" || r.URL.Query().Get("month") != "" {
		year, month, ok := parseYearMonth(w, r)
		if !ok {
			return
		}
		duties, err = h.Store.ListDutiesForMonth(ctx, year, month)
	} else {
		duties, err = h.Store.ListAllDuties(ctx)
	}
	if err != nil {
		writeError(w, err)
		return
	}

	engine := h.Service.Engine()
	dtos := make([]DutyDTO, 0, len(duties))
	for _, d := range duties {
		dtos = append(dtos, toDutyDTO(d, engine.Classify(d.Date)))
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) CreateDuty(w http.ResponseWriter, r *http.Request) {
	var req CreateDutyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	date, err := payroll.ParseDate(req.Date)
	if err != nil {
		writeBadRequest(w, "date must be YYYY-MM-DD")
		return
	}

	duty := roster.Duty{
		EmployeeID: payroll.EmployeeID(req.EmployeeID),
		Date:       date,
		Share:      req.Share,
	}
	created, err := h.Service.AddDuty(r.Context(), duty)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toDutyDTO(created, h.Service.Engine().Classify(created.Date)))
}

func (h *Handler) DeleteDuty(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeBadRequest(w, "duty id must be an integer")
		return
	}
	if err := h.Service.RemoveDuty(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// PAYROLL REPORT
// =============================================================================

func (h *Handler) GetPayrollReport(w http.ResponseWriter, r *http.Request) {
	year, month, ok := parseYearMonth(w, r)
	if !ok {
		return
	}

	var (
		results []payroll.Result
		err     error
	)
	if r.URL.Query().Get("all") == "true" {
		// Zero rows for duty-less employees included.
		results, err = h.Service.FullMonthlyReport(r.Context(), year, month)
	} else {
		results, err = h.Service.MonthlyReport(r.Context(), year, month)
	}
	if err != nil {
		writeError(w, err)
		return
	}

	dtos := make([]PayrollResultDTO, 0, len(results))
	for _, res := range results {
		dtos = append(dtos, toResultDTO(res))
	}
	writeJSON(w, http.StatusOK, PayrollReportDTO{Year: year, Month: int(month), Results: dtos})
}

// =============================================================================
// CALENDAR
// =============================================================================

func (h *Handler) ListHolidays(w http.ResponseWriter, r *http.Request) {
	var holidays []payroll.Holiday
	if h.Holidays != nil {
		var err error
		holidays, err = h.Holidays.ListHolidays(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
	} else {
		holidays = payroll.NRWHolidays()
	}

	yearFilter := r.URL.Query().Get("year")
	dtos := make([]HolidayDTO, 0, len(holidays))
	for _, hd := range holidays {
		if yearFilter != "" && strconv.Itoa(hd.Date.Year) != yearFilter {
			continue
		}
		dtos = append(dtos, toHolidayDTO(hd))
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) GetDayInfo(w http.ResponseWriter, r *http.Request) {
	date, err := payroll.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		writeBadRequest(w, "date must be YYYY-MM-DD")
		return
	}

	c := h.Service.Engine().Classify(date)
	writeJSON(w, http.StatusOK, DayInfoDTO{
		Date:       date.String(),
		Weekday:    date.Weekday().String(),
		Qualifying: c.Qualifying,
		Friday:     c.Friday,
		Label:      c.Label,
	})
}

// =============================================================================
// ADMIN
// =============================================================================

func (h *Handler) ResetData(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Reset(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// HELPERS
// =============================================================================

func parseYearMonth(w http.ResponseWriter, r *http.Request) (int, time.Month, bool) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 1 {
		writeBadRequest(w, "year query parameter is required")
		return 0, 0, false
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		writeBadRequest(w, "month query parameter must be 1-12")
		return 0, 0, false
	}
	return year, time.Month(month), true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msg, Code: "bad_request"})
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case roster.IsNotFound(err):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: err.Error(), Code: "not_found"})
	case roster.IsClientError(err):
		status := http.StatusBadRequest
		code := "validation"
		if errors.Is(err, roster.ErrEmployeeExists) {
			status = http.StatusConflict
			code = "conflict"
		}
		writeJSON(w, status, ErrorResponse{Error: err.Error(), Code: code})
	default:
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error(), Code: "internal"})
	}
}
