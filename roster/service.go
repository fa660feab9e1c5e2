/*
service.go - Roster operations bound to the payroll engine

PURPOSE:
  The Service is the seam between storage and calculation. It validates
  duties before they are stored (the engine is deliberately permissive),
  fetches a month's records, and hands them to the pure engine. The
  engine never touches the store; the store never computes.

REPORT SHAPES:
  MonthlyReport:     one Result per employee who worked that month
  FullMonthlyReport: additionally synthesizes a zero Result for every
                     known employee without duties, for rosters that want
                     a row per employee
*/
package roster

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/warp/payroll-engine/payroll"
)

// Service coordinates the duty store and the payroll engine.
type Service struct {
	store  Store
	engine *payroll.Engine
}

// NewService creates a Service.
func NewService(store Store, engine *payroll.Engine) *Service {
	return &Service{store: store, engine: engine}
}

// Engine exposes the underlying engine (e.g., for day classification).
func (s *Service) Engine() *payroll.Engine { return s.engine }

// =============================================================================
// DUTY MANAGEMENT
// =============================================================================

// AddDuty validates and persists a duty entry.
func (s *Service) AddDuty(ctx context.Context, duty Duty) (Duty, error) {
	if err := duty.Validate(); err != nil {
		return Duty{}, err
	}
	return s.store.AddDuty(ctx, duty)
}

// UpdateDuty validates and replaces an existing duty entry.
func (s *Service) UpdateDuty(ctx context.Context, duty Duty) error {
	if err := duty.Validate(); err != nil {
		return err
	}
	return s.store.UpdateDuty(ctx, duty)
}

// RemoveDuty deletes a duty entry.
func (s *Service) RemoveDuty(ctx context.Context, id int64) error {
	return s.store.RemoveDuty(ctx, id)
}

// =============================================================================
// REPORTS
// =============================================================================

// MonthlyReport computes the payout breakdown for every employee with at
// least one duty in the month, sorted by employee ID.
func (s *Service) MonthlyReport(ctx context.Context, year int, month time.Month) ([]payroll.Result, error) {
	duties, err := s.store.ListDutiesForMonth(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("loading duties for %s: %w", payroll.MonthKey(year, month), err)
	}
	return s.engine.Calculate(Records(duties), year, month), nil
}

// FullMonthlyReport is MonthlyReport plus a zero-valued row for every
// known employee without duties in the month.
func (s *Service) FullMonthlyReport(ctx context.Context, year int, month time.Month) ([]payroll.Result, error) {
	results, err := s.MonthlyReport(ctx, year, month)
	if err != nil {
		return nil, err
	}

	employees, err := s.store.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading employees: %w", err)
	}

	seen := make(map[payroll.EmployeeID]bool, len(results))
	for _, r := range results {
		seen[r.EmployeeID] = true
	}
	for _, emp := range employees {
		if !seen[emp.ID] {
			results = append(results, payroll.EmptyResult(emp.ID))
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].EmployeeID < results[j].EmployeeID
	})
	return results, nil
}
