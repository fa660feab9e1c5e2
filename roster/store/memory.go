// Package store provides roster.Store implementations.
package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/warp/payroll-engine/payroll"
	"github.com/warp/payroll-engine/roster"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

type Memory struct {
	mu        sync.RWMutex
	duties    map[int64]roster.Duty
	employees map[payroll.EmployeeID]roster.Employee
	nextID    int64
}

func NewMemory() *Memory {
	return &Memory{
		duties:    make(map[int64]roster.Duty),
		employees: make(map[payroll.EmployeeID]roster.Employee),
		nextID:    1,
	}
}

var _ roster.Store = (*Memory)(nil)

func (m *Memory) AddDuty(_ context.Context, duty roster.Duty) (roster.Duty, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	duty.ID = m.nextID
	m.nextID++
	m.duties[duty.ID] = duty
	return duty, nil
}

func (m *Memory) UpdateDuty(_ context.Context, duty roster.Duty) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.duties[duty.ID]; !ok {
		return roster.ErrDutyNotFound
	}
	m.duties[duty.ID] = duty
	return nil
}

func (m *Memory) RemoveDuty(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.duties[id]; !ok {
		return roster.ErrDutyNotFound
	}
	delete(m.duties, id)
	return nil
}

func (m *Memory) ListDutiesForMonth(_ context.Context, year int, month time.Month) ([]roster.Duty, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []roster.Duty
	for _, d := range m.duties {
		if d.Date.InMonth(year, month) {
			result = append(result, d)
		}
	}
	sortDuties(result)
	return result, nil
}

func (m *Memory) ListAllDuties(_ context.Context) ([]roster.Duty, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]roster.Duty, 0, len(m.duties))
	for _, d := range m.duties {
		result = append(result, d)
	}
	sortDuties(result)
	return result, nil
}

func (m *Memory) SaveEmployee(_ context.Context, emp roster.Employee) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.employees[emp.ID]; ok {
		return roster.ErrEmployeeExists
	}
	m.employees[emp.ID] = emp
	return nil
}

func (m *Memory) ListEmployees(_ context.Context) ([]roster.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]roster.Employee, 0, len(m.employees))
	for _, e := range m.employees {
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// DeleteEmployee removes the employee and cascades to their duties.
func (m *Memory) DeleteEmployee(_ context.Context, id payroll.EmployeeID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.employees[id]; !ok {
		return roster.ErrEmployeeNotFound
	}
	delete(m.employees, id)
	for dutyID, d := range m.duties {
		if d.EmployeeID == id {
			delete(m.duties, dutyID)
		}
	}
	return nil
}

func (m *Memory) Reset(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.duties = make(map[int64]roster.Duty)
	m.employees = make(map[payroll.EmployeeID]roster.Employee)
	m.nextID = 1
	return nil
}

func sortDuties(duties []roster.Duty) {
	sort.Slice(duties, func(i, j int) bool {
		if !duties[i].Date.Equal(duties[j].Date) {
			return duties[i].Date.Before(duties[j].Date)
		}
		return duties[i].EmployeeID < duties[j].EmployeeID
	})
}
