/*
Package sqlite provides a SQLite-backed implementation of the roster
storage interfaces.

PURPOSE:
  Implements roster.Store and roster.HolidayStore using SQLite. The
  payroll engine never touches this package; it only sees materialized
  duty records and a holiday calendar.

KEY TABLES:
  duties:    one row per duty assignment (employee, date, share)
  employees: roster members
  holidays:  the public holiday calendar, seeded with the built-in NRW
             set and extensible per year without a code change

DATE STORAGE:
  Dates are stored as ISO "YYYY-MM-DD" strings plus a YYYYMM month_key
  column. There is deliberately no time-of-day component anywhere in the
  schema - the payroll rules compare calendar days only.

SHARES:
  Shares are stored as TEXT to round-trip exactly what the caller
  supplied; they are parsed back to float64 on read.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better concurrency:
  multiple readers don't block, single writer at a time.

USAGE:
  store, err := sqlite.New("./data/duties.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

SEE ALSO:
  - roster/store.go: interface definitions
  - roster/store/memory.go: in-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/warp/payroll-engine/payroll"
	"github.com/warp/payroll-engine/roster"
)

// Store implements roster.Store and roster.HolidayStore using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

var (
	_ roster.Store        = (*Store)(nil)
	_ roster.HolidayStore = (*Store)(nil)
)

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database. The holidays table is seeded
// with the built-in NRW set on first run.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps ":memory:" databases coherent: the pool
	// would otherwise hand out fresh empty databases per connection.
	db.SetMaxOpenConns(1)

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	if err := store.seedHolidays(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to seed holidays: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS employees (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS duties (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		employee_id TEXT NOT NULL,
		date TEXT NOT NULL,
		share TEXT NOT NULL,
		month_key TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	-- Month report is the hot path
	CREATE INDEX IF NOT EXISTS idx_duties_month_key
		ON duties(month_key);
	CREATE INDEX IF NOT EXISTS idx_duties_employee
		ON duties(employee_id);
	CREATE INDEX IF NOT EXISTS idx_duties_date
		ON duties(date);

	CREATE TABLE IF NOT EXISTS holidays (
		date TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		region TEXT NOT NULL DEFAULT 'NRW'
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// seedHolidays inserts the built-in NRW holidays, skipping dates that are
// already configured so operator edits survive restarts.
func (s *Store) seedHolidays() error {
	for _, h := range payroll.NRWHolidays() {
		_, err := s.db.Exec(
			`INSERT OR IGNORE INTO holidays (date, name, region) VALUES (?, ?, ?)`,
			h.Date.String(), h.Name, h.Region,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// DUTIES
// =============================================================================

func (s *Store) AddDuty(ctx context.Context, duty roster.Duty) (roster.Duty, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO duties (employee_id, date, share, month_key, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		string(duty.EmployeeID),
		duty.Date.String(),
		strconv.FormatFloat(duty.Share, 'g', -1, 64),
		duty.MonthKey(),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return roster.Duty{}, fmt.Errorf("failed to insert duty: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return roster.Duty{}, fmt.Errorf("failed to read duty id: %w", err)
	}
	duty.ID = id
	return duty, nil
}

func (s *Store) UpdateDuty(ctx context.Context, duty roster.Duty) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx,
		`UPDATE duties SET employee_id = ?, date = ?, share = ?, month_key = ?
		 WHERE id = ?`,
		string(duty.EmployeeID),
		duty.Date.String(),
		strconv.FormatFloat(duty.Share, 'g', -1, 64),
		duty.MonthKey(),
		duty.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update duty: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return roster.ErrDutyNotFound
	}
	return nil
}

func (s *Store) RemoveDuty(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM duties WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete duty: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return roster.ErrDutyNotFound
	}
	return nil
}

func (s *Store) ListDutiesForMonth(ctx context.Context, year int, month time.Month) ([]roster.Duty, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, employee_id, date, share FROM duties
		 WHERE month_key = ?
		 ORDER BY date, employee_id`,
		payroll.MonthKey(year, month),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query duties: %w", err)
	}
	defer rows.Close()

	return scanDuties(rows)
}

func (s *Store) ListAllDuties(ctx context.Context) ([]roster.Duty, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, employee_id, date, share FROM duties
		 ORDER BY date, employee_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query duties: %w", err)
	}
	defer rows.Close()

	return scanDuties(rows)
}

func scanDuties(rows *sql.Rows) ([]roster.Duty, error) {
	var duties []roster.Duty
	for rows.Next() {
		var (
			d        roster.Duty
			empID    string
			dateStr  string
			shareStr string
		)
		if err := rows.Scan(&d.ID, &empID, &dateStr, &shareStr); err != nil {
			return nil, fmt.Errorf("failed to scan duty: %w", err)
		}

		date, err := payroll.ParseDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("corrupt duty date: %w", err)
		}
		share, err := strconv.ParseFloat(shareStr, 64)
		if err != nil {
			return nil, fmt.Errorf("corrupt duty share %q: %w", shareStr, err)
		}

		d.EmployeeID = payroll.EmployeeID(empID)
		d.Date = date
		d.Share = share
		duties = append(duties, d)
	}
	return duties, rows.Err()
}

// =============================================================================
// EMPLOYEES
// =============================================================================

func (s *Store) SaveEmployee(ctx context.Context, emp roster.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO employees (id, name, created_at) VALUES (?, ?, ?)`,
		string(emp.ID), emp.Name, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return roster.ErrEmployeeExists
		}
		return fmt.Errorf("failed to insert employee: %w", err)
	}
	return nil
}

func (s *Store) ListEmployees(ctx context.Context) ([]roster.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM employees ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []roster.Employee
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, roster.Employee{ID: payroll.EmployeeID(id), Name: name})
	}
	return employees, rows.Err()
}

// DeleteEmployee removes the employee and cascades to their duties.
func (s *Store) DeleteEmployee(ctx context.Context, id payroll.EmployeeID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, string(id))
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return roster.ErrEmployeeNotFound
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM duties WHERE employee_id = ?`, string(id)); err != nil {
		return fmt.Errorf("failed to delete employee duties: %w", err)
	}

	return tx.Commit()
}

func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `DELETE FROM duties; DELETE FROM employees;`)
	return err
}

// =============================================================================
// HOLIDAYS
// =============================================================================

func (s *Store) SaveHoliday(ctx context.Context, h payroll.Holiday) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO holidays (date, name, region) VALUES (?, ?, ?)`,
		h.Date.String(), h.Name, h.Region,
	)
	if err != nil {
		return fmt.Errorf("failed to save holiday: %w", err)
	}
	return nil
}

func (s *Store) ListHolidays(ctx context.Context) ([]payroll.Holiday, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `SELECT date, name, region FROM holidays ORDER BY date`)
	if err != nil {
		return nil, fmt.Errorf("failed to query holidays: %w", err)
	}
	defer rows.Close()

	var holidays []payroll.Holiday
	for rows.Next() {
		var dateStr, name, region string
		if err := rows.Scan(&dateStr, &name, &region); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		date, err := payroll.ParseDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("corrupt holiday date: %w", err)
		}
		holidays = append(holidays, payroll.Holiday{Date: date, Name: name, Region: region})
	}
	return holidays, rows.Err()
}

// Calendar materializes the holidays table as an immutable calendar.
// Call again after SaveHoliday to pick up changes.
func (s *Store) Calendar(ctx context.Context) (payroll.HolidayCalendar, error) {
	holidays, err := s.ListHolidays(ctx)
	if err != nil {
		return nil, err
	}
	return payroll.NewStaticCalendar(holidays), nil
}
