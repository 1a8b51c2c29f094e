package finiquito

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rrhh/internal/domain/vacaciones"
)

type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) GetEmployee(ctx context.Context, rut string) (Employee, error) {
	var e Employee
	err := s.pool.QueryRow(ctx, `
    SELECT rut, full_name, position, hire_date, company, COALESCE(base_salary, 0),
           (EXTRACT(EPOCH FROM (now() - hire_date)) / 86400 + 1) / 365.25
    FROM employees
    WHERE rut = $1
  `, rut).Scan(&e.RUT, &e.Name, &e.Position, &e.HireDate, &e.Company, &e.BaseSalary, &e.TenureYears)
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, ErrEmployeeNotFound
	}
	if err != nil {
		return Employee{}, err
	}
	return e, nil
}

// ListVariableIncome returns the last twelve months of variable income lines,
// indexed per concept group in payment order.
func (s *Store) ListVariableIncome(ctx context.Context, rut string) ([]BonusItem, error) {
	rows, err := s.pool.Query(ctx, `
    SELECT concepto, amount
    FROM income_items
    WHERE rut = $1
      AND income_type = 'variable'
      AND paid_on >= now() - interval '12 months'
    ORDER BY concepto, paid_on
  `, rut)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []BonusItem
	indexes := make(map[string]int)
	for rows.Next() {
		var item BonusItem
		if err := rows.Scan(&item.Concepto, &item.Amount); err != nil {
			return nil, err
		}
		item.Active = true
		item.Source = BonusSourceFetched
		item.Index = indexes[item.Concepto]
		indexes[item.Concepto]++
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *Store) ListDeductions(ctx context.Context, rut string) ([]DeductionItem, error) {
	rows, err := s.pool.Query(ctx, `
    SELECT concepto, amount, installments, COALESCE(detail, '')
    FROM employee_deductions
    WHERE rut = $1
    ORDER BY concepto
  `, rut)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []DeductionItem
	for rows.Next() {
		var item DeductionItem
		if err := rows.Scan(&item.Concepto, &item.Amount, &item.Installments, &item.Detail); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// VacationDays returns the pending balance, projected to projectTo when a
// date is given.
func (s *Store) VacationDays(ctx context.Context, rut string, projectTo time.Time) (float64, error) {
	var days float64
	var cutoff time.Time
	err := s.pool.QueryRow(ctx, `
    SELECT days_available, accrual_cutoff
    FROM vacation_balances
    WHERE rut = $1
  `, rut).Scan(&days, &cutoff)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if projectTo.IsZero() {
		return days, nil
	}
	return vacaciones.Project(days, cutoff, projectTo), nil
}

func (s *Store) SaveSession(ctx context.Context, session Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, `
    INSERT INTO finiquito_sessions (rut, payload, updated_at)
    VALUES ($1, $2, now())
    ON CONFLICT (rut) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()
  `, session.RUT, payload)
	return err
}

func (s *Store) GetSession(ctx context.Context, rut string) (Session, error) {
	var payload []byte
	err := s.pool.QueryRow(ctx, `
    SELECT payload FROM finiquito_sessions WHERE rut = $1
  `, rut).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return Session{}, ErrSessionNotFound
	}
	if err != nil {
		return Session{}, err
	}
	var session Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return Session{}, err
	}
	return session, nil
}

func (s *Store) DeleteSession(ctx context.Context, rut string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM finiquito_sessions WHERE rut = $1`, rut)
	return err
}
