package empleados

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("employee not found")

type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

const employeeColumns = `
  rut, full_name, position, hire_date, company, COALESCE(base_salary, 0),
  (EXTRACT(EPOCH FROM (now() - hire_date)) / 86400 + 1) / 365.25
`

func (s *Store) List(ctx context.Context, search string, limit, offset int) ([]Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees`
	args := []any{limit, offset}
	if search = strings.TrimSpace(search); search != "" {
		query += ` WHERE full_name ILIKE '%' || $3 || '%' OR rut ILIKE '%' || $3 || '%'`
		args = append(args, search)
	}
	query += ` ORDER BY full_name LIMIT $1 OFFSET $2`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []Employee
	for rows.Next() {
		var e Employee
		if err := rows.Scan(&e.RUT, &e.Name, &e.Position, &e.HireDate, &e.Company, &e.BaseSalary, &e.TenureYears); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (s *Store) Get(ctx context.Context, rut string) (Employee, error) {
	var e Employee
	err := s.pool.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE rut = $1`, rut).
		Scan(&e.RUT, &e.Name, &e.Position, &e.HireDate, &e.Company, &e.BaseSalary, &e.TenureYears)
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, ErrNotFound
	}
	if err != nil {
		return Employee{}, err
	}
	return e, nil
}

// IncomeHistory lists payroll lines for an employee, optionally filtered by
// income type, newest first.
func (s *Store) IncomeHistory(ctx context.Context, rut, incomeType string, limit, offset int) ([]IncomeItem, error) {
	query := `
    SELECT rut, income_type, concepto, amount, paid_on
    FROM income_items
    WHERE rut = $1
  `
	args := []any{rut, limit, offset}
	if incomeType != "" {
		query += ` AND income_type = $4`
		args = append(args, incomeType)
	}
	query += ` ORDER BY paid_on DESC LIMIT $2 OFFSET $3`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []IncomeItem
	for rows.Next() {
		var item IncomeItem
		if err := rows.Scan(&item.RUT, &item.IncomeType, &item.Concepto, &item.Amount, &item.PaidOn); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
