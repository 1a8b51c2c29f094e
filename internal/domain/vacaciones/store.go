package vacaciones

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrBalanceNotFound = errors.New("vacation balance not found")

type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) ListBalances(ctx context.Context, limit, offset int) ([]Balance, error) {
	rows, err := s.pool.Query(ctx, `
    SELECT b.rut, e.full_name, b.days_available, b.accrual_cutoff
    FROM vacation_balances b
    JOIN employees e ON e.rut = b.rut
    ORDER BY e.full_name
    LIMIT $1 OFFSET $2
  `, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var balances []Balance
	for rows.Next() {
		var b Balance
		if err := rows.Scan(&b.RUT, &b.Name, &b.DaysAvailable, &b.AccrualCutoff); err != nil {
			return nil, err
		}
		balances = append(balances, b)
	}
	return balances, rows.Err()
}

func (s *Store) GetBalance(ctx context.Context, rut string, projectTo time.Time) (Balance, error) {
	var b Balance
	err := s.pool.QueryRow(ctx, `
    SELECT b.rut, e.full_name, b.days_available, b.accrual_cutoff
    FROM vacation_balances b
    JOIN employees e ON e.rut = b.rut
    WHERE b.rut = $1
  `, rut).Scan(&b.RUT, &b.Name, &b.DaysAvailable, &b.AccrualCutoff)
	if errors.Is(err, pgx.ErrNoRows) {
		return Balance{}, ErrBalanceNotFound
	}
	if err != nil {
		return Balance{}, err
	}
	if !projectTo.IsZero() {
		b.DaysAvailable = Project(b.DaysAvailable, b.AccrualCutoff, projectTo)
	}
	return b, nil
}

// ApplyMonthlyAccrual credits the statutory accrual to every balance whose
// cutoff is older than the current month. Returns the affected row count.
func (s *Store) ApplyMonthlyAccrual(ctx context.Context) (int, error) {
	tag, err := s.pool.Exec(ctx, `
    UPDATE vacation_balances
    SET days_available = days_available + $1,
        accrual_cutoff = date_trunc('month', now())
    WHERE accrual_cutoff < date_trunc('month', now())
  `, MonthlyAccrual)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}
