package asistencia

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) ListByEmployee(ctx context.Context, rut string, from, to time.Time, limit, offset int) ([]Record, error) {
	query := `
    SELECT id, rut, record_date, COALESCE(check_in, ''), COALESCE(check_out, ''), status
    FROM attendance_records
    WHERE rut = $1
  `
	args := []any{rut, limit, offset}
	if !from.IsZero() {
		args = append(args, from)
		query += ` AND record_date >= $4`
	}
	if !to.IsZero() {
		args = append(args, to)
		if from.IsZero() {
			query += ` AND record_date <= $4`
		} else {
			query += ` AND record_date <= $5`
		}
	}
	query += ` ORDER BY record_date DESC LIMIT $2 OFFSET $3`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.RUT, &r.Date, &r.CheckIn, &r.CheckOut, &r.Status); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
