package licencias

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) ListByEmployee(ctx context.Context, rut string, limit, offset int) ([]Licencia, error) {
	rows, err := s.pool.Query(ctx, `
    SELECT id, rut, leave_type, start_date, end_date, days, COALESCE(folio, '')
    FROM medical_leaves
    WHERE rut = $1
    ORDER BY start_date DESC
    LIMIT $2 OFFSET $3
  `, rut, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leaves []Licencia
	for rows.Next() {
		var l Licencia
		if err := rows.Scan(&l.ID, &l.RUT, &l.Type, &l.StartDate, &l.EndDate, &l.Days, &l.Folio); err != nil {
			return nil, err
		}
		leaves = append(leaves, l)
	}
	return leaves, rows.Err()
}
