package jobs

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"rrhh/internal/domain/vacaciones"
)

const JobVacationAccrual = "vacation_accrual"

// Service runs periodic background work, currently the monthly vacation
// accrual, recording each run in job_runs.
type Service struct {
	DB       *pgxpool.Pool
	Balances *vacaciones.Store
	queue    chan job
}

type job struct {
	Type string
	Run  func(context.Context) (any, error)
}

func New(db *pgxpool.Pool, balances *vacaciones.Store) *Service {
	return &Service{
		DB:       db,
		Balances: balances,
		queue:    make(chan job, 32),
	}
}

func (s *Service) Start(ctx context.Context, accrualInterval time.Duration) {
	go s.worker(ctx)
	if accrualInterval > 0 {
		go s.scheduleAccrual(ctx, accrualInterval)
	}
}

func (s *Service) Enqueue(jobType string, run func(context.Context) (any, error)) {
	select {
	case s.queue <- job{Type: jobType, Run: run}:
	default:
		slog.Warn("job queue full", "jobType", jobType)
	}
}

func (s *Service) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-s.queue:
			if err := s.runJob(ctx, j); err != nil {
				slog.Warn("job run failed", "jobType", j.Type, "err", err)
			}
		}
	}
}

func (s *Service) runJob(ctx context.Context, j job) error {
	runID := ""
	if err := s.DB.QueryRow(ctx, `
    INSERT INTO job_runs (job_type, status)
    VALUES ($1, $2)
    RETURNING id
  `, j.Type, "running").Scan(&runID); err != nil {
		slog.Warn("job run insert failed", "err", err)
	}

	details, err := j.Run(ctx)
	status := "completed"
	if err != nil {
		status = "failed"
	}
	detailsJSON, marshalErr := json.Marshal(details)
	if marshalErr != nil {
		detailsJSON = []byte("{}")
	}
	if runID != "" {
		if _, updErr := s.DB.Exec(ctx, `
      UPDATE job_runs
      SET status = $1, details_json = $2, completed_at = now()
      WHERE id = $3
    `, status, detailsJSON, runID); updErr != nil {
			slog.Warn("job run update failed", "err", updErr)
		}
	}
	return err
}

func (s *Service) scheduleAccrual(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Enqueue(JobVacationAccrual, func(ctx context.Context) (any, error) {
				updated, err := s.Balances.ApplyMonthlyAccrual(ctx)
				return map[string]any{"balancesUpdated": updated}, err
			})
		}
	}
}
