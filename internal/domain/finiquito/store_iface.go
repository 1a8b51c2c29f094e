package finiquito

import (
	"context"
	"time"
)

type StoreAPI interface {
	GetEmployee(ctx context.Context, rut string) (Employee, error)
	ListVariableIncome(ctx context.Context, rut string) ([]BonusItem, error)
	ListDeductions(ctx context.Context, rut string) ([]DeductionItem, error)
	VacationDays(ctx context.Context, rut string, projectTo time.Time) (float64, error)
	SaveSession(ctx context.Context, session Session) error
	GetSession(ctx context.Context, rut string) (Session, error)
	DeleteSession(ctx context.Context, rut string) error
}

// UFSource provides the day's UF value. Implementations degrade to a cached
// or configured fallback value instead of failing.
type UFSource interface {
	Value(ctx context.Context) float64
}
