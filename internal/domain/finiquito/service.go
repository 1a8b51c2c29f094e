package finiquito

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// Defaults are the named business fallbacks applied when a source is missing.
type Defaults struct {
	BaseSalary  float64
	Mobility    float64
	MinimumWage float64
}

type Service struct {
	store    StoreAPI
	uf       UFSource
	defaults Defaults
	docDir   string
	proj     *projector
}

func NewService(store StoreAPI, uf UFSource, defaults Defaults, docDir string, debounce time.Duration) *Service {
	return &Service{
		store:    store,
		uf:       uf,
		defaults: defaults,
		docDir:   docDir,
		proj:     newProjector(debounce),
	}
}

// Open restores the persisted calculation session for rut, or builds a fresh
// one from the external sources. Every fetch except the employee record
// degrades independently: missing history or balances leave the form usable.
func (s *Service) Open(ctx context.Context, rut string) (Session, error) {
	session, err := s.store.GetSession(ctx, rut)
	if err == nil {
		return session, nil
	}
	if !errors.Is(err, ErrSessionNotFound) {
		slog.Warn("finiquito session restore failed", "rut", rut, "err", err)
	}

	employee, err := s.store.GetEmployee(ctx, rut)
	if err != nil {
		return Session{}, err
	}

	in := SettlementInput{
		Employee:    employee,
		BaseSalary:  employee.BaseSalary,
		Mobility:    s.defaults.Mobility,
		MinimumWage: s.defaults.MinimumWage,
		UFValue:     s.uf.Value(ctx),
	}
	if in.BaseSalary <= 0 {
		in.BaseSalary = s.defaults.BaseSalary
	}

	if bonuses, err := s.store.ListVariableIncome(ctx, rut); err != nil {
		slog.Warn("variable income fetch failed", "rut", rut, "err", err)
	} else {
		in.Bonuses = bonuses
	}

	if deductions, err := s.store.ListDeductions(ctx, rut); err != nil {
		slog.Warn("deductions fetch failed", "rut", rut, "err", err)
	} else {
		in.Deductions = deductions
	}

	if days, err := s.store.VacationDays(ctx, rut, time.Time{}); err != nil {
		slog.Warn("vacation balance fetch failed", "rut", rut, "err", err)
	} else {
		in.Vacation.DaysAvailable = days
	}

	return s.save(ctx, Session{RUT: rut, Input: in})
}

func (s *Service) load(ctx context.Context, rut string) (Session, error) {
	return s.store.GetSession(ctx, rut)
}

func (s *Service) save(ctx context.Context, session Session) (Session, error) {
	session.Input.UFValue = s.currentUF(ctx, session.Input.UFValue)
	session.Result = Recompute(session.Input)
	session.UpdatedAt = time.Now().UTC()
	if err := s.store.SaveSession(ctx, session); err != nil {
		return Session{}, err
	}
	return session, nil
}

func (s *Service) currentUF(ctx context.Context, previous float64) float64 {
	if value := s.uf.Value(ctx); value > 0 {
		return value
	}
	return previous
}

// SetParameters replaces the operator parameters and recomputes. A new
// termination date schedules a debounced vacation projection refetch unless
// the operator has overridden the vacation field.
func (s *Service) SetParameters(ctx context.Context, rut string, params Parameters) (Session, error) {
	if params.Causal != "" && !ValidCausal(params.Causal) {
		return Session{}, ErrUnknownCausal
	}
	session, err := s.load(ctx, rut)
	if err != nil {
		return Session{}, err
	}
	session.Input.Params = params
	session, err = s.save(ctx, session)
	if err == nil && !params.LastWorkDay.IsZero() && !session.Input.Vacation.Overridden {
		s.scheduleProjection(rut, params.LastWorkDay)
	}
	return session, err
}

func (s *Service) SetBaseSalary(ctx context.Context, rut string, salary float64) (Session, error) {
	return s.mutate(ctx, rut, func(in *SettlementInput) {
		in.BaseSalary = salary
	})
}

func (s *Service) SetMobility(ctx context.Context, rut string, mobility float64) (Session, error) {
	return s.mutate(ctx, rut, func(in *SettlementInput) {
		in.Mobility = mobility
	})
}

func (s *Service) SetOutstandingWages(ctx context.Context, rut string, wages float64) (Session, error) {
	return s.mutate(ctx, rut, func(in *SettlementInput) {
		in.OutstandingWages = wages
	})
}

// SetVacationDays records a manual override and suppresses further projection
// refetches until the autofill is explicitly restored.
func (s *Service) SetVacationDays(ctx context.Context, rut string, days float64) (Session, error) {
	s.proj.invalidate(rut)
	return s.mutate(ctx, rut, func(in *SettlementInput) {
		in.Vacation = VacationState{DaysAvailable: days, Overridden: true}
	})
}

// RestoreVacationAutofill clears the manual override and refetches the
// projected balance immediately.
func (s *Service) RestoreVacationAutofill(ctx context.Context, rut string) (Session, error) {
	session, err := s.load(ctx, rut)
	if err != nil {
		return Session{}, err
	}
	session.Input.Vacation.Overridden = false
	if days, err := s.store.VacationDays(ctx, rut, session.Input.Params.LastWorkDay); err != nil {
		slog.Warn("vacation balance fetch failed", "rut", rut, "err", err)
	} else {
		session.Input.Vacation.DaysAvailable = days
	}
	return s.save(ctx, session)
}

func (s *Service) AddBonus(ctx context.Context, rut, concepto string, amount float64) (Session, error) {
	return s.mutate(ctx, rut, func(in *SettlementInput) {
		in.Bonuses = AddManual(in.Bonuses, concepto, amount)
	})
}

func (s *Service) RemoveBonus(ctx context.Context, rut, concepto string, index int) (Session, error) {
	return s.mutateErr(ctx, rut, func(in *SettlementInput) error {
		items, err := RemoveManual(in.Bonuses, concepto, index)
		if err != nil {
			return err
		}
		in.Bonuses = items
		return nil
	})
}

func (s *Service) ToggleBonus(ctx context.Context, rut, concepto string, index int, active bool) (Session, error) {
	return s.mutateErr(ctx, rut, func(in *SettlementInput) error {
		items, err := ToggleItem(in.Bonuses, concepto, index, active)
		if err != nil {
			return err
		}
		in.Bonuses = items
		return nil
	})
}

func (s *Service) ToggleBonusGroup(ctx context.Context, rut, concepto string, active bool) (Session, error) {
	return s.mutate(ctx, rut, func(in *SettlementInput) {
		in.Bonuses = ToggleGroup(in.Bonuses, concepto, active)
	})
}

func (s *Service) AddDeduction(ctx context.Context, rut string, item DeductionItem) (Session, error) {
	return s.mutate(ctx, rut, func(in *SettlementInput) {
		in.Deductions = append(in.Deductions, item)
	})
}

func (s *Service) RemoveDeduction(ctx context.Context, rut string, index int) (Session, error) {
	return s.mutateErr(ctx, rut, func(in *SettlementInput) error {
		if index < 0 || index >= len(in.Deductions) {
			return ErrDeductionNotFound
		}
		in.Deductions = append(in.Deductions[:index:index], in.Deductions[index+1:]...)
		return nil
	})
}

// Discard drops the persisted session; the next Open starts from fresh data.
func (s *Service) Discard(ctx context.Context, rut string) error {
	return s.store.DeleteSession(ctx, rut)
}

// Generate validates the session, renders the settlement document and closes
// the calculation session.
func (s *Service) Generate(ctx context.Context, rut string) (string, error) {
	session, err := s.load(ctx, rut)
	if err != nil {
		return "", err
	}
	path, err := RenderDocument(session, s.docDir)
	if err != nil {
		return "", err
	}
	if err := s.store.DeleteSession(ctx, rut); err != nil {
		slog.Warn("finiquito session cleanup failed", "rut", rut, "err", err)
	}
	return path, nil
}

func (s *Service) mutate(ctx context.Context, rut string, apply func(*SettlementInput)) (Session, error) {
	return s.mutateErr(ctx, rut, func(in *SettlementInput) error {
		apply(in)
		return nil
	})
}

func (s *Service) mutateErr(ctx context.Context, rut string, apply func(*SettlementInput) error) (Session, error) {
	session, err := s.load(ctx, rut)
	if err != nil {
		return Session{}, err
	}
	if err := apply(&session.Input); err != nil {
		return Session{}, err
	}
	return s.save(ctx, session)
}
