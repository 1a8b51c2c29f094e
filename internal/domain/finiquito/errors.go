package finiquito

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrSessionNotFound    = errors.New("finiquito session not found")
	ErrBonusItemNotFound  = errors.New("bonus item not found")
	ErrDeductionNotFound  = errors.New("deduction not found")
	ErrBonusItemImmutable = errors.New("fetched bonus items can only be deactivated")
	ErrMissingParameters  = errors.New("termination date and causal are required")
	ErrUnknownCausal      = errors.New("unknown termination causal")
)
