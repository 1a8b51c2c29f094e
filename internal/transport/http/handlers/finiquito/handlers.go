package finiquitohandler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"rrhh/internal/domain/auth"
	"rrhh/internal/domain/finiquito"
	"rrhh/internal/platform/metrics"
	"rrhh/internal/transport/http/api"
	"rrhh/internal/transport/http/middleware"
	"rrhh/internal/transport/http/shared"
)

type Handler struct {
	Service *finiquito.Service
	Perms   middleware.ModuleStore
	Metrics *metrics.Collector
}

func NewHandler(service *finiquito.Service, perms middleware.ModuleStore, collector *metrics.Collector) *Handler {
	return &Handler{Service: service, Perms: perms, Metrics: collector}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/finiquitos", func(r chi.Router) {
		r.Use(middleware.RequireModule(auth.ModuleFiniquitos, h.Perms))

		r.Get("/causales", h.handleListCausales)

		r.Route("/{rut}", func(r chi.Router) {
			r.Get("/", h.handleOpen)
			r.Delete("/", h.handleDiscard)
			r.Put("/parameters", h.handleSetParameters)
			r.Put("/salary", h.handleSetSalary)
			r.Put("/mobility", h.handleSetMobility)
			r.Put("/wages", h.handleSetWages)
			r.Put("/vacation", h.handleSetVacation)
			r.Delete("/vacation", h.handleRestoreVacation)
			r.Post("/bonus", h.handleAddBonus)
			r.Post("/bonus/toggle", h.handleToggleBonus)
			r.Delete("/bonus/{concepto}/{index}", h.handleRemoveBonus)
			r.Post("/deductions", h.handleAddDeduction)
			r.Delete("/deductions/{index}", h.handleRemoveDeduction)
			r.Post("/document", h.handleGenerate)
		})
	})
}

func (h *Handler) handleListCausales(w http.ResponseWriter, r *http.Request) {
	api.Success(w, finiquito.Causales, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleOpen(w http.ResponseWriter, r *http.Request) {
	rut, ok := h.rutParam(w, r)
	if !ok {
		return
	}
	session, err := h.Service.Open(r.Context(), rut)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, session, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDiscard(w http.ResponseWriter, r *http.Request) {
	rut, ok := h.rutParam(w, r)
	if !ok {
		return
	}
	if err := h.Service.Discard(r.Context(), rut); err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, map[string]any{"discarded": true}, middleware.GetRequestID(r.Context()))
}

type parametersRequest struct {
	Causal      string `json:"causal"`
	LastWorkDay string `json:"lastWorkDay"`
	NoticeGiven bool   `json:"noticeGiven"`
	Signer      string `json:"signer"`
}

func (h *Handler) handleSetParameters(w http.ResponseWriter, r *http.Request) {
	rut, ok := h.rutParam(w, r)
	if !ok {
		return
	}
	var payload parametersRequest
	if !h.decode(w, r, &payload) {
		return
	}

	v := shared.NewValidator()
	// An empty causal previews the vacation payout alone; document
	// generation is where the causal becomes mandatory.
	if strings.TrimSpace(payload.Causal) != "" {
		v.Enum("causal", payload.Causal, finiquito.Causales, "unknown termination causal")
	}
	var lastWorkDay time.Time
	if strings.TrimSpace(payload.LastWorkDay) != "" {
		lastWorkDay, _ = v.Date("lastWorkDay", payload.LastWorkDay)
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	session, err := h.Service.SetParameters(r.Context(), rut, finiquito.Parameters{
		Causal:      strings.TrimSpace(payload.Causal),
		LastWorkDay: lastWorkDay,
		NoticeGiven: payload.NoticeGiven,
		Signer:      strings.TrimSpace(payload.Signer),
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, session, middleware.GetRequestID(r.Context()))
}

type amountRequest struct {
	Amount float64 `json:"amount"`
}

func (h *Handler) handleSetSalary(w http.ResponseWriter, r *http.Request) {
	h.applyAmount(w, r, "amount", h.Service.SetBaseSalary)
}

func (h *Handler) handleSetMobility(w http.ResponseWriter, r *http.Request) {
	h.applyAmount(w, r, "amount", h.Service.SetMobility)
}

func (h *Handler) handleSetWages(w http.ResponseWriter, r *http.Request) {
	h.applyAmount(w, r, "amount", h.Service.SetOutstandingWages)
}

func (h *Handler) handleSetVacation(w http.ResponseWriter, r *http.Request) {
	h.applyAmount(w, r, "amount", h.Service.SetVacationDays)
}

func (h *Handler) handleRestoreVacation(w http.ResponseWriter, r *http.Request) {
	rut, ok := h.rutParam(w, r)
	if !ok {
		return
	}
	session, err := h.Service.RestoreVacationAutofill(r.Context(), rut)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, session, middleware.GetRequestID(r.Context()))
}

type bonusRequest struct {
	Concepto string  `json:"concepto"`
	Amount   float64 `json:"amount"`
}

func (h *Handler) handleAddBonus(w http.ResponseWriter, r *http.Request) {
	rut, ok := h.rutParam(w, r)
	if !ok {
		return
	}
	var payload bonusRequest
	if !h.decode(w, r, &payload) {
		return
	}

	v := shared.NewValidator()
	v.Required("concepto", payload.Concepto, "bonus concepto is required")
	v.NonNegative("amount", payload.Amount)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	session, err := h.Service.AddBonus(r.Context(), rut, strings.TrimSpace(payload.Concepto), payload.Amount)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Created(w, session, middleware.GetRequestID(r.Context()))
}

type bonusToggleRequest struct {
	Concepto string `json:"concepto"`
	Index    *int   `json:"index,omitempty"`
	Active   bool   `json:"active"`
}

func (h *Handler) handleToggleBonus(w http.ResponseWriter, r *http.Request) {
	rut, ok := h.rutParam(w, r)
	if !ok {
		return
	}
	var payload bonusToggleRequest
	if !h.decode(w, r, &payload) {
		return
	}

	v := shared.NewValidator()
	v.Required("concepto", payload.Concepto, "bonus concepto is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	var (
		session finiquito.Session
		err     error
	)
	if payload.Index != nil {
		session, err = h.Service.ToggleBonus(r.Context(), rut, strings.TrimSpace(payload.Concepto), *payload.Index, payload.Active)
	} else {
		session, err = h.Service.ToggleBonusGroup(r.Context(), rut, strings.TrimSpace(payload.Concepto), payload.Active)
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, session, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleRemoveBonus(w http.ResponseWriter, r *http.Request) {
	rut, ok := h.rutParam(w, r)
	if !ok {
		return
	}
	concepto := strings.TrimSpace(chi.URLParam(r, "concepto"))
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if concepto == "" || err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_path", "concepto and numeric index are required", middleware.GetRequestID(r.Context()))
		return
	}

	session, err := h.Service.RemoveBonus(r.Context(), rut, concepto, index)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, session, middleware.GetRequestID(r.Context()))
}

type deductionRequest struct {
	Concepto     string  `json:"concepto"`
	Amount       float64 `json:"amount"`
	Installments int     `json:"installments"`
	Detail       string  `json:"detail"`
}

func (h *Handler) handleAddDeduction(w http.ResponseWriter, r *http.Request) {
	rut, ok := h.rutParam(w, r)
	if !ok {
		return
	}
	var payload deductionRequest
	if !h.decode(w, r, &payload) {
		return
	}

	v := shared.NewValidator()
	// Free-form concepts are allowed; only prestamo_interno carries the UF
	// conversion in the aggregator.
	v.Required("concepto", payload.Concepto, "deduction concepto is required")
	v.NonNegative("amount", payload.Amount)
	if payload.Installments < 0 {
		v.Add("installments", "must not be negative")
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	session, err := h.Service.AddDeduction(r.Context(), rut, finiquito.DeductionItem{
		Concepto:     strings.TrimSpace(payload.Concepto),
		Amount:       payload.Amount,
		Installments: payload.Installments,
		Detail:       strings.TrimSpace(payload.Detail),
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Created(w, session, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleRemoveDeduction(w http.ResponseWriter, r *http.Request) {
	rut, ok := h.rutParam(w, r)
	if !ok {
		return
	}
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_path", "numeric deduction index is required", middleware.GetRequestID(r.Context()))
		return
	}

	session, err := h.Service.RemoveDeduction(r.Context(), rut, index)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, session, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	rut, ok := h.rutParam(w, r)
	if !ok {
		return
	}
	path, err := h.Service.Generate(r.Context(), rut)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if h.Metrics != nil {
		h.Metrics.RecordSettlement()
	}
	api.Created(w, map[string]any{"document": path}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) applyAmount(w http.ResponseWriter, r *http.Request, field string, apply func(ctx context.Context, rut string, amount float64) (finiquito.Session, error)) {
	rut, ok := h.rutParam(w, r)
	if !ok {
		return
	}
	var payload amountRequest
	if !h.decode(w, r, &payload) {
		return
	}

	v := shared.NewValidator()
	v.NonNegative(field, payload.Amount)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	session, err := apply(r.Context(), rut, payload.Amount)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, session, middleware.GetRequestID(r.Context()))
}

func (h *Handler) rutParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	rut := shared.NormalizeRUT(chi.URLParam(r, "rut"))
	if !shared.ValidRUT(rut) {
		api.Fail(w, http.StatusBadRequest, "invalid_rut", "a valid RUT is required", middleware.GetRequestID(r.Context()))
		return "", false
	}
	return rut, true
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return false
	}
	return true
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	requestID := middleware.GetRequestID(r.Context())
	switch {
	case errors.Is(err, finiquito.ErrEmployeeNotFound):
		api.Fail(w, http.StatusNotFound, "employee_not_found", err.Error(), requestID)
	case errors.Is(err, finiquito.ErrSessionNotFound):
		api.Fail(w, http.StatusNotFound, "session_not_found", err.Error(), requestID)
	case errors.Is(err, finiquito.ErrBonusItemNotFound):
		api.Fail(w, http.StatusNotFound, "bonus_not_found", err.Error(), requestID)
	case errors.Is(err, finiquito.ErrDeductionNotFound):
		api.Fail(w, http.StatusNotFound, "deduction_not_found", err.Error(), requestID)
	case errors.Is(err, finiquito.ErrBonusItemImmutable):
		api.Fail(w, http.StatusConflict, "bonus_immutable", err.Error(), requestID)
	case errors.Is(err, finiquito.ErrUnknownCausal):
		api.Fail(w, http.StatusBadRequest, "unknown_causal", err.Error(), requestID)
	case errors.Is(err, finiquito.ErrMissingParameters):
		api.Fail(w, http.StatusUnprocessableEntity, "missing_parameters", err.Error(), requestID)
	default:
		api.Fail(w, http.StatusInternalServerError, "internal_error", "request failed", requestID)
	}
}
