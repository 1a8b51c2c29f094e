package payrollhandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"rrhh/internal/domain/auth"
	"rrhh/internal/domain/payroll"
	"rrhh/internal/platform/indicadores"
	"rrhh/internal/transport/http/api"
	"rrhh/internal/transport/http/middleware"
	"rrhh/internal/transport/http/shared"
)

type Handler struct {
	Indicadores *indicadores.Client
	Perms       middleware.ModuleStore
}

func NewHandler(client *indicadores.Client, perms middleware.ModuleStore) *Handler {
	return &Handler{Indicadores: client, Perms: perms}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.Use(middleware.RequireModule(auth.ModulePayroll, h.Perms))

		r.Post("/calculate", h.handleCalculate)
		r.Get("/indicadores", h.handleIndicadores)
	})
}

type calculateRequest struct {
	Gross         float64  `json:"gross"`
	AFPCommission float64  `json:"afpCommission"`
	HealthRate    *float64 `json:"healthRate,omitempty"`
}

func (h *Handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var payload calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	if payload.Gross <= 0 {
		v.Add("gross", "must be greater than zero")
	}
	v.NonNegative("afpCommission", payload.AFPCommission)
	healthRate := payroll.HealthMinRate
	if payload.HealthRate != nil {
		if *payload.HealthRate < payroll.HealthMinRate {
			v.Add("healthRate", "must not be below the statutory 7%")
		} else {
			healthRate = *payload.HealthRate
		}
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	result := payroll.Compute(payload.Gross, payroll.Rates{
		AFPCommission: payload.AFPCommission,
		HealthRate:    healthRate,
		UFValue:       h.Indicadores.Value(r.Context()),
		UTMValue:      h.Indicadores.UTM(r.Context()),
	})
	api.Success(w, result, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleIndicadores(w http.ResponseWriter, r *http.Request) {
	api.Success(w, map[string]float64{
		"uf":  h.Indicadores.Value(r.Context()),
		"utm": h.Indicadores.UTM(r.Context()),
	}, middleware.GetRequestID(r.Context()))
}
