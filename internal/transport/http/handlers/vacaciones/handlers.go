package vacacioneshandler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"rrhh/internal/domain/auth"
	"rrhh/internal/domain/vacaciones"
	"rrhh/internal/transport/http/api"
	"rrhh/internal/transport/http/middleware"
	"rrhh/internal/transport/http/shared"
)

type Handler struct {
	Store *vacaciones.Store
	Perms middleware.ModuleStore
}

func NewHandler(store *vacaciones.Store, perms middleware.ModuleStore) *Handler {
	return &Handler{Store: store, Perms: perms}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/vacaciones", func(r chi.Router) {
		r.Use(middleware.RequireModule(auth.ModuleVacaciones, h.Perms))

		r.Get("/", h.handleListBalances)
		r.Get("/{rut}", h.handleGetBalance)
	})
}

func (h *Handler) handleListBalances(w http.ResponseWriter, r *http.Request) {
	page := shared.ParsePagination(r, 50, 200)
	balances, err := h.Store.ListBalances(r.Context(), page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "list_error", "failed to list vacation balances", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, balances, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetBalance(w http.ResponseWriter, r *http.Request) {
	rut := shared.NormalizeRUT(chi.URLParam(r, "rut"))
	if !shared.ValidRUT(rut) {
		api.Fail(w, http.StatusBadRequest, "invalid_rut", "a valid RUT is required", middleware.GetRequestID(r.Context()))
		return
	}

	var projectTo time.Time
	if raw := r.URL.Query().Get("projectTo"); raw != "" {
		v := shared.NewValidator()
		projectTo, _ = v.Date("projectTo", raw)
		if v.Reject(w, middleware.GetRequestID(r.Context())) {
			return
		}
	}

	balance, err := h.Store.GetBalance(r.Context(), rut, projectTo)
	if err != nil {
		if errors.Is(err, vacaciones.ErrBalanceNotFound) {
			api.Fail(w, http.StatusNotFound, "balance_not_found", "vacation balance not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "get_error", "failed to load vacation balance", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, balance, middleware.GetRequestID(r.Context()))
}
