package asistenciahandler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"rrhh/internal/domain/asistencia"
	"rrhh/internal/domain/auth"
	"rrhh/internal/transport/http/api"
	"rrhh/internal/transport/http/middleware"
	"rrhh/internal/transport/http/shared"
)

type Handler struct {
	Store *asistencia.Store
	Perms middleware.ModuleStore
}

func NewHandler(store *asistencia.Store, perms middleware.ModuleStore) *Handler {
	return &Handler{Store: store, Perms: perms}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/asistencia", func(r chi.Router) {
		r.Use(middleware.RequireModule(auth.ModuleAsistencia, h.Perms))

		r.Get("/{rut}", h.handleListByEmployee)
	})
}

func (h *Handler) handleListByEmployee(w http.ResponseWriter, r *http.Request) {
	rut := shared.NormalizeRUT(chi.URLParam(r, "rut"))
	if !shared.ValidRUT(rut) {
		api.Fail(w, http.StatusBadRequest, "invalid_rut", "a valid RUT is required", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	var from, to time.Time
	if raw := r.URL.Query().Get("from"); raw != "" {
		from, _ = v.Date("from", raw)
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		to, _ = v.Date("to", raw)
	}
	v.DateOrder("from", from, "to", to)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	page := shared.ParsePagination(r, 100, 500)
	records, err := h.Store.ListByEmployee(r.Context(), rut, from, to, page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "list_error", "failed to list attendance records", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, records, middleware.GetRequestID(r.Context()))
}
