package licenciashandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"rrhh/internal/domain/auth"
	"rrhh/internal/domain/licencias"
	"rrhh/internal/transport/http/api"
	"rrhh/internal/transport/http/middleware"
	"rrhh/internal/transport/http/shared"
)

type Handler struct {
	Store *licencias.Store
	Perms middleware.ModuleStore
}

func NewHandler(store *licencias.Store, perms middleware.ModuleStore) *Handler {
	return &Handler{Store: store, Perms: perms}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/licencias", func(r chi.Router) {
		r.Use(middleware.RequireModule(auth.ModuleLicencias, h.Perms))

		r.Get("/{rut}", h.handleListByEmployee)
	})
}

func (h *Handler) handleListByEmployee(w http.ResponseWriter, r *http.Request) {
	rut := shared.NormalizeRUT(chi.URLParam(r, "rut"))
	if !shared.ValidRUT(rut) {
		api.Fail(w, http.StatusBadRequest, "invalid_rut", "a valid RUT is required", middleware.GetRequestID(r.Context()))
		return
	}

	page := shared.ParsePagination(r, 50, 200)
	records, err := h.Store.ListByEmployee(r.Context(), rut, page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "list_error", "failed to list medical leaves", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, records, middleware.GetRequestID(r.Context()))
}
