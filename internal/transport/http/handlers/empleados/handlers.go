package empleadoshandler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"rrhh/internal/domain/auth"
	"rrhh/internal/domain/empleados"
	"rrhh/internal/transport/http/api"
	"rrhh/internal/transport/http/middleware"
	"rrhh/internal/transport/http/shared"
)

type Handler struct {
	Store *empleados.Store
	Perms middleware.ModuleStore
}

func NewHandler(store *empleados.Store, perms middleware.ModuleStore) *Handler {
	return &Handler{Store: store, Perms: perms}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/empleados", func(r chi.Router) {
		r.Use(middleware.RequireModule(auth.ModuleDashboard, h.Perms))

		r.Get("/", h.handleList)
		r.Get("/{rut}", h.handleGet)
		r.Get("/{rut}/income", h.handleIncomeHistory)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	page := shared.ParsePagination(r, 50, 200)
	search := strings.TrimSpace(r.URL.Query().Get("search"))

	list, err := h.Store.List(r.Context(), search, page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "list_error", "failed to list employees", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, list, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	rut := shared.NormalizeRUT(chi.URLParam(r, "rut"))
	if !shared.ValidRUT(rut) {
		api.Fail(w, http.StatusBadRequest, "invalid_rut", "a valid RUT is required", middleware.GetRequestID(r.Context()))
		return
	}

	employee, err := h.Store.Get(r.Context(), rut)
	if err != nil {
		if errors.Is(err, empleados.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "get_error", "failed to load employee", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, employee, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleIncomeHistory(w http.ResponseWriter, r *http.Request) {
	rut := shared.NormalizeRUT(chi.URLParam(r, "rut"))
	if !shared.ValidRUT(rut) {
		api.Fail(w, http.StatusBadRequest, "invalid_rut", "a valid RUT is required", middleware.GetRequestID(r.Context()))
		return
	}

	incomeType := strings.TrimSpace(r.URL.Query().Get("type"))
	if incomeType != "" {
		v := shared.NewValidator()
		v.Enum("type", incomeType,
			[]string{empleados.IncomeTypeFijo, empleados.IncomeTypeVariable, empleados.IncomeTypeOcasional},
			"type must be fijo, variable or ocasional")
		if v.Reject(w, middleware.GetRequestID(r.Context())) {
			return
		}
	}

	page := shared.ParsePagination(r, 100, 500)
	items, err := h.Store.IncomeHistory(r.Context(), rut, incomeType, page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "list_error", "failed to list income history", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, items, middleware.GetRequestID(r.Context()))
}
