package authhandler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"rrhh/internal/domain/auth"
	"rrhh/internal/transport/http/api"
	"rrhh/internal/transport/http/middleware"
	"rrhh/internal/transport/http/shared"
)

const tokenTTL = 8 * time.Hour

type Handler struct {
	Store  *auth.Store
	Secret string
}

func NewHandler(store *auth.Store, secret string) *Handler {
	return &Handler{Store: store, Secret: secret}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string `json:"token"`
	UserID   string `json:"userId"`
	RoleName string `json:"roleName"`
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	user, err := h.Store.FindActiveUserByEmail(r.Context(), strings.ToLower(strings.TrimSpace(payload.Email)))
	if err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", middleware.GetRequestID(r.Context()))
		return
	}
	if err := auth.CheckPassword(user.Password, payload.Password); err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", middleware.GetRequestID(r.Context()))
		return
	}

	token, err := auth.GenerateToken(h.Secret, auth.Claims{
		UserID:   user.ID,
		RoleID:   user.RoleID,
		RoleName: user.RoleName,
	}, tokenTTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "token_error", "failed to issue token", middleware.GetRequestID(r.Context()))
		return
	}

	if err := h.Store.UpdateLastLogin(r.Context(), user.ID); err != nil {
		slog.Warn("last login update failed", "userId", user.ID, "err", err)
	}

	api.Success(w, loginResponse{Token: token, UserID: user.ID, RoleName: user.RoleName}, middleware.GetRequestID(r.Context()))
}

// HandleLogout exists for the SPA: tokens are stateless, the client drops it.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	api.Success(w, map[string]any{"loggedOut": true}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]any{
		"userId":   user.UserID,
		"roleId":   user.RoleID,
		"roleName": user.RoleName,
	}, middleware.GetRequestID(r.Context()))
}

// AdminHandler serves the administration panel: user accounts, roles and
// per-role module access.
type AdminHandler struct {
	Store *auth.Store
	Perms middleware.ModuleStore
}

func NewAdminHandler(store *auth.Store) *AdminHandler {
	return &AdminHandler{Store: store, Perms: store}
}

func (h *AdminHandler) RegisterRoutes(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.RequireModule(auth.ModuleAdmin, h.Perms))

		r.Get("/users", h.handleListUsers)
		r.Post("/users", h.handleCreateUser)
		r.Put("/users/{userID}/role", h.handleUpdateUserRole)
		r.Put("/users/{userID}/status", h.handleSetUserStatus)
		r.Get("/roles", h.handleListRoles)
		r.Post("/roles/{roleID}/modules", h.handleGrantModule)
		r.Delete("/roles/{roleID}/modules/{module}", h.handleRevokeModule)
	})
}

func (h *AdminHandler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	page := shared.ParsePagination(r, 50, 200)
	users, err := h.Store.ListUsers(r.Context(), page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "list_error", "failed to list users", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, users, middleware.GetRequestID(r.Context()))
}

type createUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	RoleID   string `json:"roleId"`
}

func (h *AdminHandler) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var payload createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("email", payload.Email, "email is required")
	v.Required("name", payload.Name, "name is required")
	v.Required("roleId", payload.RoleID, "role is required")
	if len(payload.Password) < 12 {
		v.Add("password", "must be at least 12 characters")
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	hash, err := auth.HashPassword(payload.Password)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "hash_error", "failed to hash password", middleware.GetRequestID(r.Context()))
		return
	}

	id, err := h.Store.CreateUser(r.Context(),
		strings.ToLower(strings.TrimSpace(payload.Email)),
		strings.TrimSpace(payload.Name),
		hash,
		payload.RoleID,
	)
	if err != nil {
		api.Fail(w, http.StatusConflict, "create_error", "failed to create user", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]any{"id": id}, middleware.GetRequestID(r.Context()))
}

type roleAssignmentRequest struct {
	RoleID string `json:"roleId"`
}

func (h *AdminHandler) handleUpdateUserRole(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	var payload roleAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || strings.TrimSpace(payload.RoleID) == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "roleId is required", middleware.GetRequestID(r.Context()))
		return
	}
	if err := h.Store.UpdateUserRole(r.Context(), userID, payload.RoleID); err != nil {
		api.Fail(w, http.StatusInternalServerError, "update_error", "failed to update role", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]any{"updated": true}, middleware.GetRequestID(r.Context()))
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *AdminHandler) handleSetUserStatus(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	var payload statusRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("status", payload.Status, "status is required")
	v.Enum("status", payload.Status, []string{auth.UserStatusActive, auth.UserStatusDisabled}, "status must be active or disabled")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	if err := h.Store.SetUserStatus(r.Context(), userID, strings.ToLower(strings.TrimSpace(payload.Status))); err != nil {
		api.Fail(w, http.StatusInternalServerError, "update_error", "failed to update status", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]any{"updated": true}, middleware.GetRequestID(r.Context()))
}

func (h *AdminHandler) handleListRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.Store.ListRoles(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "list_error", "failed to list roles", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, roles, middleware.GetRequestID(r.Context()))
}

type moduleRequest struct {
	Module string `json:"module"`
}

func (h *AdminHandler) handleGrantModule(w http.ResponseWriter, r *http.Request) {
	roleID := chi.URLParam(r, "roleID")
	var payload moduleRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("module", payload.Module, "module is required")
	v.Enum("module", payload.Module, auth.DefaultModules, "unknown module")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	if err := h.Store.GrantModule(r.Context(), roleID, strings.ToLower(strings.TrimSpace(payload.Module))); err != nil {
		api.Fail(w, http.StatusInternalServerError, "update_error", "failed to grant module", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]any{"granted": true}, middleware.GetRequestID(r.Context()))
}

func (h *AdminHandler) handleRevokeModule(w http.ResponseWriter, r *http.Request) {
	roleID := chi.URLParam(r, "roleID")
	module := strings.ToLower(strings.TrimSpace(chi.URLParam(r, "module")))
	if module == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_path", "module is required", middleware.GetRequestID(r.Context()))
		return
	}
	if err := h.Store.RevokeModule(r.Context(), roleID, module); err != nil {
		api.Fail(w, http.StatusInternalServerError, "update_error", "failed to revoke module", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]any{"revoked": true}, middleware.GetRequestID(r.Context()))
}
