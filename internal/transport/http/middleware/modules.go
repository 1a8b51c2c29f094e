package middleware

import (
	"context"
	"net/http"

	"rrhh/internal/transport/http/api"
)

// ModuleStore answers whether a role has access to a portal module.
type ModuleStore interface {
	HasModule(ctx context.Context, roleID, module string) (bool, error)
}

func RequireModule(module string, store ModuleStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := GetUser(r.Context())
			if !ok {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", GetRequestID(r.Context()))
				return
			}

			allowed, err := store.HasModule(r.Context(), user.RoleID, module)
			if err != nil {
				api.Fail(w, http.StatusInternalServerError, "module_error", "module access check failed", GetRequestID(r.Context()))
				return
			}
			if !allowed {
				api.Fail(w, http.StatusForbidden, "forbidden", "module access denied", GetRequestID(r.Context()))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
