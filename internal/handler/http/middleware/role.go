package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/teamhub-intranet/leave-backend-go/internal/domain/user"
	"github.com/teamhub-intranet/leave-backend-go/internal/handler/http/response"
)

// RequirePrivileged requires the admin or subadmin role.
func RequirePrivileged(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrPrivilegedRoleRequired)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrPrivilegedRoleRequired)
			return
		}

		if !user.Role(roleStr).IsPrivileged() {
			response.HandleError(w, user.ErrPrivilegedRoleRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireAdmin requires the admin role, subadmin is not enough.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrPrivilegedRoleRequired)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok || user.Role(roleStr) != user.RoleAdmin {
			response.HandleError(w, user.ErrPrivilegedRoleRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
