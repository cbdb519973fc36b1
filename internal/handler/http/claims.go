package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
)

// currentUserID pulls the authenticated user's id out of the JWT claims.
// The verifier middleware has already run by the time handlers call this.
func currentUserID(r *http.Request) (string, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}
