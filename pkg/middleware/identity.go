package middleware

import (
	"net/http"

	"github.com/chris/campus-market/pkg/identity"
)

// Header names set by the fronting gateway after authentication.
const (
	HeaderUserID   = "X-User-Id"
	HeaderUserRole = "X-User-Role"
	HeaderVerified = "X-User-Verified"
)

// RequireIdentity extracts the caller identity from gateway headers and
// places it on the request context. Requests without a user id are
// rejected; authentication itself happens upstream.
func RequireIdentity(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(HeaderUserID)
		if userID == "" {
			http.Error(w, "Missing caller identity", http.StatusUnauthorized)
			return
		}

		role := identity.Role(r.Header.Get(HeaderUserRole))
		if role != identity.RoleAdmin {
			role = identity.RoleStudent
		}

		id := identity.Identity{
			UserID:   userID,
			Role:     role,
			Verified: r.Header.Get(HeaderVerified) == "true",
		}

		next.ServeHTTP(w, r.WithContext(identity.NewContext(r.Context(), id)))
	}
	return http.HandlerFunc(fn)
}
