package http

import (
	"net/http"

	"github.com/MKhiriev/hero-api/internal/utils"
	"github.com/MKhiriev/hero-api/models"
)

// requireRoles is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header and resolves
// it through [service.AuthService.Authenticate]. With no roles any active
// user passes; otherwise the user must hold at least one of roles.
//
// On success the user is stored in the request context (see
// [utils.UserFromContext]). Otherwise the request is rejected with 401 when
// authentication fails and 403 when a role is missing; next is not called.
func (h *Handler) requireRoles(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				h.writeUnauthorized(w, r, ErrEmptyAuthorizationHeader)
				return
			}

			tokenString, err := utils.ParseBearerToken(authHeader)
			if err != nil {
				h.writeUnauthorized(w, r, ErrInvalidAuthorizationHeader)
				return
			}

			ctx := r.Context()
			user, err := h.services.AuthService.Authenticate(ctx, tokenString, roles...)
			if err != nil {
				h.writeUnauthorized(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
		})
	}
}

// writeUnauthorized adds the bearer challenge to 401 responses.
func (h *Handler) writeUnauthorized(w http.ResponseWriter, r *http.Request, err error) {
	if status, _ := statusFromError(err); status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	h.writeError(w, r, err)
}
