package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/hero-api/internal/utils"
	"github.com/MKhiriev/hero-api/models"
)

// login serves POST /login.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := h.requestLogger(r)

	credentials, err := decodeBody[models.Credentials](r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", token.UserID.String()).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.PostResponse(models.AccessToken{
		AccessToken: token.SignedString,
		TokenType:   "bearer",
	}), http.StatusOK)
}
