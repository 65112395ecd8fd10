package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/hero-api/internal/utils"
	"github.com/MKhiriev/hero-api/models"
)

// timestamp serves GET /no_cached and, behind cache.Cached, GET /cached.
func (h *Handler) timestamp(w http.ResponseWriter, r *http.Request) {
	now := h.now().Format(time.RFC3339Nano)
	utils.WriteJSON(w, models.GetResponse(now), http.StatusOK)
}
