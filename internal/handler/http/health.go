package http

import (
	"net/http"

	"github.com/MKhiriev/hero-api/internal/utils"
)

type healthStatus struct {
	Status string `json:"status"`
}

// health serves GET /health.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.services.HealthService.Ping(r.Context()); err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, healthStatus{Status: "ok"}, http.StatusOK)
}
