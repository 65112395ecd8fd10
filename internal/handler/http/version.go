package http

import (
	"net/http"

	"github.com/MKhiriev/hero-api/internal/utils"
	"github.com/MKhiriev/hero-api/models"
)

// getServerVersion serves GET /version.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	buildInfo := h.services.AppInfoService.GetBuildInfo(r.Context())
	utils.WriteJSON(w, models.GetResponse(buildInfo), http.StatusOK)
}
