package http

import (
	"net/http"

	"github.com/MKhiriev/hero-api/internal/utils"
	"github.com/MKhiriev/hero-api/models"
)

func (h *Handler) listTeams(w http.ResponseWriter, r *http.Request) {
	params, err := pageParams(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	page, err := h.services.TeamService.List(r.Context(), params)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.GetResponse(page), http.StatusOK)
}

func (h *Handler) getTeam(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "team_id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	team, err := h.services.TeamService.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.GetResponse(team), http.StatusOK)
}

func (h *Handler) createTeam(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	in, err := decodeBody[models.TeamCreate](r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	team, err := h.services.TeamService.Create(r.Context(), in, user)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.PostResponse(team), http.StatusCreated)
}

func (h *Handler) updateTeam(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "team_id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	patch, err := decodeBody[models.TeamUpdate](r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	team, err := h.services.TeamService.Update(r.Context(), id, patch)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.PutResponse(team), http.StatusOK)
}
