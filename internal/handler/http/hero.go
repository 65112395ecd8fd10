package http

import (
	"net/http"

	"github.com/MKhiriev/hero-api/internal/utils"
	"github.com/MKhiriev/hero-api/models"
)

// listHeroes serves GET /hero.
func (h *Handler) listHeroes(w http.ResponseWriter, r *http.Request) {
	params, err := pageParams(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	page, err := h.services.HeroService.List(r.Context(), params)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.GetResponse(page), http.StatusOK)
}

// listHeroesByCreatedAt serves GET /hero/by_created_at.
func (h *Handler) listHeroesByCreatedAt(w http.ResponseWriter, r *http.Request) {
	order, err := orderParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	params, err := pageParams(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	page, err := h.services.HeroService.ListByCreatedAt(r.Context(), params, order)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.GetResponse(page), http.StatusOK)
}

// getHero serves GET /hero/{hero_id}.
func (h *Handler) getHero(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "hero_id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	hero, err := h.services.HeroService.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.GetResponse(hero.WithTeam()), http.StatusOK)
}

// createHero serves POST /hero.
func (h *Handler) createHero(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	in, err := decodeBody[models.HeroCreate](r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	hero, err := h.services.HeroService.Create(r.Context(), in, user)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.PostResponse(hero), http.StatusCreated)
}

// updateHero serves PUT /hero/{hero_id}.
func (h *Handler) updateHero(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "hero_id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	patch, err := decodeBody[models.HeroUpdate](r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	hero, err := h.services.HeroService.Update(r.Context(), id, patch)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.PutResponse(hero), http.StatusOK)
}

// deleteHero serves DELETE /hero/{hero_id}.
func (h *Handler) deleteHero(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "hero_id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	hero, err := h.services.HeroService.Delete(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.DeleteResponse(hero), http.StatusOK)
}
