package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MKhiriev/hero-api/internal/cache"
	"github.com/MKhiriev/hero-api/models"
)

// writeRoles may create, update and delete heroes and teams.
var writeRoles = []models.Role{models.RoleAdmin, models.RoleManager}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(middleware.Compress(5, "application/json"))

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/health", h.health)
		r.Get("/version", h.getServerVersion)
		r.Method("GET", "/metrics", promhttp.Handler())
		r.Post("/login", h.login)

		r.Method("GET", "/cached", cache.CachedBy(h.cache, h.cacheTTL, cache.PathKey, http.HandlerFunc(h.timestamp)))
		r.Get("/no_cached", h.timestamp)
	})

	router.Route("/hero", func(r chi.Router) {
		r.With(h.requireRoles()).Get("/", h.listHeroes)
		r.With(h.requireRoles()).Get("/by_created_at", h.listHeroesByCreatedAt)
		r.With(h.requireRoles()).Get("/{hero_id}", h.getHero)

		r.With(h.requireRoles(writeRoles...)).Post("/", h.createHero)
		r.With(h.requireRoles(writeRoles...)).Put("/{hero_id}", h.updateHero)
		r.With(h.requireRoles(writeRoles...)).Delete("/{hero_id}", h.deleteHero)
	})

	router.Route("/team", func(r chi.Router) {
		r.With(h.requireRoles()).Get("/", h.listTeams)
		r.With(h.requireRoles()).Get("/{team_id}", h.getTeam)

		r.With(h.requireRoles(writeRoles...)).Post("/", h.createTeam)
		r.With(h.requireRoles(writeRoles...)).Put("/{team_id}", h.updateTeam)
	})

	return router
}
