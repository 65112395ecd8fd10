// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the hero-api HTTP server.
//
// The primary abstraction is [ServerAdapter], which hides the REST details:
// paths, the bearer token and the response envelope. Error statuses are
// mapped by mapHTTPError to the sentinel values in errors.go so that callers
// can use [errors.Is] (e.g. [ErrNotFound] for 404, [ErrForbidden] for 403).
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/MKhiriev/hero-api/models"
)

// ServerAdapter defines communication with the hero-api server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to every authenticated
	// request. Login calls it on success.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// Login exchanges credentials for a bearer token and stores it.
	Login(ctx context.Context, credentials models.Credentials) (models.AccessToken, error)

	// Health reports whether the server and its database are reachable.
	Health(ctx context.Context) error

	// ListHeroes fetches one page of heroes with their teams.
	ListHeroes(ctx context.Context, params models.Params) (models.Page[models.HeroWithTeam], error)

	// ListHeroesByCreatedAt fetches one page of heroes sorted by creation time.
	ListHeroesByCreatedAt(ctx context.Context, params models.Params, order models.Order) (models.Page[models.HeroWithTeam], error)

	GetHero(ctx context.Context, id uuid.UUID) (models.HeroWithTeam, error)
	CreateHero(ctx context.Context, hero models.HeroCreate) (models.Hero, error)

	// UpdateHero sends only the fields set in patch.
	UpdateHero(ctx context.Context, id uuid.UUID, patch models.HeroUpdate) (models.Hero, error)

	// DeleteHero removes the hero and returns its last state.
	DeleteHero(ctx context.Context, id uuid.UUID) (models.Hero, error)

	CreateTeam(ctx context.Context, team models.TeamCreate) (models.Team, error)
}
