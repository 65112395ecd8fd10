package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MKhiriev/hero-api/internal/utils"
	"github.com/MKhiriev/hero-api/models"
)

// pathID parses the UUID path parameter name.
func pathID(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s=%q", ErrInvalidID, name, raw)
	}
	return id, nil
}

// pageParams reads page and size, defaulting absent values.
// Range checks are left to models.Params.Validate.
func pageParams(r *http.Request) (models.Params, error) {
	params := models.DefaultParams()
	query := r.URL.Query()

	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return models.Params{}, fmt.Errorf("%w: page must be an integer", ErrInvalidQuery)
		}
		params.Page = page
	}

	if raw := query.Get("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return models.Params{}, fmt.Errorf("%w: size must be an integer", ErrInvalidQuery)
		}
		params.Size = size
	}

	return params, nil
}

func orderParam(r *http.Request) (models.Order, error) {
	order, err := models.ParseOrder(r.URL.Query().Get("order"))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}
	return order, nil
}

// decodeBody decodes the JSON body of r into T.
func decodeBody[T any](r *http.Request) (T, error) {
	v, err := utils.DecodeJSON[T](r)
	if err != nil {
		if errors.Is(err, utils.ErrEmptyBody) {
			return v, fmt.Errorf("%w: body is required", ErrInvalidBody)
		}
		return v, fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
	return v, nil
}

// currentUser returns the user stored by requireRoles.
func currentUser(r *http.Request) (models.User, error) {
	user, ok := utils.UserFromContext(r.Context())
	if !ok {
		return models.User{}, ErrEmptyAuthorizationHeader
	}
	return user, nil
}
