// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/hero-api/internal/service"
	"github.com/MKhiriev/hero-api/internal/store"
	"github.com/MKhiriev/hero-api/internal/utils"
	"github.com/MKhiriev/hero-api/models"
)

// Sentinel errors produced while reading a request before it reaches the
// service layer. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("Not authenticated")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidID is returned when a path id is not a UUID.
	ErrInvalidID = errors.New("invalid id: must be a valid UUID")

	// ErrInvalidQuery is returned for malformed page, size or order values.
	ErrInvalidQuery = errors.New("invalid query parameter")

	// ErrInvalidBody is returned when the request body is not valid JSON for
	// the endpoint.
	ErrInvalidBody = errors.New("invalid request body")
)

// errorStatus binds a sentinel to its HTTP status. When verbose is set the
// whole error chain is reported as the detail, otherwise only the sentinel
// message is.
type errorStatus struct {
	err     error
	status  int
	verbose bool
}

// errorStatuses is ordered: store errors wrap several sentinels and the first
// match wins, so domain errors precede low-level ones.
var errorStatuses = []errorStatus{
	{service.ErrHeroNotFound, http.StatusNotFound, false},
	{service.ErrTeamNotFound, http.StatusNotFound, false},
	{service.ErrUnknownTeam, http.StatusUnprocessableEntity, false},
	{service.ErrTeamNameTaken, http.StatusConflict, false},
	{service.ErrValidation, http.StatusUnprocessableEntity, true},

	{service.ErrWrongCredentials, http.StatusBadRequest, false},
	{service.ErrInactiveUser, http.StatusUnauthorized, false},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, false},
	{service.ErrRoleIsRequired, http.StatusForbidden, false},
	{service.ErrDatabaseUnavailable, http.StatusServiceUnavailable, false},

	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, false},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized, false},
	{ErrInvalidID, http.StatusUnprocessableEntity, true},
	{ErrInvalidQuery, http.StatusUnprocessableEntity, true},
	{ErrInvalidBody, http.StatusUnprocessableEntity, true},

	{models.ErrInvalidPagination, http.StatusUnprocessableEntity, true},
	{models.ErrInvalidOrder, http.StatusUnprocessableEntity, true},

	{store.ErrNotFound, http.StatusNotFound, false},
	{store.ErrAlreadyExists, http.StatusConflict, false},
	{store.ErrInvalidReference, http.StatusUnprocessableEntity, false},
	{store.ErrUserAlreadyExists, http.StatusConflict, false},
	{store.ErrNoUserWasFound, http.StatusNotFound, false},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError, false},
	{store.ErrExecutingQuery, http.StatusInternalServerError, false},
	{store.ErrBeginningTransaction, http.StatusInternalServerError, false},
	{store.ErrCommitingTransaction, http.StatusInternalServerError, false},
	{store.ErrExecutingStatement, http.StatusInternalServerError, false},
	{store.ErrScanningRow, http.StatusInternalServerError, false},
	{store.ErrScanningRows, http.StatusInternalServerError, false},
}

// statusFromError returns the HTTP status and the client-facing detail for err.
// Unknown errors and 5xx statuses never leak their message.
func statusFromError(err error) (int, string) {
	for _, e := range errorStatuses {
		if !errors.Is(err, e.err) {
			continue
		}
		if e.status >= http.StatusInternalServerError {
			return e.status, http.StatusText(e.status)
		}
		if e.verbose {
			return e.status, err.Error()
		}
		return e.status, e.err.Error()
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// writeError logs err and writes the {"detail": ...} body.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, detail := statusFromError(err)

	log := h.requestLogger(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.ErrorResponse{Detail: detail}, status)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Detail: "Not Found"}, http.StatusNotFound)
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Detail: "Method Not Allowed"}, http.StatusMethodNotAllowed)
}
