package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/hero-api/internal/logger"
	"github.com/MKhiriev/hero-api/internal/mock"
	"github.com/MKhiriev/hero-api/internal/service"
	"github.com/MKhiriev/hero-api/internal/utils"
	"github.com/MKhiriev/hero-api/models"
)

func newAuthTestHandler(t *testing.T) (*Handler, *mock.MockAuthService) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthService(ctrl)
	return &Handler{
		services: &service.Services{AuthService: auth},
		logger:   logger.Nop(),
	}, auth
}

func TestRequireRoles_Rejections(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		authErr     error
		wantStatus  int
		wantDetail  string
		wantBearer  bool
		expectsAuth bool
	}{
		{
			name:       "missing header",
			header:     "",
			wantStatus: http.StatusUnauthorized,
			wantDetail: "Not authenticated",
			wantBearer: true,
		},
		{
			name:       "basic scheme",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
			wantDetail: ErrInvalidAuthorizationHeader.Error(),
			wantBearer: true,
		},
		{
			name:        "expired token",
			header:      "Bearer expired",
			authErr:     service.ErrTokenIsExpiredOrInvalid,
			wantStatus:  http.StatusUnauthorized,
			wantDetail:  "could not validate credentials",
			wantBearer:  true,
			expectsAuth: true,
		},
		{
			name:        "inactive user",
			header:      "Bearer inactive",
			authErr:     service.ErrInactiveUser,
			wantStatus:  http.StatusUnauthorized,
			wantDetail:  "inactive user",
			wantBearer:  true,
			expectsAuth: true,
		},
		{
			name:        "missing role",
			header:      "Bearer reader",
			authErr:     service.ErrRoleIsRequired,
			wantStatus:  http.StatusForbidden,
			wantDetail:  service.ErrRoleIsRequired.Error(),
			expectsAuth: true,
		},
		{
			name:        "database down",
			header:      "Bearer any",
			authErr:     service.ErrDatabaseUnavailable,
			wantStatus:  http.StatusServiceUnavailable,
			wantDetail:  http.StatusText(http.StatusServiceUnavailable),
			expectsAuth: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, auth := newAuthTestHandler(t)
			if tt.expectsAuth {
				auth.EXPECT().
					Authenticate(gomock.Any(), gomock.Any(), models.RoleAdmin).
					Return(models.User{}, tt.authErr)
			}

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			})

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			h.requireRoles(models.RoleAdmin)(next).ServeHTTP(rr, req)

			assert.False(t, nextCalled)
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantDetail, decodeError(t, rr).Detail)
			if tt.wantBearer {
				assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
			} else {
				assert.Empty(t, rr.Header().Get("WWW-Authenticate"))
			}
		})
	}
}

func TestRequireRoles_StoresUserInContext(t *testing.T) {
	h, auth := newAuthTestHandler(t)
	user := models.User{ID: uuid.New(), Email: "admin@example.com", IsActive: true, Roles: []models.Role{models.RoleAdmin}}

	auth.EXPECT().
		Authenticate(gomock.Any(), "good-token", models.RoleAdmin, models.RoleManager).
		Return(user, nil)

	var got models.User
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = utils.UserFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rr := httptest.NewRecorder()
	h.requireRoles(models.RoleAdmin, models.RoleManager)(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	require.True(t, ok)
	assert.Equal(t, user, got)
}

func TestRequireRoles_NoRolesStillAuthenticates(t *testing.T) {
	h, auth := newAuthTestHandler(t)
	auth.EXPECT().Authenticate(gomock.Any(), "token").Return(models.User{}, errors.New("boom"))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer token")
	rr := httptest.NewRecorder()
	h.requireRoles()(http.NotFoundHandler()).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), decodeError(t, rr).Detail)
}
