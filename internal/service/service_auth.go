package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/hero-api/internal/config"
	"github.com/MKhiriev/hero-api/internal/logger"
	"github.com/MKhiriev/hero-api/internal/store"
	"github.com/MKhiriev/hero-api/internal/utils"
	"github.com/MKhiriev/hero-api/models"
)

// authService is the concrete implementation of AuthService.
// It verifies bcrypt password hashes and issues and checks HS256 JWTs whose
// subject is the user ID.
type authService struct {
	// userRepository is the data-access layer used to look up and seed users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Login authenticates a user by email and password.
//
// Returns a signed token or:
//   - ErrWrongCredentials if no user has the email or the password does not match.
//   - ErrInactiveUser if the account is disabled.
//   - ErrTokenCreationFailed if signing fails.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, credentials.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Info().Str("email", credentials.Email).Msg("login attempt for unknown email")
			return models.Token{}, ErrWrongCredentials
		}
		log.Err(err).Str("func", "authService.Login").Msg("user search by email failed")
		return models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPassword(user.HashedPassword, credentials.Password) {
		log.Info().Str("user_id", user.ID.String()).Msg("wrong password")
		return models.Token{}, ErrWrongCredentials
	}

	if !user.IsActive {
		return models.Token{}, ErrInactiveUser
	}

	return a.createToken(user.ID)
}

// Authenticate validates tokenString and returns the user it was issued to.
//
// Any token validation failure, or a subject that no longer maps to a user,
// is normalised to ErrTokenIsExpiredOrInvalid. A disabled account yields
// ErrInactiveUser; a user lacking every one of roles yields ErrRoleIsRequired.
func (a *authService) Authenticate(ctx context.Context, tokenString string, roles ...models.Role) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Msg("token validation failed")
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrTokenIsExpiredOrInvalid
		}
		log.Err(err).Str("func", "authService.Authenticate").Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	if !user.IsActive {
		return models.User{}, ErrInactiveUser
	}

	if !user.HasAnyRole(roles...) {
		log.Info().
			Str("user_id", user.ID.String()).
			Any("required", roles).
			Any("roles", user.Roles).
			Msg("missing required role")
		return models.User{}, ErrRoleIsRequired
	}

	return user, nil
}

func (a *authService) EnsureSuperuser(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	existing, err := a.userRepository.FindUserByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, fmt.Errorf("superuser lookup failed: %w", err)
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return models.User{}, fmt.Errorf("superuser password hashing failed: %w", err)
	}

	created, err := a.userRepository.CreateUser(ctx, models.User{
		Email:          email,
		FirstName:      "Admin",
		LastName:       "Admin",
		HashedPassword: hashed,
		IsActive:       true,
		Roles:          []models.Role{models.RoleAdmin},
	})
	if errors.Is(err, store.ErrUserAlreadyExists) {
		// created concurrently by another instance
		return a.userRepository.FindUserByEmail(ctx, email)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("superuser creation failed: %w", err)
	}

	log.Info().Str("email", email).Str("user_id", created.ID.String()).Msg("first superuser created")
	return created, nil
}

func (a *authService) createToken(userID uuid.UUID) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, userID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	return token, nil
}
