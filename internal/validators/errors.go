package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName           = errors.New("name is required")
	ErrNameTooLong         = errors.New("name must be at most 255 characters")
	ErrEmptySecretName     = errors.New("secret_name is required")
	ErrSecretNameTooLong   = errors.New("secret_name must be at most 255 characters")
	ErrNegativeAge         = errors.New("age must be greater than or equal to 0")
	ErrInvalidTeamID       = errors.New("team_id must be a valid UUID")
	ErrHeadquartersTooLong = errors.New("headquarters must be at most 255 characters")
	ErrNoFieldsToUpdate    = errors.New("at least one field must be provided for update")
	ErrEmptyEmail          = errors.New("email is required")
	ErrInvalidEmail        = errors.New("email is not valid")
	ErrEmptyPassword       = errors.New("password is required")
)
