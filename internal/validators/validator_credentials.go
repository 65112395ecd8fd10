package validators

import (
	"context"
	"net/mail"

	"github.com/MKhiriev/hero-api/models"
)

type CredentialsValidator struct {
}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var creds models.Credentials
	switch value := obj.(type) {
	case models.Credentials:
		creds = value
	case *models.Credentials:
		creds = *value
	default:
		return ErrUnsupportedType
	}

	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if isBlank(creds.Email) {
				return ErrEmptyEmail
			}
			if _, err := mail.ParseAddress(creds.Email); err != nil {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
