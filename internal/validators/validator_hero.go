package validators

import (
	"context"

	"github.com/google/uuid"

	"github.com/MKhiriev/hero-api/models"
)

type HeroValidator struct {
}

func NewHeroValidator() Validator {
	return &HeroValidator{}
}

func (v *HeroValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.HeroCreate:
		return v.validateHeroCreate(ctx, value, fields...)
	case *models.HeroCreate:
		return v.validateHeroCreate(ctx, *value, fields...)

	case models.HeroUpdate:
		return v.validateHeroUpdate(ctx, value, fields...)
	case *models.HeroUpdate:
		return v.validateHeroUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *HeroValidator) validateHeroCreate(ctx context.Context, hero models.HeroCreate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldSecretName, FieldAge, FieldTeamID}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if err := validateName(hero.Name); err != nil {
				return err
			}
		case FieldSecretName:
			if err := validateSecretName(hero.SecretName); err != nil {
				return err
			}
		case FieldAge:
			if err := validateAge(hero.Age); err != nil {
				return err
			}
		case FieldTeamID:
			if err := validateTeamID(hero.TeamID); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateHeroUpdate checks only the fields present in the patch.
func (v *HeroValidator) validateHeroUpdate(ctx context.Context, patch models.HeroUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNotEmpty, FieldName, FieldSecretName, FieldAge, FieldTeamID}
	}

	for _, f := range fields {
		switch f {
		case FieldNotEmpty:
			if patch.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		case FieldName:
			if name, ok := patch.Name.Get(); ok {
				if err := validateName(name); err != nil {
					return err
				}
			}
		case FieldSecretName:
			if secretName, ok := patch.SecretName.Get(); ok {
				if err := validateSecretName(secretName); err != nil {
					return err
				}
			}
		case FieldAge:
			if age, ok := patch.Age.Get(); ok {
				if err := validateAge(age); err != nil {
					return err
				}
			}
		case FieldTeamID:
			if teamID, ok := patch.TeamID.Get(); ok {
				if err := validateTeamID(teamID); err != nil {
					return err
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateName(name string) error {
	if isBlank(name) {
		return ErrEmptyName
	}
	if tooLong(name) {
		return ErrNameTooLong
	}
	return nil
}

func validateSecretName(secretName string) error {
	if isBlank(secretName) {
		return ErrEmptySecretName
	}
	if tooLong(secretName) {
		return ErrSecretNameTooLong
	}
	return nil
}

func validateAge(age *int) error {
	if age != nil && *age < 0 {
		return ErrNegativeAge
	}
	return nil
}

func validateTeamID(teamID *uuid.UUID) error {
	if teamID != nil && *teamID == uuid.Nil {
		return ErrInvalidTeamID
	}
	return nil
}
