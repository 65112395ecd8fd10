package validators

import (
	"context"

	"github.com/MKhiriev/hero-api/models"
)

type TeamValidator struct {
}

func NewTeamValidator() Validator {
	return &TeamValidator{}
}

func (v *TeamValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.TeamCreate:
		return v.validateTeamCreate(value, fields...)
	case *models.TeamCreate:
		return v.validateTeamCreate(*value, fields...)

	case models.TeamUpdate:
		return v.validateTeamUpdate(value, fields...)
	case *models.TeamUpdate:
		return v.validateTeamUpdate(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *TeamValidator) validateTeamCreate(team models.TeamCreate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldHeadquarters}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if err := validateName(team.Name); err != nil {
				return err
			}
		case FieldHeadquarters:
			if tooLong(team.Headquarters) {
				return ErrHeadquartersTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *TeamValidator) validateTeamUpdate(patch models.TeamUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNotEmpty, FieldName, FieldHeadquarters}
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
		case FieldHeadquarters:
			if hq, ok := patch.Headquarters.Get(); ok && tooLong(hq) {
				return ErrHeadquartersTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
