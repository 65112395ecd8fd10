package validators

import (
	"strings"
	"unicode/utf8"
)

// Field name constants restrict Validate to a subset of checks.
const (
	FieldName         = "name"
	FieldSecretName   = "secret_name"
	FieldAge          = "age"
	FieldTeamID       = "team_id"
	FieldHeadquarters = "headquarters"
	FieldEmail        = "email"
	FieldPassword     = "password"

	// FieldNotEmpty requires a patch to set at least one field.
	FieldNotEmpty = "not_empty"
)

// maxTextLength matches the VARCHAR(255) columns.
const maxTextLength = 255

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func tooLong(s string) bool {
	return utf8.RuneCountInString(s) > maxTextLength
}
