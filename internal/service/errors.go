package service

import "errors"

var (
	ErrHeroNotFound = errors.New("Hero not found")
	ErrTeamNotFound = errors.New("Team not found")
	ErrUnknownTeam  = errors.New("team_id does not reference an existing team")

	ErrTeamNameTaken = errors.New("team with this name already exists")

	ErrValidation = errors.New("validation error")

	ErrWrongCredentials        = errors.New("incorrect email or password")
	ErrInactiveUser            = errors.New("inactive user")
	ErrTokenIsExpiredOrInvalid = errors.New("could not validate credentials")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrRoleIsRequired          = errors.New("the user does not have the required role")

	ErrDatabaseUnavailable = errors.New("database is unavailable")
)
