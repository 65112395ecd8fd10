package models

import "errors"

var (
	// ErrInvalidPagination is returned when page or size is out of range.
	ErrInvalidPagination = errors.New("invalid pagination params")
	// ErrInvalidOrder is returned for an unknown sort direction.
	ErrInvalidOrder = errors.New("invalid order")
)
