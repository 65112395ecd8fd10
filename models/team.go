package models

import (
	"time"

	"github.com/google/uuid"
)

// Team groups heroes under a shared headquarters.
type Team struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Headquarters string    `json:"headquarters"`
	CreatedByID  uuid.UUID `json:"created_by_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TeamCreate is the body of a team creation request.
type TeamCreate struct {
	Name         string `json:"name"`
	Headquarters string `json:"headquarters"`
}

// TeamUpdate is the body of a partial team update.
type TeamUpdate struct {
	Name         Optional[string] `json:"name,omitzero"`
	Headquarters Optional[string] `json:"headquarters,omitzero"`
}

// IsEmpty reports whether no field of u is set.
func (u TeamUpdate) IsEmpty() bool {
	return !u.Name.Set && !u.Headquarters.Set
}

// Apply merges the set fields of u onto current and returns the result.
func (u TeamUpdate) Apply(current Team) Team {
	merged := current
	merged.Name = u.Name.Or(current.Name)
	merged.Headquarters = u.Headquarters.Or(current.Headquarters)
	return merged
}
