package models

import (
	"time"

	"github.com/google/uuid"
)

// Hero is the primary entity served by the API.
type Hero struct {
	// ID is the unique identifier of the hero.
	ID uuid.UUID `json:"id"`

	Name       string `json:"name"`
	SecretName string `json:"secret_name"`

	// Age is optional; nil when unknown.
	Age *int `json:"age"`

	// TeamID references the team the hero belongs to, nil when teamless.
	TeamID *uuid.UUID `json:"team_id"`

	// CreatedByID references the user that created the hero.
	CreatedByID uuid.UUID `json:"created_by_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Team is populated by reads that join the teams table.
	// It is exposed only through [HeroWithTeam].
	Team *Team `json:"-"`
}

// WithTeam returns the read view of h that embeds its team.
func (h Hero) WithTeam() HeroWithTeam {
	return HeroWithTeam{Hero: h, Team: h.Team}
}

// HeroWithTeam is the read representation returned by list and detail
// endpoints. Team is null when the hero has no team.
type HeroWithTeam struct {
	Hero
	Team *Team `json:"team"`
}

// HeroCreate is the body of a hero creation request.
type HeroCreate struct {
	Name       string     `json:"name"`
	SecretName string     `json:"secret_name"`
	Age        *int       `json:"age,omitempty"`
	TeamID     *uuid.UUID `json:"team_id,omitempty"`
}

// HeroUpdate is the body of a partial hero update.
// Only fields that are Set overwrite the stored hero; unset fields are
// omitted when encoding.
type HeroUpdate struct {
	Name       Optional[string]     `json:"name,omitzero"`
	SecretName Optional[string]     `json:"secret_name,omitzero"`
	Age        Optional[*int]       `json:"age,omitzero"`
	TeamID     Optional[*uuid.UUID] `json:"team_id,omitzero"`
}

// IsEmpty reports whether no field of u is set.
func (u HeroUpdate) IsEmpty() bool {
	return !u.Name.Set && !u.SecretName.Set && !u.Age.Set && !u.TeamID.Set
}

// Apply merges the set fields of u onto current and returns the result.
// current is not modified.
func (u HeroUpdate) Apply(current Hero) Hero {
	merged := current
	merged.Name = u.Name.Or(current.Name)
	merged.SecretName = u.SecretName.Or(current.SecretName)
	merged.Age = u.Age.Or(current.Age)
	merged.TeamID = u.TeamID.Or(current.TeamID)
	if u.TeamID.Set {
		// the joined team no longer matches the reference
		merged.Team = nil
	}
	return merged
}
