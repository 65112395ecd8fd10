package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestHeroUpdate_UnmarshalMarksPresentFields(t *testing.T) {
	var u HeroUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Deadpond","age":null}`), &u))

	assert.True(t, u.Name.Set)
	assert.Equal(t, "Deadpond", u.Name.Value)
	assert.True(t, u.Age.Set)
	assert.Nil(t, u.Age.Value)
	assert.False(t, u.SecretName.Set)
	assert.False(t, u.TeamID.Set)
	assert.False(t, u.IsEmpty())
}

func TestHeroUpdate_EmptyBody(t *testing.T) {
	var u HeroUpdate
	require.NoError(t, json.Unmarshal([]byte(`{}`), &u))
	assert.True(t, u.IsEmpty())
}

func TestHeroUpdate_ApplyChangesOnlySetFields(t *testing.T) {
	teamID := uuid.New()
	current := Hero{
		ID:          uuid.New(),
		Name:        "Deadpond",
		SecretName:  "Dive Wilson",
		Age:         intPtr(30),
		TeamID:      &teamID,
		CreatedByID: uuid.New(),
		CreatedAt:   time.Now(),
		Team:        &Team{ID: teamID, Name: "Preventers"},
	}

	merged := HeroUpdate{SecretName: Some("Wade")}.Apply(current)

	assert.Equal(t, "Wade", merged.SecretName)
	assert.Equal(t, current.Name, merged.Name)
	assert.Equal(t, current.Age, merged.Age)
	assert.Equal(t, current.TeamID, merged.TeamID)
	assert.Equal(t, current.Team, merged.Team)
	assert.Equal(t, "Dive Wilson", current.SecretName, "current must stay untouched")
}

func TestHeroUpdate_ApplyClearsNullableFields(t *testing.T) {
	teamID := uuid.New()
	current := Hero{Name: "Rusty-Man", Age: intPtr(48), TeamID: &teamID, Team: &Team{ID: teamID}}

	merged := HeroUpdate{Age: Some[*int](nil), TeamID: Some[*uuid.UUID](nil)}.Apply(current)

	assert.Nil(t, merged.Age)
	assert.Nil(t, merged.TeamID)
	assert.Nil(t, merged.Team)
}

func TestHeroWithTeam_JSON(t *testing.T) {
	hero := Hero{ID: uuid.New(), Name: "Spider-Boy", SecretName: "Pedro Parqueador"}

	b, err := json.Marshal(hero.WithTeam())
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, "Spider-Boy", out["name"])
	assert.Contains(t, out, "team")
	assert.Nil(t, out["team"])
}

func TestHero_JSONHidesTeam(t *testing.T) {
	hero := Hero{Name: "Spider-Boy", Team: &Team{Name: "Preventers"}}

	b, err := json.Marshal(hero)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "Preventers")
}

func TestHeroUpdate_MarshalOmitsUnsetFields(t *testing.T) {
	b, err := json.Marshal(HeroUpdate{Name: Some("Rusty-Man"), TeamID: Some[*uuid.UUID](nil)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Rusty-Man","team_id":null}`, string(b))
}
