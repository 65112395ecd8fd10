package store

import (
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/MKhiriev/hero-api/models"
)

const (
	HeroesTable = "heroes"
	TeamsTable  = "teams"
)

var heroColumns = []string{
	"heroes.id",
	"heroes.name",
	"heroes.secret_name",
	"heroes.age",
	"heroes.team_id",
	"heroes.created_by_id",
	"heroes.created_at",
	"heroes.updated_at",
	// joined team, aliased so the selection stays usable as a subquery
	"teams.id AS team_ref_id",
	"teams.name AS team_ref_name",
	"teams.headquarters AS team_ref_headquarters",
	"teams.created_by_id AS team_ref_created_by_id",
	"teams.created_at AS team_ref_created_at",
	"teams.updated_at AS team_ref_updated_at",
}

func heroTable() table[models.Hero, models.HeroCreate, models.HeroUpdate] {
	return table[models.Hero, models.HeroCreate, models.HeroUpdate]{
		name: HeroesTable,
		selectBase: func(b sq.StatementBuilderType) sq.SelectBuilder {
			return b.Select(heroColumns...).
				From(HeroesTable).
				LeftJoin("teams ON teams.id = heroes.team_id")
		},
		scan: scanHero,
		build: func(in models.HeroCreate, id, createdByID uuid.UUID, now time.Time) models.Hero {
			return models.Hero{
				ID:          id,
				Name:        in.Name,
				SecretName:  in.SecretName,
				Age:         in.Age,
				TeamID:      in.TeamID,
				CreatedByID: createdByID,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
		},
		apply: func(patch models.HeroUpdate, current models.Hero, now time.Time) models.Hero {
			merged := patch.Apply(current)
			merged.UpdatedAt = now
			return merged
		},
		values: func(h models.Hero) map[string]any {
			return map[string]any{
				"id":            h.ID,
				"name":          h.Name,
				"secret_name":   h.SecretName,
				"age":           h.Age,
				"team_id":       nullUUID(h.TeamID),
				"created_by_id": h.CreatedByID,
				"created_at":    h.CreatedAt,
				"updated_at":    h.UpdatedAt,
			}
		},
		id: func(h models.Hero) uuid.UUID { return h.ID },
	}
}

func scanHero(row scanner) (models.Hero, error) {
	var (
		hero   models.Hero
		age    sql.NullInt64
		teamID uuid.NullUUID
		team   nullTeam
	)

	err := row.Scan(
		&hero.ID,
		&hero.Name,
		&hero.SecretName,
		&age,
		&teamID,
		&hero.CreatedByID,
		&hero.CreatedAt,
		&hero.UpdatedAt,
		&team.ID,
		&team.Name,
		&team.Headquarters,
		&team.CreatedByID,
		&team.CreatedAt,
		&team.UpdatedAt,
	)
	if err != nil {
		return models.Hero{}, err
	}

	if age.Valid {
		v := int(age.Int64)
		hero.Age = &v
	}
	if teamID.Valid {
		id := teamID.UUID
		hero.TeamID = &id
	}
	hero.Team = team.toModel()
	hero.CreatedAt = hero.CreatedAt.UTC()
	hero.UpdatedAt = hero.UpdatedAt.UTC()

	return hero, nil
}

// nullTeam receives the columns of a LEFT JOINed team.
type nullTeam struct {
	ID           uuid.NullUUID
	Name         sql.NullString
	Headquarters sql.NullString
	CreatedByID  uuid.NullUUID
	CreatedAt    sql.NullTime
	UpdatedAt    sql.NullTime
}

func (t nullTeam) toModel() *models.Team {
	if !t.ID.Valid {
		return nil
	}

	return &models.Team{
		ID:           t.ID.UUID,
		Name:         t.Name.String,
		Headquarters: t.Headquarters.String,
		CreatedByID:  t.CreatedByID.UUID,
		CreatedAt:    t.CreatedAt.Time.UTC(),
		UpdatedAt:    t.UpdatedAt.Time.UTC(),
	}
}

func nullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}
