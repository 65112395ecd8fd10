package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/MKhiriev/hero-api/models"
)

var teamColumns = []string{
	"teams.id",
	"teams.name",
	"teams.headquarters",
	"teams.created_by_id",
	"teams.created_at",
	"teams.updated_at",
}

func teamTable() table[models.Team, models.TeamCreate, models.TeamUpdate] {
	return table[models.Team, models.TeamCreate, models.TeamUpdate]{
		name: TeamsTable,
		selectBase: func(b sq.StatementBuilderType) sq.SelectBuilder {
			return b.Select(teamColumns...).From(TeamsTable)
		},
		scan: scanTeam,
		build: func(in models.TeamCreate, id, createdByID uuid.UUID, now time.Time) models.Team {
			return models.Team{
				ID:           id,
				Name:         in.Name,
				Headquarters: in.Headquarters,
				CreatedByID:  createdByID,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
		},
		apply: func(patch models.TeamUpdate, current models.Team, now time.Time) models.Team {
			merged := patch.Apply(current)
			merged.UpdatedAt = now
			return merged
		},
		values: func(t models.Team) map[string]any {
			return map[string]any{
				"id":            t.ID,
				"name":          t.Name,
				"headquarters":  t.Headquarters,
				"created_by_id": t.CreatedByID,
				"created_at":    t.CreatedAt,
				"updated_at":    t.UpdatedAt,
			}
		},
		id: func(t models.Team) uuid.UUID { return t.ID },
	}
}

func scanTeam(row scanner) (models.Team, error) {
	var team models.Team
	err := row.Scan(
		&team.ID,
		&team.Name,
		&team.Headquarters,
		&team.CreatedByID,
		&team.CreatedAt,
		&team.UpdatedAt,
	)
	if err != nil {
		return models.Team{}, err
	}

	team.CreatedAt = team.CreatedAt.UTC()
	team.UpdatedAt = team.UpdatedAt.UTC()
	return team, nil
}
