package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/hero-api/models"
)

// OrderByCreatedAt sorts base by the created_at column of tbl, breaking ties
// by id so that pagination over equal timestamps stays stable.
func OrderByCreatedAt(base sq.SelectBuilder, tbl string, order models.Order) sq.SelectBuilder {
	direction := " ASC"
	if order == models.OrderDescendent {
		direction = " DESC"
	}

	return base.OrderBy(
		tbl+".created_at"+direction,
		tbl+".id"+direction,
	)
}
