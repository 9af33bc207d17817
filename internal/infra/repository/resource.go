package repository

import (
	"context"
	"time"

	"venuebook/internal/domain/resource"
	"venuebook/internal/infra"
	"venuebook/internal/infra/db"
	"venuebook/internal/pkg/pgconv"
)

type ResourceRepository struct {
	db db.DBTX
}

func NewResourceRepository(dbtx db.DBTX) *ResourceRepository {
	return &ResourceRepository{db: dbtx}
}

const deleteHoursQuery = `DELETE FROM resource_hours WHERE resource_id = $1`

const insertHoursQuery = `
INSERT INTO resource_hours (resource_id, weekday, open_time, close_time, closed)
VALUES ($1, $2, $3, $4, $5)`

const touchResourceQuery = `UPDATE resources SET updated_at = now() WHERE id = $1`

// SaveHours replaces all seven weekday rows in one shot.
func (r *ResourceRepository) SaveHours(ctx context.Context, res *resource.Resource) error {
	if _, err := r.db.Exec(ctx, deleteHoursQuery, res.ID()); err != nil {
		return infra.WrapRepoErr("failed to clear resource hours", err)
	}

	week := res.Hours()
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		day := week.For(wd)
		_, err := r.db.Exec(ctx, insertHoursQuery,
			res.ID(), int(wd),
			pgconv.StringToPgtype(day.Open.String()),
			pgconv.StringToPgtype(day.Close.String()),
			day.Closed,
		)
		if err != nil {
			return classifyWriteErr("failed to insert resource hours", err)
		}
	}

	if _, err := r.db.Exec(ctx, touchResourceQuery, res.ID()); err != nil {
		return infra.WrapRepoErr("failed to touch resource", err)
	}
	return nil
}
