package repository

import (
	"context"

	"venuebook/internal/domain/season"
	"venuebook/internal/infra"
	"venuebook/internal/infra/db"
	"venuebook/internal/pkg/pgconv"
)

type SeasonRepository struct {
	db db.DBTX
}

func NewSeasonRepository(dbtx db.DBTX) *SeasonRepository {
	return &SeasonRepository{db: dbtx}
}

const saveRankingQuery = `
UPDATE season_applications
SET score = $2, rank = $3, status = $4
WHERE id = $1`

func (r *SeasonRepository) SaveRanking(ctx context.Context, ranked []season.RankedApplication) error {
	for _, app := range ranked {
		_, err := r.db.Exec(ctx, saveRankingQuery, app.Application.ID, app.Score, app.Rank, string(app.Status))
		if err != nil {
			return infra.WrapRepoErr("failed to save application ranking", err)
		}
	}
	return nil
}

const createLeaseQuery = `
INSERT INTO season_leases (
	id, resource_id, organization_id, start_date, end_date,
	weekdays, start_min, end_min, status
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

func (r *SeasonRepository) CreateLease(ctx context.Context, lease season.Lease) error {
	_, err := r.db.Exec(ctx, createLeaseQuery,
		lease.ID, lease.ResourceID, lease.OrganizationID,
		pgconv.TimeToPgtype(lease.StartDate), pgconv.TimeToPgtype(lease.EndDate),
		int(lease.Weekdays), lease.StartTime.Minutes(), lease.EndTime.Minutes(),
		string(lease.Status),
	)
	if err != nil {
		return classifyWriteErr("failed to create season lease", err)
	}
	return nil
}
