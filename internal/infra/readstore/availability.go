package readstore

import (
	"context"

	"venuebook/internal/domain/availability"
	"venuebook/internal/domain/schedule"
	"venuebook/internal/domain/season"
	"venuebook/internal/infra"
	"venuebook/internal/infra/db"
	"venuebook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AvailabilityReadStore struct {
	db db.DBTX
}

func NewAvailabilityReadStore(dbtx db.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{db: dbtx}
}

const activeBlocksQuery = `
SELECT id, resource_id, start_time, end_time, all_day, recurring, weekdays, status, visibility
FROM availability_blocks
WHERE resource_id = $1 AND status = 'active'`

const activeLeasesQuery = `
SELECT id, resource_id, organization_id, start_date, end_date, weekdays, start_min, end_min, status
FROM season_leases
WHERE resource_id = $1 AND status = 'active'`

func (r *AvailabilityReadStore) ActiveBlocks(ctx context.Context, resourceID uuid.UUID) ([]availability.Block, error) {
	rows, err := r.db.Query(ctx, activeBlocksQuery, resourceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load availability blocks", err)
	}
	defer rows.Close()

	var blocks []availability.Block
	for rows.Next() {
		var (
			id, resID          uuid.UUID
			startTime, endTime pgtype.Timestamptz
			allDay, recurring  bool
			weekdays           int
			status, visibility string
		)
		if err := rows.Scan(&id, &resID, &startTime, &endTime, &allDay, &recurring, &weekdays, &status, &visibility); err != nil {
			return nil, infra.WrapRepoErr("failed to scan availability block", err)
		}
		blocks = append(blocks, availability.Block{
			ID:         id,
			ResourceID: resID,
			Start:      pgconv.TimeFromPgtype(startTime),
			End:        pgconv.TimeFromPgtype(endTime),
			AllDay:     allDay,
			Recurring:  recurring,
			Weekdays:   season.WeekdaySet(weekdays),
			Status:     availability.BlockStatus(status),
			Visibility: availability.BlockVisibility(visibility),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read availability blocks", err)
	}
	return blocks, nil
}

func (r *AvailabilityReadStore) ActiveLeases(ctx context.Context, resourceID uuid.UUID) ([]season.Lease, error) {
	rows, err := r.db.Query(ctx, activeLeasesQuery, resourceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load season leases", err)
	}
	defer rows.Close()

	var leases []season.Lease
	for rows.Next() {
		var (
			id, resID, orgID   uuid.UUID
			startDate, endDate pgtype.Timestamptz
			weekdays           int
			startMin, endMin   int
			status             string
		)
		if err := rows.Scan(&id, &resID, &orgID, &startDate, &endDate, &weekdays, &startMin, &endMin, &status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan season lease", err)
		}
		startTod, err := schedule.NewTimeOfDay(startMin)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid stored lease start", err)
		}
		endTod, err := schedule.NewTimeOfDay(endMin)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid stored lease end", err)
		}
		leases = append(leases, season.Lease{
			ID:             id,
			ResourceID:     resID,
			OrganizationID: orgID,
			StartDate:      pgconv.TimeFromPgtype(startDate),
			EndDate:        pgconv.TimeFromPgtype(endDate),
			Weekdays:       season.WeekdaySet(weekdays),
			StartTime:      startTod,
			EndTime:        endTod,
			Status:         season.LeaseStatus(status),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read season leases", err)
	}
	return leases, nil
}
