package readstore

import (
	"context"

	"venuebook/internal/domain/resource"
	"venuebook/internal/domain/schedule"
	"venuebook/internal/infra"
	"venuebook/internal/infra/db"
	"venuebook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ResourceReadStore struct {
	db db.DBTX
}

func NewResourceReadStore(dbtx db.DBTX) *ResourceReadStore {
	return &ResourceReadStore{db: dbtx}
}

const resourceByIDQuery = `
SELECT id, tenant_id, name, mode, capacity,
       slot_duration_min, min_duration_min, max_duration_min,
       requires_approval, created_at, updated_at
FROM resources
WHERE id = $1`

const resourceHoursQuery = `
SELECT weekday, open_time, close_time, closed
FROM resource_hours
WHERE resource_id = $1
ORDER BY weekday`

func (r *ResourceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*resource.Resource, error) {
	var (
		resID, tenantID      uuid.UUID
		name, mode           string
		capacity             int
		slotMin, minD, maxD  int
		requiresApproval     bool
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, resourceByIDQuery, id).Scan(
		&resID, &tenantID, &name, &mode, &capacity,
		&slotMin, &minD, &maxD,
		&requiresApproval, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find resource by ID", err)
	}

	hours, err := r.loadHours(ctx, resID)
	if err != nil {
		return nil, err
	}

	return resource.ReconstructResource(
		resID, tenantID, name, resource.BookingMode(mode), capacity,
		hours, slotMin, minD, maxD, requiresApproval,
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func (r *ResourceReadStore) loadHours(ctx context.Context, resourceID uuid.UUID) (schedule.WeekHours, error) {
	rows, err := r.db.Query(ctx, resourceHoursQuery, resourceID)
	if err != nil {
		return schedule.WeekHours{}, infra.WrapRepoErr("failed to load resource hours", err)
	}
	defer rows.Close()

	var raw []schedule.RawDayHours
	for rows.Next() {
		var (
			weekday         int
			openAt, closeAt pgtype.Text
			closed          bool
		)
		if err := rows.Scan(&weekday, &openAt, &closeAt, &closed); err != nil {
			return schedule.WeekHours{}, infra.WrapRepoErr("failed to scan resource hours", err)
		}
		raw = append(raw, schedule.RawDayHours{
			Weekday: weekday,
			Open:    openAt.String,
			Close:   closeAt.String,
			Closed:  closed,
		})
	}
	if err := rows.Err(); err != nil {
		return schedule.WeekHours{}, infra.WrapRepoErr("failed to read resource hours", err)
	}

	hours, err := schedule.ParseWeekHours(raw)
	if err != nil {
		return schedule.WeekHours{}, infra.WrapRepoErr("invalid stored resource hours", err)
	}
	return hours, nil
}
