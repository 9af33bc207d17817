package readrepo

import (
	"context"

	"venuebook/internal/infra"
	"venuebook/internal/infra/db"
	"venuebook/internal/pkg/pgconv"
	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadRepository struct {
	db db.DBTX
}

func NewBookingReadRepository(dbtx db.DBTX) queries.BookingViewRepo {
	return &BookingReadRepository{db: dbtx}
}

const bookingViewQuery = `
SELECT b.id, b.tenant_id, b.resource_id, r.name, b.user_id, b.organization_id,
       b.start_time, b.end_time, b.quantity, b.status, b.status_reason,
       b.price_cents, b.currency, b.version, b.metadata, b.created_at, b.updated_at
FROM bookings b
JOIN resources r ON r.id = b.resource_id
WHERE b.id = $1`

func (r *BookingReadRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var (
		v                queries.BookingView
		orgID            pgtype.UUID
		statusReason     pgtype.Text
		start, end       pgtype.Timestamptz
		created, updated pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, bookingViewQuery, id).Scan(
		&v.ID, &v.TenantID, &v.ResourceID, &v.ResourceName, &v.UserID, &orgID,
		&start, &end, &v.Quantity, &v.Status, &statusReason,
		&v.PriceCents, &v.Currency, &v.Version, &v.Metadata, &created, &updated,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking view", err)
	}
	v.OrganizationID = pgconv.UUIDPtrFromPgtype(orgID)
	v.StatusReason = pgconv.StringPtrFromPgtype(statusReason)
	v.StartTime = pgconv.TimeFromPgtype(start)
	v.EndTime = pgconv.TimeFromPgtype(end)
	v.CreatedAt = pgconv.TimeFromPgtype(created)
	v.UpdatedAt = pgconv.TimeFromPgtype(updated)
	return &v, nil
}

// Keyset pagination: the (created_at, id) row comparison skips everything
// at or after the cursor position, so pages stay stable under inserts.
const bookingListByUserQuery = `
SELECT b.id, b.resource_id, r.name, b.start_time, b.end_time,
       b.status, b.price_cents, b.created_at
FROM bookings b
JOIN resources r ON r.id = b.resource_id
WHERE b.user_id = $1
  AND ($2::timestamptz IS NULL OR (b.created_at, b.id) < ($2, $3))
ORDER BY b.created_at DESC, b.id DESC
LIMIT $4`

const bookingListByResourceQuery = `
SELECT b.id, b.resource_id, r.name, b.start_time, b.end_time,
       b.status, b.price_cents, b.created_at
FROM bookings b
JOIN resources r ON r.id = b.resource_id
WHERE b.resource_id = $1
  AND ($2::timestamptz IS NULL OR (b.created_at, b.id) < ($2, $3))
ORDER BY b.created_at DESC, b.id DESC
LIMIT $4`

func (r *BookingReadRepository) FindByUserIDPaginated(ctx context.Context, userID uuid.UUID, limit int32, after *queries.AfterKey) ([]*queries.BookingListItem, error) {
	return r.list(ctx, bookingListByUserQuery, userID, limit, after)
}

func (r *BookingReadRepository) FindByResourceIDPaginated(ctx context.Context, resourceID uuid.UUID, limit int32, after *queries.AfterKey) ([]*queries.BookingListItem, error) {
	return r.list(ctx, bookingListByResourceQuery, resourceID, limit, after)
}

func (r *BookingReadRepository) list(ctx context.Context, query string, key uuid.UUID, limit int32, after *queries.AfterKey) ([]*queries.BookingListItem, error) {
	var (
		afterAt pgtype.Timestamptz
		afterID pgtype.UUID
	)
	if after != nil {
		afterAt = pgconv.TimeToPgtype(after.CreatedAt)
		afterID = pgconv.UUIDToPgtype(after.ID)
	}

	rows, err := r.db.Query(ctx, query, key, afterAt, afterID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var items []*queries.BookingListItem
	for rows.Next() {
		var (
			item                queries.BookingListItem
			start, end, created pgtype.Timestamptz
		)
		if err := rows.Scan(&item.ID, &item.ResourceID, &item.ResourceName, &start, &end, &item.Status, &item.PriceCents, &created); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking list item", err)
		}
		item.StartTime = pgconv.TimeFromPgtype(start)
		item.EndTime = pgconv.TimeFromPgtype(end)
		item.CreatedAt = pgconv.TimeFromPgtype(created)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking list", err)
	}
	return items, nil
}
