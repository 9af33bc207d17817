package readstore

import (
	"context"
	"time"

	"venuebook/internal/domain/availability"
	"venuebook/internal/domain/booking"
	"venuebook/internal/infra"
	"venuebook/internal/infra/db"
	"venuebook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

const bookingByIDQuery = `
SELECT id, tenant_id, resource_id, user_id, organization_id,
       start_time, end_time, quantity, attendees, status, status_reason,
       price_cents, currency, version, metadata, created_at, updated_at
FROM bookings
WHERE id = $1`

// Status filter lives in SQL so the window fetch stays small; the pure
// checker still re-filters via Status.Blocks.
const blockingBookingsQuery = `
SELECT id, start_time, end_time, status, quantity
FROM bookings
WHERE resource_id = $1
  AND status IN ('pending', 'confirmed')
  AND start_time < $3
  AND end_time > $2`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	var (
		bID, tenantID, resourceID, userID uuid.UUID
		orgID                             pgtype.UUID
		startTime, endTime                pgtype.Timestamptz
		quantity, attendees               int
		status                            string
		statusReason                      pgtype.Text
		priceCents                        int64
		currency                          string
		version                           int
		metadata                          map[string]string
		createdAt, updatedAt              pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, bookingByIDQuery, id).Scan(
		&bID, &tenantID, &resourceID, &userID, &orgID,
		&startTime, &endTime, &quantity, &attendees, &status, &statusReason,
		&priceCents, &currency, &version, &metadata, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	slot, err := booking.NewTimeSlot(pgconv.TimeFromPgtype(startTime), pgconv.TimeFromPgtype(endTime))
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored booking interval", err)
	}

	reason := ""
	if s := pgconv.StringPtrFromPgtype(statusReason); s != nil {
		reason = *s
	}

	return booking.ReconstructBooking(
		bID, tenantID, resourceID, userID,
		pgconv.UUIDPtrFromPgtype(orgID),
		slot, quantity, attendees,
		booking.Status(status), reason,
		priceCents, currency, version,
		booking.Metadata(metadata),
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func (r *BookingReadStore) FindBlocking(ctx context.Context, resourceID uuid.UUID, from, to time.Time) ([]availability.ExistingBooking, error) {
	rows, err := r.db.Query(ctx, blockingBookingsQuery, resourceID, pgconv.TimeToPgtype(from), pgconv.TimeToPgtype(to))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load blocking bookings", err)
	}
	defer rows.Close()

	var result []availability.ExistingBooking
	for rows.Next() {
		var (
			id                 uuid.UUID
			startTime, endTime pgtype.Timestamptz
			status             string
			quantity           int
		)
		if err := rows.Scan(&id, &startTime, &endTime, &status, &quantity); err != nil {
			return nil, infra.WrapRepoErr("failed to scan blocking booking", err)
		}
		slot, err := booking.NewTimeSlot(pgconv.TimeFromPgtype(startTime), pgconv.TimeFromPgtype(endTime))
		if err != nil {
			return nil, infra.WrapRepoErr("invalid stored booking interval", err)
		}
		result = append(result, availability.ExistingBooking{
			ID:       id,
			Slot:     slot,
			Status:   booking.Status(status),
			Quantity: quantity,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read blocking bookings", err)
	}
	return result, nil
}

const userHasBookingsQuery = `
SELECT EXISTS (
	SELECT 1 FROM bookings
	WHERE tenant_id = $1 AND user_id = $2 AND status <> 'rejected'
)`

func (r *BookingReadStore) UserHasBookings(ctx context.Context, tenantID, userID uuid.UUID) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, userHasBookingsQuery, tenantID, userID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check prior bookings", err)
	}
	return exists, nil
}
