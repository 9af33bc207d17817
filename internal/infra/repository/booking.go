package repository

import (
	"context"
	"errors"

	"venuebook/internal/domain/booking"
	"venuebook/internal/infra"
	"venuebook/internal/infra/db"
	"venuebook/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
	pgErrCodeExclusionViolation  = "23P01"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

const createBookingQuery = `
INSERT INTO bookings (
	id, tenant_id, resource_id, user_id, organization_id,
	start_time, end_time, quantity, attendees, status, status_reason,
	price_cents, currency, version, metadata, created_at, updated_at
) VALUES (
	$1, $2, $3, $4, $5,
	$6, $7, $8, $9, $10, $11,
	$12, $13, $14, $15, $16, $17
)`

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	var reason *string
	if s := b.StatusReason(); s != "" {
		reason = &s
	}

	_, err := r.db.Exec(ctx, createBookingQuery,
		b.ID(), b.TenantID(), b.ResourceID(), b.UserID(),
		pgconv.UUIDPtrToPgtype(b.OrganizationID()),
		pgconv.TimeToPgtype(b.Slot().Start()), pgconv.TimeToPgtype(b.Slot().End()),
		b.Quantity(), b.Attendees(), string(b.Status()), pgconv.StringPtrToPgtype(reason),
		b.PriceCents(), b.Currency(), b.Version(),
		map[string]string(b.Metadata()),
		pgconv.TimeToPgtype(b.CreatedAt()), pgconv.TimeToPgtype(b.UpdatedAt()),
	)
	if err != nil {
		return classifyWriteErr("failed to create booking", err)
	}
	return nil
}

// Save persists a mutated aggregate. The WHERE version clause is the
// optimistic lock: zero rows affected means a concurrent writer won.
const saveBookingQuery = `
UPDATE bookings
SET start_time = $3, end_time = $4, status = $5, status_reason = $6,
    price_cents = $7, version = $8, updated_at = $9
WHERE id = $1 AND version = $2`

func (r *BookingRepository) Save(ctx context.Context, b *booking.Booking) error {
	var reason *string
	if s := b.StatusReason(); s != "" {
		reason = &s
	}

	tag, err := r.db.Exec(ctx, saveBookingQuery,
		b.ID(), b.Version()-1,
		pgconv.TimeToPgtype(b.Slot().Start()), pgconv.TimeToPgtype(b.Slot().End()),
		string(b.Status()), pgconv.StringPtrToPgtype(reason),
		b.PriceCents(), b.Version(), pgconv.TimeToPgtype(b.UpdatedAt()),
	)
	if err != nil {
		return classifyWriteErr("failed to save booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking version is stale", booking.ErrStaleVersion, infra.KindStaleVersion)
	}
	return nil
}

func classifyWriteErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeUniqueViolation, pgErrCodeExclusionViolation:
			return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
		case pgErrCodeForeignKeyViolation:
			return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
		}
	}
	return infra.WrapRepoErr(msg, err)
}
