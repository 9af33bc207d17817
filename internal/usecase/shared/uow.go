package shared

import (
	"context"
	"time"

	"venuebook/internal/domain/availability"
	"venuebook/internal/domain/booking"
	"venuebook/internal/domain/pricing"
	"venuebook/internal/domain/resource"
	"venuebook/internal/domain/season"

	"github.com/google/uuid"
)

// UnitOfWork scopes engine writes to one transaction. Availability and
// pricing are pure and must be re-evaluated through Tx.Reads immediately
// before commit; results read outside the transaction are advisory only.
type UnitOfWork interface {
	// Within runs fn in a read-committed transaction with retry on
	// serialization failures.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Reads gives non-transactional access for advisory checks and queries.
	Reads() CommandReads
}

type Tx interface {
	Resources() ResourceRepository
	Bookings() BookingRepository
	Codes() CodeRepository
	Seasons() SeasonRepository
	Reads() CommandReads
}

// CommandReads loads engine state as domain values. Implementations must
// not cache: availability and pricing are recomputed from fresh reads at
// commit time.
type CommandReads interface {
	ResourceByID(ctx context.Context, id uuid.UUID) (*resource.Resource, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)

	// BlockingBookings returns pending/confirmed bookings for the resource
	// that intersect [from,to).
	BlockingBookings(ctx context.Context, resourceID uuid.UUID, from, to time.Time) ([]availability.ExistingBooking, error)
	ActiveBlocks(ctx context.Context, resourceID uuid.UUID) ([]availability.Block, error)
	ActiveLeases(ctx context.Context, resourceID uuid.UUID) ([]season.Lease, error)

	PricingConfig(ctx context.Context, resourceID uuid.UUID) (*pricing.Config, error)
	GroupAssignments(ctx context.Context, tenantID, userID uuid.UUID, orgID *uuid.UUID) ([]pricing.GroupAssignment, error)
	WeekdayPricing(ctx context.Context, tenantID uuid.UUID) ([]pricing.WeekdayPricing, error)
	Holidays(ctx context.Context, tenantID uuid.UUID) ([]pricing.Holiday, error)
	Services(ctx context.Context, resourceID uuid.UUID) ([]pricing.Service, error)

	DiscountCode(ctx context.Context, tenantID uuid.UUID, code string) (*pricing.Code, error)
	CodeUsesByUser(ctx context.Context, codeID, userID uuid.UUID) (int, error)
	UserHasBookings(ctx context.Context, tenantID, userID uuid.UUID) (bool, error)

	SeasonRules(ctx context.Context, seasonID uuid.UUID) ([]season.PriorityRule, error)
	SeasonApplications(ctx context.Context, seasonID, resourceID uuid.UUID) ([]season.Application, error)
}

type ResourceRepository interface {
	// SaveHours replaces the resource's weekly opening hours.
	SaveHours(ctx context.Context, res *resource.Resource) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	// Save persists a mutated booking with an optimistic version
	// precondition: the row must still hold b.Version()-1.
	Save(ctx context.Context, b *booking.Booking) error
}

type CodeRepository interface {
	// IncrementUsage bumps both the total and the per-user counters.
	IncrementUsage(ctx context.Context, codeID, userID uuid.UUID) error
}

type SeasonRepository interface {
	SaveRanking(ctx context.Context, ranked []season.RankedApplication) error
	CreateLease(ctx context.Context, lease season.Lease) error
}
