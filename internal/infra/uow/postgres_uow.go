package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"venuebook/internal/domain/availability"
	"venuebook/internal/domain/booking"
	"venuebook/internal/domain/pricing"
	"venuebook/internal/domain/resource"
	"venuebook/internal/domain/season"
	"venuebook/internal/infra/db"
	"venuebook/internal/infra/readstore"
	"venuebook/internal/infra/repository"
	"venuebook/internal/pkg/errs"
	"venuebook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) Reads() shared.CommandReads {
	return newCommandReads(u.pool)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	resourceRepo shared.ResourceRepository
	bookingRepo  shared.BookingRepository
	codeRepo     shared.CodeRepository
	seasonRepo   shared.SeasonRepository
	commandReads shared.CommandReads
}

func (t *pgTx) Resources() shared.ResourceRepository {
	if t.resourceRepo == nil {
		t.resourceRepo = repository.NewResourceRepository(t.dbtx)
	}
	return t.resourceRepo
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.dbtx)
	}
	return t.bookingRepo
}

func (t *pgTx) Codes() shared.CodeRepository {
	if t.codeRepo == nil {
		t.codeRepo = repository.NewCodeRepository(t.dbtx)
	}
	return t.codeRepo
}

func (t *pgTx) Seasons() shared.SeasonRepository {
	if t.seasonRepo == nil {
		t.seasonRepo = repository.NewSeasonRepository(t.dbtx)
	}
	return t.seasonRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = newCommandReads(t.dbtx)
	}
	return t.commandReads
}

// commandReads satisfies shared.CommandReads over either the pool or an
// open transaction.
type commandReads struct {
	resources    *readstore.ResourceReadStore
	bookings     *readstore.BookingReadStore
	availability *readstore.AvailabilityReadStore
	pricing      *readstore.PricingReadStore
	seasons      *readstore.SeasonReadStore
}

func newCommandReads(dbtx db.DBTX) *commandReads {
	return &commandReads{
		resources:    readstore.NewResourceReadStore(dbtx),
		bookings:     readstore.NewBookingReadStore(dbtx),
		availability: readstore.NewAvailabilityReadStore(dbtx),
		pricing:      readstore.NewPricingReadStore(dbtx),
		seasons:      readstore.NewSeasonReadStore(dbtx),
	}
}

func (r *commandReads) ResourceByID(ctx context.Context, id uuid.UUID) (*resource.Resource, error) {
	return r.resources.FindByID(ctx, id)
}

func (r *commandReads) BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.bookings.FindByID(ctx, id)
}

func (r *commandReads) BlockingBookings(ctx context.Context, resourceID uuid.UUID, from, to time.Time) ([]availability.ExistingBooking, error) {
	return r.bookings.FindBlocking(ctx, resourceID, from, to)
}

func (r *commandReads) ActiveBlocks(ctx context.Context, resourceID uuid.UUID) ([]availability.Block, error) {
	return r.availability.ActiveBlocks(ctx, resourceID)
}

func (r *commandReads) ActiveLeases(ctx context.Context, resourceID uuid.UUID) ([]season.Lease, error) {
	return r.availability.ActiveLeases(ctx, resourceID)
}

func (r *commandReads) PricingConfig(ctx context.Context, resourceID uuid.UUID) (*pricing.Config, error) {
	return r.pricing.ConfigByResource(ctx, resourceID)
}

func (r *commandReads) GroupAssignments(ctx context.Context, tenantID, userID uuid.UUID, orgID *uuid.UUID) ([]pricing.GroupAssignment, error) {
	return r.pricing.GroupAssignments(ctx, tenantID, userID, orgID)
}

func (r *commandReads) WeekdayPricing(ctx context.Context, tenantID uuid.UUID) ([]pricing.WeekdayPricing, error) {
	return r.pricing.WeekdayPricing(ctx, tenantID)
}

func (r *commandReads) Holidays(ctx context.Context, tenantID uuid.UUID) ([]pricing.Holiday, error) {
	return r.pricing.Holidays(ctx, tenantID)
}

func (r *commandReads) Services(ctx context.Context, resourceID uuid.UUID) ([]pricing.Service, error) {
	return r.pricing.Services(ctx, resourceID)
}

func (r *commandReads) DiscountCode(ctx context.Context, tenantID uuid.UUID, code string) (*pricing.Code, error) {
	return r.pricing.CodeByCode(ctx, tenantID, code)
}

func (r *commandReads) CodeUsesByUser(ctx context.Context, codeID, userID uuid.UUID) (int, error) {
	return r.pricing.CodeUsesByUser(ctx, codeID, userID)
}

func (r *commandReads) UserHasBookings(ctx context.Context, tenantID, userID uuid.UUID) (bool, error) {
	return r.bookings.UserHasBookings(ctx, tenantID, userID)
}

func (r *commandReads) SeasonRules(ctx context.Context, seasonID uuid.UUID) ([]season.PriorityRule, error) {
	return r.seasons.Rules(ctx, seasonID)
}

func (r *commandReads) SeasonApplications(ctx context.Context, seasonID, resourceID uuid.UUID) ([]season.Application, error) {
	return r.seasons.Applications(ctx, seasonID, resourceID)
}
