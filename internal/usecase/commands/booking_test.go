//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"venuebook/internal/domain/availability"
	"venuebook/internal/domain/booking"
	"venuebook/internal/domain/pricing"
	"venuebook/internal/domain/resource"
	"venuebook/internal/pkg/clock"
	"venuebook/internal/usecase/commands"
	"venuebook/internal/usecase/shared"
	"venuebook/tests/common/builder"
	"venuebook/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-03-02 is a Monday.
var (
	mondayTen = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	nowFixed  = time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
)

func newCommands(u *fake.UnitOfWork, now time.Time) commands.BookingCommands {
	return commands.NewBookingCommands(
		u,
		availability.NewChecker(time.UTC),
		pricing.NewCalculator(time.UTC),
		clock.NewMockClock(now),
		commands.Policy{
			CancellationCutoff: 24 * time.Hour,
			Currency:           "NOK",
			Location:           time.UTC,
		},
	)
}

func seedResource(t *testing.T, u *fake.UnitOfWork, rb *builder.ResourceBuilder) *resource.Resource {
	t.Helper()
	res, err := rb.BuildDomain()
	require.NoError(t, err)
	u.TX.ReadsStub.AddResource(res)
	return res
}

func seedHourlyPricing(u *fake.UnitOfWork, res *resource.Resource, mutate ...func(*builder.PricingConfigBuilder)) {
	pb := builder.NewPricingConfigBuilder().WithResourceID(res.ID()).WithHourlyRate(100000)
	for _, m := range mutate {
		m(pb)
	}
	cfg := pb.BuildConfig()
	u.TX.ReadsStub.Config = &cfg
}

func TestCreateBooking(t *testing.T) {
	t.Run("creates a confirmed priced booking", func(t *testing.T) {
		u := fake.NewUnitOfWork()
		res := seedResource(t, u, builder.NewResourceBuilder())
		seedHourlyPricing(u, res)
		uc := newCommands(u, nowFixed)

		result, err := uc.Create(context.Background(), commands.CreateBookingParams{
			TenantID:   res.TenantID(),
			ResourceID: res.ID(),
			UserID:     uuid.New(),
			Start:      mondayTen,
			End:        mondayTen.Add(2 * time.Hour),
		})
		require.NoError(t, err)

		assert.Equal(t, booking.StatusConfirmed, result.Booking.Status())
		assert.Equal(t, 1, result.Booking.Version())
		assert.Equal(t, 1, result.Booking.Quantity())
		assert.Equal(t, int64(200000), result.Booking.PriceCents())
		assert.Equal(t, "NOK", result.Booking.Currency())
		assert.Equal(t, result.Breakdown.TotalCents, result.Booking.PriceCents())
		require.Len(t, u.TX.BookingsRepo.Created, 1)
	})

	t.Run("approval-gated resource starts pending", func(t *testing.T) {
		u := fake.NewUnitOfWork()
		res := seedResource(t, u, builder.NewResourceBuilder().RequiringApproval())
		seedHourlyPricing(u, res)
		uc := newCommands(u, nowFixed)

		result, err := uc.Create(context.Background(), commands.CreateBookingParams{
			ResourceID: res.ID(),
			UserID:     uuid.New(),
			Start:      mondayTen,
			End:        mondayTen.Add(time.Hour),
		})
		require.NoError(t, err)
		assert.Equal(t, booking.StatusPending, result.Booking.Status())
	})

	t.Run("unknown resource", func(t *testing.T) {
		u := fake.NewUnitOfWork()
		uc := newCommands(u, nowFixed)

		_, err := uc.Create(context.Background(), commands.CreateBookingParams{
			ResourceID: uuid.New(),
			UserID:     uuid.New(),
			Start:      mondayTen,
			End:        mondayTen.Add(time.Hour),
		})
		assert.ErrorIs(t, err, commands.ErrResourceNotFound)
	})

	t.Run("overlapping booking conflicts", func(t *testing.T) {
		u := fake.NewUnitOfWork()
		res := seedResource(t, u, builder.NewResourceBuilder())
		seedHourlyPricing(u, res)
		existing, err := builder.NewBookingBuilder().
			WithSlot(mondayTen, mondayTen.Add(2*time.Hour)).
			BuildExisting()
		require.NoError(t, err)
		u.TX.ReadsStub.Blocking = []availability.ExistingBooking{existing}
		uc := newCommands(u, nowFixed)

		_, err = uc.Create(context.Background(), commands.CreateBookingParams{
			ResourceID: res.ID(),
			UserID:     uuid.New(),
			Start:      mondayTen.Add(time.Hour),
			End:        mondayTen.Add(3 * time.Hour),
		})
		assert.ErrorIs(t, err, commands.ErrBookingConflict)
		assert.Empty(t, u.TX.BookingsRepo.Created)
	})

	t.Run("off-grid slot fails validation", func(t *testing.T) {
		u := fake.NewUnitOfWork()
		res := seedResource(t, u, builder.NewResourceBuilder())
		seedHourlyPricing(u, res)
		uc := newCommands(u, nowFixed)

		_, err := uc.Create(context.Background(), commands.CreateBookingParams{
			ResourceID: res.ID(),
			UserID:     uuid.New(),
			Start:      mondayTen.Add(30 * time.Minute),
			End:        mondayTen.Add(90 * time.Minute),
		})
		assert.ErrorIs(t, err, availability.ErrInvalidSlot)
	})

	t.Run("missing pricing config", func(t *testing.T) {
		u := fake.NewUnitOfWork()
		res := seedResource(t, u, builder.NewResourceBuilder())
		uc := newCommands(u, nowFixed)

		_, err := uc.Create(context.Background(), commands.CreateBookingParams{
			ResourceID: res.ID(),
			UserID:     uuid.New(),
			Start:      mondayTen,
			End:        mondayTen.Add(time.Hour),
		})
		assert.ErrorIs(t, err, shared.ErrPricingNotConfigured)
	})

	t.Run("discount code is applied and redeemed", func(t *testing.T) {
		u := fake.NewUnitOfWork()
		res := seedResource(t, u, builder.NewResourceBuilder())
		seedHourlyPricing(u, res, func(pb *builder.PricingConfigBuilder) {
			pb.WithDiscountCodes()
		})
		code := &pricing.Code{
			ID:       uuid.New(),
			TenantID: res.TenantID(),
			Code:     "SPRING10",
			Type:     pricing.CodePercent,
			Value:    10,
		}
		u.TX.ReadsStub.Code = code
		uc := newCommands(u, nowFixed)

		codeStr := "SPRING10"
		result, err := uc.Create(context.Background(), commands.CreateBookingParams{
			ResourceID:   res.ID(),
			UserID:       uuid.New(),
			Start:        mondayTen,
			End:          mondayTen.Add(2 * time.Hour),
			DiscountCode: &codeStr,
		})
		require.NoError(t, err)

		assert.Equal(t, int64(180000), result.Booking.PriceCents())
		require.Len(t, u.TX.CodesRepo.Increments, 1)
		assert.Equal(t, code.ID, u.TX.CodesRepo.Increments[0])
	})

	t.Run("unknown discount code", func(t *testing.T) {
		u := fake.NewUnitOfWork()
		res := seedResource(t, u, builder.NewResourceBuilder())
		seedHourlyPricing(u, res, func(pb *builder.PricingConfigBuilder) {
			pb.WithDiscountCodes()
		})
		uc := newCommands(u, nowFixed)

		codeStr := "NOSUCH"
		_, err := uc.Create(context.Background(), commands.CreateBookingParams{
			ResourceID:   res.ID(),
			UserID:       uuid.New(),
			Start:        mondayTen,
			End:          mondayTen.Add(time.Hour),
			DiscountCode: &codeStr,
		})
		assert.ErrorIs(t, err, shared.ErrDiscountCodeNotFound)
		assert.Empty(t, u.TX.CodesRepo.Increments)
	})

	t.Run("oversized metadata fails domain validation", func(t *testing.T) {
		u := fake.NewUnitOfWork()
		res := seedResource(t, u, builder.NewResourceBuilder())
		seedHourlyPricing(u, res)
		uc := newCommands(u, nowFixed)

		meta := make(map[string]string)
		for i := 0; i < 21; i++ {
			meta[string(rune('a'+i))] = "v"
		}
		_, err := uc.Create(context.Background(), commands.CreateBookingParams{
			ResourceID: res.ID(),
			UserID:     uuid.New(),
			Start:      mondayTen,
			End:        mondayTen.Add(time.Hour),
			Metadata:   meta,
		})
		assert.ErrorIs(t, err, commands.ErrDomainValidation)
	})

	t.Run("all-day mode widens the slot to whole days", func(t *testing.T) {
		u := fake.NewUnitOfWork()
		res := seedResource(t, u, builder.NewResourceBuilder().AsAllDay())
		pb := builder.NewPricingConfigBuilder().WithResourceID(res.ID()).WithDailyRate(500000)
		cfg := pb.BuildConfig()
		u.TX.ReadsStub.Config = &cfg
		uc := newCommands(u, nowFixed)

		result, err := uc.Create(context.Background(), commands.CreateBookingParams{
			ResourceID: res.ID(),
			UserID:     uuid.New(),
			Start:      mondayTen,
			End:        mondayTen.Add(4 * time.Hour),
		})
		require.NoError(t, err)

		slot := result.Booking.Slot()
		assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), slot.Start())
		assert.Equal(t, time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), slot.End())
		assert.Equal(t, int64(500000), result.Booking.PriceCents())
	})

	t.Run("ticket booking books quantity against capacity", func(t *testing.T) {
		u := fake.NewUnitOfWork()
		res := seedResource(t, u, builder.NewResourceBuilder().AsTickets(50))
		pb := builder.NewPricingConfigBuilder().WithResourceID(res.ID())
		pb.Type = pricing.Tickets
		pb.BasePriceCents = 15000
		cfg := pb.BuildConfig()
		u.TX.ReadsStub.Config = &cfg

		sameDay, err := builder.NewBookingBuilder().
			WithSlot(mondayTen.Add(8*time.Hour), mondayTen.Add(10*time.Hour)).
			WithQuantity(45).
			BuildExisting()
		require.NoError(t, err)
		u.TX.ReadsStub.Blocking = []availability.ExistingBooking{sameDay}
		uc := newCommands(u, nowFixed)

		_, err = uc.Create(context.Background(), commands.CreateBookingParams{
			ResourceID: res.ID(),
			UserID:     uuid.New(),
			Start:      mondayTen.Add(8 * time.Hour),
			End:        mondayTen.Add(10 * time.Hour),
			Quantity:   10,
		})
		assert.ErrorIs(t, err, availability.ErrCapacityExceeded)

		result, err := uc.Create(context.Background(), commands.CreateBookingParams{
			ResourceID: res.ID(),
			UserID:     uuid.New(),
			Start:      mondayTen.Add(8 * time.Hour),
			End:        mondayTen.Add(10 * time.Hour),
			Quantity:   5,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(75000), result.Booking.PriceCents())
	})
}

func TestBookingTransitions(t *testing.T) {
	seedPending := func(t *testing.T, u *fake.UnitOfWork) *booking.Booking {
		t.Helper()
		b, err := builder.NewBookingBuilder().AsPending().BuildDomain()
		require.NoError(t, err)
		u.TX.ReadsStub.AddBooking(b)
		return b
	}

	t.Run("approve confirms and bumps the version", func(t *testing.T) {
		u := fake.NewUnitOfWork()
		b := seedPending(t, u)
		uc := newCommands(u, nowFixed)

		approved, err := uc.Approve(context.Background(), b.ID(), 1)
		require.NoError(t, err)

		assert.Equal(t, booking.StatusConfirmed, approved.Status())
		assert.Equal(t, 2, approved.Version())
		require.Len(t, u.TX.BookingsRepo.Updated, 1)
	})

	t.Run("stale version is refused and nothing saved", func(t *testing.T) {
		u := fake.NewUnitOfWork()
		b := seedPending(t, u)
		uc := newCommands(u, nowFixed)

		_, err := uc.Approve(context.Background(), b.ID(), 99)
		assert.ErrorIs(t, err, booking.ErrStaleVersion)
		assert.Empty(t, u.TX.BookingsRepo.Updated)
	})

	t.Run("unknown booking", func(t *testing.T) {
		u := fake.NewUnitOfWork()
		uc := newCommands(u, nowFixed)

		_, err := uc.Approve(context.Background(), uuid.New(), 1)
		assert.ErrorIs(t, err, commands.ErrBookingNotFound)
	})

	t.Run("reject records the reason", func(t *testing.T) {
		u := fake.NewUnitOfWork()
		b := seedPending(t, u)
		uc := newCommands(u, nowFixed)

		rejected, err := uc.Reject(context.Background(), b.ID(), 1, "double booked")
		require.NoError(t, err)
		assert.Equal(t, booking.StatusRejected, rejected.Status())
		assert.Equal(t, "double booked", rejected.StatusReason())
	})

	t.Run("completing a pending booking is illegal", func(t *testing.T) {
		u := fake.NewUnitOfWork()
		b := seedPending(t, u)
		uc := newCommands(u, nowFixed)

		_, err := uc.Complete(context.Background(), b.ID(), 1)
		assert.ErrorIs(t, err, booking.ErrIllegalTransition)
	})

	t.Run("cancel outside the cutoff keeps the refund", func(t *testing.T) {
		u := fake.NewUnitOfWork()
		b, err := builder.NewBookingBuilder().
			WithSlot(mondayTen, mondayTen.Add(2*time.Hour)).
			BuildDomain()
		require.NoError(t, err)
		u.TX.ReadsStub.AddBooking(b)
		uc := newCommands(u, mondayTen.Add(-48*time.Hour))

		result, err := uc.Cancel(context.Background(), b.ID(), 1, "plans changed")
		require.NoError(t, err)
		assert.True(t, result.RefundEligible)
		assert.Equal(t, booking.StatusCancelled, result.Booking.Status())
	})

	t.Run("cancel inside the cutoff forfeits the refund", func(t *testing.T) {
		u := fake.NewUnitOfWork()
		b, err := builder.NewBookingBuilder().
			WithSlot(mondayTen, mondayTen.Add(2*time.Hour)).
			BuildDomain()
		require.NoError(t, err)
		u.TX.ReadsStub.AddBooking(b)
		uc := newCommands(u, mondayTen.Add(-time.Hour))

		result, err := uc.Cancel(context.Background(), b.ID(), 1, "")
		require.NoError(t, err)
		assert.False(t, result.RefundEligible)
	})
}

func TestReschedule(t *testing.T) {
	t.Run("moves the slot, excluding its own reservation", func(t *testing.T) {
		u := fake.NewUnitOfWork()
		res := seedResource(t, u, builder.NewResourceBuilder())
		seedHourlyPricing(u, res)

		b, err := builder.NewBookingBuilder().
			WithResourceID(res.ID()).
			WithSlot(mondayTen, mondayTen.Add(2*time.Hour)).
			BuildDomain()
		require.NoError(t, err)
		u.TX.ReadsStub.AddBooking(b)

		// The fetch window still returns the booking's own interval.
		self, err := builder.NewBookingBuilder().
			WithID(b.ID()).
			WithSlot(mondayTen, mondayTen.Add(2*time.Hour)).
			BuildExisting()
		require.NoError(t, err)
		u.TX.ReadsStub.Blocking = []availability.ExistingBooking{self}
		uc := newCommands(u, nowFixed)

		result, err := uc.Reschedule(context.Background(), commands.RescheduleParams{
			BookingID: b.ID(),
			Version:   1,
			Start:     mondayTen.Add(time.Hour),
			End:       mondayTen.Add(4 * time.Hour),
		})
		require.NoError(t, err)

		assert.Equal(t, mondayTen.Add(time.Hour), result.Booking.Slot().Start())
		assert.Equal(t, int64(300000), result.Booking.PriceCents())
		assert.Equal(t, 2, result.Booking.Version())
		require.Len(t, u.TX.BookingsRepo.Updated, 1)
	})

	t.Run("per person repricing uses the stored attendee count", func(t *testing.T) {
		u := fake.NewUnitOfWork()
		res := seedResource(t, u, builder.NewResourceBuilder())
		seedHourlyPricing(u, res, func(pb *builder.PricingConfigBuilder) {
			pb.WithPerPersonRate(5000).WithPeopleRange(10, 60)
		})
		uc := newCommands(u, nowFixed)

		created, err := uc.Create(context.Background(), commands.CreateBookingParams{
			TenantID:   res.TenantID(),
			ResourceID: res.ID(),
			UserID:     uuid.New(),
			Start:      mondayTen,
			End:        mondayTen.Add(2 * time.Hour),
			Attendees:  30,
		})
		require.NoError(t, err)
		require.Equal(t, 30, created.Booking.Attendees())
		require.Equal(t, int64(150000), created.Booking.PriceCents())
		u.TX.ReadsStub.AddBooking(created.Booking)

		// Moving an unchanged party a day later must reprice with the
		// stored attendee count, not the booking quantity.
		result, err := uc.Reschedule(context.Background(), commands.RescheduleParams{
			BookingID: created.Booking.ID(),
			Version:   1,
			Start:     mondayTen.Add(24 * time.Hour),
			End:       mondayTen.Add(26 * time.Hour),
		})
		require.NoError(t, err)
		assert.Equal(t, 30, result.Booking.Attendees())
		assert.Equal(t, int64(150000), result.Booking.PriceCents())
		assert.Equal(t, 2, result.Booking.Version())
	})

	t.Run("conflicting move is refused", func(t *testing.T) {
		u := fake.NewUnitOfWork()
		res := seedResource(t, u, builder.NewResourceBuilder())
		seedHourlyPricing(u, res)

		b, err := builder.NewBookingBuilder().
			WithResourceID(res.ID()).
			WithSlot(mondayTen, mondayTen.Add(time.Hour)).
			BuildDomain()
		require.NoError(t, err)
		u.TX.ReadsStub.AddBooking(b)

		other, err := builder.NewBookingBuilder().
			WithSlot(mondayTen.Add(2*time.Hour), mondayTen.Add(3*time.Hour)).
			BuildExisting()
		require.NoError(t, err)
		u.TX.ReadsStub.Blocking = []availability.ExistingBooking{other}
		uc := newCommands(u, nowFixed)

		_, err = uc.Reschedule(context.Background(), commands.RescheduleParams{
			BookingID: b.ID(),
			Version:   1,
			Start:     mondayTen.Add(2 * time.Hour),
			End:       mondayTen.Add(3 * time.Hour),
		})
		assert.ErrorIs(t, err, commands.ErrBookingConflict)
	})

	t.Run("cancelled booking cannot move", func(t *testing.T) {
		u := fake.NewUnitOfWork()
		res := seedResource(t, u, builder.NewResourceBuilder())
		seedHourlyPricing(u, res)

		b, err := builder.NewBookingBuilder().
			WithResourceID(res.ID()).
			WithSlot(mondayTen, mondayTen.Add(time.Hour)).
			AsCancelled().
			BuildDomain()
		require.NoError(t, err)
		u.TX.ReadsStub.AddBooking(b)
		uc := newCommands(u, nowFixed)

		_, err = uc.Reschedule(context.Background(), commands.RescheduleParams{
			BookingID: b.ID(),
			Version:   1,
			Start:     mondayTen.Add(2 * time.Hour),
			End:       mondayTen.Add(3 * time.Hour),
		})
		assert.ErrorIs(t, err, booking.ErrIllegalTransition)
	})
}
