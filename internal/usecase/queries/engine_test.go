//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"venuebook/internal/domain/availability"
	"venuebook/internal/domain/pricing"
	"venuebook/internal/pkg/clock"
	"venuebook/internal/usecase/queries"
	"venuebook/tests/common/builder"
	"venuebook/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-03-02 is a Monday.
var mondayTen = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

func newEngine(reads *fake.Reads) queries.EngineQueries {
	return queries.NewEngineQueries(
		reads,
		availability.NewChecker(time.UTC),
		pricing.NewCalculator(time.UTC),
		clock.NewMockClock(time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)),
		"NOK",
		time.UTC,
	)
}

func TestDayGrid(t *testing.T) {
	t.Run("returns slot starts for the weekday", func(t *testing.T) {
		reads := &fake.Reads{}
		res, err := builder.NewResourceBuilder().BuildDomain()
		require.NoError(t, err)
		reads.AddResource(res)

		view, err := newEngine(reads).DayGrid(context.Background(), res.ID(), time.Monday)
		require.NoError(t, err)

		assert.Equal(t, int(time.Monday), view.Weekday)
		require.Len(t, view.Slots, 8)
		assert.Equal(t, "09:00", view.Slots[0])
		assert.Equal(t, "16:00", view.Slots[7])
	})

	t.Run("resource without a grid yields empty slots", func(t *testing.T) {
		reads := &fake.Reads{}
		res, err := builder.NewResourceBuilder().AsDuration(60, 240).BuildDomain()
		require.NoError(t, err)
		reads.AddResource(res)

		view, err := newEngine(reads).DayGrid(context.Background(), res.ID(), time.Monday)
		require.NoError(t, err)
		assert.Empty(t, view.Slots)
	})

	t.Run("unknown resource", func(t *testing.T) {
		reads := &fake.Reads{}
		_, err := newEngine(reads).DayGrid(context.Background(), uuid.New(), time.Monday)
		assert.ErrorIs(t, err, queries.ErrResourceNotFound)
	})
}

func TestAvailability(t *testing.T) {
	t.Run("free window", func(t *testing.T) {
		reads := &fake.Reads{}
		res, err := builder.NewResourceBuilder().BuildDomain()
		require.NoError(t, err)
		reads.AddResource(res)

		view, err := newEngine(reads).Availability(context.Background(), queries.AvailabilityParams{
			ResourceID: res.ID(),
			Start:      mondayTen,
			End:        mondayTen.Add(time.Hour),
		})
		require.NoError(t, err)
		assert.True(t, view.Available)
		assert.Empty(t, view.Conflicts)
	})

	t.Run("conflicts carry kind and interval", func(t *testing.T) {
		reads := &fake.Reads{}
		res, err := builder.NewResourceBuilder().BuildDomain()
		require.NoError(t, err)
		reads.AddResource(res)

		existing, err := builder.NewBookingBuilder().
			WithSlot(mondayTen, mondayTen.Add(2*time.Hour)).
			BuildExisting()
		require.NoError(t, err)
		reads.Blocking = []availability.ExistingBooking{existing}

		view, err := newEngine(reads).Availability(context.Background(), queries.AvailabilityParams{
			ResourceID: res.ID(),
			Start:      mondayTen,
			End:        mondayTen.Add(time.Hour),
		})
		require.NoError(t, err)

		assert.False(t, view.Available)
		require.Len(t, view.Conflicts, 1)
		assert.Equal(t, "booking", view.Conflicts[0].Kind)
		assert.Equal(t, existing.ID, view.Conflicts[0].SourceID)
		assert.Equal(t, mondayTen, view.Conflicts[0].Start)
	})

	t.Run("capacity shortfall is an answer, not an error", func(t *testing.T) {
		reads := &fake.Reads{}
		res, err := builder.NewResourceBuilder().AsTickets(50).BuildDomain()
		require.NoError(t, err)
		reads.AddResource(res)

		existing, err := builder.NewBookingBuilder().
			WithSlot(mondayTen, mondayTen.Add(2*time.Hour)).
			WithQuantity(45).
			BuildExisting()
		require.NoError(t, err)
		reads.Blocking = []availability.ExistingBooking{existing}

		view, err := newEngine(reads).Availability(context.Background(), queries.AvailabilityParams{
			ResourceID: res.ID(),
			Start:      mondayTen,
			End:        mondayTen.Add(2 * time.Hour),
			Quantity:   10,
		})
		require.NoError(t, err)

		assert.False(t, view.Available)
		assert.Equal(t, 5, view.Remaining)
	})
}

func TestQuote(t *testing.T) {
	t.Run("prices without redeeming code usage", func(t *testing.T) {
		reads := &fake.Reads{}
		res, err := builder.NewResourceBuilder().BuildDomain()
		require.NoError(t, err)
		reads.AddResource(res)

		pb := builder.NewPricingConfigBuilder().
			WithResourceID(res.ID()).
			WithHourlyRate(100000).
			WithDiscountCodes()
		cfg := pb.BuildConfig()
		reads.Config = &cfg
		reads.Code = &pricing.Code{
			ID:    uuid.New(),
			Code:  "SPRING10",
			Type:  pricing.CodePercent,
			Value: 10,
		}

		codeStr := "SPRING10"
		bd, err := newEngine(reads).Quote(context.Background(), queries.QuoteParams{
			ResourceID:   res.ID(),
			UserID:       uuid.New(),
			Start:        mondayTen,
			End:          mondayTen.Add(2 * time.Hour),
			DiscountCode: &codeStr,
		})
		require.NoError(t, err)

		assert.Equal(t, int64(180000), bd.TotalCents)
		assert.Equal(t, "NOK", bd.Currency)
	})

	t.Run("default currency fills an unset config currency", func(t *testing.T) {
		reads := &fake.Reads{}
		res, err := builder.NewResourceBuilder().BuildDomain()
		require.NoError(t, err)
		reads.AddResource(res)

		pb := builder.NewPricingConfigBuilder().WithResourceID(res.ID()).WithHourlyRate(100000)
		pb.Currency = ""
		cfg := pb.BuildConfig()
		reads.Config = &cfg

		bd, err := newEngine(reads).Quote(context.Background(), queries.QuoteParams{
			ResourceID: res.ID(),
			UserID:     uuid.New(),
			Start:      mondayTen,
			End:        mondayTen.Add(time.Hour),
		})
		require.NoError(t, err)
		assert.Equal(t, "NOK", bd.Currency)
	})
}
