//go:build unit

package availability_test

import (
	"testing"
	"time"

	"venuebook/internal/domain/availability"
	dombooking "venuebook/internal/domain/booking"
	"venuebook/internal/domain/resource"
	"venuebook/internal/domain/schedule"
	"venuebook/internal/domain/season"
	"venuebook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-03-02 is a Monday.
var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func at(h, m int) time.Time {
	return monday.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

func slot(t *testing.T, start, end time.Time) dombooking.TimeSlot {
	t.Helper()
	s, err := dombooking.NewTimeSlot(start, end)
	require.NoError(t, err)
	return s
}

func slotResource(t *testing.T) *resource.Resource {
	t.Helper()
	res, err := builder.NewResourceBuilder().BuildDomain()
	require.NoError(t, err)
	return res
}

func TestCheck_SlotMode(t *testing.T) {
	checker := availability.NewChecker(time.UTC)
	res := slotResource(t)

	t.Run("free grid-aligned slot is available", func(t *testing.T) {
		result, err := checker.Check(res, availability.Request{
			Candidate: slot(t, at(10, 0), at(11, 0)),
		}, nil, nil, nil)
		require.NoError(t, err)
		assert.True(t, result.Available)
		assert.Empty(t, result.Conflicts)
	})

	t.Run("off-grid window is rejected", func(t *testing.T) {
		_, err := checker.Check(res, availability.Request{
			Candidate: slot(t, at(10, 30), at(11, 30)),
		}, nil, nil, nil)
		assert.ErrorIs(t, err, availability.ErrInvalidSlot)
	})

	t.Run("window outside opening hours is rejected", func(t *testing.T) {
		_, err := checker.Check(res, availability.Request{
			Candidate: slot(t, at(17, 0), at(18, 0)),
		}, nil, nil, nil)
		assert.ErrorIs(t, err, availability.ErrInvalidSlot)
	})

	t.Run("overlapping booking conflicts", func(t *testing.T) {
		existing, err := builder.NewBookingBuilder().
			WithSlot(at(10, 0), at(12, 0)).
			BuildExisting()
		require.NoError(t, err)

		result, err := checker.Check(res, availability.Request{
			Candidate: slot(t, at(11, 0), at(13, 0)),
		}, []availability.ExistingBooking{existing}, nil, nil)
		require.NoError(t, err)

		assert.False(t, result.Available)
		require.Len(t, result.Conflicts, 1)
		assert.Equal(t, availability.ConflictBooking, result.Conflicts[0].Kind)
		assert.Equal(t, existing.ID, result.Conflicts[0].SourceID)
	})

	t.Run("adjacent booking does not conflict", func(t *testing.T) {
		existing, err := builder.NewBookingBuilder().
			WithSlot(at(10, 0), at(12, 0)).
			BuildExisting()
		require.NoError(t, err)

		result, err := checker.Check(res, availability.Request{
			Candidate: slot(t, at(12, 0), at(13, 0)),
		}, []availability.ExistingBooking{existing}, nil, nil)
		require.NoError(t, err)
		assert.True(t, result.Available)
	})

	t.Run("cancelled booking never blocks", func(t *testing.T) {
		existing, err := builder.NewBookingBuilder().
			WithSlot(at(10, 0), at(12, 0)).
			AsCancelled().
			BuildExisting()
		require.NoError(t, err)

		result, err := checker.Check(res, availability.Request{
			Candidate: slot(t, at(10, 0), at(11, 0)),
		}, []availability.ExistingBooking{existing}, nil, nil)
		require.NoError(t, err)
		assert.True(t, result.Available)
	})

	t.Run("pending booking blocks", func(t *testing.T) {
		existing, err := builder.NewBookingBuilder().
			WithSlot(at(10, 0), at(12, 0)).
			AsPending().
			BuildExisting()
		require.NoError(t, err)

		result, err := checker.Check(res, availability.Request{
			Candidate: slot(t, at(10, 0), at(11, 0)),
		}, []availability.ExistingBooking{existing}, nil, nil)
		require.NoError(t, err)
		assert.False(t, result.Available)
	})

	t.Run("excluded booking is skipped on reschedule", func(t *testing.T) {
		existing, err := builder.NewBookingBuilder().
			WithSlot(at(10, 0), at(12, 0)).
			BuildExisting()
		require.NoError(t, err)

		result, err := checker.Check(res, availability.Request{
			Candidate: slot(t, at(10, 0), at(11, 0)),
			Exclude:   &existing.ID,
		}, []availability.ExistingBooking{existing}, nil, nil)
		require.NoError(t, err)
		assert.True(t, result.Available)
	})
}

func TestCheck_BlocksAndLeases(t *testing.T) {
	checker := availability.NewChecker(time.UTC)
	res := slotResource(t)

	t.Run("active block conflicts", func(t *testing.T) {
		block := availability.Block{
			ID:         uuid.New(),
			ResourceID: res.ID(),
			Start:      at(9, 0),
			End:        at(12, 0),
			Status:     availability.BlockActive,
		}

		result, err := checker.Check(res, availability.Request{
			Candidate: slot(t, at(11, 0), at(12, 0)),
		}, nil, []availability.Block{block}, nil)
		require.NoError(t, err)

		assert.False(t, result.Available)
		require.Len(t, result.Conflicts, 1)
		assert.Equal(t, availability.ConflictBlock, result.Conflicts[0].Kind)
	})

	t.Run("cancelled block covers nothing", func(t *testing.T) {
		block := availability.Block{
			ID:     uuid.New(),
			Start:  at(9, 0),
			End:    at(12, 0),
			Status: availability.BlockCancelled,
		}

		result, err := checker.Check(res, availability.Request{
			Candidate: slot(t, at(11, 0), at(12, 0)),
		}, nil, []availability.Block{block}, nil)
		require.NoError(t, err)
		assert.True(t, result.Available)
	})

	t.Run("recurring weekly block hits matching weekday", func(t *testing.T) {
		block := availability.Block{
			ID:         uuid.New(),
			Start:      at(10, 0),
			End:        at(12, 0).AddDate(0, 2, 0),
			Recurring:  true,
			Weekdays:   season.NewWeekdaySet(time.Monday),
			Status:     availability.BlockActive,
			Visibility: availability.BlockPublic,
		}

		result, err := checker.Check(res, availability.Request{
			Candidate: slot(t, at(10, 0), at(11, 0)),
		}, nil, []availability.Block{block}, nil)
		require.NoError(t, err)
		assert.False(t, result.Available)
	})

	t.Run("active lease occurrence conflicts", func(t *testing.T) {
		startTod, _ := schedule.NewTimeOfDay(10 * 60)
		endTod, _ := schedule.NewTimeOfDay(12 * 60)
		lease := season.Lease{
			ID:         uuid.New(),
			ResourceID: res.ID(),
			StartDate:  monday.AddDate(0, -1, 0),
			EndDate:    monday.AddDate(0, 3, 0),
			Weekdays:   season.NewWeekdaySet(time.Monday),
			StartTime:  startTod,
			EndTime:    endTod,
			Status:     season.LeaseActive,
		}

		result, err := checker.Check(res, availability.Request{
			Candidate: slot(t, at(11, 0), at(12, 0)),
		}, nil, nil, []season.Lease{lease})
		require.NoError(t, err)

		assert.False(t, result.Available)
		require.Len(t, result.Conflicts, 1)
		assert.Equal(t, availability.ConflictLease, result.Conflicts[0].Kind)
	})

	t.Run("lease on a different weekday does not conflict", func(t *testing.T) {
		startTod, _ := schedule.NewTimeOfDay(10 * 60)
		endTod, _ := schedule.NewTimeOfDay(12 * 60)
		lease := season.Lease{
			ID:        uuid.New(),
			StartDate: monday.AddDate(0, -1, 0),
			EndDate:   monday.AddDate(0, 3, 0),
			Weekdays:  season.NewWeekdaySet(time.Wednesday),
			StartTime: startTod,
			EndTime:   endTod,
			Status:    season.LeaseActive,
		}

		result, err := checker.Check(res, availability.Request{
			Candidate: slot(t, at(11, 0), at(12, 0)),
		}, nil, nil, []season.Lease{lease})
		require.NoError(t, err)
		assert.True(t, result.Available)
	})
}

func TestCheck_DurationMode(t *testing.T) {
	checker := availability.NewChecker(time.UTC)
	res, err := builder.NewResourceBuilder().AsDuration(60, 240).BuildDomain()
	require.NoError(t, err)

	t.Run("within range", func(t *testing.T) {
		result, err := checker.Check(res, availability.Request{
			Candidate: slot(t, at(10, 0), at(12, 0)),
		}, nil, nil, nil)
		require.NoError(t, err)
		assert.True(t, result.Available)
	})

	t.Run("below minimum duration", func(t *testing.T) {
		_, err := checker.Check(res, availability.Request{
			Candidate: slot(t, at(10, 0), at(10, 30)),
		}, nil, nil, nil)
		assert.ErrorIs(t, err, availability.ErrDurationOutOfRange)
	})

	t.Run("above maximum duration", func(t *testing.T) {
		_, err := checker.Check(res, availability.Request{
			Candidate: slot(t, at(10, 0), at(15, 0)),
		}, nil, nil, nil)
		assert.ErrorIs(t, err, availability.ErrDurationOutOfRange)
	})
}

func TestCheck_TicketsMode(t *testing.T) {
	checker := availability.NewChecker(time.UTC)
	res, err := builder.NewResourceBuilder().AsTickets(50).BuildDomain()
	require.NoError(t, err)

	sameDay := func(qty int) availability.ExistingBooking {
		existing, err := builder.NewBookingBuilder().
			WithSlot(at(18, 0), at(20, 0)).
			WithQuantity(qty).
			BuildExisting()
		require.NoError(t, err)
		return existing
	}

	t.Run("capacity left on the date", func(t *testing.T) {
		result, err := checker.Check(res, availability.Request{
			Candidate: slot(t, at(18, 0), at(20, 0)),
			Quantity:  10,
		}, []availability.ExistingBooking{sameDay(30)}, nil, nil)
		require.NoError(t, err)

		assert.True(t, result.Available)
		assert.Equal(t, 10, result.Remaining)
	})

	t.Run("request exceeding remaining capacity", func(t *testing.T) {
		result, err := checker.Check(res, availability.Request{
			Candidate: slot(t, at(18, 0), at(20, 0)),
			Quantity:  10,
		}, []availability.ExistingBooking{sameDay(45)}, nil, nil)

		assert.ErrorIs(t, err, availability.ErrCapacityExceeded)
		assert.False(t, result.Available)
		assert.Equal(t, 5, result.Remaining)
	})

	t.Run("bookings on other dates do not count", func(t *testing.T) {
		otherDay, err := builder.NewBookingBuilder().
			WithSlot(at(18, 0).AddDate(0, 0, 1), at(20, 0).AddDate(0, 0, 1)).
			WithQuantity(50).
			BuildExisting()
		require.NoError(t, err)

		result, err := checker.Check(res, availability.Request{
			Candidate: slot(t, at(18, 0), at(20, 0)),
			Quantity:  50,
		}, []availability.ExistingBooking{otherDay}, nil, nil)
		require.NoError(t, err)
		assert.True(t, result.Available)
		assert.Equal(t, 0, result.Remaining)
	})

	t.Run("non-positive quantity is rejected", func(t *testing.T) {
		_, err := checker.Check(res, availability.Request{
			Candidate: slot(t, at(18, 0), at(20, 0)),
			Quantity:  0,
		}, nil, nil, nil)
		assert.ErrorIs(t, err, availability.ErrCapacityExceeded)
	})
}
