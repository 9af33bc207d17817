//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"venuebook/internal/domain/schedule"
	"venuebook/internal/usecase/commands"
	"venuebook/tests/common/builder"
	"venuebook/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateHours(t *testing.T) {
	t.Run("replaces the weekly hours", func(t *testing.T) {
		u := fake.NewUnitOfWork()
		res := seedResource(t, u, builder.NewResourceBuilder())
		uc := commands.NewResourceCommands(u)

		updated, err := uc.UpdateHours(context.Background(), res.ID(), []schedule.RawDayHours{
			{Weekday: 1, Open: "07:00", Close: "22:00"},
			{Weekday: 0, Closed: true},
		})
		require.NoError(t, err)

		monday := updated.Hours().For(time.Monday)
		assert.Equal(t, "07:00", monday.Open.String())
		assert.Equal(t, "22:00", monday.Close.String())
		assert.True(t, updated.Hours().For(time.Sunday).Closed)
		require.Len(t, u.TX.ResourcesRepo.Saved, 1)
	})

	t.Run("malformed hours fail before any read", func(t *testing.T) {
		u := fake.NewUnitOfWork()
		uc := commands.NewResourceCommands(u)

		_, err := uc.UpdateHours(context.Background(), uuid.New(), []schedule.RawDayHours{
			{Weekday: 1, Open: "22:00", Close: "07:00"},
		})
		assert.ErrorIs(t, err, commands.ErrDomainValidation)
		assert.ErrorIs(t, err, schedule.ErrInvalidSchedule)
	})

	t.Run("unknown resource", func(t *testing.T) {
		u := fake.NewUnitOfWork()
		uc := commands.NewResourceCommands(u)

		_, err := uc.UpdateHours(context.Background(), uuid.New(), []schedule.RawDayHours{
			{Weekday: 1, Open: "07:00", Close: "22:00"},
		})
		assert.ErrorIs(t, err, commands.ErrResourceNotFound)
	})
}
