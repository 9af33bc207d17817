//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"venuebook/internal/domain/season"
	"venuebook/internal/usecase/commands"
	"venuebook/tests/common/builder"
	"venuebook/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocate(t *testing.T) {
	seasonID := uuid.New()

	t.Run("ranks competitors and opens leases for the approved", func(t *testing.T) {
		u := fake.NewUnitOfWork()
		res := seedResource(t, u, builder.NewResourceBuilder())
		uc := commands.NewSeasonCommands(u)

		winner := builder.NewApplicationBuilder().
			WithSeasonID(seasonID).
			WithResourceID(res.ID()).
			WithCategory("youth").
			WithWindow(season.NewWeekdaySet(time.Monday), 17*60, 19*60).
			BuildDomain()
		loser := builder.NewApplicationBuilder().
			WithSeasonID(seasonID).
			WithResourceID(res.ID()).
			WithCategory("senior").
			WithWindow(season.NewWeekdaySet(time.Monday), 18*60, 20*60).
			BuildDomain()
		uncontested := builder.NewApplicationBuilder().
			WithSeasonID(seasonID).
			WithResourceID(res.ID()).
			WithCategory("senior").
			WithWindow(season.NewWeekdaySet(time.Friday), 18*60, 20*60).
			BuildDomain()

		u.TX.ReadsStub.Rules = []season.PriorityRule{
			{SeasonID: seasonID, Field: "category", Operator: season.OpEquals, Value: "youth", Weight: 10},
		}
		u.TX.ReadsStub.Applications = []season.Application{winner, loser, uncontested}

		ranked, err := uc.Allocate(context.Background(), seasonID, res.ID())
		require.NoError(t, err)
		require.Len(t, ranked, 3)

		byID := map[uuid.UUID]season.RankedApplication{}
		for _, r := range ranked {
			byID[r.Application.ID] = r
		}
		assert.Equal(t, season.ApplicationApproved, byID[winner.ID].Status)
		assert.Equal(t, season.ApplicationWaitlist, byID[loser.ID].Status)
		assert.Equal(t, season.ApplicationApproved, byID[uncontested.ID].Status)

		require.Len(t, u.TX.SeasonsRepo.Rankings, 1)
		require.Len(t, u.TX.SeasonsRepo.Leases, 2)
		for _, lease := range u.TX.SeasonsRepo.Leases {
			assert.Equal(t, season.LeaseActive, lease.Status)
			assert.Equal(t, res.ID(), lease.ResourceID)
		}
	})

	t.Run("ticket resources approve up to capacity per group", func(t *testing.T) {
		u := fake.NewUnitOfWork()
		res := seedResource(t, u, builder.NewResourceBuilder().AsTickets(2))
		uc := commands.NewSeasonCommands(u)

		apps := make([]season.Application, 3)
		for i := range apps {
			apps[i] = builder.NewApplicationBuilder().
				WithSeasonID(seasonID).
				WithResourceID(res.ID()).
				WithWindow(season.NewWeekdaySet(time.Monday), 17*60, 19*60).
				WithSubmittedAt(time.Date(2025, 11, 1, 9, i, 0, 0, time.UTC)).
				BuildDomain()
		}
		u.TX.ReadsStub.Applications = apps

		ranked, err := uc.Allocate(context.Background(), seasonID, res.ID())
		require.NoError(t, err)

		approved := 0
		for _, r := range ranked {
			if r.Status == season.ApplicationApproved {
				approved++
			}
		}
		assert.Equal(t, 2, approved)
		assert.Len(t, u.TX.SeasonsRepo.Leases, 2)
	})

	t.Run("no pending applications", func(t *testing.T) {
		u := fake.NewUnitOfWork()
		res := seedResource(t, u, builder.NewResourceBuilder())
		uc := commands.NewSeasonCommands(u)

		_, err := uc.Allocate(context.Background(), seasonID, res.ID())
		assert.ErrorIs(t, err, commands.ErrNoApplications)
	})

	t.Run("unknown resource", func(t *testing.T) {
		u := fake.NewUnitOfWork()
		uc := commands.NewSeasonCommands(u)

		_, err := uc.Allocate(context.Background(), seasonID, uuid.New())
		assert.ErrorIs(t, err, commands.ErrResourceNotFound)
	})
}
