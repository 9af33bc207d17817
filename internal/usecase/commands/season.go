package commands

import (
	"context"

	"venuebook/internal/domain/schedule"
	"venuebook/internal/domain/season"
	"venuebook/internal/pkg/errs"
	"venuebook/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrNoApplications = errs.New("no applications to allocate")

type SeasonCommands interface {
	// Allocate ranks every competing application group for the resource,
	// persists the ranking, and opens a lease per approved application.
	Allocate(ctx context.Context, seasonID, resourceID uuid.UUID) ([]season.RankedApplication, error)
}

type seasonCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewSeasonCommands(uow shared.UnitOfWork) SeasonCommands {
	return &seasonCommandsImpl{uow: uow}
}

func (u *seasonCommandsImpl) Allocate(ctx context.Context, seasonID, resourceID uuid.UUID) ([]season.RankedApplication, error) {
	var allRanked []season.RankedApplication

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reads := tx.Reads()

		res, err := reads.ResourceByID(ctx, resourceID)
		if err != nil {
			return shared.MarkNotFound(err, ErrResourceNotFound)
		}
		rules, err := reads.SeasonRules(ctx, seasonID)
		if err != nil {
			return err
		}
		apps, err := reads.SeasonApplications(ctx, seasonID, resourceID)
		if err != nil {
			return err
		}
		if len(apps) == 0 {
			return ErrNoApplications
		}

		// Interval-exclusive resources admit one lease per window;
		// ticket resources admit up to capacity.
		capacity := 1
		if !res.Mode().IntervalBased() && res.Capacity() > 0 {
			capacity = res.Capacity()
		}

		for _, group := range season.CompetingGroups(apps) {
			ranked := season.Rank(rules, group, capacity)
			allRanked = append(allRanked, ranked...)
		}

		if err := tx.Seasons().SaveRanking(ctx, allRanked); err != nil {
			return err
		}
		for _, r := range allRanked {
			if r.Status != season.ApplicationApproved {
				continue
			}
			if err := tx.Seasons().CreateLease(ctx, leaseFromApplication(r.Application)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return allRanked, nil
}

func leaseFromApplication(app season.Application) season.Lease {
	start, _ := schedule.NewTimeOfDay(app.StartMin)
	end, _ := schedule.NewTimeOfDay(app.EndMin)
	return season.Lease{
		ID:             uuid.New(),
		ResourceID:     app.ResourceID,
		OrganizationID: app.OrganizationID,
		StartDate:      app.StartDate,
		EndDate:        app.EndDate,
		Weekdays:       app.Weekdays,
		StartTime:      start,
		EndTime:        end,
		Status:         season.LeaseActive,
	}
}
