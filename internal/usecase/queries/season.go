package queries

import (
	"context"

	"venuebook/internal/domain/season"
	"venuebook/internal/usecase/shared"

	"github.com/google/uuid"
)

type SeasonQueries interface {
	// RankingPreview scores and ranks a season's applications without
	// persisting anything, so tenants can inspect the outcome before
	// running the allocation.
	RankingPreview(ctx context.Context, seasonID, resourceID uuid.UUID) ([]RankedApplicationView, error)
}

type seasonQueriesImpl struct {
	reads shared.CommandReads
}

func NewSeasonQueries(reads shared.CommandReads) SeasonQueries {
	return &seasonQueriesImpl{reads: reads}
}

func (q *seasonQueriesImpl) RankingPreview(ctx context.Context, seasonID, resourceID uuid.UUID) ([]RankedApplicationView, error) {
	res, err := q.reads.ResourceByID(ctx, resourceID)
	if err != nil {
		return nil, shared.MarkNotFound(err, ErrResourceNotFound)
	}
	rules, err := q.reads.SeasonRules(ctx, seasonID)
	if err != nil {
		return nil, err
	}
	apps, err := q.reads.SeasonApplications(ctx, seasonID, resourceID)
	if err != nil {
		return nil, err
	}

	capacity := 1
	if !res.Mode().IntervalBased() && res.Capacity() > 0 {
		capacity = res.Capacity()
	}

	var views []RankedApplicationView
	for _, group := range season.CompetingGroups(apps) {
		for _, r := range season.Rank(rules, group, capacity) {
			views = append(views, RankedApplicationView{
				ApplicationID:  r.Application.ID,
				OrganizationID: r.Application.OrganizationID,
				Score:          r.Score,
				Rank:           r.Rank,
				Status:         string(r.Status),
				SubmittedAt:    r.Application.SubmittedAt,
			})
		}
	}
	return views, nil
}
