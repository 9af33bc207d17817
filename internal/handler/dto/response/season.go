package response

import (
	"time"

	"venuebook/internal/domain/season"
	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type RankedApplicationResponse struct {
	ApplicationID  uuid.UUID `json:"applicationId"`
	OrganizationID uuid.UUID `json:"organizationId"`
	Score          int       `json:"score"`
	Rank           int       `json:"rank"`
	Status         string    `json:"status"`
	SubmittedAt    time.Time `json:"submittedAt"`
}

func FromRankedApplications(ranked []season.RankedApplication) []RankedApplicationResponse {
	result := make([]RankedApplicationResponse, len(ranked))
	for i, r := range ranked {
		result[i] = RankedApplicationResponse{
			ApplicationID:  r.Application.ID,
			OrganizationID: r.Application.OrganizationID,
			Score:          r.Score,
			Rank:           r.Rank,
			Status:         string(r.Status),
			SubmittedAt:    r.Application.SubmittedAt,
		}
	}
	return result
}

func FromRankedApplicationViews(views []queries.RankedApplicationView) []RankedApplicationResponse {
	result := make([]RankedApplicationResponse, len(views))
	for i, v := range views {
		result[i] = RankedApplicationResponse{
			ApplicationID:  v.ApplicationID,
			OrganizationID: v.OrganizationID,
			Score:          v.Score,
			Rank:           v.Rank,
			Status:         v.Status,
			SubmittedAt:    v.SubmittedAt,
		}
	}
	return result
}
