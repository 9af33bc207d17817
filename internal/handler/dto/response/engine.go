package response

import (
	"time"

	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type DayGridResponse struct {
	Weekday int      `json:"weekday"`
	Slots   []string `json:"slots"`
}

type ConflictResponse struct {
	Kind     string    `json:"kind"`
	SourceID uuid.UUID `json:"sourceId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

type AvailabilityResponse struct {
	Available bool               `json:"available"`
	Remaining int                `json:"remaining,omitempty"`
	Conflicts []ConflictResponse `json:"conflicts,omitempty"`
}

func FromDayGridView(v *queries.DayGridView) *DayGridResponse {
	return &DayGridResponse{Weekday: v.Weekday, Slots: v.Slots}
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	resp := &AvailabilityResponse{Available: v.Available, Remaining: v.Remaining}
	for _, c := range v.Conflicts {
		resp.Conflicts = append(resp.Conflicts, ConflictResponse{
			Kind:     c.Kind,
			SourceID: c.SourceID,
			Start:    c.Start,
			End:      c.End,
		})
	}
	return resp
}
