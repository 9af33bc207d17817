package request

import (
	"venuebook/internal/domain/schedule"
)

type DayHoursRequest struct {
	Weekday int    `json:"weekday" binding:"min=0,max=6"`
	Open    string `json:"open" binding:"required_unless=Closed true,omitempty,hhmm"`
	Close   string `json:"close" binding:"required_unless=Closed true,omitempty,hhmm"`
	Closed  bool   `json:"closed"`
}

type UpdateResourceHoursRequest struct {
	Hours []DayHoursRequest `json:"hours" binding:"required,min=1,max=7,dive"`
}

func (r UpdateResourceHoursRequest) ToRawDayHours() []schedule.RawDayHours {
	raw := make([]schedule.RawDayHours, 0, len(r.Hours))
	for _, h := range r.Hours {
		raw = append(raw, schedule.RawDayHours{
			Weekday: h.Weekday,
			Open:    h.Open,
			Close:   h.Close,
			Closed:  h.Closed,
		})
	}
	return raw
}
