package shared

import (
	"time"

	"venuebook/internal/domain/booking"
	"venuebook/internal/domain/resource"
)

// NormalizeSlot widens ALL_DAY candidates to whole local days; other modes
// keep the caller's exact window.
func NormalizeSlot(mode resource.BookingMode, start, end time.Time, loc *time.Location) (booking.TimeSlot, error) {
	if mode == resource.ModeAllDay {
		sy, sm, sd := start.In(loc).Date()
		start = time.Date(sy, sm, sd, 0, 0, 0, 0, loc)
		ey, em, ed := end.In(loc).Date()
		dayEnd := time.Date(ey, em, ed, 0, 0, 0, 0, loc)
		if dayEnd.Before(end) || dayEnd.Equal(start) {
			dayEnd = dayEnd.AddDate(0, 0, 1)
		}
		end = dayEnd
	}
	return booking.NewTimeSlot(start, end)
}

// FetchWindow covers both the candidate interval and its whole local date,
// so ticket-capacity sums see every booking on the day.
func FetchWindow(slot booking.TimeSlot, loc *time.Location) (time.Time, time.Time) {
	from := slot.Date(loc)
	to := from.AddDate(0, 0, 1)
	if slot.Start().Before(from) {
		from = slot.Start()
	}
	if slot.End().After(to) {
		to = slot.End()
	}
	return from, to
}
