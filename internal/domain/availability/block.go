package availability

import (
	"time"

	"venuebook/internal/domain/booking"
	"venuebook/internal/domain/schedule"
	"venuebook/internal/domain/season"

	"github.com/google/uuid"
)

type BlockStatus string

const (
	BlockActive    BlockStatus = "active"
	BlockCancelled BlockStatus = "cancelled"
)

type BlockVisibility string

const (
	BlockPublic  BlockVisibility = "public"
	BlockPrivate BlockVisibility = "private"
)

// Block is owner-imposed unavailability with a lifecycle independent from
// bookings. A recurring block repeats weekly on its weekday set between
// Start and End dates.
type Block struct {
	ID         uuid.UUID
	ResourceID uuid.UUID
	Start      time.Time
	End        time.Time
	AllDay     bool
	Recurring  bool
	Weekdays   season.WeekdaySet
	Status     BlockStatus
	Visibility BlockVisibility
}

func (b Block) IsActive() bool {
	return b.Status == BlockActive
}

// Occurrences expands the block into the concrete intervals it covers within
// [from,to). Cancelled blocks cover nothing.
func (b Block) Occurrences(from, to time.Time, loc *time.Location) []booking.TimeSlot {
	if !b.IsActive() {
		return nil
	}

	if b.Recurring {
		startMin, endMin := b.windowMinutes(loc)
		startTod, err := schedule.NewTimeOfDay(startMin)
		if err != nil {
			return nil
		}
		endTod, err := schedule.NewTimeOfDay(endMin)
		if err != nil {
			return nil
		}
		return season.ExpandWeekly(b.Start, b.End, b.Weekdays, startTod, endTod, from, to, loc)
	}

	start, end := b.Start, b.End
	if b.AllDay {
		start = dayFloor(start, loc)
		end = dayFloor(end, loc).AddDate(0, 0, 1)
	}
	slot, err := booking.NewTimeSlot(start, end)
	if err != nil {
		return nil
	}
	if !slot.End().After(from) || !slot.Start().Before(to) {
		return nil
	}
	return []booking.TimeSlot{slot}
}

func (b Block) windowMinutes(loc *time.Location) (int, int) {
	if b.AllDay {
		return 0, 24*60 - 1
	}
	s := b.Start.In(loc)
	e := b.End.In(loc)
	return s.Hour()*60 + s.Minute(), e.Hour()*60 + e.Minute()
}

func dayFloor(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
