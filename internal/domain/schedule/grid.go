package schedule

import (
	"fmt"
	"time"
)

// DayGrid returns the valid slot start times for one weekday, stepping by
// slotMinutes from the day's own open time. A slot is included only when it
// fits entirely before close. Closed days yield an empty grid.
//
// The grid for a weekday depends on that weekday's hours alone; other days
// of the week never widen or narrow it.
func DayGrid(week WeekHours, slotMinutes int, weekday time.Weekday) ([]TimeOfDay, error) {
	if slotMinutes <= 0 {
		return nil, fmt.Errorf("%w: slot duration must be positive, got %d", ErrInvalidSchedule, slotMinutes)
	}

	day := week.For(weekday)
	if day.Closed {
		return []TimeOfDay{}, nil
	}

	var slots []TimeOfDay
	for start := day.Open; start.AddMinutes(slotMinutes).minutes <= day.Close.minutes; start = start.AddMinutes(slotMinutes) {
		slots = append(slots, start)
	}
	if slots == nil {
		slots = []TimeOfDay{}
	}
	return slots, nil
}

// AlignsToGrid reports whether a [start,end) window lands on slot
// boundaries of the weekday's grid: both edges inside the open window and
// offset from open by a whole number of slots.
func AlignsToGrid(week WeekHours, slotMinutes int, weekday time.Weekday, start, end TimeOfDay) bool {
	if slotMinutes <= 0 || !start.Before(end) {
		return false
	}
	day := week.For(weekday)
	if day.Closed {
		return false
	}
	if start.minutes < day.Open.minutes || end.minutes > day.Close.minutes {
		return false
	}
	return (start.minutes-day.Open.minutes)%slotMinutes == 0 &&
		(end.minutes-day.Open.minutes)%slotMinutes == 0
}
