package schedule

import (
	"fmt"
	"time"
)

// Applied when a weekday has no opening-hours entry.
var (
	defaultOpen  = TimeOfDay{minutes: 8 * 60}
	defaultClose = TimeOfDay{minutes: 18 * 60}
)

// DayHours is the bookable window for a single weekday.
type DayHours struct {
	Weekday time.Weekday
	Open    TimeOfDay
	Close   TimeOfDay
	Closed  bool
}

// WeekHours indexes opening hours by weekday. Days without an entry fall
// back to the 08:00-18:00 default; the zero value is a full default week.
type WeekHours struct {
	days [7]*DayHours
}

func NewWeekHours(entries []DayHours) (WeekHours, error) {
	var w WeekHours
	for i := range entries {
		e := entries[i]
		if e.Weekday < time.Sunday || e.Weekday > time.Saturday {
			return WeekHours{}, fmt.Errorf("%w: weekday %d out of range", ErrInvalidSchedule, e.Weekday)
		}
		if !e.Closed && !e.Open.Before(e.Close) {
			return WeekHours{}, fmt.Errorf("%w: open %s is not before close %s", ErrInvalidSchedule, e.Open, e.Close)
		}
		w.days[e.Weekday] = &e
	}
	return w, nil
}

// ParseWeekHours builds WeekHours from raw "HH:MM" strings as stored on a
// resource.
func ParseWeekHours(entries []RawDayHours) (WeekHours, error) {
	parsed := make([]DayHours, 0, len(entries))
	for _, e := range entries {
		day := DayHours{Weekday: time.Weekday(e.Weekday), Closed: e.Closed}
		if !e.Closed {
			open, err := ParseTimeOfDay(e.Open)
			if err != nil {
				return WeekHours{}, err
			}
			closeAt, err := ParseTimeOfDay(e.Close)
			if err != nil {
				return WeekHours{}, err
			}
			day.Open, day.Close = open, closeAt
		}
		parsed = append(parsed, day)
	}
	return NewWeekHours(parsed)
}

// RawDayHours mirrors the persisted opening-hours row.
type RawDayHours struct {
	Weekday int
	Open    string
	Close   string
	Closed  bool
}

// For returns the hours for one weekday, never consulting any other day.
func (w WeekHours) For(weekday time.Weekday) DayHours {
	if d := w.days[weekday]; d != nil {
		return *d
	}
	return DayHours{Weekday: weekday, Open: defaultOpen, Close: defaultClose}
}
