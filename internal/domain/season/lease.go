package season

import (
	"errors"
	"time"

	"venuebook/internal/domain/booking"
	"venuebook/internal/domain/schedule"

	"github.com/google/uuid"
)

var ErrInvalidLease = errors.New("invalid seasonal lease")

type LeaseStatus string

const (
	LeaseActive    LeaseStatus = "active"
	LeaseCancelled LeaseStatus = "cancelled"
)

// Lease is a recurring weekly occupation of a resource over a date range:
// every listed weekday between StartDate and EndDate, from StartTime to
// EndTime. Occurrences are expanded on demand, never materialized.
type Lease struct {
	ID             uuid.UUID
	ResourceID     uuid.UUID
	OrganizationID uuid.UUID
	StartDate      time.Time
	EndDate        time.Time
	Weekdays       WeekdaySet
	StartTime      schedule.TimeOfDay
	EndTime        schedule.TimeOfDay
	Status         LeaseStatus
}

func (l Lease) IsActive() bool {
	return l.Status == LeaseActive
}

// Occurrences expands the lease into concrete intervals that fall within
// [from,to). Expansion is pure; the overlap test downstream stays the single
// source of truth for conflicts.
func (l Lease) Occurrences(from, to time.Time, loc *time.Location) []booking.TimeSlot {
	return ExpandWeekly(l.StartDate, l.EndDate, l.Weekdays, l.StartTime, l.EndTime, from, to, loc)
}

// WeekdaySet is a bitmask over time.Weekday.
type WeekdaySet uint8

func NewWeekdaySet(days ...time.Weekday) WeekdaySet {
	var s WeekdaySet
	for _, d := range days {
		s |= 1 << uint(d)
	}
	return s
}

func WeekdaySetFromInts(days []int) (WeekdaySet, error) {
	var s WeekdaySet
	for _, d := range days {
		if d < 0 || d > 6 {
			return 0, ErrInvalidLease
		}
		s |= 1 << uint(d)
	}
	return s, nil
}

func (s WeekdaySet) Contains(d time.Weekday) bool {
	return s&(1<<uint(d)) != 0
}

func (s WeekdaySet) Days() []time.Weekday {
	var days []time.Weekday
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Contains(d) {
			days = append(days, d)
		}
	}
	return days
}

// ExpandWeekly walks the calendar days of [startDate,endDate] in loc and
// emits one interval per day whose weekday is in the set, clipped to days
// intersecting [from,to). startTime/endTime are wall-clock bounds applied to
// each matching day.
func ExpandWeekly(
	startDate, endDate time.Time,
	weekdays WeekdaySet,
	startTime, endTime schedule.TimeOfDay,
	from, to time.Time,
	loc *time.Location,
) []booking.TimeSlot {
	if !startTime.Before(endTime) {
		return nil
	}

	first := dayStart(startDate, loc)
	if f := dayStart(from, loc); f.After(first) {
		first = f
	}
	last := dayStart(endDate, loc)

	var out []booking.TimeSlot
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		if day.After(to) {
			break
		}
		if !weekdays.Contains(day.Weekday()) {
			continue
		}
		start := day.Add(time.Duration(startTime.Minutes()) * time.Minute)
		end := day.Add(time.Duration(endTime.Minutes()) * time.Minute)
		if !end.After(from) || !start.Before(to) {
			continue
		}
		slot, err := booking.NewTimeSlot(start, end)
		if err != nil {
			continue
		}
		out = append(out, slot)
	}
	return out
}

func dayStart(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
