package schedule

import (
	"errors"
	"fmt"
)

var ErrInvalidSchedule = errors.New("invalid schedule")

const minutesPerDay = 24 * 60

// TimeOfDay is a wall-clock time expressed as minutes since midnight.
type TimeOfDay struct {
	minutes int
}

// ParseTimeOfDay parses a strict "HH:MM" string (e.g. "08:00", "17:30").
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != 5 || s[2] != ':' {
		return TimeOfDay{}, fmt.Errorf("%w: malformed time %q", ErrInvalidSchedule, s)
	}
	h, ok1 := twoDigits(s[0], s[1])
	m, ok2 := twoDigits(s[3], s[4])
	if !ok1 || !ok2 || h > 23 || m > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: malformed time %q", ErrInvalidSchedule, s)
	}
	return TimeOfDay{minutes: h*60 + m}, nil
}

func NewTimeOfDay(minutes int) (TimeOfDay, error) {
	if minutes < 0 || minutes >= minutesPerDay {
		return TimeOfDay{}, fmt.Errorf("%w: minutes out of range", ErrInvalidSchedule)
	}
	return TimeOfDay{minutes: minutes}, nil
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}

func (t TimeOfDay) Minutes() int { return t.minutes }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

func (t TimeOfDay) Before(other TimeOfDay) bool { return t.minutes < other.minutes }

func (t TimeOfDay) AddMinutes(m int) TimeOfDay {
	return TimeOfDay{minutes: t.minutes + m}
}
