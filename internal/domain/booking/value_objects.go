package booking

import (
	"errors"
	"fmt"
	"time"
)

// TimeSlot is a half-open interval [start,end). Two slots that share only a
// boundary instant do not overlap.
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !start.Before(end) {
		return TimeSlot{}, errors.New("start time must be before end time")
	}
	return TimeSlot{start: start, end: end}, nil
}

func (ts TimeSlot) Start() time.Time { return ts.start }
func (ts TimeSlot) End() time.Time   { return ts.end }

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

func (ts TimeSlot) Minutes() int {
	return int(ts.Duration() / time.Minute)
}

func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.end) && ts.end.After(other.start)
}

// Date returns the calendar date of the slot's start in the given zone.
func (ts TimeSlot) Date(loc *time.Location) time.Time {
	y, m, d := ts.start.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func (ts TimeSlot) Weekday(loc *time.Location) time.Weekday {
	return ts.start.In(loc).Weekday()
}

func (ts TimeSlot) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", ts.start.Format(time.RFC3339), ts.end.Format(time.RFC3339))
}

// Metadata is a bounded key-value bag attached to a booking. Free-form
// nesting is deliberately not representable.
type Metadata map[string]string

const (
	maxMetadataKeys     = 20
	maxMetadataValueLen = 500
)

var ErrInvalidMetadata = errors.New("invalid booking metadata")

func NewMetadata(kv map[string]string) (Metadata, error) {
	if len(kv) > maxMetadataKeys {
		return nil, fmt.Errorf("%w: more than %d keys", ErrInvalidMetadata, maxMetadataKeys)
	}
	for k, v := range kv {
		if k == "" {
			return nil, fmt.Errorf("%w: empty key", ErrInvalidMetadata)
		}
		if len(v) > maxMetadataValueLen {
			return nil, fmt.Errorf("%w: value for %q too long", ErrInvalidMetadata, k)
		}
	}
	if kv == nil {
		return Metadata{}, nil
	}
	return Metadata(kv), nil
}
