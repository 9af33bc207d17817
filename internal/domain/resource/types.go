package resource

// BookingMode determines how candidate intervals are validated and how
// conflicts are detected for a resource.
type BookingMode string

const (
	// ModeSlots accepts only grid-aligned windows from the day's slot grid.
	ModeSlots BookingMode = "SLOTS"
	// ModeAllDay accepts day-granular bookings.
	ModeAllDay BookingMode = "ALL_DAY"
	// ModeDuration accepts free-form windows bounded by min/max duration.
	ModeDuration BookingMode = "DURATION"
	// ModeTickets books quantity against capacity; not time-exclusive.
	ModeTickets BookingMode = "TICKETS"
)

func (m BookingMode) String() string {
	return string(m)
}

func (m BookingMode) IsValid() bool {
	switch m {
	case ModeSlots, ModeAllDay, ModeDuration, ModeTickets:
		return true
	default:
		return false
	}
}

// IntervalBased reports whether conflicts are detected by interval overlap
// rather than by capacity counting.
func (m BookingMode) IntervalBased() bool {
	return m != ModeTickets
}
