package pricing

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidSlotOption    = errors.New("no slot option for requested duration")
	ErrAttendeesOutOfRange  = errors.New("attendee count out of range")
	ErrUnknownPriceType     = errors.New("unknown price type")
	ErrMissingPricingConfig = errors.New("missing pricing config")
)

type PriceType string

const (
	PerHour   PriceType = "per_hour"
	PerDay    PriceType = "per_day"
	SlotBased PriceType = "slots"
	PerPerson PriceType = "per_person"
	Tickets   PriceType = "tickets"
)

func (t PriceType) IsValid() bool {
	switch t {
	case PerHour, PerDay, SlotBased, PerPerson, Tickets:
		return true
	default:
		return false
	}
}

// SlotOption prices one exact bookable duration for slot-based resources.
type SlotOption struct {
	DurationMin int
	PriceCents  int64
}

// Config is the pricing configuration of one resource (optionally scoped to
// a pricing group).
type Config struct {
	ID         uuid.UUID
	ResourceID uuid.UUID
	GroupID    *uuid.UUID

	Type           PriceType
	BasePriceCents int64

	PricePerHourCents       int64
	PricePerDayCents        int64
	PricePerHalfDayCents    int64
	PricePerPersonCents     int64
	PricePerPersonHourCents int64
	SlotOptions             []SlotOption

	MinPeople int
	MaxPeople int

	DepositCents     int64
	CleaningFeeCents int64
	ServiceFeeCents  int64

	// Multipliers of 0 or 1 are inert.
	WeekendMultiplier float64
	PeakMultiplier    float64
	HolidayMultiplier float64
	// Peak window as minutes since midnight, [PeakStartMin,PeakEndMin).
	PeakStartMin int
	PeakEndMin   int

	TaxRate     float64
	TaxIncluded bool

	EnableDiscountCodes bool
	EnableSurcharges    bool
	EnablePriceGroups   bool

	Currency string
}

// slotOptionFor finds the exact-duration match; slot pricing never
// interpolates between options.
func (c Config) slotOptionFor(durationMin int) (SlotOption, bool) {
	for _, opt := range c.SlotOptions {
		if opt.DurationMin == durationMin {
			return opt, true
		}
	}
	return SlotOption{}, false
}

func multiplierActive(m float64) bool {
	return m > 0 && m != 1
}
