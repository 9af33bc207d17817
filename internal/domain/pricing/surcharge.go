package pricing

import (
	"time"

	"github.com/google/uuid"
)

type SurchargeType string

const (
	SurchargePercent    SurchargeType = "percent"
	SurchargeFixed      SurchargeType = "fixed"
	SurchargeMultiplier SurchargeType = "multiplier"
)

// surchargeCents converts a surcharge to the amount it adds on top of the
// then-current running total. Percentage and multiplier surcharges compound:
// they read the running total, not the original base.
func surchargeCents(typ SurchargeType, value float64, running int64) int64 {
	switch typ {
	case SurchargePercent:
		return percentOf(running, value)
	case SurchargeFixed:
		return roundCents(value)
	case SurchargeMultiplier:
		return scaled(running, value) - running
	default:
		return 0
	}
}

// Holiday is a dated surcharge, either a fixed calendar date or a yearly
// recurring "MM-DD".
type Holiday struct {
	ID   uuid.UUID
	Name string
	// Date is set for fixed holidays; Recurring ("MM-DD") for yearly ones.
	Date      *time.Time
	Recurring string
	Surcharge SurchargeType
	Value     float64
	// Empty restriction lists apply everywhere.
	CategoryIDs []uuid.UUID
	ResourceIDs []uuid.UUID
}

// MatchesDate tests the booking's local calendar date; recurring holidays
// ignore the year.
func (h Holiday) MatchesDate(date time.Time) bool {
	if h.Date != nil {
		hy, hm, hd := h.Date.Date()
		y, m, d := date.Date()
		return hy == y && hm == m && hd == d
	}
	return h.Recurring != "" && h.Recurring == date.Format("01-02")
}

func (h Holiday) AppliesTo(resourceID uuid.UUID, categoryID *uuid.UUID) bool {
	if len(h.ResourceIDs) > 0 && !containsID(h.ResourceIDs, resourceID) {
		return false
	}
	if len(h.CategoryIDs) > 0 {
		if categoryID == nil || !containsID(h.CategoryIDs, *categoryID) {
			return false
		}
	}
	return true
}

// WeekdayPricing is a recurring weekday surcharge, optionally scoped to a
// time window and a resource list.
type WeekdayPricing struct {
	ID          uuid.UUID
	Weekday     time.Weekday
	StartMin    int
	EndMin      int
	Surcharge   SurchargeType
	Value       float64
	ResourceIDs []uuid.UUID
}

// Matches tests the booking's local weekday and, when the record is
// window-scoped, whether the start time falls inside [StartMin,EndMin).
func (w WeekdayPricing) Matches(weekday time.Weekday, startMin int) bool {
	if w.Weekday != weekday {
		return false
	}
	if w.StartMin == 0 && w.EndMin == 0 {
		return true
	}
	return startMin >= w.StartMin && startMin < w.EndMin
}

func (w WeekdayPricing) AppliesTo(resourceID uuid.UUID) bool {
	return len(w.ResourceIDs) == 0 || containsID(w.ResourceIDs, resourceID)
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
