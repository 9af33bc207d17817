//go:build unit || e2e

package builder

import (
	"time"

	dombooking "venuebook/internal/domain/booking"
	"venuebook/internal/domain/pricing"
	"venuebook/internal/domain/resource"

	"github.com/google/uuid"
)

type PricingConfigBuilder struct {
	ID         uuid.UUID
	ResourceID uuid.UUID

	Type                pricing.PriceType
	BasePriceCents      int64
	PricePerHourCents   int64
	PricePerDayCents    int64
	PricePerPersonCents int64
	SlotOptions         []pricing.SlotOption

	MinPeople int
	MaxPeople int

	CleaningFeeCents int64
	ServiceFeeCents  int64
	DepositCents     int64

	WeekendMultiplier float64
	PeakMultiplier    float64
	HolidayMultiplier float64
	PeakStartMin      int
	PeakEndMin        int

	TaxRate     float64
	TaxIncluded bool

	EnableDiscountCodes bool
	EnableSurcharges    bool
	EnablePriceGroups   bool

	Currency string
}

// NewPricingConfigBuilder defaults to a bare hourly rate with every
// optional stage switched off.
func NewPricingConfigBuilder() *PricingConfigBuilder {
	return &PricingConfigBuilder{
		ID:                uuid.New(),
		ResourceID:        uuid.New(),
		Type:              pricing.PerHour,
		PricePerHourCents: 100000,
		Currency:          "NOK",
	}
}

func (p *PricingConfigBuilder) With(mutate func(*PricingConfigBuilder)) *PricingConfigBuilder {
	mutate(p)
	return p
}

func (p *PricingConfigBuilder) BuildConfig() pricing.Config {
	return pricing.Config{
		ID:                  p.ID,
		ResourceID:          p.ResourceID,
		Type:                p.Type,
		PricePerPersonCents: p.PricePerPersonCents,
		BasePriceCents:      p.BasePriceCents,
		PricePerHourCents:   p.PricePerHourCents,
		PricePerDayCents:    p.PricePerDayCents,
		SlotOptions:         p.SlotOptions,
		MinPeople:           p.MinPeople,
		MaxPeople:           p.MaxPeople,
		CleaningFeeCents:    p.CleaningFeeCents,
		ServiceFeeCents:     p.ServiceFeeCents,
		DepositCents:        p.DepositCents,
		WeekendMultiplier:   p.WeekendMultiplier,
		PeakMultiplier:      p.PeakMultiplier,
		HolidayMultiplier:   p.HolidayMultiplier,
		PeakStartMin:        p.PeakStartMin,
		PeakEndMin:          p.PeakEndMin,
		TaxRate:             p.TaxRate,
		TaxIncluded:         p.TaxIncluded,
		EnableDiscountCodes: p.EnableDiscountCodes,
		EnableSurcharges:    p.EnableSurcharges,
		EnablePriceGroups:   p.EnablePriceGroups,
		Currency:            p.Currency,
	}
}

// BuildInput wraps the config into a minimal calculator input for the
// given slot.
func (p *PricingConfigBuilder) BuildInput(start, end time.Time) (pricing.Input, error) {
	slot, err := dombooking.NewTimeSlot(start, end)
	if err != nil {
		return pricing.Input{}, err
	}
	return pricing.Input{
		Config:     p.BuildConfig(),
		Mode:       resource.ModeSlots,
		ResourceID: p.ResourceID,
		Slot:       slot,
		Quantity:   1,
		Attendees:  1,
		UserID:     uuid.New(),
		Now:        start.Add(-24 * time.Hour),
	}, nil
}

// Fluent builder methods
func (p *PricingConfigBuilder) WithResourceID(resourceID uuid.UUID) *PricingConfigBuilder {
	p.ResourceID = resourceID
	return p
}

func (p *PricingConfigBuilder) WithHourlyRate(cents int64) *PricingConfigBuilder {
	p.Type = pricing.PerHour
	p.PricePerHourCents = cents
	return p
}

func (p *PricingConfigBuilder) WithDailyRate(cents int64) *PricingConfigBuilder {
	p.Type = pricing.PerDay
	p.PricePerDayCents = cents
	return p
}

func (p *PricingConfigBuilder) WithPerPersonRate(cents int64) *PricingConfigBuilder {
	p.Type = pricing.PerPerson
	p.PricePerHourCents = 0
	p.PricePerPersonCents = cents
	return p
}

func (p *PricingConfigBuilder) WithSlotOptions(opts ...pricing.SlotOption) *PricingConfigBuilder {
	p.Type = pricing.SlotBased
	p.SlotOptions = opts
	return p
}

func (p *PricingConfigBuilder) WithPeopleRange(minPeople, maxPeople int) *PricingConfigBuilder {
	p.MinPeople = minPeople
	p.MaxPeople = maxPeople
	return p
}

func (p *PricingConfigBuilder) WithWeekendMultiplier(m float64) *PricingConfigBuilder {
	p.EnableSurcharges = true
	p.WeekendMultiplier = m
	return p
}

func (p *PricingConfigBuilder) WithHolidayMultiplier(m float64) *PricingConfigBuilder {
	p.EnableSurcharges = true
	p.HolidayMultiplier = m
	return p
}

func (p *PricingConfigBuilder) WithPeakWindow(startMin, endMin int, m float64) *PricingConfigBuilder {
	p.EnableSurcharges = true
	p.PeakStartMin = startMin
	p.PeakEndMin = endMin
	p.PeakMultiplier = m
	return p
}

func (p *PricingConfigBuilder) WithTax(rate float64, included bool) *PricingConfigBuilder {
	p.TaxRate = rate
	p.TaxIncluded = included
	return p
}

func (p *PricingConfigBuilder) WithDiscountCodes() *PricingConfigBuilder {
	p.EnableDiscountCodes = true
	return p
}

func (p *PricingConfigBuilder) WithPriceGroups() *PricingConfigBuilder {
	p.EnablePriceGroups = true
	return p
}
