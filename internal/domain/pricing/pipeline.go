package pricing

import (
	"fmt"
	"time"

	"venuebook/internal/domain/booking"
	"venuebook/internal/domain/resource"

	"github.com/google/uuid"
)

// Input carries one booking attempt plus every pricing record that may
// apply. The calculator itself reads nothing from storage and nothing from
// the wall clock; Now is supplied, so identical inputs always produce
// identical totals.
type Input struct {
	Config     Config
	Mode       resource.BookingMode
	ResourceID uuid.UUID
	CategoryID *uuid.UUID

	Slot      booking.TimeSlot
	Quantity  int
	Attendees int

	UserID uuid.UUID
	OrgID  *uuid.UUID

	Groups   []GroupAssignment
	Weekday  []WeekdayPricing
	Holidays []Holiday
	Services []Service
	// SelectedServiceIDs are the optional services the caller opted into.
	SelectedServiceIDs []uuid.UUID

	// Code is the supplied discount code record, nil when none was given.
	Code        *Code
	CodeContext CodeContext

	Now time.Time
}

// Calculator runs the ordered pricing pipeline. The stage order is a
// contract: reordering changes legally-owed amounts. Percentage and
// multiplier stages compound on the then-current running total.
type Calculator struct {
	loc *time.Location
}

func NewCalculator(loc *time.Location) *Calculator {
	if loc == nil {
		loc = time.UTC
	}
	return &Calculator{loc: loc}
}

// Calculate prices one booking attempt:
//
//	base -> price group -> weekday surcharge -> holiday surcharge ->
//	peak multiplier -> discount code -> services -> tax
//
// The running total clamps at zero after discounts, before the additive
// service and tax stages.
func (c *Calculator) Calculate(in Input) (*Breakdown, error) {
	bd := &Breakdown{Currency: in.Config.Currency, TaxIncluded: in.Config.TaxIncluded}

	running, err := c.baseAmount(in)
	if err != nil {
		return nil, err
	}
	bd.SubtotalCents = running

	running = c.applyGroup(bd, in, running)
	running = c.applyWeekday(bd, in, running)
	running = c.applyHolidays(bd, in, running)
	running = c.applyPeak(bd, in, running)

	running, err = c.applyCode(bd, in, running)
	if err != nil {
		return nil, err
	}
	running = clampNonNegative(running)

	// Stage 7: additional services and fixed fees.
	servicesCents, serviceLines := servicesTotal(in.Services, in.SelectedServiceIDs)
	if in.Config.CleaningFeeCents > 0 {
		serviceLines = append(serviceLines, Line{Label: "cleaning fee", AmountCents: in.Config.CleaningFeeCents})
		servicesCents += in.Config.CleaningFeeCents
	}
	if in.Config.ServiceFeeCents > 0 {
		serviceLines = append(serviceLines, Line{Label: "service fee", AmountCents: in.Config.ServiceFeeCents})
		servicesCents += in.Config.ServiceFeeCents
	}
	bd.Services = serviceLines
	bd.ServicesCents = servicesCents
	bd.DepositCents = in.Config.DepositCents
	running += servicesCents

	running = c.applyTax(bd, in, running)

	bd.TotalCents = running
	return bd, nil
}

// Stage 1: base amount by price type.
func (c *Calculator) baseAmount(in Input) (int64, error) {
	cfg := in.Config
	minutes := in.Slot.Minutes()
	hours := float64(minutes) / 60.0

	switch cfg.Type {
	case PerHour:
		return cfg.BasePriceCents + roundCents(hours*float64(cfg.PricePerHourCents)), nil

	case PerDay:
		return cfg.BasePriceCents + dayBandedAmount(cfg, minutes), nil

	case SlotBased:
		opt, ok := cfg.slotOptionFor(minutes)
		if !ok {
			return 0, fmt.Errorf("%w: %d minutes", ErrInvalidSlotOption, minutes)
		}
		return cfg.BasePriceCents + opt.PriceCents, nil

	case PerPerson:
		if cfg.MinPeople > 0 && in.Attendees < cfg.MinPeople {
			return 0, fmt.Errorf("%w: %d is below minimum %d", ErrAttendeesOutOfRange, in.Attendees, cfg.MinPeople)
		}
		if cfg.MaxPeople > 0 && in.Attendees > cfg.MaxPeople {
			return 0, fmt.Errorf("%w: %d exceeds maximum %d", ErrAttendeesOutOfRange, in.Attendees, cfg.MaxPeople)
		}
		amount := cfg.BasePriceCents + int64(in.Attendees)*cfg.PricePerPersonCents
		amount += roundCents(hours * float64(cfg.PricePerPersonHourCents))
		return amount, nil

	case Tickets:
		return int64(in.Quantity) * cfg.BasePriceCents, nil

	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPriceType, cfg.Type)
	}
}

// Day pricing is banded: a half-day rate covers anything up to 6 hours when
// configured, otherwise whole started days bill at the day rate.
func dayBandedAmount(cfg Config, minutes int) int64 {
	const halfDayMin = 6 * 60
	if cfg.PricePerHalfDayCents > 0 && minutes <= halfDayMin {
		return cfg.PricePerHalfDayCents
	}
	days := int64((minutes + 24*60 - 1) / (24 * 60))
	if days < 1 {
		days = 1
	}
	return days * cfg.PricePerDayCents
}

// Stage 2: the single applicable price group.
func (c *Calculator) applyGroup(bd *Breakdown, in Input, running int64) int64 {
	if !in.Config.EnablePriceGroups {
		return running
	}
	group := ResolveGroup(in.Groups)
	if group == nil {
		return running
	}
	off := group.discountCents(running)
	if off <= 0 {
		return running
	}
	id := group.ID
	bd.AppliedGroupID = &id
	bd.Discounts = append(bd.Discounts, Line{Label: group.Name, AmountCents: off})
	return clampNonNegative(running - off)
}

// Stage 3: weekday surcharges. The config-level weekend multiplier fires on
// Saturday and Sunday; explicit WeekdayPricing records apply afterwards,
// each compounding on the total the previous one produced.
func (c *Calculator) applyWeekday(bd *Breakdown, in Input, running int64) int64 {
	if !in.Config.EnableSurcharges {
		return running
	}

	local := in.Slot.Start().In(c.loc)
	weekday := local.Weekday()
	startMin := local.Hour()*60 + local.Minute()

	if multiplierActive(in.Config.WeekendMultiplier) && (weekday == time.Saturday || weekday == time.Sunday) {
		add := scaled(running, in.Config.WeekendMultiplier) - running
		if add != 0 {
			bd.Surcharges = append(bd.Surcharges, Line{Label: "weekend", AmountCents: add})
			running += add
		}
	}

	for _, wp := range in.Weekday {
		if !wp.AppliesTo(in.ResourceID) || !wp.Matches(weekday, startMin) {
			continue
		}
		add := surchargeCents(wp.Surcharge, wp.Value, running)
		if add == 0 {
			continue
		}
		bd.Surcharges = append(bd.Surcharges, Line{Label: fmt.Sprintf("weekday %s", weekday), AmountCents: add})
		running += add
	}
	return running
}

// Stage 4: holiday surcharges, matched on the booking's local calendar
// date. A matching holiday without its own surcharge falls back to the
// config's holiday multiplier.
func (c *Calculator) applyHolidays(bd *Breakdown, in Input, running int64) int64 {
	date := in.Slot.Start().In(c.loc)
	for _, h := range in.Holidays {
		if !h.MatchesDate(date) || !h.AppliesTo(in.ResourceID, in.CategoryID) {
			continue
		}
		var add int64
		if h.Surcharge != "" {
			add = surchargeCents(h.Surcharge, h.Value, running)
		} else if multiplierActive(in.Config.HolidayMultiplier) {
			add = scaled(running, in.Config.HolidayMultiplier) - running
		}
		if add == 0 {
			continue
		}
		bd.Surcharges = append(bd.Surcharges, Line{Label: h.Name, AmountCents: add})
		running += add
	}
	return running
}

// Stage 5: peak-hour multiplier when the start time falls in the window.
func (c *Calculator) applyPeak(bd *Breakdown, in Input, running int64) int64 {
	cfg := in.Config
	if !multiplierActive(cfg.PeakMultiplier) || cfg.PeakStartMin >= cfg.PeakEndMin {
		return running
	}
	local := in.Slot.Start().In(c.loc)
	startMin := local.Hour()*60 + local.Minute()
	if startMin < cfg.PeakStartMin || startMin >= cfg.PeakEndMin {
		return running
	}
	add := scaled(running, cfg.PeakMultiplier) - running
	if add != 0 {
		bd.Surcharges = append(bd.Surcharges, Line{Label: "peak hours", AmountCents: add})
		running += add
	}
	return running
}

// Stage 6: discount code. A supplied code that fails validation is an
// error, never a silent skip.
func (c *Calculator) applyCode(bd *Breakdown, in Input, running int64) (int64, error) {
	if in.Code == nil {
		return running, nil
	}
	if !in.Config.EnableDiscountCodes {
		return running, &CodeError{Code: in.Code.Code, Reason: ReasonRestricted}
	}

	ctx := in.CodeContext
	ctx.Now = in.Now
	ctx.UserID = in.UserID
	ctx.OrgID = in.OrgID
	ctx.ResourceID = in.ResourceID
	ctx.CategoryID = in.CategoryID
	ctx.Mode = in.Mode
	ctx.RunningCents = running
	ctx.DurationMin = in.Slot.Minutes()
	if ctx.GroupID == nil {
		ctx.GroupID = bd.AppliedGroupID
	}

	if err := in.Code.Validate(ctx); err != nil {
		return 0, err
	}

	off := in.Code.discountCents(running, in.Config.PricePerHourCents)
	if off > running {
		off = running
	}
	if off > 0 {
		bd.Discounts = append(bd.Discounts, Line{Label: in.Code.Code, AmountCents: off})
		running -= off
	}
	return running, nil
}

// Stage 8: tax. Inclusive tax is extracted for reporting only; exclusive
// tax is added to the total.
func (c *Calculator) applyTax(bd *Breakdown, in Input, running int64) int64 {
	rate := in.Config.TaxRate
	if rate <= 0 {
		return running
	}
	if in.Config.TaxIncluded {
		bd.TaxCents = roundCents(float64(running) * rate / (100.0 + rate))
		return running
	}
	bd.TaxCents = percentOf(running, rate)
	return running + bd.TaxCents
}
