package shared

import (
	"context"
	"time"

	"venuebook/internal/domain/booking"
	"venuebook/internal/domain/pricing"
	"venuebook/internal/domain/resource"
	"venuebook/internal/infra"
	"venuebook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrPricingNotConfigured = errs.New("pricing not configured for resource")
	ErrDiscountCodeNotFound = errs.New("discount code not found")
)

// PricingParty identifies who is being priced and what they asked for on
// top of the bare interval.
type PricingParty struct {
	UserID     uuid.UUID
	OrgID      *uuid.UUID
	Quantity   int
	Attendees  int
	Code       *string
	ServiceIDs []uuid.UUID
}

// AssemblePricingInput gathers every pricing record that may apply to one
// booking attempt. Commands call it inside the committing transaction;
// queries call it for advisory quotes.
func AssemblePricingInput(
	ctx context.Context,
	reads CommandReads,
	res *resource.Resource,
	slot booking.TimeSlot,
	party PricingParty,
	now time.Time,
	defaultCurrency string,
) (pricing.Input, *pricing.Code, error) {
	cfg, err := reads.PricingConfig(ctx, res.ID())
	if err != nil {
		return pricing.Input{}, nil, MarkNotFound(err, ErrPricingNotConfigured)
	}

	in := pricing.Input{
		Config:             *cfg,
		Mode:               res.Mode(),
		ResourceID:         res.ID(),
		Slot:               slot,
		Quantity:           party.Quantity,
		Attendees:          party.Attendees,
		UserID:             party.UserID,
		OrgID:              party.OrgID,
		SelectedServiceIDs: party.ServiceIDs,
		Now:                now,
	}
	if in.Config.Currency == "" {
		in.Config.Currency = defaultCurrency
	}

	if cfg.EnablePriceGroups {
		in.Groups, err = reads.GroupAssignments(ctx, res.TenantID(), party.UserID, party.OrgID)
		if err != nil {
			return pricing.Input{}, nil, err
		}
	}
	if cfg.EnableSurcharges {
		in.Weekday, err = reads.WeekdayPricing(ctx, res.TenantID())
		if err != nil {
			return pricing.Input{}, nil, err
		}
	}
	in.Holidays, err = reads.Holidays(ctx, res.TenantID())
	if err != nil {
		return pricing.Input{}, nil, err
	}
	in.Services, err = reads.Services(ctx, res.ID())
	if err != nil {
		return pricing.Input{}, nil, err
	}

	var codeRec *pricing.Code
	if party.Code != nil && *party.Code != "" {
		codeRec, err = reads.DiscountCode(ctx, res.TenantID(), *party.Code)
		if err != nil {
			return pricing.Input{}, nil, MarkNotFound(err, ErrDiscountCodeNotFound)
		}
		uses, err := reads.CodeUsesByUser(ctx, codeRec.ID, party.UserID)
		if err != nil {
			return pricing.Input{}, nil, err
		}
		hasPrior, err := reads.UserHasBookings(ctx, res.TenantID(), party.UserID)
		if err != nil {
			return pricing.Input{}, nil, err
		}
		in.Code = codeRec
		in.CodeContext = pricing.CodeContext{UserUses: uses, HasPriorBookings: hasPrior}
	}

	return in, codeRec, nil
}

// MarkNotFound attaches a usecase sentinel to repository not-found errors
// while letting other failures pass through untouched.
func MarkNotFound(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return err
}
