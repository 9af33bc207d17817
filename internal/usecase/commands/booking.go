package commands

import (
	"context"
	"time"

	"venuebook/internal/domain/availability"
	"venuebook/internal/domain/booking"
	"venuebook/internal/domain/pricing"
	"venuebook/internal/domain/resource"
	"venuebook/internal/pkg/clock"
	"venuebook/internal/pkg/errs"
	"venuebook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrResourceNotFound = errs.New("resource not found")
	ErrBookingNotFound  = errs.New("booking not found")
	ErrBookingConflict  = errs.New("booking conflict")
	ErrDomainValidation = errs.New("domain validation error")
)

// Policy is tenant-level engine policy injected from config.
type Policy struct {
	CancellationCutoff time.Duration
	Currency           string
	Location           *time.Location
}

type CreateBookingParams struct {
	TenantID       uuid.UUID
	ResourceID     uuid.UUID
	UserID         uuid.UUID
	OrganizationID *uuid.UUID
	Start          time.Time
	End            time.Time
	Quantity       int
	Attendees      int
	DiscountCode   *string
	ServiceIDs     []uuid.UUID
	Metadata       map[string]string
}

type RescheduleParams struct {
	BookingID uuid.UUID
	Version   int
	Start     time.Time
	End       time.Time
}

type CreateBookingResult struct {
	Booking   *booking.Booking
	Breakdown *pricing.Breakdown
}

type CancelResult struct {
	Booking        *booking.Booking
	RefundEligible bool
}

type BookingCommands interface {
	Create(ctx context.Context, p CreateBookingParams) (*CreateBookingResult, error)
	Approve(ctx context.Context, id uuid.UUID, version int) (*booking.Booking, error)
	Reject(ctx context.Context, id uuid.UUID, version int, reason string) (*booking.Booking, error)
	Cancel(ctx context.Context, id uuid.UUID, version int, reason string) (*CancelResult, error)
	Complete(ctx context.Context, id uuid.UUID, version int) (*booking.Booking, error)
	Reschedule(ctx context.Context, p RescheduleParams) (*CreateBookingResult, error)
}

type bookingCommandsImpl struct {
	uow     shared.UnitOfWork
	checker *availability.Checker
	calc    *pricing.Calculator
	clock   clock.Clock
	policy  Policy
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	checker *availability.Checker,
	calc *pricing.Calculator,
	clk clock.Clock,
	policy Policy,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:     uow,
		checker: checker,
		calc:    calc,
		clock:   clk,
		policy:  policy,
	}
}

// Create validates, prices and persists a new booking in one transaction.
// Conflict detection and pricing run against transactional reads so the
// committed state is the state that was checked.
func (u *bookingCommandsImpl) Create(ctx context.Context, p CreateBookingParams) (*CreateBookingResult, error) {
	var result *CreateBookingResult

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reads := tx.Reads()

		res, err := reads.ResourceByID(ctx, p.ResourceID)
		if err != nil {
			return shared.MarkNotFound(err, ErrResourceNotFound)
		}

		slot, err := u.normalizeSlot(res.Mode(), p.Start, p.End)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		quantity := p.Quantity
		if quantity < 1 {
			quantity = 1
		}
		attendees := p.Attendees
		if attendees < 1 {
			attendees = quantity
		}

		if _, err := u.checkAvailability(ctx, reads, res, slot, quantity, nil); err != nil {
			return err
		}

		in, codeRec, err := shared.AssemblePricingInput(ctx, reads, res, slot, shared.PricingParty{
			UserID:     p.UserID,
			OrgID:      p.OrganizationID,
			Quantity:   quantity,
			Attendees:  attendees,
			Code:       p.DiscountCode,
			ServiceIDs: p.ServiceIDs,
		}, u.clock.Now(), u.policy.Currency)
		if err != nil {
			return err
		}
		breakdown, err := u.calc.Calculate(in)
		if err != nil {
			return err
		}

		metadata, err := booking.NewMetadata(p.Metadata)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		b, err := booking.NewBooking(
			res.TenantID(), res.ID(), p.UserID, p.OrganizationID,
			slot, quantity, attendees,
			breakdown.TotalCents, breakdown.Currency,
			res.RequiresApproval(), metadata,
		)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		if err := tx.Bookings().Create(ctx, b); err != nil {
			return err
		}
		if codeRec != nil {
			if err := tx.Codes().IncrementUsage(ctx, codeRec.ID, p.UserID); err != nil {
				return err
			}
		}

		result = &CreateBookingResult{Booking: b, Breakdown: breakdown}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (u *bookingCommandsImpl) Approve(ctx context.Context, id uuid.UUID, version int) (*booking.Booking, error) {
	return u.mutate(ctx, id, func(b *booking.Booking) error {
		return b.Approve(version)
	})
}

func (u *bookingCommandsImpl) Reject(ctx context.Context, id uuid.UUID, version int, reason string) (*booking.Booking, error) {
	return u.mutate(ctx, id, func(b *booking.Booking) error {
		return b.Reject(version, reason)
	})
}

func (u *bookingCommandsImpl) Complete(ctx context.Context, id uuid.UUID, version int) (*booking.Booking, error) {
	return u.mutate(ctx, id, func(b *booking.Booking) error {
		return b.Complete(version)
	})
}

func (u *bookingCommandsImpl) Cancel(ctx context.Context, id uuid.UUID, version int, reason string) (*CancelResult, error) {
	var refundEligible bool
	b, err := u.mutate(ctx, id, func(b *booking.Booking) error {
		var err error
		refundEligible, err = b.Cancel(version, reason, u.clock.Now(), u.policy.CancellationCutoff)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &CancelResult{Booking: b, RefundEligible: refundEligible}, nil
}

// Reschedule re-runs conflict detection (excluding the booking's own
// reservation) and re-prices the new window. Discount codes are redeemed at
// creation and are not re-applied.
func (u *bookingCommandsImpl) Reschedule(ctx context.Context, p RescheduleParams) (*CreateBookingResult, error) {
	var result *CreateBookingResult

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reads := tx.Reads()

		b, err := reads.BookingByID(ctx, p.BookingID)
		if err != nil {
			return shared.MarkNotFound(err, ErrBookingNotFound)
		}
		res, err := reads.ResourceByID(ctx, b.ResourceID())
		if err != nil {
			return shared.MarkNotFound(err, ErrResourceNotFound)
		}

		slot, err := u.normalizeSlot(res.Mode(), p.Start, p.End)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		excludeID := b.ID()
		if _, err := u.checkAvailability(ctx, reads, res, slot, b.Quantity(), &excludeID); err != nil {
			return err
		}

		in, _, err := shared.AssemblePricingInput(ctx, reads, res, slot, shared.PricingParty{
			UserID:    b.UserID(),
			OrgID:     b.OrganizationID(),
			Quantity:  b.Quantity(),
			Attendees: b.Attendees(),
		}, u.clock.Now(), u.policy.Currency)
		if err != nil {
			return err
		}
		breakdown, err := u.calc.Calculate(in)
		if err != nil {
			return err
		}

		if err := b.Reschedule(p.Version, slot, breakdown.TotalCents); err != nil {
			return err
		}
		if err := tx.Bookings().Save(ctx, b); err != nil {
			return err
		}

		result = &CreateBookingResult{Booking: b, Breakdown: breakdown}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (u *bookingCommandsImpl) mutate(ctx context.Context, id uuid.UUID, op func(*booking.Booking) error) (*booking.Booking, error) {
	var mutated *booking.Booking

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Reads().BookingByID(ctx, id)
		if err != nil {
			return shared.MarkNotFound(err, ErrBookingNotFound)
		}
		if err := op(b); err != nil {
			return err
		}
		if err := tx.Bookings().Save(ctx, b); err != nil {
			return err
		}
		mutated = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return mutated, nil
}

func (u *bookingCommandsImpl) normalizeSlot(mode resource.BookingMode, start, end time.Time) (booking.TimeSlot, error) {
	return shared.NormalizeSlot(mode, start, end, u.policy.Location)
}

func (u *bookingCommandsImpl) checkAvailability(
	ctx context.Context,
	reads shared.CommandReads,
	res *resource.Resource,
	slot booking.TimeSlot,
	quantity int,
	exclude *uuid.UUID,
) (availability.Result, error) {
	from, to := shared.FetchWindow(slot, u.policy.Location)

	bookings, err := reads.BlockingBookings(ctx, res.ID(), from, to)
	if err != nil {
		return availability.Result{}, err
	}

	req := availability.Request{Candidate: slot, Quantity: quantity, Exclude: exclude}

	if !res.Mode().IntervalBased() {
		return u.checker.Check(res, req, bookings, nil, nil)
	}

	blocks, err := reads.ActiveBlocks(ctx, res.ID())
	if err != nil {
		return availability.Result{}, err
	}
	leases, err := reads.ActiveLeases(ctx, res.ID())
	if err != nil {
		return availability.Result{}, err
	}

	result, err := u.checker.Check(res, req, bookings, blocks, leases)
	if err != nil {
		return result, err
	}
	if !result.Available {
		return result, errs.Mark(availability.ErrConflict, ErrBookingConflict)
	}
	return result, nil
}
