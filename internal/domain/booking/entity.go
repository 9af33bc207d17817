package booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrStaleVersion      = errors.New("stale version")
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrNegativePrice     = errors.New("price cannot be negative")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrInvalidAttendees  = errors.New("attendees must be positive")
)

// Booking is the aggregate root of the lifecycle state machine. Every
// mutation takes the version the caller read; the stored version advances by
// exactly one per successful mutation. Bookings are never deleted —
// cancellation is a transition.
type Booking struct {
	id             uuid.UUID
	tenantID       uuid.UUID
	resourceID     uuid.UUID
	userID         uuid.UUID
	organizationID *uuid.UUID
	slot           TimeSlot
	quantity       int
	attendees      int
	status         Status
	statusReason   string
	priceCents     int64
	currency       string
	version        int
	metadata       Metadata
	createdAt      time.Time
	updatedAt      time.Time
}

// NewBooking creates a version-1 booking. Approval-gated resources start
// pending, everything else starts confirmed.
func NewBooking(
	tenantID, resourceID, userID uuid.UUID,
	organizationID *uuid.UUID,
	slot TimeSlot,
	quantity, attendees int,
	priceCents int64,
	currency string,
	requiresApproval bool,
	metadata Metadata,
) (*Booking, error) {
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if attendees < 1 {
		return nil, ErrInvalidAttendees
	}

	status := StatusConfirmed
	if requiresApproval {
		status = StatusPending
	}

	return &Booking{
		id:             uuid.New(),
		tenantID:       tenantID,
		resourceID:     resourceID,
		userID:         userID,
		organizationID: organizationID,
		slot:           slot,
		quantity:       quantity,
		attendees:      attendees,
		status:         status,
		priceCents:     priceCents,
		currency:       currency,
		version:        1,
		metadata:       metadata,
	}, nil
}

func ReconstructBooking(
	id, tenantID, resourceID, userID uuid.UUID,
	organizationID *uuid.UUID,
	slot TimeSlot,
	quantity, attendees int,
	status Status,
	statusReason string,
	priceCents int64,
	currency string,
	version int,
	metadata Metadata,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:             id,
		tenantID:       tenantID,
		resourceID:     resourceID,
		userID:         userID,
		organizationID: organizationID,
		slot:           slot,
		quantity:       quantity,
		attendees:      attendees,
		status:         status,
		statusReason:   statusReason,
		priceCents:     priceCents,
		currency:       currency,
		version:        version,
		metadata:       metadata,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (b *Booking) checkVersion(expected int) error {
	if b.version != expected {
		return fmt.Errorf("%w: have %d, got %d", ErrStaleVersion, b.version, expected)
	}
	return nil
}

func (b *Booking) transition(expected int, next Status, reason string) error {
	if err := b.checkVersion(expected); err != nil {
		return err
	}
	if !b.status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, b.status, next)
	}
	b.status = next
	b.statusReason = reason
	b.version++
	return nil
}

func (b *Booking) Approve(expectedVersion int) error {
	return b.transition(expectedVersion, StatusConfirmed, "")
}

func (b *Booking) Reject(expectedVersion int, reason string) error {
	return b.transition(expectedVersion, StatusRejected, reason)
}

// Cancel transitions to cancelled and reports whether the cancellation is
// still refund-eligible given the cutoff. The flag is informational; no
// refund handling happens here.
func (b *Booking) Cancel(expectedVersion int, reason string, now time.Time, cutoff time.Duration) (refundEligible bool, err error) {
	if err := b.transition(expectedVersion, StatusCancelled, reason); err != nil {
		return false, err
	}
	return !now.After(b.slot.Start().Add(-cutoff)), nil
}

func (b *Booking) Complete(expectedVersion int) error {
	return b.transition(expectedVersion, StatusCompleted, "")
}

// Reschedule moves the booking to a new slot with a freshly computed price.
// Availability and pricing are the caller's responsibility; this only guards
// the version and the lifecycle state.
func (b *Booking) Reschedule(expectedVersion int, slot TimeSlot, priceCents int64) error {
	if err := b.checkVersion(expectedVersion); err != nil {
		return err
	}
	if b.status.IsTerminal() {
		return fmt.Errorf("%w: cannot reschedule %s booking", ErrIllegalTransition, b.status)
	}
	if priceCents < 0 {
		return ErrNegativePrice
	}
	b.slot = slot
	b.priceCents = priceCents
	b.version++
	return nil
}

func (b *Booking) IsActive() bool {
	return b.status.Blocks()
}

func (b *Booking) HasExpired(now time.Time) bool {
	return now.After(b.slot.End())
}

func (b *Booking) ID() uuid.UUID              { return b.id }
func (b *Booking) TenantID() uuid.UUID        { return b.tenantID }
func (b *Booking) ResourceID() uuid.UUID      { return b.resourceID }
func (b *Booking) UserID() uuid.UUID          { return b.userID }
func (b *Booking) OrganizationID() *uuid.UUID { return b.organizationID }
func (b *Booking) Slot() TimeSlot             { return b.slot }
func (b *Booking) Quantity() int              { return b.quantity }
func (b *Booking) Attendees() int             { return b.attendees }
func (b *Booking) Status() Status             { return b.status }
func (b *Booking) StatusReason() string       { return b.statusReason }
func (b *Booking) PriceCents() int64          { return b.priceCents }
func (b *Booking) Currency() string           { return b.currency }
func (b *Booking) Version() int               { return b.version }
func (b *Booking) Metadata() Metadata         { return b.metadata }
func (b *Booking) CreatedAt() time.Time       { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time       { return b.updatedAt }
