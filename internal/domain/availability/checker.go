package availability

import (
	"errors"
	"fmt"
	"time"

	"venuebook/internal/domain/booking"
	"venuebook/internal/domain/resource"
	"venuebook/internal/domain/schedule"
	"venuebook/internal/domain/season"

	"github.com/google/uuid"
)

var (
	ErrConflict           = errors.New("interval conflict")
	ErrInvalidSlot        = errors.New("slot not aligned to grid")
	ErrDurationOutOfRange = errors.New("duration out of range")
	ErrCapacityExceeded   = errors.New("capacity exceeded")
)

type ConflictKind string

const (
	ConflictBooking ConflictKind = "booking"
	ConflictBlock   ConflictKind = "block"
	ConflictLease   ConflictKind = "lease"
)

// Conflict names one existing occupation that collides with the candidate.
type Conflict struct {
	Kind     ConflictKind
	SourceID uuid.UUID
	Slot     booking.TimeSlot
}

type Result struct {
	Available bool
	Conflicts []Conflict
	// Remaining is ticket capacity left on the candidate date; meaningful
	// for TICKETS resources only.
	Remaining int
}

// ExistingBooking is the slice of booking state the detector needs; terminal
// bookings must be filtered by Status.Blocks, not by the caller.
type ExistingBooking struct {
	ID       uuid.UUID
	Slot     booking.TimeSlot
	Status   booking.Status
	Quantity int
}

// Checker is the pure conflict detector. It never reads storage; callers
// fetch state, and re-run the check inside the committing transaction.
type Checker struct {
	loc *time.Location
}

func NewChecker(loc *time.Location) *Checker {
	return &Checker{loc: loc}
}

type Request struct {
	Candidate booking.TimeSlot
	Quantity  int
	// Exclude removes one booking from consideration, for reschedules.
	Exclude *uuid.UUID
}

// Check validates the candidate for the resource's mode and tests it
// against existing bookings, active blocks and seasonal leases.
func (c *Checker) Check(
	res *resource.Resource,
	req Request,
	bookings []ExistingBooking,
	blocks []Block,
	leases []season.Lease,
) (Result, error) {
	if res.Mode() == resource.ModeTickets {
		return c.checkCapacity(res, req, bookings)
	}
	return c.checkInterval(res, req, bookings, blocks, leases)
}

func (c *Checker) checkInterval(
	res *resource.Resource,
	req Request,
	bookings []ExistingBooking,
	blocks []Block,
	leases []season.Lease,
) (Result, error) {
	candidate := req.Candidate

	switch res.Mode() {
	case resource.ModeSlots:
		if err := c.validateSlotAlignment(res, candidate); err != nil {
			return Result{}, err
		}
	case resource.ModeDuration, resource.ModeAllDay:
		if err := validateDuration(res, candidate); err != nil {
			return Result{}, err
		}
	}

	var conflicts []Conflict
	for _, b := range bookings {
		if !b.Status.Blocks() {
			continue
		}
		if req.Exclude != nil && b.ID == *req.Exclude {
			continue
		}
		if candidate.Overlaps(b.Slot) {
			conflicts = append(conflicts, Conflict{Kind: ConflictBooking, SourceID: b.ID, Slot: b.Slot})
		}
	}
	for _, bl := range blocks {
		for _, occ := range bl.Occurrences(candidate.Start(), candidate.End(), c.loc) {
			if candidate.Overlaps(occ) {
				conflicts = append(conflicts, Conflict{Kind: ConflictBlock, SourceID: bl.ID, Slot: occ})
			}
		}
	}
	for _, l := range leases {
		if !l.IsActive() {
			continue
		}
		for _, occ := range l.Occurrences(candidate.Start(), candidate.End(), c.loc) {
			if candidate.Overlaps(occ) {
				conflicts = append(conflicts, Conflict{Kind: ConflictLease, SourceID: l.ID, Slot: occ})
			}
		}
	}

	return Result{Available: len(conflicts) == 0, Conflicts: conflicts}, nil
}

func (c *Checker) validateSlotAlignment(res *resource.Resource, candidate booking.TimeSlot) error {
	start := candidate.Start().In(c.loc)
	end := candidate.End().In(c.loc)

	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()
	if sy != ey || sm != em || sd != ed {
		return fmt.Errorf("%w: slot bookings cannot cross midnight", ErrInvalidSlot)
	}

	startTod, err := schedule.NewTimeOfDay(start.Hour()*60 + start.Minute())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSlot, err)
	}
	endTod, err := schedule.NewTimeOfDay(end.Hour()*60 + end.Minute())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSlot, err)
	}

	if !schedule.AlignsToGrid(res.Hours(), res.SlotDurationMin(), start.Weekday(), startTod, endTod) {
		return fmt.Errorf("%w: %s-%s on %s", ErrInvalidSlot, startTod, endTod, start.Weekday())
	}
	return nil
}

func validateDuration(res *resource.Resource, candidate booking.TimeSlot) error {
	minutes := candidate.Minutes()
	if min := res.MinDurationMin(); min > 0 && minutes < min {
		return fmt.Errorf("%w: %d min is below minimum %d", ErrDurationOutOfRange, minutes, min)
	}
	if max := res.MaxDurationMin(); max > 0 && minutes > max {
		return fmt.Errorf("%w: %d min exceeds maximum %d", ErrDurationOutOfRange, minutes, max)
	}
	return nil
}

// checkCapacity sums blocking quantities on the candidate's local date.
func (c *Checker) checkCapacity(res *resource.Resource, req Request, bookings []ExistingBooking) (Result, error) {
	if req.Quantity < 1 {
		return Result{}, fmt.Errorf("%w: quantity must be positive", ErrCapacityExceeded)
	}

	date := req.Candidate.Date(c.loc)
	used := 0
	for _, b := range bookings {
		if !b.Status.Blocks() {
			continue
		}
		if req.Exclude != nil && b.ID == *req.Exclude {
			continue
		}
		if b.Slot.Date(c.loc).Equal(date) {
			used += b.Quantity
		}
	}

	remaining := res.Capacity() - used
	if remaining < 0 {
		remaining = 0
	}
	if req.Quantity > remaining {
		return Result{Available: false, Remaining: remaining},
			fmt.Errorf("%w: requested %d, available %d", ErrCapacityExceeded, req.Quantity, remaining)
	}
	return Result{Available: true, Remaining: remaining - req.Quantity}, nil
}
