package pricing

import (
	"errors"
	"fmt"
	"time"

	"venuebook/internal/domain/resource"

	"github.com/google/uuid"
)

var ErrInvalidDiscountCode = errors.New("invalid discount code")

type CodeType string

const (
	CodePercent   CodeType = "percent"
	CodeFixed     CodeType = "fixed"
	CodeFreeHours CodeType = "free_hours"
)

type CodeReason string

const (
	ReasonExpired      CodeReason = "expired"
	ReasonNotStarted   CodeReason = "not_started"
	ReasonExhausted    CodeReason = "exhausted"
	ReasonRestricted   CodeReason = "restricted"
	ReasonBelowMinimum CodeReason = "below_minimum"
)

// CodeError reports why a supplied discount code was refused. Codes are
// never silently skipped.
type CodeError struct {
	Code   string
	Reason CodeReason
}

func (e *CodeError) Error() string {
	return fmt.Sprintf("discount code %q rejected: %s", e.Code, e.Reason)
}

func (e *CodeError) Unwrap() error {
	return ErrInvalidDiscountCode
}

// Code is a tenant-unique discount code with usage caps and restrictions.
// Value is a percentage for percent codes, cents for fixed codes, and hours
// for free_hours codes.
type Code struct {
	ID       uuid.UUID
	TenantID uuid.UUID
	Code     string
	Type     CodeType
	Value    float64

	MaxUsesTotal   int
	MaxUsesPerUser int
	CurrentUses    int

	// Empty restriction lists apply to everything.
	CategoryIDs []uuid.UUID
	ResourceIDs []uuid.UUID
	OrgIDs      []uuid.UUID
	UserIDs     []uuid.UUID
	GroupIDs    []uuid.UUID
	Modes       []resource.BookingMode

	MinBookingAmountCents int64
	MinDurationMin        int
	FirstTimeBookersOnly  bool

	ValidFrom  *time.Time
	ValidUntil *time.Time
}

// CodeContext is everything validation needs about the booking attempt.
type CodeContext struct {
	Now          time.Time
	UserID       uuid.UUID
	OrgID        *uuid.UUID
	GroupID      *uuid.UUID
	ResourceID   uuid.UUID
	CategoryID   *uuid.UUID
	Mode         resource.BookingMode
	RunningCents int64
	DurationMin  int
	// UserUses is this user's prior redemptions of the code.
	UserUses int
	// HasPriorBookings gates firstTimeBookersOnly.
	HasPriorBookings bool
}

// Validate checks every cap, window and restriction; the first violation
// wins. Order: validity window, usage caps, minimums, then restrictions.
func (c Code) Validate(ctx CodeContext) error {
	if c.ValidFrom != nil && ctx.Now.Before(*c.ValidFrom) {
		return &CodeError{Code: c.Code, Reason: ReasonNotStarted}
	}
	if c.ValidUntil != nil && ctx.Now.After(*c.ValidUntil) {
		return &CodeError{Code: c.Code, Reason: ReasonExpired}
	}

	if c.MaxUsesTotal > 0 && c.CurrentUses >= c.MaxUsesTotal {
		return &CodeError{Code: c.Code, Reason: ReasonExhausted}
	}
	if c.MaxUsesPerUser > 0 && ctx.UserUses >= c.MaxUsesPerUser {
		return &CodeError{Code: c.Code, Reason: ReasonExhausted}
	}

	if c.MinBookingAmountCents > 0 && ctx.RunningCents < c.MinBookingAmountCents {
		return &CodeError{Code: c.Code, Reason: ReasonBelowMinimum}
	}
	if c.MinDurationMin > 0 && ctx.DurationMin < c.MinDurationMin {
		return &CodeError{Code: c.Code, Reason: ReasonBelowMinimum}
	}

	if c.FirstTimeBookersOnly && ctx.HasPriorBookings {
		return &CodeError{Code: c.Code, Reason: ReasonRestricted}
	}
	if len(c.ResourceIDs) > 0 && !containsID(c.ResourceIDs, ctx.ResourceID) {
		return &CodeError{Code: c.Code, Reason: ReasonRestricted}
	}
	if len(c.CategoryIDs) > 0 && (ctx.CategoryID == nil || !containsID(c.CategoryIDs, *ctx.CategoryID)) {
		return &CodeError{Code: c.Code, Reason: ReasonRestricted}
	}
	if len(c.OrgIDs) > 0 && (ctx.OrgID == nil || !containsID(c.OrgIDs, *ctx.OrgID)) {
		return &CodeError{Code: c.Code, Reason: ReasonRestricted}
	}
	if len(c.UserIDs) > 0 && !containsID(c.UserIDs, ctx.UserID) {
		return &CodeError{Code: c.Code, Reason: ReasonRestricted}
	}
	if len(c.GroupIDs) > 0 && (ctx.GroupID == nil || !containsID(c.GroupIDs, *ctx.GroupID)) {
		return &CodeError{Code: c.Code, Reason: ReasonRestricted}
	}
	if len(c.Modes) > 0 && !containsMode(c.Modes, ctx.Mode) {
		return &CodeError{Code: c.Code, Reason: ReasonRestricted}
	}

	return nil
}

// discountCents converts the code into an amount off the running total.
// free_hours codes convert at the config's hourly rate.
func (c Code) discountCents(running int64, hourlyRateCents int64) int64 {
	switch c.Type {
	case CodePercent:
		return percentOf(running, c.Value)
	case CodeFixed:
		return roundCents(c.Value)
	case CodeFreeHours:
		return roundCents(c.Value * float64(hourlyRateCents))
	default:
		return 0
	}
}

func containsMode(modes []resource.BookingMode, mode resource.BookingMode) bool {
	for _, m := range modes {
		if m == mode {
			return true
		}
	}
	return false
}
