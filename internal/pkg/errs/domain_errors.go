package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase layers
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")
	ErrBookingConflict = errors.New("booking conflict")
	ErrStaleVersion    = errors.New("stale booking version")
	ErrInvalidTimeSlot = errors.New("invalid time slot")

	// Pricing errors
	ErrPricingConfigNotFound = errors.New("pricing config not found")
	ErrDiscountCodeNotFound  = errors.New("discount code not found")

	// Season errors
	ErrSeasonNotFound = errors.New("season not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
