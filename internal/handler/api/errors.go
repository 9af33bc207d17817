package api

import (
	"errors"
	"net/http"

	"venuebook/internal/domain/availability"
	"venuebook/internal/domain/booking"
	"venuebook/internal/domain/pricing"
	"venuebook/internal/domain/schedule"
	"venuebook/internal/infra"
	"venuebook/internal/usecase/commands"
	"venuebook/internal/usecase/queries"
	"venuebook/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

// respondError maps engine errors to HTTP statuses. Order matters: the
// most specific sentinels are tested first.
func respondError(c *gin.Context, err error) {
	var codeErr *pricing.CodeError
	if errors.As(err, &codeErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Invalid discount code",
			"reason": string(codeErr.Reason),
		})
		return
	}

	switch {
	case errors.Is(err, commands.ErrResourceNotFound),
		errors.Is(err, queries.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, commands.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
	case errors.Is(err, queries.ErrInvalidCursor):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cursor"})
	case errors.Is(err, shared.ErrDiscountCodeNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown discount code"})
	case errors.Is(err, shared.ErrPricingNotConfigured):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Pricing is not configured for this resource"})
	case errors.Is(err, booking.ErrStaleVersion):
		c.JSON(http.StatusConflict, gin.H{"error": "Booking was modified concurrently, reload and retry"})
	case errors.Is(err, booking.ErrIllegalTransition):
		c.JSON(http.StatusConflict, gin.H{"error": "Booking status does not allow this transition"})
	case errors.Is(err, commands.ErrBookingConflict),
		errors.Is(err, availability.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Requested time conflicts with an existing booking"})
	case errors.Is(err, availability.ErrCapacityExceeded):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, availability.ErrInvalidSlot),
		errors.Is(err, pricing.ErrInvalidSlotOption):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requested slot does not match the resource's slot grid"})
	case errors.Is(err, availability.ErrDurationOutOfRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requested duration is out of range"})
	case errors.Is(err, pricing.ErrAttendeesOutOfRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Attendee count is out of range"})
	case errors.Is(err, schedule.ErrInvalidSchedule):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid opening hours"})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Domain validation failed"})
	case errors.Is(err, commands.ErrNoApplications):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "No pending applications to allocate"})
	case infra.IsKind(err, infra.KindNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
