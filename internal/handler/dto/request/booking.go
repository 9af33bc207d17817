package request

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ResourceID   uuid.UUID         `json:"resource_id" binding:"required"`
	StartTime    time.Time         `json:"start_time" binding:"required"`
	EndTime      time.Time         `json:"end_time" binding:"required"`
	Quantity     int               `json:"quantity" binding:"omitempty,min=1"`
	Attendees    int               `json:"attendees" binding:"omitempty,min=1"`
	DiscountCode *string           `json:"discount_code,omitempty"`
	ServiceIDs   []uuid.UUID       `json:"service_ids,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

func (r CreateBookingRequest) GetDiscountCode() *string {
	if r.DiscountCode == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.DiscountCode)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// TransitionRequest carries the optimistic version the caller last saw.
type TransitionRequest struct {
	Version int     `json:"version" binding:"required,min=1"`
	Reason  *string `json:"reason,omitempty"`
}

func (r TransitionRequest) GetReason() string {
	if r.Reason == nil {
		return ""
	}
	return strings.TrimSpace(*r.Reason)
}

type RescheduleRequest struct {
	Version   int       `json:"version" binding:"required,min=1"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

type QuoteRequest struct {
	StartTime    time.Time   `json:"start_time" binding:"required"`
	EndTime      time.Time   `json:"end_time" binding:"required"`
	Quantity     int         `json:"quantity" binding:"omitempty,min=1"`
	Attendees    int         `json:"attendees" binding:"omitempty,min=1"`
	DiscountCode *string     `json:"discount_code,omitempty"`
	ServiceIDs   []uuid.UUID `json:"service_ids,omitempty"`
}

func (r QuoteRequest) GetDiscountCode() *string {
	if r.DiscountCode == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.DiscountCode)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
