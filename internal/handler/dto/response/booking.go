package response

import (
	"time"

	"venuebook/internal/domain/booking"
	"venuebook/internal/domain/pricing"
	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID             uuid.UUID          `json:"id"`
	ResourceID     uuid.UUID          `json:"resourceId"`
	UserID         uuid.UUID          `json:"userId"`
	OrganizationID *uuid.UUID         `json:"organizationId,omitempty"`
	StartTime      time.Time          `json:"startTime"`
	EndTime        time.Time          `json:"endTime"`
	Quantity       int                `json:"quantity"`
	Attendees      int                `json:"attendees"`
	Status         string             `json:"status"`
	StatusReason   *string            `json:"statusReason,omitempty"`
	PriceCents     int64              `json:"priceCents"`
	Currency       string             `json:"currency"`
	Version        int                `json:"version"`
	Metadata       map[string]string  `json:"metadata,omitempty"`
	RefundEligible *bool              `json:"refundEligible,omitempty"`
	Breakdown      *pricing.Breakdown `json:"breakdown,omitempty"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

func FromBooking(b *booking.Booking, breakdown *pricing.Breakdown) *BookingResponse {
	resp := &BookingResponse{
		ID:             b.ID(),
		ResourceID:     b.ResourceID(),
		UserID:         b.UserID(),
		OrganizationID: b.OrganizationID(),
		StartTime:      b.Slot().Start(),
		EndTime:        b.Slot().End(),
		Quantity:       b.Quantity(),
		Attendees:      b.Attendees(),
		Status:         string(b.Status()),
		PriceCents:     b.PriceCents(),
		Currency:       b.Currency(),
		Version:        b.Version(),
		Metadata:       b.Metadata(),
		Breakdown:      breakdown,
		CreatedAt:      b.CreatedAt(),
		UpdatedAt:      b.UpdatedAt(),
	}
	if reason := b.StatusReason(); reason != "" {
		resp.StatusReason = &reason
	}
	return resp
}

func (r *BookingResponse) WithRefundEligible(eligible bool) *BookingResponse {
	r.RefundEligible = &eligible
	return r
}

type BookingViewResponse struct {
	ID             uuid.UUID         `json:"id"`
	ResourceID     uuid.UUID         `json:"resourceId"`
	ResourceName   string            `json:"resourceName"`
	UserID         uuid.UUID         `json:"userId"`
	OrganizationID *uuid.UUID        `json:"organizationId,omitempty"`
	StartTime      time.Time         `json:"startTime"`
	EndTime        time.Time         `json:"endTime"`
	Quantity       int               `json:"quantity"`
	Status         string            `json:"status"`
	StatusReason   *string           `json:"statusReason,omitempty"`
	PriceCents     int64             `json:"priceCents"`
	Currency       string            `json:"currency"`
	Version        int               `json:"version"`
	Metadata       map[string]string `json:"metadata,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

type BookingListResponse struct {
	ID           uuid.UUID `json:"id"`
	ResourceID   uuid.UUID `json:"resourceId"`
	ResourceName string    `json:"resourceName"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	Status       string    `json:"status"`
	PriceCents   int64     `json:"priceCents"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Read-model field names line up with the response types, so the
// mapping is a straight copy.
func FromBookingView(v *queries.BookingView) *BookingViewResponse {
	var resp BookingViewResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromBookingListItem(item *queries.BookingListItem) *BookingListResponse {
	var resp BookingListResponse
	_ = copier.Copy(&resp, item)
	return &resp
}

func FromBookingListItems(items []*queries.BookingListItem) []*BookingListResponse {
	result := make([]*BookingListResponse, len(items))
	for i, item := range items {
		result[i] = FromBookingListItem(item)
	}
	return result
}

// BookingListPageResponse is one keyset page; NextCursor is absent on the
// final page.
type BookingListPageResponse struct {
	Items      []*BookingListResponse `json:"items"`
	NextCursor *string                `json:"nextCursor,omitempty"`
}

func FromBookingListPage(items []*queries.BookingListItem, next *queries.Cursor) *BookingListPageResponse {
	page := &BookingListPageResponse{Items: FromBookingListItems(items)}
	if next != nil {
		page.NextCursor = &next.After
	}
	return page
}
