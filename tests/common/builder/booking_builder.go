//go:build unit || e2e

package builder

import (
	"time"

	"venuebook/internal/domain/availability"
	dombooking "venuebook/internal/domain/booking"
	reqdto "venuebook/internal/handler/dto/request"
	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID             uuid.UUID
	TenantID       uuid.UUID
	ResourceID     uuid.UUID
	ResourceName   string
	UserID         uuid.UUID
	OrganizationID *uuid.UUID
	StartTime      time.Time
	EndTime        time.Time
	Quantity       int
	Attendees      int
	Status         dombooking.Status
	StatusReason   string
	PriceCents     int64
	Currency       string
	Version        int
	Metadata       map[string]string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:           uuid.New(),
		TenantID:     uuid.New(),
		ResourceID:   uuid.New(),
		ResourceName: "Meeting Room A",
		UserID:       uuid.New(),
		StartTime:    start,
		EndTime:      start.Add(2 * time.Hour),
		Quantity:     1,
		Attendees:    1,
		Status:       dombooking.StatusConfirmed,
		PriceCents:   200000,
		Currency:     "NOK",
		Version:      1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	slot, err := dombooking.NewTimeSlot(b.StartTime, b.EndTime)
	if err != nil {
		return nil, err
	}
	return dombooking.ReconstructBooking(
		b.ID, b.TenantID, b.ResourceID, b.UserID, b.OrganizationID,
		slot, b.Quantity, b.Attendees, b.Status, b.StatusReason,
		b.PriceCents, b.Currency, b.Version, b.Metadata,
		b.CreatedAt, b.UpdatedAt,
	), nil
}

func (b *BookingBuilder) BuildExisting() (availability.ExistingBooking, error) {
	slot, err := dombooking.NewTimeSlot(b.StartTime, b.EndTime)
	if err != nil {
		return availability.ExistingBooking{}, err
	}
	return availability.ExistingBooking{
		ID:       b.ID,
		Slot:     slot,
		Status:   b.Status,
		Quantity: b.Quantity,
	}, nil
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ResourceID: b.ResourceID,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		Quantity:   b.Quantity,
		Attendees:  b.Attendees,
		Metadata:   b.Metadata,
	}
}

func (b *BookingBuilder) BuildViewQuery() *queries.BookingView {
	var reason *string
	if b.StatusReason != "" {
		r := b.StatusReason
		reason = &r
	}
	return &queries.BookingView{
		ID:             b.ID,
		TenantID:       b.TenantID,
		ResourceID:     b.ResourceID,
		ResourceName:   b.ResourceName,
		UserID:         b.UserID,
		OrganizationID: b.OrganizationID,
		StartTime:      b.StartTime,
		EndTime:        b.EndTime,
		Quantity:       b.Quantity,
		Status:         string(b.Status),
		StatusReason:   reason,
		PriceCents:     b.PriceCents,
		Currency:       b.Currency,
		Version:        b.Version,
		Metadata:       b.Metadata,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:           b.ID,
		ResourceID:   b.ResourceID,
		ResourceName: b.ResourceName,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		Status:       string(b.Status),
		PriceCents:   b.PriceCents,
		CreatedAt:    b.CreatedAt,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithResourceID(resourceID uuid.UUID) *BookingBuilder {
	b.ResourceID = resourceID
	return b
}

func (b *BookingBuilder) WithUserID(userID uuid.UUID) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) WithOrganizationID(orgID uuid.UUID) *BookingBuilder {
	b.OrganizationID = &orgID
	return b
}

func (b *BookingBuilder) WithSlot(start, end time.Time) *BookingBuilder {
	b.StartTime = start
	b.EndTime = end
	return b
}

func (b *BookingBuilder) WithAttendees(attendees int) *BookingBuilder {
	b.Attendees = attendees
	return b
}

func (b *BookingBuilder) WithQuantity(quantity int) *BookingBuilder {
	b.Quantity = quantity
	return b
}

func (b *BookingBuilder) WithStatus(status dombooking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithVersion(version int) *BookingBuilder {
	b.Version = version
	return b
}

func (b *BookingBuilder) WithPrice(cents int64, currency string) *BookingBuilder {
	b.PriceCents = cents
	b.Currency = currency
	return b
}

func (b *BookingBuilder) AsPending() *BookingBuilder {
	b.Status = dombooking.StatusPending
	return b
}

func (b *BookingBuilder) AsCancelled() *BookingBuilder {
	b.Status = dombooking.StatusCancelled
	return b
}
