package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTOs for the read side)

type DayGridView struct {
	Weekday int      `json:"weekday"`
	Slots   []string `json:"slots"`
}

type ConflictView struct {
	Kind     string    `json:"kind"`
	SourceID uuid.UUID `json:"source_id"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

type AvailabilityView struct {
	Available bool           `json:"available"`
	Remaining int            `json:"remaining,omitempty"`
	Conflicts []ConflictView `json:"conflicts,omitempty"`
}

type BookingView struct {
	ID             uuid.UUID         `json:"id"`
	TenantID       uuid.UUID         `json:"tenant_id"`
	ResourceID     uuid.UUID         `json:"resource_id"`
	ResourceName   string            `json:"resource_name"`
	UserID         uuid.UUID         `json:"user_id"`
	OrganizationID *uuid.UUID        `json:"organization_id,omitempty"`
	StartTime      time.Time         `json:"start_time"`
	EndTime        time.Time         `json:"end_time"`
	Quantity       int               `json:"quantity"`
	Status         string            `json:"status"`
	StatusReason   *string           `json:"status_reason,omitempty"`
	PriceCents     int64             `json:"price_cents"`
	Currency       string            `json:"currency"`
	Version        int               `json:"version"`
	Metadata       map[string]string `json:"metadata,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

type BookingListItem struct {
	ID           uuid.UUID `json:"id"`
	ResourceID   uuid.UUID `json:"resource_id"`
	ResourceName string    `json:"resource_name"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Status       string    `json:"status"`
	PriceCents   int64     `json:"price_cents"`
	CreatedAt    time.Time `json:"created_at"`
}

type RankedApplicationView struct {
	ApplicationID  uuid.UUID `json:"application_id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	Score          int       `json:"score"`
	Rank           int       `json:"rank"`
	Status         string    `json:"status"`
	SubmittedAt    time.Time `json:"submitted_at"`
}
