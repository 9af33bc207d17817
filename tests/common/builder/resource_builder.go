//go:build unit || e2e

package builder

import (
	"time"

	"venuebook/internal/domain/resource"
	"venuebook/internal/domain/schedule"

	"github.com/google/uuid"
)

type ResourceBuilder struct {
	ID               uuid.UUID
	TenantID         uuid.UUID
	Name             string
	Mode             resource.BookingMode
	Capacity         int
	Hours            []schedule.RawDayHours
	SlotDurationMin  int
	MinDurationMin   int
	MaxDurationMin   int
	RequiresApproval bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewResourceBuilder defaults to a slot-based room open 09:00-17:00 every
// day with a 60-minute grid.
func NewResourceBuilder() *ResourceBuilder {
	now := time.Now()
	hours := make([]schedule.RawDayHours, 0, 7)
	for wd := 0; wd < 7; wd++ {
		hours = append(hours, schedule.RawDayHours{Weekday: wd, Open: "09:00", Close: "17:00"})
	}
	return &ResourceBuilder{
		ID:              uuid.New(),
		TenantID:        uuid.New(),
		Name:            "Meeting Room A",
		Mode:            resource.ModeSlots,
		Capacity:        0,
		Hours:           hours,
		SlotDurationMin: 60,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (r *ResourceBuilder) With(mutate func(*ResourceBuilder)) *ResourceBuilder {
	mutate(r)
	return r
}

func (r *ResourceBuilder) BuildDomain() (*resource.Resource, error) {
	week, err := schedule.ParseWeekHours(r.Hours)
	if err != nil {
		return nil, err
	}
	return resource.ReconstructResource(
		r.ID, r.TenantID, r.Name, r.Mode, r.Capacity, week,
		r.SlotDurationMin, r.MinDurationMin, r.MaxDurationMin,
		r.RequiresApproval, r.CreatedAt, r.UpdatedAt,
	), nil
}

// Fluent builder methods
func (r *ResourceBuilder) WithID(id uuid.UUID) *ResourceBuilder {
	r.ID = id
	return r
}

func (r *ResourceBuilder) WithTenantID(tenantID uuid.UUID) *ResourceBuilder {
	r.TenantID = tenantID
	return r
}

func (r *ResourceBuilder) WithName(name string) *ResourceBuilder {
	r.Name = name
	return r
}

func (r *ResourceBuilder) WithHours(hours []schedule.RawDayHours) *ResourceBuilder {
	r.Hours = hours
	return r
}

func (r *ResourceBuilder) WithSlotDuration(minutes int) *ResourceBuilder {
	r.SlotDurationMin = minutes
	return r
}

func (r *ResourceBuilder) WithDurationRange(minMin, maxMin int) *ResourceBuilder {
	r.MinDurationMin = minMin
	r.MaxDurationMin = maxMin
	return r
}

func (r *ResourceBuilder) RequiringApproval() *ResourceBuilder {
	r.RequiresApproval = true
	return r
}

func (r *ResourceBuilder) AsAllDay() *ResourceBuilder {
	r.Mode = resource.ModeAllDay
	r.SlotDurationMin = 0
	return r
}

func (r *ResourceBuilder) AsDuration(minMin, maxMin int) *ResourceBuilder {
	r.Mode = resource.ModeDuration
	r.SlotDurationMin = 0
	r.MinDurationMin = minMin
	r.MaxDurationMin = maxMin
	return r
}

func (r *ResourceBuilder) AsTickets(capacity int) *ResourceBuilder {
	r.Mode = resource.ModeTickets
	r.SlotDurationMin = 0
	r.Capacity = capacity
	return r
}
