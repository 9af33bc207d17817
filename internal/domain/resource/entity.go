package resource

import (
	"errors"
	"strings"
	"time"

	"venuebook/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrEmptyResourceName   = errors.New("resource name cannot be empty")
	ErrResourceNameTooLong = errors.New("resource name is too long (max 255 characters)")
	ErrInvalidBookingMode  = errors.New("invalid booking mode")
	ErrInvalidCapacity     = errors.New("capacity must be positive for ticket resources")
	ErrInvalidDurationSpan = errors.New("min duration cannot exceed max duration")
)

const MaxResourceNameLength = 255

type Resource struct {
	id               uuid.UUID
	tenantID         uuid.UUID
	name             string
	mode             BookingMode
	capacity         int
	hours            schedule.WeekHours
	slotDurationMin  int
	minDurationMin   int
	maxDurationMin   int
	requiresApproval bool
	createdAt        time.Time
	updatedAt        time.Time
}

func NewResource(
	id, tenantID uuid.UUID,
	name string,
	mode BookingMode,
	capacity int,
	hours schedule.WeekHours,
	slotDurationMin, minDurationMin, maxDurationMin int,
	requiresApproval bool,
) (*Resource, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if !mode.IsValid() {
		return nil, ErrInvalidBookingMode
	}
	if mode == ModeTickets && capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if minDurationMin > 0 && maxDurationMin > 0 && minDurationMin > maxDurationMin {
		return nil, ErrInvalidDurationSpan
	}

	return &Resource{
		id:               id,
		tenantID:         tenantID,
		name:             strings.TrimSpace(name),
		mode:             mode,
		capacity:         capacity,
		hours:            hours,
		slotDurationMin:  slotDurationMin,
		minDurationMin:   minDurationMin,
		maxDurationMin:   maxDurationMin,
		requiresApproval: requiresApproval,
	}, nil
}

func ReconstructResource(
	id, tenantID uuid.UUID,
	name string,
	mode BookingMode,
	capacity int,
	hours schedule.WeekHours,
	slotDurationMin, minDurationMin, maxDurationMin int,
	requiresApproval bool,
	createdAt, updatedAt time.Time,
) *Resource {
	return &Resource{
		id:               id,
		tenantID:         tenantID,
		name:             name,
		mode:             mode,
		capacity:         capacity,
		hours:            hours,
		slotDurationMin:  slotDurationMin,
		minDurationMin:   minDurationMin,
		maxDurationMin:   maxDurationMin,
		requiresApproval: requiresApproval,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyResourceName
	}
	if len(name) > MaxResourceNameLength {
		return ErrResourceNameTooLong
	}
	return nil
}

// ReplaceHours swaps the whole weekday-indexed schedule; per-day edits are
// not supported.
func (r *Resource) ReplaceHours(hours schedule.WeekHours) {
	r.hours = hours
}

func (r *Resource) ID() uuid.UUID             { return r.id }
func (r *Resource) TenantID() uuid.UUID       { return r.tenantID }
func (r *Resource) Name() string              { return r.name }
func (r *Resource) Mode() BookingMode         { return r.mode }
func (r *Resource) Capacity() int             { return r.capacity }
func (r *Resource) Hours() schedule.WeekHours { return r.hours }
func (r *Resource) SlotDurationMin() int      { return r.slotDurationMin }
func (r *Resource) MinDurationMin() int       { return r.minDurationMin }
func (r *Resource) MaxDurationMin() int       { return r.maxDurationMin }
func (r *Resource) RequiresApproval() bool    { return r.requiresApproval }
func (r *Resource) CreatedAt() time.Time      { return r.createdAt }
func (r *Resource) UpdatedAt() time.Time      { return r.updatedAt }
