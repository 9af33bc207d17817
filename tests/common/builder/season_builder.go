//go:build unit || e2e

package builder

import (
	"time"

	"venuebook/internal/domain/season"

	"github.com/google/uuid"
)

type ApplicationBuilder struct {
	ID              uuid.UUID
	SeasonID        uuid.UUID
	ResourceID      uuid.UUID
	OrganizationID  uuid.UUID
	Category        string
	MemberCount     int
	PreviousSeasons int
	StartDate       time.Time
	EndDate         time.Time
	Weekdays        season.WeekdaySet
	StartMin        int
	EndMin          int
	SubmittedAt     time.Time
}

// NewApplicationBuilder defaults to a youth club asking for Mondays
// 17:00-19:00 over a spring season.
func NewApplicationBuilder() *ApplicationBuilder {
	return &ApplicationBuilder{
		ID:              uuid.New(),
		SeasonID:        uuid.New(),
		ResourceID:      uuid.New(),
		OrganizationID:  uuid.New(),
		Category:        "youth",
		MemberCount:     40,
		PreviousSeasons: 2,
		StartDate:       time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
		Weekdays:        season.NewWeekdaySet(time.Monday),
		StartMin:        17 * 60,
		EndMin:          19 * 60,
		SubmittedAt:     time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (a *ApplicationBuilder) With(mutate func(*ApplicationBuilder)) *ApplicationBuilder {
	mutate(a)
	return a
}

func (a *ApplicationBuilder) BuildDomain() season.Application {
	return season.Application{
		ID:              a.ID,
		SeasonID:        a.SeasonID,
		ResourceID:      a.ResourceID,
		OrganizationID:  a.OrganizationID,
		Category:        a.Category,
		MemberCount:     a.MemberCount,
		PreviousSeasons: a.PreviousSeasons,
		StartDate:       a.StartDate,
		EndDate:         a.EndDate,
		Weekdays:        a.Weekdays,
		StartMin:        a.StartMin,
		EndMin:          a.EndMin,
		SubmittedAt:     a.SubmittedAt,
	}
}

// Fluent builder methods
func (a *ApplicationBuilder) WithSeasonID(seasonID uuid.UUID) *ApplicationBuilder {
	a.SeasonID = seasonID
	return a
}

func (a *ApplicationBuilder) WithResourceID(resourceID uuid.UUID) *ApplicationBuilder {
	a.ResourceID = resourceID
	return a
}

func (a *ApplicationBuilder) WithCategory(category string) *ApplicationBuilder {
	a.Category = category
	return a
}

func (a *ApplicationBuilder) WithMemberCount(count int) *ApplicationBuilder {
	a.MemberCount = count
	return a
}

func (a *ApplicationBuilder) WithPreviousSeasons(count int) *ApplicationBuilder {
	a.PreviousSeasons = count
	return a
}

func (a *ApplicationBuilder) WithWindow(weekdays season.WeekdaySet, startMin, endMin int) *ApplicationBuilder {
	a.Weekdays = weekdays
	a.StartMin = startMin
	a.EndMin = endMin
	return a
}

func (a *ApplicationBuilder) WithSubmittedAt(t time.Time) *ApplicationBuilder {
	a.SubmittedAt = t
	return a
}
