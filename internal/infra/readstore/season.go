package readstore

import (
	"context"

	"venuebook/internal/domain/season"
	"venuebook/internal/infra"
	"venuebook/internal/infra/db"
	"venuebook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SeasonReadStore struct {
	db db.DBTX
}

func NewSeasonReadStore(dbtx db.DBTX) *SeasonReadStore {
	return &SeasonReadStore{db: dbtx}
}

const seasonRulesQuery = `
SELECT season_id, field, operator, value, weight
FROM season_priority_rules
WHERE season_id = $1
ORDER BY weight DESC, field`

const seasonApplicationsQuery = `
SELECT id, season_id, resource_id, organization_id, category,
       member_count, previous_seasons, start_date, end_date,
       weekdays, start_min, end_min, submitted_at
FROM season_applications
WHERE season_id = $1 AND resource_id = $2 AND status = 'pending'
ORDER BY submitted_at`

func (r *SeasonReadStore) Rules(ctx context.Context, seasonID uuid.UUID) ([]season.PriorityRule, error) {
	rows, err := r.db.Query(ctx, seasonRulesQuery, seasonID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load season priority rules", err)
	}
	defer rows.Close()

	var rules []season.PriorityRule
	for rows.Next() {
		var rule season.PriorityRule
		if err := rows.Scan(&rule.SeasonID, &rule.Field, &rule.Operator, &rule.Value, &rule.Weight); err != nil {
			return nil, infra.WrapRepoErr("failed to scan priority rule", err)
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read priority rules", err)
	}
	return rules, nil
}

func (r *SeasonReadStore) Applications(ctx context.Context, seasonID, resourceID uuid.UUID) ([]season.Application, error) {
	rows, err := r.db.Query(ctx, seasonApplicationsQuery, seasonID, resourceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load season applications", err)
	}
	defer rows.Close()

	var apps []season.Application
	for rows.Next() {
		var (
			app                             season.Application
			startDate, endDate, submittedAt pgtype.Timestamptz
			weekdays                        int
		)
		if err := rows.Scan(
			&app.ID, &app.SeasonID, &app.ResourceID, &app.OrganizationID, &app.Category,
			&app.MemberCount, &app.PreviousSeasons, &startDate, &endDate,
			&weekdays, &app.StartMin, &app.EndMin, &submittedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan season application", err)
		}
		app.StartDate = pgconv.TimeFromPgtype(startDate)
		app.EndDate = pgconv.TimeFromPgtype(endDate)
		app.SubmittedAt = pgconv.TimeFromPgtype(submittedAt)
		app.Weekdays = season.WeekdaySet(weekdays)
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read season applications", err)
	}
	return apps, nil
}
