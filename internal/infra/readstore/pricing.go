package readstore

import (
	"context"
	"time"

	"venuebook/internal/domain/pricing"
	"venuebook/internal/domain/resource"
	"venuebook/internal/infra"
	"venuebook/internal/infra/db"
	"venuebook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PricingReadStore struct {
	db db.DBTX
}

func NewPricingReadStore(dbtx db.DBTX) *PricingReadStore {
	return &PricingReadStore{db: dbtx}
}

const pricingConfigQuery = `
SELECT id, resource_id, group_id, price_type, base_price_cents,
       price_per_hour_cents, price_per_day_cents, price_per_half_day_cents,
       price_per_person_cents, price_per_person_hour_cents,
       min_people, max_people,
       deposit_cents, cleaning_fee_cents, service_fee_cents,
       weekend_multiplier, peak_multiplier, holiday_multiplier,
       peak_start_min, peak_end_min,
       tax_rate, tax_included,
       enable_discount_codes, enable_surcharges, enable_price_groups,
       currency
FROM pricing_configs
WHERE resource_id = $1`

const slotOptionsQuery = `
SELECT duration_min, price_cents
FROM pricing_slot_options
WHERE config_id = $1
ORDER BY duration_min`

func (r *PricingReadStore) ConfigByResource(ctx context.Context, resourceID uuid.UUID) (*pricing.Config, error) {
	var (
		cfg     pricing.Config
		groupID pgtype.UUID
	)
	err := r.db.QueryRow(ctx, pricingConfigQuery, resourceID).Scan(
		&cfg.ID, &cfg.ResourceID, &groupID, &cfg.Type, &cfg.BasePriceCents,
		&cfg.PricePerHourCents, &cfg.PricePerDayCents, &cfg.PricePerHalfDayCents,
		&cfg.PricePerPersonCents, &cfg.PricePerPersonHourCents,
		&cfg.MinPeople, &cfg.MaxPeople,
		&cfg.DepositCents, &cfg.CleaningFeeCents, &cfg.ServiceFeeCents,
		&cfg.WeekendMultiplier, &cfg.PeakMultiplier, &cfg.HolidayMultiplier,
		&cfg.PeakStartMin, &cfg.PeakEndMin,
		&cfg.TaxRate, &cfg.TaxIncluded,
		&cfg.EnableDiscountCodes, &cfg.EnableSurcharges, &cfg.EnablePriceGroups,
		&cfg.Currency,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pricing config not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find pricing config", err)
	}
	cfg.GroupID = pgconv.UUIDPtrFromPgtype(groupID)

	rows, err := r.db.Query(ctx, slotOptionsQuery, cfg.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load slot options", err)
	}
	defer rows.Close()
	for rows.Next() {
		var opt pricing.SlotOption
		if err := rows.Scan(&opt.DurationMin, &opt.PriceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot option", err)
		}
		cfg.SlotOptions = append(cfg.SlotOptions, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read slot options", err)
	}

	return &cfg, nil
}

// Tenant defaults come back with scope 'tenant'; direct assignments carry
// the subject they were attached to.
const groupAssignmentsQuery = `
SELECT g.id, g.tenant_id, g.name, g.discount_percent, g.discount_amount_cents,
       g.priority, g.is_default, a.scope
FROM price_groups g
JOIN (
	SELECT group_id, 'user' AS scope
	FROM price_group_assignments
	WHERE subject_type = 'user' AND subject_id = $2
	UNION ALL
	SELECT group_id, 'organization' AS scope
	FROM price_group_assignments
	WHERE subject_type = 'organization' AND subject_id = $3
	UNION ALL
	SELECT id AS group_id, 'tenant' AS scope
	FROM price_groups
	WHERE tenant_id = $1 AND is_default = TRUE
) a ON a.group_id = g.id
WHERE g.tenant_id = $1`

func (r *PricingReadStore) GroupAssignments(ctx context.Context, tenantID, userID uuid.UUID, orgID *uuid.UUID) ([]pricing.GroupAssignment, error) {
	rows, err := r.db.Query(ctx, groupAssignmentsQuery, tenantID, userID, pgconv.UUIDPtrToPgtype(orgID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load price group assignments", err)
	}
	defer rows.Close()

	var assignments []pricing.GroupAssignment
	for rows.Next() {
		var (
			g               pricing.Group
			discountPercent pgtype.Float8
			discountAmount  pgtype.Int8
			scope           string
		)
		if err := rows.Scan(&g.ID, &g.TenantID, &g.Name, &discountPercent, &discountAmount, &g.Priority, &g.IsDefault, &scope); err != nil {
			return nil, infra.WrapRepoErr("failed to scan price group", err)
		}
		if g.DiscountPercent, err = pgconv.Float64PtrFromPgtype(discountPercent); err != nil {
			return nil, infra.WrapRepoErr("invalid stored discount percent", err)
		}
		g.DiscountAmountCents = pgconv.Int64PtrFromPgtype(discountAmount)

		assignments = append(assignments, pricing.GroupAssignment{Group: g, Scope: scopeFromColumn(scope)})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read price group assignments", err)
	}
	return assignments, nil
}

func scopeFromColumn(scope string) pricing.GroupScope {
	switch scope {
	case "user":
		return pricing.ScopeUser
	case "organization":
		return pricing.ScopeOrganization
	default:
		return pricing.ScopeTenantDefault
	}
}

const weekdayPricingQuery = `
SELECT id, weekday, start_min, end_min, surcharge_type, value, resource_ids
FROM weekday_pricing
WHERE tenant_id = $1`

func (r *PricingReadStore) WeekdayPricing(ctx context.Context, tenantID uuid.UUID) ([]pricing.WeekdayPricing, error) {
	rows, err := r.db.Query(ctx, weekdayPricingQuery, tenantID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load weekday pricing", err)
	}
	defer rows.Close()

	var records []pricing.WeekdayPricing
	for rows.Next() {
		var (
			w       pricing.WeekdayPricing
			weekday int
		)
		if err := rows.Scan(&w.ID, &weekday, &w.StartMin, &w.EndMin, &w.Surcharge, &w.Value, &w.ResourceIDs); err != nil {
			return nil, infra.WrapRepoErr("failed to scan weekday pricing", err)
		}
		w.Weekday = time.Weekday(weekday)
		records = append(records, w)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read weekday pricing", err)
	}
	return records, nil
}

const holidaysQuery = `
SELECT id, name, holiday_date, recurring, surcharge_type, value, category_ids, resource_ids
FROM holidays
WHERE tenant_id = $1`

func (r *PricingReadStore) Holidays(ctx context.Context, tenantID uuid.UUID) ([]pricing.Holiday, error) {
	rows, err := r.db.Query(ctx, holidaysQuery, tenantID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load holidays", err)
	}
	defer rows.Close()

	var holidays []pricing.Holiday
	for rows.Next() {
		var (
			h         pricing.Holiday
			date      pgtype.Timestamptz
			recurring pgtype.Text
		)
		if err := rows.Scan(&h.ID, &h.Name, &date, &recurring, &h.Surcharge, &h.Value, &h.CategoryIDs, &h.ResourceIDs); err != nil {
			return nil, infra.WrapRepoErr("failed to scan holiday", err)
		}
		h.Date = pgconv.TimePtrFromPgtype(date)
		h.Recurring = recurring.String
		holidays = append(holidays, h)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read holidays", err)
	}
	return holidays, nil
}

const servicesQuery = `
SELECT id, resource_id, name, price_cents, required
FROM services
WHERE resource_id = $1
ORDER BY name`

func (r *PricingReadStore) Services(ctx context.Context, resourceID uuid.UUID) ([]pricing.Service, error) {
	rows, err := r.db.Query(ctx, servicesQuery, resourceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load services", err)
	}
	defer rows.Close()

	var services []pricing.Service
	for rows.Next() {
		var s pricing.Service
		if err := rows.Scan(&s.ID, &s.ResourceID, &s.Name, &s.PriceCents, &s.Required); err != nil {
			return nil, infra.WrapRepoErr("failed to scan service", err)
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read services", err)
	}
	return services, nil
}

const discountCodeQuery = `
SELECT id, tenant_id, code, code_type, value,
       max_uses_total, max_uses_per_user, current_uses,
       category_ids, resource_ids, org_ids, user_ids, group_ids, modes,
       min_booking_amount_cents, min_duration_min, first_time_bookers_only,
       valid_from, valid_until
FROM discount_codes
WHERE tenant_id = $1 AND code = $2`

func (r *PricingReadStore) CodeByCode(ctx context.Context, tenantID uuid.UUID, code string) (*pricing.Code, error) {
	var (
		c                     pricing.Code
		modes                 []string
		validFrom, validUntil pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, discountCodeQuery, tenantID, code).Scan(
		&c.ID, &c.TenantID, &c.Code, &c.Type, &c.Value,
		&c.MaxUsesTotal, &c.MaxUsesPerUser, &c.CurrentUses,
		&c.CategoryIDs, &c.ResourceIDs, &c.OrgIDs, &c.UserIDs, &c.GroupIDs, &modes,
		&c.MinBookingAmountCents, &c.MinDurationMin, &c.FirstTimeBookersOnly,
		&validFrom, &validUntil,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("discount code not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find discount code", err)
	}
	for _, m := range modes {
		c.Modes = append(c.Modes, resource.BookingMode(m))
	}
	c.ValidFrom = pgconv.TimePtrFromPgtype(validFrom)
	c.ValidUntil = pgconv.TimePtrFromPgtype(validUntil)
	return &c, nil
}

const codeUsesByUserQuery = `
SELECT COUNT(*) FROM discount_code_uses
WHERE code_id = $1 AND user_id = $2`

func (r *PricingReadStore) CodeUsesByUser(ctx context.Context, codeID, userID uuid.UUID) (int, error) {
	var uses int
	if err := r.db.QueryRow(ctx, codeUsesByUserQuery, codeID, userID).Scan(&uses); err != nil {
		return 0, infra.WrapRepoErr("failed to count code uses", err)
	}
	return uses, nil
}
