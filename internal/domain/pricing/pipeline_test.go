//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"venuebook/internal/domain/pricing"
	"venuebook/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-03-02 is a Monday, 2026-03-07 a Saturday.
var (
	mondayTen   = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	saturdayTen = time.Date(2026, 3, 7, 10, 0, 0, 0, time.UTC)
)

func calc() *pricing.Calculator {
	return pricing.NewCalculator(time.UTC)
}

func TestCalculate_BaseAmount(t *testing.T) {
	t.Run("hourly rate times duration", func(t *testing.T) {
		in, err := builder.NewPricingConfigBuilder().
			WithHourlyRate(100000).
			BuildInput(mondayTen, mondayTen.Add(2*time.Hour))
		require.NoError(t, err)

		bd, err := calc().Calculate(in)
		require.NoError(t, err)

		assert.Equal(t, int64(200000), bd.SubtotalCents)
		assert.Equal(t, int64(200000), bd.TotalCents)
		assert.Equal(t, "NOK", bd.Currency)
	})

	t.Run("fractional hours round to cents", func(t *testing.T) {
		in, err := builder.NewPricingConfigBuilder().
			WithHourlyRate(100000).
			BuildInput(mondayTen, mondayTen.Add(90*time.Minute))
		require.NoError(t, err)

		bd, err := calc().Calculate(in)
		require.NoError(t, err)
		assert.Equal(t, int64(150000), bd.TotalCents)
	})

	t.Run("slot pricing matches exact duration only", func(t *testing.T) {
		b := builder.NewPricingConfigBuilder().WithSlotOptions(
			pricing.SlotOption{DurationMin: 60, PriceCents: 80000},
			pricing.SlotOption{DurationMin: 120, PriceCents: 140000},
		)

		in, err := b.BuildInput(mondayTen, mondayTen.Add(2*time.Hour))
		require.NoError(t, err)
		bd, err := calc().Calculate(in)
		require.NoError(t, err)
		assert.Equal(t, int64(140000), bd.TotalCents)

		in, err = b.BuildInput(mondayTen, mondayTen.Add(90*time.Minute))
		require.NoError(t, err)
		_, err = calc().Calculate(in)
		assert.ErrorIs(t, err, pricing.ErrInvalidSlotOption)
	})

	t.Run("per person enforces attendee range", func(t *testing.T) {
		b := builder.NewPricingConfigBuilder().WithPeopleRange(10, 60)
		b.Type = pricing.PerPerson
		b.PricePerHourCents = 0

		in, err := b.BuildInput(mondayTen, mondayTen.Add(2*time.Hour))
		require.NoError(t, err)
		in.Attendees = 5

		_, err = calc().Calculate(in)
		assert.ErrorIs(t, err, pricing.ErrAttendeesOutOfRange)
	})

	t.Run("tickets multiply base by quantity", func(t *testing.T) {
		b := builder.NewPricingConfigBuilder()
		b.Type = pricing.Tickets
		b.BasePriceCents = 15000

		in, err := b.BuildInput(mondayTen, mondayTen.Add(2*time.Hour))
		require.NoError(t, err)
		in.Quantity = 4

		bd, err := calc().Calculate(in)
		require.NoError(t, err)
		assert.Equal(t, int64(60000), bd.TotalCents)
	})
}

func TestCalculate_Surcharges(t *testing.T) {
	t.Run("weekend multiplier on Saturday", func(t *testing.T) {
		in, err := builder.NewPricingConfigBuilder().
			WithHourlyRate(100000).
			WithWeekendMultiplier(1.5).
			BuildInput(saturdayTen, saturdayTen.Add(2*time.Hour))
		require.NoError(t, err)

		bd, err := calc().Calculate(in)
		require.NoError(t, err)

		assert.Equal(t, int64(200000), bd.SubtotalCents)
		require.Len(t, bd.Surcharges, 1)
		assert.Equal(t, "weekend", bd.Surcharges[0].Label)
		assert.Equal(t, int64(100000), bd.Surcharges[0].AmountCents)
		assert.Equal(t, int64(300000), bd.TotalCents)
	})

	t.Run("weekend multiplier silent on a weekday", func(t *testing.T) {
		in, err := builder.NewPricingConfigBuilder().
			WithHourlyRate(100000).
			WithWeekendMultiplier(1.5).
			BuildInput(mondayTen, mondayTen.Add(2*time.Hour))
		require.NoError(t, err)

		bd, err := calc().Calculate(in)
		require.NoError(t, err)
		assert.Empty(t, bd.Surcharges)
		assert.Equal(t, int64(200000), bd.TotalCents)
	})

	t.Run("weekday records compound on the running total", func(t *testing.T) {
		in, err := builder.NewPricingConfigBuilder().
			WithHourlyRate(100000).
			WithWeekendMultiplier(1.5).
			BuildInput(saturdayTen, saturdayTen.Add(2*time.Hour))
		require.NoError(t, err)
		in.Weekday = []pricing.WeekdayPricing{{
			ID:        uuid.New(),
			Weekday:   time.Saturday,
			Surcharge: pricing.SurchargePercent,
			Value:     10,
		}}

		bd, err := calc().Calculate(in)
		require.NoError(t, err)

		// 200000 -> weekend 300000 -> +10% of 300000
		require.Len(t, bd.Surcharges, 2)
		assert.Equal(t, int64(30000), bd.Surcharges[1].AmountCents)
		assert.Equal(t, int64(330000), bd.TotalCents)
	})

	t.Run("recurring holiday falls back to config multiplier", func(t *testing.T) {
		in, err := builder.NewPricingConfigBuilder().
			WithHourlyRate(100000).
			WithHolidayMultiplier(2.0).
			BuildInput(mondayTen, mondayTen.Add(time.Hour))
		require.NoError(t, err)
		in.Holidays = []pricing.Holiday{{
			ID:        uuid.New(),
			Name:      "spring day",
			Recurring: "03-02",
		}}

		bd, err := calc().Calculate(in)
		require.NoError(t, err)

		require.Len(t, bd.Surcharges, 1)
		assert.Equal(t, "spring day", bd.Surcharges[0].Label)
		assert.Equal(t, int64(200000), bd.TotalCents)
	})

	t.Run("holiday on another date does not fire", func(t *testing.T) {
		in, err := builder.NewPricingConfigBuilder().
			WithHourlyRate(100000).
			WithHolidayMultiplier(2.0).
			BuildInput(mondayTen, mondayTen.Add(time.Hour))
		require.NoError(t, err)
		in.Holidays = []pricing.Holiday{{
			ID:        uuid.New(),
			Name:      "constitution day",
			Recurring: "05-17",
		}}

		bd, err := calc().Calculate(in)
		require.NoError(t, err)
		assert.Empty(t, bd.Surcharges)
	})

	t.Run("peak multiplier applies inside the window only", func(t *testing.T) {
		b := builder.NewPricingConfigBuilder().
			WithHourlyRate(100000).
			WithPeakWindow(17*60, 21*60, 1.2)

		evening := time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)
		in, err := b.BuildInput(evening, evening.Add(time.Hour))
		require.NoError(t, err)
		bd, err := calc().Calculate(in)
		require.NoError(t, err)
		assert.Equal(t, int64(120000), bd.TotalCents)

		in, err = b.BuildInput(mondayTen, mondayTen.Add(time.Hour))
		require.NoError(t, err)
		bd, err = calc().Calculate(in)
		require.NoError(t, err)
		assert.Equal(t, int64(100000), bd.TotalCents)
	})
}

func TestCalculate_Groups(t *testing.T) {
	percent := func(v float64) *float64 { return &v }

	t.Run("user scope beats organization scope", func(t *testing.T) {
		in, err := builder.NewPricingConfigBuilder().
			WithHourlyRate(100000).
			WithPriceGroups().
			BuildInput(mondayTen, mondayTen.Add(time.Hour))
		require.NoError(t, err)

		userGroup := pricing.Group{ID: uuid.New(), Name: "staff", DiscountPercent: percent(50)}
		orgGroup := pricing.Group{ID: uuid.New(), Name: "partner", DiscountPercent: percent(10)}
		in.Groups = []pricing.GroupAssignment{
			{Group: orgGroup, Scope: pricing.ScopeOrganization},
			{Group: userGroup, Scope: pricing.ScopeUser},
		}

		bd, err := calc().Calculate(in)
		require.NoError(t, err)

		require.NotNil(t, bd.AppliedGroupID)
		assert.Equal(t, userGroup.ID, *bd.AppliedGroupID)
		assert.Equal(t, int64(50000), bd.TotalCents)
	})

	t.Run("groups ignored unless enabled", func(t *testing.T) {
		in, err := builder.NewPricingConfigBuilder().
			WithHourlyRate(100000).
			BuildInput(mondayTen, mondayTen.Add(time.Hour))
		require.NoError(t, err)
		in.Groups = []pricing.GroupAssignment{{
			Group: pricing.Group{ID: uuid.New(), Name: "staff", DiscountPercent: percent(50)},
			Scope: pricing.ScopeUser,
		}}

		bd, err := calc().Calculate(in)
		require.NoError(t, err)
		assert.Nil(t, bd.AppliedGroupID)
		assert.Equal(t, int64(100000), bd.TotalCents)
	})
}

func TestCalculate_DiscountCodes(t *testing.T) {
	newCode := func(typ pricing.CodeType, value float64) *pricing.Code {
		return &pricing.Code{
			ID:    uuid.New(),
			Code:  "SPRING10",
			Type:  typ,
			Value: value,
		}
	}

	t.Run("percent code reduces the running total", func(t *testing.T) {
		in, err := builder.NewPricingConfigBuilder().
			WithHourlyRate(100000).
			WithDiscountCodes().
			BuildInput(mondayTen, mondayTen.Add(2*time.Hour))
		require.NoError(t, err)
		in.Code = newCode(pricing.CodePercent, 10)

		bd, err := calc().Calculate(in)
		require.NoError(t, err)

		require.Len(t, bd.Discounts, 1)
		assert.Equal(t, int64(20000), bd.Discounts[0].AmountCents)
		assert.Equal(t, int64(180000), bd.TotalCents)
	})

	t.Run("fixed code clamps at zero", func(t *testing.T) {
		in, err := builder.NewPricingConfigBuilder().
			WithHourlyRate(100000).
			WithDiscountCodes().
			BuildInput(mondayTen, mondayTen.Add(time.Hour))
		require.NoError(t, err)
		in.Code = newCode(pricing.CodeFixed, 5000000)

		bd, err := calc().Calculate(in)
		require.NoError(t, err)
		assert.Equal(t, int64(0), bd.TotalCents)
	})

	t.Run("free hours convert at the hourly rate", func(t *testing.T) {
		in, err := builder.NewPricingConfigBuilder().
			WithHourlyRate(100000).
			WithDiscountCodes().
			BuildInput(mondayTen, mondayTen.Add(3*time.Hour))
		require.NoError(t, err)
		in.Code = newCode(pricing.CodeFreeHours, 1)

		bd, err := calc().Calculate(in)
		require.NoError(t, err)
		assert.Equal(t, int64(200000), bd.TotalCents)
	})

	t.Run("code below minimum amount is refused", func(t *testing.T) {
		in, err := builder.NewPricingConfigBuilder().
			WithHourlyRate(100000).
			WithDiscountCodes().
			BuildInput(mondayTen, mondayTen.Add(time.Hour))
		require.NoError(t, err)
		code := newCode(pricing.CodePercent, 10)
		code.MinBookingAmountCents = 500000
		in.Code = code

		_, err = calc().Calculate(in)

		var codeErr *pricing.CodeError
		require.ErrorAs(t, err, &codeErr)
		assert.Equal(t, pricing.ReasonBelowMinimum, codeErr.Reason)
	})

	t.Run("expired code is refused", func(t *testing.T) {
		in, err := builder.NewPricingConfigBuilder().
			WithHourlyRate(100000).
			WithDiscountCodes().
			BuildInput(mondayTen, mondayTen.Add(time.Hour))
		require.NoError(t, err)
		code := newCode(pricing.CodePercent, 10)
		until := in.Now.Add(-time.Hour)
		code.ValidUntil = &until
		in.Code = code

		_, err = calc().Calculate(in)

		var codeErr *pricing.CodeError
		require.ErrorAs(t, err, &codeErr)
		assert.Equal(t, pricing.ReasonExpired, codeErr.Reason)
	})

	t.Run("code refused when codes are disabled", func(t *testing.T) {
		in, err := builder.NewPricingConfigBuilder().
			WithHourlyRate(100000).
			BuildInput(mondayTen, mondayTen.Add(time.Hour))
		require.NoError(t, err)
		in.Code = newCode(pricing.CodePercent, 10)

		_, err = calc().Calculate(in)

		var codeErr *pricing.CodeError
		require.ErrorAs(t, err, &codeErr)
		assert.Equal(t, pricing.ReasonRestricted, codeErr.Reason)
	})
}

func TestCalculate_ServicesAndTax(t *testing.T) {
	t.Run("selected services and fees add after discounts", func(t *testing.T) {
		in, err := builder.NewPricingConfigBuilder().
			WithHourlyRate(100000).
			BuildInput(mondayTen, mondayTen.Add(time.Hour))
		require.NoError(t, err)

		projector := pricing.Service{ID: uuid.New(), Name: "projector", PriceCents: 20000}
		catering := pricing.Service{ID: uuid.New(), Name: "catering", PriceCents: 50000, Required: true}
		in.Services = []pricing.Service{projector, catering}
		in.SelectedServiceIDs = []uuid.UUID{projector.ID}
		in.Config.CleaningFeeCents = 30000

		bd, err := calc().Calculate(in)
		require.NoError(t, err)

		// optional selected + required + cleaning fee
		assert.Equal(t, int64(100000), bd.ServicesCents)
		assert.Equal(t, int64(200000), bd.TotalCents)
	})

	t.Run("exclusive tax is added on top", func(t *testing.T) {
		in, err := builder.NewPricingConfigBuilder().
			WithHourlyRate(100000).
			WithTax(25, false).
			BuildInput(mondayTen, mondayTen.Add(time.Hour))
		require.NoError(t, err)

		bd, err := calc().Calculate(in)
		require.NoError(t, err)

		assert.Equal(t, int64(25000), bd.TaxCents)
		assert.Equal(t, int64(125000), bd.TotalCents)
	})

	t.Run("inclusive tax is extracted, total unchanged", func(t *testing.T) {
		in, err := builder.NewPricingConfigBuilder().
			WithHourlyRate(100000).
			WithTax(25, true).
			BuildInput(mondayTen, mondayTen.Add(time.Hour))
		require.NoError(t, err)

		bd, err := calc().Calculate(in)
		require.NoError(t, err)

		assert.Equal(t, int64(20000), bd.TaxCents)
		assert.Equal(t, int64(100000), bd.TotalCents)
		assert.True(t, bd.TaxIncluded)
	})

	t.Run("deposit is reported but never folded into the total", func(t *testing.T) {
		in, err := builder.NewPricingConfigBuilder().
			WithHourlyRate(100000).
			BuildInput(mondayTen, mondayTen.Add(time.Hour))
		require.NoError(t, err)
		in.Config.DepositCents = 500000

		bd, err := calc().Calculate(in)
		require.NoError(t, err)

		assert.Equal(t, int64(500000), bd.DepositCents)
		assert.Equal(t, int64(100000), bd.TotalCents)
	})
}

func TestCalculate_Deterministic(t *testing.T) {
	build := func() pricing.Input {
		in, err := builder.NewPricingConfigBuilder().
			WithHourlyRate(100000).
			WithWeekendMultiplier(1.5).
			WithDiscountCodes().
			WithTax(25, false).
			BuildInput(saturdayTen, saturdayTen.Add(2*time.Hour))
		require.NoError(t, err)
		in.Code = &pricing.Code{ID: uuid.New(), Code: "SPRING10", Type: pricing.CodePercent, Value: 10}
		return in
	}

	first, err := calc().Calculate(build())
	require.NoError(t, err)
	second, err := calc().Calculate(build())
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("identical inputs produced different breakdowns (-first +second):\n%s", diff)
	}
}
