package queries

import (
	"context"
	"errors"
	"time"

	"venuebook/internal/domain/availability"
	"venuebook/internal/domain/pricing"
	"venuebook/internal/domain/resource"
	"venuebook/internal/domain/schedule"
	"venuebook/internal/pkg/clock"
	"venuebook/internal/pkg/errs"
	"venuebook/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrResourceNotFound = errs.New("resource not found")

type AvailabilityParams struct {
	ResourceID uuid.UUID
	Start      time.Time
	End        time.Time
	Quantity   int
	Exclude    *uuid.UUID
}

type QuoteParams struct {
	ResourceID     uuid.UUID
	UserID         uuid.UUID
	OrganizationID *uuid.UUID
	Start          time.Time
	End            time.Time
	Quantity       int
	Attendees      int
	DiscountCode   *string
	ServiceIDs     []uuid.UUID
}

// EngineQueries answers grid, availability and quote questions from
// non-transactional reads. Results are advisory; commands re-run the same
// pure checks inside the committing transaction.
type EngineQueries interface {
	DayGrid(ctx context.Context, resourceID uuid.UUID, weekday time.Weekday) (*DayGridView, error)
	Availability(ctx context.Context, p AvailabilityParams) (*AvailabilityView, error)
	Quote(ctx context.Context, p QuoteParams) (*pricing.Breakdown, error)
}

type engineQueriesImpl struct {
	reads    shared.CommandReads
	checker  *availability.Checker
	calc     *pricing.Calculator
	clock    clock.Clock
	currency string
	loc      *time.Location
}

func NewEngineQueries(
	reads shared.CommandReads,
	checker *availability.Checker,
	calc *pricing.Calculator,
	clk clock.Clock,
	currency string,
	loc *time.Location,
) EngineQueries {
	return &engineQueriesImpl{
		reads:    reads,
		checker:  checker,
		calc:     calc,
		clock:    clk,
		currency: currency,
		loc:      loc,
	}
}

func (q *engineQueriesImpl) DayGrid(ctx context.Context, resourceID uuid.UUID, weekday time.Weekday) (*DayGridView, error) {
	res, err := q.reads.ResourceByID(ctx, resourceID)
	if err != nil {
		return nil, shared.MarkNotFound(err, ErrResourceNotFound)
	}

	slots, err := scheduleDayGrid(res, weekday)
	if err != nil {
		return nil, err
	}
	return &DayGridView{Weekday: int(weekday), Slots: slots}, nil
}

func (q *engineQueriesImpl) Availability(ctx context.Context, p AvailabilityParams) (*AvailabilityView, error) {
	res, err := q.reads.ResourceByID(ctx, p.ResourceID)
	if err != nil {
		return nil, shared.MarkNotFound(err, ErrResourceNotFound)
	}

	slot, err := shared.NormalizeSlot(res.Mode(), p.Start, p.End, q.loc)
	if err != nil {
		return nil, err
	}
	quantity := p.Quantity
	if quantity < 1 {
		quantity = 1
	}

	from, to := shared.FetchWindow(slot, q.loc)
	bookings, err := q.reads.BlockingBookings(ctx, res.ID(), from, to)
	if err != nil {
		return nil, err
	}

	req := availability.Request{Candidate: slot, Quantity: quantity, Exclude: p.Exclude}

	var result availability.Result
	if res.Mode().IntervalBased() {
		blocks, err := q.reads.ActiveBlocks(ctx, res.ID())
		if err != nil {
			return nil, err
		}
		leases, err := q.reads.ActiveLeases(ctx, res.ID())
		if err != nil {
			return nil, err
		}
		result, err = q.checker.Check(res, req, bookings, blocks, leases)
		if err != nil {
			return nil, err
		}
	} else {
		result, err = q.checker.Check(res, req, bookings, nil, nil)
		// Capacity shortfall is an answer here, not a failure.
		if err != nil && !errors.Is(err, availability.ErrCapacityExceeded) {
			return nil, err
		}
	}

	view := &AvailabilityView{Available: result.Available, Remaining: result.Remaining}
	for _, c := range result.Conflicts {
		view.Conflicts = append(view.Conflicts, ConflictView{
			Kind:     string(c.Kind),
			SourceID: c.SourceID,
			Start:    c.Slot.Start(),
			End:      c.Slot.End(),
		})
	}
	return view, nil
}

func scheduleDayGrid(res *resource.Resource, weekday time.Weekday) ([]string, error) {
	slotMin := res.SlotDurationMin()
	if slotMin <= 0 {
		return []string{}, nil
	}
	starts, err := schedule.DayGrid(res.Hours(), slotMin, weekday)
	if err != nil {
		return nil, err
	}
	slots := make([]string, 0, len(starts))
	for _, s := range starts {
		slots = append(slots, s.String())
	}
	return slots, nil
}

// Quote prices a hypothetical booking without redeeming discount usage.
func (q *engineQueriesImpl) Quote(ctx context.Context, p QuoteParams) (*pricing.Breakdown, error) {
	res, err := q.reads.ResourceByID(ctx, p.ResourceID)
	if err != nil {
		return nil, shared.MarkNotFound(err, ErrResourceNotFound)
	}

	slot, err := shared.NormalizeSlot(res.Mode(), p.Start, p.End, q.loc)
	if err != nil {
		return nil, err
	}
	quantity := p.Quantity
	if quantity < 1 {
		quantity = 1
	}

	in, _, err := shared.AssemblePricingInput(ctx, q.reads, res, slot, shared.PricingParty{
		UserID:     p.UserID,
		OrgID:      p.OrganizationID,
		Quantity:   quantity,
		Attendees:  p.Attendees,
		Code:       p.DiscountCode,
		ServiceIDs: p.ServiceIDs,
	}, q.clock.Now(), q.currency)
	if err != nil {
		return nil, err
	}
	return q.calc.Calculate(in)
}
