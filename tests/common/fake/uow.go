//go:build unit || e2e

// Package fake provides an in-memory shared.UnitOfWork for usecase tests.
// Within runs the callback directly; there is no transactionality to fake
// because commands must behave identically whether or not a retry happens.
package fake

import (
	"context"
	"time"

	"venuebook/internal/domain/availability"
	"venuebook/internal/domain/booking"
	"venuebook/internal/domain/pricing"
	"venuebook/internal/domain/resource"
	"venuebook/internal/domain/season"
	"venuebook/internal/infra"
	"venuebook/internal/pkg/errs"
	"venuebook/internal/usecase/shared"

	"github.com/google/uuid"
)

var errNoRows = errs.New("no rows in result set")

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, errNoRows, infra.KindNotFound)
}

type UnitOfWork struct {
	TX *Tx
	// WithinErr short-circuits Within before the callback runs.
	WithinErr error
}

func NewUnitOfWork() *UnitOfWork {
	reads := &Reads{}
	return &UnitOfWork{TX: &Tx{
		ResourcesRepo: &ResourceRepo{},
		BookingsRepo:  &BookingRepo{},
		CodesRepo:     &CodeRepo{},
		SeasonsRepo:   &SeasonRepo{},
		ReadsStub:     reads,
	}}
}

func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if u.WithinErr != nil {
		return u.WithinErr
	}
	return fn(ctx, u.TX)
}

func (u *UnitOfWork) Reads() shared.CommandReads {
	return u.TX.ReadsStub
}

type Tx struct {
	ResourcesRepo *ResourceRepo
	BookingsRepo  *BookingRepo
	CodesRepo     *CodeRepo
	SeasonsRepo   *SeasonRepo
	ReadsStub     *Reads
}

func (t *Tx) Resources() shared.ResourceRepository { return t.ResourcesRepo }
func (t *Tx) Bookings() shared.BookingRepository   { return t.BookingsRepo }
func (t *Tx) Codes() shared.CodeRepository         { return t.CodesRepo }
func (t *Tx) Seasons() shared.SeasonRepository     { return t.SeasonsRepo }
func (t *Tx) Reads() shared.CommandReads           { return t.ReadsStub }

// Reads serves canned state. A nil entity or a missing id reads as a
// repository not-found, mirroring the postgres stores.
type Reads struct {
	Resources map[uuid.UUID]*resource.Resource
	Bookings  map[uuid.UUID]*booking.Booking

	Blocking []availability.ExistingBooking
	Blocks   []availability.Block
	Leases   []season.Lease

	Config      *pricing.Config
	Assignments []pricing.GroupAssignment
	Weekday     []pricing.WeekdayPricing
	HolidayList []pricing.Holiday
	ServiceList []pricing.Service

	Code        *pricing.Code
	CodeUses    int
	HasBookings bool

	Rules        []season.PriorityRule
	Applications []season.Application

	// Err, when set, fails every read.
	Err error
}

func (r *Reads) ResourceByID(_ context.Context, id uuid.UUID) (*resource.Resource, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	if res, ok := r.Resources[id]; ok {
		return res, nil
	}
	return nil, notFound("resource not found")
}

func (r *Reads) BookingByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	if b, ok := r.Bookings[id]; ok {
		return b, nil
	}
	return nil, notFound("booking not found")
}

func (r *Reads) BlockingBookings(_ context.Context, _ uuid.UUID, _, _ time.Time) ([]availability.ExistingBooking, error) {
	return r.Blocking, r.Err
}

func (r *Reads) ActiveBlocks(_ context.Context, _ uuid.UUID) ([]availability.Block, error) {
	return r.Blocks, r.Err
}

func (r *Reads) ActiveLeases(_ context.Context, _ uuid.UUID) ([]season.Lease, error) {
	return r.Leases, r.Err
}

func (r *Reads) PricingConfig(_ context.Context, _ uuid.UUID) (*pricing.Config, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	if r.Config == nil {
		return nil, notFound("pricing config not found")
	}
	return r.Config, nil
}

func (r *Reads) GroupAssignments(_ context.Context, _, _ uuid.UUID, _ *uuid.UUID) ([]pricing.GroupAssignment, error) {
	return r.Assignments, r.Err
}

func (r *Reads) WeekdayPricing(_ context.Context, _ uuid.UUID) ([]pricing.WeekdayPricing, error) {
	return r.Weekday, r.Err
}

func (r *Reads) Holidays(_ context.Context, _ uuid.UUID) ([]pricing.Holiday, error) {
	return r.HolidayList, r.Err
}

func (r *Reads) Services(_ context.Context, _ uuid.UUID) ([]pricing.Service, error) {
	return r.ServiceList, r.Err
}

func (r *Reads) DiscountCode(_ context.Context, _ uuid.UUID, code string) (*pricing.Code, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	if r.Code == nil || r.Code.Code != code {
		return nil, notFound("discount code not found")
	}
	return r.Code, nil
}

func (r *Reads) CodeUsesByUser(_ context.Context, _, _ uuid.UUID) (int, error) {
	return r.CodeUses, r.Err
}

func (r *Reads) UserHasBookings(_ context.Context, _, _ uuid.UUID) (bool, error) {
	return r.HasBookings, r.Err
}

func (r *Reads) SeasonRules(_ context.Context, _ uuid.UUID) ([]season.PriorityRule, error) {
	return r.Rules, r.Err
}

func (r *Reads) SeasonApplications(_ context.Context, _, _ uuid.UUID) ([]season.Application, error) {
	return r.Applications, r.Err
}

// helpers to seed state

func (r *Reads) AddResource(res *resource.Resource) {
	if r.Resources == nil {
		r.Resources = map[uuid.UUID]*resource.Resource{}
	}
	r.Resources[res.ID()] = res
}

func (r *Reads) AddBooking(b *booking.Booking) {
	if r.Bookings == nil {
		r.Bookings = map[uuid.UUID]*booking.Booking{}
	}
	r.Bookings[b.ID()] = b
}

type ResourceRepo struct {
	Saved   []*resource.Resource
	SaveErr error
}

func (r *ResourceRepo) SaveHours(_ context.Context, res *resource.Resource) error {
	if r.SaveErr != nil {
		return r.SaveErr
	}
	r.Saved = append(r.Saved, res)
	return nil
}

type BookingRepo struct {
	Created   []*booking.Booking
	Updated   []*booking.Booking
	CreateErr error
	SaveErr   error
}

func (r *BookingRepo) Create(_ context.Context, b *booking.Booking) error {
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.Created = append(r.Created, b)
	return nil
}

func (r *BookingRepo) Save(_ context.Context, b *booking.Booking) error {
	if r.SaveErr != nil {
		return r.SaveErr
	}
	r.Updated = append(r.Updated, b)
	return nil
}

type CodeRepo struct {
	Increments []uuid.UUID
	Err        error
}

func (r *CodeRepo) IncrementUsage(_ context.Context, codeID, _ uuid.UUID) error {
	if r.Err != nil {
		return r.Err
	}
	r.Increments = append(r.Increments, codeID)
	return nil
}

type SeasonRepo struct {
	Rankings [][]season.RankedApplication
	Leases   []season.Lease
	Err      error
}

func (r *SeasonRepo) SaveRanking(_ context.Context, ranked []season.RankedApplication) error {
	if r.Err != nil {
		return r.Err
	}
	r.Rankings = append(r.Rankings, ranked)
	return nil
}

func (r *SeasonRepo) CreateLease(_ context.Context, lease season.Lease) error {
	if r.Err != nil {
		return r.Err
	}
	r.Leases = append(r.Leases, lease)
	return nil
}
