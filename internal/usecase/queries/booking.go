package queries

import (
	"context"

	"github.com/google/uuid"
)

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, after *Cursor, limit int) ([]*BookingListItem, *Cursor, error)
	ListByResource(ctx context.Context, resourceID uuid.UUID, after *Cursor, limit int) ([]*BookingListItem, *Cursor, error)
}

type BookingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUserIDPaginated(ctx context.Context, userID uuid.UUID, limit int32, after *AfterKey) ([]*BookingListItem, error)
	FindByResourceIDPaginated(ctx context.Context, resourceID uuid.UUID, limit int32, after *AfterKey) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	repo BookingViewRepo
}

func NewBookingQueries(repo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	return q.repo.FindByID(ctx, id)
}

// Lists page by keyset over (created_at, id) descending; the opaque cursor
// names the last row the caller saw.
func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, after *Cursor, limit int) ([]*BookingListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	key, err := afterKey(after)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.repo.FindByUserIDPaginated(ctx, userID, int32(limit), key)
	if err != nil {
		return nil, nil, err
	}
	return rows, nextCursor(rows, limit), nil
}

func (q *bookingQueriesImpl) ListByResource(ctx context.Context, resourceID uuid.UUID, after *Cursor, limit int) ([]*BookingListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	key, err := afterKey(after)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.repo.FindByResourceIDPaginated(ctx, resourceID, int32(limit), key)
	if err != nil {
		return nil, nil, err
	}
	return rows, nextCursor(rows, limit), nil
}
