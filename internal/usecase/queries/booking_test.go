//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBookingViewRepo records the keyset position it was asked for and
// returns a canned page.
type stubBookingViewRepo struct {
	gotAfter *queries.AfterKey
	gotLimit int32
	rows     []*queries.BookingListItem
}

func (s *stubBookingViewRepo) FindByID(context.Context, uuid.UUID) (*queries.BookingView, error) {
	return nil, nil
}

func (s *stubBookingViewRepo) FindByUserIDPaginated(_ context.Context, _ uuid.UUID, limit int32, after *queries.AfterKey) ([]*queries.BookingListItem, error) {
	s.gotAfter = after
	s.gotLimit = limit
	return s.rows, nil
}

func (s *stubBookingViewRepo) FindByResourceIDPaginated(_ context.Context, _ uuid.UUID, limit int32, after *queries.AfterKey) ([]*queries.BookingListItem, error) {
	s.gotAfter = after
	s.gotLimit = limit
	return s.rows, nil
}

func listItemAt(at time.Time) *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:           uuid.New(),
		ResourceID:   uuid.New(),
		ResourceName: "Main Hall",
		StartTime:    at,
		EndTime:      at.Add(2 * time.Hour),
		Status:       "confirmed",
		PriceCents:   200000,
		CreatedAt:    at,
	}
}

func TestListByUserPagination(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	base := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	t.Run("first page passes no keyset position", func(t *testing.T) {
		repo := &stubBookingViewRepo{rows: []*queries.BookingListItem{listItemAt(base)}}
		q := queries.NewBookingQueries(repo)

		rows, next, err := q.ListByUser(ctx, userID, nil, 20)
		require.NoError(t, err)

		assert.Nil(t, repo.gotAfter)
		assert.Equal(t, int32(20), repo.gotLimit)
		assert.Len(t, rows, 1)
		assert.Nil(t, next)
	})

	t.Run("full page yields a cursor naming the last row", func(t *testing.T) {
		rows := []*queries.BookingListItem{listItemAt(base), listItemAt(base.Add(-time.Hour))}
		repo := &stubBookingViewRepo{rows: rows}
		q := queries.NewBookingQueries(repo)

		got, next, err := q.ListByUser(ctx, userID, nil, 2)
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.NotNil(t, next)

		at, id, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.True(t, at.Equal(rows[1].CreatedAt))
		assert.Equal(t, rows[1].ID, id)
	})

	t.Run("cursor is decoded into the repo's keyset position", func(t *testing.T) {
		lastID := uuid.New()
		lastAt := base.Add(-3 * time.Hour)
		repo := &stubBookingViewRepo{}
		q := queries.NewBookingQueries(repo)

		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(lastAt, lastID)}
		_, next, err := q.ListByUser(ctx, userID, cursor, 2)
		require.NoError(t, err)

		require.NotNil(t, repo.gotAfter)
		assert.True(t, repo.gotAfter.CreatedAt.Equal(lastAt))
		assert.Equal(t, lastID, repo.gotAfter.ID)
		assert.Nil(t, next) // empty page ends the listing
	})

	t.Run("malformed cursor is rejected before hitting the repo", func(t *testing.T) {
		repo := &stubBookingViewRepo{}
		q := queries.NewBookingQueries(repo)

		_, _, err := q.ListByUser(ctx, userID, &queries.Cursor{After: "garbage"}, 2)
		require.Error(t, err)
		assert.True(t, errors.Is(err, queries.ErrInvalidCursor))
		assert.Nil(t, repo.gotAfter)
		assert.Zero(t, repo.gotLimit)
	})

	t.Run("resource listing pages the same way", func(t *testing.T) {
		rows := []*queries.BookingListItem{listItemAt(base)}
		repo := &stubBookingViewRepo{rows: rows}
		q := queries.NewBookingQueries(repo)

		got, next, err := q.ListByResource(ctx, uuid.New(), nil, 1)
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.NotNil(t, next)
	})
}
