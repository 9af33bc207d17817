//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursor(t *testing.T) {
	t.Run("round trip keeps microsecond precision", func(t *testing.T) {
		id := uuid.New()
		at := time.Date(2026, 3, 2, 10, 30, 45, 123456000, time.UTC)

		cursor := queries.EncodeAfterCursor(at, id)
		gotTime, gotID, err := queries.DecodeAfterCursor(cursor)
		require.NoError(t, err)

		assert.True(t, gotTime.Equal(at))
		assert.Equal(t, id, gotID)
	})

	t.Run("empty cursor", func(t *testing.T) {
		_, _, err := queries.DecodeAfterCursor("")
		assert.Error(t, err)
	})

	t.Run("not base64", func(t *testing.T) {
		_, _, err := queries.DecodeAfterCursor("not-base64!!")
		assert.Error(t, err)
	})

	t.Run("unknown version prefix", func(t *testing.T) {
		raw := base64.URLEncoding.EncodeToString([]byte("v9:123-" + uuid.NewString()))
		_, _, err := queries.DecodeAfterCursor(raw)
		assert.Error(t, err)
	})

	t.Run("garbage payload", func(t *testing.T) {
		raw := base64.URLEncoding.EncodeToString([]byte("v1:notanumber"))
		_, _, err := queries.DecodeAfterCursor(raw)
		assert.Error(t, err)
	})
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, 20, queries.ValidateLimit(0))
	assert.Equal(t, 20, queries.ValidateLimit(-5))
	assert.Equal(t, 50, queries.ValidateLimit(50))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(100000))
}
