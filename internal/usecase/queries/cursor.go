package queries

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"venuebook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidCursor = errs.New("invalid cursor")

const (
	MaxListLimit    = 200
	cursorVersionV1 = "v1"
)

// Uses microsecond precision to align with PostgreSQL timestamp precision
func EncodeAfterCursor(t time.Time, id uuid.UUID) string {
	payload := fmt.Sprintf("%s:%d-%s", cursorVersionV1, t.UnixMicro(), id.String())
	return base64.URLEncoding.EncodeToString([]byte(payload))
}

func DecodeAfterCursor(cursor string) (time.Time, uuid.UUID, error) {
	if cursor == "" {
		return time.Time{}, uuid.Nil, fmt.Errorf("cursor cannot be empty")
	}

	decoded, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, uuid.Nil, fmt.Errorf("invalid cursor encoding: %w", err)
	}
	payload, ok := strings.CutPrefix(string(decoded), cursorVersionV1+":")
	if !ok {
		return time.Time{}, uuid.Nil, fmt.Errorf("unknown cursor version")
	}

	parts := strings.SplitN(payload, "-", 2)
	if len(parts) != 2 {
		return time.Time{}, uuid.Nil, fmt.Errorf("invalid cursor format: expected '<micros>-<uuid>'")
	}

	micros, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return time.Time{}, uuid.Nil, fmt.Errorf("invalid timestamp: %w", err)
	}

	id, err := uuid.Parse(parts[1])
	if err != nil {
		return time.Time{}, uuid.Nil, fmt.Errorf("invalid UUID: %w", err)
	}

	return time.UnixMicro(micros), id, nil
}

type Cursor struct {
	After string `json:"after,omitempty"`
}

// AfterKey is the decoded keyset position a cursor names: list rows
// strictly before (CreatedAt, ID) in descending order.
type AfterKey struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

func afterKey(c *Cursor) (*AfterKey, error) {
	if c == nil || c.After == "" {
		return nil, nil
	}
	ts, id, err := DecodeAfterCursor(c.After)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCursor)
	}
	return &AfterKey{CreatedAt: ts, ID: id}, nil
}

// nextCursor points past the last row of a full page. A short page is the
// final one and yields no cursor.
func nextCursor(rows []*BookingListItem, limit int) *Cursor {
	if len(rows) < limit {
		return nil
	}
	last := rows[len(rows)-1]
	return &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return 20 // default limit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
