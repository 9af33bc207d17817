package repository

import (
	"context"

	"venuebook/internal/infra"
	"venuebook/internal/infra/db"

	"github.com/google/uuid"
)

type CodeRepository struct {
	db db.DBTX
}

func NewCodeRepository(dbtx db.DBTX) *CodeRepository {
	return &CodeRepository{db: dbtx}
}

const recordCodeUseQuery = `
INSERT INTO discount_code_uses (id, code_id, user_id, used_at)
VALUES ($1, $2, $3, now())`

const bumpCodeUsesQuery = `
UPDATE discount_codes SET current_uses = current_uses + 1
WHERE id = $1`

// IncrementUsage bumps both the total counter and the per-user ledger
// inside the caller's transaction.
func (r *CodeRepository) IncrementUsage(ctx context.Context, codeID, userID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, recordCodeUseQuery, uuid.New(), codeID, userID); err != nil {
		return classifyWriteErr("failed to record code use", err)
	}
	if _, err := r.db.Exec(ctx, bumpCodeUsesQuery, codeID); err != nil {
		return infra.WrapRepoErr("failed to bump code usage", err)
	}
	return nil
}
