package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// PurchaseRepository reads payment confirmations.
type PurchaseRepository struct {
	db *sqlx.DB
}

// NewPurchaseRepository constructs the repository.
func NewPurchaseRepository(db *sqlx.DB) *PurchaseRepository {
	return &PurchaseRepository{db: db}
}

// HasAccess reports whether any confirmed purchase grants the user access.
func (r *PurchaseRepository) HasAccess(ctx context.Context, userID string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM purchases WHERE user_id = $1 AND has_access = TRUE)`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, userID); err != nil {
		return false, fmt.Errorf("check purchase access: %w", err)
	}
	return exists, nil
}
