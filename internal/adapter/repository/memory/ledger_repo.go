package memory

import (
	"context"

	"github.com/shopspring/decimal"
)

// LedgerRepository implements usecase.LedgerRepository.
type LedgerRepository struct {
	store *AccountStore
}

// NewLedgerRepository creates a new LedgerRepository.
func NewLedgerRepository(store *AccountStore) *LedgerRepository {
	return &LedgerRepository{store: store}
}

// CheckConsistency returns the sum of all balances and the running total
// maintained by commits.
func (r *LedgerRepository) CheckConsistency(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	if err := ctx.Err(); err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	sum, tracked, _ := r.store.totals()
	return sum, tracked, nil
}

// CountNegative returns the number of accounts with a negative balance.
func (r *LedgerRepository) CountNegative(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	_, _, negative := r.store.totals()
	return negative, nil
}
