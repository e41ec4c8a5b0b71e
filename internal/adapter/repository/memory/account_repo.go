package memory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/pinledger/internal/domain"
	"github.com/iho/pinledger/internal/usecase"
)

// AccountRepository implements usecase.AccountRepository.
type AccountRepository struct {
	store *AccountStore
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(store *AccountStore) *AccountRepository {
	return &AccountRepository{store: store}
}

// GetByID retrieves an account by ID.
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	account, ok := r.store.get(id)
	if !ok {
		return nil, domain.ErrAccountNotFound
	}

	return account, nil
}

// GetByIDsForUpdate locks the accounts in ascending ID order and returns
// copies of them. IDs that do not exist are skipped.
func (r *AccountRepository) GetByIDsForUpdate(ctx context.Context, tx usecase.Transaction, ids []string) ([]*domain.Account, error) {
	t, err := asTx(tx)
	if err != nil {
		return nil, err
	}

	sorted := uniqueSorted(ids)

	accounts := make([]*domain.Account, 0, len(sorted))
	for _, id := range sorted {
		rec := r.store.lookup(id)
		if rec == nil {
			continue
		}

		if _, held := t.held[id]; !held {
			if err := rec.acquire(ctx); err != nil {
				return nil, err
			}
			t.held[id] = rec
		}

		account, _ := r.store.get(id)
		accounts = append(accounts, account)
	}

	return accounts, nil
}

// UpdateBalance stages a new balance for an account locked by tx.
func (r *AccountRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error {
	t, err := asTx(tx)
	if err != nil {
		return err
	}

	if _, held := t.held[id]; !held {
		return ErrNotLocked
	}

	t.staged[id] = stagedWrite{balance: balance, updatedAt: updatedAt}
	return nil
}

// List lists all accounts ordered by ID.
func (r *AccountRepository) List(ctx context.Context) ([]*domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return r.store.list(), nil
}

func uniqueSorted(ids []string) []string {
	seen := make(map[string]bool, len(ids))

	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}

	sort.Strings(out)
	return out
}
