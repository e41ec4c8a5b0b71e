// Package memory holds the in-memory account store and the repositories
// that expose it to the use cases.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/pinledger/internal/domain"
)

// AccountStore owns every account record. Records are created once by
// NewAccountStore and never removed.
type AccountStore struct {
	mu       sync.RWMutex
	accounts map[string]*record
	// total is adjusted by every commit and must always equal the sum of balances.
	total decimal.Decimal
}

type record struct {
	// lock is a one-slot semaphore so that waiters can give up on ctx.Done.
	lock    chan struct{}
	account domain.Account
}

// NewAccountStore validates seed and builds a store holding a copy of it.
func NewAccountStore(seed []domain.Account) (*AccountStore, error) {
	s := &AccountStore{
		accounts: make(map[string]*record, len(seed)),
		total:    decimal.Zero,
	}

	now := time.Now().UTC()
	for i := range seed {
		a := seed[i]
		if err := domain.ValidateSeedAccount(&a); err != nil {
			return nil, err
		}

		if _, exists := s.accounts[a.ID]; exists {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateAccountID, a.ID)
		}

		if a.CreatedAt.IsZero() {
			a.CreatedAt = now
		}
		if a.UpdatedAt.IsZero() {
			a.UpdatedAt = a.CreatedAt
		}

		s.accounts[a.ID] = &record{
			lock:    make(chan struct{}, 1),
			account: a,
		}
		s.total = s.total.Add(a.Balance)
	}

	return s, nil
}

// get returns a copy of the committed account.
func (s *AccountStore) get(id string) (*domain.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.accounts[id]
	if !ok {
		return nil, false
	}

	a := r.account
	return &a, true
}

func (s *AccountStore) lookup(id string) *record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.accounts[id]
}

// list returns copies of all accounts sorted by ID.
func (s *AccountStore) list() []*domain.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Account, 0, len(s.accounts))
	for _, r := range s.accounts {
		a := r.account
		out = append(out, &a)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// apply writes staged balances in one critical section, so readers never
// see half of a transaction.
func (s *AccountStore) apply(staged map[string]stagedWrite) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, w := range staged {
		r := s.accounts[id]
		s.total = s.total.Add(w.balance.Sub(r.account.Balance))
		r.account.Balance = w.balance
		r.account.UpdatedAt = w.updatedAt
		r.account.Version++
	}
}

func (s *AccountStore) totals() (sum, tracked decimal.Decimal, negative int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sum = decimal.Zero
	for _, r := range s.accounts {
		sum = sum.Add(r.account.Balance)
		if r.account.Balance.IsNegative() {
			negative++
		}
	}

	return sum, s.total, negative
}

func (r *record) acquire(ctx context.Context) error {
	select {
	case r.lock <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *record) release() {
	<-r.lock
}
