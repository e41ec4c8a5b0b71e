package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/pinledger/internal/domain"
)

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	// GetByID returns a committed copy of the account or domain.ErrAccountNotFound.
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	// GetByIDsForUpdate locks the existing accounts among ids in sorted order
	// for the lifetime of tx. Unknown ids are skipped.
	GetByIDsForUpdate(ctx context.Context, tx Transaction, ids []string) ([]*domain.Account, error)
	UpdateBalance(ctx context.Context, tx Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error
	List(ctx context.Context) ([]*domain.Account, error)
}

// LedgerRepository defines data access for ledger-wide operations.
type LedgerRepository interface {
	CheckConsistency(ctx context.Context) (totalBalance, trackedTotal decimal.Decimal, err error)
	// CountNegative returns the number of accounts with a negative balance.
	CountNegative(ctx context.Context) (int, error)
}

// Transaction represents a unit of work over locked accounts.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
	// Release drops a pending key so the request can be retried.
	Release(ctx context.Context, key string) error
}

// Recorder receives per-operation measurements.
type Recorder interface {
	ObserveOperation(operation domain.Operation, outcome string, amount decimal.Decimal, duration time.Duration)
}
