package memory

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/pinledger/internal/usecase"
)

var (
	// ErrTxDone is returned when a finished transaction is used again.
	ErrTxDone = errors.New("transaction has already been committed or rolled back")
	// ErrNotLocked is returned when writing an account the transaction does not hold.
	ErrNotLocked = errors.New("account is not locked by this transaction")
	// ErrForeignTx is returned when a transaction from another implementation is passed in.
	ErrForeignTx = errors.New("transaction was not created by the memory store")
)

// TxManager implements usecase.TransactionManager.
type TxManager struct {
	store *AccountStore
}

// NewTxManager creates a new TxManager.
func NewTxManager(store *AccountStore) *TxManager {
	return &TxManager{store: store}
}

// Begin starts a new transaction.
func (m *TxManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &Tx{
		store:  m.store,
		held:   make(map[string]*record),
		staged: make(map[string]stagedWrite),
	}, nil
}

type stagedWrite struct {
	balance   decimal.Decimal
	updatedAt time.Time
}

// Tx holds account locks and buffers writes until Commit.
// A Tx is used by a single goroutine.
type Tx struct {
	store  *AccountStore
	held   map[string]*record
	staged map[string]stagedWrite
	done   bool
}

// Commit applies staged writes and releases all locks.
func (t *Tx) Commit(ctx context.Context) error {
	if t.done {
		return ErrTxDone
	}

	if len(t.staged) > 0 {
		t.store.apply(t.staged)
	}

	t.finish()
	return nil
}

// Rollback discards staged writes and releases all locks. It is a no-op on a
// finished transaction.
func (t *Tx) Rollback(ctx context.Context) error {
	if t.done {
		return nil
	}

	t.finish()
	return nil
}

func (t *Tx) finish() {
	for _, r := range t.held {
		r.release()
	}
	t.held = nil
	t.staged = nil
	t.done = true
}

func asTx(tx usecase.Transaction) (*Tx, error) {
	t, ok := tx.(*Tx)
	if !ok {
		return nil, ErrForeignTx
	}
	if t.done {
		return nil, ErrTxDone
	}
	return t, nil
}
