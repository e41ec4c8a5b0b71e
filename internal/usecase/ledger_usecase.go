package usecase

import (
	"context"
	"errors"
)

var (
	// ErrInconsistentLedger is returned when the ledger is not balanced.
	ErrInconsistentLedger = errors.New("ledger is inconsistent: balances do not match tracked total")
)

// LedgerUseCase handles ledger-wide operations.
type LedgerUseCase struct {
	ledgerRepo LedgerRepository
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(ledgerRepo LedgerRepository) *LedgerUseCase {
	return &LedgerUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// CheckConsistency verifies that the ledger is balanced.
func (uc *LedgerUseCase) CheckConsistency(ctx context.Context) (bool, error) {
	totalBalance, trackedTotal, err := uc.ledgerRepo.CheckConsistency(ctx)
	if err != nil {
		return false, err
	}

	// Transfers move money between accounts; only deposits and withdrawals
	// change the tracked total, and they change it by the same delta as the
	// balance they touch.
	if !totalBalance.Equal(trackedTotal) {
		return false, ErrInconsistentLedger
	}

	negative, err := uc.ledgerRepo.CountNegative(ctx)
	if err != nil {
		return false, err
	}

	if negative > 0 {
		return false, ErrInconsistentLedger
	}

	return true, nil
}
