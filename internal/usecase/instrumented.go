package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/pinledger/internal/domain"
)

// InstrumentedLedger reports every call on the wrapped Ledger to a Recorder.
type InstrumentedLedger struct {
	next     Ledger
	recorder Recorder
}

// NewInstrumentedLedger wraps next.
func NewInstrumentedLedger(next Ledger, recorder Recorder) *InstrumentedLedger {
	return &InstrumentedLedger{next: next, recorder: recorder}
}

func (l *InstrumentedLedger) observe(op domain.Operation, amount decimal.Decimal, start time.Time, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = domain.KindOf(err).String()
	}
	l.recorder.ObserveOperation(op, outcome, amount, time.Since(start))
}

// CheckBalance implements Ledger.
func (l *InstrumentedLedger) CheckBalance(ctx context.Context, creds Credentials) (decimal.Decimal, error) {
	start := time.Now()
	balance, err := l.next.CheckBalance(ctx, creds)
	l.observe(domain.OperationCheckBalance, decimal.Zero, start, err)
	return balance, err
}

// GetAccountDetails implements Ledger.
func (l *InstrumentedLedger) GetAccountDetails(ctx context.Context, creds Credentials) (*domain.AccountDetails, error) {
	start := time.Now()
	details, err := l.next.GetAccountDetails(ctx, creds)
	l.observe(domain.OperationDetails, decimal.Zero, start, err)
	return details, err
}

// Withdraw implements Ledger.
func (l *InstrumentedLedger) Withdraw(ctx context.Context, input WithdrawInput) (*domain.Receipt, error) {
	start := time.Now()
	receipt, err := l.next.Withdraw(ctx, input)
	l.observe(domain.OperationWithdraw, input.Amount, start, err)
	return receipt, err
}

// Deposit implements Ledger.
func (l *InstrumentedLedger) Deposit(ctx context.Context, input DepositInput) (*domain.Receipt, error) {
	start := time.Now()
	receipt, err := l.next.Deposit(ctx, input)
	l.observe(domain.OperationDeposit, input.Amount, start, err)
	return receipt, err
}

// Transfer implements Ledger.
func (l *InstrumentedLedger) Transfer(ctx context.Context, input TransferInput) (*domain.Receipt, error) {
	start := time.Now()
	receipt, err := l.next.Transfer(ctx, input)
	l.observe(domain.OperationTransfer, input.Amount, start, err)
	return receipt, err
}

var (
	_ Ledger = (*AccountLedger)(nil)
	_ Ledger = (*InstrumentedLedger)(nil)
)
