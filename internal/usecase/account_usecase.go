package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/pinledger/internal/domain"
)

// Ledger is the set of credential-gated account operations.
type Ledger interface {
	CheckBalance(ctx context.Context, creds Credentials) (decimal.Decimal, error)
	GetAccountDetails(ctx context.Context, creds Credentials) (*domain.AccountDetails, error)
	Withdraw(ctx context.Context, input WithdrawInput) (*domain.Receipt, error)
	Deposit(ctx context.Context, input DepositInput) (*domain.Receipt, error)
	Transfer(ctx context.Context, input TransferInput) (*domain.Receipt, error)
}

// Credentials identify and authorize an account holder.
type Credentials struct {
	AccountID string
	PIN       string
}

// WithdrawInput represents input for a withdrawal.
type WithdrawInput struct {
	Credentials
	Amount decimal.Decimal
}

// DepositInput represents input for a deposit.
type DepositInput struct {
	Credentials
	Amount decimal.Decimal
}

// TransferInput represents input for a transfer. The PIN authorizes the
// source account only.
type TransferInput struct {
	FromAccountID string
	PIN           string
	ToAccountID   string
	Amount        decimal.Decimal
}

// AccountLedger handles balance inquiry and mutation for PIN-protected accounts.
type AccountLedger struct {
	txManager   TransactionManager
	accountRepo AccountRepository
	idGen       IDGenerator
	lockTimeout time.Duration
	now         func() time.Time
}

// NewAccountLedger creates a new AccountLedger.
func NewAccountLedger(txManager TransactionManager, accountRepo AccountRepository, idGen IDGenerator) *AccountLedger {
	return &AccountLedger{
		txManager:   txManager,
		accountRepo: accountRepo,
		idGen:       idGen,
		lockTimeout: DefaultLockTimeout,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// WithLockTimeout overrides the bound on account lock waits.
func (uc *AccountLedger) WithLockTimeout(d time.Duration) *AccountLedger {
	if d > 0 {
		uc.lockTimeout = d
	}
	return uc
}

// validate is the single authorization gate: the account must exist and the
// PIN must match.
func (uc *AccountLedger) validate(account *domain.Account, id, pin string) (*domain.Account, error) {
	if account == nil {
		return nil, &domain.AccountNotFoundError{AccountID: id}
	}
	if !account.PINMatches(pin) {
		return nil, &domain.UnauthorizedError{AccountID: id}
	}
	return account, nil
}

// authorize reads a committed copy of the account and validates it.
func (uc *AccountLedger) authorize(ctx context.Context, creds Credentials) (*domain.Account, error) {
	account, err := uc.accountRepo.GetByID(ctx, creds.AccountID)
	if err != nil && !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	return uc.validate(account, creds.AccountID, creds.PIN)
}

// CheckBalance returns the current balance.
func (uc *AccountLedger) CheckBalance(ctx context.Context, creds Credentials) (decimal.Decimal, error) {
	account, err := uc.authorize(ctx, creds)
	if err != nil {
		return decimal.Zero, err
	}
	return account.Balance, nil
}

// GetAccountDetails returns a snapshot of the account without its PIN.
func (uc *AccountLedger) GetAccountDetails(ctx context.Context, creds Credentials) (*domain.AccountDetails, error) {
	account, err := uc.authorize(ctx, creds)
	if err != nil {
		return nil, err
	}
	details := account.Details()
	return &details, nil
}

// Withdraw debits the account.
func (uc *AccountLedger) Withdraw(ctx context.Context, input WithdrawInput) (*domain.Receipt, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, uc.lockTimeout)
	defer cancel()

	tx, accounts, err := uc.lock(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	account, err := uc.validate(accounts[input.AccountID], input.AccountID, input.PIN)
	if err != nil {
		return nil, err
	}

	if err := account.ValidateDebit(input.Amount); err != nil {
		return nil, err
	}

	now := uc.now()
	newBalance := account.ApplyDebit(input.Amount)

	if err := uc.accountRepo.UpdateBalance(ctx, tx, account.ID, newBalance, now); err != nil {
		return nil, fmt.Errorf("failed to update balance: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit withdrawal: %w", err)
	}

	return uc.receipt(domain.OperationWithdraw, account.ID, "", input.Amount, newBalance, now), nil
}

// Deposit credits the account. A zero amount is accepted; negative amounts
// and amounts with more than two fractional digits are InvalidArgument.
func (uc *AccountLedger) Deposit(ctx context.Context, input DepositInput) (*domain.Receipt, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, uc.lockTimeout)
	defer cancel()

	tx, accounts, err := uc.lock(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	account, err := uc.validate(accounts[input.AccountID], input.AccountID, input.PIN)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	newBalance := account.ApplyCredit(input.Amount)

	if err := uc.accountRepo.UpdateBalance(ctx, tx, account.ID, newBalance, now); err != nil {
		return nil, fmt.Errorf("failed to update balance: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit deposit: %w", err)
	}

	return uc.receipt(domain.OperationDeposit, account.ID, "", input.Amount, newBalance, now), nil
}

// Transfer moves amount from the source account to the destination account.
// Both accounts are locked together and written in a single commit. The
// source credentials are checked before anything else about the pair, so a
// self-transfer with a wrong PIN is still Unauthorized.
func (uc *AccountLedger) Transfer(ctx context.Context, input TransferInput) (*domain.Receipt, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, uc.lockTimeout)
	defer cancel()

	tx, accounts, err := uc.lock(ctx, input.FromAccountID, input.ToAccountID)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	from, err := uc.validate(accounts[input.FromAccountID], input.FromAccountID, input.PIN)
	if err != nil {
		return nil, err
	}

	if input.FromAccountID == input.ToAccountID {
		return nil, &domain.InvalidArgumentError{Field: "to_account_id", Err: domain.ErrSameAccount}
	}

	to := accounts[input.ToAccountID]
	if to == nil {
		return nil, &domain.AccountNotFoundError{AccountID: input.ToAccountID, Destination: true}
	}

	if err := from.ValidateDebit(input.Amount); err != nil {
		return nil, err
	}

	now := uc.now()
	fromBalance := from.ApplyDebit(input.Amount)
	toBalance := to.ApplyCredit(input.Amount)

	if err := uc.accountRepo.UpdateBalance(ctx, tx, from.ID, fromBalance, now); err != nil {
		return nil, fmt.Errorf("failed to update source balance: %w", err)
	}

	if err := uc.accountRepo.UpdateBalance(ctx, tx, to.ID, toBalance, now); err != nil {
		return nil, fmt.Errorf("failed to update destination balance: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transfer: %w", err)
	}

	return uc.receipt(domain.OperationTransfer, from.ID, to.ID, input.Amount, fromBalance, now), nil
}

// lock begins a transaction and locks the given accounts. Accounts that do
// not exist are absent from the returned map. The caller owns the rollback.
func (uc *AccountLedger) lock(ctx context.Context, ids ...string) (Transaction, map[string]*domain.Account, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	accounts, err := uc.accountRepo.GetByIDsForUpdate(ctx, tx, ids)
	if err != nil {
		tx.Rollback(ctx)
		return nil, nil, fmt.Errorf("failed to lock accounts: %w", err)
	}

	m := make(map[string]*domain.Account, len(accounts))
	for _, a := range accounts {
		m[a.ID] = a
	}

	return tx, m, nil
}

func (uc *AccountLedger) receipt(
	op domain.Operation,
	accountID, counterpartyID string,
	amount, balance decimal.Decimal,
	at time.Time,
) *domain.Receipt {
	return &domain.Receipt{
		ID:             uc.idGen.Generate(),
		Operation:      op,
		AccountID:      accountID,
		CounterpartyID: counterpartyID,
		Amount:         amount,
		Balance:        balance,
		CreatedAt:      at,
	}
}
