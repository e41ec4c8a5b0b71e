package domain

import (
	"crypto/subtle"
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a ledger account guarded by a PIN.
type Account struct {
	ID         string
	HolderName string
	PIN        string
	Balance    decimal.Decimal
	Version    int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// AccountDetails is a read-only view of an account. It never carries the PIN.
type AccountDetails struct {
	ID         string
	HolderName string
	Balance    decimal.Decimal
	UpdatedAt  time.Time
}

// PINMatches reports whether pin equals the stored PIN.
func (a *Account) PINMatches(pin string) bool {
	return subtle.ConstantTimeCompare([]byte(a.PIN), []byte(pin)) == 1
}

// ValidateDebit checks if account can be debited by amount.
func (a *Account) ValidateDebit(amount decimal.Decimal) error {
	if amount.GreaterThan(a.Balance) {
		return &InsufficientBalanceError{
			AccountID: a.ID,
			Requested: amount,
			Available: a.Balance,
			Shortfall: amount.Sub(a.Balance),
		}
	}
	return nil
}

// ApplyDebit returns new balance after debit.
func (a *Account) ApplyDebit(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Sub(amount)
}

// ApplyCredit returns new balance after credit.
func (a *Account) ApplyCredit(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Add(amount)
}

// Details returns a snapshot of the account without its PIN.
func (a *Account) Details() AccountDetails {
	return AccountDetails{
		ID:         a.ID,
		HolderName: a.HolderName,
		Balance:    a.Balance,
		UpdatedAt:  a.UpdatedAt,
	}
}
