package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// Kind sentinels. Every typed error below unwraps to exactly one of them.
	ErrAccountNotFound     = errors.New("account not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidArgument     = errors.New("invalid argument")

	// Argument errors
	ErrNegativeAmount  = errors.New("amount cannot be negative")
	ErrAmountPrecision = errors.New("amount has more than two decimal places")
	ErrSameAccount     = errors.New("cannot transfer to same account")
)

// AccountNotFoundError is returned when an identifier is not present in the ledger.
type AccountNotFoundError struct {
	AccountID   string
	Destination bool
}

func (e *AccountNotFoundError) Error() string {
	if e.Destination {
		return fmt.Sprintf("destination account %s not found", e.AccountID)
	}
	return fmt.Sprintf("account %s not found", e.AccountID)
}

func (e *AccountNotFoundError) Unwrap() error { return ErrAccountNotFound }

// UnauthorizedError is returned when the account exists but the PIN does not match.
type UnauthorizedError struct {
	AccountID string
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("PIN is incorrect for account %s", e.AccountID)
}

func (e *UnauthorizedError) Unwrap() error { return ErrUnauthorized }

// InsufficientBalanceError is returned when a debit exceeds the available balance.
// Shortfall is always Requested - Available and strictly positive.
type InsufficientBalanceError struct {
	AccountID string
	Requested decimal.Decimal
	Available decimal.Decimal
	Shortfall decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient funds in account %s: shortfall %s", e.AccountID, e.Shortfall.StringFixed(2))
}

func (e *InsufficientBalanceError) Unwrap() error { return ErrInsufficientBalance }

// InvalidArgumentError is returned for rejected inputs.
type InvalidArgumentError struct {
	Field string
	Err   error
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *InvalidArgumentError) Unwrap() []error { return []error{ErrInvalidArgument, e.Err} }

// ErrorKind classifies ledger errors for presentation layers.
type ErrorKind int

const (
	KindOther ErrorKind = iota
	KindAccountNotFound
	KindUnauthorized
	KindInsufficientBalance
	KindInvalidArgument
)

func (k ErrorKind) String() string {
	switch k {
	case KindAccountNotFound:
		return "account_not_found"
	case KindUnauthorized:
		return "unauthorized"
	case KindInsufficientBalance:
		return "insufficient_balance"
	case KindInvalidArgument:
		return "invalid_argument"
	default:
		return "other"
	}
}

// KindOf returns the kind of err. nil maps to KindOther.
func KindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrAccountNotFound):
		return KindAccountNotFound
	case errors.Is(err, ErrUnauthorized):
		return KindUnauthorized
	case errors.Is(err, ErrInsufficientBalance):
		return KindInsufficientBalance
	case errors.Is(err, ErrInvalidArgument):
		return KindInvalidArgument
	default:
		return KindOther
	}
}
