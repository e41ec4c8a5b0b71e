package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidAccountID   = errors.New("account ID must be ACC followed by 3 digits")
	ErrInvalidPIN         = errors.New("PIN must be 4 digits")
	ErrInvalidHolderName  = errors.New("invalid holder name")
	ErrNegativeBalance    = errors.New("balance cannot be negative")
	ErrDuplicateAccountID = errors.New("duplicate account ID")
)

// Validation constants
const (
	MaxHolderNameLength = 255
	AmountScale         = 2
)

var (
	accountIDRegex = regexp.MustCompile(`^ACC[0-9]{3}$`)
	pinRegex       = regexp.MustCompile(`^[0-9]{4}$`)
)

// ValidateAmount rejects negative amounts and amounts finer than a cent.
// Zero is accepted.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return &InvalidArgumentError{Field: "amount", Err: ErrNegativeAmount}
	}

	if !amount.Equal(amount.Truncate(AmountScale)) {
		return &InvalidArgumentError{Field: "amount", Err: ErrAmountPrecision}
	}

	return nil
}

// ValidateAccountID validates the account identifier format.
func ValidateAccountID(id string) error {
	if !accountIDRegex.MatchString(id) {
		return fmt.Errorf("%w: %q", ErrInvalidAccountID, id)
	}
	return nil
}

// ValidatePIN validates PIN format.
func ValidatePIN(pin string) error {
	if !pinRegex.MatchString(pin) {
		return ErrInvalidPIN
	}
	return nil
}

// ValidateHolderName validates holder name
func ValidateHolderName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidHolderName)
	}

	if len(name) > MaxHolderNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidHolderName, MaxHolderNameLength)
	}

	return nil
}

// ValidateSeedAccount checks an account record before it is loaded into a ledger.
func ValidateSeedAccount(a *Account) error {
	if err := ValidateAccountID(a.ID); err != nil {
		return err
	}

	if err := ValidatePIN(a.PIN); err != nil {
		return fmt.Errorf("account %s: %w", a.ID, err)
	}

	if err := ValidateHolderName(a.HolderName); err != nil {
		return fmt.Errorf("account %s: %w", a.ID, err)
	}

	if a.Balance.IsNegative() {
		return fmt.Errorf("account %s: %w", a.ID, ErrNegativeBalance)
	}

	if !a.Balance.Equal(a.Balance.Truncate(AmountScale)) {
		return fmt.Errorf("account %s: %w", a.ID, ErrAmountPrecision)
	}

	return nil
}
