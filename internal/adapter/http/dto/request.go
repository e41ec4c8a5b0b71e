package dto

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/iho/pinledger/internal/domain"
	"github.com/iho/pinledger/internal/usecase"
)

// ErrMissingAmount is returned when a mutating request carries no amount.
var ErrMissingAmount = errors.New("amount is required")

// PINRequest carries the PIN for read operations.
type PINRequest struct {
	PIN string `json:"pin"`
}

// ToCredentials converts to use case credentials.
func (r *PINRequest) ToCredentials(accountID string) usecase.Credentials {
	return usecase.Credentials{AccountID: accountID, PIN: r.PIN}
}

// AmountRequest represents a withdrawal or deposit request.
// Amount accepts a JSON string or number.
type AmountRequest struct {
	PIN    string           `json:"pin"`
	Amount *decimal.Decimal `json:"amount"`
}

func (r *AmountRequest) amount() (decimal.Decimal, error) {
	if r.Amount == nil {
		return decimal.Decimal{}, &domain.InvalidArgumentError{Field: "amount", Err: ErrMissingAmount}
	}
	return *r.Amount, nil
}

// ToWithdrawInput converts to use case input.
func (r *AmountRequest) ToWithdrawInput(accountID string) (usecase.WithdrawInput, error) {
	amount, err := r.amount()
	if err != nil {
		return usecase.WithdrawInput{}, err
	}

	return usecase.WithdrawInput{
		Credentials: usecase.Credentials{AccountID: accountID, PIN: r.PIN},
		Amount:      amount,
	}, nil
}

// ToDepositInput converts to use case input.
func (r *AmountRequest) ToDepositInput(accountID string) (usecase.DepositInput, error) {
	amount, err := r.amount()
	if err != nil {
		return usecase.DepositInput{}, err
	}

	return usecase.DepositInput{
		Credentials: usecase.Credentials{AccountID: accountID, PIN: r.PIN},
		Amount:      amount,
	}, nil
}

// TransferRequest represents a request to move funds between accounts.
type TransferRequest struct {
	FromAccountID string           `json:"from_account_id"`
	PIN           string           `json:"pin"`
	ToAccountID   string           `json:"to_account_id"`
	Amount        *decimal.Decimal `json:"amount"`
}

// ToUseCaseInput converts to use case input.
func (r *TransferRequest) ToUseCaseInput() (usecase.TransferInput, error) {
	if r.Amount == nil {
		return usecase.TransferInput{}, &domain.InvalidArgumentError{Field: "amount", Err: ErrMissingAmount}
	}

	return usecase.TransferInput{
		FromAccountID: r.FromAccountID,
		PIN:           r.PIN,
		ToAccountID:   r.ToAccountID,
		Amount:        *r.Amount,
	}, nil
}
