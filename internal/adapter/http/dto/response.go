package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/pinledger/internal/domain"
)

// BalanceResponse is returned by the balance endpoint.
type BalanceResponse struct {
	AccountID string `json:"account_id"`
	Balance   string `json:"balance"`
}

// NewBalanceResponse renders balance with two fractional digits.
func NewBalanceResponse(accountID string, balance decimal.Decimal) *BalanceResponse {
	return &BalanceResponse{
		AccountID: accountID,
		Balance:   balance.StringFixed(domain.AmountScale),
	}
}

// AccountDetailsResponse represents account details in API responses.
// The PIN is never part of it.
type AccountDetailsResponse struct {
	AccountID  string    `json:"account_id"`
	HolderName string    `json:"holder_name"`
	Balance    string    `json:"balance"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// AccountDetailsFromDomain converts domain details to response.
func AccountDetailsFromDomain(d *domain.AccountDetails) *AccountDetailsResponse {
	return &AccountDetailsResponse{
		AccountID:  d.ID,
		HolderName: d.HolderName,
		Balance:    d.Balance.StringFixed(domain.AmountScale),
		UpdatedAt:  d.UpdatedAt,
	}
}

// ReceiptResponse represents a committed mutation in API responses.
type ReceiptResponse struct {
	ID             string    `json:"id"`
	Operation      string    `json:"operation"`
	AccountID      string    `json:"account_id"`
	CounterpartyID string    `json:"counterparty_id,omitempty"`
	Amount         string    `json:"amount"`
	Balance        string    `json:"balance"`
	CreatedAt      time.Time `json:"created_at"`
}

// ReceiptFromDomain converts a domain receipt to response.
func ReceiptFromDomain(r *domain.Receipt) *ReceiptResponse {
	return &ReceiptResponse{
		ID:             r.ID,
		Operation:      string(r.Operation),
		AccountID:      r.AccountID,
		CounterpartyID: r.CounterpartyID,
		Amount:         r.Amount.StringFixed(domain.AmountScale),
		Balance:        r.Balance.StringFixed(domain.AmountScale),
		CreatedAt:      r.CreatedAt,
	}
}

// ConsistencyResponse reports the outcome of a ledger consistency check.
type ConsistencyResponse struct {
	Status     string `json:"status"`
	Consistent bool   `json:"consistent"`
	Message    string `json:"message,omitempty"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Code      string `json:"code"`
	Error     string `json:"error"`
	Message   string `json:"message,omitempty"`
	Shortfall string `json:"shortfall,omitempty"`
}
