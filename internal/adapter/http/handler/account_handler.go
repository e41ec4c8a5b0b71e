package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/iho/pinledger/internal/adapter/http/dto"
	"github.com/iho/pinledger/internal/domain"
	"github.com/iho/pinledger/internal/usecase"
)

// AccountService defines the behavior needed by AccountHandler.
type AccountService interface {
	CheckBalance(ctx context.Context, creds usecase.Credentials) (decimal.Decimal, error)
	GetAccountDetails(ctx context.Context, creds usecase.Credentials) (*domain.AccountDetails, error)
	Withdraw(ctx context.Context, input usecase.WithdrawInput) (*domain.Receipt, error)
	Deposit(ctx context.Context, input usecase.DepositInput) (*domain.Receipt, error)
}

// AccountHandler handles account-related HTTP requests.
type AccountHandler struct {
	ledger AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(ledger AccountService) *AccountHandler {
	return &AccountHandler{ledger: ledger}
}

// Balance returns the balance of an account.
func (h *AccountHandler) Balance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.PINRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	balance, err := h.ledger.CheckBalance(r.Context(), req.ToCredentials(id))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewBalanceResponse(id, balance))
}

// Details returns the holder name and balance of an account.
func (h *AccountHandler) Details(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.PINRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	details, err := h.ledger.GetAccountDetails(r.Context(), req.ToCredentials(id))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountDetailsFromDomain(details))
}

// Withdraw debits an account.
func (h *AccountHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req dto.AmountRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input, err := req.ToWithdrawInput(chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	receipt, err := h.ledger.Withdraw(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ReceiptFromDomain(receipt))
}

// Deposit credits an account.
func (h *AccountHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	var req dto.AmountRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input, err := req.ToDepositInput(chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	receipt, err := h.ledger.Deposit(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ReceiptFromDomain(receipt))
}
