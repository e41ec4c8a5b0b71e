package handler

import (
	"context"
	"net/http"

	"github.com/iho/pinledger/internal/adapter/http/dto"
	"github.com/iho/pinledger/internal/domain"
	"github.com/iho/pinledger/internal/usecase"
)

// TransferService defines the behavior needed by TransferHandler.
type TransferService interface {
	Transfer(ctx context.Context, input usecase.TransferInput) (*domain.Receipt, error)
}

// TransferHandler handles transfer-related HTTP requests.
type TransferHandler struct {
	ledger TransferService
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(ledger TransferService) *TransferHandler {
	return &TransferHandler{ledger: ledger}
}

// Create moves funds between two accounts.
func (h *TransferHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.TransferRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	receipt, err := h.ledger.Transfer(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ReceiptFromDomain(receipt))
}
