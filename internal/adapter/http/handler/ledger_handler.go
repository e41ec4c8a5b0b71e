package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/iho/pinledger/internal/adapter/http/dto"
	"github.com/iho/pinledger/internal/usecase"
)

// ConsistencyChecker defines the behavior needed by LedgerHandler.
type ConsistencyChecker interface {
	CheckConsistency(ctx context.Context) (bool, error)
}

// LedgerHandler handles ledger-wide operations.
type LedgerHandler struct {
	ledgerUC ConsistencyChecker
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerUC ConsistencyChecker) *LedgerHandler {
	return &LedgerHandler{ledgerUC: ledgerUC}
}

// CheckConsistency checks if the ledger is consistent.
func (h *LedgerHandler) CheckConsistency(w http.ResponseWriter, r *http.Request) {
	consistent, err := h.ledgerUC.CheckConsistency(r.Context())
	if err != nil {
		if errors.Is(err, usecase.ErrInconsistentLedger) {
			writeJSON(w, http.StatusConflict, dto.ConsistencyResponse{
				Status:     "inconsistent",
				Consistent: false,
				Message:    err.Error(),
			})
			return
		}
		writeError(w, http.StatusInternalServerError, dto.CodeInternal, "failed to check consistency", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ConsistencyResponse{
		Status:     "consistent",
		Consistent: consistent,
	})
}
