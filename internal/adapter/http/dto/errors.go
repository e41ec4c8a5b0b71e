package dto

import (
	"errors"
	"net/http"

	"github.com/iho/pinledger/internal/domain"
)

// Error codes carried in ErrorResponse.Code.
const (
	CodeAccountNotFound     = "ACCOUNT_NOT_FOUND"
	CodeUnauthorized        = "UNAUTHORIZED_ACCESS"
	CodeInsufficientBalance = "INSUFFICIENT_BALANCE"
	CodeInvalidArgument     = "INVALID_ARGUMENT"
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeInternal            = "INTERNAL_ERROR"
	CodeInconsistentLedger  = "LEDGER_INCONSISTENT"
)

// ErrorFromDomain maps an error returned by the ledger to an HTTP status
// and response body.
func ErrorFromDomain(err error) (int, ErrorResponse) {
	switch domain.KindOf(err) {
	case domain.KindAccountNotFound:
		return http.StatusNotFound, ErrorResponse{
			Code:    CodeAccountNotFound,
			Error:   "account not found",
			Message: err.Error(),
		}
	case domain.KindUnauthorized:
		return http.StatusUnauthorized, ErrorResponse{
			Code:    CodeUnauthorized,
			Error:   "unauthorized access",
			Message: err.Error(),
		}
	case domain.KindInsufficientBalance:
		resp := ErrorResponse{
			Code:    CodeInsufficientBalance,
			Error:   "insufficient balance",
			Message: err.Error(),
		}
		var ibe *domain.InsufficientBalanceError
		if errors.As(err, &ibe) {
			resp.Shortfall = ibe.Shortfall.StringFixed(domain.AmountScale)
		}
		return http.StatusBadRequest, resp
	case domain.KindInvalidArgument:
		return http.StatusBadRequest, ErrorResponse{
			Code:    CodeInvalidArgument,
			Error:   "invalid argument",
			Message: err.Error(),
		}
	default:
		return http.StatusInternalServerError, ErrorResponse{
			Code:  CodeInternal,
			Error: "internal error",
		}
	}
}
