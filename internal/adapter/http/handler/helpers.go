package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/iho/pinledger/internal/adapter/http/dto"
)

const maxBodyBytes = 1 << 20

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, code, message, details string) {
	writeJSON(w, status, dto.ErrorResponse{
		Code:    code,
		Error:   message,
		Message: details,
	})
}

// writeDomainError maps err to a status code and writes it. Internal errors
// are logged with the request-scoped logger.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := dto.ErrorFromDomain(err)
	if status >= http.StatusInternalServerError {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("ledger operation failed")
	}

	writeJSON(w, status, resp)
}

// decodeJSON decodes the request body into dst, writing a 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, dto.CodeInvalidRequest, "invalid request body", err.Error())
		return false
	}

	return true
}
