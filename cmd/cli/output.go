package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/iho/pinledger/internal/adapter/http/dto"
)

// errReported marks an error already printed in the ledger's error format.
var errReported = errors.New("request failed")

// hints are the follow-up lines printed under an error, by code.
var hints = map[string]string{
	dto.CodeAccountNotFound: "Please verify the account number and try again",
	dto.CodeUnauthorized:    "Invalid credentials. Please check your PIN and try again",
	dto.CodeInvalidArgument: "Please check the request values and try again",
	dto.CodeInvalidRequest:  "Please check the request values and try again",
}

func hintFor(resp dto.ErrorResponse) string {
	if resp.Code == dto.CodeInsufficientBalance && resp.Shortfall != "" {
		return fmt.Sprintf("You need $%s more to complete this transaction", resp.Shortfall)
	}
	if h, ok := hints[resp.Code]; ok {
		return h
	}
	return "Please contact support if the problem persists"
}

func printError(w io.Writer, status int, resp dto.ErrorResponse, hint string) {
	message := resp.Message
	if message == "" {
		message = resp.Error
	}
	fmt.Fprintf(w, "✗ ERROR [%d - %s]: %s\n↳ %s\n", status, resp.Code, message, hint)
}

// report prints API errors in the ledger's error format and returns
// errReported; other errors are returned unchanged.
func report(w io.Writer, err error) error {
	var apiErr *apiError
	if errors.As(err, &apiErr) {
		printError(w, apiErr.Status, apiErr.Body, hintFor(apiErr.Body))
		return errReported
	}
	return err
}
