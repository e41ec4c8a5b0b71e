package dto

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/pinledger/internal/domain"
	"github.com/iho/pinledger/internal/usecase"
)

func TestAmountRequest_DecodesStringAndNumber(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"string amount", `{"pin":"1234","amount":"1000.00"}`, "1000"},
		{"number amount", `{"pin":"1234","amount":250.5}`, "250.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req AmountRequest
			if err := json.Unmarshal([]byte(tt.body), &req); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}

			input, err := req.ToWithdrawInput("ACC001")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !input.Amount.Equal(decimal.RequireFromString(tt.want)) {
				t.Fatalf("amount = %s, want %s", input.Amount, tt.want)
			}
			if input.AccountID != "ACC001" || input.PIN != "1234" {
				t.Fatalf("unexpected credentials: %+v", input.Credentials)
			}
		})
	}
}

func TestAmountRequest_MissingAmount(t *testing.T) {
	req := &AmountRequest{PIN: "1234"}

	_, err := req.ToDepositInput("ACC001")
	if !errors.Is(err, domain.ErrInvalidArgument) || !errors.Is(err, ErrMissingAmount) {
		t.Fatalf("expected missing amount invalid argument, got %v", err)
	}

	_, err = req.ToWithdrawInput("ACC001")
	if domain.KindOf(err) != domain.KindInvalidArgument {
		t.Fatalf("expected invalid argument kind, got %v", err)
	}
}

func TestAmountRequest_ToDepositInput(t *testing.T) {
	amount := decimal.RequireFromString("42.10")
	req := &AmountRequest{PIN: "5678", Amount: &amount}

	got, err := req.ToDepositInput("ACC002")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := usecase.DepositInput{
		Credentials: usecase.Credentials{AccountID: "ACC002", PIN: "5678"},
		Amount:      amount,
	}
	if got.Credentials != want.Credentials || !got.Amount.Equal(want.Amount) {
		t.Fatalf("ToDepositInput() = %+v, want %+v", got, want)
	}
}

func TestTransferRequest_ToUseCaseInput(t *testing.T) {
	amount := decimal.RequireFromString("500.00")

	tests := []struct {
		name        string
		request     *TransferRequest
		expectError bool
	}{
		{
			name: "valid",
			request: &TransferRequest{
				FromAccountID: "ACC001",
				PIN:           "1234",
				ToAccountID:   "ACC002",
				Amount:        &amount,
			},
		},
		{
			name: "missing amount",
			request: &TransferRequest{
				FromAccountID: "ACC001",
				PIN:           "1234",
				ToAccountID:   "ACC002",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.request.ToUseCaseInput()
			if tt.expectError {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.FromAccountID != "ACC001" || got.ToAccountID != "ACC002" || got.PIN != "1234" || !got.Amount.Equal(amount) {
				t.Fatalf("unexpected input: %+v", got)
			}
		})
	}
}

func TestPINRequest_ToCredentials(t *testing.T) {
	req := &PINRequest{PIN: "9012"}

	if got := req.ToCredentials("ACC003"); got != (usecase.Credentials{AccountID: "ACC003", PIN: "9012"}) {
		t.Fatalf("unexpected credentials: %+v", got)
	}
}
