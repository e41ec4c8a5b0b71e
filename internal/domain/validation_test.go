package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		wantErr error
	}{
		{name: "positive", amount: "100.50"},
		{name: "zero", amount: "0"},
		{name: "one cent", amount: "0.01"},
		{name: "trailing zeros", amount: "12.3400"},
		{name: "negative", amount: "-1", wantErr: ErrNegativeAmount},
		{name: "sub-cent", amount: "0.001", wantErr: ErrAmountPrecision},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAmount(decimal.RequireFromString(tt.amount))

			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("expected error to be an invalid argument, got %v", err)
			}
		})
	}
}

func TestValidateAccountID(t *testing.T) {
	valid := []string{"ACC001", "ACC999"}
	invalid := []string{"", "ACC01", "ACC0001", "acc001", "XYZ001", "ACC00A"}

	for _, id := range valid {
		if err := ValidateAccountID(id); err != nil {
			t.Errorf("expected %q to be valid, got %v", id, err)
		}
	}

	for _, id := range invalid {
		if err := ValidateAccountID(id); !errors.Is(err, ErrInvalidAccountID) {
			t.Errorf("expected %q to be invalid, got %v", id, err)
		}
	}
}

func TestValidatePIN(t *testing.T) {
	if err := ValidatePIN("0000"); err != nil {
		t.Fatalf("expected valid PIN, got %v", err)
	}

	for _, pin := range []string{"", "123", "12345", "12a4"} {
		if err := ValidatePIN(pin); !errors.Is(err, ErrInvalidPIN) {
			t.Errorf("expected %q to be rejected, got %v", pin, err)
		}
	}
}

func TestValidateHolderName(t *testing.T) {
	if err := ValidateHolderName("Sameer"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := ValidateHolderName("   "); !errors.Is(err, ErrInvalidHolderName) {
		t.Fatalf("expected empty name to be rejected, got %v", err)
	}

	if err := ValidateHolderName(strings.Repeat("x", MaxHolderNameLength+1)); !errors.Is(err, ErrInvalidHolderName) {
		t.Fatalf("expected long name to be rejected, got %v", err)
	}
}

func TestValidateSeedAccount(t *testing.T) {
	base := func() *Account {
		return &Account{ID: "ACC001", HolderName: "Shaik", PIN: "1234", Balance: decimal.RequireFromString("5000.00")}
	}

	if err := ValidateSeedAccount(base()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(a *Account)
		wantErr error
	}{
		{"bad id", func(a *Account) { a.ID = "A1" }, ErrInvalidAccountID},
		{"bad pin", func(a *Account) { a.PIN = "12" }, ErrInvalidPIN},
		{"empty holder", func(a *Account) { a.HolderName = "" }, ErrInvalidHolderName},
		{"negative balance", func(a *Account) { a.Balance = decimal.NewFromInt(-1) }, ErrNegativeBalance},
		{"sub-cent balance", func(a *Account) { a.Balance = decimal.RequireFromString("1.005") }, ErrAmountPrecision},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := base()
			tt.mutate(acc)

			if err := ValidateSeedAccount(acc); !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
