package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"nil", nil, KindOther},
		{"not found", &AccountNotFoundError{AccountID: "ACC999"}, KindAccountNotFound},
		{"unauthorized", &UnauthorizedError{AccountID: "ACC001"}, KindUnauthorized},
		{"insufficient", &InsufficientBalanceError{Shortfall: decimal.NewFromInt(1)}, KindInsufficientBalance},
		{"invalid", &InvalidArgumentError{Field: "amount", Err: ErrNegativeAmount}, KindInvalidArgument},
		{"wrapped", fmt.Errorf("withdraw: %w", &UnauthorizedError{AccountID: "ACC001"}), KindUnauthorized},
		{"unknown", errors.New("boom"), KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Fatalf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAccountNotFoundError_Message(t *testing.T) {
	src := &AccountNotFoundError{AccountID: "ACC999"}
	if src.Error() != "account ACC999 not found" {
		t.Fatalf("unexpected message: %s", src.Error())
	}

	dst := &AccountNotFoundError{AccountID: "ACC999", Destination: true}
	if dst.Error() != "destination account ACC999 not found" {
		t.Fatalf("unexpected message: %s", dst.Error())
	}
}

func TestInvalidArgumentError_UnwrapsCause(t *testing.T) {
	err := &InvalidArgumentError{Field: "to_account_id", Err: ErrSameAccount}

	if !errors.Is(err, ErrSameAccount) {
		t.Fatal("expected cause to be reachable")
	}
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatal("expected kind sentinel to be reachable")
	}
}

func TestErrorKind_String(t *testing.T) {
	if KindInsufficientBalance.String() != "insufficient_balance" {
		t.Fatalf("unexpected string %q", KindInsufficientBalance.String())
	}
	if ErrorKind(42).String() != "other" {
		t.Fatalf("unexpected string for unknown kind")
	}
}
