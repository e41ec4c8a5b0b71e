package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Operation names a ledger operation.
type Operation string

const (
	OperationCheckBalance Operation = "check_balance"
	OperationDetails      Operation = "get_details"
	OperationWithdraw     Operation = "withdraw"
	OperationDeposit      Operation = "deposit"
	OperationTransfer     Operation = "transfer"
)

// Receipt describes a committed balance mutation.
type Receipt struct {
	CreatedAt      time.Time
	ID             string
	Operation      Operation
	AccountID      string
	CounterpartyID string
	Amount         decimal.Decimal
	Balance        decimal.Decimal
}
