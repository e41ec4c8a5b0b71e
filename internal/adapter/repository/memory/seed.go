package memory

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/iho/pinledger/internal/domain"
)

// DefaultSeed returns the accounts a fresh ledger starts with.
func DefaultSeed() []domain.Account {
	return []domain.Account{
		{ID: "ACC001", HolderName: "Shaik", PIN: "1234", Balance: decimal.RequireFromString("5000.00")},
		{ID: "ACC002", HolderName: "Sameer", PIN: "5678", Balance: decimal.RequireFromString("3000.00")},
		{ID: "ACC003", HolderName: "technohacks", PIN: "9012", Balance: decimal.RequireFromString("1500.00")},
	}
}

// SeedAccount is the on-disk form of a seeded account.
type SeedAccount struct {
	ID         string          `json:"id"`
	HolderName string          `json:"holder_name"`
	PIN        string          `json:"pin"`
	Balance    decimal.Decimal `json:"balance"`
}

// LoadSeedFile reads a JSON array of SeedAccount from path. Validation
// happens in NewAccountStore.
func LoadSeedFile(path string) ([]domain.Account, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var rows []SeedAccount
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("seed file %s contains no accounts", path)
	}

	accounts := make([]domain.Account, len(rows))
	for i, row := range rows {
		accounts[i] = domain.Account{
			ID:         row.ID,
			HolderName: row.HolderName,
			PIN:        row.PIN,
			Balance:    row.Balance,
		}
	}

	return accounts, nil
}
