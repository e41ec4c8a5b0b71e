package memory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeed(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadSeedFile(t *testing.T) {
	path := writeSeed(t, `[
		{"id": "ACC100", "holder_name": "Ada", "pin": "4321", "balance": "12.50"},
		{"id": "ACC101", "holder_name": "Lin", "pin": "0000", "balance": 7}
	]`)

	accounts, err := LoadSeedFile(path)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "ACC100", accounts[0].ID)
	assert.True(t, accounts[0].Balance.Equal(decimal.RequireFromString("12.5")))
	assert.True(t, accounts[1].Balance.Equal(decimal.NewFromInt(7)))

	_, err = NewAccountStore(accounts)
	require.NoError(t, err)
}

func TestLoadSeedFile_Errors(t *testing.T) {
	_, err := LoadSeedFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	_, err = LoadSeedFile(writeSeed(t, `{not json`))
	require.Error(t, err)

	_, err = LoadSeedFile(writeSeed(t, `[]`))
	require.Error(t, err)
}

func TestDefaultSeed(t *testing.T) {
	seed := DefaultSeed()
	require.Len(t, seed, 3)

	assert.Equal(t, "ACC001", seed[0].ID)
	assert.Equal(t, "1234", seed[0].PIN)
	assert.True(t, seed[1].Balance.Equal(decimal.NewFromInt(3000)))
}
