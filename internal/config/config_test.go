package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const validConfigJSON = `{
  "splitwise": {
    "consumerKey": "consumerKey",
    "consumerSecret": "consumerSecret",
    "friendEmail": "friend@example.com",
    "transactionsDatedAfter": "2025-01-01T00:00:00Z"
  },
  "ynab": {
    "personalAccessToken": "personalAccessToken",
    "budgetName": "budgetName",
    "splitwiseAccountName": "splitwiseAccountName"
  }
}`

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "appsettings.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		cfg, err := Load(writeTempConfig(t, validConfigJSON))

		assert.NoError(t, err)
		assert.Equal(t, "consumerKey", cfg.Splitwise.ConsumerKey)
		assert.Equal(t, "friend@example.com", cfg.Splitwise.FriendEmail)
		assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), cfg.Splitwise.TransactionsDatedAfter)
		assert.Equal(t, "budgetName", cfg.Ynab.BudgetName)
		assert.Equal(t, "splitwiseAccountName", cfg.Ynab.SplitwiseAccountName)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := Load(writeTempConfig(t, `{"splitwise": `))
		assert.ErrorContains(t, err, "failed to parse config file")
	})
}

func TestConfig_Validate(t *testing.T) {
	base := func() Config {
		return Config{
			Splitwise: Splitwise{
				ConsumerKey:            "consumerKey",
				ConsumerSecret:         "consumerSecret",
				FriendEmail:            "friend@example.com",
				TransactionsDatedAfter: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			},
			Ynab: Ynab{
				PersonalAccessToken:  "personalAccessToken",
				BudgetName:           "budgetName",
				SplitwiseAccountName: "splitwiseAccountName",
			},
		}
	}

	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{"missing consumer key", func(c *Config) { c.Splitwise.ConsumerKey = "" }, "splitwise.consumerKey"},
		{"missing consumer secret", func(c *Config) { c.Splitwise.ConsumerSecret = "" }, "splitwise.consumerSecret"},
		{"missing friend email", func(c *Config) { c.Splitwise.FriendEmail = "" }, "splitwise.friendEmail"},
		{"missing checkpoint", func(c *Config) { c.Splitwise.TransactionsDatedAfter = time.Time{} }, "splitwise.transactionsDatedAfter"},
		{"missing access token", func(c *Config) { c.Ynab.PersonalAccessToken = "" }, "ynab.personalAccessToken"},
		{"missing budget name", func(c *Config) { c.Ynab.BudgetName = "" }, "ynab.budgetName"},
		{"missing account name", func(c *Config) { c.Ynab.SplitwiseAccountName = "" }, "ynab.splitwiseAccountName"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)

			err := cfg.Validate()
			assert.ErrorContains(t, err, tt.wantField)
		})
	}

	t.Run("complete config is valid", func(t *testing.T) {
		cfg := base()
		assert.NoError(t, cfg.Validate())
	})
}

func TestConfig_Save(t *testing.T) {
	path := writeTempConfig(t, validConfigJSON)

	cfg, err := Load(path)
	assert.NoError(t, err)

	// Advance the checkpoint the way a committed run does, then reload.
	newCheckpoint := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	cfg.Splitwise.TransactionsDatedAfter = newCheckpoint
	assert.NoError(t, cfg.Save(path))

	reloaded, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, newCheckpoint, reloaded.Splitwise.TransactionsDatedAfter)
	assert.Equal(t, cfg.Ynab, reloaded.Ynab)
}
