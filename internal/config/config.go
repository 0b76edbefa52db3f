// Package config loads and persists the appsettings.json configuration file.
//
// The schema is statically typed and validated up front, so a misconfigured
// file fails before any remote call is made.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Config is the full application configuration.
type Config struct {
	Splitwise Splitwise `json:"splitwise"`
	Ynab      Ynab      `json:"ynab"`
}

// Splitwise holds the bill-splitting service credentials and expense filter.
type Splitwise struct {
	ConsumerKey    string `json:"consumerKey"`
	ConsumerSecret string `json:"consumerSecret"`
	FriendEmail    string `json:"friendEmail"`

	// TransactionsDatedAfter is the checkpoint: only expenses dated after
	// this instant are considered. Advanced after a successful commit run.
	TransactionsDatedAfter time.Time `json:"transactionsDatedAfter"`
}

// Ynab holds the budgeting service credential and target names.
type Ynab struct {
	PersonalAccessToken  string `json:"personalAccessToken"`
	BudgetName           string `json:"budgetName"`
	SplitwiseAccountName string `json:"splitwiseAccountName"`
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return &cfg, nil
}

// Validate checks that every required field is present.
func (c *Config) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"splitwise.consumerKey", c.Splitwise.ConsumerKey},
		{"splitwise.consumerSecret", c.Splitwise.ConsumerSecret},
		{"splitwise.friendEmail", c.Splitwise.FriendEmail},
		{"ynab.personalAccessToken", c.Ynab.PersonalAccessToken},
		{"ynab.budgetName", c.Ynab.BudgetName},
		{"ynab.splitwiseAccountName", c.Ynab.SplitwiseAccountName},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("missing required field %s", r.field)
		}
	}
	if c.Splitwise.TransactionsDatedAfter.IsZero() {
		return fmt.Errorf("missing required field splitwise.transactionsDatedAfter")
	}
	return nil
}

// Save writes the configuration back to path. Used to persist the advanced
// checkpoint after a successful commit run.
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return nil
}
