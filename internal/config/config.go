// Package config loads named coin systems and CLI defaults from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/katalvlaran/coinchange/change"
	"gopkg.in/yaml.v3"
)

const (
	DefaultCurrency  = "us"
	DefaultMaxTarget = 1_000_000
)

var (
	// ErrUnknownCurrency indicates a currency name missing from Currencies.
	ErrUnknownCurrency = errors.New("config: unknown currency")
	// ErrInvalidConfig indicates a config that fails Validate.
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config is the on-disk configuration of the coinchange CLI.
type Config struct {
	DefaultCurrency string           `yaml:"default_currency"`
	MaxTarget       int              `yaml:"max_target"`
	Currencies      map[string][]int `yaml:"currencies"`
}

// DefaultConfig returns the built-in currencies: US coins, US coins with the
// hypothetical 21 piece, and euro coins in cents.
func DefaultConfig() *Config {
	return &Config{
		DefaultCurrency: DefaultCurrency,
		MaxTarget:       DefaultMaxTarget,
		Currencies: map[string][]int{
			"us":   {1, 5, 10, 25},
			"us21": {1, 5, 10, 21, 25},
			"euro": {1, 2, 5, 10, 20, 50, 100, 200},
		},
	}
}

// Load reads path and overlays it on DefaultConfig. Currencies in the file
// are added to, or replace, the built-in ones.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// Validate checks the default currency exists, every currency is a valid
// denomination set and MaxTarget is positive.
func (c *Config) Validate() error {
	if c.MaxTarget <= 0 {
		return fmt.Errorf("%w: max_target must be positive, got %d", ErrInvalidConfig, c.MaxTarget)
	}
	if _, ok := c.Currencies[c.DefaultCurrency]; !ok {
		return fmt.Errorf("%w: default_currency %q is not defined", ErrInvalidConfig, c.DefaultCurrency)
	}
	for _, name := range c.Names() {
		if err := change.ValidateDenominations(c.Currencies[name]); err != nil {
			return fmt.Errorf("%w: currency %q: %w", ErrInvalidConfig, name, err)
		}
	}

	return nil
}

// Denominations returns a copy of the coins of currency name; an empty name
// selects DefaultCurrency.
func (c *Config) Denominations(name string) ([]int, error) {
	if name == "" {
		name = c.DefaultCurrency
	}
	coins, ok := c.Currencies[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCurrency, name)
	}

	return append([]int(nil), coins...), nil
}

// Names returns the currency names in sorted order.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Currencies))
	for name := range c.Currencies {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
