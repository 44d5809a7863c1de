package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rustyeddy/hedger/hedge"
	"gopkg.in/yaml.v3"
)

// ErrOutOfBounds is returned when inputs are valid for the calculator but
// fall outside the configured UI guard rails.
var ErrOutOfBounds = errors.New("input out of bounds")

// Config represents the complete calculator configuration
type Config struct {
	Contract ContractConfig `json:"contract" yaml:"contract"`
	Scenario ScenarioConfig `json:"scenario" yaml:"scenario"`
	Bounds   BoundsConfig   `json:"bounds" yaml:"bounds"`
	Journal  JournalConfig  `json:"journal" yaml:"journal"`
	Server   ServerConfig   `json:"server" yaml:"server"`
}

// ContractConfig describes the futures contract used to hedge
type ContractConfig struct {
	Pair         string  `json:"pair" yaml:"pair"`
	LotSize      int64   `json:"lot_size" yaml:"lot_size"`
	MarginPerLot float64 `json:"margin_per_lot" yaml:"margin_per_lot"`
}

// ScenarioConfig holds the default investment and rates
type ScenarioConfig struct {
	InvestmentAmount float64 `json:"investment_amount" yaml:"investment_amount"`
	EntryRate        float64 `json:"entry_rate" yaml:"entry_rate"`
	ExitRate         float64 `json:"exit_rate" yaml:"exit_rate"`
}

// BoundsConfig limits what a user may enter
type BoundsConfig struct {
	MinRate       float64 `json:"min_rate" yaml:"min_rate"`
	MaxRate       float64 `json:"max_rate" yaml:"max_rate"`
	MinInvestment float64 `json:"min_investment" yaml:"min_investment"`
}

// JournalConfig contains journaling parameters
type JournalConfig struct {
	Type   string `json:"type" yaml:"type"` // "none", "csv" or "sqlite"
	File   string `json:"file,omitempty" yaml:"file,omitempty"`
	DBPath string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// Path returns the file the configured journal type writes to.
func (j JournalConfig) Path() string {
	if j.Type == "sqlite" {
		return j.DBPath
	}
	return j.File
}

// ServerConfig contains HTTP API parameters
type ServerConfig struct {
	Addr string `json:"addr" yaml:"addr"`
}

// LoadFromFile loads configuration from a file (JSON or YAML)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// Start from defaults so a partial file only overrides what it names.
	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		cfg = Default()
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Contract.Pair == "" {
		return fmt.Errorf("contract.pair is required")
	}
	if c.Contract.LotSize <= 0 {
		return fmt.Errorf("contract.lot_size must be positive")
	}
	if c.Contract.MarginPerLot < 0 {
		return fmt.Errorf("contract.margin_per_lot must not be negative")
	}
	if c.Bounds.MinRate <= 0 {
		return fmt.Errorf("bounds.min_rate must be positive")
	}
	if c.Bounds.MaxRate <= c.Bounds.MinRate {
		return fmt.Errorf("bounds.max_rate must be greater than bounds.min_rate")
	}
	if c.Bounds.MinInvestment <= 0 {
		return fmt.Errorf("bounds.min_investment must be positive")
	}
	if err := c.Bounds.Check(c.Scenario.InvestmentAmount, c.Scenario.EntryRate, c.Scenario.ExitRate); err != nil {
		return fmt.Errorf("scenario: %w", err)
	}
	switch c.Journal.Type {
	case "none":
	case "csv":
		if c.Journal.File == "" {
			return fmt.Errorf("journal.file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal.db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'none', 'csv' or 'sqlite'")
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	return nil
}

// Check applies the guard rails to a single scenario.
func (b BoundsConfig) Check(investmentAmount, entryRate, exitRate float64) error {
	if investmentAmount < b.MinInvestment {
		return fmt.Errorf("%w: investment amount %v below minimum %v", ErrOutOfBounds, investmentAmount, b.MinInvestment)
	}
	if entryRate < b.MinRate || entryRate > b.MaxRate {
		return fmt.Errorf("%w: entry rate %v outside %v..%v", ErrOutOfBounds, entryRate, b.MinRate, b.MaxRate)
	}
	if exitRate < b.MinRate || exitRate > b.MaxRate {
		return fmt.Errorf("%w: exit rate %v outside %v..%v", ErrOutOfBounds, exitRate, b.MinRate, b.MaxRate)
	}
	return nil
}

// HedgeContract returns the configured futures contract.
func (c *Config) HedgeContract() hedge.Contract {
	return hedge.Contract{
		LotSize:      c.Contract.LotSize,
		MarginPerLot: c.Contract.MarginPerLot,
	}
}

// Inputs returns calculator inputs for the configured scenario.
func (c *Config) Inputs() hedge.Inputs {
	return c.HedgeContract().Inputs(c.Scenario.InvestmentAmount, c.Scenario.EntryRate, c.Scenario.ExitRate)
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	contract := hedge.DefaultContract()
	return &Config{
		Contract: ContractConfig{
			Pair:         "USD_INR",
			LotSize:      contract.LotSize,
			MarginPerLot: contract.MarginPerLot,
		},
		Scenario: ScenarioConfig{
			InvestmentAmount: 10_000_000,
			EntryRate:        85.0,
			ExitRate:         90.0,
		},
		Bounds: BoundsConfig{
			MinRate:       1,
			MaxRate:       1000,
			MinInvestment: 100_000,
		},
		Journal: JournalConfig{
			Type: "none",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}
