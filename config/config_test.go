package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NotNil(t, cfg)
	assert.Equal(t, "USD_INR", cfg.Contract.Pair)
	assert.Equal(t, int64(1000), cfg.Contract.LotSize)
	assert.Equal(t, 2150.0, cfg.Contract.MarginPerLot)
	assert.Equal(t, 10_000_000.0, cfg.Scenario.InvestmentAmount)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"valid config", func(*Config) {}, ""},
		{"missing pair", func(c *Config) { c.Contract.Pair = "" }, "contract.pair is required"},
		{"zero lot size", func(c *Config) { c.Contract.LotSize = 0 }, "contract.lot_size must be positive"},
		{"negative margin", func(c *Config) { c.Contract.MarginPerLot = -1 }, "contract.margin_per_lot"},
		{"zero margin allowed", func(c *Config) { c.Contract.MarginPerLot = 0 }, ""},
		{"zero min rate", func(c *Config) { c.Bounds.MinRate = 0 }, "bounds.min_rate must be positive"},
		{"max <= min", func(c *Config) { c.Bounds.MaxRate = c.Bounds.MinRate }, "bounds.max_rate"},
		{"zero min investment", func(c *Config) { c.Bounds.MinInvestment = 0 }, "bounds.min_investment"},
		{"investment below guard", func(c *Config) { c.Scenario.InvestmentAmount = 50_000 }, "investment amount"},
		{"entry above guard", func(c *Config) { c.Scenario.EntryRate = 5000 }, "entry rate"},
		{"exit below guard", func(c *Config) { c.Scenario.ExitRate = 0.5 }, "exit rate"},
		{"bad journal type", func(c *Config) { c.Journal.Type = "postgres" }, "journal.type"},
		{"csv without file", func(c *Config) { c.Journal.Type = "csv" }, "journal.file required"},
		{"sqlite without path", func(c *Config) { c.Journal.Type = "sqlite" }, "journal.db_path required"},
		{"sqlite with path", func(c *Config) { c.Journal.Type = "sqlite"; c.Journal.DBPath = "x.db" }, ""},
		{"missing addr", func(c *Config) { c.Server.Addr = "" }, "server.addr is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestBoundsCheck(t *testing.T) {
	b := Default().Bounds

	assert.NoError(t, b.Check(100_000, 1, 1000))
	assert.ErrorIs(t, b.Check(99_999, 85, 90), ErrOutOfBounds)
	assert.ErrorIs(t, b.Check(1e7, 0.99, 90), ErrOutOfBounds)
	assert.ErrorIs(t, b.Check(1e7, 85, 1000.01), ErrOutOfBounds)
}

func TestInputs(t *testing.T) {
	cfg := Default()
	cfg.Contract.LotSize = 500
	cfg.Contract.MarginPerLot = 1200

	in := cfg.Inputs()
	assert.Equal(t, 10_000_000.0, in.InvestmentAmount)
	assert.Equal(t, 85.0, in.EntryRate)
	assert.Equal(t, 90.0, in.ExitRate)
	assert.Equal(t, int64(500), in.LotSize)
	assert.Equal(t, 1200.0, in.MarginPerLot)
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name string
		ext  string
	}{
		{"json format", ".json"},
		{"yaml format", ".yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Scenario.ExitRate = 88.5
			path := filepath.Join(tmpDir, "test"+tt.ext)

			require.NoError(t, cfg.SaveToFile(path))

			_, err := os.Stat(path)
			require.NoError(t, err)

			loaded, err := LoadFromFile(path)
			require.NoError(t, err)
			assert.Equal(t, cfg, loaded)
		})
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	data := []byte("scenario:\n  investment_amount: 2500000\n  entry_rate: 83\n  exit_rate: 87\n")
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2_500_000.0, cfg.Scenario.InvestmentAmount)
	assert.Equal(t, 83.0, cfg.Scenario.EntryRate)
	assert.Equal(t, int64(1000), cfg.Contract.LotSize)
	assert.Equal(t, "none", cfg.Journal.Type)
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/path.yaml")
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("contract:\n  lot_size: -5\n"), 0644))
	_, err = LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestJournalPath(t *testing.T) {
	assert.Equal(t, "s.csv", JournalConfig{Type: "csv", File: "s.csv", DBPath: "s.db"}.Path())
	assert.Equal(t, "s.db", JournalConfig{Type: "sqlite", File: "s.csv", DBPath: "s.db"}.Path())
	assert.Equal(t, "", JournalConfig{Type: "none"}.Path())
}
