package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.MonthsBefore)
	assert.Equal(t, 6, cfg.MonthsAfter)
	assert.Equal(t, 6, cfg.AnchorDay)
}

func TestMonthsContextSetsBothSpans(t *testing.T) {
	t.Setenv("MONTHS_CONTEXT", "12")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.MonthsBefore)
	assert.Equal(t, 12, cfg.MonthsAfter)
}

func TestSpecificSpansBeatMonthsContext(t *testing.T) {
	t.Setenv("MONTHS_CONTEXT", "12")
	t.Setenv("MONTHS_BEFORE", "3")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.MonthsBefore)
	assert.Equal(t, 12, cfg.MonthsAfter, "only the absent span inherits the context")
}

func TestNewConfigRejectsBadInteger(t *testing.T) {
	t.Setenv("ANCHOR_DAY", "sixth")

	_, err := NewConfig()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"missing ledger path", func(c *Config) { c.LedgerPath = "" }, true},
		{"anchor day too small", func(c *Config) { c.AnchorDay = 0 }, true},
		{"anchor day past 28", func(c *Config) { c.AnchorDay = 29 }, true},
		{"zero historical span", func(c *Config) { c.MonthsBefore = 0 }, true},
		{"negative projection span", func(c *Config) { c.MonthsAfter = -1 }, true},
		{"zero projection span is fine", func(c *Config) { c.MonthsAfter = 0 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				LedgerPath:   "books.gnucash",
				MonthsBefore: 6,
				MonthsAfter:  6,
				AnchorDay:    6,
			}
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
