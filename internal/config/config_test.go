package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default("Papelería Lupita")
	cfg.Tax.VATRate = "0.08"

	path := filepath.Join(t.TempDir(), FileName)
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg, got)
}

func TestDefaults(t *testing.T) {
	cfg := Default("My Company")

	assert.Equal(t, "My Company", cfg.Business.Name)
	assert.Equal(t, "0.16", cfg.Tax.VATRate)
	assert.Equal(t, "balance.db", cfg.Store.Path)
	assert.Equal(t, "default", cfg.Store.Book)
	assert.Equal(t, ":8888", cfg.Server.Addr)
	assert.Equal(t, "export", cfg.Export.Dir)
	assert.False(t, cfg.Export.AutoCommit)
	require.NoError(t, cfg.Validate())

	r, err := cfg.Rates()
	require.NoError(t, err)
	assert.Equal(t, "0.16", r.VAT.String())
	assert.Equal(t, "0.3", r.ISR.String())
	assert.Equal(t, "0.1", r.PTU.String())
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestYAMLFormat(t *testing.T) {
	cfg := Default("Test Biz")
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "name: Test Biz")
	assert.Contains(t, contents, `vat_rate: "0.16"`)
	assert.Contains(t, contents, "path: balance.db")
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"BALANCE_VAT_RATE":  "0.08",
		"BALANCE_DB":        "/tmp/other.db",
		"BALANCE_LOG_LEVEL": " debug ",
		"BALANCE_ADDR":      "",
	}
	cfg := Default("Test Biz")
	cfg.ApplyEnv(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})

	assert.Equal(t, "0.08", cfg.Tax.VATRate)
	assert.Equal(t, "/tmp/other.db", cfg.Store.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, ":8888", cfg.Server.Addr)
	assert.Equal(t, "debug", cfg.Logger().Level)
}

func TestRates_Invalid(t *testing.T) {
	tests := []struct {
		name string
		vat  string
	}{
		{"not a number", "sixteen"},
		{"negative", "-0.16"},
		{"above one", "16"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default("Biz")
			cfg.Tax.VATRate = tt.vat
			_, err := cfg.Rates()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "tax.vat_rate")
			require.Error(t, cfg.Validate())
		})
	}
}

func TestRates_EmptyFallsBack(t *testing.T) {
	cfg := &Config{}
	r, err := cfg.Rates()
	require.NoError(t, err)
	assert.Equal(t, "0.16", r.VAT.String())
}

func TestValidate_Joins(t *testing.T) {
	cfg := &Config{}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "business.name")
	assert.Contains(t, err.Error(), "store.path")
	assert.Contains(t, err.Error(), "store.book")
}
