// Package config reads and writes the balance.yaml book configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/Fr4ncx-04/Balance/internal/logger"
	"github.com/Fr4ncx-04/Balance/internal/model"
)

// FileName is the configuration file at the root of a book directory.
const FileName = "balance.yaml"

// Config represents the top-level balance.yaml configuration.
type Config struct {
	Business BusinessConfig `yaml:"business"`
	Tax      TaxConfig      `yaml:"tax"`
	Store    StoreConfig    `yaml:"store"`
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Export   ExportConfig   `yaml:"export"`
}

// BusinessConfig identifies the business entity.
type BusinessConfig struct {
	Name string `yaml:"name"`
}

// TaxConfig holds the rates as decimal strings, e.g. "0.16".
type TaxConfig struct {
	VATRate string `yaml:"vat_rate"`
	ISRRate string `yaml:"isr_rate"`
	PTURate string `yaml:"ptu_rate"`
}

// StoreConfig locates the operation log. A relative path is resolved
// against the book directory.
type StoreConfig struct {
	Path string `yaml:"path"`
	Book string `yaml:"book"`
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LogConfig mirrors logger.LogConfig in YAML form.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// ExportConfig controls where CSV snapshots go and whether they are
// committed to git.
type ExportConfig struct {
	Dir         string `yaml:"dir"`
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a balance.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new book.
func Default(businessName string) *Config {
	return &Config{
		Business: BusinessConfig{Name: businessName},
		Tax: TaxConfig{
			VATRate: "0.16",
			ISRRate: "0.30",
			PTURate: "0.10",
		},
		Store: StoreConfig{
			Path: "balance.db",
			Book: "default",
		},
		Server: ServerConfig{Addr: ":8888"},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
			Output: "stderr",
		},
		Export: ExportConfig{
			Dir:         "export",
			AutoCommit:  false,
			AuthorName:  "Balance",
			AuthorEmail: "balance@localhost",
		},
	}
}

// ApplyEnv overlays BALANCE_* environment variables onto cfg. lookup is
// usually os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	set := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	set("BALANCE_COMPANY", &c.Business.Name)
	set("BALANCE_VAT_RATE", &c.Tax.VATRate)
	set("BALANCE_ISR_RATE", &c.Tax.ISRRate)
	set("BALANCE_PTU_RATE", &c.Tax.PTURate)
	set("BALANCE_DB", &c.Store.Path)
	set("BALANCE_BOOK", &c.Store.Book)
	set("BALANCE_ADDR", &c.Server.Addr)
	set("BALANCE_LOG_LEVEL", &c.Log.Level)
	set("BALANCE_LOG_FORMAT", &c.Log.Format)
	set("BALANCE_LOG_OUTPUT", &c.Log.Output)
}

// Rates parses the tax section. Empty values fall back to the defaults.
func (c *Config) Rates() (model.Rates, error) {
	r := model.DefaultRates()
	fields := []struct {
		name string
		raw  string
		dst  *decimal.Decimal
	}{
		{"vat_rate", c.Tax.VATRate, &r.VAT},
		{"isr_rate", c.Tax.ISRRate, &r.ISR},
		{"ptu_rate", c.Tax.PTURate, &r.PTU},
	}
	for _, f := range fields {
		if f.raw == "" {
			continue
		}
		d, err := decimal.NewFromString(f.raw)
		if err != nil {
			return model.Rates{}, fmt.Errorf("tax.%s: %w", f.name, err)
		}
		if d.IsNegative() || d.GreaterThan(decimal.NewFromInt(1)) {
			return model.Rates{}, fmt.Errorf("tax.%s: %s is outside [0, 1]", f.name, f.raw)
		}
		*f.dst = d
	}
	return r, nil
}

// Logger converts the log section, filling gaps from logger.DefaultConfig.
func (c *Config) Logger() logger.LogConfig {
	lc := logger.DefaultConfig()
	if c.Log.Level != "" {
		lc.Level = c.Log.Level
	}
	if c.Log.Format != "" {
		lc.Format = c.Log.Format
	}
	if c.Log.Output != "" {
		lc.Output = c.Log.Output
	}
	return lc
}

// Validate reports every problem found in cfg.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Business.Name) == "" {
		errs = append(errs, errors.New("business.name is required"))
	}
	if _, err := c.Rates(); err != nil {
		errs = append(errs, err)
	}
	if c.Store.Path == "" {
		errs = append(errs, errors.New("store.path is required"))
	}
	if c.Store.Book == "" {
		errs = append(errs, errors.New("store.book is required"))
	}
	return errors.Join(errs...)
}
