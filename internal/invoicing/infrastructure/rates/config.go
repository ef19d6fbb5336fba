package rates

import (
	"context"
	"os"

	"gopkg.in/yaml.v3"

	invoicing "swimclub/internal/invoicing/domain"
	roster "swimclub/internal/roster/domain"
)

// Config defines the qualification rate table as loaded from yaml.
type Config struct {
	Hourly map[string]float64 `yaml:"hourly"`
}

// LoadConfig reads a rate table config file. An empty path returns the club
// default table so a bare deployment still prices invoices.
func LoadConfig(path string) (*invoicing.RateTable, error) {
	if path == "" {
		return invoicing.DefaultRateTable(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	hourly := make(map[roster.QualificationTier]float64, len(cfg.Hourly))
	for raw, rate := range cfg.Hourly {
		tier, err := roster.ParseQualificationTier(raw)
		if err != nil {
			return nil, err
		}
		hourly[tier] = rate
	}
	return invoicing.NewRateTable(hourly)
}

// ConfigSource serves a table loaded once from a yaml file.
type ConfigSource struct {
	table *invoicing.RateTable
}

// NewConfigSource loads the file at construction time; rates change rarely
// enough that a restart on change is acceptable.
func NewConfigSource(path string) (*ConfigSource, error) {
	table, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return &ConfigSource{table: table}, nil
}

// Load returns the loaded table.
func (s *ConfigSource) Load(ctx context.Context) (*invoicing.RateTable, error) {
	_ = ctx
	return s.table, nil
}
