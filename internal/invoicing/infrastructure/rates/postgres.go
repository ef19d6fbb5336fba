package rates

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	invoicing "swimclub/internal/invoicing/domain"
	roster "swimclub/internal/roster/domain"
)

const defaultRatesTable = "qualification_rates"

// PostgresSource loads the qualification rate table from the database, so
// clubs can maintain rates without redeploying.
type PostgresSource struct {
	db    *sql.DB
	table string
}

// PostgresOption configures the source.
type PostgresOption func(*PostgresSource)

// WithRatesTable overrides the rates table name.
func WithRatesTable(table string) PostgresOption {
	return func(s *PostgresSource) {
		if table != "" {
			s.table = table
		}
	}
}

// NewPostgresSource constructs a source.
func NewPostgresSource(db *sql.DB, opts ...PostgresOption) *PostgresSource {
	s := &PostgresSource{db: db, table: defaultRatesTable}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads every tier rate row and builds the table.
func (s *PostgresSource) Load(ctx context.Context) (*invoicing.RateTable, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("rate source: nil db")
	}
	query := fmt.Sprintf(`SELECT tier, hourly_rate FROM %s`, s.table)
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hourly := make(map[roster.QualificationTier]float64)
	for rows.Next() {
		var rawTier string
		var rate float64
		if err := rows.Scan(&rawTier, &rate); err != nil {
			return nil, err
		}
		tier, err := roster.ParseQualificationTier(rawTier)
		if err != nil {
			return nil, err
		}
		hourly[tier] = rate
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return invoicing.NewRateTable(hourly)
}
