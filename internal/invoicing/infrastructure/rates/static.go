package rates

import (
	"context"

	invoicing "swimclub/internal/invoicing/domain"
)

// StaticSource serves a fixed rate table.
type StaticSource struct {
	table *invoicing.RateTable
}

// NewStaticSource constructs a source around an already-built table. A nil
// table falls back to the club default rates.
func NewStaticSource(table *invoicing.RateTable) *StaticSource {
	if table == nil {
		table = invoicing.DefaultRateTable()
	}
	return &StaticSource{table: table}
}

// Load returns the fixed table.
func (s *StaticSource) Load(ctx context.Context) (*invoicing.RateTable, error) {
	_ = ctx
	return s.table, nil
}
