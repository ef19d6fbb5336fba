package invoicing

import (
	roster "swimclub/internal/roster/domain"
)

// writingRateFraction derives the flat per-session set-writing fee from the
// hourly coaching rate.
const writingRateFraction = 0.5

// RateTable maps qualification tiers to hourly coaching rates. A static
// lookup: any tier not present is ErrUnknownTier.
type RateTable struct {
	hourly map[roster.QualificationTier]float64
}

// NewRateTable constructs a table from explicit tier rates.
func NewRateTable(hourly map[roster.QualificationTier]float64) (*RateTable, error) {
	if len(hourly) == 0 {
		return nil, ErrUnknownTier
	}
	rates := make(map[roster.QualificationTier]float64, len(hourly))
	for tier, rate := range hourly {
		if rate < 0 {
			return nil, ErrNegativeRate
		}
		rates[tier] = rate
	}
	return &RateTable{hourly: rates}, nil
}

// DefaultRateTable returns the club's standard tier rates. TierNone resolves
// to zero (volunteer coaches) and is a valid, non-error input.
func DefaultRateTable() *RateTable {
	return &RateTable{hourly: map[roster.QualificationTier]float64{
		roster.TierNone:   0,
		roster.TierLevel1: 12,
		roster.TierLevel2: 17,
		roster.TierLevel3: 22,
		roster.TierSenior: 28,
	}}
}

// HourlyRate returns the coaching rate for a tier.
func (t *RateTable) HourlyRate(tier roster.QualificationTier) (float64, error) {
	rate, ok := t.hourly[tier]
	if !ok {
		return 0, ErrUnknownTier
	}
	return rate, nil
}

// SessionWritingRate returns the flat per-session fee for writing a set.
func (t *RateTable) SessionWritingRate(tier roster.QualificationTier) (float64, error) {
	rate, err := t.HourlyRate(tier)
	if err != nil {
		return 0, err
	}
	return rate * writingRateFraction, nil
}
