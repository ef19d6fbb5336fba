package roster

import "errors"

// QualificationTier is a coach's certification level. It determines the
// hourly coaching rate applied by the invoicing engine.
type QualificationTier string

const (
	// TierNone marks volunteer coaches with no qualification. Valid, unpaid.
	TierNone   QualificationTier = "none"
	TierLevel1 QualificationTier = "level1"
	TierLevel2 QualificationTier = "level2"
	TierLevel3 QualificationTier = "level3"
	TierSenior QualificationTier = "senior"
)

var (
	// ErrUnknownQualificationTier is returned when a tier string is not recognised.
	ErrUnknownQualificationTier = errors.New("roster: unknown qualification tier")
	// ErrCoachNotFound is returned when a coach id resolves to nothing.
	ErrCoachNotFound = errors.New("roster: coach not found")
)

var tierOrder = []QualificationTier{TierNone, TierLevel1, TierLevel2, TierLevel3, TierSenior}

// Coach is the read model the invoicing engine consumes. Immutable for the
// duration of a computation.
type Coach struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Email         string            `json:"email,omitempty"`
	Qualification QualificationTier `json:"qualification"`
}

// ParseQualificationTier validates a stored tier string.
func ParseQualificationTier(s string) (QualificationTier, error) {
	for _, tier := range tierOrder {
		if s == string(tier) {
			return tier, nil
		}
	}
	return "", ErrUnknownQualificationTier
}

// Tiers returns all known tiers in ascending qualification order.
func Tiers() []QualificationTier {
	out := make([]QualificationTier, len(tierOrder))
	copy(out, tierOrder)
	return out
}
