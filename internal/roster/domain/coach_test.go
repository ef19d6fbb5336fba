package roster

import (
	"errors"
	"testing"
)

func TestParseQualificationTier(t *testing.T) {
	for _, tier := range Tiers() {
		parsed, err := ParseQualificationTier(string(tier))
		if err != nil {
			t.Fatalf("parse %s: %v", tier, err)
		}
		if parsed != tier {
			t.Fatalf("expected %s, got %s", tier, parsed)
		}
	}

	if _, err := ParseQualificationTier("gold"); !errors.Is(err, ErrUnknownQualificationTier) {
		t.Fatalf("expected unknown tier error, got %v", err)
	}
	if _, err := ParseQualificationTier(""); !errors.Is(err, ErrUnknownQualificationTier) {
		t.Fatalf("expected unknown tier error for empty string, got %v", err)
	}
}
