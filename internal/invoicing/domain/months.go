package invoicing

import (
	"sort"

	scheduling "swimclub/internal/scheduling/domain"
)

// YearMonth identifies one invoice period.
type YearMonth struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// AvailableMonths scans all activity for a coach once and returns the
// distinct months containing any invoiceable activity, most recent first.
// A session counts if the coach holds any role or wrote the set; a
// competition counts per block date. An empty result is valid: it means no
// invoice history exists yet, not an error.
func AvailableMonths(coachID string, sessions []scheduling.Session, assignments []scheduling.CoachAssignment) []YearMonth {
	seen := make(map[MonthKey]struct{})
	for _, session := range sessions {
		_, coached := roleFor(coachID, session)
		if !coached && session.SetWriterID != coachID {
			continue
		}
		addMonth(seen, session.Date)
	}
	for _, assignment := range assignments {
		if assignment.CoachID != coachID {
			continue
		}
		for _, block := range assignment.Blocks {
			addMonth(seen, block.Date)
		}
	}

	out := make([]YearMonth, 0, len(seen))
	for key := range seen {
		year, month, err := key.YearMonth()
		if err != nil {
			continue
		}
		out = append(out, YearMonth{Year: year, Month: month})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year > out[j].Year
		}
		return out[i].Month > out[j].Month
	})
	return out
}

func addMonth(seen map[MonthKey]struct{}, date string) {
	key, err := DateMonthKey(date)
	if err != nil {
		return
	}
	seen[key] = struct{}{}
}
