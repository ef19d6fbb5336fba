package invoicing

import "math"

// InvoiceRates records the rates the invoice was priced at.
type InvoiceRates struct {
	HourlyRate         float64 `json:"hourly_rate"`
	SessionWritingRate float64 `json:"session_writing_rate"`
}

// SessionLine is one coached session on the invoice, kept for audit/display.
type SessionLine struct {
	SessionID string       `json:"session_id"`
	Date      string       `json:"date"`
	StartTime string       `json:"start_time"`
	EndTime   string       `json:"end_time"`
	SquadID   string       `json:"squad_id,omitempty"`
	Role      CoachingRole `json:"role"`
	Duration  float64      `json:"duration"`
}

// CompetitionLine is one competition time block on the invoice.
type CompetitionLine struct {
	CompetitionID   string  `json:"competition_id"`
	CompetitionName string  `json:"competition_name,omitempty"`
	Date            string  `json:"date"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	Duration        float64 `json:"duration"`
}

// WritingLine is one session the coach wrote the set for. Flat fee, no hours.
type WritingLine struct {
	SessionID string `json:"session_id"`
	Date      string `json:"date"`
	SquadID   string `json:"squad_id,omitempty"`
}

// CoachingBreakdown splits coaching hours by activity source.
type CoachingBreakdown struct {
	SessionHours     float64 `json:"session_hours"`
	CompetitionHours float64 `json:"competition_hours"`
}

// CoachingSummary aggregates all coached activity for the month.
type CoachingSummary struct {
	TotalHours   float64           `json:"total_hours"`
	Breakdown    CoachingBreakdown `json:"breakdown"`
	Sessions     []SessionLine     `json:"sessions"`
	Competitions []CompetitionLine `json:"competitions"`
	Earnings     float64           `json:"earnings"`
}

// WritingSummary aggregates set-writing activity for the month. Independent
// of and additive with coaching pay.
type WritingSummary struct {
	Count    int           `json:"count"`
	Sessions []WritingLine `json:"sessions"`
	Earnings float64       `json:"earnings"`
}

// InvoiceTotals is the grand total block.
type InvoiceTotals struct {
	TotalEarnings        float64 `json:"total_earnings"`
	TotalHours           float64 `json:"total_hours"`
	TotalSessionsWritten int     `json:"total_sessions_written"`
}

// Invoice is the engine's output: one reproducible monthly earnings record
// for one coach. Constructed fresh per request and never persisted by the
// engine itself. All reported figures are rounded to 2 decimal places at this
// boundary only; internal accumulation is unrounded.
type Invoice struct {
	CoachID        string          `json:"coach_id"`
	CoachName      string          `json:"coach_name,omitempty"`
	Year           int             `json:"year"`
	Month          int             `json:"month"`
	Rates          InvoiceRates    `json:"rates"`
	Coaching       CoachingSummary `json:"coaching"`
	SessionWriting WritingSummary  `json:"session_writing"`
	Totals         InvoiceTotals   `json:"totals"`
	Warnings       []Warning       `json:"warnings,omitempty"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
