package invoicing

import (
	"errors"

	roster "swimclub/internal/roster/domain"
	scheduling "swimclub/internal/scheduling/domain"
)

// BuildInvoice combines the three selector outputs with the rate table into
// one invoice. Deterministic and idempotent: two calls with identical inputs
// yield identical output, and nothing but the caller-supplied year and month
// decides the period.
//
// Records with an invalid time range are excluded from totals and flagged as
// warnings rather than aborting the whole computation; one malformed record
// must not block the report. An unknown qualification tier is fatal.
func BuildInvoice(
	coach roster.Coach,
	year, month int,
	rates *RateTable,
	coaching []CoachingSession,
	writing []scheduling.Session,
	blocks []CompetitionBlock,
) (*Invoice, error) {
	if _, err := BuildMonthKey(year, month); err != nil {
		return nil, err
	}
	if rates == nil {
		return nil, ErrUnknownTier
	}
	hourlyRate, err := rates.HourlyRate(coach.Qualification)
	if err != nil {
		return nil, err
	}
	writingRate, err := rates.SessionWritingRate(coach.Qualification)
	if err != nil {
		return nil, err
	}

	var warnings []Warning
	var sessionHours float64
	sessionLines := make([]SessionLine, 0, len(coaching))
	for _, cs := range coaching {
		hours, err := Hours(cs.Session.StartTime, cs.Session.EndTime)
		if err != nil {
			warnings = append(warnings, timeRangeWarning(cs.Session.ID, cs.Session.Date, err))
			continue
		}
		sessionHours += hours
		sessionLines = append(sessionLines, SessionLine{
			SessionID: cs.Session.ID,
			Date:      cs.Session.Date,
			StartTime: cs.Session.StartTime,
			EndTime:   cs.Session.EndTime,
			SquadID:   cs.Session.SquadID,
			Role:      cs.Role,
			Duration:  round2(hours),
		})
	}

	var competitionHours float64
	competitionLines := make([]CompetitionLine, 0, len(blocks))
	for _, cb := range blocks {
		hours, err := Hours(cb.Block.StartTime, cb.Block.EndTime)
		if err != nil {
			warnings = append(warnings, timeRangeWarning(cb.CompetitionID, cb.Block.Date, err))
			continue
		}
		competitionHours += hours
		competitionLines = append(competitionLines, CompetitionLine{
			CompetitionID:   cb.CompetitionID,
			CompetitionName: cb.CompetitionName,
			Date:            cb.Block.Date,
			StartTime:       cb.Block.StartTime,
			EndTime:         cb.Block.EndTime,
			Duration:        round2(hours),
		})
	}

	writingLines := make([]WritingLine, 0, len(writing))
	for _, session := range writing {
		writingLines = append(writingLines, WritingLine{
			SessionID: session.ID,
			Date:      session.Date,
			SquadID:   session.SquadID,
		})
	}

	totalHours := sessionHours + competitionHours
	coachingEarnings := totalHours * hourlyRate
	writingEarnings := float64(len(writingLines)) * writingRate

	return &Invoice{
		CoachID:   coach.ID,
		CoachName: coach.Name,
		Year:      year,
		Month:     month,
		Rates: InvoiceRates{
			HourlyRate:         round2(hourlyRate),
			SessionWritingRate: round2(writingRate),
		},
		Coaching: CoachingSummary{
			TotalHours: round2(totalHours),
			Breakdown: CoachingBreakdown{
				SessionHours:     round2(sessionHours),
				CompetitionHours: round2(competitionHours),
			},
			Sessions:     sessionLines,
			Competitions: competitionLines,
			Earnings:     round2(coachingEarnings),
		},
		SessionWriting: WritingSummary{
			Count:    len(writingLines),
			Sessions: writingLines,
			Earnings: round2(writingEarnings),
		},
		Totals: InvoiceTotals{
			TotalEarnings:        round2(coachingEarnings + writingEarnings),
			TotalHours:           round2(totalHours),
			TotalSessionsWritten: len(writingLines),
		},
		Warnings: warnings,
	}, nil
}

func timeRangeWarning(recordID, date string, err error) Warning {
	kind := WarningInvalidTimeRange
	detail := "record excluded: end time is not after start time"
	if errors.Is(err, ErrMalformedTime) {
		detail = "record excluded: time is not an HH:MM string"
	}
	return Warning{Kind: kind, RecordID: recordID, Date: date, Detail: detail}
}
