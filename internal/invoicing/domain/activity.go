package invoicing

import (
	scheduling "swimclub/internal/scheduling/domain"
)

// CoachingRole tags which role a coach held in a session. Display only: a
// session pays at most once per month regardless of how many roles the coach
// holds in it.
type CoachingRole string

const (
	RoleLead   CoachingRole = "lead"
	RoleSecond CoachingRole = "second"
	RoleHelper CoachingRole = "helper"
)

// CoachingSession is a session the coach worked, tagged with the role chosen
// by priority lead > second > helper.
type CoachingSession struct {
	Session scheduling.Session
	Role    CoachingRole
}

// CompetitionBlock is a single in-month time block of a coach's competition
// assignment. A multi-day competition contributes one block per matching day,
// so an assignment straddling a month boundary splits cleanly by block date.
type CompetitionBlock struct {
	CompetitionID   string
	CompetitionName string
	Block           scheduling.TimeBlock
}

// WarningKind classifies a per-record data-quality problem.
type WarningKind string

const (
	WarningMalformedDate    WarningKind = "malformed_date"
	WarningInvalidTimeRange WarningKind = "invalid_time_range"
)

// Warning flags a source record excluded from totals. The invoice carries its
// warnings so callers can show the report as visibly incomplete instead of
// silently short.
type Warning struct {
	Kind     WarningKind `json:"kind"`
	RecordID string      `json:"record_id"`
	Date     string      `json:"date,omitempty"`
	Detail   string      `json:"detail"`
}

// SelectCoachingSessions keeps sessions in the given month where the coach
// holds any of the lead, second, or helper roles. Sessions with no qualifying
// role are silently excluded; that is the common case when scanning all
// sessions for one coach. Malformed dates are excluded with a warning.
func SelectCoachingSessions(coachID string, key MonthKey, sessions []scheduling.Session) ([]CoachingSession, []Warning) {
	var out []CoachingSession
	var warnings []Warning
	for _, session := range sessions {
		role, ok := roleFor(coachID, session)
		if !ok {
			continue
		}
		in, warn := inMonth(session.ID, session.Date, key)
		if warn != nil {
			warnings = append(warnings, *warn)
			continue
		}
		if !in {
			continue
		}
		out = append(out, CoachingSession{Session: session, Role: role})
	}
	return out, warnings
}

// SelectWritingSessions keeps sessions in the given month where the coach is
// the designated set writer.
func SelectWritingSessions(coachID string, key MonthKey, sessions []scheduling.Session) ([]scheduling.Session, []Warning) {
	var out []scheduling.Session
	var warnings []Warning
	for _, session := range sessions {
		if session.SetWriterID != coachID {
			continue
		}
		in, warn := inMonth(session.ID, session.Date, key)
		if warn != nil {
			warnings = append(warnings, *warn)
			continue
		}
		if !in {
			continue
		}
		out = append(out, session)
	}
	return out, warnings
}

// SelectCompetitionBlocks keeps the individual in-month time blocks of the
// coach's competition assignments; one line item per matching block, not one
// per competition.
func SelectCompetitionBlocks(coachID string, key MonthKey, assignments []scheduling.CoachAssignment) ([]CompetitionBlock, []Warning) {
	var out []CompetitionBlock
	var warnings []Warning
	for _, assignment := range assignments {
		if assignment.CoachID != coachID {
			continue
		}
		for _, block := range assignment.Blocks {
			in, warn := inMonth(assignment.ID, block.Date, key)
			if warn != nil {
				warnings = append(warnings, *warn)
				continue
			}
			if !in {
				continue
			}
			out = append(out, CompetitionBlock{
				CompetitionID:   assignment.CompetitionID,
				CompetitionName: assignment.CompetitionName,
				Block:           block,
			})
		}
	}
	return out, warnings
}

func roleFor(coachID string, session scheduling.Session) (CoachingRole, bool) {
	if coachID == "" {
		return "", false
	}
	switch coachID {
	case session.LeadCoachID:
		return RoleLead, true
	case session.SecondCoachID:
		return RoleSecond, true
	case session.HelperID:
		return RoleHelper, true
	}
	return "", false
}

func inMonth(recordID, date string, key MonthKey) (bool, *Warning) {
	dateKey, err := DateMonthKey(date)
	if err != nil {
		return false, &Warning{
			Kind:     WarningMalformedDate,
			RecordID: recordID,
			Date:     date,
			Detail:   "record excluded: date is not an ISO YYYY-MM-DD string",
		}
	}
	return dateKey == key, nil
}
