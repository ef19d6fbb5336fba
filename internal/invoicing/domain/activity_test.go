package invoicing

import (
	"testing"

	scheduling "swimclub/internal/scheduling/domain"
)

const coachID = "coach-1"

func januarySessions() []scheduling.Session {
	return []scheduling.Session{
		{ID: "s-lead", Date: "2024-01-08", StartTime: "09:00", EndTime: "10:30", SquadID: "squad-a", LeadCoachID: coachID},
		{ID: "s-second", Date: "2024-01-09", StartTime: "18:00", EndTime: "19:00", SquadID: "squad-a", LeadCoachID: "coach-2", SecondCoachID: coachID},
		{ID: "s-helper", Date: "2024-01-10", StartTime: "06:00", EndTime: "07:00", SquadID: "squad-b", LeadCoachID: "coach-2", HelperID: coachID},
		{ID: "s-writer-only", Date: "2024-01-11", StartTime: "18:00", EndTime: "19:00", SquadID: "squad-a", LeadCoachID: "coach-2", SetWriterID: coachID},
		{ID: "s-other-coach", Date: "2024-01-12", StartTime: "09:00", EndTime: "10:00", SquadID: "squad-a", LeadCoachID: "coach-2"},
		{ID: "s-other-month", Date: "2024-02-01", StartTime: "09:00", EndTime: "10:00", SquadID: "squad-a", LeadCoachID: coachID},
	}
}

func TestSelectCoachingSessions(t *testing.T) {
	key := MonthKey("2024-01")
	got, warnings := SelectCoachingSessions(coachID, key, januarySessions())
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 coaching sessions, got %d", len(got))
	}
	roles := map[string]CoachingRole{}
	for _, cs := range got {
		roles[cs.Session.ID] = cs.Role
	}
	if roles["s-lead"] != RoleLead || roles["s-second"] != RoleSecond || roles["s-helper"] != RoleHelper {
		t.Fatalf("role tags wrong: %v", roles)
	}
}

func TestSelectCoachingSessionsRolePriority(t *testing.T) {
	// Lead outranks second outranks helper when one coach holds several roles.
	sessions := []scheduling.Session{
		{ID: "s-all", Date: "2024-01-08", StartTime: "09:00", EndTime: "10:00", LeadCoachID: coachID, SecondCoachID: coachID, HelperID: coachID},
		{ID: "s-two", Date: "2024-01-09", StartTime: "09:00", EndTime: "10:00", LeadCoachID: "coach-2", SecondCoachID: coachID, HelperID: coachID},
	}
	got, _ := SelectCoachingSessions(coachID, "2024-01", sessions)
	if len(got) != 2 {
		t.Fatalf("a multi-role session must appear exactly once, got %d entries", len(got))
	}
	if got[0].Role != RoleLead {
		t.Fatalf("expected lead, got %s", got[0].Role)
	}
	if got[1].Role != RoleSecond {
		t.Fatalf("expected second, got %s", got[1].Role)
	}
}

func TestSelectCoachingSessionsEmptyCoachID(t *testing.T) {
	sessions := []scheduling.Session{
		{ID: "s-unassigned", Date: "2024-01-08", StartTime: "09:00", EndTime: "10:00", LeadCoachID: "coach-2"},
	}
	got, _ := SelectCoachingSessions("", "2024-01", sessions)
	if len(got) != 0 {
		t.Fatalf("empty coach id must match nothing, got %d", len(got))
	}
}

func TestSelectCoachingSessionsMalformedDate(t *testing.T) {
	sessions := []scheduling.Session{
		{ID: "s-bad-date", Date: "Jan 8 2024", StartTime: "09:00", EndTime: "10:00", LeadCoachID: coachID},
		{ID: "s-good", Date: "2024-01-08", StartTime: "09:00", EndTime: "10:00", LeadCoachID: coachID},
	}
	got, warnings := SelectCoachingSessions(coachID, "2024-01", sessions)
	if len(got) != 1 || got[0].Session.ID != "s-good" {
		t.Fatalf("expected only the well-formed session, got %v", got)
	}
	if len(warnings) != 1 || warnings[0].Kind != WarningMalformedDate || warnings[0].RecordID != "s-bad-date" {
		t.Fatalf("expected malformed date warning, got %v", warnings)
	}
}

func TestSelectWritingSessions(t *testing.T) {
	got, warnings := SelectWritingSessions(coachID, "2024-01", januarySessions())
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(got) != 1 || got[0].ID != "s-writer-only" {
		t.Fatalf("expected s-writer-only, got %v", got)
	}
}

func TestSelectCompetitionBlocksSplitsByBlockDate(t *testing.T) {
	assignments := []scheduling.CoachAssignment{
		{
			ID: "a-1", CompetitionID: "comp-1", CompetitionName: "County Champs", CoachID: coachID,
			Blocks: []scheduling.TimeBlock{
				{Date: "2024-01-31", StartTime: "08:00", EndTime: "12:00"},
				{Date: "2024-02-01", StartTime: "08:00", EndTime: "12:00"},
				{Date: "2024-02-02", StartTime: "08:00", EndTime: "12:00"},
			},
		},
		{ID: "a-2", CompetitionID: "comp-2", CoachID: "coach-2", Blocks: []scheduling.TimeBlock{
			{Date: "2024-01-20", StartTime: "09:00", EndTime: "17:00"},
		}},
	}

	january, _ := SelectCompetitionBlocks(coachID, "2024-01", assignments)
	if len(january) != 1 || january[0].Block.Date != "2024-01-31" {
		t.Fatalf("expected exactly the January block, got %v", january)
	}
	february, _ := SelectCompetitionBlocks(coachID, "2024-02", assignments)
	if len(february) != 2 {
		t.Fatalf("expected the two February blocks, got %v", february)
	}
}
