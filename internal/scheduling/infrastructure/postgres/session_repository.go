package postgres

import (
	"context"
	"database/sql"
	"errors"

	scheduling "swimclub/internal/scheduling/domain"
)

// SessionRepository loads session records. Dates and wall-clock times are
// stored as text so month membership stays a string operation end to end.
type SessionRepository struct {
	db *sql.DB
}

// NewSessionRepository constructs a repository.
func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// ListByCoach returns every session the coach appears in, in any role
// including set writer, ordered by date and start time.
func (r *SessionRepository) ListByCoach(ctx context.Context, coachID string) ([]scheduling.Session, error) {
	if r == nil || r.db == nil {
		return nil, errors.New("session repo: nil db")
	}
	rows, err := r.db.QueryContext(ctx, `
SELECT id, session_date, start_time, end_time, squad_id, title,
	lead_coach_id, second_coach_id, helper_id, set_writer_id
FROM sessions
WHERE lead_coach_id = $1 OR second_coach_id = $1 OR helper_id = $1 OR set_writer_id = $1
ORDER BY session_date, start_time, id`, coachID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []scheduling.Session
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, session)
	}
	return out, rows.Err()
}

func scanSession(rows *sql.Rows) (scheduling.Session, error) {
	var session scheduling.Session
	var squad, title, lead, second, helper, writer sql.NullString
	err := rows.Scan(
		&session.ID, &session.Date, &session.StartTime, &session.EndTime,
		&squad, &title, &lead, &second, &helper, &writer,
	)
	if err != nil {
		return scheduling.Session{}, err
	}
	session.SquadID = squad.String
	session.Title = title.String
	session.LeadCoachID = lead.String
	session.SecondCoachID = second.String
	session.HelperID = helper.String
	session.SetWriterID = writer.String
	return session, nil
}
