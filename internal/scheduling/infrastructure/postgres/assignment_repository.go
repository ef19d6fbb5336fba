package postgres

import (
	"context"
	"database/sql"
	"errors"

	scheduling "swimclub/internal/scheduling/domain"
)

// AssignmentRepository loads competition coach assignments with their time
// blocks.
type AssignmentRepository struct {
	db *sql.DB
}

// NewAssignmentRepository constructs a repository.
func NewAssignmentRepository(db *sql.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// ListByCoach returns the coach's assignments, blocks ordered by date and
// start time within each assignment.
func (r *AssignmentRepository) ListByCoach(ctx context.Context, coachID string) ([]scheduling.CoachAssignment, error) {
	if r == nil || r.db == nil {
		return nil, errors.New("assignment repo: nil db")
	}
	rows, err := r.db.QueryContext(ctx, `
SELECT a.id, a.competition_id, c.name, a.coach_id,
	b.block_date, b.start_time, b.end_time
FROM coach_assignments a
JOIN competitions c ON c.id = a.competition_id
JOIN assignment_blocks b ON b.assignment_id = a.id
WHERE a.coach_id = $1
ORDER BY a.id, b.block_date, b.start_time`, coachID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []scheduling.CoachAssignment
	index := make(map[string]int)
	for rows.Next() {
		var assignmentID, competitionID, competitionName, rowCoachID string
		var block scheduling.TimeBlock
		err := rows.Scan(&assignmentID, &competitionID, &competitionName, &rowCoachID,
			&block.Date, &block.StartTime, &block.EndTime)
		if err != nil {
			return nil, err
		}
		i, ok := index[assignmentID]
		if !ok {
			out = append(out, scheduling.CoachAssignment{
				ID:              assignmentID,
				CompetitionID:   competitionID,
				CompetitionName: competitionName,
				CoachID:         rowCoachID,
			})
			i = len(out) - 1
			index[assignmentID] = i
		}
		out[i].Blocks = append(out[i].Blocks, block)
	}
	return out, rows.Err()
}
