package postgres

import (
	"context"
	"database/sql"
	"errors"

	roster "swimclub/internal/roster/domain"
)

// CoachRepository loads the coach read model.
type CoachRepository struct {
	db *sql.DB
}

// NewCoachRepository constructs a repository.
func NewCoachRepository(db *sql.DB) *CoachRepository {
	return &CoachRepository{db: db}
}

// GetByID loads one coach.
func (r *CoachRepository) GetByID(ctx context.Context, id string) (*roster.Coach, error) {
	if r == nil || r.db == nil {
		return nil, errors.New("coach repo: nil db")
	}
	row := r.db.QueryRowContext(ctx, `
SELECT id, name, email, qualification
FROM coaches
WHERE id = $1`, id)

	var coach roster.Coach
	var email sql.NullString
	var qualification string
	if err := row.Scan(&coach.ID, &coach.Name, &email, &qualification); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, roster.ErrCoachNotFound
		}
		return nil, err
	}
	coach.Email = email.String
	tier, err := roster.ParseQualificationTier(qualification)
	if err != nil {
		return nil, err
	}
	coach.Qualification = tier
	return &coach, nil
}

// List returns all coaches ordered by name.
func (r *CoachRepository) List(ctx context.Context) ([]roster.Coach, error) {
	if r == nil || r.db == nil {
		return nil, errors.New("coach repo: nil db")
	}
	rows, err := r.db.QueryContext(ctx, `
SELECT id, name, email, qualification
FROM coaches
ORDER BY name, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []roster.Coach
	for rows.Next() {
		var coach roster.Coach
		var email sql.NullString
		var qualification string
		if err := rows.Scan(&coach.ID, &coach.Name, &email, &qualification); err != nil {
			return nil, err
		}
		coach.Email = email.String
		tier, err := roster.ParseQualificationTier(qualification)
		if err != nil {
			return nil, err
		}
		coach.Qualification = tier
		out = append(out, coach)
	}
	return out, rows.Err()
}
