package memory

import (
	"context"
	"sync"

	roster "swimclub/internal/roster/domain"
	scheduling "swimclub/internal/scheduling/domain"
)

// ActivityStore is an in-memory snapshot store satisfying the invoice
// service's reader interfaces. Used by tests and local runs without postgres.
type ActivityStore struct {
	mu          sync.RWMutex
	coaches     map[string]roster.Coach
	sessions    []scheduling.Session
	assignments []scheduling.CoachAssignment
}

// NewActivityStore constructs an empty store.
func NewActivityStore() *ActivityStore {
	return &ActivityStore{coaches: make(map[string]roster.Coach)}
}

// PutCoach adds or replaces a coach.
func (s *ActivityStore) PutCoach(coach roster.Coach) {
	s.mu.Lock()
	s.coaches[coach.ID] = coach
	s.mu.Unlock()
}

// AddSession appends a session record.
func (s *ActivityStore) AddSession(session scheduling.Session) {
	s.mu.Lock()
	s.sessions = append(s.sessions, session)
	s.mu.Unlock()
}

// AddAssignment appends a competition assignment.
func (s *ActivityStore) AddAssignment(assignment scheduling.CoachAssignment) {
	s.mu.Lock()
	s.assignments = append(s.assignments, assignment)
	s.mu.Unlock()
}

// GetByID loads a coach.
func (s *ActivityStore) GetByID(ctx context.Context, id string) (*roster.Coach, error) {
	_ = ctx
	s.mu.RLock()
	coach, ok := s.coaches[id]
	s.mu.RUnlock()
	if !ok {
		return nil, roster.ErrCoachNotFound
	}
	return &coach, nil
}

// ListByCoach returns every session the coach appears in, in any role.
func (s *ActivityStore) ListByCoach(ctx context.Context, coachID string) ([]scheduling.Session, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []scheduling.Session
	for _, session := range s.sessions {
		if session.LeadCoachID == coachID || session.SecondCoachID == coachID ||
			session.HelperID == coachID || session.SetWriterID == coachID {
			out = append(out, session)
		}
	}
	return out, nil
}

// AssignmentReader adapts the store to the assignment reader interface; the
// session and assignment readers would otherwise collide on ListByCoach.
type AssignmentReader struct {
	store *ActivityStore
}

// Assignments returns an assignment reader over the store.
func (s *ActivityStore) Assignments() *AssignmentReader {
	return &AssignmentReader{store: s}
}

// ListByCoach returns the coach's competition assignments.
func (r *AssignmentReader) ListByCoach(ctx context.Context, coachID string) ([]scheduling.CoachAssignment, error) {
	_ = ctx
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var out []scheduling.CoachAssignment
	for _, assignment := range r.store.assignments {
		if assignment.CoachID == coachID {
			out = append(out, assignment)
		}
	}
	return out, nil
}
