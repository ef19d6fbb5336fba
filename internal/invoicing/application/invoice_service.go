package application

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	invoicing "swimclub/internal/invoicing/domain"
	"swimclub/internal/observability/metrics"
	roster "swimclub/internal/roster/domain"
	scheduling "swimclub/internal/scheduling/domain"
)

// CoachReader loads the coach read model.
type CoachReader interface {
	GetByID(ctx context.Context, id string) (*roster.Coach, error)
}

// SessionReader loads every session a coach appears in, in any role
// including set writer.
type SessionReader interface {
	ListByCoach(ctx context.Context, coachID string) ([]scheduling.Session, error)
}

// AssignmentReader loads a coach's competition assignments with their blocks.
type AssignmentReader interface {
	ListByCoach(ctx context.Context, coachID string) ([]scheduling.CoachAssignment, error)
}

// RateSource resolves the qualification rate table.
type RateSource interface {
	Load(ctx context.Context) (*invoicing.RateTable, error)
}

type cacheKey struct {
	coachID string
	year    int
	month   int
}

// InvoiceService orchestrates the monthly invoice computation: it loads the
// raw collections, runs the selectors and the builder, and caches results
// keyed by (coach, year, month). The engine is only invoked once all three
// collections are fully loaded, and recomputation has no side effect beyond
// returning the same value, so redundant invocation is safe.
type InvoiceService struct {
	coaches     CoachReader
	sessions    SessionReader
	assignments AssignmentReader
	rates       RateSource
	logger      *log.Logger

	mu    sync.RWMutex
	cache map[cacheKey]*invoicing.Invoice
}

// NewInvoiceService constructs the service.
func NewInvoiceService(coaches CoachReader, sessions SessionReader, assignments AssignmentReader, rates RateSource, logger *log.Logger) (*InvoiceService, error) {
	if coaches == nil {
		return nil, errors.New("invoice service: nil coach reader")
	}
	if sessions == nil {
		return nil, errors.New("invoice service: nil session reader")
	}
	if assignments == nil {
		return nil, errors.New("invoice service: nil assignment reader")
	}
	if rates == nil {
		return nil, errors.New("invoice service: nil rate source")
	}
	if logger == nil {
		logger = log.Default()
	}
	return &InvoiceService{
		coaches:     coaches,
		sessions:    sessions,
		assignments: assignments,
		rates:       rates,
		logger:      logger,
		cache:       make(map[cacheKey]*invoicing.Invoice),
	}, nil
}

// MonthlyInvoice computes (or returns the cached) invoice for one coach and
// calendar month. A month with zero qualifying activity returns a valid
// zero-valued invoice, never an error.
func (s *InvoiceService) MonthlyInvoice(ctx context.Context, coachID string, year, month int) (*invoicing.Invoice, error) {
	start := time.Now()
	result := metrics.ResultSuccess
	defer func() {
		metrics.ObserveInvoiceBuild(result, time.Since(start))
	}()

	if coachID == "" {
		result = metrics.ResultError
		return nil, errors.New("invoice service: coach_id required")
	}
	key, err := invoicing.BuildMonthKey(year, month)
	if err != nil {
		result = metrics.ResultError
		return nil, err
	}

	ck := cacheKey{coachID: coachID, year: year, month: month}
	s.mu.RLock()
	cached := s.cache[ck]
	s.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	coach, err := s.coaches.GetByID(ctx, coachID)
	if err != nil {
		result = metrics.ResultError
		return nil, err
	}
	sessions, err := s.sessions.ListByCoach(ctx, coachID)
	if err != nil {
		result = metrics.ResultError
		return nil, err
	}
	assignments, err := s.assignments.ListByCoach(ctx, coachID)
	if err != nil {
		result = metrics.ResultError
		return nil, err
	}
	table, err := s.rates.Load(ctx)
	if err != nil {
		result = metrics.ResultError
		return nil, err
	}

	coaching, coachingWarnings := invoicing.SelectCoachingSessions(coachID, key, sessions)
	writing, writingWarnings := invoicing.SelectWritingSessions(coachID, key, sessions)
	blocks, blockWarnings := invoicing.SelectCompetitionBlocks(coachID, key, assignments)

	inv, err := invoicing.BuildInvoice(*coach, year, month, table, coaching, writing, blocks)
	if err != nil {
		result = metrics.ResultError
		return nil, err
	}

	selectorWarnings := append(append(coachingWarnings, writingWarnings...), blockWarnings...)
	if len(selectorWarnings) > 0 {
		inv.Warnings = append(selectorWarnings, inv.Warnings...)
	}
	for _, warning := range inv.Warnings {
		metrics.IncInvoiceWarning(string(warning.Kind))
		s.logger.Printf("invoice %s %s: skipped record %s (%s): %s", coachID, key, warning.RecordID, warning.Kind, warning.Detail)
	}

	s.mu.Lock()
	s.cache[ck] = inv
	s.mu.Unlock()
	return inv, nil
}

// AvailableMonths returns the distinct months with any invoiceable activity
// for a coach, most recent first. Empty means no invoice history, not an
// error.
func (s *InvoiceService) AvailableMonths(ctx context.Context, coachID string) ([]invoicing.YearMonth, error) {
	if coachID == "" {
		return nil, errors.New("invoice service: coach_id required")
	}
	if _, err := s.coaches.GetByID(ctx, coachID); err != nil {
		return nil, err
	}
	sessions, err := s.sessions.ListByCoach(ctx, coachID)
	if err != nil {
		return nil, err
	}
	assignments, err := s.assignments.ListByCoach(ctx, coachID)
	if err != nil {
		return nil, err
	}
	return invoicing.AvailableMonths(coachID, sessions, assignments), nil
}

// Invalidate drops every cached month for a coach. Called when the coach's
// schedule changes upstream.
func (s *InvoiceService) Invalidate(coachID string) {
	s.mu.Lock()
	for key := range s.cache {
		if key.coachID == coachID {
			delete(s.cache, key)
		}
	}
	s.mu.Unlock()
}
