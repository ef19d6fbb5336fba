package invoicing

import "errors"

var (
	// ErrMalformedTime is returned when a wall-clock string is not "HH:MM".
	ErrMalformedTime = errors.New("invoicing: malformed clock time")
	// ErrInvalidTimeRange is returned when an end time is not after its start
	// time. Same-day intervals only; there is no overnight wraparound.
	ErrInvalidTimeRange = errors.New("invoicing: end time not after start time")
	// ErrMalformedDate is returned when a date-only string is not ISO shaped.
	ErrMalformedDate = errors.New("invoicing: malformed date")
	// ErrUnknownTier is returned when no rate exists for a qualification tier.
	// Fatal for the whole computation: no sensible rate can be guessed.
	ErrUnknownTier = errors.New("invoicing: unknown qualification tier")
	// ErrInvalidPeriod is returned for a year/month outside the accepted range.
	ErrInvalidPeriod = errors.New("invoicing: invalid invoice period")
	// ErrNegativeRate is returned when a rate table is built with a negative rate.
	ErrNegativeRate = errors.New("invoicing: negative rate")
)
