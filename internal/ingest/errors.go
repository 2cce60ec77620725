package ingest

import "errors"

var (
	ErrInvalidSet     = errors.New("invalid workout set")
	ErrInvalidReading = errors.New("invalid daily reading")
	ErrInvalidWeight  = errors.New("invalid weight log")
	// ErrSetTooLate is returned for sets whose week closed longer than the grace period ago.
	ErrSetTooLate  = errors.New("workout set arrived after the grace period")
	ErrSetInFuture = errors.New("workout set timestamp is in the future")
)
