package periodization

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrPhaseNotFound     = errors.New("plan phase not found")
	ErrInvalidGoal       = errors.New("invalid goal")
	ErrInvalidPhaseDates = errors.New("invalid phase dates")
	ErrPhaseTooShort     = errors.New("phase must span at least two weeks")
	ErrCadenceOutOfRange = errors.New("deload cadence out of ruleset range")
	ErrUnknownRuleset    = errors.New("unknown ruleset")
	ErrWeekRegression    = errors.New("phase week index cannot move backwards")
	ErrPhaseNotStarted   = errors.New("plan phase has not started yet")
)

// PhaseStateConflictError is returned when a new phase is requested while
// another one is still running. The caller has to terminate the active phase first.
type PhaseStateConflictError struct {
	UserID        string
	ActivePhaseID int
	ActiveGoal    Goal
	ActiveUntil   time.Time
}

func (e *PhaseStateConflictError) Error() string {
	return fmt.Sprintf(
		"user %s already has an active %s phase (id %d) until %s",
		e.UserID, e.ActiveGoal, e.ActivePhaseID, e.ActiveUntil.Format(time.DateOnly),
	)
}
