package periodization

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/adaptivecoach/internal/telemetry/tracing"
	"github.com/2beens/adaptivecoach/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=periodization_test

type phaseRepo interface {
	GetActive(ctx context.Context, userID string) (*Phase, error)
	Create(ctx context.Context, phase *Phase) (*Phase, error)
	UpdateWeek(ctx context.Context, phaseID, currentWeekIndex int) error
	SetStatus(ctx context.Context, phaseID int, status Status) error
}

type CreatePhaseParams struct {
	Goal         Goal       `json:"goal"`
	RulesetID    string     `json:"rulesetId"`
	StartDate    time.Time  `json:"startDate"`
	EndDate      time.Time  `json:"endDate"`
	CadenceWeeks int        `json:"cadenceWeeks"`
	MeetDate     *time.Time `json:"meetDate,omitempty"`
}

type Service struct {
	repo     phaseRepo
	rulesets map[string]Ruleset
	now      func() time.Time
}

func NewService(repo phaseRepo, rulesets map[string]Ruleset) *Service {
	if len(rulesets) == 0 {
		rulesets = DefaultRulesets()
	}
	return &Service{
		repo:     repo,
		rulesets: rulesets,
		now:      time.Now,
	}
}

// WithClock replaces the wall clock used to decide whether an active phase has ended.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) Ruleset(id string) (Ruleset, error) {
	r, ok := s.rulesets[id]
	if !ok {
		return Ruleset{}, fmt.Errorf("%w: %s", ErrUnknownRuleset, id)
	}
	return r, nil
}

// RulesetFor returns the ruleset a stored phase was created with.
func (s *Service) RulesetFor(phase *Phase) (Ruleset, error) {
	return s.Ruleset(phase.RulesetID)
}

// CreatePhase starts a new phase for the user. If another phase is still running
// a PhaseStateConflictError is returned; a phase that already reached its end is
// archived as completed first.
func (s *Service) CreatePhase(ctx context.Context, userID string, params CreatePhaseParams) (_ *Phase, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.periodization.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))
	span.SetAttributes(attribute.String("goal", params.Goal.String()))

	if !params.Goal.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidGoal, params.Goal)
	}

	rulesetID := params.RulesetID
	if rulesetID == "" {
		rulesetID = DefaultRulesetID(params.Goal)
	}
	ruleset, err := s.Ruleset(rulesetID)
	if err != nil {
		return nil, err
	}

	active, err := s.repo.GetActive(ctx, userID)
	switch {
	case errors.Is(err, ErrPhaseNotFound):
		// nothing running
	case err != nil:
		return nil, fmt.Errorf("get active phase: %w", err)
	default:
		if active.StateOn(s.now()) != StateTransitioning {
			return nil, &PhaseStateConflictError{
				UserID:        userID,
				ActivePhaseID: active.ID,
				ActiveGoal:    active.Goal,
				ActiveUntil:   active.EndDate,
			}
		}
		if err := s.repo.SetStatus(ctx, active.ID, StatusCompleted); err != nil {
			return nil, fmt.Errorf("archive finished phase %d: %w", active.ID, err)
		}
		log.Debugf("phase %d of user %s archived as completed", active.ID, userID)
	}

	phase, err := NewPhase(NewPhaseParams{
		UserID:       userID,
		Goal:         params.Goal,
		StartDate:    params.StartDate,
		EndDate:      params.EndDate,
		CadenceWeeks: params.CadenceWeeks,
		MeetDate:     params.MeetDate,
	}, ruleset)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, phase)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			// lost a race against a concurrent create for the same user
			return nil, &PhaseStateConflictError{UserID: userID, ActiveGoal: params.Goal}
		}
		return nil, fmt.Errorf("create phase: %w", err)
	}

	log.Infof(
		"new %s phase %d for user %s: %d weeks, deloads at %v",
		created.Goal, created.ID, userID, created.TotalWeeks(), created.DeloadWeekIndices,
	)
	return created, nil
}

func (s *Service) Active(ctx context.Context, userID string) (_ *Phase, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.periodization.active")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	return s.repo.GetActive(ctx, userID)
}

// TerminatePhase ends the active phase early, on user request.
func (s *Service) TerminatePhase(ctx context.Context, userID string) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.periodization.terminate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	active, err := s.repo.GetActive(ctx, userID)
	if err != nil {
		return 0, err
	}
	if err := s.repo.SetStatus(ctx, active.ID, StatusTerminated); err != nil {
		return 0, fmt.Errorf("terminate phase %d: %w", active.ID, err)
	}

	log.Infof("phase %d of user %s terminated at week %d", active.ID, userID, active.CurrentWeekIndex)
	return active.ID, nil
}

// Advance moves the user's active phase to the week containing now and returns
// that week with its deload directive, if any. Once the phase reaches its end it
// is archived and the returned week is in the transitioning state.
func (s *Service) Advance(ctx context.Context, userID string, now time.Time) (_ PhaseWeek, _ *DeloadDirective, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.periodization.advance")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	phase, err := s.repo.GetActive(ctx, userID)
	if err != nil {
		return PhaseWeek{}, nil, err
	}
	ruleset, err := s.RulesetFor(phase)
	if err != nil {
		return PhaseWeek{}, nil, err
	}

	previousWeek := phase.CurrentWeekIndex
	week, deload, err := phase.Advance(now, ruleset)
	if err != nil {
		return PhaseWeek{}, nil, err
	}
	span.SetAttributes(attribute.Int("week.index", week.WeekIndex))
	span.SetAttributes(attribute.String("week.state", string(week.State)))

	if week.State == StateTransitioning {
		if err := s.repo.SetStatus(ctx, phase.ID, StatusCompleted); err != nil {
			return PhaseWeek{}, nil, fmt.Errorf("complete phase %d: %w", phase.ID, err)
		}
		log.Infof("phase %d of user %s reached its end, transitioning", phase.ID, userID)
		return week, nil, nil
	}

	if week.WeekIndex != previousWeek {
		if err := s.repo.UpdateWeek(ctx, phase.ID, week.WeekIndex); err != nil {
			return PhaseWeek{}, nil, fmt.Errorf("update phase week: %w", err)
		}
	}

	return week, deload, nil
}
