package ingest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/adaptivecoach/internal/telemetry/metrics"
	"github.com/2beens/adaptivecoach/internal/telemetry/tracing"
	"github.com/2beens/adaptivecoach/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=ingest_test

const futureTolerance = 5 * time.Minute

type telemetryStore interface {
	InsertSet(ctx context.Context, s *WorkoutSet) (int64, error)
	ListSets(ctx context.Context, userID string, from, to time.Time) ([]WorkoutSet, error)
	UpsertReading(ctx context.Context, rd *DailyReading) error
	UpsertWeight(ctx context.Context, w *WeightLog) error
}

type userLocker interface {
	WithLock(ctx context.Context, userID string, fn func(ctx context.Context) error) error
}

type calibrationApplier interface {
	ApplySet(ctx context.Context, set WorkoutSet) error
}

type weekReaggregator interface {
	ReaggregateWeek(ctx context.Context, userID string, weekStart time.Time) error
}

type AddSetResult struct {
	ID           int64     `json:"id"`
	WeekStart    time.Time `json:"weekStart"`
	Reaggregated bool      `json:"reaggregated"`
}

type Service struct {
	store          telemetryStore
	locker         userLocker
	calibrator     calibrationApplier
	reaggregator   weekReaggregator
	metricsManager *metrics.Manager
	gracePeriod    time.Duration
	now            func() time.Time
}

func NewService(
	store telemetryStore,
	locker userLocker,
	calibrator calibrationApplier,
	reaggregator weekReaggregator,
	metricsManager *metrics.Manager,
	gracePeriod time.Duration,
) *Service {
	return &Service{
		store:          store,
		locker:         locker,
		calibrator:     calibrator,
		reaggregator:   reaggregator,
		metricsManager: metricsManager,
		gracePeriod:    gracePeriod,
		now:            time.Now,
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// AddSet stores a completed set and feeds it to the calibration profile of its
// exercise, both under the user's lock. A set that belongs to an already closed
// week still inside the grace period triggers a re-aggregation of that week.
func (s *Service) AddSet(ctx context.Context, set *WorkoutSet) (_ *AddSetResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.ingest.addset")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", set.UserID))

	if err := set.Validate(); err != nil {
		return nil, err
	}
	set.Normalize()

	now := s.now().UTC()
	if set.Timestamp.After(now.Add(futureTolerance)) {
		return nil, fmt.Errorf("%w: %s", ErrSetInFuture, set.Timestamp.Format(time.RFC3339))
	}

	weekStart := pkg.WeekStart(set.Timestamp)
	weekEnd := weekStart.AddDate(0, 0, 7)
	late := !now.Before(weekEnd)
	if late && now.Sub(weekEnd) > s.gracePeriod {
		return nil, fmt.Errorf("%w: week %s closed at %s", ErrSetTooLate, weekStart.Format(time.DateOnly), weekEnd.Format(time.RFC3339))
	}

	err = s.locker.WithLock(ctx, set.UserID, func(ctx context.Context) error {
		id, err := s.store.InsertSet(ctx, set)
		if err != nil {
			return err
		}
		set.ID = id

		if err := s.calibrator.ApplySet(ctx, *set); err != nil {
			// the set is stored, calibration catches up with the next one
			log.Errorf("apply set %d to calibration of user %s: %s", id, set.UserID, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateSet) {
			return nil, err
		}
		return nil, fmt.Errorf("add set: %w", err)
	}
	s.metricsManager.CounterSetsIngested.Inc()

	result := &AddSetResult{
		ID:        set.ID,
		WeekStart: weekStart,
	}
	if late {
		if err := s.reaggregator.ReaggregateWeek(ctx, set.UserID, weekStart); err != nil {
			log.Errorf("re-aggregate week %s of user %s: %s", weekStart.Format(time.DateOnly), set.UserID, err)
		} else {
			result.Reaggregated = true
			s.metricsManager.CounterLateSetReaggregated.Inc()
		}
	}

	return result, nil
}

func (s *Service) AddReading(ctx context.Context, rd *DailyReading) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.ingest.addreading")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", rd.UserID))

	if err := rd.Validate(); err != nil {
		return err
	}
	rd.Normalize()

	if err := s.store.UpsertReading(ctx, rd); err != nil {
		return fmt.Errorf("add reading: %w", err)
	}
	s.metricsManager.CounterReadingsIngested.Inc()

	return nil
}

func (s *Service) AddWeight(ctx context.Context, w *WeightLog) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.ingest.addweight")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", w.UserID))

	if err := w.Validate(); err != nil {
		return err
	}
	w.Normalize()

	if err := s.store.UpsertWeight(ctx, w); err != nil {
		return fmt.Errorf("add weight: %w", err)
	}
	return nil
}

func (s *Service) ListSets(ctx context.Context, userID string, from, to time.Time) ([]WorkoutSet, error) {
	return s.store.ListSets(ctx, userID, from, to)
}
