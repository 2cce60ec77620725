package nutrition

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/adaptivecoach/internal/athlete"
	"github.com/2beens/adaptivecoach/internal/calibration"
	"github.com/2beens/adaptivecoach/internal/ingest"
	"github.com/2beens/adaptivecoach/internal/telemetry/metrics"
	"github.com/2beens/adaptivecoach/internal/telemetry/tracing"
	"github.com/2beens/adaptivecoach/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=nutrition_test

type profileSource interface {
	Get(ctx context.Context, userID string) (*athlete.Profile, error)
}

type weightSource interface {
	ListWeights(ctx context.Context, userID string, from, to time.Time) ([]ingest.WeightLog, error)
}

type weekStore interface {
	Get(ctx context.Context, userID string, weekStart time.Time) (*NutritionWeek, error)
	Upsert(ctx context.Context, w *NutritionWeek) error
}

type Service struct {
	engine         *Engine
	profiles       profileSource
	weights        weightSource
	store          weekStore
	metricsManager *metrics.Manager
}

func NewService(
	engine *Engine,
	profiles profileSource,
	weights weightSource,
	store weekStore,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		engine:         engine,
		profiles:       profiles,
		weights:        weights,
		store:          store,
		metricsManager: metricsManager,
	}
}

func (s *Service) Bootstrap(ctx context.Context, userID string) (_ *TDEE, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.nutrition.bootstrap")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	tdee, err := BootstrapTDEE(profile, 0, s.engine.Config())
	if err != nil {
		return nil, err
	}
	return &tdee, nil
}

// Recalibrate computes and stores the targets of the week starting at weekStart,
// from the weigh-ins of the two weeks before it and last week's base target.
// Rerunning it for the same week yields the same targets.
func (s *Service) Recalibrate(ctx context.Context, userID string, weekStart time.Time, readiness calibration.ReadinessScore) (_ *NutritionWeek, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.nutrition.recalibrate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	weekStart = pkg.WeekStart(weekStart)
	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get athlete profile: %w", err)
	}

	logs, err := s.weights.ListWeights(ctx, userID, weekStart.AddDate(0, 0, -14), weekStart)
	if err != nil {
		return nil, fmt.Errorf("list weights: %w", err)
	}

	var previousKcal float64
	previous, err := s.store.Get(ctx, userID, weekStart.AddDate(0, 0, -7))
	switch {
	case errors.Is(err, ErrWeekNotFound):
		log.Debugf("nutrition: no previous week for %s, bootstrapping", userID)
	case err != nil:
		return nil, fmt.Errorf("get previous nutrition week: %w", err)
	case previous.BaseKcalTarget > 0:
		previousKcal = float64(previous.BaseKcalTarget)
	default:
		// stored before base targets were kept
		previousKcal = float64(previous.KcalTarget)
	}

	week, err := s.engine.Recalibrate(RecalibrateInput{
		Profile:      profile,
		WeekStart:    weekStart,
		Trend:        ComputeWeightTrend(logs, weekStart, s.engine.Config().MinWeighIns),
		PreviousKcal: previousKcal,
		Readiness:    readiness,
	})
	if err != nil {
		return nil, err
	}

	if err := s.store.Upsert(ctx, &week); err != nil {
		return nil, fmt.Errorf("store nutrition week: %w", err)
	}

	s.metricsManager.CounterNutritionNudges.WithLabelValues(string(week.Direction())).Inc()
	if week.SafetyFloorApplied {
		s.metricsManager.CounterSafetyFloorApplied.Inc()
		log.Warnf("nutrition: user %s week %s clamped to safety floor %d kcal", userID, weekStart.Format(time.DateOnly), week.SafetyFloorKcal)
	}
	span.SetAttributes(attribute.Int("kcal.target", week.KcalTarget))
	span.SetAttributes(attribute.Int("kcal.nudge", week.NudgeKcal))

	return &week, nil
}

func (s *Service) Get(ctx context.Context, userID string, weekStart time.Time) (*NutritionWeek, error) {
	return s.store.Get(ctx, userID, pkg.WeekStart(weekStart))
}
