package aggregate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/adaptivecoach/internal/athlete"
	"github.com/2beens/adaptivecoach/internal/ingest"
	"github.com/2beens/adaptivecoach/internal/periodization"
	"github.com/2beens/adaptivecoach/internal/telemetry/metrics"
	"github.com/2beens/adaptivecoach/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=aggregator_mocks_test.go -package=aggregate_test

type setSource interface {
	ListSets(ctx context.Context, userID string, from, to time.Time) ([]ingest.WorkoutSet, error)
}

type profileSource interface {
	Get(ctx context.Context, userID string) (*athlete.Profile, error)
}

type phaseSource interface {
	GetForWeek(ctx context.Context, userID string, weekStart time.Time) (*periodization.Phase, error)
}

type aggregateStore interface {
	Upsert(ctx context.Context, agg *WeeklyAggregate) error
}

type Aggregator struct {
	sets           setSource
	profiles       profileSource
	phases         phaseSource
	store          aggregateStore
	metricsManager *metrics.Manager
}

func NewAggregator(
	sets setSource,
	profiles profileSource,
	phases phaseSource,
	store aggregateStore,
	metricsManager *metrics.Manager,
) *Aggregator {
	return &Aggregator{
		sets:           sets,
		profiles:       profiles,
		phases:         phases,
		store:          store,
		metricsManager: metricsManager,
	}
}

// Aggregate recomputes the aggregate of the window from the stored sets and
// upserts it keyed by (user, week start). Safe to retry and to run redundantly.
func (a *Aggregator) Aggregate(ctx context.Context, userID string, w Window) (_ *WeeklyAggregate, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "aggregate.aggregate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))
	span.SetAttributes(attribute.String("week.start", w.Start.Format(time.DateOnly)))

	sets, err := a.sets.ListSets(ctx, userID, w.Start, w.End)
	if err != nil {
		return nil, fmt.Errorf("list sets: %w", err)
	}

	profile, err := a.profiles.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, athlete.ErrProfileNotFound) {
			return nil, fmt.Errorf("get profile: %w", err)
		}
		log.Debugf("aggregate: no profile for user %s, heart rate spikes skipped", userID)
	}

	agg := Compute(userID, w, sets, HRProfileOf(profile))

	// the phase covering this week, not the one active today
	phase, err := a.phases.GetForWeek(ctx, userID, w.Start)
	switch {
	case errors.Is(err, periodization.ErrPhaseNotFound):
	case err != nil:
		return nil, fmt.Errorf("get phase for week: %w", err)
	default:
		agg.PhaseID = &phase.ID
	}

	if err := a.store.Upsert(ctx, &agg); err != nil {
		return nil, fmt.Errorf("upsert aggregate: %w", err)
	}
	a.metricsManager.CounterAggregates.Inc()
	span.SetAttributes(attribute.Int("set.count", agg.SetCount))

	return &agg, nil
}

// ReaggregateWeek recomputes the week starting at weekStart, used for late sets.
func (a *Aggregator) ReaggregateWeek(ctx context.Context, userID string, weekStart time.Time) error {
	_, err := a.Aggregate(ctx, userID, WeekOf(weekStart))
	return err
}
