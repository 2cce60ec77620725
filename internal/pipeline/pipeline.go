// Package pipeline runs the weekly coaching loop: a closed week is aggregated,
// next week's training directive is issued and the nutrition targets are
// recalibrated, one user at a time under the user's lock.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/adaptivecoach/internal/adjustment"
	"github.com/2beens/adaptivecoach/internal/aggregate"
	"github.com/2beens/adaptivecoach/internal/athlete"
	"github.com/2beens/adaptivecoach/internal/calibration"
	"github.com/2beens/adaptivecoach/internal/directive"
	"github.com/2beens/adaptivecoach/internal/nutrition"
	"github.com/2beens/adaptivecoach/internal/periodization"
	"github.com/2beens/adaptivecoach/internal/telemetry/metrics"
	"github.com/2beens/adaptivecoach/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=$GOFILE -destination=pipeline_mocks_test.go -package=pipeline_test

type weekAggregator interface {
	Aggregate(ctx context.Context, userID string, w aggregate.Window) (*aggregate.WeeklyAggregate, error)
}

type readinessScorer interface {
	Readiness(ctx context.Context, userID string, day time.Time) calibration.ReadinessScore
}

type phaseAdvancer interface {
	Advance(ctx context.Context, userID string, now time.Time) (periodization.PhaseWeek, *periodization.DeloadDirective, error)
}

type directiveStore interface {
	Insert(ctx context.Context, d *adjustment.WeeklyDirective) error
}

type nutritionCalibrator interface {
	Recalibrate(ctx context.Context, userID string, weekStart time.Time, readiness calibration.ReadinessScore) (*nutrition.NutritionWeek, error)
}

type userLister interface {
	ListUserIDs(ctx context.Context) ([]string, error)
}

type userLocker interface {
	WithLock(ctx context.Context, userID string, fn func(ctx context.Context) error) error
}

type Config struct {
	// cron spec, evaluated in UTC
	Schedule    string `toml:"schedule"`
	Concurrency int    `toml:"concurrency"`
}

func DefaultConfig() Config {
	return Config{
		Schedule:    "0 3 * * 1",
		Concurrency: 8,
	}
}

// UserResult is what one user's run produced. Directive and Nutrition are nil
// when the respective step was skipped, Skipped says why.
type UserResult struct {
	UserID             string                      `json:"userId"`
	WeekStart          time.Time                   `json:"weekStart"`
	Readiness          calibration.ReadinessScore  `json:"readiness"`
	Aggregate          *aggregate.WeeklyAggregate  `json:"aggregate,omitempty"`
	Directive          *adjustment.WeeklyDirective `json:"directive,omitempty"`
	DuplicateDirective bool                        `json:"duplicateDirective,omitempty"`
	Nutrition          *nutrition.NutritionWeek    `json:"nutrition,omitempty"`
	Skipped            []string                    `json:"skipped,omitempty"`
	Error              string                      `json:"error,omitempty"`
}

type RunSummary struct {
	WeekStart           time.Time     `json:"weekStart"`
	Users               int           `json:"users"`
	Succeeded           int           `json:"succeeded"`
	Failed              int           `json:"failed"`
	DuplicateDirectives int           `json:"duplicateDirectives"`
	Duration            time.Duration `json:"duration"`
	Results             []UserResult  `json:"results"`
}

type Runner struct {
	aggregator     weekAggregator
	readiness      readinessScorer
	phases         phaseAdvancer
	engine         *adjustment.Engine
	directives     directiveStore
	nutrition      nutritionCalibrator
	users          userLister
	locker         userLocker
	concurrency    int
	metricsManager *metrics.Manager
}

func NewRunner(
	cfg Config,
	aggregator weekAggregator,
	readiness readinessScorer,
	phases phaseAdvancer,
	engine *adjustment.Engine,
	directives directiveStore,
	nutrition nutritionCalibrator,
	users userLister,
	locker userLocker,
	metricsManager *metrics.Manager,
) *Runner {
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Runner{
		aggregator:     aggregator,
		readiness:      readiness,
		phases:         phases,
		engine:         engine,
		directives:     directives,
		nutrition:      nutrition,
		users:          users,
		locker:         locker,
		concurrency:    concurrency,
		metricsManager: metricsManager,
	}
}

// ClosedWeek returns the last training week fully in the past at now.
func ClosedWeek(now time.Time) aggregate.Window {
	return aggregate.WeekOf(aggregate.WeekOf(now).Start.AddDate(0, 0, -7))
}

// RunUser processes the closed week for a single user and issues the plan of
// the week that follows it. Readiness is scored once, on the first day of the
// new week, and shared by both engines.
func (r *Runner) RunUser(ctx context.Context, userID string, closed aggregate.Window) (_ *UserResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "pipeline.runuser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))
	span.SetAttributes(attribute.String("week.start", closed.Start.Format(time.DateOnly)))

	start := time.Now()
	defer func() {
		r.metricsManager.HistPipelineDuration.Observe(time.Since(start).Seconds())
	}()

	next := closed.End
	res := &UserResult{
		UserID:    userID,
		WeekStart: next,
	}

	err = r.locker.WithLock(ctx, userID, func(ctx context.Context) error {
		return r.runLocked(ctx, res, closed)
	})
	if err != nil {
		r.metricsManager.CounterPipelineFailures.Inc()
		res.Error = err.Error()
		return res, err
	}
	return res, nil
}

func (r *Runner) runLocked(ctx context.Context, res *UserResult, closed aggregate.Window) error {
	userID := res.UserID
	next := res.WeekStart

	agg, err := r.aggregator.Aggregate(ctx, userID, closed)
	if err != nil {
		return fmt.Errorf("aggregate: %w", err)
	}
	res.Aggregate = agg

	res.Readiness = r.readiness.Readiness(ctx, userID, next)

	if err := r.issueDirective(ctx, res, agg, next); err != nil {
		return err
	}

	week, err := r.nutrition.Recalibrate(ctx, userID, next, res.Readiness)
	switch {
	case errors.Is(err, athlete.ErrProfileNotFound):
		res.Skipped = append(res.Skipped, "nutrition: no athlete profile")
	case err != nil:
		return fmt.Errorf("recalibrate nutrition: %w", err)
	default:
		res.Nutrition = week
	}

	return nil
}

func (r *Runner) issueDirective(ctx context.Context, res *UserResult, agg *aggregate.WeeklyAggregate, next time.Time) error {
	week, deload, err := r.phases.Advance(ctx, res.UserID, next)
	if err != nil {
		switch {
		case errors.Is(err, periodization.ErrPhaseNotFound):
			res.Skipped = append(res.Skipped, "directive: no active phase")
			return nil
		case errors.Is(err, periodization.ErrPhaseNotStarted):
			res.Skipped = append(res.Skipped, "directive: phase not started")
			return nil
		}
		return fmt.Errorf("advance phase: %w", err)
	}

	d, err := r.engine.ComputeAdjustment(agg, res.Readiness, week, deload)
	if err != nil {
		if errors.Is(err, adjustment.ErrPhaseComplete) {
			res.Skipped = append(res.Skipped, "directive: phase complete")
			return nil
		}
		return fmt.Errorf("compute adjustment: %w", err)
	}

	if err := r.directives.Insert(ctx, &d); err != nil {
		if errors.Is(err, directive.ErrDirectiveExists) {
			log.Debugf("directive for %s/%s already issued", res.UserID, next.Format(time.DateOnly))
			r.metricsManager.CounterDuplicateDirectives.Inc()
			res.DuplicateDirective = true
			return nil
		}
		return fmt.Errorf("insert directive: %w", err)
	}
	res.Directive = &d

	for _, f := range d.Flags {
		r.metricsManager.CounterDirectives.WithLabelValues(string(f)).Inc()
	}
	if d.Deload != nil {
		r.metricsManager.CounterDeloads.WithLabelValues(string(d.Goal)).Inc()
	}
	return nil
}

// Run processes the closed week for every known user. Users are independent:
// one user failing is counted and reported, the rest still run.
func (r *Runner) Run(ctx context.Context, closed aggregate.Window) (_ *RunSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "pipeline.run")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	start := time.Now()
	userIDs, err := r.users.ListUserIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	span.SetAttributes(attribute.Int("users", len(userIDs)))

	results := make([]UserResult, len(userIDs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, userID := range userIDs {
		g.Go(func() error {
			res, err := r.RunUser(gctx, userID, closed)
			if err != nil {
				log.Errorf("weekly pipeline, user %s: %s", userID, err)
			}
			results[i] = *res
			// a user's failure must not cancel the others
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &RunSummary{
		WeekStart: closed.End,
		Users:     len(userIDs),
		Results:   results,
	}
	for _, res := range results {
		if res.Error != "" {
			summary.Failed++
			continue
		}
		summary.Succeeded++
		if res.DuplicateDirective {
			summary.DuplicateDirectives++
		}
	}
	summary.Duration = time.Since(start)

	log.Infof(
		"weekly pipeline for week %s done in %s: %d users, %d failed, %d duplicate directives",
		closed.End.Format(time.DateOnly), summary.Duration, summary.Users, summary.Failed, summary.DuplicateDirectives,
	)
	return summary, nil
}
