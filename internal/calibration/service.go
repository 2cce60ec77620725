package calibration

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/adaptivecoach/internal/aggregate"
	"github.com/2beens/adaptivecoach/internal/athlete"
	"github.com/2beens/adaptivecoach/internal/ingest"
	"github.com/2beens/adaptivecoach/internal/telemetry/metrics"
	"github.com/2beens/adaptivecoach/internal/telemetry/tracing"
	"github.com/2beens/adaptivecoach/pkg"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=calibration_test

const (
	maxSaveAttempts       = 3
	readinessCacheExpire  = 15 * 60 // seconds
	readinessCacheSizeMiB = 8
)

type profileStore interface {
	Get(ctx context.Context, userID, exerciseID string) (*Profile, error)
	// Save inserts a profile with version 0 or updates the stored one when its
	// version still matches, returning ErrVersionConflict otherwise.
	Save(ctx context.Context, p *Profile) error
	ListForUser(ctx context.Context, userID string) ([]Profile, error)
}

type telemetrySource interface {
	ListSets(ctx context.Context, userID string, from, to time.Time) ([]ingest.WorkoutSet, error)
	ListReadings(ctx context.Context, userID string, from, to time.Time) ([]ingest.DailyReading, error)
}

type athleteSource interface {
	Get(ctx context.Context, userID string) (*athlete.Profile, error)
}

type Service struct {
	calibrator     Calibrator
	readiness      ReadinessModel
	store          profileStore
	telemetry      telemetrySource
	athletes       athleteSource
	cache          *freecache.Cache
	metricsManager *metrics.Manager
}

func NewService(
	cfg Config,
	store profileStore,
	telemetry telemetrySource,
	athletes athleteSource,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		calibrator:     NewCalibrator(cfg),
		readiness:      NewReadinessModel(cfg.Readiness),
		store:          store,
		telemetry:      telemetry,
		athletes:       athletes,
		cache:          freecache.NewCache(readinessCacheSizeMiB * 1024 * 1024),
		metricsManager: metricsManager,
	}
}

// ApplySet updates the calibration profile of the set's exercise. A concurrent
// update of the same profile is retried from a fresh read.
func (s *Service) ApplySet(ctx context.Context, set ingest.WorkoutSet) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.calibration.applyset")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", set.UserID))
	span.SetAttributes(attribute.String("exercise.id", set.ExerciseID))

	if _, ok := set.PerceivedEffort.ImpliedRIR(); !ok {
		return nil
	}

	hr, err := s.hrProfile(ctx, set.UserID)
	if err != nil {
		return err
	}

	for attempt := 1; ; attempt++ {
		current, err := s.store.Get(ctx, set.UserID, set.ExerciseID)
		switch {
		case errors.Is(err, ErrProfileNotFound):
			p := NewProfile(set.UserID, set.ExerciseID)
			current = &p
		case err != nil:
			return fmt.Errorf("get calibration profile: %w", err)
		}

		updated, warning := s.calibrator.Update(*current, set, hr)
		if warning != nil {
			log.Warnf("calibration: %s", warning)
			s.metricsManager.CounterDriftWarnings.Inc()
		}

		err = s.store.Save(ctx, &updated)
		if err == nil {
			span.SetAttributes(attribute.Float64("rir.bias", updated.RIRBiasEstimate))
			return nil
		}
		if !errors.Is(err, ErrVersionConflict) || attempt >= maxSaveAttempts {
			return fmt.Errorf("save calibration profile: %w", err)
		}
		log.Debugf("calibration profile %s/%s changed concurrently, retry %d", set.UserID, set.ExerciseID, attempt)
	}
}

func (s *Service) hrProfile(ctx context.Context, userID string) (aggregate.HRProfile, error) {
	profile, err := s.athletes.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, athlete.ErrProfileNotFound) {
			return aggregate.HRProfile{}, nil
		}
		return aggregate.HRProfile{}, fmt.Errorf("get athlete profile: %w", err)
	}
	return aggregate.HRProfileOf(profile), nil
}

// Readiness scores the given day. Failing to read telemetry degrades the score
// to the next fallback instead of failing the caller.
func (s *Service) Readiness(ctx context.Context, userID string, day time.Time) ReadinessScore {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.calibration.readiness")
	defer span.End()
	span.SetAttributes(attribute.String("user.id", userID))

	day = pkg.Midnight(day)
	cacheKey := []byte(fmt.Sprintf("readiness::%s::%s", userID, day.Format(time.DateOnly)))
	if cached, err := s.cache.Get(cacheKey); err == nil {
		var score ReadinessScore
		if err := json.Unmarshal(cached, &score); err == nil {
			log.Tracef("readiness of %s on %s found in cache", userID, day.Format(time.DateOnly))
			return score
		} else {
			log.Errorf("unmarshal cached readiness of %s: %s", userID, err)
		}
	}

	from, to := s.readiness.Window(day)
	readings, err := s.telemetry.ListReadings(ctx, userID, from, to)
	if err != nil {
		log.Errorf("readiness: list readings of %s: %s", userID, err)
		readings = nil
	}
	sets, err := s.telemetry.ListSets(ctx, userID, day.AddDate(0, 0, -7), to)
	if err != nil {
		log.Errorf("readiness: list sets of %s: %s", userID, err)
		sets = nil
	}

	score := s.readiness.Score(userID, day, readings, sets)
	s.metricsManager.HistReadiness.Observe(score.Value)
	span.SetAttributes(attribute.Float64("readiness", score.Value))
	span.SetAttributes(attribute.String("readiness.source", string(score.Source)))

	if scoreBytes, err := json.Marshal(score); err == nil {
		if err := s.cache.Set(cacheKey, scoreBytes, readinessCacheExpire); err != nil {
			log.Errorf("cache readiness of %s: %s", userID, err)
		}
	}

	return score
}

// InvalidateReadiness drops the cached score of a day, called when a reading
// for that day arrives.
func (s *Service) InvalidateReadiness(userID string, day time.Time) {
	s.cache.Del([]byte(fmt.Sprintf("readiness::%s::%s", userID, pkg.Midnight(day).Format(time.DateOnly))))
}

func (s *Service) Profiles(ctx context.Context, userID string) ([]Profile, error) {
	return s.store.ListForUser(ctx, userID)
}

// CorrectedRIR returns the self reported RIR of the effort corrected by the
// user's profile for the exercise. Without a profile the self report stands.
func (s *Service) CorrectedRIR(ctx context.Context, userID, exerciseID string, effort ingest.Effort) (float64, error) {
	selfReported, ok := effort.ImpliedRIR()
	if !ok {
		return 0, fmt.Errorf("%w: no perceived effort", ingest.ErrInvalidSet)
	}
	p, err := s.store.Get(ctx, userID, exerciseID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return selfReported, nil
		}
		return 0, err
	}
	return p.CorrectedRIR(selfReported), nil
}
