package internal

import (
	"github.com/2beens/adaptivecoach/internal/adjustment"
	"github.com/2beens/adaptivecoach/internal/aggregate"
	"github.com/2beens/adaptivecoach/internal/athlete"
	"github.com/2beens/adaptivecoach/internal/calibration"
	"github.com/2beens/adaptivecoach/internal/config"
	"github.com/2beens/adaptivecoach/internal/directive"
	"github.com/2beens/adaptivecoach/internal/ingest"
	coachmcp "github.com/2beens/adaptivecoach/internal/mcp"
	"github.com/2beens/adaptivecoach/internal/nutrition"
	"github.com/2beens/adaptivecoach/internal/periodization"
	"github.com/2beens/adaptivecoach/internal/pipeline"
	"github.com/2beens/adaptivecoach/internal/telemetry/metrics"
	"github.com/2beens/adaptivecoach/internal/userlock"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Components is the wired object graph shared by the HTTP server and the admin CLI.
type Components struct {
	AthleteRepo    *athlete.Repo
	TelemetryRepo  *ingest.Repo
	AggregateRepo  *aggregate.Repo
	PhaseRepo      *periodization.Repo
	DirectiveRepo  *directive.Repo
	Locker         *userlock.Locker
	Calibration    *calibration.Service
	Aggregator     *aggregate.Aggregator
	Telemetry      *ingest.Service
	Phases         *periodization.Service
	Adjustment     *adjustment.Engine
	Nutrition      *nutrition.Service
	Pipeline       *pipeline.Runner
	CoachContext   *coachmcp.ContextService
	MetricsManager *metrics.Manager
}

func NewComponents(
	cfg *config.Config,
	dbPool *pgxpool.Pool,
	rdb *redis.Client,
	metricsManager *metrics.Manager,
) *Components {
	c := &Components{
		AthleteRepo:    athlete.NewRepo(dbPool),
		TelemetryRepo:  ingest.NewRepo(dbPool),
		AggregateRepo:  aggregate.NewRepo(dbPool),
		PhaseRepo:      periodization.NewRepo(dbPool),
		DirectiveRepo:  directive.NewRepo(dbPool),
		Locker:         userlock.New(rdb, cfg.UserLockTTL(), cfg.UserLockWait()),
		Adjustment:     adjustment.NewEngine(cfg.Engine.Adjustment),
		MetricsManager: metricsManager,
	}

	c.Calibration = calibration.NewService(
		cfg.Engine.Calibration,
		calibration.NewRepo(dbPool),
		c.TelemetryRepo,
		c.AthleteRepo,
		metricsManager,
	)
	c.Aggregator = aggregate.NewAggregator(
		c.TelemetryRepo,
		c.AthleteRepo,
		c.PhaseRepo,
		c.AggregateRepo,
		metricsManager,
	)
	c.Telemetry = ingest.NewService(
		c.TelemetryRepo,
		c.Locker,
		c.Calibration,
		c.Aggregator,
		metricsManager,
		cfg.LateSetGrace(),
	)
	c.Phases = periodization.NewService(c.PhaseRepo, cfg.Engine.RulesetsByID())
	c.Nutrition = nutrition.NewService(
		nutrition.NewEngine(cfg.Engine.Nutrition),
		c.AthleteRepo,
		c.TelemetryRepo,
		nutrition.NewRepo(dbPool),
		metricsManager,
	)
	c.Pipeline = pipeline.NewRunner(
		cfg.Engine.Pipeline,
		c.Aggregator,
		c.Calibration,
		c.Phases,
		c.Adjustment,
		c.DirectiveRepo,
		c.Nutrition,
		c.AthleteRepo,
		c.Locker,
		metricsManager,
	)
	c.CoachContext = coachmcp.NewContextService(
		c.Calibration,
		c.DirectiveRepo,
		c.Phases,
		c.Nutrition,
		c.PhaseRepo,
	)

	return c
}
