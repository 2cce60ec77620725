package aggregate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/adaptivecoach/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrAggregateNotFound = errors.New("weekly aggregate not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Upsert overwrites the aggregate of (user, week start), never adds to it.
func (r *Repo) Upsert(ctx context.Context, agg *WeeklyAggregate) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.aggregate.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", agg.UserID))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO weekly_aggregate (
			user_id, week_start, week_end, phase_id, set_count, avg_estimated_rir, avg_hr_spike,
			sets_hit_target_pct, top_of_range_rate_pct, soreness_rate_pct, pain_rate_pct,
			disruption_rate_pct, avg_pump, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, now())
		ON CONFLICT (user_id, week_start) DO UPDATE SET
			week_end = EXCLUDED.week_end,
			phase_id = EXCLUDED.phase_id,
			set_count = EXCLUDED.set_count,
			avg_estimated_rir = EXCLUDED.avg_estimated_rir,
			avg_hr_spike = EXCLUDED.avg_hr_spike,
			sets_hit_target_pct = EXCLUDED.sets_hit_target_pct,
			top_of_range_rate_pct = EXCLUDED.top_of_range_rate_pct,
			soreness_rate_pct = EXCLUDED.soreness_rate_pct,
			pain_rate_pct = EXCLUDED.pain_rate_pct,
			disruption_rate_pct = EXCLUDED.disruption_rate_pct,
			avg_pump = EXCLUDED.avg_pump,
			updated_at = now();`,
		agg.UserID, agg.WeekStart, agg.WeekEnd, agg.PhaseID, agg.SetCount, agg.AvgEstimatedRIR, agg.AvgNormalizedHRSpike,
		agg.SetsHitTargetPct, agg.TopOfRangeRatePct, agg.SorenessRatePct, agg.PainRatePct,
		agg.DisruptionRatePct, agg.AvgPump,
	)
	if err != nil {
		return fmt.Errorf("upsert weekly aggregate: %w", err)
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, userID string, weekStart time.Time) (_ *WeeklyAggregate, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.aggregate.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	var agg WeeklyAggregate
	err = r.db.QueryRow(
		ctx,
		`SELECT user_id, week_start, week_end, phase_id, set_count, avg_estimated_rir, avg_hr_spike,
			sets_hit_target_pct, top_of_range_rate_pct, soreness_rate_pct, pain_rate_pct,
			disruption_rate_pct, avg_pump
		FROM weekly_aggregate
		WHERE user_id = $1 AND week_start = $2;`,
		userID, weekStart,
	).Scan(
		&agg.UserID, &agg.WeekStart, &agg.WeekEnd, &agg.PhaseID, &agg.SetCount, &agg.AvgEstimatedRIR, &agg.AvgNormalizedHRSpike,
		&agg.SetsHitTargetPct, &agg.TopOfRangeRatePct, &agg.SorenessRatePct, &agg.PainRatePct,
		&agg.DisruptionRatePct, &agg.AvgPump,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAggregateNotFound
		}
		return nil, fmt.Errorf("scan weekly aggregate: %w", err)
	}
	agg.WeekStart = agg.WeekStart.UTC()
	agg.WeekEnd = agg.WeekEnd.UTC()

	return &agg, nil
}
