package nutrition

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

var ErrWeekNotFound = errors.New("nutrition week not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Upsert(ctx context.Context, w *NutritionWeek) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", w.UserID))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO nutrition_week (
			user_id, week_start, kcal_target, protein_g, fat_g, carb_g, heavy_day_kcal, heavy_day_carb_g,
			weight_moving_avg, weekly_change_pct, delta_vs_goal_pct, nudge_kcal, safety_floor_kcal,
			safety_floor_applied, hydration_ml, sodium_limit_mg, light_day, readiness, caution, notes,
			base_kcal_target, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, now())
		ON CONFLICT (user_id, week_start) DO UPDATE SET
			kcal_target = EXCLUDED.kcal_target,
			base_kcal_target = EXCLUDED.base_kcal_target,
			protein_g = EXCLUDED.protein_g,
			fat_g = EXCLUDED.fat_g,
			carb_g = EXCLUDED.carb_g,
			heavy_day_kcal = EXCLUDED.heavy_day_kcal,
			heavy_day_carb_g = EXCLUDED.heavy_day_carb_g,
			weight_moving_avg = EXCLUDED.weight_moving_avg,
			weekly_change_pct = EXCLUDED.weekly_change_pct,
			delta_vs_goal_pct = EXCLUDED.delta_vs_goal_pct,
			nudge_kcal = EXCLUDED.nudge_kcal,
			safety_floor_kcal = EXCLUDED.safety_floor_kcal,
			safety_floor_applied = EXCLUDED.safety_floor_applied,
			hydration_ml = EXCLUDED.hydration_ml,
			sodium_limit_mg = EXCLUDED.sodium_limit_mg,
			light_day = EXCLUDED.light_day,
			readiness = EXCLUDED.readiness,
			caution = EXCLUDED.caution,
			notes = EXCLUDED.notes,
			updated_at = now();`,
		w.UserID, w.WeekStart, w.KcalTarget, w.ProteinTargetG, w.FatTargetG, w.CarbTargetG, w.HeavyDayKcalTarget, w.HeavyDayCarbTargetG,
		w.WeightMovingAverage, w.WeeklyChangePct, w.DeltaVsGoalPct, w.NudgeKcal, w.SafetyFloorKcal,
		w.SafetyFloorApplied, w.HydrationMl, w.SodiumLimitMg, w.LightDayRecommended, w.Readiness, w.Caution, w.Notes,
		w.BaseKcalTarget,
	)
	if err != nil {
		return fmt.Errorf("upsert nutrition week: %w", err)
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, userID string, weekStart time.Time) (_ *NutritionWeek, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	var w NutritionWeek
	err = r.db.QueryRow(
		ctx,
		`SELECT user_id, week_start, kcal_target, protein_g, fat_g, carb_g, heavy_day_kcal, heavy_day_carb_g,
			weight_moving_avg, weekly_change_pct, delta_vs_goal_pct, nudge_kcal, safety_floor_kcal,
			safety_floor_applied, hydration_ml, sodium_limit_mg, light_day, readiness, caution, notes,
			base_kcal_target
		FROM nutrition_week
		WHERE user_id = $1 AND week_start = $2;`,
		userID, weekStart,
	).Scan(
		&w.UserID, &w.WeekStart, &w.KcalTarget, &w.ProteinTargetG, &w.FatTargetG, &w.CarbTargetG, &w.HeavyDayKcalTarget, &w.HeavyDayCarbTargetG,
		&w.WeightMovingAverage, &w.WeeklyChangePct, &w.DeltaVsGoalPct, &w.NudgeKcal, &w.SafetyFloorKcal,
		&w.SafetyFloorApplied, &w.HydrationMl, &w.SodiumLimitMg, &w.LightDayRecommended, &w.Readiness, &w.Caution, &w.Notes,
		&w.BaseKcalTarget,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWeekNotFound
		}
		return nil, fmt.Errorf("scan nutrition week: %w", err)
	}
	w.WeekStart = w.WeekStart.UTC()

	return &w, nil
}
