package athlete

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

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Get(ctx context.Context, userID string) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.athlete.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	var (
		p           Profile
		heavyDays   []int32
		healthFlags []string
	)
	err = r.db.QueryRow(
		ctx,
		`SELECT user_id, age, sex, height_cm, weight_kg, resting_hr, activity, nutrition_goal,
			heavy_training_days, health_flags, updated_at
		FROM athlete WHERE user_id = $1;`,
		userID,
	).Scan(
		&p.UserID, &p.Age, &p.Sex, &p.HeightCm, &p.WeightKg, &p.RestingHR, &p.Activity, &p.NutritionGoal,
		&heavyDays, &healthFlags, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("scan athlete: %w", err)
	}

	for _, d := range heavyDays {
		p.HeavyTrainingDays = append(p.HeavyTrainingDays, time.Weekday(d))
	}
	for _, f := range healthFlags {
		p.HealthFlags = append(p.HealthFlags, HealthFlag(f))
	}

	return &p, nil
}

func (r *Repo) Upsert(ctx context.Context, p *Profile) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.athlete.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", p.UserID))

	heavyDays := make([]int32, 0, len(p.HeavyTrainingDays))
	for _, d := range p.HeavyTrainingDays {
		heavyDays = append(heavyDays, int32(d))
	}
	healthFlags := make([]string, 0, len(p.HealthFlags))
	for _, f := range p.HealthFlags {
		healthFlags = append(healthFlags, string(f))
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO athlete (user_id, age, sex, height_cm, weight_kg, resting_hr, activity, nutrition_goal,
			heavy_training_days, health_flags, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (user_id) DO UPDATE SET
			age = EXCLUDED.age,
			sex = EXCLUDED.sex,
			height_cm = EXCLUDED.height_cm,
			weight_kg = EXCLUDED.weight_kg,
			resting_hr = EXCLUDED.resting_hr,
			activity = EXCLUDED.activity,
			nutrition_goal = EXCLUDED.nutrition_goal,
			heavy_training_days = EXCLUDED.heavy_training_days,
			health_flags = EXCLUDED.health_flags,
			updated_at = EXCLUDED.updated_at;`,
		p.UserID, p.Age, p.Sex, p.HeightCm, p.WeightKg, p.RestingHR, p.Activity, p.NutritionGoal,
		heavyDays, healthFlags, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert athlete: %w", err)
	}
	return nil
}

// ListUserIDs returns every user with a profile, ordered for stable fan-out.
func (r *Repo) ListUserIDs(ctx context.Context) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.athlete.listuserids")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT user_id FROM athlete ORDER BY user_id;`)
	if err != nil {
		return nil, fmt.Errorf("query athletes: %w", err)
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}
