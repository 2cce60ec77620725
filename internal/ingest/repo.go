package ingest

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

var ErrDuplicateSet = errors.New("workout set already stored")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// InsertSet stores an immutable set. A retried submission of the same
// (user, exercise, set index, timestamp) yields ErrDuplicateSet.
func (r *Repo) InsertSet(ctx context.Context, s *WorkoutSet) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.ingest.insertset")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", s.UserID))

	var id int64
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO workout_set (
			user_id, exercise_id, set_index, reps, load_kg, target_rep_min, target_rep_max,
			heart_rate_start, heart_rate_end, rest_before_seconds, perceived_effort,
			pump, soreness, joint_pain, disruption, ts
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (user_id, exercise_id, set_index, ts) DO NOTHING
		RETURNING id;`,
		s.UserID, s.ExerciseID, s.SetIndex, s.Reps, s.Load, s.TargetRepMin, s.TargetRepMax,
		s.HeartRateStart, s.HeartRateEnd, s.RestBeforeSeconds, string(s.PerceivedEffort),
		s.Pump, s.Soreness, s.JointPain, s.Disruption, s.Timestamp,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrDuplicateSet
		}
		return 0, fmt.Errorf("insert set: %w", err)
	}

	return id, nil
}

// ListSets returns the sets of a user with timestamps in [from, to).
func (r *Repo) ListSets(ctx context.Context, userID string, from, to time.Time) (_ []WorkoutSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.ingest.listsets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, exercise_id, set_index, reps, load_kg, target_rep_min, target_rep_max,
			heart_rate_start, heart_rate_end, rest_before_seconds, perceived_effort,
			pump, soreness, joint_pain, disruption, ts
		FROM workout_set
		WHERE user_id = $1 AND ts >= $2 AND ts < $3
		ORDER BY ts, exercise_id, set_index;`,
		userID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("query sets: %w", err)
	}
	defer rows.Close()

	var sets []WorkoutSet
	for rows.Next() {
		var (
			s      WorkoutSet
			effort string
		)
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.ExerciseID, &s.SetIndex, &s.Reps, &s.Load, &s.TargetRepMin, &s.TargetRepMax,
			&s.HeartRateStart, &s.HeartRateEnd, &s.RestBeforeSeconds, &effort,
			&s.Pump, &s.Soreness, &s.JointPain, &s.Disruption, &s.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("scan set: %w", err)
		}
		s.PerceivedEffort = Effort(effort)
		s.LoadUnit = LoadUnitKg
		s.Timestamp = s.Timestamp.UTC()
		sets = append(sets, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return sets, nil
}

func (r *Repo) UpsertReading(ctx context.Context, rd *DailyReading) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.ingest.upsertreading")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", rd.UserID))

	// COALESCE keeps the signals of an earlier partial reading of the same day
	_, err = r.db.Exec(
		ctx,
		`INSERT INTO daily_reading (user_id, day, resting_hr, hrv_ms, sleep_hours, sleep_quality, steps)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, day) DO UPDATE SET
			resting_hr = COALESCE(EXCLUDED.resting_hr, daily_reading.resting_hr),
			hrv_ms = COALESCE(EXCLUDED.hrv_ms, daily_reading.hrv_ms),
			sleep_hours = COALESCE(EXCLUDED.sleep_hours, daily_reading.sleep_hours),
			sleep_quality = COALESCE(EXCLUDED.sleep_quality, daily_reading.sleep_quality),
			steps = COALESCE(EXCLUDED.steps, daily_reading.steps);`,
		rd.UserID, rd.Day, rd.RestingHR, rd.HRVms, rd.SleepHours, rd.SleepQuality, rd.Steps,
	)
	if err != nil {
		return fmt.Errorf("upsert reading: %w", err)
	}
	return nil
}

// ListReadings returns the readings of a user for days in [from, to), oldest first.
func (r *Repo) ListReadings(ctx context.Context, userID string, from, to time.Time) (_ []DailyReading, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.ingest.listreadings")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT user_id, day, resting_hr, hrv_ms, sleep_hours, sleep_quality, steps
		FROM daily_reading
		WHERE user_id = $1 AND day >= $2 AND day < $3
		ORDER BY day;`,
		userID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("query readings: %w", err)
	}
	defer rows.Close()

	var readings []DailyReading
	for rows.Next() {
		var rd DailyReading
		if err := rows.Scan(
			&rd.UserID, &rd.Day, &rd.RestingHR, &rd.HRVms, &rd.SleepHours, &rd.SleepQuality, &rd.Steps,
		); err != nil {
			return nil, fmt.Errorf("scan reading: %w", err)
		}
		rd.Day = rd.Day.UTC()
		readings = append(readings, rd)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return readings, nil
}

func (r *Repo) UpsertWeight(ctx context.Context, w *WeightLog) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.ingest.upsertweight")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", w.UserID))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO weight_log (user_id, day, weight_kg) VALUES ($1, $2, $3)
		ON CONFLICT (user_id, day) DO UPDATE SET weight_kg = EXCLUDED.weight_kg;`,
		w.UserID, w.Day, w.WeightKg,
	)
	if err != nil {
		return fmt.Errorf("upsert weight: %w", err)
	}
	return nil
}

// ListWeights returns the weight logs of a user for days in [from, to), oldest first.
func (r *Repo) ListWeights(ctx context.Context, userID string, from, to time.Time) (_ []WeightLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.ingest.listweights")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT user_id, day, weight_kg FROM weight_log
		WHERE user_id = $1 AND day >= $2 AND day < $3
		ORDER BY day;`,
		userID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("query weights: %w", err)
	}

	logs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (WeightLog, error) {
		var w WeightLog
		err := row.Scan(&w.UserID, &w.Day, &w.WeightKg)
		w.Day = w.Day.UTC()
		return w, err
	})
	if err != nil {
		return nil, fmt.Errorf("collect weights: %w", err)
	}
	return logs, nil
}
