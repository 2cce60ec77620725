package calibration

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/adaptivecoach/internal/telemetry/tracing"
	"github.com/2beens/adaptivecoach/pkg"

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

func (r *Repo) Get(ctx context.Context, userID, exerciseID string) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.calibration.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	var p Profile
	err = r.db.QueryRow(
		ctx,
		`SELECT user_id, exercise_id, rir_bias, confidence, sample_count, version, last_updated
		FROM calibration_profile
		WHERE user_id = $1 AND exercise_id = $2;`,
		userID, exerciseID,
	).Scan(&p.UserID, &p.ExerciseID, &p.RIRBiasEstimate, &p.Confidence, &p.SampleCount, &p.Version, &p.LastUpdated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("scan calibration profile: %w", err)
	}
	p.LastUpdated = p.LastUpdated.UTC()

	return &p, nil
}

// Save writes the profile if nobody else did since it was read, and bumps its
// version on success.
func (r *Repo) Save(ctx context.Context, p *Profile) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.calibration.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", p.UserID))
	span.SetAttributes(attribute.Int("version", p.Version))

	if p.Version == 0 {
		_, err = r.db.Exec(
			ctx,
			`INSERT INTO calibration_profile (
				user_id, exercise_id, rir_bias, confidence, sample_count, version, last_updated
			) VALUES ($1, $2, $3, $4, $5, 1, $6);`,
			p.UserID, p.ExerciseID, p.RIRBiasEstimate, p.Confidence, p.SampleCount, p.LastUpdated,
		)
		if err != nil {
			if pkg.IsUniqueViolationError(err) {
				return ErrVersionConflict
			}
			return fmt.Errorf("insert calibration profile: %w", err)
		}
		p.Version = 1
		return nil
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE calibration_profile
		SET rir_bias = $3, confidence = $4, sample_count = $5, last_updated = $6, version = version + 1
		WHERE user_id = $1 AND exercise_id = $2 AND version = $7;`,
		p.UserID, p.ExerciseID, p.RIRBiasEstimate, p.Confidence, p.SampleCount, p.LastUpdated, p.Version,
	)
	if err != nil {
		return fmt.Errorf("update calibration profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrVersionConflict
	}
	p.Version++

	return nil
}

func (r *Repo) ListForUser(ctx context.Context, userID string) (_ []Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.calibration.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT user_id, exercise_id, rir_bias, confidence, sample_count, version, last_updated
		FROM calibration_profile
		WHERE user_id = $1
		ORDER BY exercise_id;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query calibration profiles: %w", err)
	}
	defer rows.Close()

	var profiles []Profile
	for rows.Next() {
		var p Profile
		if err := rows.Scan(&p.UserID, &p.ExerciseID, &p.RIRBiasEstimate, &p.Confidence, &p.SampleCount, &p.Version, &p.LastUpdated); err != nil {
			return nil, fmt.Errorf("scan calibration profile: %w", err)
		}
		p.LastUpdated = p.LastUpdated.UTC()
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate calibration profiles: %w", err)
	}

	return profiles, nil
}
