package periodization

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

const phaseColumns = `id, user_id, goal, ruleset_id, start_date, end_date, cadence_weeks,
	deload_week_indices, current_week_index, meet_date, status, created_at`

func (r *Repo) GetActive(ctx context.Context, userID string) (_ *Phase, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.periodization.getactive")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	row := r.db.QueryRow(
		ctx,
		`SELECT `+phaseColumns+`
			FROM plan_phase
			WHERE user_id = $1 AND status = 'active';`,
		userID,
	)
	phase, err := scanPhase(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPhaseNotFound
		}
		return nil, fmt.Errorf("scan phase: %w", err)
	}
	return phase, nil
}

// GetForWeek returns the phase whose dates cover weekStart, whatever its status,
// so a re-aggregated week keeps the phase it was trained in. If phases overlap
// the most recently created one wins.
func (r *Repo) GetForWeek(ctx context.Context, userID string, weekStart time.Time) (_ *Phase, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.periodization.getforweek")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	row := r.db.QueryRow(
		ctx,
		`SELECT `+phaseColumns+`
			FROM plan_phase
			WHERE user_id = $1 AND start_date <= $2::date AND end_date > $2::date
			ORDER BY created_at DESC, id DESC
			LIMIT 1;`,
		userID, weekStart.UTC(),
	)
	phase, err := scanPhase(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPhaseNotFound
		}
		return nil, fmt.Errorf("scan phase: %w", err)
	}
	return phase, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Phase, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.periodization.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	row := r.db.QueryRow(ctx, `SELECT `+phaseColumns+` FROM plan_phase WHERE id = $1;`, id)
	phase, err := scanPhase(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPhaseNotFound
		}
		return nil, fmt.Errorf("scan phase: %w", err)
	}
	return phase, nil
}

// Create stores a new active phase. The partial unique index on (user_id) WHERE status = 'active'
// rejects a second active phase for the same user.
func (r *Repo) Create(ctx context.Context, phase *Phase) (_ *Phase, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.periodization.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", phase.UserID))

	created := *phase
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO plan_phase
				(user_id, goal, ruleset_id, start_date, end_date, cadence_weeks,
				 deload_week_indices, current_week_index, meet_date, status, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id, created_at;`,
		phase.UserID, phase.Goal, phase.RulesetID, phase.StartDate, phase.EndDate, phase.CadenceWeeks,
		phase.DeloadWeekIndices, phase.CurrentWeekIndex, phase.MeetDate, StatusActive, time.Now().UTC(),
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("phase.id", created.ID))
	created.Status = StatusActive
	return &created, nil
}

func (r *Repo) UpdateWeek(ctx context.Context, phaseID, currentWeekIndex int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.periodization.updateweek")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("phase.id", phaseID))

	// current_week_index only ever moves forward
	tag, err := r.db.Exec(
		ctx,
		`UPDATE plan_phase SET current_week_index = $1, updated_at = now()
			WHERE id = $2 AND current_week_index <= $1;`,
		currentWeekIndex, phaseID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPhaseNotFound
	}
	return nil
}

func (r *Repo) SetStatus(ctx context.Context, phaseID int, status Status) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.periodization.setstatus")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("phase.id", phaseID))
	span.SetAttributes(attribute.String("status", string(status)))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE plan_phase SET status = $1, updated_at = now() WHERE id = $2;`,
		status, phaseID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPhaseNotFound
	}
	return nil
}

// ListActiveUserIDs returns all users that currently have an active phase.
func (r *Repo) ListActiveUserIDs(ctx context.Context) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.periodization.listactiveusers")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT user_id FROM plan_phase WHERE status = 'active' ORDER BY user_id;`)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	userIDs, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("collect rows: %w", err)
	}
	span.SetAttributes(attribute.Int("users.count", len(userIDs)))

	return userIDs, nil
}

func scanPhase(row pgx.Row) (*Phase, error) {
	var (
		p       Phase
		goal    string
		status  string
		indices []int32
	)
	if err := row.Scan(
		&p.ID, &p.UserID, &goal, &p.RulesetID, &p.StartDate, &p.EndDate, &p.CadenceWeeks,
		&indices, &p.CurrentWeekIndex, &p.MeetDate, &status, &p.CreatedAt,
	); err != nil {
		return nil, err
	}

	p.Goal = Goal(goal)
	p.Status = Status(status)
	p.StartDate = p.StartDate.UTC()
	p.EndDate = p.EndDate.UTC()
	p.DeloadWeekIndices = make([]int, len(indices))
	for i, idx := range indices {
		p.DeloadWeekIndices[i] = int(idx)
	}

	return &p, nil
}
