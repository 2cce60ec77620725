package directive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/adaptivecoach/internal/adjustment"
	"github.com/2beens/adaptivecoach/internal/periodization"
	"github.com/2beens/adaptivecoach/internal/telemetry/tracing"
	"github.com/2beens/adaptivecoach/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrDirectiveExists   = errors.New("directive already issued for this week")
	ErrDirectiveNotFound = errors.New("directive not found")
)

const selectColumns = `id, user_id, week_start, phase_id, goal, load_delta_pct, set_delta, intensity_delta_pct,
	flags, deload, readiness, caution, notes, created_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Insert stores the directive of a (user, week start). A second insert for the
// same week fails with ErrDirectiveExists, so each week is notified once.
func (r *Repo) Insert(ctx context.Context, d *adjustment.WeeklyDirective) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.directive.insert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", d.UserID))
	span.SetAttributes(attribute.String("week.start", d.WeekStart.Format(time.DateOnly)))

	var deload []byte
	if d.Deload != nil {
		deload, err = json.Marshal(d.Deload)
		if err != nil {
			return fmt.Errorf("marshal deload: %w", err)
		}
	}

	flags := make([]string, 0, len(d.Flags))
	for _, f := range d.Flags {
		flags = append(flags, string(f))
	}

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO weekly_directive (
			id, user_id, week_start, phase_id, goal, load_delta_pct, set_delta, intensity_delta_pct,
			flags, deload, readiness, caution, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at;`,
		d.ID, d.UserID, d.WeekStart, d.PhaseID, string(d.Goal), d.LoadDeltaPct, d.SetDelta, d.IntensityDeltaPct,
		flags, deload, d.Readiness, d.Caution, d.Notes,
	).Scan(&d.CreatedAt)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return ErrDirectiveExists
		}
		return fmt.Errorf("insert directive: %w", err)
	}

	return nil
}

func (r *Repo) Get(ctx context.Context, userID string, weekStart time.Time) (_ *adjustment.WeeklyDirective, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.directive.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	row := r.db.QueryRow(
		ctx,
		`SELECT `+selectColumns+`
		FROM weekly_directive
		WHERE user_id = $1 AND week_start = $2;`,
		userID, weekStart,
	)
	d, err := scanDirective(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDirectiveNotFound
		}
		return nil, err
	}

	return d, nil
}

// ListForUser returns the latest directives of a user, newest week first.
func (r *Repo) ListForUser(ctx context.Context, userID string, limit int) (_ []adjustment.WeeklyDirective, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.directive.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+selectColumns+`
		FROM weekly_directive
		WHERE user_id = $1
		ORDER BY week_start DESC
		LIMIT $2;`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query directives: %w", err)
	}
	defer rows.Close()

	var directives []adjustment.WeeklyDirective
	for rows.Next() {
		d, err := scanDirective(rows)
		if err != nil {
			return nil, err
		}
		directives = append(directives, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate directives: %w", err)
	}

	return directives, nil
}

func scanDirective(row pgx.Row) (*adjustment.WeeklyDirective, error) {
	var (
		d      adjustment.WeeklyDirective
		goal   string
		flags  []string
		deload []byte
	)
	err := row.Scan(
		&d.ID, &d.UserID, &d.WeekStart, &d.PhaseID, &goal, &d.LoadDeltaPct, &d.SetDelta, &d.IntensityDeltaPct,
		&flags, &deload, &d.Readiness, &d.Caution, &d.Notes, &d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan directive: %w", err)
	}

	d.Goal = periodization.Goal(goal)
	d.WeekStart = d.WeekStart.UTC()
	for _, f := range flags {
		d.Flags = append(d.Flags, adjustment.Flag(f))
	}
	if len(deload) > 0 {
		var dd periodization.DeloadDirective
		if err := json.Unmarshal(deload, &dd); err != nil {
			return nil, fmt.Errorf("unmarshal deload: %w", err)
		}
		d.Deload = &dd
	}

	return &d, nil
}
