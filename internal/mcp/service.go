package mcp

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/2beens/adaptivecoach/internal/adjustment"
	"github.com/2beens/adaptivecoach/internal/calibration"
	"github.com/2beens/adaptivecoach/internal/directive"
	"github.com/2beens/adaptivecoach/internal/nutrition"
	"github.com/2beens/adaptivecoach/internal/periodization"
)

type readinessScorer interface {
	Readiness(ctx context.Context, userID string, day time.Time) calibration.ReadinessScore
}

type directiveReader interface {
	Get(ctx context.Context, userID string, weekStart time.Time) (*adjustment.WeeklyDirective, error)
	ListForUser(ctx context.Context, userID string, limit int) ([]adjustment.WeeklyDirective, error)
}

type phaseReader interface {
	Active(ctx context.Context, userID string) (*periodization.Phase, error)
}

type nutritionReader interface {
	Get(ctx context.Context, userID string, weekStart time.Time) (*nutrition.NutritionWeek, error)
}

type activeAthleteLister interface {
	ListActiveUserIDs(ctx context.Context) ([]string, error)
}

// ContextService assembles read-only coaching context for assistant tools.
type ContextService struct {
	readiness  readinessScorer
	directives directiveReader
	phases     phaseReader
	nutrition  nutritionReader
	athletes   activeAthleteLister
}

func NewContextService(
	readiness readinessScorer,
	directives directiveReader,
	phases phaseReader,
	nutrition nutritionReader,
	athletes activeAthleteLister,
) *ContextService {
	return &ContextService{
		readiness:  readiness,
		directives: directives,
		phases:     phases,
		nutrition:  nutrition,
		athletes:   athletes,
	}
}

// ActiveAthletes returns the ids of athletes with an active plan phase, sorted.
func (s *ContextService) ActiveAthletes(ctx context.Context) ([]string, error) {
	ids, err := s.athletes.ListActiveUserIDs(ctx)
	if err != nil {
		return nil, err
	}
	slices.Sort(ids)
	return ids, nil
}

func (s *ContextService) Readiness(ctx context.Context, userID string, day time.Time) calibration.ReadinessScore {
	return s.readiness.Readiness(ctx, userID, day)
}

func (s *ContextService) DirectiveHistory(ctx context.Context, userID string, limit int) ([]adjustment.WeeklyDirective, error) {
	return s.directives.ListForUser(ctx, userID, limit)
}

// WeekSummary renders the phase, readiness, directive and nutrition targets of one
// training week as markdown. Missing parts are reported inline, only storage
// failures are returned as errors.
func (s *ContextService) WeekSummary(ctx context.Context, userID string, weekStart time.Time) (string, error) {
	phase, err := s.phases.Active(ctx, userID)
	if err != nil && !errors.Is(err, periodization.ErrPhaseNotFound) {
		return "", fmt.Errorf("active phase: %w", err)
	}

	d, err := s.directives.Get(ctx, userID, weekStart)
	if err != nil && !errors.Is(err, directive.ErrDirectiveNotFound) {
		return "", fmt.Errorf("directive: %w", err)
	}

	week, err := s.nutrition.Get(ctx, userID, weekStart)
	if err != nil && !errors.Is(err, nutrition.ErrWeekNotFound) {
		return "", fmt.Errorf("nutrition week: %w", err)
	}

	readiness := s.readiness.Readiness(ctx, userID, weekStart)

	return formatWeekSummary(userID, weekStart, phase, readiness, d, week), nil
}

func formatWeekSummary(
	userID string,
	weekStart time.Time,
	phase *periodization.Phase,
	readiness calibration.ReadinessScore,
	d *adjustment.WeeklyDirective,
	week *nutrition.NutritionWeek,
) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Week of %s for %s\n\n", weekStart.Format(time.DateOnly), userID)

	b.WriteString("## Phase\n\n")
	if phase == nil {
		b.WriteString("No active phase.\n\n")
	} else {
		fmt.Fprintf(&b, "Goal %s, week %d, %s to %s, ruleset %s.\n\n",
			phase.Goal,
			phase.CurrentWeekIndex,
			phase.StartDate.Format(time.DateOnly),
			phase.EndDate.Format(time.DateOnly),
			phase.RulesetID,
		)
	}

	b.WriteString("## Readiness\n\n")
	fmt.Fprintf(&b, "%.1f (%s)\n\n", readiness.Value, readiness.Source)

	b.WriteString("## Directive\n\n")
	if d == nil {
		b.WriteString("No directive issued.\n\n")
	} else {
		fmt.Fprintf(&b, "| Load | Sets | Intensity |\n|------|------|-----------|\n| %+.1f%% | %+d | %+.1f%% |\n\n",
			d.LoadDeltaPct, d.SetDelta, d.IntensityDeltaPct,
		)
		if len(d.Flags) > 0 {
			flags := make([]string, 0, len(d.Flags))
			for _, f := range d.Flags {
				flags = append(flags, string(f))
			}
			fmt.Fprintf(&b, "Flags: %s\n\n", strings.Join(flags, ", "))
		}
		if d.Deload != nil {
			fmt.Fprintf(&b, "Deload: volume x%.2f, intensity x%.2f. %s\n\n",
				d.Deload.VolumeMultiplier, d.Deload.IntensityMultiplier, d.Deload.Notes,
			)
		}
		if d.Caution != "" {
			fmt.Fprintf(&b, "Caution: %s\n\n", d.Caution)
		}
	}

	b.WriteString("## Nutrition\n\n")
	if week == nil {
		b.WriteString("No nutrition targets.\n")
	} else {
		fmt.Fprintf(&b, "%d kcal, protein %dg, fat %dg, carbs %dg, water %dml.\n",
			week.KcalTarget, week.ProteinTargetG, week.FatTargetG, week.CarbTargetG, week.HydrationMl,
		)
		if week.SafetyFloorApplied {
			fmt.Fprintf(&b, "Safety floor of %d kcal applied.\n", week.SafetyFloorKcal)
		}
		for _, n := range week.Notes {
			fmt.Fprintf(&b, "- %s\n", n)
		}
	}

	return b.String()
}
