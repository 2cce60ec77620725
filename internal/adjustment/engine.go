package adjustment

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/2beens/adaptivecoach/internal/aggregate"
	"github.com/2beens/adaptivecoach/internal/calibration"
	"github.com/2beens/adaptivecoach/internal/periodization"
	"github.com/2beens/adaptivecoach/pkg"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var ErrPhaseComplete = errors.New("phase is transitioning, no more directives")

const maintainNotes = "maintain current plan"

// WeeklyDirective tells how next week's training changes. Exactly one is
// stored per (user, week start).
type WeeklyDirective struct {
	ID                uuid.UUID                      `json:"id"`
	UserID            string                         `json:"userId"`
	WeekStart         time.Time                      `json:"weekStart"`
	PhaseID           int                            `json:"phaseId"`
	Goal              periodization.Goal             `json:"goal"`
	LoadDeltaPct      float64                        `json:"loadDeltaPct"`
	SetDelta          int                            `json:"setDelta"`
	IntensityDeltaPct float64                        `json:"intensityDeltaPct"`
	Flags             []Flag                         `json:"flags"`
	Deload            *periodization.DeloadDirective `json:"deload,omitempty"`
	Readiness         float64                        `json:"readiness"`
	Caution           string                         `json:"caution,omitempty"`
	Notes             string                         `json:"notes,omitempty"`
	CreatedAt         time.Time                      `json:"createdAt"`
}

func (d *WeeklyDirective) HasFlag(f Flag) bool {
	for _, flag := range d.Flags {
		if flag == f {
			return true
		}
	}
	return false
}

// IsNoop reports whether the directive leaves the plan as it is.
func (d *WeeklyDirective) IsNoop() bool {
	return d.Deload == nil && d.LoadDeltaPct == 0 && d.SetDelta == 0 && d.IntensityDeltaPct == 0
}

type Engine struct {
	cfg      Config
	ruleSets map[periodization.Goal]RuleSet
}

func NewEngine(cfg Config) *Engine {
	ruleSets := make(map[periodization.Goal]RuleSet)
	for _, goal := range periodization.AllGoals {
		rs, err := RuleSetFor(goal, cfg)
		if err != nil {
			// every listed goal has a table
			panic(err)
		}
		ruleSets[goal] = rs
	}
	return &Engine{
		cfg:      cfg,
		ruleSets: ruleSets,
	}
}

// ComputeAdjustment derives next week's directive. An active deload replaces the
// decision table entirely. Too few sets yield a no-op rather than a guess.
// Positive deltas are scaled by readiness, negative ones never are.
func (e *Engine) ComputeAdjustment(
	agg *aggregate.WeeklyAggregate,
	score calibration.ReadinessScore,
	week periodization.PhaseWeek,
	deload *periodization.DeloadDirective,
) (WeeklyDirective, error) {
	if week.State == periodization.StateTransitioning {
		return WeeklyDirective{}, ErrPhaseComplete
	}

	readiness := pkg.Clamp(score.Value, 0, 1)
	d := WeeklyDirective{
		ID:        uuid.New(),
		UserID:    agg.UserID,
		WeekStart: week.WeekStart,
		PhaseID:   week.PhaseID,
		Goal:      week.Goal,
		Readiness: readiness,
	}

	if deload != nil {
		d.Deload = deload
		d.IntensityDeltaPct = pkg.RoundTo((deload.IntensityMultiplier-1)*100, 2)
		d.Flags = []Flag{FlagDeload}
		if deload.Terminal {
			d.Flags = append(d.Flags, FlagTerminalDeload)
		}
		d.Notes = deload.Notes
		return d, nil
	}

	var insufficient *aggregate.InsufficientDataError
	if err := agg.CheckSufficient(e.cfg.MinSets); errors.As(err, &insufficient) {
		log.Debugf("adjustment: %s, emitting no-op for user %s", insufficient, agg.UserID)
		d.Flags = []Flag{FlagInsufficientData}
		d.Notes = maintainNotes
		return d, nil
	}

	rs, ok := e.ruleSets[week.Goal]
	if !ok {
		return WeeklyDirective{}, fmt.Errorf("%w: %q", periodization.ErrInvalidGoal, week.Goal)
	}

	in := Input{
		Aggregate: agg,
		Readiness: readiness,
		Week:      week,
	}
	rule, matched := Match(rs, in)
	if !matched {
		d.Flags = []Flag{FlagMaintain}
		d.Notes = maintainNotes
		addReadinessCaution(&d, score.Low)
		return d, nil
	}

	action := rule.Then(in)
	d.Flags = []Flag{rule.Flag}
	d.Caution = action.Caution

	var damped bool
	d.LoadDeltaPct, damped = dampen(action.LoadDeltaPct, readiness)
	d.IntensityDeltaPct, _ = dampen(action.IntensityDeltaPct, readiness)
	setDelta, setDamped := dampen(float64(action.SetDelta), readiness)
	d.SetDelta = int(math.Round(setDelta))
	if damped || setDamped {
		d.Flags = append(d.Flags, FlagReadinessDamped)
	}

	if d.LoadDeltaPct > e.cfg.MaxLoadStepPct {
		d.LoadDeltaPct = e.cfg.MaxLoadStepPct
		d.Flags = append(d.Flags, FlagLoadStepCapped)
	}
	d.LoadDeltaPct = pkg.RoundTo(d.LoadDeltaPct, 2)
	d.IntensityDeltaPct = pkg.RoundTo(d.IntensityDeltaPct, 2)

	if d.IsNoop() {
		d.Notes = maintainNotes
	}
	addReadinessCaution(&d, score.Low)

	return d, nil
}

func addReadinessCaution(d *WeeklyDirective, low bool) {
	if !low {
		return
	}
	d.Flags = append(d.Flags, FlagLowReadiness)
	msg := fmt.Sprintf("low readiness (%.2f), consider a light day", d.Readiness)
	if d.Caution != "" {
		msg = d.Caution + "; " + msg
	}
	d.Caution = msg
}

// dampen scales a positive delta by readiness and reports whether it changed.
func dampen(delta, readiness float64) (float64, bool) {
	if delta <= 0 {
		return delta, false
	}
	scaled := delta * readiness
	return scaled, scaled != delta
}
