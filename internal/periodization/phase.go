package periodization

import (
	"fmt"
	"slices"
	"time"

	"github.com/2beens/adaptivecoach/pkg"
)

const week = 7 * 24 * time.Hour

// Phase is the active periodized training block of a user.
type Phase struct {
	ID                int        `json:"id"`
	UserID            string     `json:"userId"`
	Goal              Goal       `json:"goal"`
	RulesetID         string     `json:"rulesetId"`
	StartDate         time.Time  `json:"startDate"`
	EndDate           time.Time  `json:"endDate"`
	CadenceWeeks      int        `json:"cadenceWeeks"`
	DeloadWeekIndices []int      `json:"deloadWeekIndices"`
	CurrentWeekIndex  int        `json:"currentWeekIndex"`
	MeetDate          *time.Time `json:"meetDate,omitempty"`
	Status            Status     `json:"status"`
	CreatedAt         time.Time  `json:"createdAt"`
}

type NewPhaseParams struct {
	UserID    string
	Goal      Goal
	StartDate time.Time
	EndDate   time.Time
	// CadenceWeeks overrides the ruleset cadence when > 0, it must stay within the ruleset range.
	CadenceWeeks int
	MeetDate     *time.Time
}

// PhaseWeek describes one week of a phase, as seen by the adjustment engine.
type PhaseWeek struct {
	PhaseID   int       `json:"phaseId"`
	Goal      Goal      `json:"goal"`
	WeekIndex int       `json:"weekIndex"`
	WeekStart time.Time `json:"weekStart"`
	State     State     `json:"state"`
	Taper     bool      `json:"taper"`
}

// NewPhase builds a phase and precomputes its deload week indices.
func NewPhase(params NewPhaseParams, ruleset Ruleset) (*Phase, error) {
	if !params.Goal.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidGoal, params.Goal)
	}
	if ruleset.Goal != params.Goal {
		return nil, fmt.Errorf("%w: ruleset %s is for goal %s", ErrUnknownRuleset, ruleset.ID, ruleset.Goal)
	}

	start := pkg.Midnight(params.StartDate)
	end := pkg.Midnight(params.EndDate)
	if !end.After(start) {
		return nil, fmt.Errorf("%w: end %s not after start %s", ErrInvalidPhaseDates, end.Format(time.DateOnly), start.Format(time.DateOnly))
	}

	cadence := ruleset.CadenceWeeks
	if params.CadenceWeeks > 0 {
		if params.CadenceWeeks < ruleset.MinCadenceWeeks || params.CadenceWeeks > ruleset.MaxCadenceWeeks {
			return nil, fmt.Errorf(
				"%w: %d not in [%d, %d]",
				ErrCadenceOutOfRange, params.CadenceWeeks, ruleset.MinCadenceWeeks, ruleset.MaxCadenceWeeks,
			)
		}
		cadence = params.CadenceWeeks
	}

	totalWeeks := totalWeeksBetween(start, end)
	if totalWeeks < 2 {
		return nil, ErrPhaseTooShort
	}

	var meetDate *time.Time
	if params.MeetDate != nil {
		md := pkg.Midnight(*params.MeetDate)
		meetDate = &md
	}

	return &Phase{
		UserID:            params.UserID,
		Goal:              params.Goal,
		RulesetID:         ruleset.ID,
		StartDate:         start,
		EndDate:           end,
		CadenceWeeks:      cadence,
		DeloadWeekIndices: DeloadWeekIndices(totalWeeks, cadence),
		CurrentWeekIndex:  0,
		MeetDate:          meetDate,
		Status:            StatusActive,
	}, nil
}

// DeloadWeekIndices places a deload every cadence-th week (0-indexed: c-1, 2c-1, ...)
// and forces one terminal deload on the last week. Cadence deloads that fall inside
// the final cadence window are dropped, so the final window holds exactly one deload
// and no two deload weeks are ever adjacent.
func DeloadWeekIndices(totalWeeks, cadence int) []int {
	if totalWeeks <= 0 {
		return nil
	}
	if cadence < 2 {
		cadence = 2
	}

	last := totalWeeks - 1
	finalWindowStart := totalWeeks - cadence

	indices := make([]int, 0, totalWeeks/cadence+1)
	for i := cadence - 1; i < last; i += cadence {
		if i >= finalWindowStart {
			break
		}
		indices = append(indices, i)
	}

	return append(indices, last)
}

func totalWeeksBetween(start, end time.Time) int {
	days := int(end.Sub(start).Hours() / 24)
	return (days + 6) / 7
}

func (p *Phase) TotalWeeks() int {
	return totalWeeksBetween(p.StartDate, p.EndDate)
}

// WeekIndexOn returns the 0-based week index of t within the phase. Negative before start.
func (p *Phase) WeekIndexOn(t time.Time) int {
	d := t.UTC().Sub(p.StartDate)
	if d < 0 {
		return -1 - int((-d-1)/week)
	}
	return int(d / week)
}

func (p *Phase) WeekStart(weekIndex int) time.Time {
	return p.StartDate.AddDate(0, 0, 7*weekIndex)
}

func (p *Phase) IsDeloadWeek(weekIndex int) bool {
	_, found := slices.BinarySearch(p.DeloadWeekIndices, weekIndex)
	return found
}

func (p *Phase) IsTerminalWeek(weekIndex int) bool {
	return weekIndex == p.TotalWeeks()-1
}

func (p *Phase) StateAt(weekIndex int) State {
	if weekIndex >= p.TotalWeeks() {
		return StateTransitioning
	}
	if p.IsDeloadWeek(weekIndex) {
		return StateDeload
	}
	return StateTraining
}

func (p *Phase) StateOn(t time.Time) State {
	if !t.UTC().Before(p.EndDate) {
		return StateTransitioning
	}
	return p.StateAt(p.WeekIndexOn(t))
}

// RemainingDeloads returns the deload week indices not yet consumed.
func (p *Phase) RemainingDeloads() []int {
	i, _ := slices.BinarySearch(p.DeloadWeekIndices, p.CurrentWeekIndex)
	return slices.Clone(p.DeloadWeekIndices[i:])
}

// InTaper reports whether the week starts within taperWeeks before the meet date.
func (p *Phase) InTaper(weekIndex, taperWeeks int) bool {
	if p.MeetDate == nil || taperWeeks <= 0 {
		return false
	}
	ws := p.WeekStart(weekIndex)
	taperStart := p.MeetDate.AddDate(0, 0, -7*taperWeeks)
	return !ws.Before(taperStart) && ws.Before(*p.MeetDate)
}

// Week describes the given week of the phase.
func (p *Phase) Week(weekIndex int, ruleset Ruleset) PhaseWeek {
	return PhaseWeek{
		PhaseID:   p.ID,
		Goal:      p.Goal,
		WeekIndex: weekIndex,
		WeekStart: p.WeekStart(weekIndex),
		State:     p.StateAt(weekIndex),
		Taper:     p.InTaper(weekIndex, ruleset.TaperWeeks),
	}
}

// Advance moves the phase to the week containing now. The week index never moves
// backwards. A deload directive is returned when the reached week is a deload week.
// Before the start date the phase stays untouched and ErrPhaseNotStarted is returned.
func (p *Phase) Advance(now time.Time, ruleset Ruleset) (PhaseWeek, *DeloadDirective, error) {
	if now.UTC().Before(p.StartDate) {
		return PhaseWeek{}, nil, fmt.Errorf("%w: starts %s", ErrPhaseNotStarted, p.StartDate.Format(time.DateOnly))
	}
	target := p.WeekIndexOn(now)
	if target < p.CurrentWeekIndex {
		return PhaseWeek{}, nil, fmt.Errorf("%w: at %d, asked for %d", ErrWeekRegression, p.CurrentWeekIndex, target)
	}
	p.CurrentWeekIndex = target

	w := p.Week(target, ruleset)
	if !now.UTC().Before(p.EndDate) {
		w.State = StateTransitioning
	}
	if w.State != StateDeload {
		return w, nil, nil
	}

	deload := NewDeloadDirective(ruleset, target, p.IsTerminalWeek(target))
	return w, &deload, nil
}
