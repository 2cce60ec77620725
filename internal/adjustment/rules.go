package adjustment

import (
	"fmt"

	"github.com/2beens/adaptivecoach/internal/aggregate"
	"github.com/2beens/adaptivecoach/internal/periodization"
)

type Flag string

const (
	FlagIncreaseLoad     Flag = "increase_load"
	FlagAddSet           Flag = "add_set"
	FlagRemoveSet        Flag = "remove_set"
	FlagReduceVolume     Flag = "reduce_volume"
	FlagTaperWave        Flag = "taper_wave"
	FlagAdjustRepsSets   Flag = "adjust_reps_sets"
	FlagMobilityMaintain Flag = "mobility_maintain"
	FlagMaintain         Flag = "maintain"
	FlagInsufficientData Flag = "insufficient_data"
	FlagDeload           Flag = "deload"
	FlagTerminalDeload   Flag = "terminal_deload"
	FlagReadinessDamped  Flag = "readiness_dampened"
	FlagLoadStepCapped   Flag = "load_step_capped"
	FlagLowReadiness     Flag = "low_readiness"
)

// Input is what a rule sees of the week.
type Input struct {
	Aggregate *aggregate.WeeklyAggregate
	Readiness float64
	Week      periodization.PhaseWeek
}

// Action is the raw, undampened outcome of a rule.
type Action struct {
	LoadDeltaPct      float64
	SetDelta          int
	IntensityDeltaPct float64
	Caution           string
}

type Rule struct {
	Flag Flag
	When func(in Input) bool
	Then func(in Input) Action
}

// RuleSet is the ordered decision table of one goal family. The first rule
// whose predicate holds decides the week.
type RuleSet interface {
	Goal() periodization.Goal
	Rules() []Rule
}

// Match returns the first rule of the set that applies to the input.
func Match(rs RuleSet, in Input) (Rule, bool) {
	for _, rule := range rs.Rules() {
		if rule.When(in) {
			return rule, true
		}
	}
	return Rule{}, false
}

// RuleSetFor returns the decision table of the goal.
func RuleSetFor(goal periodization.Goal, cfg Config) (RuleSet, error) {
	switch goal {
	case periodization.GoalHypertrophy:
		return hypertrophyRules{cfg: cfg}, nil
	case periodization.GoalStrength:
		return strengthRules{cfg: cfg}, nil
	case periodization.GoalPowerlifting:
		return powerliftingRules{cfg: cfg}, nil
	case periodization.GoalWeightLoss:
		return weightLossRules{cfg: cfg}, nil
	case periodization.GoalMobility:
		return mobilityRules{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", periodization.ErrInvalidGoal, goal)
	}
}

func always(Input) bool { return true }

func deref(v *float64) (float64, bool) {
	if v == nil {
		return 0, false
	}
	return *v, true
}

func sore(cfg Config, agg *aggregate.WeeklyAggregate) bool {
	return agg.SorenessRatePct >= cfg.SorenessThresholdPct || agg.PainRatePct >= cfg.PainThresholdPct
}

func lowStrain(cfg Config, agg *aggregate.WeeklyAggregate) bool {
	if spike, ok := deref(agg.AvgNormalizedHRSpike); ok {
		return spike < cfg.LowStrainSpike
	}
	if rir, ok := deref(agg.AvgEstimatedRIR); ok {
		return rir >= cfg.LowStrainRIR
	}
	return false
}

func highStrain(cfg Config, agg *aggregate.WeeklyAggregate) bool {
	if spike, ok := deref(agg.AvgNormalizedHRSpike); ok && spike >= cfg.HighStrainSpike {
		return true
	}
	if rir, ok := deref(agg.AvgEstimatedRIR); ok && rir <= cfg.HighStrainRIR {
		return true
	}
	return false
}

func missedTarget(agg *aggregate.WeeklyAggregate, thresholdPct float64) bool {
	hit, ok := deref(agg.SetsHitTargetPct)
	return ok && hit < thresholdPct
}

func painCaution(cfg Config, agg *aggregate.WeeklyAggregate) string {
	if agg.PainRatePct < cfg.PainThresholdPct {
		return ""
	}
	return fmt.Sprintf("joint pain reported on %.0f%% of sets, review exercise selection", agg.PainRatePct)
}

type hypertrophyRules struct {
	cfg Config
}

func (hypertrophyRules) Goal() periodization.Goal { return periodization.GoalHypertrophy }

func (r hypertrophyRules) Rules() []Rule {
	return []Rule{
		{
			Flag: FlagIncreaseLoad,
			When: func(in Input) bool {
				return in.Aggregate.TopOfRangeRatePct >= r.cfg.TopOfRangeThresholdPct && !sore(r.cfg, in.Aggregate)
			},
			Then: func(Input) Action {
				return Action{LoadDeltaPct: r.cfg.LoadStepPct}
			},
		},
		{
			Flag: FlagAddSet,
			When: func(in Input) bool {
				return !sore(r.cfg, in.Aggregate) && lowStrain(r.cfg, in.Aggregate) && in.Aggregate.AvgPump < r.cfg.LowPump
			},
			Then: func(Input) Action {
				return Action{SetDelta: 1}
			},
		},
		{
			Flag: FlagRemoveSet,
			When: func(in Input) bool {
				return sore(r.cfg, in.Aggregate)
			},
			Then: func(in Input) Action {
				return Action{SetDelta: -1, Caution: painCaution(r.cfg, in.Aggregate)}
			},
		},
	}
}

type strengthRules struct {
	cfg Config
}

func (strengthRules) Goal() periodization.Goal { return periodization.GoalStrength }

func (r strengthRules) Rules() []Rule {
	return []Rule{
		{
			Flag: FlagReduceVolume,
			When: func(in Input) bool {
				return missedTarget(in.Aggregate, r.cfg.StrengthTargetHitPct) && highStrain(r.cfg, in.Aggregate)
			},
			Then: func(in Input) Action {
				return Action{SetDelta: -1, Caution: painCaution(r.cfg, in.Aggregate)}
			},
		},
		{
			Flag: FlagIncreaseLoad,
			When: always,
			Then: func(in Input) Action {
				return Action{LoadDeltaPct: r.cfg.LoadStepPct, Caution: painCaution(r.cfg, in.Aggregate)}
			},
		},
	}
}

// powerliftingRules taper toward a meet and otherwise progress like strength.
type powerliftingRules struct {
	cfg Config
}

func (powerliftingRules) Goal() periodization.Goal { return periodization.GoalPowerlifting }

func (r powerliftingRules) Rules() []Rule {
	taper := Rule{
		Flag: FlagTaperWave,
		When: func(in Input) bool {
			return in.Week.Taper
		},
		Then: func(Input) Action {
			// volume comes down with intensity, heavy singles stay in
			return Action{SetDelta: -1, IntensityDeltaPct: -r.cfg.TaperIntensityDropPct}
		},
	}
	return append([]Rule{taper}, strengthRules(r).Rules()...)
}

type weightLossRules struct {
	cfg Config
}

func (weightLossRules) Goal() periodization.Goal { return periodization.GoalWeightLoss }

func (r weightLossRules) Rules() []Rule {
	return []Rule{
		{
			Flag: FlagAdjustRepsSets,
			When: func(in Input) bool {
				return missedTarget(in.Aggregate, r.cfg.WeightLossTargetHitPct)
			},
			Then: func(in Input) Action {
				// the load is left alone until reps and sets are back on target
				return Action{SetDelta: -1, Caution: painCaution(r.cfg, in.Aggregate)}
			},
		},
	}
}

type mobilityRules struct{}

func (mobilityRules) Goal() periodization.Goal { return periodization.GoalMobility }

func (mobilityRules) Rules() []Rule {
	return []Rule{
		{
			Flag: FlagMobilityMaintain,
			When: always,
			Then: func(Input) Action {
				return Action{}
			},
		},
	}
}
