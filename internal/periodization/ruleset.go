package periodization

import (
	"fmt"
)

// Ruleset holds the goal-specific periodization knobs of a phase.
type Ruleset struct {
	ID   string `toml:"id" json:"id"`
	Goal Goal   `toml:"goal" json:"goal"`

	CadenceWeeks    int `toml:"cadence_weeks" json:"cadenceWeeks"`
	MinCadenceWeeks int `toml:"min_cadence_weeks" json:"minCadenceWeeks"`
	MaxCadenceWeeks int `toml:"max_cadence_weeks" json:"maxCadenceWeeks"`

	DeloadVolumeMultiplier    float64 `toml:"deload_volume_multiplier" json:"deloadVolumeMultiplier"`
	DeloadIntensityMultiplier float64 `toml:"deload_intensity_multiplier" json:"deloadIntensityMultiplier"`
	// SinglesCapPct1RM caps heavy singles during a deload, 0 means no cap.
	SinglesCapPct1RM float64 `toml:"singles_cap_pct_1rm" json:"singlesCapPct1RM"`
	// TaperWeeks before a meet date are treated as taper weeks (powerlifting).
	TaperWeeks int `toml:"taper_weeks" json:"taperWeeks"`
}

func (r Ruleset) Validate() error {
	if !r.Goal.IsValid() {
		return fmt.Errorf("ruleset %s: %w: %q", r.ID, ErrInvalidGoal, r.Goal)
	}
	if r.MinCadenceWeeks < 2 || r.MaxCadenceWeeks < r.MinCadenceWeeks {
		return fmt.Errorf("ruleset %s: invalid cadence range [%d, %d]", r.ID, r.MinCadenceWeeks, r.MaxCadenceWeeks)
	}
	if r.CadenceWeeks < r.MinCadenceWeeks || r.CadenceWeeks > r.MaxCadenceWeeks {
		return fmt.Errorf("ruleset %s: %w: %d", r.ID, ErrCadenceOutOfRange, r.CadenceWeeks)
	}
	if r.DeloadVolumeMultiplier <= 0 || r.DeloadVolumeMultiplier > 1 {
		return fmt.Errorf("ruleset %s: deload volume multiplier must be in (0, 1]", r.ID)
	}
	if r.DeloadIntensityMultiplier <= 0 || r.DeloadIntensityMultiplier > 1 {
		return fmt.Errorf("ruleset %s: deload intensity multiplier must be in (0, 1]", r.ID)
	}
	if r.SinglesCapPct1RM < 0 || r.SinglesCapPct1RM > 100 {
		return fmt.Errorf("ruleset %s: singles cap must be a percentage", r.ID)
	}
	if r.TaperWeeks < 0 {
		return fmt.Errorf("ruleset %s: negative taper weeks", r.ID)
	}
	return nil
}

// DefaultRulesets returns the built-in ruleset per goal, keyed by ruleset ID.
func DefaultRulesets() map[string]Ruleset {
	rulesets := []Ruleset{
		{
			ID:                        "hypertrophy-default",
			Goal:                      GoalHypertrophy,
			CadenceWeeks:              5,
			MinCadenceWeeks:           4,
			MaxCadenceWeeks:           6,
			DeloadVolumeMultiplier:    0.65,
			DeloadIntensityMultiplier: 1.0, // intensity held mid-range
		},
		{
			ID:                        "strength-default",
			Goal:                      GoalStrength,
			CadenceWeeks:              5,
			MinCadenceWeeks:           4,
			MaxCadenceWeeks:           6,
			DeloadVolumeMultiplier:    0.6,
			DeloadIntensityMultiplier: 0.9,
		},
		{
			ID:                        "powerlifting-default",
			Goal:                      GoalPowerlifting,
			CadenceWeeks:              4,
			MinCadenceWeeks:           3,
			MaxCadenceWeeks:           6,
			DeloadVolumeMultiplier:    0.65,
			DeloadIntensityMultiplier: 0.9,
			SinglesCapPct1RM:          80,
			TaperWeeks:                2,
		},
		{
			ID:                        "weightloss-default",
			Goal:                      GoalWeightLoss,
			CadenceWeeks:              4,
			MinCadenceWeeks:           3,
			MaxCadenceWeeks:           6,
			DeloadVolumeMultiplier:    0.7,
			DeloadIntensityMultiplier: 0.9,
		},
		{
			ID:                        "mobility-default",
			Goal:                      GoalMobility,
			CadenceWeeks:              6,
			MinCadenceWeeks:           4,
			MaxCadenceWeeks:           8,
			DeloadVolumeMultiplier:    1.0, // ROM volume maintained
			DeloadIntensityMultiplier: 0.8, // lower RPE
		},
	}

	byID := make(map[string]Ruleset, len(rulesets))
	for _, r := range rulesets {
		byID[r.ID] = r
	}
	return byID
}

// DefaultRulesetID returns the ID of the built-in ruleset for the goal.
func DefaultRulesetID(goal Goal) string {
	switch goal {
	case GoalWeightLoss:
		return "weightloss-default"
	default:
		return string(goal) + "-default"
	}
}

// DeloadDirective is emitted when a phase enters a deload week. It fully
// replaces the performance based adjustment for that week.
type DeloadDirective struct {
	Goal                Goal    `json:"goal"`
	WeekIndex           int     `json:"weekIndex"`
	Terminal            bool    `json:"terminal"`
	VolumeMultiplier    float64 `json:"volumeMultiplier"`
	IntensityMultiplier float64 `json:"intensityMultiplier"`
	SinglesCapPct1RM    float64 `json:"singlesCapPct1RM,omitempty"`
	Notes               string  `json:"notes"`
}

func NewDeloadDirective(r Ruleset, weekIndex int, terminal bool) DeloadDirective {
	d := DeloadDirective{
		Goal:                r.Goal,
		WeekIndex:           weekIndex,
		Terminal:            terminal,
		VolumeMultiplier:    r.DeloadVolumeMultiplier,
		IntensityMultiplier: r.DeloadIntensityMultiplier,
		SinglesCapPct1RM:    r.SinglesCapPct1RM,
	}

	switch r.Goal {
	case GoalHypertrophy:
		d.Notes = "reduce working sets, keep loads in the middle of the rep range"
	case GoalStrength:
		d.Notes = "reduce volume, keep bar speed high on lighter top sets"
	case GoalPowerlifting:
		d.Notes = fmt.Sprintf("reduce volume, cap singles at %.0f%% of 1RM", r.SinglesCapPct1RM)
	case GoalWeightLoss:
		d.Notes = "reduce volume and conditioning density, keep daily activity"
	case GoalMobility:
		d.Notes = "keep range of motion work, lower effort"
	}
	if terminal {
		d.Notes = "end of block: " + d.Notes
	}

	return d
}
